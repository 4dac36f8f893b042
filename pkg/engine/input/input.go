package input

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"
)

// Reader decodes a raw-mode terminal byte stream into menu events.
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps r. The caller is responsible for putting the terminal
// into raw mode, see MakeRaw.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// MakeRaw puts stdin into raw mode and returns the function that restores it.
func MakeRaw() (restore func(), err error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() { _ = term.Restore(fd, oldState) }, nil
}

func (r *Reader) press(code string) KeyPress {
	return Press(RawInput{Device: DeviceTerminal, Code: code}, 0)
}

// Next blocks until at least one event is available.
// Enter yields a KeyPress followed by TextInput('\r'), the same pair a
// windowing toolkit delivers.
func (r *Reader) Next() ([]Event, error) {
	ch, _, err := r.r.ReadRune()
	if err != nil {
		return nil, err
	}

	switch ch {
	case 0x1b:
		return r.escape()
	case '\r', '\n':
		return []Event{r.press("enter"), TextInput{Char: '\r'}}, nil
	case 127, 8:
		return []Event{r.press("backspace")}, nil
	case 3:
		// Ctrl+C leaves like Escape.
		return []Event{r.press("escape")}, nil
	}

	if ch < 32 {
		return []Event{r.press(string(ch))}, nil
	}
	return []Event{TextInput{Char: ch}}, nil
}

// escape handles the bytes following ESC. A lone ESC (nothing buffered
// behind it) is the Escape key.
func (r *Reader) escape() ([]Event, error) {
	if r.r.Buffered() == 0 {
		return []Event{r.press("escape")}, nil
	}

	b2, err := r.r.ReadByte()
	if err != nil {
		return []Event{r.press("escape")}, nil
	}

	// CSI (ESC [) and SS3 (ESC O) sequences
	if b2 == '[' || b2 == 'O' {
		final, err := r.r.ReadByte()
		if err != nil {
			return nil, err
		}
		if b2 == '[' {
			if final, err = r.csiFinal(final); err != nil {
				return nil, err
			}
		}
		switch final {
		case 'A':
			return []Event{r.press("arrow_up")}, nil
		case 'B':
			return []Event{r.press("arrow_down")}, nil
		case 'C':
			return []Event{r.press("arrow_right")}, nil
		case 'D':
			return []Event{r.press("arrow_left")}, nil
		case 'M':
			return []Event{r.press("numpad_enter"), TextInput{Char: '\r'}}, nil
		}
		// Unknown escape sequence - discard it
		return nil, nil
	}

	if err := r.r.UnreadByte(); err != nil {
		return nil, err
	}
	return []Event{r.press("escape")}, nil
}

// csiFinal skips CSI parameter (0x30-0x3F) and intermediate (0x20-0x2F)
// bytes starting at b and returns the final byte, so modified keys such as
// ESC [1;5A map like their plain form and unknown sequences are consumed whole.
func (r *Reader) csiFinal(b byte) (byte, error) {
	for b >= 0x20 && b <= 0x3f {
		next, err := r.r.ReadByte()
		if err != nil {
			return 0, err
		}
		b = next
	}
	return b, nil
}
