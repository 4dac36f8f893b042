package input

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
)

// Key is a named key a menu understands. Everything else is KeyOther.
type Key int

const (
	KeyNone Key = iota
	KeyEnter
	KeyNumEnter
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyBackspace
	KeyOther
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyEnter:     "enter",
	KeyNumEnter:  "num_enter",
	KeyEscape:    "escape",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyBackspace: "backspace",
	KeyOther:     "other",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// ParseKey resolves a key name as written in configuration files.
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range keyNames {
		if n == name {
			return k, nil
		}
	}
	return KeyNone, fmt.Errorf("unknown key %q", name)
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "arrow_up", "gamepad_dpad_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after debouncing.
// Ebiten's just-pressed queries and the terminal reader already deliver one
// event per press, so this stays a thin copy.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to keys (3rd layer).
// Multiple codes may point to the same Key.
var bindings = map[string]Key{
	"arrow_up":    KeyUp,
	"arrow_down":  KeyDown,
	"arrow_left":  KeyLeft,
	"arrow_right": KeyRight,

	"enter":        KeyEnter,
	"numpad_enter": KeyNumEnter,
	"escape":       KeyEscape,
	"backspace":    KeyBackspace,

	"gamepad_dpad_up":    KeyUp,
	"gamepad_dpad_down":  KeyDown,
	"gamepad_dpad_left":  KeyLeft,
	"gamepad_dpad_right": KeyRight,
	"gamepad_a":          KeyEnter,
	"gamepad_b":          KeyEscape,
	"gamepad_start":      KeyEnter,
}

// reserved codes keep their binding so a menu can always be navigated and left.
var reserved = map[string]bool{
	"arrow_up":    true,
	"arrow_down":  true,
	"arrow_left":  true,
	"arrow_right": true,
	"enter":       true,
	"escape":      true,
}

// MapToKey applies the current bindings to a debounced input.
// Unbound codes map to KeyOther.
func MapToKey(ev DebouncedInput) Key {
	if k, ok := bindings[ev.Code]; ok {
		return k
	}
	return KeyOther
}

// Press builds the KeyPress event for a raw code.
func Press(raw RawInput, mods Modifier) KeyPress {
	ev := NewDebouncedInput(raw)
	return KeyPress{Key: MapToKey(ev), Code: ev.Code, Mods: mods}
}

// KeyName returns a human-friendly name for a key.
func KeyName(k Key) string {
	switch k {
	case KeyEnter:
		return "Confirm"
	case KeyNumEnter:
		return "Confirm (keypad)"
	case KeyEscape:
		return "Back"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Previous value"
	case KeyRight:
		return "Next value"
	case KeyBackspace:
		return "Erase"
	default:
		return "None"
	}
}

// GetBindingsByKey returns the current bindings grouped by key.
func GetBindingsByKey() map[Key][]string {
	result := make(map[Key][]string)
	for code, k := range bindings {
		result[k] = append(result[k], code)
	}
	// Stable order so the controls screen doesn't flicker.
	for k, codes := range result {
		sort.Strings(codes)
		result[k] = codes
	}
	return result
}

// SetBinding maps an extra raw code to a key. Reserved codes cannot be
// rebound.
func SetBinding(code string, k Key) error {
	if code == "" {
		return fmt.Errorf("empty binding code")
	}
	if reserved[code] {
		return fmt.Errorf("binding %q is reserved", code)
	}
	if k == KeyNone || k == KeyOther {
		delete(bindings, code)
		return nil
	}
	bindings[code] = k
	return nil
}
