package tui

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"menulayer/pkg/engine/input"
	"menulayer/pkg/engine/menu"
	"menulayer/pkg/engine/terminal"
	"menulayer/pkg/game/renderer"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since menu labels are translation keys chosen at runtime.
var dynamicGet = gotext.Get

const (
	clearScreen = "\x1b[H\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// TUIRenderer is the terminal-based renderer implementation.
// One cell is one unit of menu space.
type TUIRenderer struct {
	out      io.Writer
	in       io.Reader
	viewport terminal.Viewport
	raw      bool

	colorSubtle color.Style
}

// New creates a new TUI renderer on stdin and stdout.
func New() *TUIRenderer {
	return &TUIRenderer{
		out:         os.Stdout,
		in:          os.Stdin,
		raw:         true,
		colorSubtle: color.Style{color.FgGray, color.OpBold},
	}
}

// NewWithIO creates a TUI renderer on the given streams with a fixed size.
// The input is read as-is, without switching a terminal to raw mode.
func NewWithIO(in io.Reader, out io.Writer, width, height int) *TUIRenderer {
	return &TUIRenderer{
		out:         out,
		in:          in,
		viewport:    terminal.Viewport{FixedWidth: width, FixedHeight: height},
		colorSubtle: color.Style{color.FgGray, color.OpBold},
	}
}

var _ renderer.Renderer = (*TUIRenderer)(nil)

// Env returns the collaborators for menus drawn in the terminal. Effects
// are not animated here, so there is no scheduler.
func (t *TUIRenderer) Env() menu.Env {
	return menu.Env{
		Renderer: textRenderer{},
		Viewport: menuViewport{t.viewport},
	}
}

// menuViewport is the terminal minus its last line, which holds the footer.
type menuViewport struct {
	terminal.Viewport
}

func (v menuViewport) Size() (width, height float64) {
	w, h := v.Viewport.Size()
	return w, math.Max(h-1, 0)
}

// bell rings the terminal bell.
type bell struct {
	out io.Writer
}

func (b bell) Play() { fmt.Fprint(b.out, "\a") }

// LoadCue returns the terminal bell for any configured cue.
func (t *TUIRenderer) LoadCue(path string) (menu.Cue, error) {
	if path == "" {
		return nil, nil
	}
	return bell{out: t.out}, nil
}

// Render draws m to the terminal.
func (t *TUIRenderer) Render(m *menu.Menu) {
	w, h := t.viewport.Size()
	f := newFrame(int(w), int(h))
	m.Draw(f)
	f.footer(t.colorSubtle.Sprint(renderer.VersionString()))
	fmt.Fprint(t.out, clearScreen, f.String())
}

// Run puts the terminal in raw mode and drives app until it is done or
// stdin closes.
func (t *TUIRenderer) Run(app renderer.App) error {
	if t.raw {
		restore, err := input.MakeRaw()
		if err != nil {
			return fmt.Errorf("cannot set terminal to raw mode: %w", err)
		}
		defer restore()
	}

	fmt.Fprint(t.out, hideCursor)
	defer fmt.Fprint(t.out, showCursor, clearScreen)

	w, h := t.viewport.Size()
	log.Printf("Terminal menu started (%.0fx%.0f)", w, h)

	reader := input.NewReader(t.in)
	for !app.Done() {
		if _, err := app.Menu().SyncViewport(); err != nil {
			return err
		}
		t.Render(app.Menu())

		events, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		for _, ev := range events {
			if _, err := app.Menu().HandleEvent(ev); err != nil {
				return err
			}
			if app.Done() {
				break
			}
		}
	}
	return nil
}
