package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Viewport reports the terminal size in cells.
type Viewport struct {
	// FixedWidth and FixedHeight override the probed size when both values are positive.
	FixedWidth, FixedHeight int
}

// Size implements menu.Viewport.
func (v Viewport) Size() (width, height float64) {
	if v.FixedWidth > 0 && v.FixedHeight > 0 {
		return float64(v.FixedWidth), float64(v.FixedHeight)
	}
	w, h := GetSize()
	return float64(w), float64(h)
}
