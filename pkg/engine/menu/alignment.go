package menu

import (
	"fmt"
	"strings"
)

// HAlign is the horizontal alignment of the entry column.
type HAlign int

const (
	HAlignCenter HAlign = iota
	HAlignLeft
	HAlignRight
)

// VAlign is the vertical alignment of the entry column.
type VAlign int

const (
	VAlignCenter VAlign = iota
	VAlignTop
	VAlignBottom
)

func (h HAlign) String() string {
	switch h {
	case HAlignCenter:
		return "center"
	case HAlignLeft:
		return "left"
	case HAlignRight:
		return "right"
	}
	return fmt.Sprintf("HAlign(%d)", int(h))
}

func (v VAlign) String() string {
	switch v {
	case VAlignCenter:
		return "center"
	case VAlignTop:
		return "top"
	case VAlignBottom:
		return "bottom"
	}
	return fmt.Sprintf("VAlign(%d)", int(v))
}

// ParseHAlign parses "left", "center" or "right".
func ParseHAlign(s string) (HAlign, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center", "centre", "":
		return HAlignCenter, nil
	case "left":
		return HAlignLeft, nil
	case "right":
		return HAlignRight, nil
	}
	return 0, fmt.Errorf("%w: horizontal %q", ErrInvalidAlignment, s)
}

// ParseVAlign parses "top", "center" or "bottom".
func ParseVAlign(s string) (VAlign, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center", "centre", "":
		return VAlignCenter, nil
	case "top":
		return VAlignTop, nil
	case "bottom":
		return VAlignBottom, nil
	}
	return 0, fmt.Errorf("%w: vertical %q", ErrInvalidAlignment, s)
}

// Alignment places the entry column in the viewport and each entry's
// bounding box around its anchor.
type Alignment struct {
	Horizontal HAlign
	Vertical   VAlign
}

// Validate reports ErrInvalidAlignment for out-of-range values.
func (a Alignment) Validate() error {
	if _, err := a.Horizontal.boxOffset(0); err != nil {
		return err
	}
	if _, err := a.Vertical.boxOffset(0); err != nil {
		return err
	}
	return nil
}

// boxOffset is the x offset of a box's left edge from its anchor.
func (h HAlign) boxOffset(width float64) (float64, error) {
	switch h {
	case HAlignLeft:
		return 0, nil
	case HAlignCenter:
		return -width / 2, nil
	case HAlignRight:
		return -width, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrInvalidAlignment, h)
}

// boxOffset is the y offset of a box's bottom edge from its anchor (y up).
func (v VAlign) boxOffset(height float64) (float64, error) {
	switch v {
	case VAlignBottom:
		return 0, nil
	case VAlignCenter:
		return -height / 2, nil
	case VAlignTop:
		return -height, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrInvalidAlignment, v)
}

// Offset returns the translation from an anchor to the bottom-left corner of
// a width x height box aligned by h and v. Backends use it to place text.
func Offset(h HAlign, v VAlign, width, height float64) (dx, dy float64, err error) {
	if dx, err = h.boxOffset(width); err != nil {
		return 0, 0, err
	}
	if dy, err = v.boxOffset(height); err != nil {
		return 0, 0, err
	}
	return dx, dy, nil
}
