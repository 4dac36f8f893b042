package input

// Modifier is a bitmask of held modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModControl
	ModAlt
)

// Button is a bitmask of pointer buttons.
type Button uint8

const (
	ButtonLeft Button = 1 << iota
	ButtonRight
	ButtonMiddle
)

// Event is one input occurrence delivered to a menu.
type Event interface {
	event()
}

// KeyPress is a named key going down. Code carries the raw device code so
// that keys mapped to KeyOther stay distinguishable.
type KeyPress struct {
	Key  Key
	Code string
	Mods Modifier
}

// TextInput is one typed character.
type TextInput struct {
	Char rune
}

// PointerMotion reports the pointer position in menu coordinates.
type PointerMotion struct {
	X, Y   float64
	DX, DY float64
}

// PointerRelease reports a pointer button release in menu coordinates.
type PointerRelease struct {
	X, Y    float64
	Buttons Button
	Mods    Modifier
}

func (KeyPress) event()       {}
func (TextInput) event()      {}
func (PointerMotion) event()  {}
func (PointerRelease) event() {}
