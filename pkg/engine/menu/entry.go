package menu

import (
	"github.com/zyedidia/generic/mapset"

	"menulayer/pkg/engine/anim"
	"menulayer/pkg/engine/input"
)

// Kind tags the behaviour of an Entry.
type Kind int

const (
	// KindAction runs a callback on Enter.
	KindAction Kind = iota
	// KindMultiValue cycles a value on Left, Right or Enter.
	KindMultiValue
	// KindToggle flips between OFF and ON.
	KindToggle
	// KindText edits a free-text value.
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindAction:
		return "action"
	case KindMultiValue:
		return "multi"
	case KindToggle:
		return "toggle"
	case KindText:
		return "text"
	}
	return "unknown"
}

var toggleValues = [2]string{"OFF", "ON"}

// cycleKeys are the keys a multi-value or toggle entry reacts to.
var cycleKeys = func() mapset.Set[input.Key] {
	s := mapset.New[input.Key]()
	s.Put(input.KeyLeft)
	s.Put(input.KeyRight)
	s.Put(input.KeyEnter)
	return s
}()

// shared is the menu-level state an entry reads during layout and effects.
// The menu owns it; entries only point at it.
type shared struct {
	align   Alignment
	env     Env
	effects Effects
}

// Entry is one selectable row of a menu.
type Entry struct {
	kind     Kind
	label    string
	display  string
	selected bool

	transform        anim.Transform
	anchorX, anchorY float64
	text, textSel    Text
	menu             *shared

	// KindAction
	onActivate func()

	// KindMultiValue
	cycle func()
	value func() string

	// KindToggle
	on       bool
	onToggle func(on bool)

	// KindText
	buf    []rune
	onEdit func(value string)
}

func newEntry(kind Kind, label string) *Entry {
	return &Entry{kind: kind, label: label, transform: anim.Identity()}
}

// NewAction returns an entry that calls fn when activated. fn may be nil.
func NewAction(label string, fn func()) *Entry {
	e := newEntry(KindAction, label)
	e.onActivate = fn
	e.refresh()
	return e
}

// NewMultiValue returns an entry that calls cycle on Left, Right or Enter and
// shows label followed by value().
func NewMultiValue(label string, cycle func(), value func() string) *Entry {
	e := newEntry(KindMultiValue, label)
	e.cycle = cycle
	e.value = value
	e.refresh()
	return e
}

// NewToggle returns an OFF/ON entry. fn, if set, receives the new state after
// every flip.
func NewToggle(label string, on bool, fn func(on bool)) *Entry {
	e := newEntry(KindToggle, label)
	e.on = on
	e.onToggle = fn
	e.refresh()
	return e
}

// NewTextEntry returns a free-text entry. fn, if set, receives the value
// after every edit.
func NewTextEntry(label, initial string, fn func(value string)) *Entry {
	e := newEntry(KindText, label)
	e.buf = []rune(initial)
	e.onEdit = fn
	e.refresh()
	return e
}

// Kind returns the entry's variant.
func (e *Entry) Kind() Kind { return e.kind }

// Label returns the fixed label.
func (e *Entry) Label() string { return e.label }

// Display returns the text currently shown for the entry.
func (e *Entry) Display() string { return e.display }

// Selected reports whether the entry has focus.
func (e *Entry) Selected() bool { return e.selected }

// On reports the state of a toggle entry.
func (e *Entry) On() bool { return e.on }

// Transform is the effect state drawn with the entry.
func (e *Entry) Transform() *anim.Transform { return &e.transform }

// Anchor returns the layout anchor in menu coordinates.
func (e *Entry) Anchor() (x, y float64) { return e.anchorX, e.anchorY }

// Value returns the current value of multi-value, toggle and text entries.
func (e *Entry) Value() string {
	switch e.kind {
	case KindMultiValue:
		if e.value == nil {
			return ""
		}
		return e.value()
	case KindToggle:
		if e.on {
			return toggleValues[1]
		}
		return toggleValues[0]
	case KindText:
		return string(e.buf)
	}
	return ""
}

// refresh recomputes the display string and pushes it to the text objects.
func (e *Entry) refresh() {
	switch e.kind {
	case KindAction:
		e.display = e.label
	case KindMultiValue, KindToggle:
		e.display = e.label + e.Value()
	case KindText:
		e.display = e.label + " " + e.Value()
	}
	if e.text != nil {
		e.text.SetString(e.display)
		e.textSel.SetString(e.display)
	}
}

// Render returns the text object for the given selection state.
func (e *Entry) Render(selected bool) Text {
	if selected {
		return e.textSel
	}
	return e.text
}

var keyHandlers = [...]func(*Entry, input.Key) bool{
	KindAction:     (*Entry).actionKey,
	KindMultiValue: (*Entry).multiKey,
	KindToggle:     (*Entry).toggleKey,
	KindText:       (*Entry).textKey,
}

// HandleKey applies a key press and reports whether the entry consumed it.
func (e *Entry) HandleKey(key input.Key, mods input.Modifier) bool {
	return keyHandlers[e.kind](e, key)
}

func (e *Entry) actionKey(key input.Key) bool {
	if key != input.KeyEnter || e.onActivate == nil {
		return false
	}
	e.onActivate()
	return true
}

func (e *Entry) multiKey(key input.Key) bool {
	if !cycleKeys.Has(key) {
		return false
	}
	if e.cycle != nil {
		e.cycle()
	}
	e.refresh()
	return true
}

func (e *Entry) toggleKey(key input.Key) bool {
	if !cycleKeys.Has(key) {
		return false
	}
	e.flip()
	return true
}

func (e *Entry) flip() {
	e.on = !e.on
	if e.onToggle != nil {
		e.onToggle(e.on)
	}
	e.refresh()
}

func (e *Entry) textKey(key input.Key) bool {
	if key != input.KeyBackspace {
		return false
	}
	if len(e.buf) > 0 {
		e.buf = e.buf[:len(e.buf)-1]
	}
	e.edited()
	return true
}

// HandleText appends a typed character to a text entry. Other kinds ignore it.
func (e *Entry) HandleText(ch rune) bool {
	if e.kind != KindText {
		return false
	}
	e.buf = append(e.buf, ch)
	e.edited()
	return true
}

func (e *Entry) edited() {
	e.refresh()
	if e.onEdit != nil {
		e.onEdit(string(e.buf))
	}
}

// Box is an axis-aligned rectangle in menu coordinates.
type Box struct {
	X1, Y1, X2, Y2 float64
}

// Contains reports whether (x, y) lies in the box, edges included.
func (b Box) Contains(x, y float64) bool {
	return x >= b.X1 && x <= b.X2 && y >= b.Y1 && y <= b.Y2
}

// Box returns the entry's hit rectangle, sized by its unselected text and
// aligned by the menu alignment.
func (e *Entry) Box() (Box, error) {
	if e.text == nil || e.menu == nil {
		return Box{}, ErrNotLaidOut
	}
	w, h := e.text.Width(), e.text.Height()
	x, y := e.text.Position()
	dx, dy, err := Offset(e.menu.align.Horizontal, e.menu.align.Vertical, w, h)
	if err != nil {
		return Box{}, err
	}
	x += dx
	y += dy
	return Box{X1: x, Y1: y, X2: x + w, Y2: y + h}, nil
}

// Contains reports whether (x, y) falls inside the entry's box.
func (e *Entry) Contains(x, y float64) (bool, error) {
	b, err := e.Box()
	if err != nil {
		return false, err
	}
	return b.Contains(x, y), nil
}

func (e *Entry) onSelected() {
	e.selected = true
	e.menu.env.run(&e.transform, e.menu.effects.Selected)
}

func (e *Entry) onUnselected() {
	e.selected = false
	e.menu.env.run(&e.transform, e.menu.effects.Unselected)
}

func (e *Entry) onActivated() {
	e.menu.env.run(&e.transform, e.menu.effects.Activated)
}
