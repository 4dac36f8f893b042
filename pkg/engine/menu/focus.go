package menu

import "menulayer/pkg/engine/input"

// Direction is a step through the entry list.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
)

// focus tracks which entry is selected and runs the transitions.
type focus struct {
	entries []*Entry
	index   int

	selectSound   Cue
	activateSound Cue
}

func (f *focus) current() *Entry {
	if len(f.entries) == 0 {
		return nil
	}
	return f.entries[f.index]
}

// selectIndex moves focus to i. The old entry is always unselected before the
// new one is selected.
func (f *focus) selectIndex(i int) {
	if i == f.index || len(f.entries) == 0 {
		return
	}
	if f.selectSound != nil {
		f.selectSound.Play()
	}
	f.entries[f.index].onUnselected()
	f.entries[i].onSelected()
	f.index = i
}

func (f *focus) navigate(d Direction) {
	n := len(f.entries)
	if n == 0 {
		return
	}
	switch d {
	case DirectionUp:
		f.selectIndex((f.index - 1 + n) % n)
	case DirectionDown:
		f.selectIndex((f.index + 1) % n)
	}
}

func (f *focus) activate() {
	e := f.current()
	if e == nil {
		return
	}
	if f.activateSound != nil {
		f.activateSound.Play()
	}
	e.onActivated()
	e.HandleKey(input.KeyEnter, 0)
}

// pointerMotion selects the first entry whose box contains (x, y).
func (f *focus) pointerMotion(x, y float64) error {
	for i, e := range f.entries {
		hit, err := e.Contains(x, y)
		if err != nil {
			return err
		}
		if hit {
			f.selectIndex(i)
			return nil
		}
	}
	return nil
}

// pointerRelease activates the selected entry when the release lands on it.
func (f *focus) pointerRelease(x, y float64) error {
	e := f.current()
	if e == nil {
		return nil
	}
	hit, err := e.Contains(x, y)
	if err != nil {
		return err
	}
	if hit {
		f.activate()
	}
	return nil
}
