// Package menu implements a navigable on-screen menu: a column of selectable
// entries with keyboard and pointer focus, per-entry effects and layout.
//
// Coordinates are in menu space: origin at the bottom-left of the viewport,
// y growing upward. Backends convert at their edges.
package menu

import (
	"fmt"

	"menulayer/pkg/engine/anim"
	"menulayer/pkg/engine/input"
)

// Settings configures a Menu.
type Settings struct {
	Align  Alignment
	Styles Styles

	SelectSound   Cue
	ActivateSound Cue

	// OnQuit runs when Escape is pressed.
	OnQuit func()
}

// Menu is a titled column of entries with exactly one selected entry.
type Menu struct {
	title  string
	styles Styles
	shared shared
	focus  focus
	onQuit func()

	titleText          Text
	titleHeight        float64
	width, height      float64
	built              bool
	pointerX, pointerY float64
}

// New returns an empty menu. Entries are added with Build.
func New(title string, env Env, settings Settings) *Menu {
	return &Menu{
		title:  title,
		styles: settings.Styles,
		shared: shared{align: settings.Align, env: env},
		focus: focus{
			selectSound:   settings.SelectSound,
			activateSound: settings.ActivateSound,
		},
		onQuit: settings.OnQuit,
	}
}

// Build installs the entries, lays them out and selects the first one.
// It may be called once.
func (m *Menu) Build(entries []*Entry, fx Effects) error {
	if m.built {
		return ErrAlreadyBuilt
	}
	for _, e := range entries {
		e.menu = &m.shared
	}
	m.shared.effects = fx
	m.focus.entries = entries
	m.focus.index = 0

	if err := m.Layout(); err != nil {
		for _, e := range entries {
			e.menu = nil
		}
		m.shared.effects = Effects{}
		m.focus.entries = nil
		return err
	}
	m.built = true

	if first := m.focus.current(); first != nil {
		first.onSelected()
	}
	return nil
}

// Layout positions the title and every entry for the current viewport size.
func (m *Menu) Layout() error {
	env := m.shared.env
	if env.Renderer == nil || env.Viewport == nil {
		return ErrNoRenderer
	}
	align := m.shared.align
	if err := align.Validate(); err != nil {
		return err
	}

	w, h := env.Viewport.Size()
	m.width, m.height = w, h

	m.titleText = env.Renderer.NewText(m.styles.Title, m.title, 0, 0)
	m.titleHeight = m.titleText.Height()
	t := TitleAnchor(w, h, m.titleHeight)
	m.titleText.SetPosition(t.X, t.Y)

	row := RowHeight(env.Renderer.Metrics(m.styles.Item))
	anchors, err := EntryAnchors(align, w, h, row, m.titleHeight, len(m.focus.entries))
	if err != nil {
		return fmt.Errorf("layout %q: %w", m.title, err)
	}

	item := m.styles.Item
	item.HAlign, item.VAlign = align.Horizontal, VAlignCenter
	sel := m.styles.ItemSelected
	sel.HAlign, sel.VAlign = align.Horizontal, VAlignCenter

	for i, e := range m.focus.entries {
		p := anchors[i]
		e.anchorX, e.anchorY = p.X, p.Y
		e.text = env.Renderer.NewText(item, e.display, p.X, p.Y)
		e.textSel = env.Renderer.NewText(sel, e.display, p.X, p.Y)
	}
	return nil
}

// SyncViewport re-runs layout when the viewport size changed since the last
// layout. It reports whether a layout happened.
func (m *Menu) SyncViewport() (bool, error) {
	if !m.built || m.shared.env.Viewport == nil {
		return false, nil
	}
	w, h := m.shared.env.Viewport.Size()
	if w == m.width && h == m.height {
		return false, nil
	}
	return true, m.Layout()
}

// Title returns the menu title.
func (m *Menu) Title() string { return m.title }

// SetTitle changes the title and re-runs layout once the menu is built, since
// the title height shifts the entries.
func (m *Menu) SetTitle(title string) error {
	m.title = title
	if !m.built {
		return nil
	}
	return m.Layout()
}

// TitleText returns the laid out title, or nil before layout.
func (m *Menu) TitleText() Text { return m.titleText }

// Entries returns the entries in display order.
func (m *Menu) Entries() []*Entry { return m.focus.entries }

// SelectedIndex returns the index of the selected entry.
func (m *Menu) SelectedIndex() int { return m.focus.index }

// Selected returns the selected entry, or nil for an empty menu.
func (m *Menu) Selected() *Entry { return m.focus.current() }

// Select moves focus to entry i. Selecting the current entry does nothing.
func (m *Menu) Select(i int) { m.focus.selectIndex(i) }

// Navigate moves focus one step, wrapping at both ends.
func (m *Menu) Navigate(d Direction) { m.focus.navigate(d) }

// Activate activates the selected entry.
func (m *Menu) Activate() { m.focus.activate() }

// SetSounds replaces the select and activate cues. Either may be nil.
func (m *Menu) SetSounds(selectSound, activateSound Cue) {
	m.focus.selectSound = selectSound
	m.focus.activateSound = activateSound
}

// OnQuit replaces the Escape hook.
func (m *Menu) OnQuit(fn func()) { m.onQuit = fn }

// Pointer returns the last pointer position seen, in menu coordinates.
func (m *Menu) Pointer() (x, y float64) { return m.pointerX, m.pointerY }

// HandleKeyPress routes a key press and reports whether it was consumed.
func (m *Menu) HandleKeyPress(key input.Key, mods input.Modifier) bool {
	switch key {
	case input.KeyEscape:
		if m.onQuit != nil {
			m.onQuit()
		}
		return true
	case input.KeyEnter, input.KeyNumEnter:
		m.focus.activate()
		return true
	case input.KeyUp:
		m.focus.navigate(DirectionUp)
		return true
	case input.KeyDown:
		m.focus.navigate(DirectionDown)
		return true
	}
	e := m.focus.current()
	if e == nil {
		return false
	}
	return e.HandleKey(key, mods)
}

// HandleText routes a typed character to the selected entry. Carriage
// returns are consumed here because Enter already arrived as a key press.
func (m *Menu) HandleText(ch rune) bool {
	if ch == '\r' {
		return true
	}
	e := m.focus.current()
	if e == nil {
		return false
	}
	return e.HandleText(ch)
}

// HandlePointerMotion selects the entry under the pointer.
func (m *Menu) HandlePointerMotion(x, y float64) error {
	x, y = m.shared.env.toMenu(x, y)
	m.pointerX, m.pointerY = x, y
	return m.focus.pointerMotion(x, y)
}

// HandlePointerRelease activates the selected entry if the release is on it.
func (m *Menu) HandlePointerRelease(x, y float64, buttons input.Button, mods input.Modifier) error {
	x, y = m.shared.env.toMenu(x, y)
	m.pointerX, m.pointerY = x, y
	return m.focus.pointerRelease(x, y)
}

// HandleEvent dispatches any input event.
func (m *Menu) HandleEvent(ev input.Event) (bool, error) {
	switch ev := ev.(type) {
	case input.KeyPress:
		return m.HandleKeyPress(ev.Key, ev.Mods), nil
	case input.TextInput:
		return m.HandleText(ev.Char), nil
	case input.PointerMotion:
		return false, m.HandlePointerMotion(ev.X, ev.Y)
	case input.PointerRelease:
		return false, m.HandlePointerRelease(ev.X, ev.Y, ev.Buttons, ev.Mods)
	}
	return false, nil
}

// Draw draws the title and every entry, selected entries in the selected style.
func (m *Menu) Draw(d Drawer) {
	if m.titleText != nil {
		x, y := m.titleText.Position()
		d.DrawText(m.titleText, anim.Identity(), x, y)
	}
	for _, e := range m.focus.entries {
		t := e.Render(e.selected)
		if t == nil {
			continue
		}
		d.DrawText(t, e.transform, e.anchorX, e.anchorY)
	}
}
