package menu_test

import (
	"testing"

	"menulayer/pkg/engine/anim"
	"menulayer/pkg/engine/input"
	"menulayer/pkg/engine/menu"
	"menulayer/pkg/engine/menu/menutest"
)

func actions(labels ...string) []*menu.Entry {
	out := make([]*menu.Entry, len(labels))
	for i, l := range labels {
		out[i] = menu.NewAction(l, nil)
	}
	return out
}

type fixture struct {
	env      *menutest.Env
	menu     *menu.Menu
	selSnd   *menutest.Cue
	actSnd   *menutest.Cue
	effects  menu.Effects
	quitting int
}

func newFixture(t *testing.T, entries []*menu.Entry) *fixture {
	t.Helper()
	f := &fixture{
		env:    menutest.NewEnv(),
		selSnd: &menutest.Cue{},
		actSnd: &menutest.Cue{},
		effects: menu.Effects{
			Selected:   anim.ZoomIn(),
			Unselected: anim.ZoomOut(),
			Activated:  anim.Shake(),
		},
	}
	f.menu = menu.New("Main", f.env.Menu(), menu.Settings{
		Styles:        menu.DefaultStyles(),
		SelectSound:   f.selSnd,
		ActivateSound: f.actSnd,
		OnQuit:        func() { f.quitting++ },
	})
	if err := f.menu.Build(entries, f.effects); err != nil {
		t.Fatalf("Build: %v", err)
	}
	return f
}

func (f *fixture) assertOneSelected(t *testing.T) {
	t.Helper()
	count := 0
	for i, e := range f.menu.Entries() {
		if e.Selected() {
			count++
			if i != f.menu.SelectedIndex() {
				t.Errorf("entry %d selected but index is %d", i, f.menu.SelectedIndex())
			}
		}
	}
	if count != 1 {
		t.Errorf("selected entries = %d, want 1", count)
	}
}

func TestBuildSelectsFirstQuietly(t *testing.T) {
	f := newFixture(t, actions("Start", "Quit"))

	if f.menu.SelectedIndex() != 0 {
		t.Errorf("SelectedIndex = %d, want 0", f.menu.SelectedIndex())
	}
	f.assertOneSelected(t)
	if f.selSnd.Plays != 0 {
		t.Errorf("select sound plays after build = %d, want 0", f.selSnd.Plays)
	}

	calls := f.env.Scheduler.Calls
	first := f.menu.Entries()[0].Transform()
	if len(calls) != 2 || calls[1].Op != "do" || calls[1].Target != first {
		t.Errorf("scheduler calls after build = %+v, want flush+do on entry 0", calls)
	}
}

func TestNavigateWraps(t *testing.T) {
	f := newFixture(t, actions("Start", "Quit"))

	f.menu.Navigate(menu.DirectionDown)
	if f.menu.SelectedIndex() != 1 {
		t.Errorf("after down SelectedIndex = %d, want 1", f.menu.SelectedIndex())
	}
	f.menu.Navigate(menu.DirectionDown)
	if f.menu.SelectedIndex() != 0 {
		t.Errorf("after second down SelectedIndex = %d, want 0", f.menu.SelectedIndex())
	}
	f.menu.Navigate(menu.DirectionUp)
	if f.menu.SelectedIndex() != 1 {
		t.Errorf("after up SelectedIndex = %d, want 1", f.menu.SelectedIndex())
	}
	f.assertOneSelected(t)
}

func TestNavigateFullCycleReturnsHome(t *testing.T) {
	f := newFixture(t, actions("A", "B", "C", "D", "E"))
	f.menu.Select(3)

	for i := 0; i < 5; i++ {
		f.menu.Navigate(menu.DirectionUp)
		f.assertOneSelected(t)
	}
	if f.menu.SelectedIndex() != 3 {
		t.Errorf("after 5 ups SelectedIndex = %d, want 3", f.menu.SelectedIndex())
	}
	for i := 0; i < 5; i++ {
		f.menu.Navigate(menu.DirectionDown)
	}
	if f.menu.SelectedIndex() != 3 {
		t.Errorf("after 5 downs SelectedIndex = %d, want 3", f.menu.SelectedIndex())
	}
}

func TestSelectSameIndexIsNoop(t *testing.T) {
	f := newFixture(t, actions("A", "B"))
	f.env.Scheduler.Reset()

	f.menu.Select(0)
	if f.selSnd.Plays != 0 {
		t.Errorf("select sound plays = %d, want 0", f.selSnd.Plays)
	}
	if len(f.env.Scheduler.Calls) != 0 {
		t.Errorf("scheduler calls = %+v, want none", f.env.Scheduler.Calls)
	}
}

func TestSelectUnselectsBeforeSelecting(t *testing.T) {
	f := newFixture(t, actions("A", "B"))
	f.env.Scheduler.Reset()

	f.menu.Select(1)

	old, next := f.menu.Entries()[0].Transform(), f.menu.Entries()[1].Transform()
	want := []menutest.Call{
		{Op: "flush", Target: old},
		{Op: "do", Target: old, Action: f.effects.Unselected},
		{Op: "flush", Target: next},
		{Op: "do", Target: next, Action: f.effects.Selected},
	}
	got := f.env.Scheduler.Calls
	if len(got) != len(want) {
		t.Fatalf("scheduler calls = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Op != want[i].Op || got[i].Target != want[i].Target {
			t.Errorf("call %d = %s on %p, want %s on %p", i, got[i].Op, got[i].Target, want[i].Op, want[i].Target)
		}
	}
	if f.selSnd.Plays != 1 {
		t.Errorf("select sound plays = %d, want 1", f.selSnd.Plays)
	}
}

func TestActivateRunsEffectAndCallback(t *testing.T) {
	calls := 0
	f := newFixture(t, []*menu.Entry{menu.NewAction("Start", func() { calls++ })})
	f.env.Scheduler.Reset()

	if !f.menu.HandleKeyPress(input.KeyNumEnter, 0) {
		t.Fatal("NumEnter not handled")
	}
	if calls != 1 {
		t.Errorf("callback calls = %d, want 1", calls)
	}
	if f.actSnd.Plays != 1 {
		t.Errorf("activate sound plays = %d, want 1", f.actSnd.Plays)
	}
	got := f.env.Scheduler.Calls
	if len(got) != 2 || got[1].Op != "do" {
		t.Errorf("scheduler calls = %+v, want flush+do", got)
	}
}

func TestActivateTogglesMultiValue(t *testing.T) {
	var got []bool
	f := newFixture(t, []*menu.Entry{menu.NewToggle("Sound", false, func(on bool) { got = append(got, on) })})

	f.menu.Activate()
	if len(got) != 1 || !got[0] {
		t.Errorf("toggle callback = %v, want [true]", got)
	}
}

func TestPointerSelectAndActivate(t *testing.T) {
	calls := make([]int, 3)
	entries := make([]*menu.Entry, 3)
	for i, l := range []string{"Start", "Options", "Quit"} {
		i := i
		entries[i] = menu.NewAction(l, func() { calls[i]++ })
	}
	f := newFixture(t, entries)

	// Row 29, title 56: entry 2 is centred at y = 300 + 43.5 - 58 - 11.2.
	if err := f.menu.HandlePointerMotion(400, 270); err != nil {
		t.Fatalf("HandlePointerMotion: %v", err)
	}
	if f.menu.SelectedIndex() != 2 {
		t.Fatalf("SelectedIndex = %d, want 2", f.menu.SelectedIndex())
	}
	if x, y := f.menu.Pointer(); x != 400 || y != 270 {
		t.Errorf("Pointer = %v, %v; want 400, 270", x, y)
	}

	if err := f.menu.HandlePointerRelease(400, 270, input.ButtonLeft, 0); err != nil {
		t.Fatalf("HandlePointerRelease: %v", err)
	}
	if calls[2] != 1 {
		t.Errorf("entry 2 activations = %d, want 1", calls[2])
	}

	// Entry 0's box, not selected.
	if err := f.menu.HandlePointerRelease(400, 340, input.ButtonLeft, 0); err != nil {
		t.Fatalf("HandlePointerRelease: %v", err)
	}
	if calls[0] != 0 || calls[2] != 1 {
		t.Errorf("activations = %v, want only entry 2 once", calls)
	}
}

func TestPointerFirstMatchWins(t *testing.T) {
	f := newFixture(t, actions("Start", "Options", "Quit"))

	// Entries 1 and 2 overlap here since a row is shorter than a text.
	if err := f.menu.HandlePointerMotion(400, 289); err != nil {
		t.Fatalf("HandlePointerMotion: %v", err)
	}
	if f.menu.SelectedIndex() != 1 {
		t.Errorf("SelectedIndex = %d, want 1", f.menu.SelectedIndex())
	}
}

func TestPointerMissKeepsSelection(t *testing.T) {
	f := newFixture(t, actions("Start", "Quit"))
	f.menu.Select(1)

	if err := f.menu.HandlePointerMotion(5, 5); err != nil {
		t.Fatalf("HandlePointerMotion: %v", err)
	}
	if f.menu.SelectedIndex() != 1 {
		t.Errorf("SelectedIndex = %d, want 1", f.menu.SelectedIndex())
	}
}
