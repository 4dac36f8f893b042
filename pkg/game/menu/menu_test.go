package menu

import (
	"strings"
	"testing"

	engineinput "menulayer/pkg/engine/input"
	"menulayer/pkg/engine/menu/menutest"
	"menulayer/pkg/game/config"
)

type testScreens struct {
	*Screens
	cfg    *config.Config
	selSnd *menutest.Cue
	actSnd *menutest.Cue
	fakes  *menutest.Env
}

func newTestScreens(t *testing.T) *testScreens {
	t.Helper()
	ts := &testScreens{
		cfg:    config.Default(),
		selSnd: &menutest.Cue{},
		actSnd: &menutest.Cue{},
		fakes:  menutest.NewEnv(),
	}
	s, err := NewScreens(ts.fakes.Menu(), ts.cfg, Sounds{Select: ts.selSnd, Activate: ts.actSnd})
	if err != nil {
		t.Fatalf("NewScreens: %v", err)
	}
	ts.Screens = s
	return ts
}

func (ts *testScreens) key(t *testing.T, k engineinput.Key) {
	t.Helper()
	if _, err := ts.Menu().HandleEvent(engineinput.KeyPress{Key: k}); err != nil {
		t.Fatalf("HandleEvent(%v): %v", k, err)
	}
}

func (ts *testScreens) open(t *testing.T, label string) {
	t.Helper()
	for i, e := range ts.Menu().Entries() {
		if e.Label() == label {
			ts.Menu().Select(i)
			ts.key(t, engineinput.KeyEnter)
			return
		}
	}
	t.Fatalf("no entry %q on %v", label, ts.Current())
}

func TestMainMenuEntries(t *testing.T) {
	ts := newTestScreens(t)

	if ts.Current() != ScreenMain {
		t.Fatalf("Current = %v, want main", ts.Current())
	}
	var labels []string
	for _, e := range ts.Menu().Entries() {
		labels = append(labels, e.Label())
	}
	if got := strings.Join(labels, ","); got != "New Game,Options,Quit" {
		t.Errorf("entries = %s", got)
	}
	if ts.Menu().Title() != ts.cfg.Title {
		t.Errorf("title = %q, want %q", ts.Menu().Title(), ts.cfg.Title)
	}
}

func TestNewScreensUsesCurrentConfig(t *testing.T) {
	t.Cleanup(func() { config.SetCurrent(nil) })
	cfg := config.Default()
	cfg.Title = "Station Menu"
	config.SetCurrent(cfg)

	s, err := NewScreens(menutest.NewEnv().Menu(), nil, Sounds{})
	if err != nil {
		t.Fatalf("NewScreens: %v", err)
	}
	if s.Menu().Title() != "Station Menu" {
		t.Errorf("title = %q, want %q", s.Menu().Title(), "Station Menu")
	}
	s.Show(ScreenOptions)
	s.Menu().Select(0)
	s.Menu().Activate()
	if cfg.Preferences.Sound {
		t.Error("toggling sound did not reach the current config")
	}
}

func TestScreenSwitching(t *testing.T) {
	ts := newTestScreens(t)

	ts.open(t, "Options")
	if ts.Current() != ScreenOptions {
		t.Fatalf("Current = %v, want options", ts.Current())
	}
	ts.open(t, "Controls")
	if ts.Current() != ScreenControls {
		t.Fatalf("Current = %v, want controls", ts.Current())
	}

	ts.key(t, engineinput.KeyEscape)
	if ts.Current() != ScreenOptions {
		t.Errorf("Escape on controls: Current = %v, want options", ts.Current())
	}
	ts.key(t, engineinput.KeyEscape)
	if ts.Current() != ScreenMain {
		t.Errorf("Escape on options: Current = %v, want main", ts.Current())
	}
	if ts.Done() {
		t.Fatal("Done before leaving main")
	}
	ts.key(t, engineinput.KeyEscape)
	if !ts.Done() || ts.Started() {
		t.Errorf("Escape on main: Done = %v, Started = %v; want true, false", ts.Done(), ts.Started())
	}
}

func TestNewGame(t *testing.T) {
	ts := newTestScreens(t)
	ts.open(t, "New Game")
	if !ts.Done() || !ts.Started() {
		t.Errorf("Done = %v, Started = %v; want both true", ts.Done(), ts.Started())
	}
}

func TestOptionsUpdatePreferences(t *testing.T) {
	ts := newTestScreens(t)
	ts.open(t, "Options")
	opts := ts.Menu()

	// Sound toggle is first and selected.
	ts.key(t, engineinput.KeyRight)
	if ts.cfg.Preferences.Sound {
		t.Error("Sound still on after toggle")
	}
	if got := opts.Entries()[0].Display(); got != "Sound: OFF" {
		t.Errorf("toggle display = %q", got)
	}

	ts.key(t, engineinput.KeyDown)
	ts.key(t, engineinput.KeyLeft)
	if ts.cfg.Preferences.Difficulty != "Hard" {
		t.Errorf("Difficulty = %q, want Hard", ts.cfg.Preferences.Difficulty)
	}
	if got := opts.Entries()[1].Display(); got != "Difficulty: Hard" {
		t.Errorf("difficulty display = %q", got)
	}

	ts.key(t, engineinput.KeyDown)
	for _, ch := range "Ada" {
		if _, err := opts.HandleEvent(engineinput.TextInput{Char: ch}); err != nil {
			t.Fatalf("HandleEvent: %v", err)
		}
	}
	if ts.cfg.Preferences.PlayerName != "Ada" {
		t.Errorf("PlayerName = %q, want Ada", ts.cfg.Preferences.PlayerName)
	}
}

func TestSoundPreferenceGatesCues(t *testing.T) {
	ts := newTestScreens(t)

	ts.key(t, engineinput.KeyDown)
	if ts.selSnd.Plays != 1 {
		t.Fatalf("select plays = %d, want 1", ts.selSnd.Plays)
	}

	if err := ts.cfg.SetSound(false); err != nil {
		t.Fatalf("SetSound: %v", err)
	}
	ts.key(t, engineinput.KeyDown)
	ts.key(t, engineinput.KeyEnter)
	if ts.selSnd.Plays != 1 || ts.actSnd.Plays != 0 {
		t.Errorf("plays with sound off: select %d, activate %d; want 1, 0", ts.selSnd.Plays, ts.actSnd.Plays)
	}
}

func TestControlsListBindings(t *testing.T) {
	ts := newTestScreens(t)
	controls := ts.MenuFor(ScreenControls)

	entries := controls.Entries()
	if len(entries) != len(controlKeys)+1 {
		t.Fatalf("entries = %d, want %d", len(entries), len(controlKeys)+1)
	}
	if got := entries[0].Display(); !strings.Contains(got, "arrow_up") || !strings.HasPrefix(got, "Up:") {
		t.Errorf("first entry = %q, want Up bindings", got)
	}
	if got := entries[len(entries)-1].Label(); got != "Back" {
		t.Errorf("last entry = %q, want Back", got)
	}
}

func TestBindingLabelUnbound(t *testing.T) {
	got := bindingLabel(engineinput.KeyUp, map[engineinput.Key][]string{})
	if got != "Up: (unbound)" {
		t.Errorf("bindingLabel = %q", got)
	}
}
