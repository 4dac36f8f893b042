// Package menu builds the application's screens on top of the engine menu
// and switches between them.
package menu

import (
	"fmt"
	"log"

	"menulayer/pkg/engine/anim"
	enginemenu "menulayer/pkg/engine/menu"
	"menulayer/pkg/game/config"
)

// Screen identifies one of the application menus.
type Screen int

const (
	ScreenMain Screen = iota
	ScreenOptions
	ScreenControls
)

func (s Screen) String() string {
	switch s {
	case ScreenMain:
		return "main"
	case ScreenOptions:
		return "options"
	case ScreenControls:
		return "controls"
	}
	return fmt.Sprintf("Screen(%d)", int(s))
}

// Sounds are the cues shared by every screen. Either may be nil.
type Sounds struct {
	Select   enginemenu.Cue
	Activate enginemenu.Cue
}

// prefCue plays only while the sound preference is on.
type prefCue struct {
	cue enginemenu.Cue
	cfg *config.Config
}

func (c prefCue) Play() {
	if c.cfg.SoundEnabled() {
		c.cue.Play()
	}
}

func (s Sounds) gated(cfg *config.Config) Sounds {
	out := Sounds{}
	if s.Select != nil {
		out.Select = prefCue{cue: s.Select, cfg: cfg}
	}
	if s.Activate != nil {
		out.Activate = prefCue{cue: s.Activate, cfg: cfg}
	}
	return out
}

// Screens owns every menu and tracks which one is showing. It satisfies
// renderer.App.
type Screens struct {
	env    enginemenu.Env
	cfg    *config.Config
	styles enginemenu.Styles
	align  enginemenu.Alignment
	sounds Sounds

	menus   map[Screen]*enginemenu.Menu
	current Screen
	done    bool
	started bool
}

// NewScreens builds the main, options and controls menus against env.
func NewScreens(env enginemenu.Env, cfg *config.Config, sounds Sounds) (*Screens, error) {
	if cfg == nil {
		cfg = config.Current()
	}
	styles, align, err := cfg.MenuStyle()
	if err != nil {
		return nil, err
	}
	s := &Screens{
		env:    env,
		cfg:    cfg,
		styles: styles,
		align:  align,
		sounds: sounds.gated(cfg),
		menus:  make(map[Screen]*enginemenu.Menu),
	}

	builders := []struct {
		screen Screen
		build  func() (*enginemenu.Menu, error)
	}{
		{ScreenMain, s.buildMain},
		{ScreenOptions, s.buildOptions},
		{ScreenControls, s.buildControls},
	}
	for _, b := range builders {
		m, err := b.build()
		if err != nil {
			return nil, fmt.Errorf("build %s menu: %w", b.screen, err)
		}
		s.menus[b.screen] = m
	}
	log.Printf("Menus built (%d screens)", len(s.menus))
	return s, nil
}

// newMenu creates a menu with the shared look and sounds.
func (s *Screens) newMenu(title string, onQuit func()) *enginemenu.Menu {
	return enginemenu.New(title, s.env, enginemenu.Settings{
		Align:         s.align,
		Styles:        s.styles,
		SelectSound:   s.sounds.Select,
		ActivateSound: s.sounds.Activate,
		OnQuit:        onQuit,
	})
}

// standardEffects zoom the selected entry and shake it on activation.
func standardEffects() enginemenu.Effects {
	return enginemenu.Effects{
		Selected:   anim.ZoomIn(),
		Unselected: anim.ZoomOut(),
		Activated:  anim.Shake(),
	}
}

// Menu returns the menu on screen.
func (s *Screens) Menu() *enginemenu.Menu { return s.menus[s.current] }

// MenuFor returns the menu of a screen.
func (s *Screens) MenuFor(sc Screen) *enginemenu.Menu { return s.menus[sc] }

// Current returns the screen showing.
func (s *Screens) Current() Screen { return s.current }

// Done reports that the user quit or started a game.
func (s *Screens) Done() bool { return s.done }

// Started reports whether the user chose New Game.
func (s *Screens) Started() bool { return s.started }

// Show switches to another screen.
func (s *Screens) Show(sc Screen) {
	if _, ok := s.menus[sc]; !ok {
		log.Printf("Unknown screen %v", sc)
		return
	}
	s.current = sc
}

// Quit ends the application.
func (s *Screens) Quit() {
	s.done = true
}

// save persists preferences; failures are not fatal.
func (s *Screens) save(err error) {
	if err != nil {
		log.Printf("Warning: could not save preferences: %v", err)
	}
}
