package menu

import (
	"log"

	enginemenu "menulayer/pkg/engine/menu"
)

// buildMain builds the title screen: New Game, Options and Quit.
func (s *Screens) buildMain() (*enginemenu.Menu, error) {
	m := s.newMenu(s.cfg.Title, s.Quit)
	entries := []*enginemenu.Entry{
		enginemenu.NewAction("New Game", s.newGame),
		enginemenu.NewAction("Options", func() { s.Show(ScreenOptions) }),
		enginemenu.NewAction("Quit", s.Quit),
	}
	if err := m.Build(entries, standardEffects()); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Screens) newGame() {
	p := s.cfg.Preferences
	log.Printf("Starting new game (player %q, difficulty %s)", p.PlayerName, p.Difficulty)
	s.started = true
	s.done = true
}
