package menu

import (
	enginemenu "menulayer/pkg/engine/menu"
)

// buildOptions builds the preferences screen. Every change is saved at once.
func (s *Screens) buildOptions() (*enginemenu.Menu, error) {
	back := func() { s.Show(ScreenMain) }
	m := s.newMenu("Options", back)

	prefs := s.cfg.Preferences
	entries := []*enginemenu.Entry{
		enginemenu.NewToggle("Sound: ", prefs.Sound, func(on bool) {
			s.save(s.cfg.SetSound(on))
		}),
		enginemenu.NewMultiValue("Difficulty: ",
			func() { s.save(s.cfg.CycleDifficulty()) },
			func() string { return s.cfg.Preferences.Difficulty },
		),
		enginemenu.NewTextEntry("Name:", prefs.PlayerName, func(v string) {
			s.save(s.cfg.SetPlayerName(v))
		}),
		enginemenu.NewAction("Controls", func() { s.Show(ScreenControls) }),
		enginemenu.NewAction("Back", back),
	}
	if err := m.Build(entries, standardEffects()); err != nil {
		return nil, err
	}
	return m, nil
}
