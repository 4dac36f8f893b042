package menu

import (
	"fmt"
	"strings"

	"menulayer/pkg/engine/anim"
	engineinput "menulayer/pkg/engine/input"
	enginemenu "menulayer/pkg/engine/menu"
)

// controlKeys are listed on the controls screen, in this order.
var controlKeys = []engineinput.Key{
	engineinput.KeyUp,
	engineinput.KeyDown,
	engineinput.KeyLeft,
	engineinput.KeyRight,
	engineinput.KeyEnter,
	engineinput.KeyEscape,
	engineinput.KeyBackspace,
}

// bindingLabel describes the codes bound to a key.
func bindingLabel(k engineinput.Key, byKey map[engineinput.Key][]string) string {
	codeText := strings.Join(byKey[k], ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}
	return fmt.Sprintf("%s: %s", engineinput.KeyName(k), codeText)
}

// buildControls builds a read-only list of the current bindings.
func (s *Screens) buildControls() (*enginemenu.Menu, error) {
	back := func() { s.Show(ScreenOptions) }
	m := s.newMenu("Controls", back)

	byKey := engineinput.GetBindingsByKey()
	entries := make([]*enginemenu.Entry, 0, len(controlKeys)+1)
	for _, k := range controlKeys {
		entries = append(entries, enginemenu.NewAction(bindingLabel(k, byKey), nil))
	}
	entries = append(entries, enginemenu.NewAction("Back", back))

	fx := enginemenu.Effects{
		Unselected: anim.ShakeBack(),
		Activated:  anim.Shake(),
	}
	if err := m.Build(entries, fx); err != nil {
		return nil, err
	}
	return m, nil
}
