package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/leonelquinteros/gotext"

	"menulayer/pkg/game/config"
	gamemenu "menulayer/pkg/game/menu"
	"menulayer/pkg/game/renderer"
	"menulayer/pkg/game/renderer/ebiten"
	"menulayer/pkg/game/renderer/tui"
)

func initGettext(lang string) {
	if lang == "" {
		return
	}
	gotext.Configure("locales", lang, "default")
}

// loadSounds loads the configured cues. A cue that fails to load is
// skipped with a warning.
func loadSounds(r renderer.Renderer, cfg *config.Config) gamemenu.Sounds {
	var s gamemenu.Sounds
	var err error
	if s.Select, err = r.LoadCue(cfg.Sounds.Select); err != nil {
		log.Printf("Warning: select sound disabled: %v", err)
		s.Select = nil
	}
	if s.Activate, err = r.LoadCue(cfg.Sounds.Activate); err != nil {
		log.Printf("Warning: activate sound disabled: %v", err)
		s.Activate = nil
	}
	return s
}

func run() error {
	configPath := flag.String("config", "menu.yaml", "path to the menu configuration file")
	useTUI := flag.Bool("tui", false, "draw the menu in the terminal instead of a window")
	lang := flag.String("lang", "", "language for menu labels (e.g. en_GB)")
	width := flag.Int("width", 0, "window width (overrides config)")
	height := flag.Int("height", 0, "window height (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	config.SetCurrent(cfg)
	if err := cfg.ApplyBindings(); err != nil {
		return err
	}

	if *lang == "" {
		*lang = cfg.Language
	}
	initGettext(*lang)

	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}

	if *useTUI {
		log.Printf("Using terminal renderer")
		renderer.SetRenderer(tui.New())
	} else {
		log.Printf("Using Ebiten renderer")
		e, err := ebiten.New(cfg.Title, cfg.Window.Width, cfg.Window.Height)
		if err != nil {
			return err
		}
		renderer.SetRenderer(e)
	}

	screens, err := gamemenu.NewScreens(renderer.Current.Env(), nil, loadSounds(renderer.Current, cfg))
	if err != nil {
		return err
	}
	if err := renderer.Current.Run(screens); err != nil {
		return err
	}

	if screens.Started() {
		p := config.Current().Preferences
		fmt.Printf("New game for %q on %s.\n", p.PlayerName, p.Difficulty)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
