// Package config loads menu appearance and player preferences from YAML.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"menulayer/pkg/engine/input"
	"menulayer/pkg/engine/menu"
)

// Style is one text style as written in the config file.
type Style struct {
	Font   string  `yaml:"font"`
	Size   float64 `yaml:"size"`
	Color  []int   `yaml:"color,flow"`
	Bold   bool    `yaml:"bold"`
	Italic bool    `yaml:"italic"`
	DPI    int     `yaml:"dpi"`
}

// Styles groups the three menu text styles.
type Styles struct {
	Title        Style `yaml:"title"`
	Item         Style `yaml:"item"`
	ItemSelected Style `yaml:"item_selected"`
}

// Align is the entry column alignment.
type Align struct {
	Horizontal string `yaml:"horizontal"`
	Vertical   string `yaml:"vertical"`
}

// Window is the initial window size of the graphical backend.
type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Sounds are paths to WAV cues. Empty disables a cue.
type Sounds struct {
	Select   string `yaml:"select"`
	Activate string `yaml:"activate"`
}

// Preferences are the player settings edited from the options menu.
type Preferences struct {
	Sound      bool   `yaml:"sound"`
	Difficulty string `yaml:"difficulty"`
	PlayerName string `yaml:"player_name"`
}

// Config is the whole configuration file.
type Config struct {
	Title       string            `yaml:"title"`
	Window      Window            `yaml:"window"`
	Align       Align             `yaml:"align"`
	Styles      Styles            `yaml:"styles"`
	Sounds      Sounds            `yaml:"sounds"`
	Language    string            `yaml:"language"`
	Bindings    map[string]string `yaml:"bindings"`
	Preferences Preferences       `yaml:"preferences"`

	path string
}

// Difficulties are the values the difficulty preference cycles through.
var Difficulties = []string{"Easy", "Normal", "Hard"}

func styleFrom(s menu.Style) Style {
	return Style{
		Font:   s.FontName,
		Size:   s.FontSize,
		Color:  []int{int(s.Color.R), int(s.Color.G), int(s.Color.B), int(s.Color.A)},
		Bold:   s.Bold,
		Italic: s.Italic,
		DPI:    s.DPI,
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	st := menu.DefaultStyles()
	return &Config{
		Title:  "Menu Layer",
		Window: Window{Width: 800, Height: 600},
		Align:  Align{Horizontal: "center", Vertical: "center"},
		Styles: Styles{
			Title:        styleFrom(st.Title),
			Item:         styleFrom(st.Item),
			ItemSelected: styleFrom(st.ItemSelected),
		},
		Preferences: Preferences{
			Sound:      true,
			Difficulty: "Normal",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults;
// a malformed file or invalid value is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("config: %s not found, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if _, _, err := cfg.MenuStyle(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string { return c.path }

// Save writes the config back to the file it was loaded from.
func (c *Config) Save() error {
	if c.path == "" {
		return nil
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (s Style) toMenu() (menu.Style, error) {
	var rgba color.RGBA
	switch len(s.Color) {
	case 0:
		rgba = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case 3, 4:
		v := [4]int{0, 0, 0, 255}
		copy(v[:], s.Color)
		for _, c := range v {
			if c < 0 || c > 255 {
				return menu.Style{}, fmt.Errorf("color component %d out of range", c)
			}
		}
		rgba = color.RGBA{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2]), A: uint8(v[3])}
	default:
		return menu.Style{}, fmt.Errorf("color needs 3 or 4 components, got %d", len(s.Color))
	}
	if s.Size <= 0 {
		return menu.Style{}, fmt.Errorf("font size %v must be positive", s.Size)
	}
	dpi := s.DPI
	if dpi <= 0 {
		dpi = 96
	}
	return menu.Style{
		FontName: s.Font,
		FontSize: s.Size,
		Color:    rgba,
		Bold:     s.Bold,
		Italic:   s.Italic,
		DPI:      dpi,
	}, nil
}

// MenuStyle converts the appearance settings for the menu package.
func (c *Config) MenuStyle() (menu.Styles, menu.Alignment, error) {
	h, err := menu.ParseHAlign(c.Align.Horizontal)
	if err != nil {
		return menu.Styles{}, menu.Alignment{}, err
	}
	v, err := menu.ParseVAlign(c.Align.Vertical)
	if err != nil {
		return menu.Styles{}, menu.Alignment{}, err
	}

	var out menu.Styles
	for _, s := range []struct {
		name string
		in   Style
		out  *menu.Style
	}{
		{"title", c.Styles.Title, &out.Title},
		{"item", c.Styles.Item, &out.Item},
		{"item_selected", c.Styles.ItemSelected, &out.ItemSelected},
	} {
		ms, err := s.in.toMenu()
		if err != nil {
			return menu.Styles{}, menu.Alignment{}, fmt.Errorf("style %s: %w", s.name, err)
		}
		*s.out = ms
	}
	return out, menu.Alignment{Horizontal: h, Vertical: v}, nil
}

// ApplyBindings installs the extra key bindings from the config.
func (c *Config) ApplyBindings() error {
	for code, name := range c.Bindings {
		k, err := input.ParseKey(name)
		if err != nil {
			return fmt.Errorf("binding %q: %w", code, err)
		}
		if err := input.SetBinding(code, k); err != nil {
			return err
		}
	}
	return nil
}

// SetSound updates the sound preference and saves.
func (c *Config) SetSound(on bool) error {
	c.Preferences.Sound = on
	return c.Save()
}

// SoundEnabled reports the sound preference.
func (c *Config) SoundEnabled() bool {
	return c.Preferences.Sound
}

// CycleDifficulty moves to the next difficulty and saves.
func (c *Config) CycleDifficulty() error {
	next := Difficulties[0]
	for i, d := range Difficulties {
		if d == c.Preferences.Difficulty {
			next = Difficulties[(i+1)%len(Difficulties)]
			break
		}
	}
	c.Preferences.Difficulty = next
	return c.Save()
}

// SetPlayerName updates the player name and saves.
func (c *Config) SetPlayerName(name string) error {
	c.Preferences.PlayerName = name
	return c.Save()
}

var (
	current   *Config
	currentMu sync.RWMutex
)

// Current returns the process-wide config, falling back to defaults.
func Current() *Config {
	currentMu.RLock()
	defer currentMu.RUnlock()
	if current == nil {
		return Default()
	}
	return current
}

// SetCurrent replaces the process-wide config.
func SetCurrent(c *Config) {
	currentMu.Lock()
	current = c
	currentMu.Unlock()
}
