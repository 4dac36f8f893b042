package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"menulayer/pkg/engine/input"
	"menulayer/pkg/engine/menu"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	styles, align, err := cfg.MenuStyle()
	if err != nil {
		t.Fatalf("MenuStyle: %v", err)
	}
	if styles != menu.DefaultStyles() {
		t.Errorf("styles = %+v, want defaults", styles)
	}
	if align != (menu.Alignment{}) {
		t.Errorf("align = %+v, want center/center", align)
	}
	if !cfg.SoundEnabled() {
		t.Error("sound should default on")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
title: Pause
align:
  horizontal: left
  vertical: top
styles:
  item:
    size: 20
    color: [10, 20, 30]
preferences:
  difficulty: Hard
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Title != "Pause" {
		t.Errorf("Title = %q, want Pause", cfg.Title)
	}
	styles, align, err := cfg.MenuStyle()
	if err != nil {
		t.Fatalf("MenuStyle: %v", err)
	}
	if align.Horizontal != menu.HAlignLeft || align.Vertical != menu.VAlignTop {
		t.Errorf("align = %+v, want left/top", align)
	}
	if styles.Item.FontSize != 20 {
		t.Errorf("item size = %v, want 20", styles.Item.FontSize)
	}
	if styles.Item.Color.R != 10 || styles.Item.Color.A != 255 {
		t.Errorf("item color = %+v, want 10,20,30,255", styles.Item.Color)
	}
	if styles.ItemSelected.FontSize != 42 {
		t.Errorf("selected size = %v, want untouched 42", styles.ItemSelected.FontSize)
	}
	if cfg.Preferences.Difficulty != "Hard" {
		t.Errorf("Difficulty = %q, want Hard", cfg.Preferences.Difficulty)
	}
}

func TestLoadRejectsBadAlignment(t *testing.T) {
	path := writeConfig(t, "align:\n  horizontal: middle\n")
	_, err := Load(path)
	if !errors.Is(err, menu.ErrInvalidAlignment) {
		t.Errorf("Load error = %v, want ErrInvalidAlignment", err)
	}
}

func TestLoadRejectsBadColor(t *testing.T) {
	path := writeConfig(t, "styles:\n  title:\n    color: [1, 2]\n")
	if _, err := Load(path); err == nil {
		t.Error("Load should reject a two-component color")
	}
}

func TestPreferencesPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs", "menu.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := cfg.SetSound(false); err != nil {
		t.Fatalf("SetSound: %v", err)
	}
	if err := cfg.CycleDifficulty(); err != nil {
		t.Fatalf("CycleDifficulty: %v", err)
	}
	if err := cfg.SetPlayerName("Ada"); err != nil {
		t.Fatalf("SetPlayerName: %v", err)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	want := Preferences{Sound: false, Difficulty: "Hard", PlayerName: "Ada"}
	if again.Preferences != want {
		t.Errorf("Preferences = %+v, want %+v", again.Preferences, want)
	}
}

func TestCycleDifficultyWraps(t *testing.T) {
	cfg := Default()
	var seen []string
	for range Difficulties {
		if err := cfg.CycleDifficulty(); err != nil {
			t.Fatalf("CycleDifficulty: %v", err)
		}
		seen = append(seen, cfg.Preferences.Difficulty)
	}
	if seen[len(seen)-1] != "Normal" {
		t.Errorf("after a full cycle Difficulty = %q, want Normal; saw %v", seen[len(seen)-1], seen)
	}
}

func TestApplyBindings(t *testing.T) {
	cfg := Default()
	cfg.Bindings = map[string]string{"gamepad_x": "backspace"}
	if err := cfg.ApplyBindings(); err != nil {
		t.Fatalf("ApplyBindings: %v", err)
	}
	t.Cleanup(func() { _ = input.SetBinding("gamepad_x", input.KeyNone) })

	if got := input.MapToKey(input.DebouncedInput{Code: "gamepad_x"}); got != input.KeyBackspace {
		t.Errorf("MapToKey(gamepad_x) = %v, want backspace", got)
	}

	cfg.Bindings = map[string]string{"x": "jump"}
	if err := cfg.ApplyBindings(); err == nil {
		t.Error("unknown key name should fail")
	}
}

func TestCurrent(t *testing.T) {
	t.Cleanup(func() { SetCurrent(nil) })

	if Current().Title != Default().Title {
		t.Error("Current without SetCurrent should return defaults")
	}
	cfg := Default()
	cfg.Title = "Custom"
	SetCurrent(cfg)
	if Current() != cfg {
		t.Error("Current did not return the config set")
	}
}
