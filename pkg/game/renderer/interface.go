package renderer

import (
	"menulayer/pkg/engine/menu"
)

// Version and Commit are set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

// App is what a backend drives: the menu on screen and whether to stop.
type App interface {
	// Menu returns the menu to draw and feed input to this frame.
	Menu() *menu.Menu
	// Done reports that the application asked to exit.
	Done() bool
}

// Renderer defines the interface for menu rendering backends.
// Implementations include the Ebiten window and the terminal.
type Renderer interface {
	// Env returns the collaborators menus are built against.
	Env() menu.Env

	// LoadCue loads a sound cue. Backends without audio return a nil Cue.
	LoadCue(path string) (menu.Cue, error)

	// Run drives app until it is done or the backend is closed.
	Run(app App) error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// VersionString returns the version line shown on screen.
func VersionString() string {
	s := "Version: " + Version
	if Commit != "unknown" && len(Commit) >= 7 {
		s += " (" + Commit[:7] + ")"
	}
	return s
}
