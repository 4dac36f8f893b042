package menu

import "menulayer/pkg/engine/anim"

// Text is a positioned, measurable piece of text owned by a backend.
type Text interface {
	String() string
	SetString(s string)
	// Width and Height are the content size in viewport units.
	Width() float64
	Height() float64
	Position() (x, y float64)
	SetPosition(x, y float64)
	Style() Style
}

// FontMetrics are vertical metrics of a style. Descent is negative below
// the baseline.
type FontMetrics struct {
	Ascent  float64
	Descent float64
}

// TextRenderer creates texts and reports font metrics.
type TextRenderer interface {
	NewText(style Style, s string, x, y float64) Text
	Metrics(style Style) FontMetrics
}

// Viewport reports the drawable area. The origin is the bottom-left corner
// and y grows upward.
type Viewport interface {
	Size() (width, height float64)
}

// ViewportFunc adapts a function to Viewport.
type ViewportFunc func() (width, height float64)

func (f ViewportFunc) Size() (float64, float64) { return f() }

// Cue is a sound played on a menu event.
type Cue interface {
	Play()
}

// Scheduler runs visual effects on entry transforms.
type Scheduler interface {
	Do(target *anim.Transform, a anim.Action)
	Flush(target *anim.Transform)
}

// Drawer draws a text with a transform applied about its anchor.
type Drawer interface {
	DrawText(t Text, tr anim.Transform, anchorX, anchorY float64)
}

// Env carries the collaborators a menu needs from its backend.
type Env struct {
	Renderer TextRenderer
	Viewport Viewport
	// Scheduler is optional; without it effects are skipped.
	Scheduler Scheduler
	// ToMenu converts pointer coordinates from window space into menu space.
	// Nil means they already match.
	ToMenu func(x, y float64) (float64, float64)
}

func (e Env) toMenu(x, y float64) (float64, float64) {
	if e.ToMenu == nil {
		return x, y
	}
	return e.ToMenu(x, y)
}

// Effects are the visual reactions shared by every entry of a menu.
// A nil action means no effect.
type Effects struct {
	Selected   anim.Action
	Unselected anim.Action
	Activated  anim.Action
}

// run replaces whatever is running on target with a. A nil scheduler or
// action does nothing.
func (e Env) run(target *anim.Transform, a anim.Action) {
	if e.Scheduler == nil || a == nil {
		return
	}
	e.Scheduler.Flush(target)
	e.Scheduler.Do(target, a)
}
