// Package menutest provides in-memory collaborators for exercising menus
// without a window.
package menutest

import (
	"unicode/utf8"

	"menulayer/pkg/engine/anim"
	"menulayer/pkg/engine/menu"
)

// Text is a fixed-advance text: every rune is half the font size wide and
// the height is the font size.
type Text struct {
	style menu.Style
	s     string
	x, y  float64
}

func (t *Text) String() string           { return t.s }
func (t *Text) SetString(s string)       { t.s = s }
func (t *Text) Width() float64           { return float64(utf8.RuneCountInString(t.s)) * t.style.FontSize / 2 }
func (t *Text) Height() float64          { return t.style.FontSize }
func (t *Text) Position() (x, y float64) { return t.x, t.y }
func (t *Text) SetPosition(x, y float64) { t.x, t.y = x, y }
func (t *Text) Style() menu.Style        { return t.style }

// Renderer creates Text values. Ascent is 0.8 and descent -0.2 of the font
// size, so a row is 0.9 of the item font size, rounded.
type Renderer struct {
	Created int
}

func (r *Renderer) NewText(style menu.Style, s string, x, y float64) menu.Text {
	r.Created++
	return &Text{style: style, s: s, x: x, y: y}
}

func (r *Renderer) Metrics(style menu.Style) menu.FontMetrics {
	return menu.FontMetrics{Ascent: style.FontSize * 0.8, Descent: -style.FontSize * 0.2}
}

// Viewport is a resizable fixed size.
type Viewport struct {
	W, H float64
}

func (v *Viewport) Size() (float64, float64) { return v.W, v.H }

// Cue counts plays.
type Cue struct {
	Plays int
}

func (c *Cue) Play() { c.Plays++ }

// Call is one scheduler request.
type Call struct {
	Op     string
	Target *anim.Transform
	Action anim.Action
}

// Scheduler records requests in order instead of running them.
type Scheduler struct {
	Calls []Call
}

func (s *Scheduler) Do(target *anim.Transform, a anim.Action) {
	s.Calls = append(s.Calls, Call{Op: "do", Target: target, Action: a})
}

func (s *Scheduler) Flush(target *anim.Transform) {
	s.Calls = append(s.Calls, Call{Op: "flush", Target: target})
}

// Reset forgets recorded calls.
func (s *Scheduler) Reset() { s.Calls = nil }

// Drawn is one DrawText call.
type Drawn struct {
	Text             string
	Style            menu.Style
	Transform        anim.Transform
	AnchorX, AnchorY float64
}

// Drawer records draw calls.
type Drawer struct {
	Drawn []Drawn
}

func (d *Drawer) DrawText(t menu.Text, tr anim.Transform, ax, ay float64) {
	d.Drawn = append(d.Drawn, Drawn{Text: t.String(), Style: t.Style(), Transform: tr, AnchorX: ax, AnchorY: ay})
}

// Env bundles fakes into a menu.Env.
type Env struct {
	Renderer  *Renderer
	Viewport  *Viewport
	Scheduler *Scheduler
}

// NewEnv returns fakes for an 800x600 viewport.
func NewEnv() *Env {
	return &Env{
		Renderer:  &Renderer{},
		Viewport:  &Viewport{W: 800, H: 600},
		Scheduler: &Scheduler{},
	}
}

// Menu returns the collaborators as a menu.Env.
func (e *Env) Menu() menu.Env {
	return menu.Env{Renderer: e.Renderer, Viewport: e.Viewport, Scheduler: e.Scheduler}
}
