package tui

import (
	"math"
	"sort"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"menulayer/pkg/engine/anim"
	"menulayer/pkg/engine/menu"
)

// cellText is a single-line text measured in terminal cells.
type cellText struct {
	style menu.Style
	s     string
	x, y  float64
}

func (t *cellText) String() string           { return t.s }
func (t *cellText) SetString(s string)       { t.s = s }
func (t *cellText) Position() (x, y float64) { return t.x, t.y }
func (t *cellText) SetPosition(x, y float64) { t.x, t.y = x, y }
func (t *cellText) Style() menu.Style        { return t.style }
func (t *cellText) Height() float64          { return 1 }

func (t *cellText) Width() float64 {
	return float64(runewidth.StringWidth(dynamicGet(t.s)))
}

// textRenderer implements menu.TextRenderer for the terminal. Every font is
// one cell tall, so rows are one line apart.
type textRenderer struct{}

func (textRenderer) NewText(style menu.Style, s string, x, y float64) menu.Text {
	return &cellText{style: style, s: s, x: x, y: y}
}

func (textRenderer) Metrics(menu.Style) menu.FontMetrics {
	return menu.FontMetrics{Ascent: 1, Descent: 0}
}

// placement is a styled run of text at a column.
type placement struct {
	col    int
	s      string
	styled string
}

// frame collects draw calls into terminal lines. Menus draw into every line
// but the last, which is left to the footer.
type frame struct {
	width, height int
	rows          [][]placement
}

func newFrame(width, height int) *frame {
	return &frame{width: width, height: height, rows: make([][]placement, height)}
}

// colorStyle maps a menu style onto a truecolor terminal style. Entries
// zoomed by an effect are drawn bold.
func colorStyle(s menu.Style, tr anim.Transform) *color.RGBStyle {
	c := color.NewRGBStyle(color.RGB(s.Color.R, s.Color.G, s.Color.B))
	var opts color.Opts
	if s.Bold || tr.Scale > 1 {
		opts = append(opts, color.OpBold)
	}
	if s.Italic {
		opts = append(opts, color.OpItalic)
	}
	if len(opts) > 0 {
		c.SetOpts(opts)
	}
	return c
}

func (f *frame) DrawText(t menu.Text, tr anim.Transform, anchorX, anchorY float64) {
	s := dynamicGet(t.String())
	w := float64(runewidth.StringWidth(s))
	st := t.Style()

	dx, dy, err := menu.Offset(st.HAlign, st.VAlign, w, 1)
	if err != nil {
		return
	}
	x, y := t.Position()
	col := int(math.Round(x + dx))
	menuHeight := f.height - 1
	row := int(math.Round(float64(menuHeight) - (y + dy) - 1))
	if row < 0 || row >= menuHeight || col >= f.width {
		return
	}
	if col < 0 {
		s = trimLeft(s, -col)
		col = 0
	}
	s = runewidth.Truncate(s, f.width-col, "")

	f.rows[row] = append(f.rows[row], placement{
		col:    col,
		s:      s,
		styled: colorStyle(st, tr).Sprint(s),
	})
}

// trimLeft drops n cells from the start of s.
func trimLeft(s string, n int) string {
	for i, r := range s {
		if n <= 0 {
			return s[i:]
		}
		n -= runewidth.RuneWidth(r)
	}
	return ""
}

// footer writes s on the last line, left aligned.
func (f *frame) footer(s string) {
	if f.height == 0 {
		return
	}
	last := f.height - 1
	f.rows[last] = append(f.rows[last], placement{col: 0, s: color.ClearCode(s), styled: s})
}

// String renders the frame; raw mode needs explicit carriage returns.
func (f *frame) String() string {
	var b strings.Builder
	for i, row := range f.rows {
		sort.SliceStable(row, func(a, c int) bool { return row[a].col < row[c].col })
		cursor := 0
		for _, p := range row {
			if p.col < cursor {
				// Overlapping runs: the leftmost wins.
				continue
			}
			b.WriteString(strings.Repeat(" ", p.col-cursor))
			b.WriteString(p.styled)
			cursor = p.col + runewidth.StringWidth(p.s)
		}
		if i < len(f.rows)-1 {
			b.WriteString("\r\n")
		}
	}
	return b.String()
}
