package ebiten

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	"menulayer/pkg/engine/menu"
)

var fontFiles = map[fontKey][]byte{
	{}:                         goregular.TTF,
	{bold: true}:               gobold.TTF,
	{italic: true}:             goitalic.TTF,
	{bold: true, italic: true}: gobolditalic.TTF,
	{mono: true}:               gomono.TTF,
	{mono: true, bold: true}:   gomonobold.TTF,
}

// loadFonts parses the embedded Go fonts.
func (e *EbitenRenderer) loadFonts() error {
	e.fontSources = make(map[fontKey]*text.GoTextFaceSource, len(fontFiles))
	for k, ttf := range fontFiles {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
		if err != nil {
			return fmt.Errorf("parse font %+v: %w", k, err)
		}
		e.fontSources[k] = src
	}
	e.faces = make(map[faceKey]*text.GoTextFace)
	return nil
}

// isMonoFamily maps font names onto the mono face; everything else uses the
// proportional Go font.
func isMonoFamily(name string) bool {
	switch strings.ToLower(name) {
	case "mono", "monospace", "courier", "courier new", "go mono":
		return true
	}
	return false
}

func styleFont(s menu.Style) fontKey {
	k := fontKey{mono: isMonoFamily(s.FontName), bold: s.Bold, italic: s.Italic}
	if k.mono {
		// No mono italic files are embedded.
		k.italic = false
	}
	return k
}

// pixelSize converts a point size at the style's DPI to pixels.
func pixelSize(s menu.Style) float64 {
	dpi := s.DPI
	if dpi <= 0 {
		dpi = 96
	}
	return s.FontSize * float64(dpi) / 72
}

// getFace returns a cached face for the style.
func (e *EbitenRenderer) getFace(s menu.Style) *text.GoTextFace {
	return e.face(styleFont(s), pixelSize(s))
}

func (e *EbitenRenderer) face(k fontKey, size float64) *text.GoTextFace {
	e.fontsMu.Lock()
	defer e.fontsMu.Unlock()

	key := faceKey{font: k, size: size}
	if f, ok := e.faces[key]; ok {
		return f
	}
	f := &text.GoTextFace{
		Source: e.fontSources[k],
		Size:   size,
	}
	e.faces[key] = f
	return f
}

// getMonoFontFace returns the face used for background glyphs.
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	return e.face(fontKey{mono: true}, backgroundFontSize)
}
