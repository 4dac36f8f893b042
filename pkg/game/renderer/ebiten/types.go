// Package ebiten provides an Ebiten-based 2D graphical renderer for menus.
package ebiten

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"menulayer/pkg/engine/anim"
	"menulayer/pkg/game/renderer"
)

// floatingTile is one drifting glyph of the menu background.
type floatingTile struct {
	x, y          float64
	vx, vy        float64
	icon          string
	color         color.Color
	alpha         float32
	rotation      float64
	rotationSpeed float64
}

// fontKey selects one of the embedded font files.
type fontKey struct {
	mono   bool
	bold   bool
	italic bool
}

// faceKey identifies a cached face.
type faceKey struct {
	font fontKey
	size float64
}

// EbitenRenderer implements renderer.Renderer on an Ebiten window.
type EbitenRenderer struct {
	title string

	// windowWidth and windowHeight are the initial window size; screenWidth
	// and screenHeight follow the window through Layout.
	windowWidth, windowHeight int
	screenMu                  sync.RWMutex
	screenWidth, screenHeight int

	fontSources map[fontKey]*text.GoTextFaceSource
	faces       map[faceKey]*text.GoTextFace
	fontsMu     sync.Mutex

	scheduler *anim.Scheduler
	app       renderer.App

	cursorX, cursorY int
	cursorKnown      bool

	windowOpenedLogged bool

	floatingTiles      []floatingTile
	floatingTilesMutex sync.RWMutex

	// versionFace is used for the footer line.
	versionFace *text.GoTextFace
}

var _ renderer.Renderer = (*EbitenRenderer)(nil)
var _ ebiten.Game = (*EbitenRenderer)(nil)
