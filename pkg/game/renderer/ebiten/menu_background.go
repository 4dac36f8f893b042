package ebiten

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// initFloatingTiles scatters the background glyphs over the screen.
func (e *EbitenRenderer) initFloatingTiles(screenWidth, screenHeight int) {
	if screenWidth <= 0 || screenHeight <= 0 {
		return
	}

	e.floatingTilesMutex.Lock()
	defer e.floatingTilesMutex.Unlock()

	// Create 30-50 floating tiles
	numTiles := 30 + rand.Intn(21)
	e.floatingTiles = make([]floatingTile, numTiles)

	const tileMovementSpeed = 1.3

	for i := range e.floatingTiles {
		tile := &e.floatingTiles[i]
		tile.x = rand.Float64() * float64(screenWidth)
		tile.y = rand.Float64() * float64(screenHeight)

		// Slow drift
		tile.vx = (rand.Float64() - 0.5) * tileMovementSpeed
		tile.vy = (rand.Float64() - 0.5) * tileMovementSpeed

		tile.icon = backgroundIcons[rand.Intn(len(backgroundIcons))]
		tile.color = backgroundColors[rand.Intn(len(backgroundColors))]
		tile.alpha = 2.5

		tile.rotation = rand.Float64() * 2 * math.Pi
		tile.rotationSpeed = (rand.Float64() - 0.5) * 0.026
	}
}

// updateFloatingTiles updates the positions of floating tiles each frame.
func (e *EbitenRenderer) updateFloatingTiles(screenWidth, screenHeight int) {
	e.floatingTilesMutex.Lock()
	defer e.floatingTilesMutex.Unlock()

	for i := range e.floatingTiles {
		tile := &e.floatingTiles[i]

		tile.x += tile.vx
		tile.y += tile.vy

		// Wrap around screen edges
		if tile.x < 0 {
			tile.x += float64(screenWidth)
		} else if tile.x >= float64(screenWidth) {
			tile.x -= float64(screenWidth)
		}
		if tile.y < 0 {
			tile.y += float64(screenHeight)
		} else if tile.y >= float64(screenHeight) {
			tile.y -= float64(screenHeight)
		}

		tile.rotation += tile.rotationSpeed
		if tile.rotation > 2*math.Pi {
			tile.rotation -= 2 * math.Pi
		} else if tile.rotation < 0 {
			tile.rotation += 2 * math.Pi
		}

		// Occasional drift change for more organic movement
		if rand.Float64() < 0.01 {
			tile.vx = clamp(tile.vx+(rand.Float64()-0.5)*0.13, -1, 1)
			tile.vy = clamp(tile.vy+(rand.Float64()-0.5)*0.13, -1, 1)
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// drawFloatingTilesBackground draws the floating tiles behind the menu.
func (e *EbitenRenderer) drawFloatingTilesBackground(screen *ebiten.Image) {
	e.floatingTilesMutex.RLock()
	tiles := make([]floatingTile, len(e.floatingTiles))
	copy(tiles, e.floatingTiles)
	e.floatingTilesMutex.RUnlock()

	face := e.getMonoFontFace()
	for _, tile := range tiles {
		w, h := text.Measure(tile.icon, face, 0)
		if w <= 0 || h <= 0 {
			continue
		}

		r, g, b, a := tile.color.RGBA()
		tileColor := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}

		op := &text.DrawOptions{}
		// Rotate about the glyph centre.
		op.GeoM.Translate(-w/2, -h/2)
		op.GeoM.Rotate(tile.rotation)
		op.GeoM.Translate(tile.x, tile.y)
		op.ColorScale.Scale(tile.alpha, tile.alpha, tile.alpha, tile.alpha)
		op.ColorScale.ScaleWithColor(tileColor)

		text.Draw(screen, tile.icon, face, op)
	}
}
