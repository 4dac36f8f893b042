package ebiten

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"menulayer/pkg/engine/anim"
	"menulayer/pkg/engine/menu"
	"menulayer/pkg/game/renderer"
)

// New creates an Ebiten renderer with the given initial window size.
func New(title string, width, height int) (*EbitenRenderer, error) {
	e := &EbitenRenderer{
		title:        title,
		windowWidth:  width,
		windowHeight: height,
		screenWidth:  width,
		screenHeight: height,
		scheduler:    anim.NewScheduler(),
	}
	if err := e.loadFonts(); err != nil {
		return nil, err
	}
	e.versionFace = e.face(fontKey{}, versionFontSize)
	return e, nil
}

// Size implements menu.Viewport with the current logical screen size.
func (e *EbitenRenderer) Size() (width, height float64) {
	e.screenMu.RLock()
	defer e.screenMu.RUnlock()
	return float64(e.screenWidth), float64(e.screenHeight)
}

// toMenu flips window coordinates (y down) into menu space (y up).
func (e *EbitenRenderer) toMenu(x, y float64) (float64, float64) {
	_, h := e.Size()
	return x, h - y
}

// Env returns the collaborators for menus drawn by this renderer.
func (e *EbitenRenderer) Env() menu.Env {
	return menu.Env{
		Renderer:  textRenderer{e: e},
		Viewport:  e,
		Scheduler: e.scheduler,
		ToMenu:    e.toMenu,
	}
}

// Run opens the window and drives app until it is done or the window closes.
func (e *EbitenRenderer) Run(app renderer.App) error {
	e.app = app
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(e.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	e.initFloatingTiles(e.windowWidth, e.windowHeight)

	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// Update handles input and effects (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}
	if e.app.Done() {
		return ebiten.Termination
	}

	w, h := e.Size()
	e.updateFloatingTiles(int(w), int(h))
	e.scheduler.Tick(time.Second / time.Duration(ebiten.TPS()))

	if _, err := e.app.Menu().SyncViewport(); err != nil {
		return err
	}
	for _, ev := range e.pollEvents() {
		// The current menu may change while events are handled.
		if _, err := e.app.Menu().HandleEvent(ev); err != nil {
			return err
		}
		if e.app.Done() {
			return ebiten.Termination
		}
	}
	return nil
}

// Draw renders the background, the current menu and the version footer
// (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	e.drawFloatingTilesBackground(screen)

	_, h := e.Size()
	e.app.Menu().Draw(screenDrawer{screen: screen, height: h})

	version := renderer.VersionString()
	op := &text.DrawOptions{}
	op.GeoM.Translate(4, h-versionFontSize*1.5)
	op.ColorScale.ScaleWithColor(pulsingColor(colorSubtle, time.Now()))
	text.Draw(screen, version, e.versionFace, op)
}

// Layout tracks the window size so menus lay out against it (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.screenMu.Lock()
	resized := outsideWidth != e.screenWidth || outsideHeight != e.screenHeight
	e.screenWidth, e.screenHeight = outsideWidth, outsideHeight
	e.screenMu.Unlock()

	if resized {
		e.initFloatingTiles(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
