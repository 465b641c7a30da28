//go:build ebiten

package app

import (
	"image/color"

	"methuselah/internal/render"
	"methuselah/internal/sim"
	"methuselah/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a simulation driver to the ebiten.Game interface. The driver
// owns the stepping cadence; the game only forwards input and polls state.
type Game struct {
	driver  *sim.Driver
	painter *render.GridPainter
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for the provided driver.
func New(driver *sim.Driver, scale int) *Game {
	size := driver.Size()
	return &Game{
		driver:   driver,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
}

// Update handles input and lets the driver advance if due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.driver.Running() {
			g.driver.Stop()
		} else {
			g.driver.Start()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.driver.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.driver.Reset()
	}

	g.driver.Tick()
	g.overlay.SetStatus(g.driver.Generation(), g.driver.AliveCount(), !g.driver.Running())
	return nil
}

// Draw renders the current grid state and the status overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.driver.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.driver.Size()
	return s.W * g.scale, s.H * g.scale
}
