//go:build ebiten

package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the simulation status line: generation index, alive count and
// the paused indicator.
type Overlay struct {
	status string
}

// NewOverlay constructs an empty overlay.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// SetStatus refreshes the status line from the driver state.
func (o *Overlay) SetStatus(generation, alive int, paused bool) {
	state := "running"
	if paused {
		state = "paused"
	}
	o.status = fmt.Sprintf("Generation: %d  Alive: %d  [%s]", generation, alive, state)
}

// Draw paints the status line in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.status == "" {
		return
	}
	face := basicfont.Face7x13
	text.Draw(screen, o.status, face, 6, 16, shadow)
	text.Draw(screen, o.status, face, 5, 15, foreground)
}
