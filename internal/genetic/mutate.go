package genetic

import (
	"methuselah/internal/core"
	"methuselah/internal/life"
)

// Mutate flips each cell of the grid independently with probability p. It is
// applied in place to freshly produced children, never to evaluated parents.
func Mutate(g *life.Grid, p float64, rng *core.RNG) {
	if p <= 0 {
		return
	}
	cells := g.Cells()
	for i := range cells {
		if rng.Chance(p) {
			cells[i] ^= 1
		}
	}
}
