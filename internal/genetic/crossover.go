package genetic

import (
	"methuselah/internal/core"
	"methuselah/internal/life"
)

// Crossover combines two parent grids into two children of identical
// dimensions. Parents are never modified. Mismatched parent dimensions fail
// fast with DimensionMismatchError; the operators never truncate or pad.
type Crossover interface {
	Cross(a, b *life.Grid, rng *core.RNG) (*life.Grid, *life.Grid, error)
}

func checkDimensions(a, b *life.Grid) error {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return &core.DimensionMismatchError{A: a.Size(), B: b.Size()}
	}
	return nil
}

// UniformCrossover picks every cell independently from one of the two
// parents. The second child receives the complementary choice.
type UniformCrossover struct{}

func (UniformCrossover) Cross(a, b *life.Grid, rng *core.RNG) (*life.Grid, *life.Grid, error) {
	if err := checkDimensions(a, b); err != nil {
		return nil, nil, err
	}
	c1 := a.Clone()
	c2 := a.Clone()
	ca, cb := a.Cells(), b.Cells()
	d1, d2 := c1.Cells(), c2.Cells()
	for i := range ca {
		if rng.Bool() {
			d1[i], d2[i] = ca[i], cb[i]
		} else {
			d1[i], d2[i] = cb[i], ca[i]
		}
	}
	return c1, c2, nil
}

// RowSplitCrossover cuts both parents at one random row boundary and swaps
// the halves, a geometric one-point crossover.
type RowSplitCrossover struct{}

func (RowSplitCrossover) Cross(a, b *life.Grid, rng *core.RNG) (*life.Grid, *life.Grid, error) {
	if err := checkDimensions(a, b); err != nil {
		return nil, nil, err
	}
	c1 := a.Clone()
	c2 := b.Clone()
	h, w := a.Height(), a.Width()

	split := 1
	if h > 1 {
		split = 1 + rng.IntN(h-1)
	}
	cut := split * w

	d1, d2 := c1.Cells(), c2.Cells()
	cb, ca := b.Cells(), a.Cells()
	copy(d1[cut:], cb[cut:])
	copy(d2[cut:], ca[cut:])
	return c1, c2, nil
}

func init() {
	RegisterCrossover("uniform", func(Config) Crossover { return UniformCrossover{} })
	RegisterCrossover("rowsplit", func(Config) Crossover { return RowSplitCrossover{} })
}
