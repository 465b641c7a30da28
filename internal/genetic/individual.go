package genetic

import "methuselah/internal/life"

// Fitness is a tagged score: either unevaluated or a concrete value. The
// Evaluating phase guarantees every individual carries an evaluated fitness
// before selection begins.
type Fitness struct {
	score     int
	evaluated bool
}

// EvaluatedFitness wraps a concrete score.
func EvaluatedFitness(score int) Fitness {
	return Fitness{score: score, evaluated: true}
}

// Score returns the value and whether it has been evaluated.
func (f Fitness) Score() (int, bool) {
	return f.score, f.evaluated
}

// Evaluated reports whether a score has been cached.
func (f Fitness) Evaluated() bool { return f.evaluated }

// Individual is one GA candidate: a grid plus its cached fitness and the GA
// generation it was created in. Crossover and mutation always produce new
// individuals; an evaluated individual is never modified.
type Individual struct {
	Grid *life.Grid
	Born int

	fitness Fitness
}

// NewIndividual wraps a grid created in the given GA generation.
func NewIndividual(g *life.Grid, born int) *Individual {
	return &Individual{Grid: g, Born: born}
}

// Fitness returns the cached fitness tag.
func (in *Individual) Fitness() Fitness { return in.fitness }

// Evaluated reports whether the individual carries a cached score.
func (in *Individual) Evaluated() bool { return in.fitness.evaluated }

// score returns the cached value, valid only after the Evaluating barrier.
func (in *Individual) score() int { return in.fitness.score }
