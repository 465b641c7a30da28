// Package sim runs Game of Life grids forward: the fitness evaluator used by
// the genetic search and the pull-based driver used by the viewer.
package sim

import (
	"methuselah/internal/life"
)

// Reason records why a simulation run terminated.
type Reason int

const (
	// ReasonExtinct means the population reached zero alive cells.
	ReasonExtinct Reason = iota
	// ReasonStabilized means a step produced no change (a period-1 cycle).
	ReasonStabilized
	// ReasonBudgetExhausted means the step budget elapsed first. Oscillators
	// with period greater than one land here; only period-1 cycles are
	// detected early.
	ReasonBudgetExhausted
)

func (r Reason) String() string {
	switch r {
	case ReasonExtinct:
		return "extinct"
	case ReasonStabilized:
		return "stabilized"
	default:
		return "budget exhausted"
	}
}

// Result captures the telemetry of one evaluation run.
type Result struct {
	// MaxAlive is the largest alive-cell count observed across every
	// generation visited, including generation 0. It is the fitness score.
	MaxAlive int
	// MaxAliveGen is the generation at which the peak was first reached.
	MaxAliveGen int
	// Generations is the number of steps executed before termination.
	Generations int
	// Reason explains which terminal condition ended the run.
	Reason Reason
}

// Evaluate runs the grid forward for at most maxGenerations steps and reports
// the peak population. The caller's grid is never mutated; the evaluator steps
// its own copy. For a fixed grid, budget and edge policy the result is exactly
// reproducible: nothing in here is randomized.
func Evaluate(g *life.Grid, maxGenerations int) Result {
	world := g.Clone()

	alive := world.AliveCount()
	res := Result{MaxAlive: alive, MaxAliveGen: 0}

	if alive == 0 {
		res.Reason = ReasonExtinct
		return res
	}

	for gen := 1; gen <= maxGenerations; gen++ {
		changed := world.Step()
		res.Generations = gen

		alive = world.AliveCount()
		if alive > res.MaxAlive {
			res.MaxAlive = alive
			res.MaxAliveGen = gen
		}

		if alive == 0 {
			res.Reason = ReasonExtinct
			return res
		}
		if !changed {
			res.Reason = ReasonStabilized
			return res
		}
	}

	res.Reason = ReasonBudgetExhausted
	return res
}
