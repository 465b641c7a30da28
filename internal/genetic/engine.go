package genetic

import (
	"context"

	"github.com/sourcegraph/conc/pool"

	"methuselah/internal/core"
	"methuselah/internal/life"
	"methuselah/internal/sim"
)

// Outcome is the terminal result of a search run. Converged distinguishes a
// found Methuselah from the best-effort individual returned when the
// generation budget runs out; callers must branch on it.
type Outcome struct {
	Best        *Individual
	BestFitness int
	Generations int
	Converged   bool
}

// Engine runs the genetic search loop:
// initialize, then evaluate -> select -> reproduce until the fitness threshold
// is met or the generation budget is exhausted.
type Engine struct {
	cfg       Config
	rng       *core.RNG
	selector  Selector
	crossover Crossover
	pop       Population

	// Progress, when set, is called once per GA generation with the best
	// fitness of the freshly evaluated population.
	Progress func(generation, bestFitness int)
}

// NewEngine validates the configuration and resolves the named strategies.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:       cfg,
		rng:       core.NewRNG(cfg.Seed),
		selector:  selectors[cfg.Selection](cfg),
		crossover: crossovers[cfg.Crossover](cfg),
	}, nil
}

// Run executes the search until convergence, budget exhaustion or context
// cancellation. Cancellation is only observed between generations; a single
// generation's work is bounded by MaxGenerations per individual, so no
// evaluation blocks indefinitely.
func (e *Engine) Run(ctx context.Context) (Outcome, error) {
	if err := e.initialize(); err != nil {
		return Outcome{}, err
	}

	for gen := 0; ; gen++ {
		e.evaluate()

		best := e.pop.Best()
		bestScore, _ := best.Fitness().Score()
		if e.Progress != nil {
			e.Progress(gen, bestScore)
		}

		out := Outcome{Best: best, BestFitness: bestScore, Generations: gen + 1}
		if bestScore >= e.cfg.Threshold {
			out.Converged = true
			return out, nil
		}
		if gen+1 >= e.cfg.GenerationBudget {
			return out, nil
		}

		select {
		case <-ctx.Done():
			return out, ctx.Err()
		default:
		}

		if err := e.reproduce(gen + 1); err != nil {
			return out, err
		}
	}
}

// initialize builds the starting population of random grids.
func (e *Engine) initialize() error {
	e.pop = make(Population, 0, e.cfg.PopulationSize)
	for i := 0; i < e.cfg.PopulationSize; i++ {
		g, err := life.New(e.cfg.GridWidth, e.cfg.GridHeight, e.cfg.Edge)
		if err != nil {
			return err
		}
		switch e.cfg.SeedMode {
		case SeedBernoulli:
			g.Randomize(e.rng, e.cfg.AliveProb)
		default:
			g.SeedSparse(e.rng, e.cfg.MinCells, e.cfg.MaxCells)
		}
		e.pop = append(e.pop, NewIndividual(g, 0))
	}
	return nil
}

// evaluate scores every individual lacking a cached fitness. Evaluations are
// independent (each task owns its own grid copy), so they fan out across a
// bounded worker pool; Wait is the barrier before selection starts.
// Individuals carried over by elitism keep their cached score.
func (e *Engine) evaluate() {
	p := pool.New().WithMaxGoroutines(e.cfg.Workers)
	for _, in := range e.pop {
		if in.Evaluated() {
			continue
		}
		in := in
		p.Go(func() {
			res := sim.Evaluate(in.Grid, e.cfg.MaxGenerations)
			in.fitness = EvaluatedFitness(res.MaxAlive)
		})
	}
	p.Wait()
}

// reproduce produces the next generation: optional elite carry-over, then
// selected parent pairs crossed and mutated until the population is full.
func (e *Engine) reproduce(born int) error {
	next := make(Population, 0, e.cfg.PopulationSize)
	if e.cfg.Elitism {
		next = append(next, e.pop.Best())
	}

	for len(next) < e.cfg.PopulationSize {
		pa := e.selector.Select(e.pop, e.rng)
		pb := e.selector.Select(e.pop, e.rng)

		var c1, c2 *life.Grid
		if e.rng.Chance(e.cfg.CrossoverProb) {
			var err error
			c1, c2, err = e.crossover.Cross(pa.Grid, pb.Grid, e.rng)
			if err != nil {
				return err
			}
		} else {
			c1, c2 = pa.Grid.Clone(), pb.Grid.Clone()
		}

		Mutate(c1, e.cfg.MutationProb, e.rng)
		next = append(next, NewIndividual(c1, born))
		if len(next) < e.cfg.PopulationSize {
			Mutate(c2, e.cfg.MutationProb, e.rng)
			next = append(next, NewIndividual(c2, born))
		}
	}

	e.pop = next
	return nil
}

// PopulationSize reports the current population size; it stays constant at
// the configured N across every generation.
func (e *Engine) PopulationSize() int { return len(e.pop) }
