// Package genetic evolves populations of Game of Life grids toward
// long-lived, high-population "Methuselah" patterns.
package genetic

import (
	"runtime"

	"methuselah/internal/core"
	"methuselah/internal/life"
)

// SeedMode selects how random individuals are seeded.
type SeedMode int

const (
	// SeedSparse places a bounded number of alive cells in the central half
	// of the grid.
	SeedSparse SeedMode = iota
	// SeedBernoulli makes every cell independently alive at AliveProb.
	SeedBernoulli
)

// Config is the full tunable surface of the genetic search.
type Config struct {
	// PopulationSize is the number of individuals per generation.
	PopulationSize int

	// GridWidth and GridHeight are the dimensions shared by every
	// individual's grid.
	GridWidth  int
	GridHeight int
	// Edge is the boundary policy applied to every simulated grid.
	Edge life.EdgePolicy

	// Seeding of the initial population.
	SeedMode  SeedMode
	AliveProb float64 // per-cell alive probability for SeedBernoulli
	MinCells  int     // census bounds for SeedSparse
	MaxCells  int

	// Operators.
	Selection      string  // "roulette" or "tournament"
	TournamentSize int
	Crossover      string  // "uniform" or "rowsplit"
	CrossoverProb  float64 // chance a parent pair is crossed rather than cloned
	MutationProb   float64 // per-cell flip probability applied to children
	Elitism        bool

	// Budgets and goal.
	MaxGenerations   int // step budget per fitness evaluation
	GenerationBudget int // GA generations before giving up
	Threshold        int // fitness at which a pattern counts as a Methuselah

	// Workers bounds concurrent fitness evaluations.
	Workers int

	// Seed drives every randomized decision for reproducible runs.
	Seed int64
}

// DefaultConfig returns the standard search configuration.
func DefaultConfig() Config {
	return Config{
		PopulationSize:   50,
		GridWidth:        20,
		GridHeight:       20,
		Edge:             life.EdgeBounded,
		SeedMode:         SeedSparse,
		AliveProb:        0.05,
		MinCells:         5,
		MaxCells:         10,
		Selection:        "roulette",
		TournamentSize:   3,
		Crossover:        "uniform",
		CrossoverProb:    0.8,
		MutationProb:     0.01,
		Elitism:          true,
		MaxGenerations:   400,
		GenerationBudget: 200,
		Threshold:        100,
		Workers:          runtime.NumCPU(),
		Seed:             1337,
	}
}

// Validate checks every precondition the search relies on. All violations are
// reported as InvalidConfigurationError; nothing here is retried or clamped.
func (c Config) Validate() error {
	if c.PopulationSize <= 0 {
		return &core.InvalidConfigurationError{Field: "PopulationSize", Reason: "must be positive"}
	}
	if c.GridWidth <= 0 || c.GridHeight <= 0 {
		return &core.InvalidConfigurationError{Field: "GridWidth/GridHeight", Reason: "must be positive"}
	}
	if c.AliveProb < 0 || c.AliveProb > 1 {
		return &core.InvalidConfigurationError{Field: "AliveProb", Reason: "must be in [0,1]"}
	}
	if c.CrossoverProb < 0 || c.CrossoverProb > 1 {
		return &core.InvalidConfigurationError{Field: "CrossoverProb", Reason: "must be in [0,1]"}
	}
	if c.MutationProb < 0 || c.MutationProb > 1 {
		return &core.InvalidConfigurationError{Field: "MutationProb", Reason: "must be in [0,1]"}
	}
	if c.MinCells < 0 || c.MaxCells < c.MinCells {
		return &core.InvalidConfigurationError{Field: "MinCells/MaxCells", Reason: "need 0 <= min <= max"}
	}
	if c.MaxGenerations <= 0 {
		return &core.InvalidConfigurationError{Field: "MaxGenerations", Reason: "must be positive"}
	}
	if c.GenerationBudget <= 0 {
		return &core.InvalidConfigurationError{Field: "GenerationBudget", Reason: "must be positive"}
	}
	if c.Workers <= 0 {
		return &core.InvalidConfigurationError{Field: "Workers", Reason: "must be positive"}
	}
	if c.Selection == "tournament" && c.TournamentSize < 2 {
		return &core.InvalidConfigurationError{Field: "TournamentSize", Reason: "must be at least 2"}
	}
	if _, ok := selectors[c.Selection]; !ok {
		return &core.InvalidConfigurationError{Field: "Selection", Reason: "unknown strategy " + c.Selection}
	}
	if _, ok := crossovers[c.Crossover]; !ok {
		return &core.InvalidConfigurationError{Field: "Crossover", Reason: "unknown strategy " + c.Crossover}
	}
	return nil
}
