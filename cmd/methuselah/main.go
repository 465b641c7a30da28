package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"methuselah/internal/genetic"
	"methuselah/internal/life"
	"methuselah/internal/pattern"
	"methuselah/internal/sim"
)

func main() {
	cfg := genetic.DefaultConfig()

	flag.IntVar(&cfg.PopulationSize, "pop", cfg.PopulationSize, "population size per GA generation")
	flag.IntVar(&cfg.GridWidth, "width", cfg.GridWidth, "grid width for every individual")
	flag.IntVar(&cfg.GridHeight, "height", cfg.GridHeight, "grid height for every individual")
	flag.IntVar(&cfg.MinCells, "min-cells", cfg.MinCells, "minimum seed cells per random individual")
	flag.IntVar(&cfg.MaxCells, "max-cells", cfg.MaxCells, "maximum seed cells per random individual")
	flag.Float64Var(&cfg.AliveProb, "palive", cfg.AliveProb, "per-cell alive probability (dense seeding)")
	flag.Float64Var(&cfg.MutationProb, "pmutate", cfg.MutationProb, "per-cell mutation probability")
	flag.Float64Var(&cfg.CrossoverProb, "pcross", cfg.CrossoverProb, "probability of crossing a parent pair")
	flag.IntVar(&cfg.MaxGenerations, "steps", cfg.MaxGenerations, "simulation step budget per fitness evaluation")
	flag.IntVar(&cfg.GenerationBudget, "generations", cfg.GenerationBudget, "GA generation budget")
	flag.IntVar(&cfg.Threshold, "threshold", cfg.Threshold, "fitness at which a pattern counts as a Methuselah")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel fitness evaluations")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for deterministic runs")
	flag.BoolVar(&cfg.Elitism, "elitism", cfg.Elitism, "carry the best individual unchanged")
	selection := flag.String("selection", cfg.Selection,
		"selection strategy ("+strings.Join(genetic.SelectorNames(), ", ")+")")
	flag.IntVar(&cfg.TournamentSize, "tournament", cfg.TournamentSize, "tournament size for tournament selection")
	crossover := flag.String("crossover", cfg.Crossover,
		"crossover strategy ("+strings.Join(genetic.CrossoverNames(), ", ")+")")
	dense := flag.Bool("dense", false, "seed individuals densely with -palive instead of sparse central cells")
	toroidal := flag.Bool("toroidal", false, "wrap grid edges instead of treating them as dead")
	out := flag.String("out", "patterns.toml", "pattern file the best individual is appended to (empty to skip)")
	flag.Parse()

	cfg.Selection = *selection
	cfg.Crossover = *crossover
	if *dense {
		cfg.SeedMode = genetic.SeedBernoulli
	}
	if *toroidal {
		cfg.Edge = life.EdgeToroidal
	}

	engine, err := genetic.NewEngine(cfg)
	if err != nil {
		log.Fatal(err)
	}
	engine.Progress = func(gen, best int) {
		if gen%10 == 0 {
			fmt.Printf("Generation %d: best fitness so far %d\n", gen, best)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	outcome, err := engine.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	if errors.Is(err, context.Canceled) {
		fmt.Println("Interrupted; reporting the best individual found so far.")
	}

	if outcome.Converged {
		fmt.Printf("Found a Methuselah after %d generations with fitness %d\n",
			outcome.Generations, outcome.BestFitness)
	} else {
		fmt.Printf("No Methuselah within %d generations; best fitness %d\n",
			outcome.Generations, outcome.BestFitness)
	}

	best := outcome.Best
	if best == nil {
		return
	}
	res := sim.Evaluate(best.Grid, cfg.MaxGenerations)
	fmt.Printf("Best pattern: %d seed cells, peak population %d at generation %d, ended %s after %d steps\n",
		best.Grid.AliveCount(), res.MaxAlive, res.MaxAliveGen, res.Reason, res.Generations)

	if *out != "" {
		name, err := pattern.Save(*out, best.Grid, outcome.BestFitness)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Saved pattern %q to %s\n", name, *out)
	}
}
