package main

import (
	"flag"
	"fmt"
	"log"

	"methuselah/internal/core"
	"methuselah/internal/life"
	"methuselah/internal/pattern"
	"methuselah/internal/sim"
)

func main() {
	file := flag.String("pattern", "patterns.toml", "TOML pattern file")
	name := flag.String("name", "", "pattern name to evaluate (empty lists available names)")
	steps := flag.Int("steps", 400, "simulation step budget")
	toroidal := flag.Bool("toroidal", false, "wrap grid edges instead of treating them as dead")
	width := flag.Int("width", 0, "override grid width")
	height := flag.Int("height", 0, "override grid height")
	seed := flag.Int64("seed", 0, "seed a random grid instead of loading a pattern")
	palive := flag.Float64("palive", 0.15, "per-cell alive probability for random grids")
	flag.Parse()

	edge := life.EdgeBounded
	if *toroidal {
		edge = life.EdgeToroidal
	}

	var grid *life.Grid
	switch {
	case *seed != 0:
		w, h := *width, *height
		if w == 0 {
			w = 64
		}
		if h == 0 {
			h = 64
		}
		g, err := life.New(w, h, edge)
		if err != nil {
			log.Fatal(err)
		}
		g.Randomize(core.NewRNG(*seed), *palive)
		grid = g
	case *name == "":
		names, err := pattern.Names(*file)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Patterns in %s:\n", *file)
		for _, n := range names {
			fmt.Printf("  %s\n", n)
		}
		return
	default:
		p, err := pattern.Load(*file, *name)
		if err != nil {
			log.Fatal(err)
		}
		if *width > 0 {
			p.Width = *width
		}
		if *height > 0 {
			p.Height = *height
		}
		g, err := p.Grid(edge)
		if err != nil {
			log.Fatal(err)
		}
		grid = g
	}

	res := sim.Evaluate(grid, *steps)
	fmt.Printf("Simulation ended at generation %d (%s)\n", res.Generations, res.Reason)
	fmt.Printf("Peak population %d at generation %d, starting from %d cells\n",
		res.MaxAlive, res.MaxAliveGen, grid.AliveCount())
}
