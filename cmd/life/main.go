//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"methuselah/internal/app"
	"methuselah/internal/core"
	"methuselah/internal/life"
	"methuselah/internal/pattern"
	"methuselah/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	file := flag.String("pattern", "", "TOML pattern file to load a seed from")
	name := flag.String("name", "", "pattern name inside the file")
	width := flag.Int("width", 64, "grid width for random seeds")
	height := flag.Int("height", 64, "grid height for random seeds")
	seed := flag.Int64("seed", 1337, "seed for random grids")
	palive := flag.Float64("palive", 0.15, "per-cell alive probability for random grids")
	toroidal := flag.Bool("toroidal", false, "wrap grid edges instead of treating them as dead")
	scale := flag.Int("scale", 8, "screen pixels per cell")
	tps := flag.Int("tps", 10, "simulation steps per second")
	flag.Parse()

	edge := life.EdgeBounded
	if *toroidal {
		edge = life.EdgeToroidal
	}

	var grid *life.Grid
	if *file != "" {
		p, err := pattern.Load(*file, *name)
		if err != nil {
			log.Fatal(err)
		}
		grid, err = p.Grid(edge)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		g, err := life.New(*width, *height, edge)
		if err != nil {
			log.Fatal(err)
		}
		g.Randomize(core.NewRNG(*seed), *palive)
		grid = g
	}

	driver := sim.NewDriver(grid, *tps)
	game := app.New(driver, *scale)
	size := driver.Size()

	ebiten.SetWindowTitle("methuselah — game of life")
	ebiten.SetWindowSize(size.W*(*scale), size.H*(*scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
