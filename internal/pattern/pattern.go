// Package pattern persists Game of Life seed patterns in TOML files. A file
// maps pattern names to alive-cell coordinate lists plus the grid dimensions;
// discovered Methuselahs are appended under a "<cells>:<fitness>" name.
package pattern

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"methuselah/internal/life"
)

// defaultSize fills in dimensions for legacy files that only list cells.
const defaultSize = 20

// Pattern is one named seed configuration.
type Pattern struct {
	Name   string
	Width  int
	Height int
	Alive  []life.Cell
}

type section struct {
	AliveCells [][2]int `toml:"alive_cells"`
	Width      int      `toml:"width,omitempty"`
	Height     int      `toml:"height,omitempty"`
}

// Grid builds a grid seeded with the pattern under the given edge policy.
func (p Pattern) Grid(edge life.EdgePolicy) (*life.Grid, error) {
	return life.NewFromCells(p.Width, p.Height, edge, p.Alive)
}

// Load reads the named pattern from a TOML file.
func Load(path, name string) (Pattern, error) {
	doc := map[string]section{}
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return Pattern{}, fmt.Errorf("load pattern file %s: %w", path, err)
	}
	sec, ok := doc[name]
	if !ok {
		return Pattern{}, fmt.Errorf("pattern %q not found in %s", name, path)
	}
	return fromSection(name, sec), nil
}

// Names lists the patterns stored in a TOML file.
func Names(path string) ([]string, error) {
	doc := map[string]section{}
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("load pattern file %s: %w", path, err)
	}
	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	return names, nil
}

func fromSection(name string, sec section) Pattern {
	p := Pattern{Name: name, Width: sec.Width, Height: sec.Height}
	if p.Width <= 0 {
		p.Width = defaultSize
	}
	if p.Height <= 0 {
		p.Height = defaultSize
	}
	p.Alive = make([]life.Cell, 0, len(sec.AliveCells))
	for _, rc := range sec.AliveCells {
		p.Alive = append(p.Alive, life.Cell{Row: rc[0], Col: rc[1]})
	}
	return p
}

// Save appends the grid's alive cells to a TOML file under a name derived
// from the census and fitness, and returns that name. The file is created if
// missing; existing patterns are left untouched.
func Save(path string, g *life.Grid, fitness int) (string, error) {
	alive := g.AliveCells()
	name := fmt.Sprintf("%d:%d", len(alive), fitness)

	cells := make([][2]int, len(alive))
	for i, c := range alive {
		cells[i] = [2]int{c.Row, c.Col}
	}
	doc := map[string]section{
		name: {AliveCells: cells, Width: g.Width(), Height: g.Height()},
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("open pattern file %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(doc); err != nil {
		return "", fmt.Errorf("write pattern %q: %w", name, err)
	}
	if _, err := f.WriteString("\n"); err != nil {
		return "", fmt.Errorf("write pattern %q: %w", name, err)
	}
	return name, nil
}
