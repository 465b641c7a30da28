// Package life implements the Conway's Game of Life grid engine: a fixed-size
// boolean cell field with a synchronous, double-buffered transition rule.
package life

import (
	"methuselah/internal/core"
)

// EdgePolicy selects how neighbor lookups treat the grid boundary. The policy
// is fixed at construction and holds for every step of the grid's lifetime.
type EdgePolicy int

const (
	// EdgeBounded treats off-grid neighbors as permanently dead.
	EdgeBounded EdgePolicy = iota
	// EdgeToroidal wraps neighbor coordinates modulo the grid dimensions.
	EdgeToroidal
)

func (p EdgePolicy) String() string {
	if p == EdgeToroidal {
		return "toroidal"
	}
	return "bounded"
}

// Cell addresses a single grid position by row and column.
type Cell struct {
	Row int
	Col int
}

// Grid stores cell states in row-major order with a second buffer for the
// synchronous step. Dimensions and edge policy never change after construction.
type Grid struct {
	w, h int
	edge EdgePolicy
	cur  []uint8
	nxt  []uint8
}

// New returns an all-dead grid with the provided dimensions.
func New(w, h int, edge EdgePolicy) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, &core.InvalidDimensionError{Width: w, Height: h}
	}
	cells := make([]uint8, w*h)
	return &Grid{w: w, h: h, edge: edge, cur: cells, nxt: make([]uint8, len(cells))}, nil
}

// NewFromCells returns a grid seeded with the provided alive coordinates.
func NewFromCells(w, h int, edge EdgePolicy, alive []Cell) (*Grid, error) {
	g, err := New(w, h, edge)
	if err != nil {
		return nil, err
	}
	for _, c := range alive {
		if !g.inBounds(c.Row, c.Col) {
			return nil, &core.OutOfBoundsError{Row: c.Row, Col: c.Col, Width: w, Height: h}
		}
		g.cur[c.Row*w+c.Col] = 1
	}
	return g, nil
}

// NewFromMatrix returns a grid seeded from a full boolean matrix. Every row
// must have the same length.
func NewFromMatrix(rows [][]bool, edge EdgePolicy) (*Grid, error) {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	g, err := New(w, h, edge)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != w {
			return nil, &core.InvalidDimensionError{Width: len(row), Height: h}
		}
		for c, alive := range row {
			if alive {
				g.cur[r*w+c] = 1
			}
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Edge returns the boundary policy fixed at construction.
func (g *Grid) Edge() EdgePolicy { return g.edge }

// Cells exposes the current generation's backing slice in row-major order.
// The renderer reads it directly; callers must not hold it across a Step.
func (g *Grid) Cells() []uint8 { return g.cur }

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.h && col >= 0 && col < g.w
}

// IsAlive reports the state of the cell at (row, col).
func (g *Grid) IsAlive(row, col int) (bool, error) {
	if !g.inBounds(row, col) {
		return false, &core.OutOfBoundsError{Row: row, Col: col, Width: g.w, Height: g.h}
	}
	return g.cur[row*g.w+col] == 1, nil
}

// Set assigns the state of the cell at (row, col).
func (g *Grid) Set(row, col int, alive bool) error {
	if !g.inBounds(row, col) {
		return &core.OutOfBoundsError{Row: row, Col: col, Width: g.w, Height: g.h}
	}
	g.cur[row*g.w+col] = 0
	if alive {
		g.cur[row*g.w+col] = 1
	}
	return nil
}

// AliveNeighbors counts alive cells among the 8 Moore neighbors of (row, col),
// honoring the grid's edge policy.
func (g *Grid) AliveNeighbors(row, col int) (int, error) {
	if !g.inBounds(row, col) {
		return 0, &core.OutOfBoundsError{Row: row, Col: col, Width: g.w, Height: g.h}
	}
	return g.neighbors(row, col), nil
}

func (g *Grid) neighbors(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if g.edge == EdgeToroidal {
				r = (r + g.h) % g.h
				c = (c + g.w) % g.w
			} else if r < 0 || r >= g.h || c < 0 || c >= g.w {
				continue
			}
			n += int(g.cur[r*g.w+c])
		}
	}
	return n
}

// Step advances the grid by one generation and reports whether any cell
// changed. The next state of every cell depends only on the current
// generation's neighbor counts: the rule writes into a second buffer and the
// buffers are swapped once the whole field has been computed.
func (g *Grid) Step() bool {
	changed := false
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			idx := row*g.w + col
			n := g.neighbors(row, col)
			alive := g.cur[idx] == 1
			g.nxt[idx] = 0
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				g.nxt[idx] = 1
			}
			if g.nxt[idx] != g.cur[idx] {
				changed = true
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	return changed
}

// AliveCount returns the number of alive cells in the current generation.
func (g *Grid) AliveCount() int {
	n := 0
	for _, c := range g.cur {
		n += int(c)
	}
	return n
}

// AliveCells returns the alive coordinates in row-major order.
func (g *Grid) AliveCells() []Cell {
	cells := make([]Cell, 0, 16)
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			if g.cur[row*g.w+col] == 1 {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}
	return cells
}

// Equal reports structural equality of cell states. Grids of different
// dimensions are never equal; the edge policy does not participate.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.w != other.w || g.h != other.h {
		return false
	}
	for i, c := range g.cur {
		if c != other.cur[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy sharing no state with the receiver.
func (g *Grid) Clone() *Grid {
	cur := make([]uint8, len(g.cur))
	copy(cur, g.cur)
	return &Grid{w: g.w, h: g.h, edge: g.edge, cur: cur, nxt: make([]uint8, len(g.cur))}
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = 0
	}
}

// Randomize reseeds the grid with each cell independently alive at
// probability p.
func (g *Grid) Randomize(rng *core.RNG, p float64) {
	core.FillBernoulli(rng, g.cur, p)
}

// SeedSparse clears the grid and places between minCells and maxCells alive
// cells inside the central half of the field, mirroring how random Methuselah
// candidates are seeded away from the boundary.
func (g *Grid) SeedSparse(rng *core.RNG, minCells, maxCells int) {
	g.Clear()
	if minCells < 0 {
		minCells = 0
	}
	if maxCells < minCells {
		maxCells = minCells
	}

	rowLo, rowHi := g.h/4, 3*g.h/4
	colLo, colHi := g.w/4, 3*g.w/4
	if rowHi <= rowLo {
		rowLo, rowHi = 0, g.h
	}
	if colHi <= colLo {
		colLo, colHi = 0, g.w
	}

	target := minCells + rng.IntN(maxCells-minCells+1)
	if region := (rowHi - rowLo) * (colHi - colLo); target > region {
		target = region
	}

	placed := 0
	for placed < target {
		row := rowLo + rng.IntN(rowHi-rowLo)
		col := colLo + rng.IntN(colHi-colLo)
		idx := row*g.w + col
		if g.cur[idx] == 1 {
			continue
		}
		g.cur[idx] = 1
		placed++
	}
}
