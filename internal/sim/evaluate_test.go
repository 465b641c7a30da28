package sim

import (
	"testing"

	"methuselah/internal/life"
)

func grid(t *testing.T, w, h int, edge life.EdgePolicy, alive []life.Cell) *life.Grid {
	t.Helper()
	g, err := life.NewFromCells(w, h, edge, alive)
	if err != nil {
		t.Fatalf("NewFromCells: %v", err)
	}
	return g
}

func TestEvaluateEmptyGridIsExtinctAtGenZero(t *testing.T) {
	g := grid(t, 8, 8, life.EdgeBounded, nil)
	res := Evaluate(g, 100)
	if res.Reason != ReasonExtinct {
		t.Fatalf("reason = %v, want extinct", res.Reason)
	}
	if res.MaxAlive != 0 || res.Generations != 0 {
		t.Fatalf("MaxAlive = %d, Generations = %d, want 0, 0", res.MaxAlive, res.Generations)
	}
}

func TestEvaluateBlockStabilizesImmediately(t *testing.T) {
	g := grid(t, 4, 4, life.EdgeBounded, []life.Cell{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 2}})
	res := Evaluate(g, 50)
	if res.Reason != ReasonStabilized {
		t.Fatalf("reason = %v, want stabilized", res.Reason)
	}
	if res.Generations != 1 {
		t.Fatalf("Generations = %d, want 1", res.Generations)
	}
	if res.MaxAlive != 4 || res.MaxAliveGen != 0 {
		t.Fatalf("MaxAlive = %d at gen %d, want 4 at 0", res.MaxAlive, res.MaxAliveGen)
	}
}

func TestEvaluateBlinkerRunsToBudget(t *testing.T) {
	// Period-2 oscillators are not detected early; they consume the budget.
	g := grid(t, 5, 5, life.EdgeToroidal, []life.Cell{{Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3}})
	res := Evaluate(g, 10)
	if res.Reason != ReasonBudgetExhausted {
		t.Fatalf("reason = %v, want budget exhausted", res.Reason)
	}
	if res.Generations != 10 {
		t.Fatalf("Generations = %d, want 10", res.Generations)
	}
	if res.MaxAlive != 3 {
		t.Fatalf("MaxAlive = %d, want 3", res.MaxAlive)
	}
}

func TestEvaluateDiesOut(t *testing.T) {
	// Two diagonal cells die of loneliness after one step.
	g := grid(t, 6, 6, life.EdgeBounded, []life.Cell{{Row: 1, Col: 1}, {Row: 2, Col: 2}})
	res := Evaluate(g, 50)
	if res.Reason != ReasonExtinct {
		t.Fatalf("reason = %v, want extinct", res.Reason)
	}
	if res.Generations != 1 {
		t.Fatalf("Generations = %d, want 1", res.Generations)
	}
	if res.MaxAlive != 2 {
		t.Fatalf("MaxAlive = %d, want 2 (generation 0 counts)", res.MaxAlive)
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	g := grid(t, 32, 32, life.EdgeBounded, rPentomino(14, 14))
	a := Evaluate(g, 300)
	b := Evaluate(g, 300)
	if a != b {
		t.Fatalf("two evaluations differ: %+v vs %+v", a, b)
	}
}

func TestEvaluateDoesNotMutateInput(t *testing.T) {
	g := grid(t, 16, 16, life.EdgeBounded, rPentomino(7, 7))
	before := g.Clone()
	Evaluate(g, 100)
	if !g.Equal(before) {
		t.Fatal("Evaluate mutated the caller's grid")
	}
}

// rPentomino places the five-cell R-pentomino with its bounding box anchored
// at (row, col).
func rPentomino(row, col int) []life.Cell {
	return []life.Cell{
		{Row: row, Col: col + 1}, {Row: row, Col: col + 2},
		{Row: row + 1, Col: col}, {Row: row + 1, Col: col + 1},
		{Row: row + 2, Col: col + 1},
	}
}

func TestEvaluateRPentominoIsLongLived(t *testing.T) {
	if testing.Short() {
		t.Skip("long simulation")
	}
	// The R-pentomino is a known Methuselah: on a large bounded field it
	// keeps evolving for around 1100 generations. Escaping gliders die at
	// the border, so the run ends stabilized or on the budget, never extinct.
	g := grid(t, 120, 120, life.EdgeBounded, rPentomino(58, 58))
	res := Evaluate(g, 1103)
	if res.Reason == ReasonExtinct {
		t.Fatalf("R-pentomino reported extinct after %d generations", res.Generations)
	}
	if res.MaxAlive <= 5 {
		t.Fatalf("MaxAlive = %d, expected growth beyond the 5 seed cells", res.MaxAlive)
	}
	if res.MaxAliveGen == 0 {
		t.Fatal("peak population should occur after generation 0")
	}
}

func TestDriverStartStopGating(t *testing.T) {
	g := grid(t, 5, 5, life.EdgeToroidal, []life.Cell{{Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3}})
	d := NewDriver(g, 1000)

	if d.Running() {
		t.Fatal("driver should start stopped")
	}
	if d.Tick() {
		t.Fatal("Tick advanced a stopped driver")
	}
	if d.Generation() != 0 {
		t.Fatalf("generation = %d before any step", d.Generation())
	}

	d.StepOnce()
	if d.Generation() != 1 {
		t.Fatalf("generation = %d after StepOnce, want 1", d.Generation())
	}
	if d.AliveCount() != 3 {
		t.Fatalf("alive count = %d, want 3", d.AliveCount())
	}
	if len(d.Snapshot()) != 3 {
		t.Fatalf("snapshot has %d cells, want 3", len(d.Snapshot()))
	}

	d.Reset()
	if d.Generation() != 0 {
		t.Fatal("Reset did not zero the generation counter")
	}
	if got := d.Snapshot(); len(got) != 3 || got[0] != (life.Cell{Row: 2, Col: 1}) {
		t.Fatalf("Reset did not restore the seed pattern: %v", got)
	}
}
