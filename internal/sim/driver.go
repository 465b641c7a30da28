package sim

import (
	"methuselah/internal/core"
	"methuselah/internal/life"
)

// Driver steps a grid on a fixed-rate timer and exposes the pull interface a
// renderer polls: generation index, alive count and a snapshot of alive cells.
// Start and Stop gate whether Tick advances the grid; the driver itself owns
// no event loop. Not safe for concurrent use; the render loop owns it.
type Driver struct {
	grid    *life.Grid
	initial *life.Grid
	timer   *core.FixedStep
	gen     int
	running bool
}

// NewDriver wraps the grid with a driver ticking at the given rate. The
// driver keeps a copy of the starting state for Reset.
func NewDriver(g *life.Grid, tps int) *Driver {
	return &Driver{
		grid:    g,
		initial: g.Clone(),
		timer:   core.NewFixedStep(tps),
	}
}

// Start resumes stepping. The timer is reset so resuming after a long pause
// does not replay the paused interval as a burst of steps.
func (d *Driver) Start() {
	if !d.running {
		d.running = true
		d.timer.Reset()
	}
}

// Stop pauses stepping. Tick becomes a no-op until Start is called again.
func (d *Driver) Stop() { d.running = false }

// Running reports whether Tick currently advances the grid.
func (d *Driver) Running() bool { return d.running }

// SetTPS changes the stepping rate.
func (d *Driver) SetTPS(tps int) { d.timer.SetTPS(tps) }

// Tick advances the grid by one generation when running and the timer is due,
// reporting whether a step happened.
func (d *Driver) Tick() bool {
	if !d.running || !d.timer.ShouldStep() {
		return false
	}
	d.grid.Step()
	d.gen++
	return true
}

// StepOnce advances exactly one generation regardless of the running state.
func (d *Driver) StepOnce() {
	d.grid.Step()
	d.gen++
}

// Reset restores the starting grid state and zeroes the generation counter.
func (d *Driver) Reset() {
	d.grid = d.initial.Clone()
	d.gen = 0
}

// Reseed replaces the grid with a random configuration and restarts counting.
// The reseeded state becomes the new Reset target.
func (d *Driver) Reseed(seed int64, p float64) {
	d.grid.Randomize(core.NewRNG(seed), p)
	d.initial = d.grid.Clone()
	d.gen = 0
}

// Generation returns the current generation index.
func (d *Driver) Generation() int { return d.gen }

// AliveCount returns the current population.
func (d *Driver) AliveCount() int { return d.grid.AliveCount() }

// Size returns the grid dimensions.
func (d *Driver) Size() core.Size { return d.grid.Size() }

// Cells exposes the current cell buffer for rendering.
func (d *Driver) Cells() []uint8 { return d.grid.Cells() }

// Snapshot returns a read-only copy of the alive cell coordinates.
func (d *Driver) Snapshot() []life.Cell { return d.grid.AliveCells() }
