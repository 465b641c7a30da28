package core

import "fmt"

// InvalidDimensionError reports a grid construction attempt with non-positive
// width or height.
type InvalidDimensionError struct {
	Width  int
	Height int
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("invalid grid dimensions %dx%d", e.Width, e.Height)
}

// OutOfBoundsError reports a cell access outside the grid extents.
type OutOfBoundsError struct {
	Row, Col      int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell (%d,%d) outside %dx%d grid", e.Row, e.Col, e.Width, e.Height)
}

// DimensionMismatchError reports an operation combining two grids whose
// dimensions differ, such as crossover between parents of different sizes.
type DimensionMismatchError struct {
	A, B Size
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("grid dimensions %dx%d and %dx%d do not match", e.A.W, e.A.H, e.B.W, e.B.H)
}

// InvalidConfigurationError reports a configuration field that violates its
// contract, such as a probability outside [0,1] or a non-positive budget.
type InvalidConfigurationError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}
