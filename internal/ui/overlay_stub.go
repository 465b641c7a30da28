//go:build !ebiten

package ui

// Overlay is a placeholder that satisfies the API expected by the GUI build.
type Overlay struct{}

// NewOverlay returns a no-op overlay in the headless build.
func NewOverlay() *Overlay { return &Overlay{} }

// SetStatus is a no-op placeholder.
func (o *Overlay) SetStatus(int, int, bool) {}

// Draw is a no-op placeholder to satisfy the interface shape.
func (o *Overlay) Draw(any) {}
