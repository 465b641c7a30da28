//go:build ebiten

package ui

import "image/color"

var (
	foreground = color.RGBA{R: 255, G: 215, B: 64, A: 255}
	shadow     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)
