//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter blits a binary cell buffer to the screen at an integer scale.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of the given dimensions.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{
		w:   w,
		h:   h,
		img: ebiten.NewImage(w, h),
		buf: make([]byte, 4*w*h),
	}
}

// Blit writes the cells into the backing image and draws it scaled.
func (p *GridPainter) Blit(screen *ebiten.Image, cells []uint8, on, off color.Color, scale int) {
	if len(cells) != p.w*p.h {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	fillBinaryRGBA(p.buf, cells, on, off)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(p.img, op)
}
