package raster

import "image"

// Bitmap is the coverage raster of a single glyph.
//
// Pix holds Width*Height coverage values, row by row, 0 meaning no ink and
// 255 meaning full coverage. Width and Height are those of the glyph's tight
// pixel bounding box.
type Bitmap struct {
	Codepoint rune
	Width     int
	Height    int
	Pix       []uint8
	Offset    image.Point // top-left corner relative to the glyph origin, y down
	Advance   float32     // horizontal advance in pixels
}

func newBitmap(r rune, w, h int) *Bitmap {
	return &Bitmap{
		Codepoint: r,
		Width:     w,
		Height:    h,
		Pix:       make([]uint8, w*h),
	}
}

// Rows returns the bitmap as a grid of rows. The rows share memory with Pix.
func (b *Bitmap) Rows() [][]uint8 {
	rows := make([][]uint8, b.Height)
	for y := range rows {
		rows[y] = b.Pix[y*b.Width : (y+1)*b.Width]
	}
	return rows
}

// At returns the coverage at (x, y), or 0 for positions outside the bitmap.
func (b *Bitmap) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0
	}
	return b.Pix[y*b.Width+x]
}

// Centered returns a copy of b padded with zero coverage to a cell of w×h
// pixels, with b centered in it. If the padding cannot be distributed evenly,
// the extra pixel goes to the right and to the bottom. A cell smaller than
// the bitmap is enlarged to the bitmap's size.
//
// The offset of the result is adjusted so that the glyph keeps its position
// relative to its origin.
func (b *Bitmap) Centered(w, h int) *Bitmap {
	if w < b.Width {
		w = b.Width
	}
	if h < b.Height {
		h = b.Height
	}
	left, top := (w-b.Width)/2, (h-b.Height)/2
	c := newBitmap(b.Codepoint, w, h)
	c.Advance = b.Advance
	c.Offset = b.Offset.Sub(image.Pt(left, top))
	for y := 0; y < b.Height; y++ {
		copy(c.Pix[(y+top)*w+left:], b.Pix[y*b.Width:(y+1)*b.Width])
	}
	return c
}
