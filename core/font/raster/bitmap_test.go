package raster

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *Bitmap {
	b := newBitmap('x', 2, 3)
	copy(b.Pix, []uint8{1, 2, 3, 4, 5, 6})
	b.Offset = image.Pt(1, -3)
	b.Advance = 4.5
	return b
}

func TestBitmapRowsAndAt(t *testing.T) {
	b := sample()
	assert.Equal(t, [][]uint8{{1, 2}, {3, 4}, {5, 6}}, b.Rows())
	assert.Equal(t, uint8(4), b.At(1, 1))
	assert.Equal(t, uint8(0), b.At(2, 0))
	assert.Equal(t, uint8(0), b.At(0, -1))
}

func TestBitmapCentered(t *testing.T) {
	b := sample()
	c := b.Centered(5, 6)
	require.Equal(t, 5, c.Width)
	require.Equal(t, 6, c.Height)
	require.Len(t, c.Pix, 30)
	assert.Equal(t, [][]uint8{
		{0, 0, 0, 0, 0},
		{0, 1, 2, 0, 0},
		{0, 3, 4, 0, 0},
		{0, 5, 6, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	}, c.Rows())
	assert.Equal(t, image.Pt(0, -4), c.Offset)
	assert.Equal(t, b.Advance, c.Advance)
	assert.Equal(t, 'x', c.Codepoint)
}

func TestBitmapCenteredInSmallerCell(t *testing.T) {
	b := sample()
	c := b.Centered(1, 1)
	assert.Equal(t, b.Width, c.Width)
	assert.Equal(t, b.Height, c.Height)
	assert.Equal(t, b.Pix, c.Pix)
	assert.Equal(t, b.Offset, c.Offset)
	c.Pix[0] = 99
	assert.Equal(t, uint8(1), b.Pix[0], "centered bitmap must be a copy")
}

func TestRequestValidate(t *testing.T) {
	assert.NoError(t, Request{ScaleX: 0.5, ScaleY: 100}.Validate())
	assert.Error(t, Request{ScaleX: 0, ScaleY: 1}.Validate())
}

func TestRequestEnd(t *testing.T) {
	assert.Equal(t, uint64('A'+26), Request{Start: 'A', Count: 26}.end())
	assert.Equal(t, uint64(maxCodepoint+1), Request{Start: 0x10fff0, Count: 100}.end())
	assert.Equal(t, uint64(maxCodepoint+1), Request{Start: 0xffffffff, Count: 0xffffffff}.end())
}
