package raster

import (
	"math"

	"github.com/npillmayer/rendertext/core"
)

// Request describes a range of glyphs to rasterize.
type Request struct {
	FontName string  // registry key of the font
	Start    uint32  // first code point
	Count    uint32  // number of code points
	ScaleX   float32 // pixels per font height, horizontally
	ScaleY   float32 // pixels per font height, vertically
}

// Validate checks that both scale factors are finite and positive. It
// returns an error with code core.EINVALID otherwise.
func (req Request) Validate() error {
	for _, s := range [2]float32{req.ScaleX, req.ScaleY} {
		f := float64(s)
		if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
			return core.Error(core.EINVALID, "invalid scale %v×%v: scale must be positive",
				req.ScaleX, req.ScaleY)
		}
	}
	return nil
}

// end returns the first code point after the request's range. The range is
// clipped to code points representable in 32 bits and to the Unicode range,
// as anything beyond U+10FFFF would be skipped anyway.
func (req Request) end() uint64 {
	end := uint64(req.Start) + uint64(req.Count)
	if end > math.MaxUint32+1 {
		end = math.MaxUint32 + 1
	}
	if end > maxCodepoint+1 {
		end = maxCodepoint + 1
	}
	return end
}

const maxCodepoint = 0x10ffff
