package raster

import (
	"unicode/utf8"

	"github.com/npillmayer/rendertext/core"
	"github.com/npillmayer/rendertext/core/font"
	"github.com/npillmayer/rendertext/core/font/outline"
	"golang.org/x/image/font/sfnt"
)

// FontSource is where a Rasterizer finds its fonts.
// fontregistry.Registry satisfies it.
type FontSource interface {
	Lookup(name string) (*font.ScalableFont, error)
}

// Rasterizer renders glyph ranges of fonts from a FontSource.
// A Rasterizer may be used by multiple goroutines concurrently.
type Rasterizer struct {
	fonts FontSource
}

// NewRasterizer creates a rasterizer for fonts from fonts.
func NewRasterizer(fonts FontSource) *Rasterizer {
	return &Rasterizer{fonts: fonts}
}

// Rasterize renders the glyphs for code points
// [req.Start, req.Start+req.Count) and sends them to sink, one bitmap per
// glyph, in increasing code point order. Code points which are not Unicode
// scalar values and glyphs without ink are skipped silently.
// Code points the font does not map are rendered with the font's .notdef
// glyph.
//
// Errors:
//
//	core.EINVALID     scales are not finite and positive, or sink is nil
//	core.EMISSING     the font is unknown to the font source
//	core.ECONNECTION  the sink failed; bitmaps sent before stay delivered
//
// In the first two cases no bitmap is sent.
func (r *Rasterizer) Rasterize(req Request, sink Sink) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if sink == nil {
		return core.Error(core.EINVALID, "no receiver for glyph bitmaps")
	}
	f, err := r.fonts.Lookup(req.FontName)
	if err != nil {
		return err
	}
	tracer().Debugf("rasterizing %d glyphs of %s from %U", req.Count, req.FontName, rune(req.Start))
	var buf sfnt.Buffer
	scale := outline.Scale{X: req.ScaleX, Y: req.ScaleY}
	sent := 0
	for c := uint64(req.Start); c < req.end(); c++ {
		cp := rune(c)
		if !utf8.ValidRune(cp) {
			continue
		}
		bm := render(f, cp, scale, &buf)
		if bm == nil {
			continue
		}
		if err := sink.Send(bm); err != nil {
			tracer().Infof("rasterization of %s stopped at %U: %v", req.FontName, cp, err)
			return core.WrapError(err, core.ECONNECTION,
				"failed to send glyph %U: %v", cp, err)
		}
		sent++
	}
	tracer().Debugf("rasterization of %s sent %d bitmaps", req.FontName, sent)
	return nil
}

// render returns nil for glyphs without ink. Glyphs which cannot be loaded
// count as having no ink.
func render(f *font.ScalableFont, cp rune, scale outline.Scale, buf *sfnt.Buffer) *Bitmap {
	g, err := outline.GlyphFor(f, cp, scale, buf)
	if err != nil {
		tracer().Debugf("skipping %U: %v", cp, err)
		return nil
	}
	bbox, ok := g.PixelBoundingBox()
	if !ok {
		return nil
	}
	bm := newBitmap(cp, bbox.Dx(), bbox.Dy())
	bm.Offset = bbox.Min
	bm.Advance = g.Advance()
	g.Draw(func(x, y int, v float32) {
		bm.Pix[y*bm.Width+x] = uint8(v * 255)
	})
	return bm
}
