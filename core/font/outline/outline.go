package outline

import (
	"image"
	"image/draw"
	"math"

	"github.com/npillmayer/rendertext/core"
	"github.com/npillmayer/rendertext/core/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Outlines are loaded at a fixed size and scaled afterwards. The size is
// small enough to keep sfnt's 26.6 arithmetic from overflowing for large
// units-per-em values.
var loadPPEM = fixed.I(256)

// Scale is a scaling factor in pixels per font height, separately for the
// horizontal and the vertical axis.
type Scale struct {
	X, Y float32
}

// Uniform returns a scale with identical factors for both axes.
func Uniform(s float32) Scale {
	return Scale{X: s, Y: s}
}

// PositionedGlyph is a glyph scaled to pixel units and positioned with its
// origin at (0, 0).
type PositionedGlyph struct {
	r        rune
	index    sfnt.GlyphIndex
	segments []segment
	advance  float32
	bbox     image.Rectangle
	hasBBox  bool
}

type segment struct {
	op   sfnt.SegmentOp
	args [3][2]float32
}

// GlyphFor locates the glyph for rune r in font f and scales it.
// Runes not covered by the font's character map are represented by glyph 0,
// the font's .notdef glyph.
//
// buf may be nil; if it is not, it must not be shared between goroutines.
// A glyph which is colored (bitmap or color layers only) yields a
// PositionedGlyph without outline.
func GlyphFor(f *font.ScalableFont, r rune, scale Scale, buf *sfnt.Buffer) (*PositionedGlyph, error) {
	if f == nil || f.SFNT == nil {
		return nil, core.Error(core.EINVALID, "cannot position glyph of null font")
	}
	if buf == nil {
		buf = &sfnt.Buffer{}
	}
	fx, fy, err := factors(f.SFNT, scale, buf)
	if err != nil {
		return nil, err
	}
	g := &PositionedGlyph{r: r}
	if g.index, err = f.SFNT.GlyphIndex(buf, r); err != nil {
		return nil, core.WrapError(err, core.EPARSE, "cannot map code point %U: %v", r, err)
	}
	if adv, err := f.SFNT.GlyphAdvance(buf, g.index, loadPPEM, xfont.HintingNone); err == nil {
		g.advance = float32(adv) / 64 * fx
	}
	segs, err := f.SFNT.LoadGlyph(buf, g.index, loadPPEM, nil)
	if err == sfnt.ErrColoredGlyph {
		tracer().Debugf("glyph %d for %U is colored, has no outline", g.index, r)
		return g, nil
	} else if err != nil {
		return nil, core.WrapError(err, core.EPARSE, "cannot load glyph %d for %U: %v",
			g.index, r, err)
	}
	// segs belongs to buf and is overwritten by the next call, so we copy
	g.segments = make([]segment, len(segs))
	for i, s := range segs {
		g.segments[i].op = s.Op
		for j := 0; j < argCount(s.Op); j++ {
			g.segments[i].args[j] = [2]float32{
				float32(s.Args[j].X) / 64 * fx,
				float32(s.Args[j].Y) / 64 * fy,
			}
		}
	}
	g.bbox, g.hasBBox = g.computeBBox()
	return g, nil
}

// factors returns the multipliers converting pixels at loadPPEM to pixels
// at the target scale.
func factors(f *sfnt.Font, scale Scale, buf *sfnt.Buffer) (float32, float32, error) {
	m, err := f.Metrics(buf, loadPPEM, xfont.HintingNone)
	if err != nil {
		return 0, 0, core.WrapError(err, core.EPARSE, "cannot read font metrics: %v", err)
	}
	height := float32(m.Ascent+m.Descent) / 64
	if height <= 0 {
		return 0, 0, core.Error(core.EPARSE, "font has no vertical extent")
	}
	return scale.X / height, scale.Y / height, nil
}

func argCount(op sfnt.SegmentOp) int {
	switch op {
	case sfnt.SegmentOpQuadTo:
		return 2
	case sfnt.SegmentOpCubeTo:
		return 3
	}
	return 1
}

func (g *PositionedGlyph) computeBBox() (image.Rectangle, bool) {
	if len(g.segments) == 0 {
		return image.Rectangle{}, false
	}
	minx, miny := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxx, maxy := float32(-math.MaxFloat32), float32(-math.MaxFloat32)
	for _, s := range g.segments {
		for j := 0; j < argCount(s.op); j++ {
			x, y := s.args[j][0], s.args[j][1]
			minx, maxx = min32(minx, x), max32(maxx, x)
			miny, maxy = min32(miny, y), max32(maxy, y)
		}
	}
	r := image.Rect(
		int(math.Floor(float64(minx))), int(math.Floor(float64(miny))),
		int(math.Ceil(float64(maxx))), int(math.Ceil(float64(maxy))),
	)
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return image.Rectangle{}, false
	}
	return r, true
}

// Rune returns the code point this glyph has been created for.
func (g *PositionedGlyph) Rune() rune {
	return g.r
}

// GlyphIndex returns the glyph's index within its font. 0 denotes .notdef.
func (g *PositionedGlyph) GlyphIndex() sfnt.GlyphIndex {
	return g.index
}

// Advance returns the horizontal advance in pixels.
func (g *PositionedGlyph) Advance() float32 {
	return g.advance
}

// PixelBoundingBox returns the smallest pixel rectangle covering the glyph's
// outline, relative to the glyph's origin. Glyphs without ink, such as
// space, have no bounding box and the second return value is false.
func (g *PositionedGlyph) PixelBoundingBox() (image.Rectangle, bool) {
	return g.bbox, g.hasBBox
}

// Draw calls o for every pixel of the glyph's bounding box, with x and y
// relative to the top-left corner of the box and v the coverage in [0, 1].
// Pixels are visited row by row. Draw does nothing for glyphs without a
// bounding box.
func (g *PositionedGlyph) Draw(o func(x, y int, v float32)) {
	if !g.hasBBox {
		return
	}
	w, h := g.bbox.Dx(), g.bbox.Dy()
	dx, dy := float32(-g.bbox.Min.X), float32(-g.bbox.Min.Y)
	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src
	open := false
	for _, s := range g.segments {
		a := s.args
		switch s.op {
		case sfnt.SegmentOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(a[0][0]+dx, a[0][1]+dy)
			open = true
		case sfnt.SegmentOpLineTo:
			z.LineTo(a[0][0]+dx, a[0][1]+dy)
		case sfnt.SegmentOpQuadTo:
			z.QuadTo(a[0][0]+dx, a[0][1]+dy, a[1][0]+dx, a[1][1]+dy)
		case sfnt.SegmentOpCubeTo:
			z.CubeTo(a[0][0]+dx, a[0][1]+dy, a[1][0]+dx, a[1][1]+dy, a[2][0]+dx, a[2][1]+dy)
		}
	}
	if open {
		z.ClosePath()
	}
	mask := image.NewAlpha16(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := mask.Alpha16At(x, y).A
			o(x, y, float32(a)/0xffff)
		}
	}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
