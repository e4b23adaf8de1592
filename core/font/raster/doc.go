/*
Package raster rasterizes ranges of glyphs into grayscale coverage bitmaps.

A Rasterizer looks up a font once per request and then walks a contiguous
range of code points, producing one Bitmap for every code point which is
a Unicode scalar value and has ink. Bitmaps are handed to a Sink one by one,
in increasing code point order, as soon as they are ready.

Fonts are looked up through a FontSource, usually a fontregistry.Registry.
A rasterization keeps the font it looked up, even if the registry entry is
replaced while glyphs are being rendered.

	reg := fontregistry.NewRegistry()
	name, _ := reg.Load("fonts/GoMono.ttf")
	r := raster.NewRasterizer(reg)
	err := r.Rasterize(raster.Request{
		FontName: name, Start: 'A', Count: 26, ScaleX: 20, ScaleY: 20,
	}, raster.SinkFunc(func(b *raster.Bitmap) error {
		...
	}))

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package raster

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'rendertext.raster'
func tracer() tracing.Trace {
	return tracing.Select("rendertext.raster")
}
