/*
Package outline turns glyphs of a scalable font into scaled, positioned
outlines which can be measured and rendered into coverage values.

A glyph is positioned with its origin at (0, 0) on the baseline, y grows
downwards. Scaling is given in pixels per font height, where the font height
is ascent minus descent as found in the font's horizontal header. The
horizontal and vertical axes are scaled independently.

Parsing of outlines is done by golang.org/x/image/font/sfnt, coverage
accumulation by golang.org/x/image/vector.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package outline

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'rendertext.font'
func tracer() tracing.Trace {
	return tracing.Select("rendertext.font")
}
