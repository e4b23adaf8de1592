/*
Package font is for typeface and font handling.

There is a certain confusion in the nomenclature of typesetting. We will
stick to the following definitions:

* A "typeface" is a family of fonts. An example is "Helvetica".

* A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight, slant, etc.  An example is "Helvetica regular".
A ScalableFont is what the rest of this module calls a font handle: it
is parsed once and never mutated afterwards.

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

Fonts are parsed with golang.org/x/image/font/sfnt. An sfnt.Font is safe
for concurrent use as long as every caller brings its own sfnt.Buffer.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package font

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'rendertext.font'
func tracer() tracing.Trace {
	return tracing.Select("rendertext.font")
}
