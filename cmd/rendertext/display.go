package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/rendertext/core/font/raster"
	"golang.org/x/text/unicode/runenames"
)

// shades from no coverage to full coverage
const shades = " .:-=+*#%@"

// shade renders a bitmap as text, one character per pixel.
func shade(bm *raster.Bitmap) string {
	var b strings.Builder
	for _, row := range bm.Rows() {
		for _, v := range row {
			b.WriteByte(shades[int(v)*len(shades)/256])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// label describes a glyph, e.g. "U+0041 'A' LATIN CAPITAL LETTER A (12×14)".
func label(r rune, w, h int) string {
	name := runenames.Name(r)
	if name == "" {
		name = "<unnamed>"
	}
	if unicode.IsPrint(r) {
		return fmt.Sprintf("%U '%c' %s (%d×%d)", r, r, name, w, h)
	}
	return fmt.Sprintf("%U %s (%d×%d)", r, name, w, h)
}
