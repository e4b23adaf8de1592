package font

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/npillmayer/rendertext/core"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// ScalableFont is a parsed, immutable font.
type ScalableFont struct {
	Fontname string     // full name from the font's name table
	Filepath string     // file path, if loaded from a file
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// LoadOpenTypeFont reads a font file and parses it.
//
// If the file cannot be read, an error with code core.EIO is returned.
// If the contents are not a well-formed font, the error has code core.EPARSE.
// Both errors carry the file path in their user message.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		tracer().Debugf("cannot read font file %s: %v", fontfile, err)
		return nil, core.WrapError(err, core.EIO,
			"failed to read font file '%s': %v", fontfile, err)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		tracer().Debugf("cannot parse font file %s: %v", fontfile, err)
		return nil, core.WrapError(err, core.EPARSE,
			"failed to parse font file '%s'", fontfile)
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont parses font data. fbytes must not be modified while the
// font is in use. For font collections (.ttc, .otc) the first font of the
// collection is used.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	if f.SFNT, err = sfnt.Parse(f.Binary); err != nil {
		var coll *sfnt.Collection
		if coll, err = sfnt.ParseCollection(f.Binary); err == nil {
			tracer().Debugf("font data is a collection of %d fonts", coll.NumFonts())
			f.SFNT, err = coll.Font(0)
		}
		if err != nil {
			return nil, core.WrapError(err, core.EPARSE, "failed to parse font data: %v", err)
		}
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// FamilyName returns the typeface name of a font, or the empty string if
// the font's name table does not contain one.
func (sf *ScalableFont) FamilyName() string {
	name, err := sf.SFNT.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// NumGlyphs returns the number of glyphs contained in a font.
func (sf *ScalableFont) NumGlyphs() int {
	return sf.SFNT.NumGlyphs()
}

// Filename returns the base name of the file a font has been loaded from.
func (sf *ScalableFont) Filename() string {
	if sf.Filepath == "" {
		return ""
	}
	return filepath.Base(sf.Filepath)
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else fails. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

// fallbackFont is a font that is used if everything else fails.
var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	gofont, err := ParseOpenTypeFont(goregular.TTF)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	gofont.Filepath = "internal"
	return gofont
}
