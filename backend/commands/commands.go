package commands

import (
	"errors"
	"os"

	"github.com/npillmayer/rendertext/core"
	"github.com/npillmayer/rendertext/core/font"
	"github.com/npillmayer/rendertext/core/font/catalog"
	"github.com/npillmayer/rendertext/core/font/fontregistry"
	"github.com/npillmayer/rendertext/core/font/raster"
	"github.com/npillmayer/schuko"
)

// DefaultBufferSize is the capacity of bitmap channels of streamed
// rasterizations, if not configured by key "raster.buffer".
const DefaultBufferSize = 16

// Backend bundles the application state shared by all commands.
type Backend struct {
	fonts   *fontregistry.Registry
	raster  *raster.Rasterizer
	catalog *catalog.Catalog
	buffer  int
}

// New creates a backend operating on registry reg. cat may be nil, in which
// case catalog commands fail with core.EINVALID.
func New(conf schuko.Configuration, reg *fontregistry.Registry, cat *catalog.Catalog) *Backend {
	b := &Backend{
		fonts:   reg,
		raster:  raster.NewRasterizer(reg),
		catalog: cat,
		buffer:  DefaultBufferSize,
	}
	if conf != nil && conf.IsSet("raster.buffer") && conf.GetInt("raster.buffer") >= 0 {
		b.buffer = conf.GetInt("raster.buffer")
	}
	return b
}

// Fonts returns the backend's font registry.
func (b *Backend) Fonts() *fontregistry.Registry {
	return b.fonts
}

// LoadFont loads a font file and returns the name it is registered under.
func (b *Backend) LoadFont(path string) (string, error) {
	tracer().Debugf("command load-font %s", path)
	name, err := b.fonts.Load(path)
	if err != nil {
		return "", err
	}
	tracer().Infof("loaded font %s from %s", name, path)
	return name, nil
}

// LoadedFonts lists the names of all fonts loaded so far.
func (b *Backend) LoadedFonts() []string {
	return b.fonts.Names()
}

// FontInfo describes a loaded font.
type FontInfo struct {
	Name   string // registry name
	Family string // typeface name, may be empty
	Glyphs int    // number of glyphs
	File   string // base name of the font file
}

// DescribeFonts returns a description of every loaded font, sorted by name.
func (b *Backend) DescribeFonts() []FontInfo {
	names := b.fonts.Names()
	infos := make([]FontInfo, 0, len(names))
	for _, name := range names {
		f, err := b.fonts.Lookup(name)
		if err != nil {
			continue
		}
		infos = append(infos, FontInfo{
			Name:   name,
			Family: f.FamilyName(),
			Glyphs: f.NumGlyphs(),
			File:   f.Filename(),
		})
	}
	return infos
}

// FallbackFontName is the registry name of the built-in font.
const FallbackFontName = "Fallback"

// UseFallbackFont registers the built-in font under FallbackFontName if no
// other font is loaded. It returns true if the fallback font has been
// registered.
func (b *Backend) UseFallbackFont() bool {
	if b.fonts.Len() > 0 {
		return false
	}
	tracer().Infof("no fonts loaded, using built-in font as %s", FallbackFontName)
	b.fonts.StoreFont(FallbackFontName, font.FallbackFont())
	return true
}

// RasterizeGlyphs renders count glyphs of font name, starting at code point
// start, and sends every glyph bitmap to channel. It returns after the last
// bitmap has been sent or an error occurred.
func (b *Backend) RasterizeGlyphs(name string, start, count uint32, sx, sy float32,
	channel raster.Sink) error {
	//
	tracer().Debugf("command rasterize-glyphs %s %U+%d", name, rune(start), count)
	return b.raster.Rasterize(request(name, start, count, sx, sy), channel)
}

// StreamGlyphs is the non-blocking variant of RasterizeGlyphs. Bitmaps are
// delivered on the returned channel, which is closed when the rasterization
// is over. The receiver may close done to stop the rasterization early.
func (b *Backend) StreamGlyphs(name string, start, count uint32, sx, sy float32,
	done <-chan struct{}) (<-chan *raster.Bitmap, raster.Completion) {
	//
	tracer().Debugf("command stream-glyphs %s %U+%d", name, rune(start), count)
	return b.raster.Stream(request(name, start, count, sx, sy), done, b.buffer)
}

func request(name string, start, count uint32, sx, sy float32) raster.Request {
	return raster.Request{
		FontName: name,
		Start:    start,
		Count:    count,
		ScaleX:   sx,
		ScaleY:   sy,
	}
}

// --- Catalog ---------------------------------------------------------------

var errNoCatalog = core.Error(core.EINVALID, "no font catalog configured")

// ImportFont copies a font into the catalog and loads it. fontref is either
// the path of a font file or the file name of a font installed on the system.
func (b *Backend) ImportFont(fontref string) (catalog.Entry, error) {
	if b.catalog == nil {
		return catalog.Entry{}, errNoCatalog
	}
	var entry catalog.Entry
	var err error
	if _, serr := os.Stat(fontref); serr == nil {
		entry, err = b.catalog.Import(fontref)
	} else {
		tracer().Debugf("%s is not a file, looking for system font", fontref)
		entry, err = b.catalog.ImportSystemFont(fontref)
	}
	if err != nil {
		return catalog.Entry{}, err
	}
	if _, err = b.fonts.Load(entry.Path); err != nil {
		return entry, err
	}
	return entry, nil
}

// ListFonts returns the catalog's fonts, sorted by name.
func (b *Backend) ListFonts() ([]catalog.Entry, error) {
	if b.catalog == nil {
		return nil, errNoCatalog
	}
	return b.catalog.List()
}

// RemoveFont deletes a font from the catalog. A font already loaded stays
// available until the application ends.
func (b *Backend) RemoveFont(name string) error {
	if b.catalog == nil {
		return errNoCatalog
	}
	return b.catalog.Remove(name)
}

// LoadCatalog loads all catalog fonts into the registry.
func (b *Backend) LoadCatalog() (int, error) {
	if b.catalog == nil {
		return 0, errNoCatalog
	}
	return b.catalog.LoadInto(b.fonts)
}

// --- Errors ----------------------------------------------------------------

// Message renders err as a human readable message, suitable for front ends
// which receive errors as plain strings. Message(nil) is "".
func Message(err error) string {
	if err == nil {
		return ""
	}
	if e := core.AppError(nil); errors.As(err, &e) && e.UserMessage() != "" {
		return e.UserMessage()
	}
	return err.Error()
}
