package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/rendertext/core"
	"github.com/npillmayer/rendertext/core/font/catalog"
	"github.com/npillmayer/rendertext/core/font/fontregistry"
	"github.com/npillmayer/rendertext/core/font/raster"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"
)

func monoFile(t *testing.T) string {
	p := filepath.Join(t.TempDir(), "GoMono.ttf")
	require.NoError(t, os.WriteFile(p, gomono.TTF, 0644))
	return p
}

func TestLoadAndRasterize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertext.commands", "rendertext.raster")
	defer teardown()
	//
	b := New(testconfig.Conf{}, fontregistry.NewRegistry(), nil)
	name, err := b.LoadFont(monoFile(t))
	require.NoError(t, err)
	assert.Equal(t, "GoMono", name)
	assert.Equal(t, []string{"GoMono"}, b.LoadedFonts())
	//
	var grids [][][]uint8
	err = b.RasterizeGlyphs(name, '0', 10, 16, 16, raster.SinkFunc(func(bm *raster.Bitmap) error {
		grids = append(grids, bm.Rows())
		return nil
	}))
	require.NoError(t, err)
	assert.Len(t, grids, 10)
}

func TestDescribeFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertext.commands", "rendertext.font")
	defer teardown()
	//
	b := New(nil, fontregistry.NewRegistry(), nil)
	assert.Empty(t, b.DescribeFonts())
	_, err := b.LoadFont(monoFile(t))
	require.NoError(t, err)
	infos := b.DescribeFonts()
	require.Len(t, infos, 1)
	assert.Equal(t, "GoMono", infos[0].Name)
	assert.Contains(t, infos[0].Family, "Go Mono")
	assert.Equal(t, "GoMono.ttf", infos[0].File)
	assert.Greater(t, infos[0].Glyphs, 100)
}

func TestFallbackFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertext.commands", "rendertext.raster")
	defer teardown()
	//
	b := New(nil, fontregistry.NewRegistry(), nil)
	require.True(t, b.UseFallbackFont())
	assert.Equal(t, []string{FallbackFontName}, b.LoadedFonts())
	assert.False(t, b.UseFallbackFont(), "fallback font is registered once")
	n := 0
	err := b.RasterizeGlyphs(FallbackFontName, 'A', 3, 12, 12, raster.SinkFunc(func(*raster.Bitmap) error {
		n++
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	//
	other := New(nil, fontregistry.NewRegistry(), nil)
	_, err = other.LoadFont(monoFile(t))
	require.NoError(t, err)
	assert.False(t, other.UseFallbackFont())
	assert.Equal(t, []string{"GoMono"}, other.LoadedFonts())
}

func TestCommandErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertext.commands", "rendertext.font")
	defer teardown()
	//
	b := New(nil, fontregistry.NewRegistry(), nil)
	missing := filepath.Join(t.TempDir(), "missing.ttf")
	_, err := b.LoadFont(missing)
	require.Error(t, err)
	assert.Equal(t, core.EIO, core.Code(err))
	assert.Contains(t, Message(err), missing)
	//
	err = b.RasterizeGlyphs("Unknown", 'A', 1, 10, 10, raster.SinkFunc(func(*raster.Bitmap) error {
		return nil
	}))
	assert.Equal(t, "font not found: Unknown", Message(err))
	//
	_, err = b.ListFonts()
	assert.Equal(t, core.EINVALID, core.Code(err))
	assert.Equal(t, core.EINVALID, core.Code(b.RemoveFont("x")))
	_, err = b.ImportFont("x.ttf")
	assert.Equal(t, core.EINVALID, core.Code(err))
	//
	assert.Equal(t, "", Message(nil))
	assert.Equal(t, "plain", Message(errors.New("plain")))
}

func TestStreamGlyphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertext.commands", "rendertext.raster")
	defer teardown()
	//
	conf := testconfig.Conf{}
	conf.Set("raster.buffer", "2")
	b := New(conf, fontregistry.NewRegistry(), nil)
	assert.Equal(t, 2, b.buffer)
	name, err := b.LoadFont(monoFile(t))
	require.NoError(t, err)
	ch, completion := b.StreamGlyphs(name, 'a', 26, 12, 12, nil)
	n := 0
	for range ch {
		n++
	}
	assert.Equal(t, 26, n)
	assert.NoError(t, completion.Await(context.Background()))
}

func TestCatalogCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertext.commands", "rendertext.catalog")
	defer teardown()
	//
	cat, err := catalog.New(t.TempDir())
	require.NoError(t, err)
	b := New(testconfig.Conf{}, fontregistry.NewRegistry(), cat)
	entry, err := b.ImportFont(monoFile(t))
	require.NoError(t, err)
	assert.Equal(t, "GoMono", entry.Name)
	assert.Equal(t, []string{"GoMono"}, b.LoadedFonts(), "imported fonts are loaded")
	entries, err := b.ListFonts()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	//
	other := New(testconfig.Conf{}, fontregistry.NewRegistry(), cat)
	n, err := other.LoadCatalog()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	//
	require.NoError(t, b.RemoveFont("GoMono"))
	entries, err = b.ListFonts()
	require.NoError(t, err)
	assert.Empty(t, entries)
	_, err = b.ImportFont("No-Such-Font-Installed-Anywhere")
	assert.Equal(t, core.EMISSING, core.Code(err))
}
