package font

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/rendertext/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

type sw struct {
	s xfont.Style
	w xfont.Weight
}

func TestGuess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertext.font")
	defer teardown()
	//
	for k, v := range map[string]sw{
		"fonts/Clarendon-bold.ttf":               {xfont.StyleNormal, xfont.WeightBold},
		"Microsoft/Gill Sans MT Bold Italic.ttf": {xfont.StyleItalic, xfont.WeightBold},
		"Cambria Math.ttf":                       {xfont.StyleNormal, xfont.WeightNormal},
		"Go-Mono-Oblique.ttf":                    {xfont.StyleOblique, xfont.WeightNormal},
	} {
		style, weight := GuessStyleAndWeight(k)
		t.Logf("style = %d, weight = %d", style, weight)
		if style != v.s || weight != v.w {
			t.Errorf("expected different style or weight for %s", k)
		}
	}
}

func TestStyleAndWeightNames(t *testing.T) {
	assert.Equal(t, "italic", StyleName(xfont.StyleItalic))
	assert.Equal(t, "normal", StyleName(xfont.StyleNormal))
	assert.Equal(t, "bold", WeightName(xfont.WeightBold))
	assert.Equal(t, "regular", WeightName(xfont.WeightNormal))
}

func TestLoadOpenTypeFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertext.font")
	defer teardown()
	//
	fontpath := filepath.Join(t.TempDir(), "GoMono.ttf")
	require.NoError(t, os.WriteFile(fontpath, gomono.TTF, 0644))
	f, err := LoadOpenTypeFont(fontpath)
	require.NoError(t, err)
	assert.Contains(t, f.Fontname, "Go Mono")
	assert.Contains(t, f.FamilyName(), "Go Mono")
	assert.Equal(t, "GoMono.ttf", f.Filename())
	assert.Greater(t, f.NumGlyphs(), 100)
}

func TestLoadMissingFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertext.font")
	defer teardown()
	//
	fontpath := filepath.Join(t.TempDir(), "does-not-exist.ttf")
	_, err := LoadOpenTypeFont(fontpath)
	require.Error(t, err)
	assert.Equal(t, core.EIO, core.Code(err))
	assert.Contains(t, core.UserMessage(err), fontpath)
}

func TestLoadMalformedFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertext.font")
	defer teardown()
	//
	fontpath := filepath.Join(t.TempDir(), "garbage.ttf")
	require.NoError(t, os.WriteFile(fontpath, []byte("this is not a font"), 0644))
	_, err := LoadOpenTypeFont(fontpath)
	require.Error(t, err)
	assert.Equal(t, core.EPARSE, core.Code(err))
	assert.Contains(t, core.UserMessage(err), fontpath)
}

func TestFallbackFont(t *testing.T) {
	f := FallbackFont()
	require.NotNil(t, f)
	assert.Contains(t, f.Fontname, "Go")
	assert.Same(t, f, FallbackFont())
}
