package fontregistry

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/rendertext/core"
	"github.com/npillmayer/rendertext/core/font"
	"github.com/npillmayer/schuko/tracing"
)

// UnknownFont is the registry key for fonts loaded from a path without a
// usable file name.
const UnknownFont = "Unknown Font"

// Registry is a type for holding loaded fonts, keyed by name.
type Registry struct {
	sync.RWMutex
	fonts map[string]*font.ScalableFont
}

// NewRegistry creates an empty font registry.
func NewRegistry() *Registry {
	fr := &Registry{
		fonts: make(map[string]*font.ScalableFont),
	}
	return fr
}

// Load reads and parses a font file and stores it in the registry. The
// registry key is derived from the file name (see FontName) and returned to
// the caller, who may use it for subsequent lookups.
//
// If the file cannot be read, the error will have code core.EIO, and if it
// is not a well-formed font, the code will be core.EPARSE. In both cases
// the registry remains unchanged.
func (fr *Registry) Load(fontpath string) (string, error) {
	f, err := font.LoadOpenTypeFont(fontpath)
	if err != nil {
		tracer().Errorf("%s", core.UserMessage(err))
		return "", err
	}
	name := FontName(fontpath)
	fr.StoreFont(name, f)
	return name, nil
}

// StoreFont pushes a font into the registry.
//
// If name is already associated with a font, that font will be replaced.
func (fr *Registry) StoreFont(name string, f *font.ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.fonts[name]; ok {
		tracer().Infof("registry replaces font %s", name)
	}
	tracer().Debugf("registry stores font %s as %s", f.Fontname, name)
	fr.fonts[name] = f
}

// Lookup returns the font stored under name. If no such font exists, an
// error with code core.EMISSING is returned.
//
// Fonts are immutable, therefore the returned font may be used without
// holding any lock.
func (fr *Registry) Lookup(name string) (*font.ScalableFont, error) {
	fr.RLock()
	f, ok := fr.fonts[name]
	fr.RUnlock()
	if !ok {
		tracer().Infof("registry does not contain font %s", name)
		return nil, core.Error(core.EMISSING, "font not found: %s", name)
	}
	return f, nil
}

// Names returns the keys of all fonts in the registry, sorted.
func (fr *Registry) Names() []string {
	fr.RLock()
	names := make([]string, 0, len(fr.fonts))
	for k := range fr.fonts {
		names = append(names, k)
	}
	fr.RUnlock()
	sort.Strings(names)
	return names
}

// Len returns the number of fonts in the registry.
func (fr *Registry) Len() int {
	fr.RLock()
	defer fr.RUnlock()
	return len(fr.fonts)
}

// LogFontList is a helper function to dump the list of known fonts
// in a registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	fr.RLock()
	tracer().Infof("--- registered fonts ---")
	for k, v := range fr.fonts {
		tracer().Infof("font [%s] = %v", k, v.Fontname)
	}
	tracer().Infof("------------------------")
	fr.RUnlock()
	tracer().SetTraceLevel(level)
}

// FontName derives a registry key from a font's file path: the file name
// without its extension. If the path does not denote a file name, or the
// name is not valid UTF-8, FontName returns UnknownFont.
func FontName(fontpath string) string {
	base := filepath.Base(fontpath)
	switch base {
	case ".", "..", string(filepath.Separator):
		return UnknownFont
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" { // names like ".fontrc" are their own stem
		stem = base
	}
	if !utf8.ValidString(stem) {
		return UnknownFont
	}
	return stem
}
