package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/flopp/go-findfont"
	"github.com/npillmayer/rendertext/core"
	"github.com/npillmayer/rendertext/core/font"
	"github.com/npillmayer/rendertext/core/font/fontregistry"
	"github.com/npillmayer/schuko"
	xfont "golang.org/x/image/font"
)

// DefaultAppKey is used for the catalog folder if the configuration does
// not name an application key.
const DefaultAppKey = "rendertext"

// Entry describes a font file in a catalog.
type Entry struct {
	Name   string // registry name of the font
	Path   string // absolute path of the font file
	Style  xfont.Style
	Weight xfont.Weight
}

// Catalog is a folder of font files. Operations on a catalog are serialized.
type Catalog struct {
	sync.Mutex
	dir string
}

// Open opens the catalog configured by conf. Configuration key "catalog.dir"
// names the folder. If it is not set, the folder is
//
//	<user config dir>/<app-key>/fonts
//
// Non-existing folders are created (with permissions 755).
func Open(conf schuko.Configuration) (*Catalog, error) {
	if conf.IsSet("catalog.dir") && conf.GetString("catalog.dir") != "" {
		return New(conf.GetString("catalog.dir"))
	}
	appkey := conf.GetString("app-key")
	if appkey == "" {
		tracer().Debugf("application key is not set, using %q", DefaultAppKey)
		appkey = DefaultAppKey
	}
	confdir, err := os.UserConfigDir()
	if err != nil {
		return nil, core.WrapError(err, core.EIO, "cannot locate user configuration folder: %v", err)
	}
	return New(filepath.Join(confdir, appkey, "fonts"))
}

// New opens the catalog located in dir, creating dir if necessary.
func New(dir string) (*Catalog, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, core.WrapError(err, core.EIO, "invalid catalog folder %s: %v", dir, err)
	}
	if _, err = os.Stat(dir); os.IsNotExist(err) {
		tracer().Infof("creating font catalog in %s", dir)
		err = os.MkdirAll(dir, 0755)
	}
	if err != nil {
		return nil, core.WrapError(err, core.EIO, "cannot open catalog folder %s: %v", dir, err)
	}
	return &Catalog{dir: dir}, nil
}

// Dir returns the catalog's folder.
func (c *Catalog) Dir() string {
	return c.dir
}

// IsFontFile is a predicate: does path have an extension of a catalog font?
func IsFontFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf", ".ttc", ".otc":
		return true
	}
	return false
}

// Import copies the font file at path into the catalog. The file has to be
// a well-formed font (otherwise the error has code core.EPARSE).
// Importing a font with a name already present in the catalog is an error
// with code core.EINVALID.
func (c *Catalog) Import(path string) (Entry, error) {
	if !IsFontFile(path) {
		return Entry{}, core.Error(core.EINVALID, "not a font file: %s", path)
	}
	f, err := font.LoadOpenTypeFont(path)
	if err != nil {
		return Entry{}, err
	}
	c.Lock()
	defer c.Unlock()
	index, err := c.index()
	if err != nil {
		return Entry{}, err
	}
	name := fontregistry.FontName(path)
	if _, found := index.Get(name); found {
		return Entry{}, core.Error(core.EINVALID, "font %s already in catalog", name)
	}
	target := filepath.Join(c.dir, filepath.Base(path))
	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return Entry{}, core.WrapError(err, core.EIO, "cannot create %s: %v", target, err)
	}
	_, err = out.Write(f.Binary)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(target)
		return Entry{}, core.WrapError(err, core.EIO, "cannot write %s: %v", target, err)
	}
	tracer().Infof("imported font %s into catalog", name)
	return entryFor(target), nil
}

// ImportSystemFont locates a font installed on the system by its file name
// (e.g., "DejaVuSans.ttf" or "DejaVuSans") and imports it. If no such font
// is installed, an error with code core.EMISSING is returned.
func (c *Catalog) ImportSystemFont(name string) (Entry, error) {
	path, err := findfont.Find(name)
	if err != nil || path == "" {
		tracer().Debugf("system font %s not found: %v", name, err)
		return Entry{}, core.WrapError(err, core.EMISSING, "font not found: %s", name)
	}
	tracer().Debugf("%s is a system font at %s", name, path)
	return c.Import(path)
}

// List returns the catalog's entries, sorted by name.
func (c *Catalog) List() ([]Entry, error) {
	c.Lock()
	defer c.Unlock()
	index, err := c.index()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, index.Size())
	for _, v := range index.Values() {
		entries = append(entries, v.(Entry))
	}
	return entries, nil
}

// Path returns the path of the font file named name.
func (c *Catalog) Path(name string) (string, error) {
	c.Lock()
	defer c.Unlock()
	e, err := c.lookup(name)
	return e.Path, err
}

// Remove deletes font name from the catalog.
func (c *Catalog) Remove(name string) error {
	c.Lock()
	defer c.Unlock()
	e, err := c.lookup(name)
	if err != nil {
		return err
	}
	if err = os.Remove(e.Path); err != nil {
		return core.WrapError(err, core.EIO, "cannot remove %s: %v", e.Path, err)
	}
	tracer().Infof("removed font %s from catalog", name)
	return nil
}

// LoadInto loads every font of the catalog into a registry, in name order.
// It stops at the first font which fails to load and returns its error.
func (c *Catalog) LoadInto(reg *fontregistry.Registry) (int, error) {
	entries, err := c.List()
	if err != nil {
		return 0, err
	}
	loaded := 0
	for _, e := range entries {
		if _, err = reg.Load(e.Path); err != nil {
			return loaded, err
		}
		loaded++
	}
	tracer().Debugf("loaded %d catalog fonts", loaded)
	return loaded, nil
}

func (c *Catalog) lookup(name string) (Entry, error) {
	index, err := c.index()
	if err != nil {
		return Entry{}, err
	}
	e, found := index.Get(name)
	if !found {
		return Entry{}, core.Error(core.EMISSING, "font not found in catalog: %s", name)
	}
	return e.(Entry), nil
}

// index scans the catalog folder. Caller must hold the lock.
func (c *Catalog) index() (*treemap.Map, error) {
	files, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, core.WrapError(err, core.EIO, "cannot read catalog folder %s: %v", c.dir, err)
	}
	index := treemap.NewWithStringComparator()
	for _, fi := range files {
		if fi.IsDir() || !IsFontFile(fi.Name()) {
			continue
		}
		e := entryFor(filepath.Join(c.dir, fi.Name()))
		if _, dup := index.Get(e.Name); dup {
			tracer().Infof("catalog contains more than one file for font %s", e.Name)
			continue
		}
		index.Put(e.Name, e)
	}
	return index, nil
}

func entryFor(path string) Entry {
	style, weight := font.GuessStyleAndWeight(path)
	return Entry{
		Name:   fontregistry.FontName(path),
		Path:   path,
		Style:  style,
		Weight: weight,
	}
}
