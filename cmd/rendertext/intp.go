package main

import (
	"bufio"
	"context"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/chzyer/readline"
	"github.com/npillmayer/rendertext/backend/commands"
	"github.com/npillmayer/rendertext/core"
	"github.com/npillmayer/rendertext/core/font"
	"github.com/npillmayer/rendertext/core/font/raster"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	backend *commands.Backend
	repl    *readline.Instance
	scale   float32     // default scale for 'raster'
	cell    image.Point // if not zero, glyphs are centered in cells of this size
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		quit, err := intp.process(line)
		if err != nil {
			pterm.Error.Println(commands.Message(err))
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Batch executes commands read from r, one per line, until r is exhausted
// or a 'quit' command is read. It returns the number of failed commands.
func (intp *Intp) Batch(r io.Reader) int {
	failed := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		quit, err := intp.process(scanner.Text())
		if err != nil {
			pterm.Error.Println(commands.Message(err))
			failed++
		}
		if quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		pterm.Error.Println(err.Error())
		failed++
	}
	return failed
}

// process parses and executes a single input line. Empty lines and
// lines starting with '#' are ignored.
func (intp *Intp) process(line string) (bool, error) {
	if line = strings.TrimSpace(line); line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}
	cmd, err := parseCommand(line)
	if err != nil {
		return false, err
	}
	return intp.execute(cmd)
}

// Op codes of commands
const (
	QUIT int = iota
	HELP
	LOAD
	RASTER
	FONTS
	CATALOG
	IMPORT
	REMOVE
	CELL
)

// Command is a parsed input line.
type Command struct {
	code int
	args []string
}

var opcodes = map[string]int{
	"quit":    QUIT,
	"exit":    QUIT,
	"help":    HELP,
	"load":    LOAD,
	"raster":  RASTER,
	"fonts":   FONTS,
	"catalog": CATALOG,
	"import":  IMPORT,
	"remove":  REMOVE,
	"cell":    CELL,
}

var arity = map[int][2]int{ // min and max number of arguments
	QUIT:    {0, 0},
	HELP:    {0, 1},
	LOAD:    {1, 1},
	RASTER:  {3, 5},
	FONTS:   {0, 0},
	CATALOG: {0, 0},
	IMPORT:  {1, 1},
	REMOVE:  {1, 1},
	CELL:    {1, 2},
}

func parseCommand(line string) (*Command, error) {
	fields := strings.Fields(line)
	code, ok := opcodes[strings.ToLower(fields[0])]
	if !ok {
		return nil, core.Error(core.EINVALID, "unknown command '%s', try 'help'", fields[0])
	}
	cmd := &Command{code: code, args: fields[1:]}
	if n := len(cmd.args); n < arity[code][0] || n > arity[code][1] {
		return nil, core.Error(core.EINVALID, "wrong number of arguments for '%s', try 'help'",
			fields[0])
	}
	tracer().Debugf("parsed command %v", cmd)
	return cmd, nil
}

func (intp *Intp) execute(cmd *Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help()
	case LOAD:
		name, err := intp.backend.LoadFont(cmd.args[0])
		if err != nil {
			return false, err
		}
		pterm.Info.Printfln("font loaded as %s", name)
	case RASTER:
		return false, intp.raster(cmd.args)
	case FONTS:
		for _, fi := range intp.backend.DescribeFonts() {
			pterm.Printfln("%-30s %-30s %6d glyphs  %s", fi.Name, fi.Family, fi.Glyphs, fi.File)
		}
	case CATALOG:
		entries, err := intp.backend.ListFonts()
		if err != nil {
			return false, err
		}
		for _, e := range entries {
			pterm.Printfln("%-30s %-8s %-10s %s", e.Name, font.StyleName(e.Style),
				font.WeightName(e.Weight), e.Path)
		}
	case IMPORT:
		e, err := intp.backend.ImportFont(cmd.args[0])
		if err != nil {
			return false, err
		}
		pterm.Info.Printfln("imported and loaded font %s", e.Name)
	case REMOVE:
		if err := intp.backend.RemoveFont(cmd.args[0]); err != nil {
			return false, err
		}
		pterm.Info.Printfln("removed font %s from catalog", cmd.args[0])
	case CELL:
		return false, intp.setCell(cmd.args)
	}
	return false, nil
}

// setCell executes 'cell <w> [h]'. A size of 0 switches centering off.
func (intp *Intp) setCell(args []string) error {
	w, err := strconv.Atoi(args[0])
	if err != nil || w < 0 {
		return core.Error(core.EINVALID, "cell width is not a size: %s", args[0])
	}
	h := w
	if len(args) > 1 {
		if h, err = strconv.Atoi(args[1]); err != nil || h < 0 {
			return core.Error(core.EINVALID, "cell height is not a size: %s", args[1])
		}
	}
	if w == 0 || h == 0 {
		intp.cell = image.Point{}
		pterm.Info.Println("glyphs are displayed unpadded")
		return nil
	}
	intp.cell = image.Pt(w, h)
	pterm.Info.Printfln("glyphs are centered in cells of %d×%d pixels", w, h)
	return nil
}

// display returns bm centered in a cell, if a cell size is set.
func (intp *Intp) display(bm *raster.Bitmap) *raster.Bitmap {
	if intp.cell == (image.Point{}) {
		return bm
	}
	return bm.Centered(intp.cell.X, intp.cell.Y)
}

// raster executes 'raster <font> <start> <count> [sx [sy]]'.
func (intp *Intp) raster(args []string) error {
	start, err := parseCodepoint(args[1])
	if err != nil {
		return err
	}
	count, err := strconv.ParseUint(args[2], 10, 32)
	if err != nil {
		return core.Error(core.EINVALID, "glyph count is not a number: %s", args[2])
	}
	sx, sy := intp.scale, intp.scale
	if len(args) > 3 {
		if sx, err = parseScale(args[3]); err != nil {
			return err
		}
		sy = sx
	}
	if len(args) > 4 {
		if sy, err = parseScale(args[4]); err != nil {
			return err
		}
	}
	done := make(chan struct{})
	defer close(done)
	bitmaps, completion := intp.backend.StreamGlyphs(args[0], start, uint32(count), sx, sy, done)
	n := 0
	for bm := range bitmaps {
		bm = intp.display(bm)
		pterm.Info.Println(label(bm.Codepoint, bm.Width, bm.Height))
		pterm.Println(shade(bm))
		n++
	}
	if err = completion.Await(context.Background()); err != nil {
		return err
	}
	pterm.Info.Printfln("%d glyphs rasterized", n)
	return nil
}

// parseCodepoint accepts numbers (decimal, 0x-hex), U+XXXX notation and
// single characters. Digits are read as numbers; a quoted character like '1'
// denotes the character itself.
func parseCodepoint(s string) (uint32, error) {
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		if r, size := utf8.DecodeRuneInString(s[1:]); r != utf8.RuneError && size == len(s)-2 {
			return uint32(r), nil
		}
		return 0, core.Error(core.EINVALID, "not a code point: %s", s)
	}
	if n, err := strconv.ParseUint(s, 0, 32); err == nil {
		return uint32(n), nil
	}
	if u := strings.ToUpper(s); strings.HasPrefix(u, "U+") {
		if n, err := strconv.ParseUint(u[2:], 16, 32); err == nil {
			return uint32(n), nil
		}
	}
	if r, size := utf8.DecodeRuneInString(s); r != utf8.RuneError && size == len(s) {
		return uint32(r), nil
	}
	return 0, core.Error(core.EINVALID, "not a code point: %s", s)
}

func parseScale(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, core.Error(core.EINVALID, "scale is not a number: %s", s)
	}
	return float32(f), nil
}

func (intp *Intp) completer() *readline.PrefixCompleter {
	fonts := func(string) []string {
		return intp.backend.LoadedFonts()
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("load"),
		readline.PcItem("raster", readline.PcItemDynamic(fonts)),
		readline.PcItem("fonts"),
		readline.PcItem("catalog"),
		readline.PcItem("import"),
		readline.PcItem("remove"),
		readline.PcItem("cell"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	load <path>                        load a font file
	raster <font> <start> <count> [sx [sy]]
	                                   rasterize glyphs, start as 65, 0x41, U+0041, A or 'A'
	                                   (digits are code points, quote them: '1')
	cell <w> [h]                       center glyphs in cells of w×h pixels, 'cell 0' for off
	fonts                              list loaded fonts
	catalog                            list fonts of the catalog
	import <path|installed font>       copy a font into the catalog and load it
	remove <name>                      remove a font from the catalog
	help                               this text
	quit                               leave (or <ctrl>D)
	`)
}

func (cmd *Command) String() string {
	return fmt.Sprintf("op(%d)%v", cmd.code, cmd.args)
}
