/*
Command rendertext is an interactive shell to load fonts and look at their
glyphs as coverage bitmaps.

	rendertext [-trace Info] [-font path/to/font.ttf] [-catalog dir]

Configuration is read from NestedText files named rendertext.nt, located in
the user's configuration folder. Type 'help' at the prompt for a list of
commands. If standard input is not a terminal, commands are read from it
line by line, e.g.

	echo "raster GoMono A 26" | rendertext -font GoMono.ttf

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"os"

	"github.com/chzyer/readline"
	"github.com/npillmayer/rendertext/backend/commands"
	"github.com/npillmayer/rendertext/core"
	"github.com/npillmayer/rendertext/core/font/catalog"
	"github.com/npillmayer/rendertext/core/font/fontregistry"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// tracer traces with key 'rendertext.cli'
func tracer() tracing.Trace {
	return tracing.Select("rendertext.cli")
}

// all trace keys of the application
var traceKeys = []string{
	"rendertext.cli",
	"rendertext.commands",
	"rendertext.font",
	"rendertext.raster",
	"rendertext.catalog",
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "", "Trace level [Debug|Info|Error]")
	fontpath := flag.String("font", "", "Font to load")
	catdir := flag.String("catalog", "", "Folder of the font catalog")
	flag.Parse()

	conf := configure(*catdir)
	if err := setupTracing(conf, *tlevel); err != nil {
		core.UserError(err)
		os.Exit(1)
	}
	pterm.Info.Println("Welcome to rendertext") // colored welcome message

	// set up backend
	registry := fontregistry.NewRegistry()
	cat, err := catalog.Open(conf)
	if err != nil { // shell works without catalog
		pterm.Error.Println(commands.Message(err))
	}
	backend := commands.New(conf, registry, cat)
	if cat != nil {
		if n, err := backend.LoadCatalog(); err != nil {
			pterm.Error.Println(commands.Message(err))
		} else if n > 0 {
			pterm.Info.Printfln("%d fonts loaded from catalog %s", n, cat.Dir())
		}
	}
	if *fontpath != "" { // font provided by flag
		if name, err := backend.LoadFont(*fontpath); err != nil {
			pterm.Error.Println(commands.Message(err))
			os.Exit(4)
		} else {
			pterm.Info.Printfln("font loaded as %s", name)
		}
	}
	if backend.UseFallbackFont() {
		pterm.Info.Printfln("no fonts found, built-in font available as %s", commands.FallbackFontName)
	}

	intp := &Intp{backend: backend, scale: float32(conf.GetInt("raster.scale"))}
	if !term.IsTerminal(int(os.Stdin.Fd())) { // commands are piped in
		if failed := intp.Batch(os.Stdin); failed > 0 {
			os.Exit(5)
		}
		return
	}

	// set up REPL
	repl, err := readline.NewEx(&readline.Config{
		Prompt:       "rt > ",
		AutoComplete: intp.completer(),
	})
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl

	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                             // go into interactive mode
}

// configure loads the configuration files and sets defaults for keys
// not configured.
func configure(catdir string) schuko.Configuration {
	conf := koanfadapter.New(nil, "rendertext", []string{"nt"})
	conf.InitDefaults()
	defaults := map[string]interface{}{
		"app-key":                  catalog.DefaultAppKey,
		"raster.buffer":            commands.DefaultBufferSize,
		"raster.scale":             20,
		"trace.root":               "Error",
		"trace.rendertext.cli":     "Info",
		"trace.rendertext.catalog": "Info",
	}
	for k, v := range defaults {
		if !conf.IsSet(k) {
			conf.Set(k, v)
		}
	}
	if catdir != "" {
		conf.Set("catalog.dir", catdir)
	}
	return conf
}

// setupTracing installs Go logging as the tracing backend and sets the
// trace levels, either from the configuration or, if given, from level.
func setupTracing(conf schuko.Configuration, level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	for _, key := range traceKeys {
		l := conf.GetString("trace." + key)
		if level != "" {
			l = level
		}
		if l == "" {
			l = "Error"
		}
		tracing.Select(key).SetTraceLevel(tracing.TraceLevelFromString(l))
	}
	tracer().Debugf("tracing configured")
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
