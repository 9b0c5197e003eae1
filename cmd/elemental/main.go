/*
Command elemental spells words with the symbols of chemical elements.

# Usage

	elemental [flags] word...

Each word is decomposed greedily, from left to right, into element symbols:

	$ elemental bacon
	bacon => Ba Co N
	  Ba   Barium         p=56  n=81  e=56
	  Co   Cobalt         p=27  n=32  e=27
	  N    Nitrogen       p=7   n=7   e=7

Letters which cannot be matched are shown in brackets, and the word is
marked as NOT POSSIBLE.

# Configuration

Defaults may be set in a TOML file, either given with -config or found at
[UserConfigDir]/elemental/config.toml:

	[output]
	format = "color"
	banner = true

	[dict]
	path = ""

	[log]
	level = "warn"

	[run]
	strict = false

Flags given on the command line override the config file.

# Command Line Flags

	-config string
	    TOML config file
	-data string
	    CSV element table instead of the embedded one
	-format string
	    text, color, json or msgpack
	-lookup string
	    list elements by symbol or name prefix and exit
	-dump
	    print the symbol trie and exit
	-strict
	    exit with status 1 if a word cannot be spelled completely
	-d  debug logging
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/npillmayer/elemental/elements"
	"github.com/npillmayer/elemental/internal/config"
	"github.com/npillmayer/elemental/internal/logger"
	"github.com/npillmayer/elemental/render"
)

const (
	exitOK         = 0
	exitImpossible = 1
	exitUsage      = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	configPath string
	dataPath   string
	format     string
	lookup     string
	dump       bool
	strict     bool
	debug      bool
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("elemental", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts options
	fs.StringVar(&opts.configPath, "config", "", "TOML config file")
	fs.StringVar(&opts.dataPath, "data", "", "CSV element table instead of the embedded one")
	fs.StringVar(&opts.format, "format", "", "output format: text, color, json or msgpack")
	fs.StringVar(&opts.lookup, "lookup", "", "list elements by symbol or name prefix and exit")
	fs.BoolVar(&opts.dump, "dump", false, "print the symbol trie and exit")
	fs.BoolVar(&opts.strict, "strict", false, "exit with status 1 if a word cannot be spelled completely")
	fs.BoolVar(&opts.debug, "d", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: elemental [flags] word...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	l := logger.NewWithWriter(stderr, "elemental", log.WarnLevel, false)
	if opts.debug {
		l.SetLevel(log.DebugLevel)
	}
	cfg, cfgPath, err := config.Load(l, opts.configPath)
	if err != nil {
		l.Error(err)
		return exitUsage
	}
	applyFlags(fs, &opts, cfg)

	level := logger.ParseLevel(cfg.Log.Level)
	if opts.debug {
		level = log.DebugLevel
	}
	l.SetLevel(level)
	l.SetReportTimestamp(cfg.Log.Timestamp)
	logger.InstallTracer(l, logger.TraceLevelFor(level))
	if cfgPath != "" {
		l.Debug("using config", "path", cfgPath)
	}

	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		l.Error(err)
		return exitUsage
	}
	catalog, err := loadCatalog(cfg.Dict.Path)
	if err != nil {
		l.Error("cannot load element table", "err", err)
		return exitUsage
	}
	stats := catalog.Dict.Stats()
	l.Debug("element table loaded", "id", catalog.Dict.Identifier,
		"symbols", stats.Keys, "nodes", stats.Nodes, "depth", stats.Depth)

	switch {
	case opts.dump:
		if err := catalog.Dict.Trie().Dump(stdout); err != nil {
			l.Error(err)
			return exitUsage
		}
		return exitOK
	case opts.lookup != "":
		return lookup(stdout, catalog.Table, opts.lookup)
	}

	words := fs.Args()
	if len(words) == 0 {
		fs.Usage()
		return exitUsage
	}
	r, err := render.New(format, render.Options{Banner: cfg.Output.Banner})
	if err != nil {
		l.Error(err)
		return exitUsage
	}
	status := exitOK
	for _, word := range words {
		pieces := catalog.Dict.Pieces(word)
		possible := render.Possible(pieces)
		l.Debug("decomposed", "word", word, "pieces", len(pieces), "possible", possible)
		if err := r.Render(stdout, word, pieces); err != nil {
			l.Error("cannot write result", "word", word, "err", err)
			return exitUsage
		}
		if !possible && cfg.Run.Strict {
			status = exitImpossible
		}
	}
	return status
}

// applyFlags overrides config values with flags set on the command line.
func applyFlags(fs *flag.FlagSet, opts *options, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.Dict.Path = opts.dataPath
		case "format":
			cfg.Output.Format = opts.format
		case "strict":
			cfg.Run.Strict = opts.strict
		}
	})
}

func loadCatalog(path string) (*elements.Catalog, error) {
	if path == "" {
		return elements.DefaultCatalog()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return elements.LoadCatalog(path, f)
}

func lookup(w io.Writer, table *elements.Table, query string) int {
	found := table.Search(query)
	if len(found) == 0 {
		found = table.FuzzyNames(query)
	}
	if len(found) == 0 {
		fmt.Fprintf(w, "no element matches %q\n", query)
		return exitImpossible
	}
	for _, e := range found {
		fmt.Fprintf(w, "%3d  %-3s %s\n", e.Number(), e.Symbol, e.Name)
	}
	return exitOK
}
