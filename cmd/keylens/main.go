// Package main is the entry point for the keylens query tool.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/keylens/internal/extension"
	"github.com/dshills/keylens/internal/key"
	"github.com/dshills/keylens/internal/keyconfig"
	"github.com/dshills/keylens/internal/resolve"
	"github.com/dshills/keylens/internal/scope"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	defaultsPath string
	userPath     string
	addonPath    string
	activePath   string
	scripts      multiFlag

	keyLabel  string
	context   string
	ctrl      bool
	shift     bool
	alt       bool
	osKey     bool
	global    bool
	hideModal bool
	mode      string
	conflicts bool
}

// multiFlag collects a repeatable string flag.
type multiFlag []string

func (m *multiFlag) String() string { return fmt.Sprint([]string(*m)) }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func run() int {
	opts := parseFlags()

	store := keyconfig.NewStore()
	layers := []struct {
		path   string
		source keyconfig.Source
		set    func(*keyconfig.Layer)
	}{
		{opts.defaultsPath, keyconfig.SourceDefaults, store.SetDefaults},
		{opts.userPath, keyconfig.SourceUser, store.SetUser},
		{opts.addonPath, keyconfig.SourceAddon, store.SetAddon},
		{opts.activePath, keyconfig.SourceActive, store.SetActive},
	}
	for _, l := range layers {
		if l.path == "" {
			continue
		}
		layer, err := keyconfig.LoadFile(l.path, l.source)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: loading %s: %v\n", l.path, err)
			return 1
		}
		if layer != nil {
			l.set(layer)
		}
	}

	if len(opts.scripts) > 0 {
		host := extension.NewHost("extensions")
		defer host.Close()
		for _, path := range opts.scripts {
			if err := host.LoadFile(path); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return 1
			}
		}
		store.AddExtra(host.Layer())
	}

	r := resolve.New(store)
	ctx := scope.Context(opts.context)
	mods := key.FromFlags(opts.ctrl, opts.shift, opts.alt, opts.osKey)
	q := resolve.Options{
		IncludeGlobal: opts.global,
		HideModal:     opts.hideModal,
		Mode:          opts.mode,
	}

	if opts.conflicts {
		printConflicts(r.Conflicts(opts.keyLabel, ctx, mods, q))
		return 0
	}

	rows := r.Resolve(opts.keyLabel, ctx, mods, q)
	if len(rows) == 0 {
		fmt.Printf("%s: no bindings in %s\n", opts.keyLabel, ctx.DisplayName())
	} else {
		fmt.Printf("Assigned in %s:\n", ctx.DisplayName())
		printRows(rows)
	}

	if opts.global {
		section := r.GlobalSection(opts.keyLabel, mods, q)
		if len(section) > 0 {
			fmt.Println("In global scopes:")
			printRows(section)
		}
	}
	return 0
}

func printRows(rows []resolve.Row) {
	for _, row := range rows {
		fmt.Printf("  %s\n", row.Label)
	}
}

func printConflicts(c resolve.Conflicts) {
	sections := []struct {
		title string
		rows  []resolve.Row
	}{
		{"Editor matches", c.Editor},
		{"Global matches", c.Global},
		{"Intra-editor conflicts", c.Intra},
		{"Editor rows overlapping global", c.EditorOverlap},
		{"Global rows overlapping editor", c.GlobalOverlap},
	}
	for _, s := range sections {
		fmt.Printf("%s: %d\n", s.title, len(s.rows))
		printRows(s.rows)
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.defaultsPath, "defaults", "", "Path to the defaults layer file")
	flag.StringVar(&opts.userPath, "user", "", "Path to the user layer file")
	flag.StringVar(&opts.addonPath, "addon", "", "Path to the addon layer file")
	flag.StringVar(&opts.activePath, "active", "", "Path to the active layer file")
	flag.Var(&opts.scripts, "script", "Extension script to run (repeatable)")

	flag.StringVar(&opts.keyLabel, "key", "", "Key label to query")
	flag.StringVar(&opts.context, "context", string(scope.View3D), "Context to query")
	flag.BoolVar(&opts.ctrl, "ctrl", false, "Require Ctrl")
	flag.BoolVar(&opts.shift, "shift", false, "Require Shift")
	flag.BoolVar(&opts.alt, "alt", false, "Require Alt")
	flag.BoolVar(&opts.osKey, "os", false, "Require the OS key")
	flag.BoolVar(&opts.global, "global", false, "Include system-wide scopes")
	flag.BoolVar(&opts.hideModal, "hide-modal", false, "Skip modal binding groups")
	flag.StringVar(&opts.mode, "mode", "", "Interaction mode for global filtering")
	flag.BoolVar(&opts.conflicts, "conflicts", false, "Print the conflict report")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "keylens - keybinding resolution and conflict analysis\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keylens [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  keylens -defaults defaults.toml -key RETURN\n")
		fmt.Fprintf(os.Stderr, "  keylens -user user.json -key Z -ctrl -conflicts\n")
		fmt.Fprintf(os.Stderr, "  keylens -user user.json -key G -global -mode OBJECT\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("keylens %s (%s)\n", version, commit)
		os.Exit(0)
	}

	if opts.keyLabel == "" {
		fmt.Fprintln(os.Stderr, "Error: -key is required")
		flag.Usage()
		os.Exit(1)
	}

	return opts
}
