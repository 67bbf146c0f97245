// Espira
//
// A small line-oriented scripting language: typed variable declarations, echo with embedded
// expressions, and four-function arithmetic.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/espira-lang/espira/source/database"
	"github.com/espira-lang/espira/source/repl"
	"github.com/espira-lang/espira/source/service"
	"github.com/espira-lang/espira/source/settings"
	"github.com/espira-lang/espira/source/text"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run does everything main does except exit, and returns the exit code. Errors in the lines of
// a script are reported but don't affect the code: only not being able to start does.
func run(args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("espira", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		version, help, trace, noColor bool
		configPath, snapshot          string
	)
	fs.BoolVar(&version, "v", false, "")
	fs.BoolVar(&version, "version", false, "")
	fs.BoolVar(&help, "h", false, "")
	fs.BoolVar(&help, "help", false, "")
	fs.BoolVar(&trace, "trace", false, "")
	fs.BoolVar(&noColor, "no-color", false, "")
	fs.StringVar(&configPath, "config", "", "")
	fs.StringVar(&snapshot, "snapshot", "", "")
	if e := fs.Parse(args); e != nil {
		fmt.Fprintln(errOut, text.ERROR+": "+e.Error())
		fmt.Fprint(errOut, text.HELP)
		return 1
	}

	cfg := settings.Default()
	if configPath != "" {
		var e error
		if cfg, e = settings.LoadConfig(configPath); e != nil {
			fmt.Fprintln(errOut, text.ERROR+": "+e.Error())
			return 1
		}
	}
	if trace {
		cfg.Trace = true
	}
	if noColor {
		cfg.Color = false
	}
	if snapshot != "" {
		s, e := settings.ParseSnapshot(snapshot)
		if e != nil {
			fmt.Fprintln(errOut, text.ERROR+": "+e.Error())
			return 1
		}
		cfg.Snapshot = s
	}
	text.SetColor(cfg.Color)

	switch {
	case version:
		fmt.Fprintln(out, "Espira version "+text.VERSION)
		return 0
	case help:
		fmt.Fprint(out, text.HELP)
		return 0
	}

	sv := service.New(out, errOut, service.WithLogger(service.NewLogger(errOut, cfg.Trace)))
	defer sv.Close()
	rest := fs.Args()
	switch {
	case len(rest) == 1 && rest[0] == "repl":
		repl.New(sv, out, cfg.Prompt).Start()
	case len(rest) == 2 && rest[0] == "run":
		if code := runFile(sv, rest[1], errOut); code != 0 {
			return code
		}
	case len(rest) == 1:
		if code := runFile(sv, rest[0], errOut); code != 0 {
			return code
		}
	default:
		fmt.Fprint(errOut, text.HELP)
		return 1
	}
	return saveSnapshot(sv, cfg.Snapshot, errOut)
}

func runFile(sv *service.Service, path string, errOut io.Writer) int {
	file, e := os.Open(path)
	if e != nil {
		fmt.Fprintln(errOut, text.ERROR+": can't open "+text.Emph(path)+": "+e.Error())
		return 1
	}
	defer file.Close()
	if _, e := sv.Run(file); e != nil {
		fmt.Fprintln(errOut, text.ERROR+": "+e.Error())
		return 1
	}
	return 0
}

func saveSnapshot(sv *service.Service, target settings.Snapshot, errOut io.Writer) int {
	if target.Driver == "" {
		return 0
	}
	db, e := database.GetdB(target.Driver, target.DSN)
	if e != nil {
		fmt.Fprintln(errOut, text.ERROR+": snapshot: "+e.Error())
		fmt.Fprint(errOut, database.GetDriverOptions())
		return 1
	}
	defer db.Close()
	if e := database.SaveVariables(db, target.Driver, sv.Variables()); e != nil {
		fmt.Fprintln(errOut, text.ERROR+": "+e.Error())
		return 1
	}
	return 0
}
