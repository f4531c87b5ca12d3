/*
Fltregex2dfa reads a single regular expression from standard input,
compiles it directly to a DFA via the annotated-syntax-tree method
(nullable/firstpos/lastpos/followpos), and writes the resulting DFA's
encoding to standard output.

Usage:

	fltregex2dfa [flags]

The flags are:

	-v, --verbose
		Log operational diagnostics (malformed input, I/O errors) to
		stderr in addition to the stdout result.

	--pretty
		Also log the result's transitions to stderr, one
		"src --sym--> dst" line each, for interactive use.

	--config FILE
		Optional TOML file of presentation preferences, including the
		DFA state-naming scheme; see internal/config.

If standard input contains no line, the process exits silently with
status 0 and prints nothing, per the toolkit's error handling design.
*/
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/spf13/pflag"

	"github.com/kestrellang/flt/internal/codec"
	"github.com/kestrellang/flt/internal/config"
	"github.com/kestrellang/flt/internal/flterr"
	"github.com/kestrellang/flt/internal/regex"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota
	// ExitMalformedInput indicates the input line did not parse.
	ExitMalformedInput
)

var (
	returnCode = ExitSuccess
	verbose    = pflag.BoolP("verbose", "v", false, "Log operational diagnostics to stderr")
	pretty     = pflag.Bool("pretty", false, "Also log the result's transitions to stderr")
	configFile = pflag.String("config", "", "Optional TOML presentation config file")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occured: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()
	cfg := loadConfig(*configFile, *verbose)

	line, ok := readLine(os.Stdin)
	if !ok {
		return
	}

	naming := regex.NamingDiscovery
	if cfg.StateNaming == config.StateNamingPositions {
		naming = regex.NamingPositions
	}

	dfa, err := regex.CompileNamed(line, naming)
	if err != nil {
		reportAndExit(err, *verbose)
		return
	}

	fmt.Println(codec.SerializeAutomaton(dfa))

	if *pretty || cfg.Pretty {
		for _, t := range dfa.IterTransitions() {
			gologger.Info().Msgf("%s --%s--> %s", t.Source, t.Symbol, t.Dest)
		}
	}
}

func loadConfig(path string, verbose bool) config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		if verbose {
			gologger.Warning().Msgf("could not load config %s: %v", path, err)
		}
		return config.Default()
	}
	return cfg
}

func readLine(f *os.File) (string, bool) {
	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return "", false
	}
	return scanner.Text(), true
}

func reportAndExit(err error, verbose bool) {
	if flterr.IsEmptyInput(err) {
		return
	}
	fmt.Println(flterr.Diagnostic(err))
	if verbose {
		gologger.Error().Msgf("%v", err)
	}
	returnCode = ExitMalformedInput
}
