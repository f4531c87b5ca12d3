/*
Fltll1 reads a single grammar encoding from standard input, validates it
and builds its LL(1) parse table, and writes the table's encoding to
standard output. If the grammar is left-recursive or left-ambiguous, a
diagnostic message is printed in place of the table.

Usage:

	fltll1 [flags]

The flags are:

	-v, --verbose
		Log operational diagnostics (malformed input, I/O errors,
		rejected grammars) to stderr in addition to the stdout result.

	--pretty
		Also print the table as a bordered grid to stderr, for
		interactive use.

	--config FILE
		Optional TOML file of presentation preferences; see
		internal/config.

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
	"github.com/kestrellang/flt/internal/grammar"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota
	// ExitMalformedInput indicates the input line did not parse.
	ExitMalformedInput
	// ExitDiagnostic indicates the grammar was rejected as not LL(1).
	ExitDiagnostic
)

var (
	returnCode = ExitSuccess
	verbose    = pflag.BoolP("verbose", "v", false, "Log operational diagnostics to stderr")
	pretty     = pflag.Bool("pretty", false, "Also print the table as a bordered grid to stderr")
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

	g, err := codec.ParseGrammar(line)
	if err != nil {
		reportAndExit(err, *verbose, ExitMalformedInput)
		return
	}

	table, err := grammar.BuildLL1Table(g)
	if err != nil {
		reportAndExit(err, *verbose, ExitDiagnostic)
		return
	}

	fmt.Println(codec.SerializeLL1Table(g, table))

	if *pretty || cfg.Pretty {
		gologger.Info().Msgf("\n%s", table.String())
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

func reportAndExit(err error, verbose bool, code int) {
	if flterr.IsEmptyInput(err) {
		return
	}
	fmt.Println(flterr.Diagnostic(err))
	if verbose {
		gologger.Error().Msgf("%v", err)
	}
	returnCode = code
}
