/*
Fltfirstfollow reads a single grammar encoding from standard input,
computes FIRST and FOLLOW for every nonterminal, and writes the result to
standard output.

Usage:

	fltfirstfollow [flags]

The flags are:

	-v, --verbose
		Log operational diagnostics (malformed input, I/O errors) to
		stderr in addition to the stdout result.

	--pretty
		Also print a bordered FIRST/FOLLOW table to stderr, for
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

	"github.com/dekarrin/rosed"
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
)

var (
	returnCode = ExitSuccess
	verbose    = pflag.BoolP("verbose", "v", false, "Log operational diagnostics to stderr")
	pretty     = pflag.Bool("pretty", false, "Also print a bordered FIRST/FOLLOW table to stderr")
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
		reportAndExit(err, *verbose)
		return
	}

	sets := grammar.Analyze(g)

	fmt.Println(codec.SerializeSets(g, sets))

	if *pretty || cfg.Pretty {
		printPrettySets(g, sets)
	}
}

func printPrettySets(g *grammar.Grammar, sets *grammar.Sets) {
	data := [][]string{{"Nonterminal", "First", "Follow"}}
	for _, nt := range g.NonTerminals() {
		data = append(data, []string{nt, sets.FirstOfNonTerminal(nt).StringOrdered(), sets.Follow(nt).StringOrdered()})
	}
	out := rosed.Edit("").
		InsertTableOpts(0, data, 80, rosed.Options{TableBorders: true}).
		String()
	gologger.Info().Msgf("\n%s", out)
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
