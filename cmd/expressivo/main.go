package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/zephyrtronium/expressivo"
)

var cli struct {
	In       string   `short:"i" placeholder:"FILE" help:"Input file, one expression per line (default stdin if no expressions given)."`
	Tree     bool     `short:"t" help:"Print parse trees in constructor notation."`
	Grammar  bool     `short:"g" help:"Parse with the generated grammar parser."`
	MaxDepth int      `default:"1000" help:"Maximum nesting of parentheses; zero for no limit."`
	EBNF     bool     `name:"ebnf" help:"Print the grammar and exit."`
	Quiet    bool     `short:"q" help:"Do not log invalid expressions."`
	Exprs    []string `arg:"" optional:"" name:"expression" help:"Expressions to parse."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("expressivo"),
		kong.Description("Parse polynomial expressions and print them in canonical form."),
		kong.UsageOnError(),
	)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if cli.Quiet {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	if cli.EBNF {
		fmt.Println(expressivo.Grammar())
		return
	}

	opts := []expressivo.ParseOption{expressivo.MaxDepth(cli.MaxDepth)}
	if cli.Grammar {
		opts = append(opts, expressivo.GrammarDriven())
	}

	bad := 0
	for _, s := range cli.Exprs {
		if !echo(os.Stdout, s, opts) {
			bad++
		}
	}
	if cli.In != "" || len(cli.Exprs) == 0 {
		n, err := echoLines(os.Stdout, cli.In, opts)
		ctx.FatalIfErrorf(err)
		bad += n
	}
	if bad > 0 {
		log.Error().Int("count", bad).Msg("invalid expressions")
		os.Exit(1)
	}
}

// echo parses s and prints it. It reports whether s was valid.
func echo(w io.Writer, s string, opts []expressivo.ParseOption) bool {
	e, err := expressivo.Parse(s, opts...)
	if err != nil {
		log.Warn().Err(err).Str("input", s).Msg("parse failed")
		return false
	}
	if cli.Tree {
		fmt.Fprintf(w, "%#v\n", e)
	} else {
		fmt.Fprintln(w, e)
	}
	return true
}

// echoLines echoes each non-blank line of the named file, or stdin if name is
// empty or "-". It returns the number of invalid lines.
func echoLines(w io.Writer, name string, opts []expressivo.ParseOption) (int, error) {
	var f io.Reader = os.Stdin
	if name != "" && name != "-" {
		in, err := os.Open(name)
		if err != nil {
			return 0, err
		}
		defer in.Close()
		f = in
	}
	bad := 0
	scan := bufio.NewScanner(f)
	for scan.Scan() {
		line := scan.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !echo(w, line, opts) {
			bad++
		}
	}
	return bad, scan.Err()
}
