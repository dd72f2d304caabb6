package expressivo

import (
	"errors"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// root       = expression EOF
// expression = product { '+' product }
// product    = primary { '*' primary }
// primary    = NUMBER | VARIABLE | '(' expression ')'
//
// The parse tree types double as the grammar for participle. The recursive
// descent parser builds the same trees by hand.

type rootTree struct {
	Expr *exprTree `@@`
}

type exprTree struct {
	Products []*productTree `@@ ( "+" @@ )*`
}

type productTree struct {
	Primaries []*primaryTree `@@ ( "*" @@ )*`
}

type primaryTree struct {
	// Pos is the position of the primary's first token. Only Offset is
	// meaningful for trees built by the recursive descent parser.
	Pos lexer.Position

	Number   *string   `  @Number`
	Variable *string   `| @Variable`
	Group    *exprTree `| "(" @@ ")"`
}

var (
	grammarLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?`},
		{Name: "Variable", Pattern: `[A-Za-z]+`},
		{Name: "Punct", Pattern: `[+*()]`},
		{Name: "Whitespace", Pattern: `[ \t\n\v\f\r]+`},
	})

	grammarParser = participle.MustBuild[rootTree](
		participle.Lexer(grammarLexer),
		participle.Elide("Whitespace"),
	)
)

// Grammar returns the grammar of expressions in EBNF.
func Grammar() string {
	return grammarParser.String()
}

// parseGrammar parses src with the participle-generated parser.
func parseGrammar(src string, maxDepth int) (*rootTree, error) {
	if k := nesting(src, maxDepth); k >= 0 {
		return nil, &DepthError{Offset: k, Max: maxDepth}
	}
	tree, err := grammarParser.ParseString("", src)
	if err != nil {
		return nil, grammarError(src, err)
	}
	return tree, nil
}

// nesting returns the offset of the first open parenthesis nested deeper than
// max, or -1 if there is none or max is not positive.
func nesting(src string, max int) int {
	if max <= 0 {
		return -1
	}
	depth := 0
	for k := 0; k < len(src); k++ {
		switch src[k] {
		case '(':
			depth++
			if depth > max {
				return k
			}
		case ')':
			if depth > 0 {
				depth--
			}
		}
	}
	return -1
}

// grammarError converts an error from participle into the package's error
// types so that both parsers report failures the same way.
func grammarError(src string, err error) error {
	var lerr *lexer.Error
	if errors.As(err, &lerr) {
		return &LexError{Offset: lerr.Pos.Offset, Text: charAt(src, lerr.Pos.Offset)}
	}
	var perr participle.Error
	if !errors.As(err, &perr) {
		return err
	}
	// participle reports the position of the unexpected token. Rescan it so
	// that the description matches the recursive descent parser's.
	l := scanner{src: src, pos: perr.Position().Offset}
	tok, lexErr := l.next()
	if lexErr != nil {
		return lexErr
	}
	return &SyntaxError{Offset: tok.pos, Found: tok.describe()}
}
