package expressivo

// Parse parses an expression. The given options are applied in order. If the
// input is not a valid expression, the result is nil and the error is an
// *InvalidExpression describing the first problem found.
func Parse(input string, opts ...ParseOption) (Expression, error) {
	p := parsectx{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	var tree *rootTree
	var err error
	if p.grammar {
		tree, err = parseGrammar(input, p.maxDepth)
	} else {
		tree, err = parseString(input, p.maxDepth)
	}
	if err != nil {
		return nil, &InvalidExpression{Err: err}
	}
	e, err := build(tree)
	if err != nil {
		return nil, &InvalidExpression{Err: err}
	}
	return e, nil
}

// parseString tokenizes src and parses it by recursive descent.
func parseString(src string, maxDepth int) (*rootTree, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	return parseTokens(toks, maxDepth)
}

// parser holds the state of a recursive descent parse. Each rule takes the
// cursor of its first token and returns the cursor just past its last.
type parser struct {
	toks []lexToken
	// depth is the number of currently open parentheses.
	depth int
	// max is the nesting limit, or non-positive for none.
	max int
}

// parseTokens parses a complete token stream, which must end with EOF.
func parseTokens(toks []lexToken, maxDepth int) (*rootTree, error) {
	p := parser{toks: toks, max: maxDepth}
	return p.root()
}

func (p *parser) root() (*rootTree, error) {
	e, k, err := p.expression(0)
	if err != nil {
		return nil, err
	}
	if tok := p.toks[k]; tok.kind != tokenEOF {
		return nil, unexpected(tok, "'+', '*', or end of input")
	}
	return &rootTree{Expr: e}, nil
}

func (p *parser) expression(k int) (*exprTree, int, error) {
	var e exprTree
	for {
		t, next, err := p.product(k)
		if err != nil {
			return nil, 0, err
		}
		e.Products = append(e.Products, t)
		k = next
		if p.toks[k].kind != tokenPlus {
			return &e, k, nil
		}
		k++
	}
}

func (p *parser) product(k int) (*productTree, int, error) {
	var t productTree
	for {
		f, next, err := p.primary(k)
		if err != nil {
			return nil, 0, err
		}
		t.Primaries = append(t.Primaries, f)
		k = next
		if p.toks[k].kind != tokenTimes {
			return &t, k, nil
		}
		k++
	}
}

func (p *parser) primary(k int) (*primaryTree, int, error) {
	tok := p.toks[k]
	f := primaryTree{}
	f.Pos.Offset = tok.pos
	switch tok.kind {
	case tokenNum:
		f.Number = &tok.text
		return &f, k + 1, nil
	case tokenIdent:
		f.Variable = &tok.text
		return &f, k + 1, nil
	case tokenOpen:
		if p.max > 0 && p.depth >= p.max {
			return nil, 0, &DepthError{Offset: tok.pos, Max: p.max}
		}
		p.depth++
		e, next, err := p.expression(k + 1)
		if err != nil {
			return nil, 0, err
		}
		if end := p.toks[next]; end.kind != tokenClose {
			return nil, 0, unexpected(end, "'+', '*', or ')'")
		}
		p.depth--
		f.Group = e
		return &f, next + 1, nil
	default:
		return nil, 0, unexpected(tok, "number, variable, or '('")
	}
}

func unexpected(tok lexToken, want string) error {
	return &SyntaxError{Offset: tok.pos, Expected: want, Found: tok.describe()}
}
