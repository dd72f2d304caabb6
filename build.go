package expressivo

import (
	"errors"
	"strconv"
)

// build converts a parse tree into an expression. Chains of + and * fold to
// the left; parentheses leave no node of their own.
func build(tree *rootTree) (Expression, error) {
	return buildExpr(tree.Expr)
}

func buildExpr(e *exprTree) (Expression, error) {
	r, err := buildProduct(e.Products[0])
	if err != nil {
		return nil, err
	}
	for _, t := range e.Products[1:] {
		rhs, err := buildProduct(t)
		if err != nil {
			return nil, err
		}
		r = Sum{left: r, right: rhs}
	}
	return r, nil
}

func buildProduct(t *productTree) (Expression, error) {
	r, err := buildPrimary(t.Primaries[0])
	if err != nil {
		return nil, err
	}
	for _, f := range t.Primaries[1:] {
		rhs, err := buildPrimary(f)
		if err != nil {
			return nil, err
		}
		r = Product{left: r, right: rhs}
	}
	return r, nil
}

func buildPrimary(f *primaryTree) (Expression, error) {
	switch {
	case f.Number != nil:
		v, err := strconv.ParseFloat(*f.Number, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return nil, &RangeError{Offset: f.Pos.Offset, Text: *f.Number}
			}
			// The lexers only produce literals ParseFloat accepts.
			panic("expressivo: bad number literal " + strconv.Quote(*f.Number) + ": " + err.Error())
		}
		return Number{value: v}, nil
	case f.Variable != nil:
		return Variable{name: *f.Variable}, nil
	case f.Group != nil:
		return buildExpr(f.Group)
	default:
		panic("expressivo: empty primary")
	}
}
