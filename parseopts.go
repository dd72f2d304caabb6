package expressivo

// DefaultMaxDepth is the default limit on nested parentheses.
const DefaultMaxDepth = 1000

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	depthopt   int
	grammaropt struct{}
)

// parsectx holds the configuration of a parse.
type parsectx struct {
	// maxDepth is the maximum number of simultaneously open parentheses. Zero
	// or less means no limit.
	maxDepth int
	// grammar selects the participle parser instead of recursive descent.
	grammar bool
}

// MaxDepth limits the nesting depth of parentheses. Inputs that open more than
// n parentheses at once fail with a *DepthError. If n is zero or negative,
// nesting is unlimited, and deeply nested input can exhaust the stack.
func MaxDepth(n int) ParseOption {
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxDepth = int(o)
	return p
}

// GrammarDriven parses with a parser generated from the grammar declaration
// rather than the hand-written one. Both accept exactly the same inputs and
// produce equal expressions. The generated parser reports syntax errors
// without an expected token.
func GrammarDriven() ParseOption {
	return grammaropt{}
}

func (grammaropt) parseOption(p parsectx) parsectx {
	p.grammar = true
	return p
}
