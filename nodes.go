package expressivo

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Expression is an immutable polynomial expression. Its implementations are
// Number, Variable, Sum, and Product.
type Expression interface {
	// String returns a representation of the expression that parses to an
	// equal expression.
	String() string
	// GoString returns the structure of the expression in constructor
	// notation, e.g. Sum(Number(1), Variable(x)).
	GoString() string
	// Equal reports whether two expressions are structurally equal: the same
	// kind of node with equal values or names, or equal children in the same
	// order.
	Equal(Expression) bool
	// Hash returns a hash of the expression. Equal expressions have equal
	// hashes.
	Hash() uint64

	// fmt writes the expression to b.
	fmt(b *strings.Builder)
	// prec is the precedence of the expression's outermost operator.
	prec() precedence
}

type precedence int8

const (
	sumPrec precedence = iota
	productPrec
	leafPrec
)

// Hash tags distinguish node kinds.
const (
	tagNumber byte = iota + 1
	tagVariable
	tagSum
	tagProduct
)

// Number is a non-negative constant.
type Number struct {
	value float64
}

// NewNumber creates a number expression. Panics if v is negative, infinite, or
// NaN, since no input parses to such a number.
func NewNumber(v float64) Number {
	if v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		panic("expressivo: invalid number " + strconv.FormatFloat(v, 'g', -1, 64))
	}
	// Drop the sign of -0 so that equal numbers hash alike.
	if v == 0 {
		v = 0
	}
	return Number{value: v}
}

// Value returns the number's value.
func (n Number) Value() float64 {
	return n.value
}

func (n Number) String() string {
	return strconv.FormatFloat(n.value, 'f', -1, 64)
}

func (n Number) GoString() string {
	return "Number(" + n.String() + ")"
}

func (n Number) Equal(e Expression) bool {
	m, ok := e.(Number)
	return ok && n.value == m.value
}

func (n Number) Hash() uint64 {
	var b [9]byte
	b[0] = tagNumber
	binary.LittleEndian.PutUint64(b[1:], math.Float64bits(n.value))
	return xxhash.Sum64(b[:])
}

func (n Number) fmt(b *strings.Builder) {
	b.WriteString(n.String())
}

func (Number) prec() precedence {
	return leafPrec
}

// Variable is a named variable. Variables with different names are distinct,
// including names differing only in case.
type Variable struct {
	name string
}

// NewVariable creates a variable expression. Panics unless name is a non-empty
// sequence of ASCII letters.
func NewVariable(name string) Variable {
	if name == "" {
		panic("expressivo: empty variable name")
	}
	for i := 0; i < len(name); i++ {
		if !isLetter(name[i]) {
			panic("expressivo: invalid variable name " + strconv.Quote(name))
		}
	}
	return Variable{name: name}
}

// Name returns the variable's name.
func (v Variable) Name() string {
	return v.name
}

func (v Variable) String() string {
	return v.name
}

func (v Variable) GoString() string {
	return "Variable(" + v.name + ")"
}

func (v Variable) Equal(e Expression) bool {
	w, ok := e.(Variable)
	return ok && v.name == w.name
}

func (v Variable) Hash() uint64 {
	d := xxhash.New()
	d.Write([]byte{tagVariable})
	d.WriteString(v.name)
	return d.Sum64()
}

func (v Variable) fmt(b *strings.Builder) {
	b.WriteString(v.name)
}

func (Variable) prec() precedence {
	return leafPrec
}

// Sum is the sum of two expressions.
type Sum struct {
	left, right Expression
}

// NewSum creates the expression left + right. Panics if either is nil.
func NewSum(left, right Expression) Sum {
	if left == nil || right == nil {
		panic("expressivo: nil operand to sum")
	}
	return Sum{left: left, right: right}
}

// Left returns the left operand.
func (s Sum) Left() Expression { return s.left }

// Right returns the right operand.
func (s Sum) Right() Expression { return s.right }

func (s Sum) String() string {
	var b strings.Builder
	s.fmt(&b)
	return b.String()
}

func (s Sum) GoString() string {
	return "Sum(" + s.left.GoString() + ", " + s.right.GoString() + ")"
}

func (s Sum) Equal(e Expression) bool {
	t, ok := e.(Sum)
	return ok && s.left.Equal(t.left) && s.right.Equal(t.right)
}

func (s Sum) Hash() uint64 {
	return hashBinary(tagSum, s.left, s.right)
}

func (s Sum) fmt(b *strings.Builder) {
	fmtBinary(b, sumPrec, " + ", s.left, s.right)
}

func (Sum) prec() precedence {
	return sumPrec
}

// Product is the product of two expressions.
type Product struct {
	left, right Expression
}

// NewProduct creates the expression left * right. Panics if either is nil.
func NewProduct(left, right Expression) Product {
	if left == nil || right == nil {
		panic("expressivo: nil operand to product")
	}
	return Product{left: left, right: right}
}

// Left returns the left operand.
func (p Product) Left() Expression { return p.left }

// Right returns the right operand.
func (p Product) Right() Expression { return p.right }

func (p Product) String() string {
	var b strings.Builder
	p.fmt(&b)
	return b.String()
}

func (p Product) GoString() string {
	return "Product(" + p.left.GoString() + ", " + p.right.GoString() + ")"
}

func (p Product) Equal(e Expression) bool {
	q, ok := e.(Product)
	return ok && p.left.Equal(q.left) && p.right.Equal(q.right)
}

func (p Product) Hash() uint64 {
	return hashBinary(tagProduct, p.left, p.right)
}

func (p Product) fmt(b *strings.Builder) {
	fmtBinary(b, productPrec, " * ", p.left, p.right)
}

func (Product) prec() precedence {
	return productPrec
}

// fmtBinary writes a binary operation. Since both operators group left to
// right, a right operand at the same precedence needs parentheses to keep its
// shape, but a left one does not.
func fmtBinary(b *strings.Builder, prec precedence, op string, left, right Expression) {
	fmtOperand(b, left, left.prec() < prec)
	b.WriteString(op)
	fmtOperand(b, right, right.prec() <= prec)
}

func fmtOperand(b *strings.Builder, e Expression, paren bool) {
	if !paren {
		e.fmt(b)
		return
	}
	b.WriteByte('(')
	e.fmt(b)
	b.WriteByte(')')
}

func hashBinary(tag byte, left, right Expression) uint64 {
	var b [17]byte
	b[0] = tag
	binary.LittleEndian.PutUint64(b[1:], left.Hash())
	binary.LittleEndian.PutUint64(b[9:], right.Hash())
	return xxhash.Sum64(b[:])
}

var (
	_ Expression = Number{}
	_ Expression = Variable{}
	_ Expression = Sum{}
	_ Expression = Product{}
)
