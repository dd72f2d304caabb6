package expressivo

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	cases := []struct {
		e    Expression
		want string
	}{
		{num(1), "1"},
		{num(2.5), "2.5"},
		{num(0.1), "0.1"},
		{num(1e21), "1000000000000000000000"},
		{num(1e-7), "0.0000001"},
		{v("xy"), "xy"},
		{add(num(1), v("x")), "1 + x"},
		{mul(num(2), v("x")), "2 * x"},
		{add(add(v("a"), v("b")), v("c")), "a + b + c"},
		{add(v("a"), add(v("b"), v("c"))), "a + (b + c)"},
		{mul(mul(v("a"), v("b")), v("c")), "a * b * c"},
		{mul(v("a"), mul(v("b"), v("c"))), "a * (b * c)"},
		{add(v("a"), mul(v("b"), v("c"))), "a + b * c"},
		{add(mul(v("a"), v("b")), v("c")), "a * b + c"},
		{mul(add(v("a"), v("b")), v("c")), "(a + b) * c"},
		{mul(v("a"), add(v("b"), v("c"))), "a * (b + c)"},
		{mul(add(v("a"), v("b")), add(v("c"), v("d"))), "(a + b) * (c + d)"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, c.e.String(), "%#v", c.e)
	}
}

func TestGoString(t *testing.T) {
	e := add(add(num(1), num(2)), mul(v("x"), num(0.5)))
	require.Equal(t, "Sum(Sum(Number(1), Number(2)), Product(Variable(x), Number(0.5)))", e.GoString())
}

func TestEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b Expression
		want bool
	}{
		{"num", num(1), num(1), true},
		{"numdiff", num(1), num(2), false},
		{"negzero", num(0), NewNumber(math.Copysign(0, -1)), true},
		{"var", v("x"), v("x"), true},
		{"vardiff", v("x"), v("y"), false},
		{"varcase", v("x"), v("X"), false},
		{"numvar", num(1), v("x"), false},
		{"sum", add(v("a"), v("b")), add(v("a"), v("b")), true},
		{"sumorder", add(v("a"), v("b")), add(v("b"), v("a")), false},
		{"sumsame", add(v("a"), v("a")), add(v("a"), v("a")), true},
		{"sumproduct", add(v("a"), v("b")), mul(v("a"), v("b")), false},
		{"shape", add(add(v("a"), v("b")), v("c")), add(v("a"), add(v("b"), v("c"))), false},
		{"deep", mul(add(num(1), v("x")), v("y")), mul(add(num(1), v("x")), v("y")), true},
		{"nil", v("x"), nil, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, c.a.Equal(c.b))
			if c.b == nil {
				return
			}
			require.Equal(t, c.want, c.b.Equal(c.a), "equality is not symmetric")
			if c.want {
				require.Equal(t, c.a.Hash(), c.b.Hash())
			}
		})
	}
}

func TestHashDistinguishes(t *testing.T) {
	// Not guaranteed in general, but these collide only if the hash ignores
	// order or node kinds.
	es := []Expression{
		num(1), num(2), v("x"), v("y"),
		add(v("x"), v("y")), add(v("y"), v("x")),
		mul(v("x"), v("y")), mul(v("y"), v("x")),
		add(add(v("a"), v("b")), v("c")), add(v("a"), add(v("b"), v("c"))),
	}
	seen := make(map[uint64]Expression)
	for _, e := range es {
		h := e.Hash()
		if prev, ok := seen[h]; ok {
			t.Errorf("%#v and %#v both hash to %x", prev, e, h)
		}
		seen[h] = e
	}
}

func TestConstructorPanics(t *testing.T) {
	cases := []struct {
		name string
		f    func()
	}{
		{"negative", func() { NewNumber(-1) }},
		{"inf", func() { NewNumber(math.Inf(1)) }},
		{"nan", func() { NewNumber(math.NaN()) }},
		{"emptyvar", func() { NewVariable("") }},
		{"digitvar", func() { NewVariable("x1") }},
		{"spacevar", func() { NewVariable("x y") }},
		{"nilsumleft", func() { NewSum(nil, v("x")) }},
		{"nilsumright", func() { NewSum(v("x"), nil) }},
		{"nilproduct", func() { NewProduct(nil, nil) }},
	}
	for _, c := range cases {
		require.Panics(t, c.f, c.name)
	}
}

func TestAccessors(t *testing.T) {
	s := NewSum(num(1), v("x"))
	require.True(t, num(1).Equal(s.Left()))
	require.True(t, v("x").Equal(s.Right()))
	p := NewProduct(s, num(3))
	require.True(t, s.Equal(p.Left()))
	require.Equal(t, 3.0, p.Right().(Number).Value())
	require.Equal(t, "x", s.Right().(Variable).Name())
}

// randExpr generates a random expression with at most depth levels of binary
// nodes.
func randExpr(rng *rand.Rand, depth int) Expression {
	if depth <= 0 || rng.Intn(4) == 0 {
		switch rng.Intn(3) {
		case 0:
			return num(float64(rng.Intn(100)))
		case 1:
			return num(rng.Float64() * math.Pow(10, float64(rng.Intn(20)-10)))
		default:
			const letters = "abcxyzXYZ"
			n := 1 + rng.Intn(3)
			b := make([]byte, n)
			for i := range b {
				b[i] = letters[rng.Intn(len(letters))]
			}
			return v(string(b))
		}
	}
	l, r := randExpr(rng, depth-1), randExpr(rng, depth-1)
	if rng.Intn(2) == 0 {
		return add(l, r)
	}
	return mul(l, r)
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	backends(t, func(t *testing.T, opts ...ParseOption) {
		for i := 0; i < 500; i++ {
			e := randExpr(rng, 6)
			s := e.String()
			require.Equal(t, s, e.String(), "printing is not idempotent")
			got, err := Parse(s, opts...)
			require.NoError(t, err, "%q", s)
			require.True(t, e.Equal(got), "%q:\nwant %#v\ngot  %#v", s, e, got)
			require.Equal(t, e.Hash(), got.Hash())
			require.Equal(t, s, got.String())
		}
	})
}
