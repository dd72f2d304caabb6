package expressivo

import "strconv"

// SyntaxError is an error indicating a token that the grammar does not allow
// where it appears. It implements InputError.
type SyntaxError struct {
	// Offset is the byte offset of the unexpected token.
	Offset int
	// Expected describes what the parser would have accepted. It is empty
	// when the parser does not say.
	Expected string
	// Found describes the unexpected token.
	Found string
}

func (err *SyntaxError) Error() string {
	if err.Expected == "" {
		return errpos(err.Offset, "unexpected "+err.Found)
	}
	return errpos(err.Offset, "expected "+err.Expected+", found "+err.Found)
}

func (err *SyntaxError) Pos() int {
	return err.Offset
}

// DepthError is an error indicating parentheses nested beyond the configured
// limit. It implements InputError.
type DepthError struct {
	// Offset is the position of the first open parenthesis over the limit.
	Offset int
	// Max is the limit.
	Max int
}

func (err *DepthError) Error() string {
	return errpos(err.Offset, "parentheses nested deeper than "+strconv.Itoa(err.Max))
}

func (err *DepthError) Pos() int {
	return err.Offset
}

// RangeError is an error indicating a number too large to represent. It
// implements InputError.
type RangeError struct {
	// Offset is the position of the number.
	Offset int
	// Text is the number as written.
	Text string
}

func (err *RangeError) Error() string {
	return errpos(err.Offset, "number out of range: "+err.Text)
}

func (err *RangeError) Pos() int {
	return err.Offset
}

// InvalidExpression is the error returned by Parse for any invalid input. Its
// Err is one of the other error types in this package.
type InvalidExpression struct {
	Err error
}

func (err *InvalidExpression) Error() string {
	return "invalid expression: " + err.Err.Error()
}

func (err *InvalidExpression) Unwrap() error {
	return err.Err
}

// Pos returns the position of the underlying error, or -1 if it has none.
func (err *InvalidExpression) Pos() int {
	if p, ok := err.Err.(InputError); ok {
		return p.Pos()
	}
	return -1
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the byte offset of the start
	// of the character or token that caused it.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*DepthError)(nil)
	_ InputError = (*RangeError)(nil)
	_ InputError = (*InvalidExpression)(nil)
)
