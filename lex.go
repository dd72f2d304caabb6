package expressivo

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

// describe names the token the way error messages refer to it.
func (t lexToken) describe() string {
	switch t.kind {
	case tokenEOF:
		return "end of input"
	case tokenNum:
		return "number " + t.text
	case tokenIdent:
		return "variable " + t.text
	default:
		return strconv.Quote(t.text)
	}
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is an unsigned decimal number.
	tokenNum
	// tokenIdent is a variable name.
	tokenIdent
	// tokenPlus is the addition operator.
	tokenPlus
	// tokenTimes is the multiplication operator.
	tokenTimes
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenIdent:
		return "Ident"
	case tokenPlus:
		return "Plus"
	case tokenTimes:
		return "Times"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Whitespace contains the bytes skipped between tokens.
const Whitespace = " \t\n\v\f\r"

func isSpace(c byte) bool {
	return strings.IndexByte(Whitespace, c) >= 0
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

type scanner struct {
	src string
	pos int
}

// tokenize scans all of src. On success, the last token is always the only EOF
// token.
func tokenize(src string) ([]lexToken, error) {
	l := scanner{src: src}
	var toks []lexToken
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.kind == tokenEOF {
			return toks, nil
		}
	}
}

// next scans the next token from the input. Once the input is exhausted, every
// call returns an EOF token.
func (l *scanner) next() (lexToken, error) {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
	tok := lexToken{pos: l.pos}
	if l.pos >= len(l.src) {
		tok.kind = tokenEOF
		return tok, nil
	}
	c := l.src[l.pos]
	switch {
	case isDigit(c):
		if err := l.scanNum(); err != nil {
			return tok, err
		}
		tok.kind = tokenNum
	case isLetter(c):
		l.scanIdent()
		tok.kind = tokenIdent
	case c == '+':
		l.pos++
		tok.kind = tokenPlus
	case c == '*':
		l.pos++
		tok.kind = tokenTimes
	case c == '(':
		l.pos++
		tok.kind = tokenOpen
	case c == ')':
		l.pos++
		tok.kind = tokenClose
	default:
		return tok, l.error(l.pos)
	}
	tok.text = l.src[tok.pos:l.pos]
	return tok, nil
}

// scanNum scans digits with an optional fraction. A dot must be followed by at
// least one digit.
func (l *scanner) scanNum() error {
	l.scanDigits()
	if l.pos >= len(l.src) || l.src[l.pos] != '.' {
		return nil
	}
	dot := l.pos
	l.pos++
	if l.pos >= len(l.src) || !isDigit(l.src[l.pos]) {
		return l.error(dot)
	}
	l.scanDigits()
	return nil
}

func (l *scanner) scanDigits() {
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
}

func (l *scanner) scanIdent() {
	for l.pos < len(l.src) && isLetter(l.src[l.pos]) {
		l.pos++
	}
}

func (l *scanner) error(at int) error {
	return &LexError{
		Offset: at,
		Text:   charAt(l.src, at),
	}
}

// charAt returns the character starting at byte offset k, or the empty string
// at the end of src. Invalid UTF-8 yields the single byte.
func charAt(src string, k int) string {
	if k >= len(src) {
		return ""
	}
	_, sz := utf8.DecodeRuneInString(src[k:])
	return src[k : k+sz]
}

// LexError indicates a character that cannot start or continue a token. It
// implements InputError.
type LexError struct {
	// Offset is the byte offset of the offending character.
	Offset int
	// Text is the offending character.
	Text string
}

func (err *LexError) Error() string {
	return errpos(err.Offset, "unrecognized character "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Offset
}
