// Package lexer splits SQL source into leaf segments.
//
// The lexer is lossless: every byte of the input ends up in exactly one leaf,
// including whitespace, newlines and comments. It never fails; input it does
// not recognise becomes a "code" leaf and unterminated literals or comments
// run to the end of the input.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/leaplint/pkg/segment"
	"github.com/leapstack-labs/leaplint/pkg/token"
)

// Leaf types produced by the lexer, in addition to the shared ones in package segment.
const (
	TypeNumericLiteral     = "numeric_literal"
	TypeQuotedLiteral      = "quoted_literal"
	TypeQuotedIdentifier   = "quoted_identifier"
	TypeBackQuote          = "back_quote"
	TypeCastingOperator    = "casting_operator"
	TypeComparisonOperator = "comparison_operator"
	TypeBinaryOperator     = "binary_operator"
)

// Multi-character operators, longest first.
var operators = []struct {
	text string
	typ  string
}{
	{"<=>", TypeComparisonOperator},
	{"::", TypeCastingOperator},
	{"==", TypeComparisonOperator},
	{"!=", TypeComparisonOperator},
	{"<>", TypeComparisonOperator},
	{"<=", TypeComparisonOperator},
	{">=", TypeComparisonOperator},
	{"||", TypeBinaryOperator},
	{"=", TypeComparisonOperator},
	{"<", TypeComparisonOperator},
	{">", TypeComparisonOperator},
	{"+", TypeBinaryOperator},
	{"-", TypeBinaryOperator},
	{"/", TypeBinaryOperator},
	{"%", TypeBinaryOperator},
	{"&", TypeBinaryOperator},
	{"|", TypeBinaryOperator},
	{"^", TypeBinaryOperator},
}

var punctuation = map[byte]string{
	',': segment.TypeComma,
	'.': segment.TypeDot,
	';': segment.TypeSemicolon,
	'*': segment.TypeStar,
	'(': segment.TypeStartBracket,
	')': segment.TypeEndBracket,
}

// Lexer tokenizes SQL input into leaf segments.
type Lexer struct {
	input string
	pos   int // byte offset of the next unread character
	at    token.Position
}

// New creates a Lexer for input.
func New(input string) *Lexer {
	return &Lexer{input: input, at: token.Start}
}

// Lex returns every leaf of input in order.
func Lex(input string) []*segment.Segment {
	return New(input).All()
}

// All consumes the rest of the input.
func (l *Lexer) All() []*segment.Segment {
	var leaves []*segment.Segment
	for {
		leaf := l.Next()
		if leaf == nil {
			return leaves
		}
		leaves = append(leaves, leaf)
	}
}

// Next returns the next leaf, or nil at the end of input.
func (l *Lexer) Next() *segment.Segment {
	if l.pos >= len(l.input) {
		return nil
	}
	rest := l.input[l.pos:]
	ch := rest[0]

	switch {
	case ch == '\n':
		return l.emit(segment.TypeNewline, 1, false)
	case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\f' || ch == '\v':
		return l.emit(segment.TypeWhitespace, l.readWhitespace(rest), false)
	case strings.HasPrefix(rest, "--"):
		return l.emit(segment.TypeComment, l.readLineComment(rest), false)
	case strings.HasPrefix(rest, "/*"):
		return l.emit(segment.TypeComment, l.readBlockComment(rest), false)
	case ch == '\'':
		return l.emitQuoted(rest, '\'', TypeQuotedLiteral)
	case ch == '"':
		return l.emitQuoted(rest, '"', TypeQuotedIdentifier)
	case ch == '`':
		return l.emitQuoted(rest, '`', TypeBackQuote)
	case isDigit(ch) || (ch == '.' && len(rest) > 1 && isDigit(rest[1])):
		return l.emit(TypeNumericLiteral, l.readNumber(rest), true)
	case isIdentStart(rest):
		return l.emit(segment.TypeWord, l.readIdentifier(rest), true)
	}

	if typ, ok := punctuation[ch]; ok {
		return l.emit(typ, 1, true)
	}
	for _, op := range operators {
		if strings.HasPrefix(rest, op.text) {
			return l.emit(op.typ, len(op.text), true)
		}
	}

	_, size := utf8.DecodeRuneInString(rest)
	return l.emit(segment.TypeCode, size, true)
}

func (l *Lexer) emit(typ string, n int, code bool) *segment.Segment {
	raw := l.input[l.pos : l.pos+n]
	leaf := segment.NewLeaf(typ, raw, code)
	leaf.Span = token.SpanOf(l.at, raw)
	l.at = leaf.Span.End
	l.pos += n
	return leaf
}

// emitQuoted reads a quoted run where a doubled quote escapes itself.
// Unterminated runs become a single code leaf to the end of input.
func (l *Lexer) emitQuoted(rest string, quote byte, typ string) *segment.Segment {
	for i := 1; i < len(rest); i++ {
		if rest[i] != quote {
			continue
		}
		if i+1 < len(rest) && rest[i+1] == quote {
			i++
			continue
		}
		return l.emit(typ, i+1, true)
	}
	return l.emit(segment.TypeCode, len(rest), true)
}

func (l *Lexer) readWhitespace(rest string) int {
	n := 0
	for n < len(rest) {
		switch rest[n] {
		case ' ', '\t', '\r', '\f', '\v':
			n++
		default:
			return n
		}
	}
	return n
}

func (l *Lexer) readLineComment(rest string) int {
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		return i
	}
	return len(rest)
}

func (l *Lexer) readBlockComment(rest string) int {
	if i := strings.Index(rest[2:], "*/"); i >= 0 {
		return i + 4
	}
	return len(rest)
}

func (l *Lexer) readNumber(rest string) int {
	n := 0
	for n < len(rest) && isDigit(rest[n]) {
		n++
	}
	if n < len(rest) && rest[n] == '.' {
		n++
		for n < len(rest) && isDigit(rest[n]) {
			n++
		}
	}
	if n < len(rest) && (rest[n] == 'e' || rest[n] == 'E') {
		m := n + 1
		if m < len(rest) && (rest[m] == '+' || rest[m] == '-') {
			m++
		}
		if m < len(rest) && isDigit(rest[m]) {
			n = m
			for n < len(rest) && isDigit(rest[n]) {
				n++
			}
		}
	}
	return n
}

func (l *Lexer) readIdentifier(rest string) int {
	n := 0
	for n < len(rest) {
		r, size := utf8.DecodeRuneInString(rest[n:])
		if r != '_' && r != '$' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		n += size
	}
	return n
}

func isIdentStart(rest string) bool {
	r, _ := utf8.DecodeRuneInString(rest)
	return r == '_' || unicode.IsLetter(r)
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
