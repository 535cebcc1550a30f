package calc

import (
	"strings"
)

// Symbols of the encoded expression alphabet. Digits are literal.
const (
	SymAdd        = 'a'
	SymSubtract   = 'b'
	SymMultiply   = 'c'
	SymDivide     = 'd'
	SymOpenParen  = 'e'
	SymCloseParen = 'f'
)

type Kind int

const (
	Number     Kind = iota // Digit run, kept as text
	Operator               // One of a, b, c, d
	OpenParen              // e
	CloseParen             // f
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "Number"
	case Operator:
		return "Operator"
	case OpenParen:
		return "OpenParen"
	case CloseParen:
		return "CloseParen"
	}
	return "Kind(?)"
}

// Token is one unit of a postfix sequence. Lit holds the digits of a Number
// and the encoded symbol of everything else.
type Token struct {
	Kind Kind
	Lit  string
}

func num(digits string) Token { return Token{Kind: Number, Lit: digits} }

func op(sym rune) Token { return Token{Kind: Operator, Lit: string(sym)} }

// String renders the token in conventional notation.
func (t Token) String() string {
	switch t.Kind {
	case Number:
		return t.Lit
	case OpenParen:
		return "("
	case CloseParen:
		return ")"
	}
	if o, ok := operators[symbolOf(t)]; ok {
		return o.name
	}
	return t.Lit
}

// Format joins tokens with single spaces, e.g. "3 2 + 4 *".
func Format(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

type operator struct {
	name       string
	precedence int
	apply      func(left, right int32) (int32, error)
}

// operators maps each operator symbol to its tier and arithmetic. All four
// share tier 1, so equal-tier operators are emitted left to right.
var operators = map[rune]operator{
	SymAdd:      {name: "+", precedence: 1, apply: checkedAdd[int32]},
	SymSubtract: {name: "-", precedence: 1, apply: checkedSub[int32]},
	SymMultiply: {name: "*", precedence: 1, apply: checkedMul[int32]},
	SymDivide:   {name: "/", precedence: 1, apply: checkedDiv[int32]},
}

func isOperator(c rune) bool {
	_, ok := operators[c]
	return ok
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// Precedence returns the tier of an operator symbol, 0 for anything else.
func Precedence(c rune) int {
	return operators[c].precedence
}

func symbolOf(t Token) rune {
	if len(t.Lit) != 1 {
		return 0
	}
	return rune(t.Lit[0])
}

var encoder = strings.NewReplacer(
	"+", string(SymAdd),
	"-", string(SymSubtract),
	"*", string(SymMultiply),
	"/", string(SymDivide),
	"(", string(SymOpenParen),
	")", string(SymCloseParen),
)

// Encode rewrites conventional notation ("3 + (4 * 66)") into the encoded
// alphabet ("3 a e4 c 66f"). Other characters pass through unchanged.
func Encode(conventional string) string {
	return encoder.Replace(conventional)
}
