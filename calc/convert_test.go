package calc

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/require"
)

func TestToPostfix(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"3a2c4", "3 2 + 4 *"},
		{"500a10b66c32", "500 10 + 66 - 32 *"},
		{"3ae4c66fb32", "3 4 66 * + 32 -"},
		{"3c4d2aee2a4c41fc4f", "3 4 * 2 / 2 4 + 41 * 4 * +"},
		{"e3a4", "3 4 +"},
		{"3a4fc2", "3 4 + 2 *"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got := ToPostfix(tt.expr)
			require.Equal(t, tt.want, Format(got), repr.String(got))
		})
	}
}

func TestToPostfixTokens(t *testing.T) {
	got := ToPostfix("12 a e3 d 4f")
	require.Equal(t, []Token{
		{Kind: Number, Lit: "12"},
		{Kind: Number, Lit: "3"},
		{Kind: Number, Lit: "4"},
		{Kind: Operator, Lit: "d"},
		{Kind: Operator, Lit: "a"},
	}, got)
}

func TestToPostfixNeverEmitsParens(t *testing.T) {
	for _, expr := range []string{"eee1f", "1fff", "e1ae2cf3f", "fe"} {
		for _, tok := range ToPostfix(expr) {
			require.NotEqual(t, OpenParen, tok.Kind, expr)
			require.NotEqual(t, CloseParen, tok.Kind, expr)
		}
	}
}

// An ungrouped chain of N operators yields N operator tokens in input order,
// and evaluates as a left fold.
func TestToPostfixChainKeepsOrder(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	syms := []rune{SymAdd, SymSubtract, SymMultiply, SymDivide}

	for n := 1; n <= 8; n++ {
		var b strings.Builder
		var ops []string
		acc := int32(rnd.Intn(10))
		b.WriteString(strconv.Itoa(int(acc)))
		for i := 0; i < n; i++ {
			s := syms[rnd.Intn(len(syms))]
			operand := int32(rnd.Intn(9) + 1)
			b.WriteRune(s)
			b.WriteString(strconv.Itoa(int(operand)))
			ops = append(ops, string(s))

			var err error
			acc, err = operators[s].apply(acc, operand)
			require.NoError(t, err)
		}
		expr := b.String()

		var got []string
		for _, tok := range ToPostfix(expr) {
			if tok.Kind == Operator {
				got = append(got, tok.Lit)
			}
		}
		require.Equal(t, ops, got, expr)

		v, err := Calculate(expr)
		require.NoError(t, err)
		require.Equal(t, acc, v, expr)
	}
}

func TestPrecedence(t *testing.T) {
	for _, c := range []rune{SymAdd, SymSubtract, SymMultiply, SymDivide} {
		require.Equal(t, 1, Precedence(c), string(c))
	}
	for _, c := range []rune{SymOpenParen, SymCloseParen, '7', ' ', 'z'} {
		require.Equal(t, 0, Precedence(c), string(c))
	}
}
