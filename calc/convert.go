package calc

import (
	"strings"
	"unicode"

	"rpncalc/stack"
)

// ToPostfix reorders an encoded infix expression into postfix order with the
// shunting-yard algorithm. It never fails: unknown characters are skipped,
// an unmatched close paren drains the operator stack and an unmatched open
// paren is dropped at the end. Number literals are not parsed here.
func ToPostfix(expression string) []Token {
	output := make([]Token, 0, len(expression))
	var ops stack.Stack[rune]
	var digits strings.Builder

	flush := func() {
		if digits.Len() > 0 {
			output = append(output, num(digits.String()))
			digits.Reset()
		}
	}

	for _, c := range expression {
		switch {
		case unicode.IsSpace(c):
			continue
		case isDigit(c):
			digits.WriteRune(c)
		case isOperator(c):
			flush()
			for {
				top, ok := ops.Top()
				if !ok || top == SymOpenParen || Precedence(top) < Precedence(c) {
					break
				}
				ops.Pop()
				output = append(output, op(top))
			}
			ops.Push(c)
		case c == SymOpenParen:
			ops.Push(c)
		case c == SymCloseParen:
			flush()
			for {
				top, ok := ops.Top()
				if !ok || top == SymOpenParen {
					break
				}
				ops.Pop()
				output = append(output, op(top))
			}
			ops.Pop()
		}
	}

	flush()
	for {
		top, ok := ops.Pop()
		if !ok {
			break
		}
		if top != SymOpenParen {
			output = append(output, op(top))
		}
	}

	return output
}
