package calc

import (
	"errors"
	"fmt"
	"strconv"

	"rpncalc/stack"
)

var (
	ErrStackUnderflow = errors.New("operator needs two operands")
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("integer overflow")
	ErrBadLiteral     = errors.New("bad number literal")
	ErrEmpty          = errors.New("empty expression")
)

// EvalPostfix runs a postfix token sequence on a value stack and returns the
// value left on top. Operands are popped right first, then left.
func EvalPostfix(tokens []Token) (int32, error) {
	values := make(stack.Stack[int32], 0, len(tokens))

	for pos, tok := range tokens {
		switch tok.Kind {
		case Number:
			v, err := strconv.ParseInt(tok.Lit, 10, 32)
			if err != nil {
				if errors.Is(err, strconv.ErrRange) {
					return 0, fmt.Errorf("token %d %q: %w", pos, tok.Lit, ErrOverflow)
				}
				return 0, fmt.Errorf("token %d %q: %w", pos, tok.Lit, ErrBadLiteral)
			}
			values.Push(int32(v))
		case Operator:
			o, ok := operators[symbolOf(tok)]
			if !ok {
				return 0, fmt.Errorf("token %d: unknown operator %q", pos, tok.Lit)
			}
			right, ok := values.Pop()
			if !ok {
				return 0, fmt.Errorf("token %d %s: %w", pos, tok, ErrStackUnderflow)
			}
			left, ok := values.Pop()
			if !ok {
				return 0, fmt.Errorf("token %d %s: %w", pos, tok, ErrStackUnderflow)
			}
			v, err := o.apply(left, right)
			if err != nil {
				return 0, fmt.Errorf("token %d: %d %s %d: %w", pos, left, o.name, right, err)
			}
			values.Push(v)
		default:
			return 0, fmt.Errorf("token %d %s: %w", pos, tok, ErrBadLiteral)
		}
	}

	result, ok := values.Pop()
	if !ok {
		return 0, ErrEmpty
	}
	return result, nil
}
