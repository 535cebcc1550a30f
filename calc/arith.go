package calc

import (
	"golang.org/x/exp/constraints"
)

func checkedAdd[T constraints.Signed](a, b T) (T, error) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, ErrOverflow
	}
	return c, nil
}

func checkedSub[T constraints.Signed](a, b T) (T, error) {
	c := a - b
	if (c < a) != (b > 0) {
		return 0, ErrOverflow
	}
	return c, nil
}

func checkedMul[T constraints.Signed](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	// MinInt * -1 wraps to MinInt, which the division check cannot see.
	if c/b != a || (a == -1 && c == b) || (b == -1 && c == a) {
		return 0, ErrOverflow
	}
	return c, nil
}

// checkedDiv truncates toward zero.
func checkedDiv[T constraints.Signed](a, b T) (T, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	// Only MinInt equals its own negation besides zero.
	if b == -1 && a != 0 && a == -a {
		return 0, ErrOverflow
	}
	return a / b, nil
}
