// Package calc evaluates integer arithmetic written in a one-character
// token alphabet: digits, a (+), b (-), c (*), d (/), e and f for
// parentheses. All four operators share one precedence tier, so an
// ungrouped chain is evaluated strictly left to right: "3a2c4" is 20.
//
// Evaluation is two passes. ToPostfix converts the infix string into
// postfix tokens with an operator stack, and EvalPostfix reduces them on a
// value stack. Nothing is shared between calls, so every function here is
// safe for concurrent use.
//
// Malformed input is only partly diagnosed. Stack underflow, division by
// zero, overflow of int32 and unparseable literals are errors. Unbalanced
// parentheses and characters outside the alphabet are tolerated silently.
package calc

// Calculate evaluates an encoded infix expression.
func Calculate(expression string) (int32, error) {
	return EvalPostfix(ToPostfix(expression))
}

// MustCalculate is like Calculate but panics on error.
func MustCalculate(expression string) int32 {
	v, err := Calculate(expression)
	if err != nil {
		panic("calc: " + expression + ": " + err.Error())
	}
	return v
}
