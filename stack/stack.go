package stack

// Stack is a LIFO backed by a slice. The zero value is an empty stack.
type Stack[T any] []T

// IsEmpty: check if stack is empty
func (s *Stack[T]) IsEmpty() bool {
	return len(*s) == 0
}

func (s *Stack[T]) Len() int {
	return len(*s)
}

func (s *Stack[T]) Push(v T) {
	*s = append(*s, v)
}

// Pop removes and returns the top element. ok is false on an empty stack,
// which is left untouched.
func (s *Stack[T]) Pop() (v T, ok bool) {
	if s.IsEmpty() {
		return v, false
	}

	index := len(*s) - 1
	v = (*s)[index]
	*s = (*s)[:index]
	return v, true
}

func (s *Stack[T]) Top() (v T, ok bool) {
	if s.IsEmpty() {
		return v, false
	}
	return (*s)[len(*s)-1], true
}
