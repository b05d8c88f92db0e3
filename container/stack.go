package container

import (
	"fmt"
	"strings"
)

// Stack is a LIFO container backed by a slice.
type Stack[T any] struct {
	data []T
}

// NewStack returns an empty stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.data = append(s.data, item)
}

// Pop removes and returns the most recently pushed item.
// Returns ErrEmptyContainer if the stack is empty.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	n := len(s.data)
	if n == 0 {
		return zero, emptyError("Stack.Pop")
	}
	item := s.data[n-1]
	s.data[n-1] = zero // release reference
	s.data = s.data[:n-1]

	return item, nil
}

// Top returns the most recently pushed item without removing it.
// Returns ErrEmptyContainer if the stack is empty.
func (s *Stack[T]) Top() (T, error) {
	if len(s.data) == 0 {
		var zero T
		return zero, emptyError("Stack.Top")
	}

	return s.data[len(s.data)-1], nil
}

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool { return len(s.data) == 0 }

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int { return len(s.data) }

// String lists the items from top to bottom between ---top--- and ---bot--- markers.
func (s *Stack[T]) String() string {
	var b strings.Builder
	b.WriteString("---top---\n")
	for i := len(s.data) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "%v\n", s.data[i])
	}
	b.WriteString("---bot---")

	return b.String()
}
