package stack

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/fp/maybe"
)

// node is a single element of the chain. Every node owns its successor;
// the head node is owned by the stack itself.
type node[T any] struct {
	value T
	next  *node[T]
}

// Stack is a LIFO container backed by a singly linked chain of nodes.
// The zero value is an empty stack, ready to use.
type Stack[T any] struct {
	head *node[T]
	size int
}

// New creates an empty stack for values of type T.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// --- API -------------------------------------------------------------------

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int {
	return s.size
}

// IsEmpty is true if the stack holds no values.
func (s *Stack[T]) IsEmpty() bool {
	return s.head == nil
}

// Push puts value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.head = &node[T]{value: value, next: s.head}
	s.size++
	tracer().Debugf("pushed %v, stack depth now %d", value, s.size)
}

// Pop removes the top of the stack and returns its value, or Nothing if the
// stack is empty. Popping an empty stack is not an error.
func (s *Stack[T]) Pop() maybe.Maybe[T] {
	if s.head == nil {
		return maybe.Nothing[T]()
	}
	n := s.head
	s.head = n.next
	n.next = nil
	s.size--
	return maybe.Just(n.value)
}

// Peek returns the value on top of the stack without removing it, or Nothing
// if the stack is empty.
func (s *Stack[T]) Peek() maybe.Maybe[T] {
	if s.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(s.head.value)
}

// Top returns a pointer to the value on top of the stack, allowing callers to
// modify it in place. It returns nil if the stack is empty. The pointer stays
// valid until the top of the stack is popped.
func (s *Stack[T]) Top() *T {
	if s.head == nil {
		return nil
	}
	return &s.head.value
}

// --- Iteration -------------------------------------------------------------

// All returns a sequence of the values on the stack, top to bottom, without
// modifying the stack. The sequence may be ranged over multiple times; each
// call walks the chain anew from the current head.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Mutable returns a sequence of pointers to the values on the stack, top to
// bottom, for modification in place. Only one pointer is handed out per
// iteration step; callers must not retain a pointer after advancing.
func (s *Stack[T]) Mutable() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(&n.value) {
				return
			}
		}
	}
}

// Drain returns a sequence which pops the stack empty, yielding values top to
// bottom. Values already yielded are gone from the stack even if the caller
// stops ranging early.
func (s *Stack[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for s.head != nil {
			n := s.head
			s.head = n.next
			n.next = nil
			s.size--
			if !yield(n.value) {
				return
			}
		}
	}
}

// --- Teardown --------------------------------------------------------------

// Drop discards all values, unlinking every node of the chain with an
// explicit loop. Severing the links means a stray reference to a single node
// cannot keep the whole chain alive. The dropped stack is empty and may be
// reused.
func (s *Stack[T]) Drop() {
	n := s.head
	s.head = nil
	s.size = 0
	for n != nil {
		next := n.next
		n.next = nil
		n = next
	}
}

// --- Helpers ---------------------------------------------------------------

func (s *Stack[T]) String() string {
	b := strings.Builder{}
	b.WriteString("Stack[")
	for n := s.head; n != nil; n = n.next {
		if n != s.head {
			b.WriteByte(',')
		}
		b.WriteString(fmt.Sprintf("%v", n.value))
	}
	b.WriteByte(']')
	return b.String()
}
