package list

import (
	"fmt"
	"iter"
	"strings"
	"sync/atomic"

	"github.com/npillmayer/fp/maybe"
)

// node is a single element of a shared chain. Nodes are never modified
// after creation. refs counts the owners of a node: one per list handle
// having it as its head, plus one for a predecessor node linking to it.
type node[T any] struct {
	value T
	next  *node[T]
	refs  atomic.Int32
}

// List is a persistent immutable list. A List value is a lightweight handle
// on a shared chain of nodes; the zero value is an empty list, ready to use.
//
// A plain struct copy of a List is an alias of the original handle, not an
// owner of the chain: it shares the original's reference, and releasing the
// original pulls the chain out from under it. Use Clone for a handle that
// can be released independently.
type List[T any] struct {
	head *node[T]
}

// Immutable creates an empty list for values of type T.
func Immutable[T any]() List[T] {
	return List[T]{}
}

// --- API -------------------------------------------------------------------

// IsEmpty is true if the list holds no values.
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Len returns the number of values in the list. It walks the chain, O(n).
func (l List[T]) Len() int {
	length := 0
	for n := l.head; n != nil; n = n.next {
		length++
	}
	return length
}

// Push returns a new list with value in front, leaving the receiver
// unchanged. The new list shares the receiver's complete chain.
func (l List[T]) Push(value T) List[T] {
	n := &node[T]{value: value, next: l.head}
	n.refs.Store(1)
	if l.head != nil {
		l.head.refs.Add(1)
	}
	tracer().Debugf("pushed %v in front of shared chain", value)
	return List[T]{head: n}
}

// Clone returns a new handle on the same chain, holding an ownership share
// of its own. Unlike a plain struct copy, a clone stays valid when the
// receiver is released.
func (l List[T]) Clone() List[T] {
	if l.head != nil {
		l.head.refs.Add(1)
	}
	return List[T]{head: l.head}
}

// Tail returns a list containing everything but the front value, leaving
// the receiver unchanged. The tail of an empty or single-element list is
// the empty list.
func (l List[T]) Tail() List[T] {
	if l.head == nil || l.head.next == nil {
		return List[T]{}
	}
	l.head.next.refs.Add(1)
	return List[T]{head: l.head.next}
}

// Head returns the value at the front of the list, or Nothing if the list
// is empty.
func (l List[T]) Head() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.value)
}

// --- Iteration -------------------------------------------------------------

// All returns a sequence of the values in the list, front to end. The
// sequence may be ranged over multiple times. There is no mutable variant:
// nodes may be shared between handles and are read-only for good.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Fold reduces a list front to end, threading an accumulator through f.
func Fold[T, S any](l List[T], f func(S, T) S, zero S) S {
	acc := zero
	for n := l.head; n != nil; n = n.next {
		acc = f(acc, n.value)
	}
	return acc
}

// --- Teardown --------------------------------------------------------------

// Release gives up this handle's ownership of the chain. It walks the chain
// with an explicit loop, dropping one reference per node and unlinking
// nodes whose count reaches zero. The walk stops at the first node still
// referenced by another handle; the shared suffix stays untouched. The
// released handle is empty and may be reused.
//
// Only handles produced by Immutable, Push, Tail or Clone own a reference
// and may be released independently; a plain struct copy aliases the handle
// it was copied from and must not be released separately.
func (l *List[T]) Release() {
	n := l.head
	l.head = nil
	released := 0
	for n != nil {
		if n.refs.Add(-1) > 0 {
			tracer().Debugf("released %d nodes, stopping at shared suffix", released)
			return
		}
		next := n.next
		n.next = nil
		n = next
		released++
	}
	tracer().Debugf("released %d nodes, chain was unshared", released)
}

// --- Helpers ---------------------------------------------------------------

func (l List[T]) String() string {
	b := strings.Builder{}
	b.WriteString("List[")
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteByte(',')
		}
		b.WriteString(fmt.Sprintf("%v", n.value))
	}
	b.WriteByte(']')
	return b.String()
}
