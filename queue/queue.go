package queue

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/fp/maybe"
)

// node is a single element of the chain. Every node owns its successor;
// the head node is owned by the queue itself.
type node[T any] struct {
	value T
	next  *node[T]
}

// Queue is a FIFO container backed by a singly linked chain of nodes.
// head owns the chain; tail is a non-owning marker to the last node, used
// only for splicing in new nodes. The zero value is an empty queue, ready
// to use.
type Queue[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New creates an empty queue for values of type T.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// --- API -------------------------------------------------------------------

// Len returns the number of values in the queue.
func (q *Queue[T]) Len() int {
	return q.size
}

// IsEmpty is true if the queue holds no values.
func (q *Queue[T]) IsEmpty() bool {
	return q.head == nil
}

// Push appends value at the end of the queue.
func (q *Queue[T]) Push(value T) {
	n := &node[T]{value: value}
	if q.tail == nil {
		assertThat(q.head == nil, "tail marker absent for a non-empty chain")
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.size++
	tracer().Debugf("pushed %v, queue length now %d", value, q.size)
}

// Pop removes the front of the queue and returns its value, or Nothing if
// the queue is empty. Popping an empty queue is not an error.
//
// When the last node is removed the tail marker is invalidated as well;
// it must never outlive the chain it points into.
func (q *Queue[T]) Pop() maybe.Maybe[T] {
	if q.head == nil {
		return maybe.Nothing[T]()
	}
	n := q.head
	q.head = n.next
	n.next = nil
	if q.head == nil {
		q.tail = nil
	}
	q.size--
	return maybe.Just(n.value)
}

// Peek returns the value at the front of the queue without removing it, or
// Nothing if the queue is empty.
func (q *Queue[T]) Peek() maybe.Maybe[T] {
	if q.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(q.head.value)
}

// Front returns a pointer to the value at the front of the queue, allowing
// callers to modify it in place. It returns nil if the queue is empty. The
// pointer stays valid until the front of the queue is popped.
func (q *Queue[T]) Front() *T {
	if q.head == nil {
		return nil
	}
	return &q.head.value
}

// --- Iteration -------------------------------------------------------------

// All returns a sequence of the values in the queue, in insertion order,
// without modifying the queue. The sequence may be ranged over multiple
// times; each call walks the chain anew from the current head.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := q.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Mutable returns a sequence of pointers to the values in the queue, in
// insertion order, for modification in place. Only one pointer is handed out
// per iteration step; callers must not retain a pointer after advancing.
func (q *Queue[T]) Mutable() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := q.head; n != nil; n = n.next {
			if !yield(&n.value) {
				return
			}
		}
	}
}

// Drain returns a sequence which pops the queue empty, yielding values in
// insertion order. Values already yielded are gone from the queue even if
// the caller stops ranging early.
func (q *Queue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for q.head != nil {
			n := q.head
			q.head = n.next
			n.next = nil
			if q.head == nil {
				q.tail = nil
			}
			q.size--
			if !yield(n.value) {
				return
			}
		}
	}
}

// --- Teardown --------------------------------------------------------------

// Drop discards all values, unlinking every node of the chain with an
// explicit loop. The dropped queue is empty and may be reused.
func (q *Queue[T]) Drop() {
	n := q.head
	q.head = nil
	q.tail = nil
	q.size = 0
	for n != nil {
		next := n.next
		n.next = nil
		n = next
	}
}

// --- Helpers ---------------------------------------------------------------

func (q *Queue[T]) String() string {
	b := strings.Builder{}
	b.WriteString("Queue[")
	for n := q.head; n != nil; n = n.next {
		if n != q.head {
			b.WriteByte(',')
		}
		b.WriteString(fmt.Sprintf("%v", n.value))
	}
	b.WriteByte(']')
	return b.String()
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("queue: "+msg, msgargs...)
		panic(msg)
	}
}
