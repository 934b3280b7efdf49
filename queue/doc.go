/*
Package queue implements a FIFO queue backed by a singly linked chain of
nodes. The queue owns the chain through its head link and additionally keeps
a non-owning marker to the last node, making both append and removal O(1).

Like the stack, the queue hands out its elements in three flavours: by value
without touching the queue (All), by pointer for modification in place
(Mutable), and by value while consuming the queue (Drain). All three walk
the chain in insertion order.

A queue must not be mutated from more than one goroutine at a time.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package queue

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chain.queue'.
func tracer() tracing.Trace {
	return tracing.Select("chain.queue")
}
