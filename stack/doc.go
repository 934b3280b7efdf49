/*
Package stack implements a LIFO stack backed by a singly linked chain of
nodes. Push, pop and peek all operate at the head of the chain in O(1).

The stack hands out its elements in three flavours: by value without
touching the stack (All), by pointer for modification in place (Mutable),
and by value while consuming the stack (Drain).

A stack must not be mutated from more than one goroutine at a time.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stack

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chain.stack'.
func tracer() tracing.Trace {
	return tracing.Select("chain.stack")
}
