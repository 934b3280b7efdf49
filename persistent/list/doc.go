/*
Package list implements a persistent immutable list backed by a singly
linked chain of reference-counted nodes.

Push and Tail do not modify the receiving list; they return new list handles
which share the unmodified rest of the chain with the receiver. Because
nodes may be shared between handles, the list exposes no mutating accessors
and no mutable iteration.

Nodes carry an atomic reference count, so handles may be created, copied and
released from multiple goroutines, as long as the element type itself is
safe to share.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chain.list'.
func tracer() tracing.Trace {
	return tracing.Select("chain.list")
}
