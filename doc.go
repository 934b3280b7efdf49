/*
Package chain provides containers built from singly linked chains of nodes:
a LIFO stack, a FIFO queue, and a persistent immutable list with structural
sharing.

Each container lives in its own sub-package and is self-contained:

	stack            last in, first out; push/pop/peek at the head
	queue            first in, first out; O(1) append via a tail marker
	persistent/list  immutable list; push and tail return new handles,
	                 unmodified suffixes are shared between handles

All three offer lazy forward iteration. Stack and queue additionally allow
draining (consuming) iteration and in-place mutation of elements; the
persistent list is read-only by design, since its nodes may be shared.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chain
