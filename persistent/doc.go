/*
Persistent data structures never change in place: a modifying operation yields a new
incarnation and the old one stays valid, which makes them a natural fit for functional
programming style in Go.

They achieve this efficiently through structural sharing: every modifying operation
returns a new handle, and handles share the parts of the structure that the modification did
not touch. For a singly linked list this is particularly cheap: pushing a value in front of
a list of any length shares the complete old chain, and taking the tail of a list shares
everything but the front node. Sharing is only safe because shared nodes are never mutated
after creation; in return, handles may be copied and read concurrently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
