/*
Package persistent is the home of immutable persistent data structures.

Persistent data structures are never changed in place. Every operation which would
modify a structure returns a new version of it, leaving the original intact. New
versions share as much structure as possible with their predecessors, which makes
“copies” cheap in space and time.

Sub-packages:

	list     singly linked list with fold-derived operations
	tree     binary tree with values at its leaves
	stream   lazy, memoized and possibly infinite sequence

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
