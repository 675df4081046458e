/*
Package tree implements an immutable persistent binary tree.

A Tree is either a Leaf holding a value, or a Branch holding exactly two subtrees.
Branches carry no values. Trees are never modified after construction; derived
trees share unchanged subtrees with their originals.

All algorithms on trees are instances of a single fold:

	size  := tree.Fold(t, func(A) int { return 1 }, func(l, r int) int { return l + r + 1 })

Size, Maximum, Depth and Map are provided as examples of this pattern.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.tree'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.tree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.tree: "+msg, msgargs...)
		panic(msg)
	}
}
