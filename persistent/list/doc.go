/*
Package list implements an immutable persistent singly linked list.

A List is either Nil or a cell holding a head value and a tail, where the tail is a
complete list in its own right. Every “modification” returns a new list which shares
as much structure as possible with the original:

	l1 := list.Of(2, 3)
	l2 := l1.Cons(1)   // List(1, 2, 3), l2's tail *is* l1

Almost all operations are derived from the two folds FoldLeft and FoldRight. Both are
implemented without recursion, therefore lists of arbitrary length may be folded without
exhausting the stack. FoldRight pays for this with an additional reversal pass.

Operations which are undefined for an empty list (Head, Tail, Init, SetHead, Drop, DropWhile)
return an error wrapping ErrEmptyList.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.list'.
func tracer() tracing.Trace {
	return tracing.Select("fp.list")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("list: "+msg, msgargs...)
		panic(msg)
	}
}
