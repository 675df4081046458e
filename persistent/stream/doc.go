/*
Package stream implements lazy, memoized streams.

A Stream is like a list.List, except that head and tail of a non-empty stream are
computed on demand. Each of them is computed at most once and cached in the stream
cell. This makes it possible to work with infinite streams, as long as only a finite
part is ever looked at:

	evens := stream.From(0).Filter(func(n int) bool { return n%2 == 0 })
	l := evens.Take(3).ToList()   // List(0, 2, 4)

Most operations are derived from two general ones, FoldRight and Unfold. FoldRight
hands the folded rest of the stream to its combining function as a suspended
computation, which the function is free to ignore. Unfold generates a stream
from a seed and a step function.

Operations which need to see every element (ToList, or ForAll and Exists without a
decisive element) will not terminate for infinite streams.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stream

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.stream'.
func tracer() tracing.Trace {
	return tracing.Select("fp.stream")
}
