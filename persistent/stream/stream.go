package stream

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fpcore/option"
	"github.com/npillmayer/fpcore/persistent/list"
)

// Stream is a lazily evaluated, possibly infinite sequence. The zero value is the
// empty stream, i.e. this is legal:
//
//     var s stream.Stream[int]
//     s.IsEmpty()   // true
//
// Streams are immutable values; “advancing” a stream means obtaining its (cached) tail.
type Stream[A any] struct {
	cell *cell[A]
}

// cell is a non-empty stream node with suspended head and tail.
type cell[A any] struct {
	head *memo[A]
	tail *memo[Stream[A]]
}

// Empty returns the empty stream. All empty streams of a type are equal.
func Empty[A any]() Stream[A] {
	return Stream[A]{}
}

// Cons creates a non-empty stream from a suspended head and a suspended tail.
// Neither h nor t are called by Cons; each is called at most once, when head or
// tail of the stream are needed for the first time.
func Cons[A any](h func() A, t func() Stream[A]) Stream[A] {
	return Stream[A]{cell: &cell[A]{head: suspend(h), tail: suspend(t)}}
}

// consValue is Cons for a head which is already known.
func consValue[A any](a A, t func() Stream[A]) Stream[A] {
	return Stream[A]{cell: &cell[A]{head: evaluated(a), tail: suspend(t)}}
}

// Of creates a finite stream from a variable number of arguments.
func Of[A any](vals ...A) Stream[A] {
	s := make([]A, len(vals))
	copy(s, vals)
	return ofSlice(s)
}

func ofSlice[A any](s []A) Stream[A] {
	if len(s) == 0 {
		return Empty[A]()
	}
	return Cons(func() A {
		return s[0]
	}, func() Stream[A] {
		return ofSlice(s[1:])
	})
}

// --- Accessors -------------------------------------------------------------

// IsEmpty returns true for the empty stream. It does not force any computation.
func (s Stream[A]) IsEmpty() bool {
	return s.cell == nil
}

// HeadOption returns the first element of s, if any.
func (s Stream[A]) HeadOption() option.Option[A] {
	if s.IsEmpty() {
		return option.None[A]()
	}
	return option.Some(s.cell.head.force())
}

// Tail returns the stream following the head of s. The tail of the empty stream is
// the empty stream.
func (s Stream[A]) Tail() Stream[A] {
	if s.IsEmpty() {
		return s
	}
	return s.cell.tail.force()
}

// uncons splits a non-empty stream into its forced head and its (still suspended) tail.
func (s Stream[A]) uncons() (A, func() Stream[A], bool) {
	if s.IsEmpty() {
		var zero A
		return zero, Empty[A], false
	}
	return s.cell.head.force(), s.cell.tail.force, true
}

// --- Folding ---------------------------------------------------------------

// FoldRight combines the elements of s from the right. f receives an element and the
// folded rest of the stream as a suspended computation. If f does not call it, the
// rest of the stream is never evaluated. z is called only if the end of the stream
// is reached.
func FoldRight[A, B any](s Stream[A], z func() B, f func(A, func() B) B) B {
	if s.IsEmpty() {
		return z()
	}
	return f(s.cell.head.force(), func() B {
		return FoldRight(s.cell.tail.force(), z, f)
	})
}

// Exists returns true if some element satisfies p. It stops at the first match.
func (s Stream[A]) Exists(p func(A) bool) bool {
	return FoldRight(s, func() bool {
		return false
	}, func(a A, b func() bool) bool {
		return p(a) || b()
	})
}

// ForAll returns true if all elements satisfy p. It stops at the first element not
// satisfying p.
//
// ForAll is false for the empty stream.
func (s Stream[A]) ForAll(p func(A) bool) bool {
	if s.IsEmpty() {
		return false
	}
	return FoldRight(s, func() bool {
		return true
	}, func(a A, b func() bool) bool {
		return p(a) && b()
	})
}

// Filter returns the elements of s satisfying p. Elements are examined on demand.
func (s Stream[A]) Filter(p func(A) bool) Stream[A] {
	return FoldRight(s, Empty[A], func(a A, rest func() Stream[A]) Stream[A] {
		if p(a) {
			return consValue(a, rest)
		}
		return rest()
	})
}

// Append returns the elements of s followed by the elements of the stream computed
// by that. that is called only when the end of s is reached.
func (s Stream[A]) Append(that func() Stream[A]) Stream[A] {
	return FoldRight(s, that, func(a A, rest func() Stream[A]) Stream[A] {
		return consValue(a, rest)
	})
}

// FlatMap applies f to every element and concatenates the resulting streams.
func FlatMap[A, B any](s Stream[A], f func(A) Stream[B]) Stream[B] {
	return FoldRight(s, Empty[B], func(a A, rest func() Stream[B]) Stream[B] {
		return f(a).Append(rest)
	})
}

// Find returns the first element satisfying p.
func (s Stream[A]) Find(p func(A) bool) option.Option[A] {
	return s.Filter(p).HeadOption()
}

// Drop skips the first n elements of s. Dropping from a stream with fewer than
// n elements results in the empty stream.
func (s Stream[A]) Drop(n int) Stream[A] {
	for ; n > 0 && !s.IsEmpty(); n-- {
		s = s.cell.tail.force()
	}
	return s
}

// DropWhile skips the longest prefix of s whose elements satisfy p.
func (s Stream[A]) DropWhile(p func(A) bool) Stream[A] {
	for !s.IsEmpty() && p(s.cell.head.force()) {
		s = s.cell.tail.force()
	}
	return s
}

// ToList forces all elements of s into a list. It does not return for infinite streams.
func (s Stream[A]) ToList() list.List[A] {
	tracer().Debugf("materializing stream")
	var l list.List[A]
	for ; !s.IsEmpty(); s = s.cell.tail.force() {
		l = l.Cons(s.cell.head.force())
	}
	return list.Reverse(l)
}

// previewLength limits the number of elements printed by String.
const previewLength = 10

// String prints the part of s which has already been evaluated, without forcing
// anything: “Stream(1, 2, …)”. Unevaluated heads are printed as ‘?’. At most
// previewLength elements are printed, as evaluated streams may be cyclic.
func (s Stream[A]) String() string {
	var b strings.Builder
	b.WriteString("Stream(")
	for c, n := s.cell, 0; c != nil; n++ {
		if n > 0 {
			b.WriteString(", ")
		}
		if n == previewLength {
			b.WriteString("…")
			break
		}
		if c.head.isEvaluated() {
			fmt.Fprintf(&b, "%v", c.head.force())
		} else {
			b.WriteByte('?')
		}
		if !c.tail.isEvaluated() {
			b.WriteString(", …")
			break
		}
		c = c.tail.force().cell
	}
	b.WriteByte(')')
	return b.String()
}
