package stream

import (
	fp "github.com/npillmayer/fpcore"
	"github.com/npillmayer/fpcore/option"
)

// Unfold generates a stream from a seed z. f produces the next element together with
// the next seed, or None to end the stream.
//
// The first step is taken immediately, as emptiness of a stream has to be known
// without forcing anything. Every further step is taken when the tail of the
// preceding cell is forced for the first time.
func Unfold[A, S any](z S, f func(S) option.Option[fp.Pair[A, S]]) Stream[A] {
	var next fp.Pair[A, S]
	switch m := f(z).Match(); m {
	case m.Some(&next):
		return consValue(next.Left, func() Stream[A] {
			return Unfold(next.Right, f)
		})
	}
	return Empty[A]()
}

// step is the state type of unfolds walking along existing streams. The tail of a
// stream is kept suspended until the element following it is requested.
type step[A any] func() Stream[A]

func start[A any](s Stream[A]) step[A] {
	return func() Stream[A] { return s }
}

// Map applies f to every element of s, on demand.
func Map[A, B any](s Stream[A], f func(A) B) Stream[B] {
	return Unfold(start(s), func(st step[A]) option.Option[fp.Pair[B, step[A]]] {
		if h, t, ok := st().uncons(); ok {
			return option.Some(fp.P(f(h), step[A](t)))
		}
		return option.None[fp.Pair[B, step[A]]]()
	})
}

// Take returns a stream of at most the first n elements of s.
func (s Stream[A]) Take(n int) Stream[A] {
	type state = fp.Pair[int, step[A]]
	return Unfold(fp.P(n, start(s)), func(st state) option.Option[fp.Pair[A, state]] {
		if st.Left <= 0 {
			return option.None[fp.Pair[A, state]]()
		}
		if h, t, ok := st.Right().uncons(); ok {
			return option.Some(fp.P(h, fp.P(st.Left-1, step[A](t))))
		}
		return option.None[fp.Pair[A, state]]()
	})
}

// TakeWhile returns the longest prefix of s whose elements satisfy p.
func (s Stream[A]) TakeWhile(p func(A) bool) Stream[A] {
	return Unfold(start(s), func(st step[A]) option.Option[fp.Pair[A, step[A]]] {
		if h, t, ok := st().uncons(); ok && p(h) {
			return option.Some(fp.P(h, step[A](t)))
		}
		return option.None[fp.Pair[A, step[A]]]()
	})
}

// ZipWith combines the elements of a and b pairwise. The result is as long as the
// shorter of the two.
func ZipWith[A, B, C any](a Stream[A], b Stream[B], f func(A, B) C) Stream[C] {
	type state = fp.Pair[step[A], step[B]]
	return Unfold(fp.P(start(a), start(b)), func(st state) option.Option[fp.Pair[C, state]] {
		ha, ta, ok := st.Left().uncons()
		if !ok {
			return option.None[fp.Pair[C, state]]()
		}
		hb, tb, ok := st.Right().uncons()
		if !ok {
			return option.None[fp.Pair[C, state]]()
		}
		return option.Some(fp.P(f(ha, hb), fp.P(step[A](ta), step[B](tb))))
	})
}

// ZipAll pairs the elements of a and b for as long as either one has elements left.
// The exhausted side is padded with None.
func ZipAll[A, B any](a Stream[A], b Stream[B]) Stream[fp.Pair[option.Option[A], option.Option[B]]] {
	type elem = fp.Pair[option.Option[A], option.Option[B]]
	type state = fp.Pair[step[A], step[B]]
	return Unfold(fp.P(start(a), start(b)), func(st state) option.Option[fp.Pair[elem, state]] {
		ha, ta, okA := st.Left().uncons()
		hb, tb, okB := st.Right().uncons()
		if !okA && !okB {
			return option.None[fp.Pair[elem, state]]()
		}
		e := fp.P(option.None[A](), option.None[B]())
		if okA {
			e.Left = option.Some(ha)
		}
		if okB {
			e.Right = option.Some(hb)
		}
		return option.Some(fp.P(e, fp.P(step[A](ta), step[B](tb))))
	})
}

// Tails returns the stream of all suffixes of s, starting with s itself and
// ending with the empty stream.
func Tails[A any](s Stream[A]) Stream[Stream[A]] {
	type state = option.Option[step[A]]
	return Unfold(option.Some(start(s)), func(st state) option.Option[fp.Pair[Stream[A], state]] {
		var next step[A]
		switch m := st.Match(); m {
		case m.Some(&next):
			suffix := next()
			if suffix.IsEmpty() {
				return option.Some(fp.P(suffix, option.None[step[A]]()))
			}
			return option.Some(fp.P(suffix, option.Some(step[A](suffix.cell.tail.force))))
		}
		return option.None[fp.Pair[Stream[A], state]]()
	})
}

// StartsWith returns true if the elements of prefix are a leading run of s.
// Only as many elements of s are forced as prefix has. Every stream starts with
// the empty stream.
func StartsWith[A comparable](s, prefix Stream[A]) bool {
	for !prefix.IsEmpty() {
		if s.IsEmpty() || s.cell.head.force() != prefix.cell.head.force() {
			return false
		}
		prefix = prefix.cell.tail.force()
		if prefix.IsEmpty() {
			break
		}
		s = s.cell.tail.force()
	}
	return true
}

// HasSubsequence returns true if sub appears contiguously somewhere in s.
func HasSubsequence[A comparable](s, sub Stream[A]) bool {
	if sub.IsEmpty() {
		return true
	}
	return Tails(s).Exists(func(suffix Stream[A]) bool {
		return StartsWith(suffix, sub)
	})
}

// ScanRight is like FoldRight, but returns the stream of all intermediate results,
// i.e. the folds of all suffixes of s. The folded rest of the stream is computed once
// and shared between the current result and the remaining intermediate results.
//
//     ScanRight(Of(1, 2, 3), 0, func(a int, b func() int) int { return a + b() })
//     // => Stream(6, 5, 3, 0)
//
// The first intermediate result depends on all elements of s, therefore s must be finite.
func ScanRight[A, B any](s Stream[A], z B, f func(A, func() B) B) Stream[B] {
	type acc = fp.Pair[*memo[B], Stream[B]]
	r := FoldRight(s, func() acc {
		return fp.P(evaluated(z), Of(z))
	}, func(a A, rest func() acc) acc {
		restAcc := suspend(rest)
		b := suspend(func() B {
			return f(a, func() B { return restAcc.force().Left.force() })
		})
		return fp.P(b, Cons(b.force, func() Stream[B] {
			return restAcc.force().Right
		}))
	})
	return r.Right
}

// --- Generators ------------------------------------------------------------

// Constant returns an infinite stream of a.
func Constant[A any](a A) Stream[A] {
	var s Stream[A]
	s = consValue(a, func() Stream[A] { return s })
	return s
}

// Ones returns an infinite stream of 1s.
func Ones() Stream[int] {
	return Constant(1)
}

// From returns the infinite stream of integers n, n+1, n+2, …
func From(n int) Stream[int] {
	return Unfold(n, func(i int) option.Option[fp.Pair[int, int]] {
		return option.Some(fp.P(i, i+1))
	})
}

// Fibs returns the infinite stream of Fibonacci numbers 0, 1, 1, 2, 3, 5, …
func Fibs() Stream[int] {
	return Unfold(fp.P(0, 1), func(st fp.Pair[int, int]) option.Option[fp.Pair[int, fp.Pair[int, int]]] {
		return option.Some(fp.P(st.Left, fp.P(st.Right, st.Left+st.Right)))
	})
}
