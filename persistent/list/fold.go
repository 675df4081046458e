package list

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types for arithmetic folds.
type Number interface {
	constraints.Integer | constraints.Float
}

// --- Folds -----------------------------------------------------------------

// FoldLeft combines the elements of l from head to tail: f(…f(f(z, a1), a2)…, an).
// It iterates and is therefore safe for lists of any length.
func FoldLeft[A, B any](l List[A], z B, f func(B, A) B) B {
	acc := z
	for c := l.cell; c != nil; c = c.tail.cell {
		acc = f(acc, c.head)
	}
	return acc
}

// FoldRight combines the elements of l from tail to head: f(a1, f(a2, …f(an, z)…)).
//
// FoldRight does not recurse. It reverses l and folds the reversal from the left,
// trading an extra O(n) pass for constant stack usage.
func FoldRight[A, B any](l List[A], z B, f func(A, B) B) B {
	return FoldLeft(Reverse(l), z, func(b B, a A) B {
		return f(a, b)
	})
}

// --- Derived operations ----------------------------------------------------

// Length counts the elements of l.
func Length[A any](l List[A]) int {
	return FoldLeft(l, 0, func(n int, _ A) int {
		return n + 1
	})
}

// Sum adds up a list of numbers. The sum of Nil is 0.
func Sum[N Number](l List[N]) N {
	return FoldLeft(l, N(0), func(s N, n N) N {
		return s + n
	})
}

// Product multiplies a list of numbers. The product of Nil is 1.0.
func Product[N Number](l List[N]) float64 {
	return FoldLeft(l, 1.0, func(p float64, n N) float64 {
		return p * float64(n)
	})
}

// Reverse returns the elements of l in reverse order.
func Reverse[A any](l List[A]) List[A] {
	return FoldLeft(l, Nil[A](), func(acc List[A], a A) List[A] {
		return acc.Cons(a)
	})
}

// Append returns the elements of l1 followed by those of l2. l2 is shared.
func Append[A any](l1, l2 List[A]) List[A] {
	if l2.IsEmpty() {
		return l1
	}
	return FoldRight(l1, l2, func(a A, acc List[A]) List[A] {
		return acc.Cons(a)
	})
}

// Concat flattens a list of lists, preserving order.
func Concat[A any](ll List[List[A]]) List[A] {
	return FoldRight(ll, Nil[A](), func(l List[A], acc List[A]) List[A] {
		return Append(l, acc)
	})
}

// FlatMap applies f to every element of l and concatenates the results.
func FlatMap[A, B any](l List[A], f func(A) List[B]) List[B] {
	return FoldRight(l, Nil[B](), func(a A, acc List[B]) List[B] {
		return Append(f(a), acc)
	})
}

// Map applies f to every element of l.
func Map[A, B any](l List[A], f func(A) B) List[B] {
	return FlatMap(l, func(a A) List[B] {
		return Nil[B]().Cons(f(a))
	})
}

// Filter keeps the elements of l satisfying p.
func Filter[A any](l List[A], p func(A) bool) List[A] {
	return FlatMap(l, func(a A) List[A] {
		if p(a) {
			return Nil[A]().Cons(a)
		}
		return Nil[A]()
	})
}

// AddOne increments every element of a list of numbers.
func AddOne[N Number](l List[N]) List[N] {
	return Map(l, func(n N) N {
		return n + 1
	})
}

// ToString converts every element of l to its default string format.
// The result is a list of strings, one per element.
func ToString[A any](l List[A]) List[string] {
	return Map(l, func(a A) string {
		return fmt.Sprint(a)
	})
}

// --- Zipping ---------------------------------------------------------------

// zipState is the accumulator of ZipWith: the part of the right list not yet
// consumed, and the result built so far (in reverse order).
type zipState[B, C any] struct {
	rest List[B]
	out  List[C]
}

// ZipWith combines corresponding elements of la and lb with f. The result is as long
// as the shorter of the two lists; surplus elements are silently ignored.
func ZipWith[A, B, C any](la List[A], lb List[B], f func(A, B) C) List[C] {
	z := FoldLeft(la, zipState[B, C]{rest: lb}, func(s zipState[B, C], a A) zipState[B, C] {
		if s.rest.IsEmpty() {
			return s
		}
		return zipState[B, C]{
			rest: s.rest.cell.tail,
			out:  s.out.Cons(f(a, s.rest.cell.head)),
		}
	})
	return Reverse(z.out)
}

// AddCorresponding adds corresponding elements of two lists of numbers.
func AddCorresponding[N Number](a, b List[N]) List[N] {
	return ZipWith(a, b, func(x, y N) N {
		return x + y
	})
}

// --- Subsequences ----------------------------------------------------------

// subseqScan is the accumulator of HasSubsequence. partials holds, for every match in
// progress, the elements of the subsequence still expected.
type subseqScan[A any] struct {
	found    bool
	partials List[List[A]]
}

// HasSubsequence returns true if sub occurs as a contiguous run of elements anywhere in
// sup. The empty list is a subsequence of every list.
//
// The scan is a single left fold over sup. Every element of sup may start a new match
// (with the complete sub still expected); a match in progress survives if its next
// expected element equals the current one, and is discarded otherwise.
func HasSubsequence[A comparable](sup, sub List[A]) bool {
	if sub.IsEmpty() {
		return true
	}
	scan := FoldLeft(sup, subseqScan[A]{}, func(s subseqScan[A], a A) subseqScan[A] {
		if s.found {
			return s
		}
		candidates := s.partials.Cons(sub)
		next := FoldLeft(candidates, subseqScan[A]{}, func(n subseqScan[A], rem List[A]) subseqScan[A] {
			if n.found || rem.cell.head != a {
				return n
			}
			if rem.cell.tail.IsEmpty() {
				return subseqScan[A]{found: true}
			}
			n.partials = n.partials.Cons(rem.cell.tail)
			return n
		})
		return next
	})
	return scan.found
}
