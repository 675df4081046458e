package rng

import (
	fp "github.com/npillmayer/fpcore"
	"github.com/npillmayer/fpcore/persistent/list"
	"github.com/samber/lo"
)

// Rand is a state action: it produces a value of type A from a generator and
// returns the generator to continue with.
type Rand[A any] func(RNG) (A, RNG)

// Run applies action a to r. It is the same as calling a(r).
func (a Rand[A]) Run(r RNG) (A, RNG) {
	return a(r)
}

// Unit always produces a and leaves the generator untouched.
func Unit[A any](a A) Rand[A] {
	return func(r RNG) (A, RNG) {
		return a, r
	}
}

// Map transforms the output of action s with f.
func Map[A, B any](s Rand[A], f func(A) B) Rand[B] {
	return func(r RNG) (B, RNG) {
		a, next := s(r)
		return f(a), next
	}
}

// Map2 runs ra and then rb, and combines their outputs with f.
func Map2[A, B, C any](ra Rand[A], rb Rand[B], f func(A, B) C) Rand[C] {
	return func(r RNG) (C, RNG) {
		a, r2 := ra(r)
		b, r3 := rb(r2)
		return f(a, b), r3
	}
}

// FlatMap runs s and lets f decide on the action to run next.
func FlatMap[A, B any](s Rand[A], f func(A) Rand[B]) Rand[B] {
	return func(r RNG) (B, RNG) {
		a, next := s(r)
		return f(a)(next)
	}
}

// Both runs ra and then rb and pairs their outputs.
func Both[A, B any](ra Rand[A], rb Rand[B]) Rand[fp.Pair[A, B]] {
	return Map2(ra, rb, fp.P[A, B])
}

// Sequence combines a list of actions into a single action producing the list of
// their outputs. The actions run in list order.
func Sequence[A any](actions list.List[Rand[A]]) Rand[list.List[A]] {
	return list.FoldRight(actions, Unit(list.Nil[A]()), func(ra Rand[A], acc Rand[list.List[A]]) Rand[list.List[A]] {
		return Map2(ra, acc, func(a A, l list.List[A]) list.List[A] {
			return l.Cons(a)
		})
	})
}

// Ints produces count random integers.
func Ints(count int) Rand[list.List[int32]] {
	assertThat(count >= 0, "count must not be negative, is %d", count)
	actions := lo.Times(count, func(int) Rand[int32] {
		return Int
	})
	return Sequence(list.FromSlice(actions))
}

// NonNegativeLessThan produces integers in [0, n), uniformly distributed. Numbers
// from the incomplete last interval of width n below MaxInt32 are rejected and
// generation is retried. n must be positive.
func NonNegativeLessThan(n int32) Rand[int32] {
	assertThat(n > 0, "upper bound must be positive, is %d", n)
	return FlatMap(Rand[int32](NonNegativeInt), func(i int32) Rand[int32] {
		mod := i % n
		if i+(n-1)-mod >= 0 { // int32 overflow signals the incomplete interval
			return Unit(mod)
		}
		tracer().Debugf("rejected %d for bound %d, retrying", i, n)
		return NonNegativeLessThan(n)
	})
}
