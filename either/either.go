/*
Package either implements a type holding one of two values.

Haskell:

    data Either a b = Left a | Right b

Stand-in in Go:

    e := either.Right[error](42)
    var n int
    var err error
    switch m := e.Match(); m {
    case m.Right(&n):
        …
    case m.Left(&err):
        …
    }

By convention Left denotes failure and Right denotes success. All combinators
are right-biased: they operate on a Right and pass a Left through untouched.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package either

import (
	"fmt"

	"github.com/npillmayer/fpcore/option"
	"github.com/npillmayer/fpcore/persistent/list"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.either'.
func tracer() tracing.Trace {
	return tracing.Select("fp.either")
}

// Either holds either a value of type E (Left) or a value of type A (Right).
type Either[E, A any] interface {
	Match() Matcher[E, A]
	IsLeft() bool
	IsRight() bool
	OrElse(func() Either[E, A]) Either[E, A]
	String() string
}

// sum is the stand-in for a tagged union: exactly one of the two fields is meaningful,
// as determined by discr.
type sum[E, A any] struct {
	discr      bool // true for Right
	leftField  E
	rightField A
}

// Left creates an Either holding a left value.
func Left[E, A any](e E) Either[E, A] {
	return sum[E, A]{leftField: e}
}

// Right creates an Either holding a right value.
func Right[E, A any](a A) Either[E, A] {
	return sum[E, A]{discr: true, rightField: a}
}

func (s sum[E, A]) Match() Matcher[E, A] {
	return matcher[E, A]{s: &s}
}

func (s sum[E, A]) IsLeft() bool {
	return !s.discr
}

func (s sum[E, A]) IsRight() bool {
	return s.discr
}

// OrElse returns s if it is a Right, otherwise the result of calling alt.
func (s sum[E, A]) OrElse(alt func() Either[E, A]) Either[E, A] {
	if s.discr {
		return s
	}
	return alt()
}

func (s sum[E, A]) String() string {
	if s.discr {
		return fmt.Sprintf("Right(%v)", s.rightField)
	}
	return fmt.Sprintf("Left(%v)", s.leftField)
}

// --- Combinators -----------------------------------------------------------

// Fold eliminates an Either by applying onLeft or onRight, depending on its variant.
func Fold[E, A, B any](e Either[E, A], onLeft func(E) B, onRight func(A) B) B {
	var l E
	var r A
	switch m := e.Match(); m {
	case m.Right(&r):
		return onRight(r)
	case m.Left(&l):
	}
	return onLeft(l)
}

// FlatMap returns f(a) for e = Right(a). A Left is propagated unchanged.
func FlatMap[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	return Fold(e, Left[E, B], f)
}

// Map transforms the value of a Right.
func Map[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	return FlatMap(e, func(a A) Either[E, B] {
		return Right[E](f(a))
	})
}

// Map2 combines the values of two Rights with f. Otherwise it returns the first Left
// encountered, evaluating from left to right; if a is a Left, b is not inspected.
func Map2[E, A, B, C any](a Either[E, A], b Either[E, B], f func(A, B) C) Either[E, C] {
	return FlatMap(a, func(x A) Either[E, C] {
		return Map(b, func(y B) C {
			return f(x, y)
		})
	})
}

// Traverse maps f over l and collects the results into a Right. The first Left
// returned by f is the result, and f is not called for the remaining elements.
func Traverse[E, A, B any](l list.List[A], f func(A) Either[E, B]) Either[E, list.List[B]] {
	// fold from the left, so that the first failure wins and stops further calls to f
	acc := list.FoldLeft(l, Right[E](list.Nil[B]()), func(acc Either[E, list.List[B]], a A) Either[E, list.List[B]] {
		if acc.IsLeft() {
			return acc
		}
		return Map2(acc, f(a), func(bs list.List[B], b B) list.List[B] {
			return bs.Cons(b)
		})
	})
	return Map(acc, list.Reverse[B])
}

// Sequence turns a list of Eithers into an Either of a list, or the first Left
// contained in l. The empty list yields Right(Nil).
func Sequence[E, A any](l list.List[Either[E, A]]) Either[E, list.List[A]] {
	return Traverse(l, func(e Either[E, A]) Either[E, A] {
		return e
	})
}

// ToOption converts a Right to Some and a Left to None.
func ToOption[E, A any](e Either[E, A]) option.Option[A] {
	return Fold(e, func(E) option.Option[A] {
		return option.None[A]()
	}, option.Some[A])
}

// Equal returns true if a and b hold the same variant with equal values.
func Equal[E, A comparable](a, b Either[E, A]) bool {
	x, okx := a.(sum[E, A])
	y, oky := b.(sum[E, A])
	return okx && oky && x == y
}

// --- Matching --------------------------------------------------------------

// Matcher supports a switch-statement on the variants of an Either.
type Matcher[E, A any] interface {
	Left(*E) Matcher[E, A]
	Right(*A) Matcher[E, A]
}

type matcher[E, A any] struct {
	s *sum[E, A]
}

func (mm matcher[E, A]) Left(v *E) Matcher[E, A] {
	if !mm.s.discr {
		*v = mm.s.leftField
		return mm
	}
	return nil
}

func (mm matcher[E, A]) Right(v *A) Matcher[E, A] {
	if mm.s.discr {
		*v = mm.s.rightField
		return mm
	}
	return nil
}
