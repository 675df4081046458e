/*
Package option implements optional values.

An Option is either Some(value) or None. Options are used wherever a computation
may legitimately come up without a result, making absence explicit in the type
instead of signalling it with a nil pointer or a sentinel value.

	o := option.Some(7)
	var v int
	switch m := o.Match(); m {
	case m.Some(&v):
		fmt.Printf("got %d\n", v)
	case m.None():
		fmt.Println("nothing")
	}

Combinators changing the element type (Map, FlatMap, Map2, …) are package-level
functions, as Go methods may not introduce type parameters.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package option

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/fpcore/persistent/list"
)

// Option represents an optional value of type T.
type Option[T any] interface {
	Match() Matcher[T]
	IsSome() bool
	IsNone() bool
	Get() (T, bool)
	GetOrElse(func() T) T
	OrElse(func() Option[T]) Option[T]
	Filter(func(T) bool) Option[T]
	String() string
}

type option[T any] struct {
	value T
	tag   bool
}

// Some wraps x into an Option.
func Some[T any](x T) Option[T] {
	return option[T]{value: x, tag: true}
}

// None returns the empty Option. All Nones of a type are equal.
func None[T any]() Option[T] {
	return option[T]{tag: false}
}

func (o option[T]) Match() Matcher[T] {
	return matcher[T]{o: &o}
}

func (o option[T]) IsSome() bool {
	return o.tag
}

func (o option[T]) IsNone() bool {
	return !o.tag
}

// Get returns the wrapped value and true, or the zero value and false for None.
func (o option[T]) Get() (T, bool) {
	return o.value, o.tag
}

// GetOrElse returns the wrapped value. For None it returns the result of calling def;
// def is not called for Some.
func (o option[T]) GetOrElse(def func() T) T {
	if o.tag {
		return o.value
	}
	return def()
}

// OrElse returns o if it is a Some, otherwise the result of calling alt.
func (o option[T]) OrElse(alt func() Option[T]) Option[T] {
	if o.tag {
		return o
	}
	return alt()
}

// Filter returns o if it is a Some and its value satisfies p, otherwise None.
func (o option[T]) Filter(p func(T) bool) Option[T] {
	if o.tag && p(o.value) {
		return o
	}
	return None[T]()
}

func (o option[T]) String() string {
	if o.tag {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// --- Combinators -----------------------------------------------------------

// Map applies f to the value of x, if present.
func Map[T, S any](x Option[T], f func(T) S) Option[S] {
	var v T
	switch m := x.Match(); m {
	case m.Some(&v):
		return Some(f(v))
	case m.None():
	}
	return None[S]()
}

// FlatMap returns f(v) for x = Some(v), and None otherwise. The result of f is not
// wrapped again.
func FlatMap[T, S any](x Option[T], f func(T) Option[S]) Option[S] {
	var v T
	switch m := x.Match(); m {
	case m.Some(&v):
		return f(v)
	case m.None():
	}
	return None[S]()
}

// Lift promotes f to a function on options.
func Lift[T, S any](f func(T) S) func(Option[T]) Option[S] {
	return func(o Option[T]) Option[S] {
		return Map(o, f)
	}
}

// Map2 combines the values of a and b with f if both are present, and returns None
// otherwise. If a is None, neither b nor f are consulted.
func Map2[A, B, C any](a Option[A], b Option[B], f func(A, B) C) Option[C] {
	return FlatMap(a, func(x A) Option[C] {
		return Map(b, func(y B) C {
			return f(x, y)
		})
	})
}

// Sequence turns a list of options into an option of a list. The result is None if
// any of the elements is None. The empty list yields Some(Nil).
func Sequence[A any](l list.List[Option[A]]) Option[list.List[A]] {
	return Traverse(l, func(o Option[A]) Option[A] {
		return o
	})
}

// Traverse maps f over l and collects the results, failing with None as soon as
// f returns None for one of the elements.
func Traverse[A, B any](l list.List[A], f func(A) Option[B]) Option[list.List[B]] {
	var out list.List[B]
	for rest := l; !rest.IsEmpty(); rest, _ = rest.Tail() {
		a, _ := rest.Head()
		b, ok := f(a).Get()
		if !ok {
			return None[list.List[B]]()
		}
		out = out.Cons(b)
	}
	return Some(list.Reverse(out))
}

// Try calls f and wraps its result into Some. If f panics, the panic is recovered and
// Try returns None; the panic value is discarded.
func Try[T any](f func() T) (o Option[T]) {
	defer func() {
		if r := recover(); r != nil {
			o = None[T]()
		}
	}()
	return Some(f())
}

// Equal returns true if a and b are both None, or both hold equal values.
func Equal[T comparable](a, b Option[T]) bool {
	x, okx := a.Get()
	y, oky := b.Get()
	return okx == oky && x == y
}

// ParseInt returns Some(n) if s is the decimal representation of the integer n,
// and None otherwise.
func ParseInt(s string) Option[int] {
	n, err := strconv.Atoi(s)
	if err != nil {
		return None[int]()
	}
	return Some(n)
}

// --- Matching --------------------------------------------------------------

// Matcher supports a switch-statement on the variants of an Option.
type Matcher[T any] interface {
	Some(*T) Matcher[T]
	None() Matcher[T]
}

// matcher refers to its option by pointer, keeping matchers comparable in a
// switch for any T.
type matcher[T any] struct {
	o *option[T]
}

func (mm matcher[T]) Some(v *T) Matcher[T] {
	if mm.o.tag {
		*v = mm.o.value
		return mm
	}
	return nil
}

func (mm matcher[T]) None() Matcher[T] {
	if !mm.o.tag {
		return mm
	}
	return nil
}
