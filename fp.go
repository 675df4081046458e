/*
Package fp holds small helpers for functional-style programming in Go, shared by
the data structures of this module.

Sub-packages:

	option               optional values (Some | None)
	either               one of two values (Left | Right)
	result               a value or a Go error
	persistent/list      persistent singly linked lists
	persistent/tree      persistent binary trees
	persistent/stream    lazy, memoized streams
	rng                  a purely functional pseudo-random generator

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fp

// Unit returns unit for any input => the zero value for T.
func Unit[T any](_ T) T {
	var a T
	return a
}

// Identity returns its argument.
func Identity[T any](a T) T {
	return a
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}

// Partial1 fixes the first argument of a binary function.
//
//     inc := Partial1(1, add)   // inc(b) == add(1, b)
//
func Partial1[A, B, C any](a A, f func(A, B) C) func(B) C {
	return func(b B) C {
		return f(a, b)
	}
}

// Curry turns a binary function into a chain of unary functions:
// if c = f(a, b) and g = Curry(f), then g(a)(b) == c.
func Curry[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return Partial1(a, f)
	}
}

// Uncurry is the inverse of Curry.
func Uncurry[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return f(a)(b)
	}
}
