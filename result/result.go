/*
Package result implements the result of a computation that may fail with a Go error.

A Result[T] carries the same information as an either.Either[error, T], and the two
may be converted into each other. Result is the more natural choice at the boundary to
ordinary Go code returning (T, error) pairs.

	{-| A `Result` is the result of a computation that may fail.

	# Type and Constructors
	@docs Result, Ok, Err, Of

	# Mapping
	@docs Map

	# Chaining
	@docs AndThen

	# Handling Errors
	@docs WithDefault, ToOption, FromOption, MapError, FromEither, ToEither
	-}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

import (
	"errors"

	"github.com/npillmayer/fpcore/either"
	"github.com/npillmayer/fpcore/option"
)

// ErrNilError is substituted for a nil error passed to Err.
var ErrNilError = errors.New("result: Err called with nil error")

type Result[T any] interface {
	Match() Matcher[T]
	IsOk() bool
	Get() (T, error)
}

type result[T any] struct {
	value T
	err   error
}

// Ok returns a successful result holding x.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err returns a failed result. A nil err is replaced by ErrNilError, so that a failed
// result can always be told apart from a successful one.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilError
	}
	return result[T]{err: err}
}

// Of creates a result from a Go-style value/error pair:
//
//     r := result.Of(strconv.Atoi(s))
//
func Of[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: &r}
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

// Get unpacks r into a Go-style value/error pair.
func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

// --- Mapping and chaining --------------------------------------------------

// WithDefault returns the value of r, or def if r failed.
func WithDefault[T any](def T, r Result[T]) T {
	if v, err := r.Get(); err == nil {
		return v
	}
	return def
}

// Map transforms the value of a successful result.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	var v T
	var err error
	switch m := r.Match(); m {
	case m.Ok(&v):
		return Ok(f(v))
	case m.Err(&err):
	}
	return Err[S](err)
}

// AndThen chains a computation which may itself fail.
func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	var v T
	var err error
	switch m := r.Match(); m {
	case m.Ok(&v):
		return f(v)
	case m.Err(&err):
	}
	return Err[S](err)
}

// MapError transforms the error of a failed result.
func MapError[T any](f func(error) error, r Result[T]) Result[T] {
	if _, err := r.Get(); err != nil {
		return Err[T](f(err))
	}
	return r
}

// --- Conversions -----------------------------------------------------------

// ToOption drops the error of a failed result.
func ToOption[T any](r Result[T]) option.Option[T] {
	if v, err := r.Get(); err == nil {
		return option.Some(v)
	}
	return option.None[T]()
}

// FromOption converts Some(x) to Ok(x) and None to Err(err).
func FromOption[T any](o option.Option[T], err error) Result[T] {
	if v, ok := o.Get(); ok {
		return Ok(v)
	}
	return Err[T](err)
}

// ToEither converts Ok(x) to Right(x) and Err(err) to Left(err).
func ToEither[T any](r Result[T]) either.Either[error, T] {
	v, err := r.Get()
	if err != nil {
		return either.Left[error, T](err)
	}
	return either.Right[error](v)
}

// FromEither converts Right(x) to Ok(x) and Left(err) to Err(err).
func FromEither[T any](e either.Either[error, T]) Result[T] {
	return either.Fold(e, Err[T], Ok[T])
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r *result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
