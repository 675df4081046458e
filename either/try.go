package either

import "fmt"

// PanicError wraps a recovered panic value which is not itself an error.
type PanicError struct {
	Value interface{}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Try calls f and returns its result in a Right. If f panics, the panic is recovered
// and returned as a Left: a panic value of type error is returned unchanged, any other
// value is wrapped in a *PanicError.
func Try[A any](f func() A) (e Either[error, A]) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Debugf("try: recovered from panic: %v", r)
			e = Left[error, A](asError(r))
		}
	}()
	return Right[error](f())
}

// TryErr calls f and returns its result in a Right, or its error in a Left. Panics are
// handled like in Try.
func TryErr[A any](f func() (A, error)) (e Either[error, A]) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Debugf("try: recovered from panic: %v", r)
			e = Left[error, A](asError(r))
		}
	}()
	a, err := f()
	if err != nil {
		return Left[error, A](err)
	}
	return Right[error](a)
}

func asError(r interface{}) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{Value: r}
}
