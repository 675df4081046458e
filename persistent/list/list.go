package list

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyList is returned by operations which are undefined for the empty list.
var ErrEmptyList = errors.New("operation on empty list")

// List is an immutable singly linked list. The zero value is the empty list Nil,
// i.e. this is legal:
//
//     var l list.List[int]
//     l = l.Cons(1)   // List(1)
//
// Lists are values; copying a List copies a single pointer.
type List[A any] struct {
	cell *cell[A]
}

// cell is a link of a list. Cells are never modified after creation, which makes it
// safe for many lists to share a common tail.
type cell[A any] struct {
	head A
	tail List[A]
}

// Nil returns the empty list. All empty lists of a type are equal.
func Nil[A any]() List[A] {
	return List[A]{}
}

// Of creates a list from a variable number of arguments, preserving their order.
func Of[A any](vals ...A) List[A] {
	return FromSlice(vals)
}

// FromSlice creates a list holding the elements of s, in order.
func FromSlice[A any](s []A) List[A] {
	var l List[A]
	for i := len(s) - 1; i >= 0; i-- {
		l = l.Cons(s[i])
	}
	return l
}

// --- API -------------------------------------------------------------------

// IsEmpty returns true if l is Nil.
func (l List[A]) IsEmpty() bool {
	return l.cell == nil
}

// Cons returns a new list with a prepended to l. l is shared, not copied.
func (l List[A]) Cons(a A) List[A] {
	return List[A]{cell: &cell[A]{head: a, tail: l}}
}

// Head returns the first element of l. For Nil it returns an error wrapping ErrEmptyList.
func (l List[A]) Head() (A, error) {
	if l.IsEmpty() {
		var zero A
		return zero, fmt.Errorf("head: %w", ErrEmptyList)
	}
	return l.cell.head, nil
}

// Tail returns everything after the head of l. For Nil it returns an error wrapping
// ErrEmptyList.
func (l List[A]) Tail() (List[A], error) {
	if l.IsEmpty() {
		tracer().Debugf("tail: list is empty")
		return l, fmt.Errorf("tail: %w", ErrEmptyList)
	}
	return l.cell.tail, nil
}

// GetTail is a synonym for Tail.
func (l List[A]) GetTail() (List[A], error) {
	return l.Tail()
}

// Len returns the number of elements in l. This is an O(n) operation.
func (l List[A]) Len() int {
	return Length(l)
}

// SetHead returns a list with the head of l replaced by a. The tail of l is shared.
// For Nil it returns an error wrapping ErrEmptyList.
func (l List[A]) SetHead(a A) (List[A], error) {
	if l.IsEmpty() {
		tracer().Debugf("set-head: list is empty")
		return l, fmt.Errorf("set head: %w", ErrEmptyList)
	}
	return l.cell.tail.Cons(a), nil
}

// Drop removes the first n elements of l.
//
// Dropping from Nil is an error, even for n = 0; the check for emptiness takes
// precedence over the check for n. Thus
//
//     list.Of("x", "y", "z").Drop(2)   // returns List(z)
//     list.Of("x", "y").Drop(2)        // returns an error
//
func (l List[A]) Drop(n int) (List[A], error) {
	for k := n; ; k-- {
		if l.IsEmpty() {
			tracer().Debugf("drop: cannot drop %d of %d remaining elements from empty list", n, k)
			return l, fmt.Errorf("drop %d: %w", n, ErrEmptyList)
		}
		if k <= 0 {
			return l, nil
		}
		l = l.cell.tail
	}
}

// DropWhile removes the longest prefix of l whose elements all satisfy p. It is an error
// to call DropWhile on Nil; running out of elements while dropping is not.
func (l List[A]) DropWhile(p func(A) bool) (List[A], error) {
	if l.IsEmpty() {
		tracer().Debugf("drop-while: list is empty")
		return l, fmt.Errorf("drop while: %w", ErrEmptyList)
	}
	for !l.IsEmpty() && p(l.cell.head) {
		l = l.cell.tail
	}
	return l, nil
}

// Init returns all elements of l except the last one. For Nil it returns an error
// wrapping ErrEmptyList.
func (l List[A]) Init() (List[A], error) {
	if l.IsEmpty() {
		tracer().Debugf("init: list is empty")
		return l, fmt.Errorf("init: %w", ErrEmptyList)
	}
	r := Reverse(l)
	return Reverse(r.cell.tail), nil
}

// Append returns the elements of l followed by the elements of other.
// other is shared by the result, l is copied.
func (l List[A]) Append(other List[A]) List[A] {
	return Append(l, other)
}

// Reverse returns the elements of l in reverse order.
func (l List[A]) Reverse() List[A] {
	return Reverse(l)
}

// Filter returns the elements of l satisfying p, in order.
func (l List[A]) Filter(p func(A) bool) List[A] {
	return Filter(l, p)
}

// ToSlice copies the elements of l into a newly allocated slice.
func (l List[A]) ToSlice() []A {
	s := make([]A, 0, 8)
	for c := l.cell; c != nil; c = c.tail.cell {
		s = append(s, c.head)
	}
	return s
}

// String returns a representation like “List(1, 2, 3)”.
func (l List[A]) String() string {
	var b strings.Builder
	b.WriteString("List(")
	for c := l.cell; c != nil; c = c.tail.cell {
		if c != l.cell {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", c.head)
	}
	b.WriteByte(')')
	return b.String()
}

// Equal returns true if a and b contain equal elements in the same order.
// Comparison stops as soon as both lists reach a shared cell.
func Equal[A comparable](a, b List[A]) bool {
	x, y := a.cell, b.cell
	for x != nil && y != nil {
		if x == y {
			return true
		}
		if x.head != y.head {
			return false
		}
		x, y = x.tail.cell, y.tail.cell
	}
	return x == nil && y == nil
}
