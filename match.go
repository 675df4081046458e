package fp

import "fmt"

// --- Pair ------------------------------------------------------------------

// Pair is a 2-tuple. Unfold-style operations use it to return an element together
// with the next state.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P creates a pair.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose returns both components.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Left, p.Right)
}

// --- Triple ----------------------------------------------------------------

// Triple is a 3-tuple.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// T3 creates a triple.
func T3[A, B, C any](x A, y B, z C) Triple[A, B, C] {
	return Triple[A, B, C]{x, y, z}
}

// Decompose returns all three components.
func (t Triple[A, B, C]) Decompose() (A, B, C) {
	return t.First, t.Second, t.Third
}

func (t Triple[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.First, t.Second, t.Third)
}
