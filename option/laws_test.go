package option_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	. "github.com/npillmayer/fpcore/option"
	"github.com/samber/mo"
)

// samber/mo's Option serves as a reference implementation.
func TestOptionAgreesWithMo(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	both := func(x int, present bool) (Option[int], mo.Option[int]) {
		if present {
			return Some(x), mo.Some(x)
		}
		return None[int](), mo.None[int]()
	}
	halve := func(n int) (int, bool) {
		return n / 2, n%2 == 0
	}

	properties.Property("GetOrElse agrees with OrElse", prop.ForAll(
		func(x int, present bool) bool {
			o, m := both(x, present)
			return o.GetOrElse(func() int { return -1 }) == m.OrElse(-1) &&
				o.IsSome() == m.IsPresent()
		},
		gen.Int(), gen.Bool(),
	))
	properties.Property("Map agrees", prop.ForAll(
		func(x int, present bool) bool {
			o, m := both(x, present)
			inc := func(n int) int { return n + 1 }
			want := m.Map(func(n int) (int, bool) { return inc(n), true })
			v, ok := Map(o, inc).Get()
			w, okw := want.Get()
			return ok == okw && v == w
		},
		gen.Int(), gen.Bool(),
	))
	properties.Property("FlatMap agrees", prop.ForAll(
		func(x int, present bool) bool {
			o, m := both(x, present)
			want := m.FlatMap(func(n int) mo.Option[int] {
				h, ok := halve(n)
				return mo.TupleToOption(h, ok)
			})
			got := FlatMap(o, func(n int) Option[int] {
				if h, ok := halve(n); ok {
					return Some(h)
				}
				return None[int]()
			})
			v, ok := got.Get()
			w, okw := want.Get()
			return ok == okw && v == w
		},
		gen.IntRange(-100, 100), gen.Bool(),
	))

	properties.TestingRun(t)
}
