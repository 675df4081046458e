package list_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/npillmayer/fpcore/persistent/list"
	"github.com/samber/lo"
)

func TestListLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("foldRight with Cons and Nil rebuilds the list", prop.ForAll(
		func(xs []int) bool {
			l := list.FromSlice(xs)
			r := list.FoldRight(l, list.Nil[int](), func(a int, acc list.List[int]) list.List[int] {
				return acc.Cons(a)
			})
			return list.Equal(l, r)
		},
		gen.SliceOf(gen.Int()),
	))
	properties.Property("Nil is the identity of Append", prop.ForAll(
		func(xs []int) bool {
			l := list.FromSlice(xs)
			return list.Equal(list.Append(list.Nil[int](), l), l) &&
				list.Equal(list.Append(l, list.Nil[int]()), l)
		},
		gen.SliceOf(gen.Int()),
	))
	properties.Property("mapping the identity function is the identity", prop.ForAll(
		func(xs []string) bool {
			l := list.FromSlice(xs)
			return list.Equal(list.Map(l, func(s string) string { return s }), l)
		},
		gen.SliceOf(gen.AlphaString()),
	))
	properties.Property("Reverse is an involution", prop.ForAll(
		func(xs []int) bool {
			l := list.FromSlice(xs)
			return list.Equal(list.Reverse(list.Reverse(l)), l)
		},
		gen.SliceOf(gen.Int()),
	))
	properties.Property("ZipWith truncates to the shorter list", prop.ForAll(
		func(xs, ys []int) bool {
			z := list.ZipWith(list.FromSlice(xs), list.FromSlice(ys), func(a, b int) int { return a + b })
			n := len(xs)
			if len(ys) < n {
				n = len(ys)
			}
			return z.Len() == n
		},
		gen.SliceOf(gen.Int()),
		gen.SliceOf(gen.Int()),
	))
	properties.Property("Length of Append is the sum of lengths", prop.ForAll(
		func(xs, ys []int) bool {
			return list.Append(list.FromSlice(xs), list.FromSlice(ys)).Len() == len(xs)+len(ys)
		},
		gen.SliceOf(gen.Int()),
		gen.SliceOf(gen.Int()),
	))
	properties.Property("every list contains its suffixes", prop.ForAll(
		func(xs []int, k int) bool {
			if len(xs) == 0 {
				return true
			}
			k = k % len(xs)
			return list.HasSubsequence(list.FromSlice(xs), list.FromSlice(xs[k:]))
		},
		gen.SliceOf(gen.IntRange(0, 3)),
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t)
}

// Slice helpers from samber/lo serve as a reference implementation.
func TestListAgreesWithSliceFunctions(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	square := func(n int) int { return n * n }
	odd := func(n int) bool { return n%2 != 0 }
	properties.Property("Map agrees with lo.Map", prop.ForAll(
		func(xs []int) bool {
			want := lo.Map(xs, func(n int, _ int) int { return square(n) })
			return list.Equal(list.Map(list.FromSlice(xs), square), list.FromSlice(want))
		},
		gen.SliceOf(gen.IntRange(-1000, 1000)),
	))
	properties.Property("Filter agrees with lo.Filter", prop.ForAll(
		func(xs []int) bool {
			want := lo.Filter(xs, func(n int, _ int) bool { return odd(n) })
			return list.Equal(list.Filter(list.FromSlice(xs), odd), list.FromSlice(want))
		},
		gen.SliceOf(gen.Int()),
	))
	properties.Property("Sum agrees with lo.Sum", prop.ForAll(
		func(xs []int) bool {
			return list.Sum(list.FromSlice(xs)) == lo.Sum(xs)
		},
		gen.SliceOf(gen.IntRange(-1000, 1000)),
	))
	properties.Property("FlatMap agrees with lo.FlatMap", prop.ForAll(
		func(xs []string) bool {
			twice := func(s string) []string { return []string{s, s} }
			want := lo.FlatMap(xs, func(s string, _ int) []string { return twice(s) })
			got := list.FlatMap(list.FromSlice(xs), func(s string) list.List[string] {
				return list.FromSlice(twice(s))
			})
			return list.Equal(got, list.FromSlice(want))
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
