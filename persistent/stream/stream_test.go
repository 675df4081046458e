package stream_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/fpcore/option"
	"github.com/npillmayer/fpcore/persistent/stream"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestHeadIsMemoized(t *testing.T) {
	counter := 0
	s := stream.Cons(func() int {
		counter++
		return 1
	}, stream.Empty[int])
	h1, h2 := s.HeadOption(), s.HeadOption()
	if counter != 1 {
		t.Errorf("expected head to be evaluated exactly once, was evaluated %d times", counter)
	}
	assert.True(t, option.Equal(h1, option.Some(1)))
	assert.True(t, option.Equal(h2, option.Some(1)))
	assert.True(t, stream.Empty[int]().HeadOption().IsNone())
}

func TestTakeWhile(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	l := stream.Of(2, 4, 1).TakeWhile(even).ToList()
	assert.Equal(t, []int{2, 4}, l.ToSlice())
	if !stream.Of(1, 2, 3).TakeWhile(even).IsEmpty() {
		t.Error("expected TakeWhile to be empty if the first element fails, isn't")
	}
	l = stream.From(0).TakeWhile(func(n int) bool { return n < 4 }).ToList()
	assert.Equal(t, []int{0, 1, 2, 3}, l.ToSlice())
}

func TestTake(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.stream")
	defer teardown()
	//
	assert.Equal(t, []int{0, 1, 1, 2, 3}, stream.Fibs().Take(5).ToList().ToSlice())
	assert.Equal(t, []int{3, 4, 5}, stream.From(3).Take(3).ToList().ToSlice())
	assert.Equal(t, []int{1, 1, 1}, stream.Ones().Take(3).ToList().ToSlice())
	assert.Equal(t, []string{"x", "x"}, stream.Constant("x").Take(2).ToList().ToSlice())
	assert.Equal(t, []int{1, 2}, stream.Of(1, 2).Take(10).ToList().ToSlice())
	assert.True(t, stream.Of(1, 2).Take(-1).IsEmpty())
}

func TestTakeIsLazy(t *testing.T) {
	var heads, tails int
	s := counted(1, &heads, &tails)
	if !s.Take(0).IsEmpty() || heads != 0 || tails != 0 {
		t.Errorf("expected Take(0) to force nothing, forced %d heads and %d tails", heads, tails)
	}
	prefix := s.Take(3)
	if tails != 0 {
		t.Errorf("expected Take to leave the tail suspended, forced %d tails", tails)
	}
	assert.Equal(t, []int{1, 2, 3}, prefix.ToList().ToSlice())
	assert.Equal(t, 3, heads)
	assert.Equal(t, 2, tails)
}

func TestExistsOnInfiniteStream(t *testing.T) {
	calls := 0
	s := stream.Map(stream.From(0), func(n int) int {
		calls++
		return n
	})
	if !s.Exists(func(n int) bool { return n == 3 }) {
		t.Error("expected 3 to exist in the stream of naturals")
	}
	assert.Equal(t, 4, calls, "expected Exists to stop at the first match")
	assert.False(t, stream.Empty[int]().Exists(func(int) bool { return true }))
}

func TestForAll(t *testing.T) {
	calls := 0
	small := func(n int) bool {
		calls++
		return n < 5
	}
	if stream.From(0).ForAll(small) {
		t.Error("expected ForAll(n < 5) on the naturals to be false")
	}
	assert.Equal(t, 6, calls, "expected ForAll to stop at the first failing element")
	assert.True(t, stream.Of(1, 2, 3).ForAll(small))
	if stream.Empty[int]().ForAll(func(int) bool { return true }) {
		t.Error("expected ForAll on the empty stream to be false")
	}
}

func TestFilterAndFind(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	assert.Equal(t, []int{0, 2, 4}, stream.From(0).Filter(even).Take(3).ToList().ToSlice())
	assert.True(t, stream.Of(1, 3).Filter(even).IsEmpty())
	assert.True(t, option.Equal(stream.From(0).Find(func(n int) bool { return n > 10 }), option.Some(11)))
	assert.True(t, stream.Of(1, 3).Find(even).IsNone())
}

func TestDrop(t *testing.T) {
	assert.True(t, option.Equal(stream.From(0).Drop(5).HeadOption(), option.Some(5)))
	assert.True(t, stream.Of(1).Drop(3).IsEmpty())
	assert.Equal(t, []int{1, 2}, stream.Of(1, 2).Drop(0).ToList().ToSlice())
	s := stream.From(0).DropWhile(func(n int) bool { return n < 3 })
	assert.True(t, option.Equal(s.HeadOption(), option.Some(3)))
	assert.True(t, stream.Of(1, 2).DropWhile(func(int) bool { return true }).IsEmpty())
}

func TestMapAndFlatMap(t *testing.T) {
	double := func(n int) int { return 2 * n }
	assert.Equal(t, []int{2, 4, 6}, stream.Map(stream.Of(1, 2, 3), double).ToList().ToSlice())
	assert.True(t, stream.Map(stream.Empty[int](), double).IsEmpty())
	twice := func(n int) stream.Stream[int] { return stream.Of(n, n) }
	assert.Equal(t, []int{1, 1, 2, 2, 3, 3}, stream.FlatMap(stream.Of(1, 2, 3), twice).ToList().ToSlice())
	assert.Equal(t, []int{1, 1, 2, 2}, stream.FlatMap(stream.From(1), twice).Take(4).ToList().ToSlice())
}

func TestAppend(t *testing.T) {
	called := false
	s := stream.Of(1, 2).Append(func() stream.Stream[int] {
		called = true
		return stream.Of(3)
	})
	if called {
		t.Error("expected Append to defer evaluation of the appended stream")
	}
	assert.Equal(t, []int{1, 2, 3}, s.ToList().ToSlice())
	assert.True(t, called)
	assert.Equal(t, []int{7}, stream.Empty[int]().Append(func() stream.Stream[int] {
		return stream.Of(7)
	}).ToList().ToSlice())
}

func TestZipWith(t *testing.T) {
	sum := stream.ZipWith(stream.From(1), stream.Of(10, 20), func(a, b int) int { return a + b })
	assert.Equal(t, []int{11, 22}, sum.ToList().ToSlice())
}

func TestZipAll(t *testing.T) {
	z := stream.ZipAll(stream.Of(1, 2, 3), stream.Of("a"))
	var got []string
	for _, p := range z.ToList().ToSlice() {
		got = append(got, p.String())
	}
	want := []string{"(Some(1), Some(a))", "(Some(2), None)", "(Some(3), None)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ZipAll mismatch (-want +got):\n%s", diff)
	}
	n := stream.ZipAll(stream.Empty[int](), stream.Of(true, false)).ToList().Len()
	assert.Equal(t, 2, n)
}

func TestTails(t *testing.T) {
	lengths := stream.Map(stream.Tails(stream.Of(1, 2, 3)), func(s stream.Stream[int]) int {
		return s.ToList().Len()
	})
	assert.Equal(t, []int{3, 2, 1, 0}, lengths.ToList().ToSlice())
	assert.Equal(t, 1, stream.Tails(stream.Empty[int]()).ToList().Len())
}

func TestStartsWith(t *testing.T) {
	var heads, tails int
	if !stream.StartsWith(counted(1, &heads, &tails), stream.Of(1, 2, 3)) {
		t.Error("expected counting stream to start with 1, 2, 3")
	}
	assert.Equal(t, 3, heads, "expected StartsWith to force only as many heads as the prefix has")
	assert.Equal(t, 2, tails)
	assert.False(t, stream.StartsWith(stream.Of(1, 2), stream.Of(1, 2, 3)))
	assert.False(t, stream.StartsWith(stream.From(0), stream.Of(0, 2)))
	assert.True(t, stream.StartsWith(stream.Of(1), stream.Empty[int]()))
	assert.True(t, stream.StartsWith(stream.Empty[int](), stream.Empty[int]()))
}

func TestHasSubsequence(t *testing.T) {
	assert.True(t, stream.HasSubsequence(stream.From(0), stream.Of(5, 6, 7)))
	assert.True(t, stream.HasSubsequence(stream.Of(1, 1, 2), stream.Of(1, 2)))
	assert.False(t, stream.HasSubsequence(stream.Of(1, 2, 3, 4), stream.Of(2, 4)))
	assert.True(t, stream.HasSubsequence(stream.Of(1, 2), stream.Empty[int]()))
	assert.False(t, stream.HasSubsequence(stream.Empty[int](), stream.Of(1)))
}

func TestScanRight(t *testing.T) {
	calls := 0
	sums := stream.ScanRight(stream.Of(1, 2, 3), 0, func(a int, b func() int) int {
		calls++
		return a + b()
	})
	assert.Equal(t, []int{6, 5, 3, 0}, sums.ToList().ToSlice())
	assert.Equal(t, 3, calls, "expected intermediate results to be shared")
}

func TestString(t *testing.T) {
	s := stream.Of(1, 2, 3)
	assert.Equal(t, "Stream(?, …)", s.String())
	s.ToList()
	assert.Equal(t, "Stream(1, 2, 3)", s.String())
	assert.Equal(t, "Stream()", stream.Empty[int]().String())
	nat := stream.From(0)
	nat.Drop(2)
	assert.Equal(t, "Stream(0, 1, 2, …)", nat.String())
	ones := stream.Ones()
	ones.Drop(1) // closes the cycle
	assert.Equal(t, "Stream(1, 1, 1, 1, 1, 1, 1, 1, 1, 1, …)", ones.String())
}

// ---------------------------------------------------------------------------

// counted produces the naturals starting at n, counting evaluations of
// heads and tails.
func counted(n int, heads, tails *int) stream.Stream[int] {
	return stream.Cons(func() int {
		*heads++
		return n
	}, func() stream.Stream[int] {
		*tails++
		return counted(n+1, heads, tails)
	})
}
