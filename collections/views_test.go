package collections_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-multiorder/collections"
)

// drain dereferences and advances cur n times, failing on any error.
func drain[T any](t *testing.T, cur collections.Cursor[T], n int) []T {
	t.Helper()
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := cur.Value()
		require.NoError(t, err, "step %d", i)
		out = append(out, v)
		cur.Next()
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Insertion order
// ─────────────────────────────────────────────────────────────────────────────

func TestOrderView(t *testing.T) {
	c := ints(10, 20, 30)
	it, end := c.BeginOrder(), c.EndOrder()

	var got []int
	for ; !it.Equal(end); it.Next() {
		v, err := it.Value()
		require.NoError(t, err)
		got = append(got, v)
	}
	require.Equal(t, []int{10, 20, 30}, got)

	_, err := it.Value()
	require.ErrorIs(t, err, collections.ErrOutOfBounds)
}

func TestOrderViewEmpty(t *testing.T) {
	c := collections.Empty[int]()
	require.True(t, c.BeginOrder().Equal(c.EndOrder()))
	_, err := c.BeginOrder().Value()
	require.ErrorIs(t, err, collections.ErrOutOfBounds)
}

func TestOrderViewNextIsUnclamped(t *testing.T) {
	c := ints(1)
	it := c.BeginOrder()
	it.Next()
	require.True(t, it.Equal(c.EndOrder()))
	it.Next()
	require.False(t, it.Equal(c.EndOrder()))
	require.Equal(t, 2, it.Position())
	_, err := it.Value()
	require.ErrorIs(t, err, collections.ErrOutOfBounds)
}

func TestOrderViewPostNext(t *testing.T) {
	c := ints(10, 20, 30)
	it := c.BeginOrder()

	prev := it.PostNext()
	v, err := prev.Value()
	require.NoError(t, err)
	require.Equal(t, 10, v)

	v, err = it.Value()
	require.NoError(t, err)
	require.Equal(t, 20, v)
	require.False(t, prev.Equal(it))
}

func TestOrderViewIsLive(t *testing.T) {
	c := ints(10, 20, 30)
	it := c.BeginOrder()

	require.NoError(t, c.Remove(20))
	c.Add(5)

	require.Equal(t, []int{10, 30, 5}, drain[int](t, it, 3))
	require.True(t, it.Equal(c.EndOrder()))
	require.Equal(t, []int{10, 30, 5}, drain[int](t, c.BeginOrder(), 3))
}

func TestOrderViewAfterShrink(t *testing.T) {
	c := ints(1, 2, 3)
	end := c.EndOrder()
	it := c.BeginOrder()
	it.Next()
	it.Next()

	require.NoError(t, c.Remove(3))
	_, err := it.Value()
	require.ErrorIs(t, err, collections.ErrOutOfBounds)
	require.False(t, it.Equal(end))
	it.Next()
	require.True(t, it.Equal(end), "end keeps the size it was created with")
}

func TestOrderViewsOfDifferentCollections(t *testing.T) {
	a, b := ints(1, 2, 3), ints(1, 2, 3)
	require.False(t, a.BeginOrder().Equal(b.BeginOrder()))
	require.False(t, a.EndOrder().Equal(b.EndOrder()))
	require.True(t, a.BeginOrder().Equal(a.BeginOrder()))
	require.False(t, a.BeginOrder().Equal(nil))
}

func TestIndependentOrderViews(t *testing.T) {
	c := ints(1, 2, 3)
	first, second := c.BeginOrder(), c.BeginOrder()
	first.Next()
	first.Next()

	v, err := second.Value()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	v, err = first.Value()
	require.NoError(t, err)
	require.Equal(t, 3, v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Reverse order
// ─────────────────────────────────────────────────────────────────────────────

func TestReverseView(t *testing.T) {
	c := ints(10, 20, 30)
	it, end := c.BeginReverse(), c.EndReverse()

	var got []int
	for ; !it.Equal(end); it.Next() {
		v, err := it.Value()
		require.NoError(t, err)
		got = append(got, v)
	}
	require.Equal(t, []int{30, 20, 10}, got)
	require.Equal(t, -1, it.Position())

	it.Next()
	require.True(t, it.Equal(end), "reverse view rests before the first element")
	_, err := it.Value()
	require.ErrorIs(t, err, collections.ErrOutOfBounds)
}

func TestReverseViewEmpty(t *testing.T) {
	c := collections.Empty[string]()
	require.True(t, c.BeginReverse().Equal(c.EndReverse()))
	_, err := c.BeginReverse().Value()
	require.ErrorIs(t, err, collections.ErrOutOfBounds)
}

func TestReverseViewPostNext(t *testing.T) {
	c := ints(10, 20, 30)
	it := c.BeginReverse()
	prev := it.PostNext()

	v, err := prev.Value()
	require.NoError(t, err)
	require.Equal(t, 30, v)
	v, err = it.Value()
	require.NoError(t, err)
	require.Equal(t, 20, v)
}

func TestReverseViewIsLive(t *testing.T) {
	c := ints(10, 20, 30)
	it := c.BeginReverse()

	require.NoError(t, c.Remove(20))
	c.Add(5)

	require.Equal(t, []int{5, 30, 10}, drain[int](t, it, 3))
	require.True(t, it.Equal(c.EndReverse()))
}

func TestReverseViewsOfDifferentCollections(t *testing.T) {
	a, b := ints(1), ints(1)
	require.False(t, a.EndReverse().Equal(b.EndReverse()))
}

// ─────────────────────────────────────────────────────────────────────────────
// Ascending / descending
// ─────────────────────────────────────────────────────────────────────────────

func TestAscendingView(t *testing.T) {
	c := ints(7, 1, 15, 2, 6)
	require.Equal(t, []int{1, 2, 6, 7, 15}, drain[int](t, c.BeginAscending(), 5))

	it, end := c.BeginAscending(), c.EndAscending()
	for i := 0; i < 5; i++ {
		require.False(t, it.Equal(end))
		it.Next()
	}
	require.True(t, it.Equal(end))
}

func TestAscendingViewTypes(t *testing.T) {
	require.Equal(t, []string{"Apple", "Banana", "Cherry"},
		collections.Collect(collections.New("Cherry", "Apple", "Banana").Ascending()))
	require.Equal(t, []float64{-1.5, 0, 2.25},
		collections.Collect(collections.New(2.25, -1.5, 0).Ascending()))
}

func TestAscendingViewIsStable(t *testing.T) {
	c := collections.NewFunc(byAge,
		person{"ann", 30}, person{"bob", 20}, person{"cat", 30}, person{"dan", 20})
	it := c.BeginAscending()
	require.Equal(t, []int{1, 3, 0, 2}, it.Positions())

	names := collections.Collect(collections.Map(c.Ascending(), func(p person) string { return p.name }))
	require.Equal(t, []string{"bob", "dan", "ann", "cat"}, names)
}

func TestAscendingViewTerminalState(t *testing.T) {
	c := ints(3, 1)
	end := c.EndAscending()
	_, err := end.Value()
	require.ErrorIs(t, err, collections.ErrOutOfBounds)

	end.Next()
	prev := end.PostNext()
	require.True(t, end.Equal(c.EndAscending()))
	require.True(t, prev.Equal(end))
	_, err = end.Value()
	require.ErrorIs(t, err, collections.ErrOutOfBounds)
}

func TestAscendingViewPostNext(t *testing.T) {
	c := ints(30, 10, 20)
	it := c.BeginAscending()
	prev := it.PostNext()

	v, err := prev.Value()
	require.NoError(t, err)
	require.Equal(t, 10, v)
	v, err = it.Value()
	require.NoError(t, err)
	require.Equal(t, 20, v)
}

func TestAscendingViewSingleAndEmpty(t *testing.T) {
	single := ints(42)
	require.Equal(t, []int{42}, drain[int](t, single.BeginAscending(), 1))

	empty := collections.Empty[int]()
	require.True(t, empty.BeginAscending().Equal(empty.EndAscending()))
	_, err := empty.BeginAscending().Value()
	require.ErrorIs(t, err, collections.ErrOutOfBounds)
}

func TestAscendingViewSnapshot(t *testing.T) {
	c := ints(10, 30, 20)
	it := c.BeginAscending()
	require.False(t, it.Stale())

	require.NoError(t, c.Remove(20))
	c.Add(5)
	require.True(t, it.Stale())

	// The frozen permutation is [0, 2, 1]; storage is now [10, 30, 5].
	require.Equal(t, []int{10, 5, 30}, drain[int](t, it, 3))
	require.True(t, it.Equal(c.EndAscending()))

	fresh := c.BeginAscending()
	require.False(t, fresh.Stale())
	require.Equal(t, []int{5, 10, 30}, drain[int](t, fresh, 3))
}

func TestAscendingViewAfterShrink(t *testing.T) {
	c := ints(3, 1, 2)
	it := c.BeginAscending() // positions [1, 2, 0]
	require.NoError(t, c.Remove(1))

	// Position 1 now holds 2; position 2 no longer exists.
	v, err := it.Value()
	require.NoError(t, err)
	require.Equal(t, 2, v)
	it.Next()
	_, err = it.Value()
	require.ErrorIs(t, err, collections.ErrOutOfBounds)
}

func TestAscendingViewStaleAfterAnyMutation(t *testing.T) {
	c := ints(1, 2)
	it := c.BeginAscending()
	c.AddAll()
	require.Error(t, c.Remove(9))
	require.False(t, it.Stale(), "no-op calls are not mutations")

	c.Add(3)
	require.True(t, it.Stale())
	require.NoError(t, c.Remove(3))
	require.True(t, it.Stale(), "restored contents still count as mutated")
	require.False(t, c.BeginAscending().Stale())
}

// labelled renders only its label, so elements that sort differently can
// share a fingerprint.
type labelled struct {
	key   int
	label string
}

func (l labelled) String() string { return l.label }

func byKey(a, b labelled) int { return a.key - b.key }

func TestStaleDetectsReorderWithSameRendering(t *testing.T) {
	c := collections.NewFunc(byKey, labelled{1, "x"}, labelled{2, "x"})
	before := c.Fingerprint()
	asc := c.BeginAscending()
	desc := c.BeginDescending()
	side := c.BeginSideCross()
	mid := c.BeginMiddleOut()

	require.NoError(t, c.Remove(labelled{key: 1}))
	c.Add(labelled{0, "x"})
	require.Equal(t, before, c.Fingerprint(), "rendering is unchanged")

	require.True(t, asc.Stale())
	require.True(t, desc.Stale())
	require.True(t, side.Stale())
	require.True(t, mid.Stale())

	// Storage is now [{2 x} {0 x}]; the frozen order still puts position 0 first.
	v, err := asc.Value()
	require.NoError(t, err)
	require.Equal(t, 2, v.key)
	require.Equal(t, []int{1, 0}, c.BeginAscending().Positions())
}

// unprintable panics when rendered, so building a view must not format
// its elements.
type unprintable int

func (unprintable) String() string { panic("rendered") }

func TestSnapshotViewsDoNotRenderElements(t *testing.T) {
	c := collections.NewFunc(func(a, b unprintable) int { return int(a) - int(b) },
		3, 1, 2)
	require.NotPanics(t, func() {
		require.Len(t, c.BeginAscending().Positions(), 3)
		require.Len(t, c.EndDescending().Positions(), 3)
		require.Len(t, c.BeginSideCross().Positions(), 3)
		require.Len(t, c.BeginMiddleOut().Positions(), 3)
		require.False(t, c.BeginAscending().Stale())
	})
	require.Panics(t, func() { c.Fingerprint() })
}

func TestAscendingViewsOfDifferentCollections(t *testing.T) {
	a, b := ints(1, 2), ints(1, 2)
	require.False(t, a.BeginAscending().Equal(b.BeginAscending()))
	require.False(t, a.EndAscending().Equal(b.EndAscending()))
}

func TestIndependentAscendingViews(t *testing.T) {
	c := ints(30, 10, 20)
	first := c.BeginAscending()
	c.Add(5)
	second := c.BeginAscending()

	require.Equal(t, []int{10, 20, 30}, drain[int](t, first, 3))
	require.Equal(t, []int{5, 10, 20, 30}, drain[int](t, second, 4))
}

func TestDescendingView(t *testing.T) {
	c := ints(7, 1, 15, 2, 6)
	require.Equal(t, []int{15, 7, 6, 2, 1}, drain[int](t, c.BeginDescending(), 5))

	it, end := c.BeginDescending(), c.EndDescending()
	for i := 0; i < 5; i++ {
		it.Next()
	}
	require.True(t, it.Equal(end))
	it.Next()
	require.True(t, it.Equal(end))
	_, err := it.Value()
	require.ErrorIs(t, err, collections.ErrOutOfBounds)
}

func TestDescendingViewIsStable(t *testing.T) {
	c := collections.NewFunc(byAge, person{"ann", 30}, person{"bob", 20}, person{"cat", 30})
	require.Equal(t, []int{0, 2, 1}, c.BeginDescending().Positions())
}

func TestDescendingViewPostNextAndSnapshot(t *testing.T) {
	c := ints(10, 30, 20)
	it := c.BeginDescending() // positions [1, 2, 0]
	prev := it.PostNext()
	v, err := prev.Value()
	require.NoError(t, err)
	require.Equal(t, 30, v)

	require.NoError(t, c.Remove(10))
	c.Add(40) // storage [30, 20, 40]
	require.True(t, it.Stale())
	require.Equal(t, []int{40, 30}, drain[int](t, it, 2))
	require.True(t, it.Equal(c.EndDescending()))
	require.False(t, c.EndDescending().Equal(ints(10, 30, 20).EndDescending()))
}

// ─────────────────────────────────────────────────────────────────────────────
// Side-cross
// ─────────────────────────────────────────────────────────────────────────────

func TestSideCrossView(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		want  []int
	}{
		{"odd", []int{7, 1, 15, 2, 6}, []int{1, 15, 2, 7, 6}},
		{"even", []int{4, 1, 3, 2}, []int{1, 4, 2, 3}},
		{"single", []int{9}, []int{9}},
		{"pair", []int{9, 3}, []int{3, 9}},
		{"duplicates", []int{2, 2, 1, 1}, []int{1, 2, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ints(tt.items...)
			it, end := c.BeginSideCross(), c.EndSideCross()
			var got []int
			for ; !it.Equal(end); it.Next() {
				v, err := it.Value()
				require.NoError(t, err)
				got = append(got, v)
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSideCrossViewStrings(t *testing.T) {
	c := collections.New("Banana", "Apple", "Date", "Cherry", "Elder")
	require.Equal(t, []string{"Apple", "Elder", "Banana", "Date", "Cherry"},
		collections.Collect(c.SideCross()))
}

func TestSideCrossViewPositions(t *testing.T) {
	c := ints(7, 1, 15, 2, 6)
	require.Equal(t, []int{1, 2, 3, 0, 4}, c.BeginSideCross().Positions())
	require.Equal(t, []int{}, collections.Empty[int]().BeginSideCross().Positions())
}

func TestSideCrossViewEmpty(t *testing.T) {
	c := collections.Empty[int]()
	require.True(t, c.BeginSideCross().Equal(c.EndSideCross()))
	_, err := c.BeginSideCross().Value()
	require.ErrorIs(t, err, collections.ErrOutOfBounds)
}

func TestSideCrossViewTerminalState(t *testing.T) {
	c := ints(3, 1, 2)
	it := c.BeginSideCross()
	for i := 0; i < 3; i++ {
		it.Next()
	}
	require.True(t, it.Equal(c.EndSideCross()))
	it.Next()
	prev := it.PostNext()
	require.True(t, it.Equal(c.EndSideCross()))
	require.True(t, prev.Equal(it))
	_, err := it.Value()
	require.ErrorIs(t, err, collections.ErrOutOfBounds)
}

func TestSideCrossViewPostNext(t *testing.T) {
	c := ints(7, 1, 15, 2, 6)
	it := c.BeginSideCross()
	prev := it.PostNext()
	v, err := prev.Value()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	v, err = it.Value()
	require.NoError(t, err)
	require.Equal(t, 15, v)
}

func TestSideCrossEndNeverMatchesGrownStorage(t *testing.T) {
	c := ints(2, 1)
	end := c.EndSideCross()
	c.Add(3)
	_, err := end.Value()
	require.ErrorIs(t, err, collections.ErrOutOfBounds)
	require.True(t, end.Stale())
}

func TestSideCrossViewsOfDifferentCollections(t *testing.T) {
	a, b := ints(1, 2), ints(1, 2)
	require.False(t, a.BeginSideCross().Equal(b.BeginSideCross()))
	require.False(t, a.EndSideCross().Equal(b.EndSideCross()))
}

// ─────────────────────────────────────────────────────────────────────────────
// Middle-out
// ─────────────────────────────────────────────────────────────────────────────

func TestMiddleOutView(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		want  []int
	}{
		{"odd", []int{7, 15, 6, 1, 2}, []int{6, 15, 1, 7, 2}},
		{"even", []int{1, 2, 3, 4}, []int{2, 1, 3, 4}},
		{"six", []int{1, 2, 3, 4, 5, 6}, []int{3, 2, 4, 1, 5, 6}},
		{"single", []int{8}, []int{8}},
		{"pair", []int{8, 9}, []int{8, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ints(tt.items...)
			it, end := c.BeginMiddleOut(), c.EndMiddleOut()
			var got []int
			for ; !it.Equal(end); it.Next() {
				v, err := it.Value()
				require.NoError(t, err)
				got = append(got, v)
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMiddleOutVisitsEveryPositionOnce(t *testing.T) {
	for n := 0; n < 12; n++ {
		items := make([]int, n)
		c := ints(items...)
		seen := map[int]bool{}
		for _, p := range c.BeginMiddleOut().Positions() {
			require.False(t, seen[p], "n=%d position %d repeated", n, p)
			seen[p] = true
		}
		require.Len(t, seen, n)
	}
}

func TestMiddleOutViewTerminalState(t *testing.T) {
	c := collections.New("a", "b", "c")
	end := c.EndMiddleOut()
	end.Next()
	require.True(t, end.Equal(c.EndMiddleOut()))
	_, err := end.Value()
	require.ErrorIs(t, err, collections.ErrOutOfBounds)

	empty := collections.Empty[string]()
	require.True(t, empty.BeginMiddleOut().Equal(empty.EndMiddleOut()))
}

func TestMiddleOutViewPostNextAndSnapshot(t *testing.T) {
	c := ints(7, 15, 6, 1, 2)
	it := c.BeginMiddleOut()
	prev := it.PostNext()
	v, err := prev.Value()
	require.NoError(t, err)
	require.Equal(t, 6, v)

	require.NoError(t, c.Remove(6)) // storage [7, 15, 1, 2]
	require.True(t, it.Stale())
	// Frozen positions continue with 1, 3, 0, 4.
	require.Equal(t, []int{15, 2, 7}, drain[int](t, it, 3))
	_, err = it.Value()
	require.ErrorIs(t, err, collections.ErrOutOfBounds)
	require.False(t, c.BeginMiddleOut().Equal(ints(7, 15, 1, 2).BeginMiddleOut()))
}

// ─────────────────────────────────────────────────────────────────────────────
// Cursor interface
// ─────────────────────────────────────────────────────────────────────────────

func TestCursorByOrder(t *testing.T) {
	c := ints(7, 1, 15, 2, 6)
	want := map[collections.Order][]int{
		collections.OrderInsertion:  {7, 1, 15, 2, 6},
		collections.OrderReverse:    {6, 2, 15, 1, 7},
		collections.OrderAscending:  {1, 2, 6, 7, 15},
		collections.OrderDescending: {15, 7, 6, 2, 1},
		collections.OrderSideCross:  {1, 15, 2, 7, 6},
		collections.OrderMiddleOut:  {15, 1, 2, 7, 6},
	}
	for _, o := range collections.Orders() {
		t.Run(o.String(), func(t *testing.T) {
			cur := c.Cursor(o)
			require.Equal(t, want[o], drain[int](t, cur, 5))
			_, err := cur.Value()
			require.ErrorIs(t, err, collections.ErrOutOfBounds)
			require.True(t, strings.Contains(err.Error(), o.String()))
		})
	}
}
