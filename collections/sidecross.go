package collections

import "github.com/hasbyte1/go-multiorder/internal/logging"

// SideCrossView alternates between the ends of the ascending order:
// smallest, largest, second smallest, second largest, ... until the two
// ends meet. For an odd size the last element visited is the median.
//
// Like the other sorted views it resolves the ascending permutation once and
// then reads current storage by the frozen positions.
type SideCrossView[T any] struct {
	c        *Collection[T]
	sorted   []int
	left     int
	right    int
	leftTurn bool
	// cur is the storage position exposed by Value, beforeFirst at the end.
	cur     int
	version uint64
}

func newSideCross[T any](c *Collection[T], atEnd bool) *SideCrossView[T] {
	sorted := c.sortedPositions(1)
	v := &SideCrossView[T]{
		c:        c,
		sorted:   sorted,
		left:     0,
		right:    len(sorted) - 1,
		leftTurn: true,
		cur:      beforeFirst,
		version:  c.version,
	}
	if atEnd || len(sorted) == 0 {
		v.left, v.right = len(sorted), len(sorted)-1
	} else {
		v.cur = sorted[0]
	}
	logging.Trace().
		Str("collection", c.cfg.Name).
		Stringer("order", OrderSideCross).
		Int("size", len(sorted)).
		Bool("end", atEnd).
		Msg("resolved snapshot view")
	return v
}

// BeginSideCross sorts the current contents and returns a view on the
// smallest element.
func (c *Collection[T]) BeginSideCross() *SideCrossView[T] { return newSideCross(c, false) }

// EndSideCross returns the past-the-end side-cross view.
func (c *Collection[T]) EndSideCross() *SideCrossView[T] { return newSideCross(c, true) }

// Value returns the element at the exposed storage position.
func (v *SideCrossView[T]) Value() (T, error) {
	item, ok := v.c.at(v.cur)
	if !ok {
		return item, outOfBounds(OrderSideCross, v.cur, v.c.Size())
	}
	return item, nil
}

// Next moves the pointer whose turn it is and exposes the element at the
// other end. Once the pointers cross the view rests on its end sentinel.
func (v *SideCrossView[T]) Next() {
	if v.cur == beforeFirst {
		return
	}
	if v.leftTurn {
		v.left++
	} else {
		v.right--
	}
	v.leftTurn = !v.leftTurn

	switch {
	case v.left > v.right:
		v.cur = beforeFirst
	case v.leftTurn:
		v.cur = v.sorted[v.left]
	default:
		v.cur = v.sorted[v.right]
	}
}

// PostNext returns a copy of the view and then advances v.
func (v *SideCrossView[T]) PostNext() *SideCrossView[T] {
	prev := *v
	v.Next()
	return &prev
}

// Equal reports whether both views belong to the same collection instance
// and expose the same storage position.
func (v *SideCrossView[T]) Equal(other *SideCrossView[T]) bool {
	return other != nil && v.c == other.c && v.cur == other.cur
}

// Stale reports whether the collection was mutated since the view resolved
// its order, even if the mutations restored the original contents.
func (v *SideCrossView[T]) Stale() bool { return v.c.version != v.version }

// Positions returns the storage positions in the order a fresh view visits
// them.
func (v *SideCrossView[T]) Positions() []int {
	out := make([]int, 0, len(v.sorted))
	for l, r := 0, len(v.sorted)-1; l <= r; {
		out = append(out, v.sorted[l])
		l++
		if l <= r {
			out = append(out, v.sorted[r])
			r--
		}
	}
	return out
}
