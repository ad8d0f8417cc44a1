package collections

import "iter"

// until yields values from begin up to, not including, the first state equal
// to end. It stops early if a dereference fails, which happens when a live
// view runs past a collection that shrank during the walk.
func until[T any, V Cursor[T]](begin, end V, equal func(a, b V) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := begin; !equal(it, end); it.Next() {
			v, err := it.Value()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// Walk returns a sequence over the elements in order o. Snapshot orders are
// resolved when the sequence is first ranged over, and again on every
// subsequent range.
func (c *Collection[T]) Walk(o Order) iter.Seq[T] {
	switch o {
	case OrderReverse:
		return c.Reversed()
	case OrderAscending:
		return c.Ascending()
	case OrderDescending:
		return c.Descending()
	case OrderSideCross:
		return c.SideCross()
	case OrderMiddleOut:
		return c.MiddleOut()
	default:
		return c.InOrder()
	}
}

// InOrder returns a sequence over the elements in insertion order.
func (c *Collection[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		until[T](c.BeginOrder(), c.EndOrder(), (*OrderView[T]).Equal)(yield)
	}
}

// Reversed returns a sequence from the last added element to the first.
func (c *Collection[T]) Reversed() iter.Seq[T] {
	return func(yield func(T) bool) {
		until[T](c.BeginReverse(), c.EndReverse(), (*ReverseView[T]).Equal)(yield)
	}
}

// Ascending returns a sequence from the smallest element to the largest.
func (c *Collection[T]) Ascending() iter.Seq[T] {
	return func(yield func(T) bool) {
		until[T](c.BeginAscending(), c.EndAscending(), (*AscendingView[T]).Equal)(yield)
	}
}

// Descending returns a sequence from the largest element to the smallest.
func (c *Collection[T]) Descending() iter.Seq[T] {
	return func(yield func(T) bool) {
		until[T](c.BeginDescending(), c.EndDescending(), (*DescendingView[T]).Equal)(yield)
	}
}

// SideCross returns a sequence alternating smallest and largest remaining.
func (c *Collection[T]) SideCross() iter.Seq[T] {
	return func(yield func(T) bool) {
		until[T](c.BeginSideCross(), c.EndSideCross(), (*SideCrossView[T]).Equal)(yield)
	}
}

// MiddleOut returns a sequence from the middle element outward.
func (c *Collection[T]) MiddleOut() iter.Seq[T] {
	return func(yield func(T) bool) {
		until[T](c.BeginMiddleOut(), c.EndMiddleOut(), (*MiddleOutView[T]).Equal)(yield)
	}
}
