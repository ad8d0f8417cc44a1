package collections

// OrderView walks a collection in insertion order.
//
// It stores nothing but a position and reads the collection's current
// storage on every call to Value, so elements added or removed after the
// view was created are observed at the next access.
type OrderView[T any] struct {
	c   *Collection[T]
	pos int
}

// BeginOrder returns an insertion-order view on the first element.
func (c *Collection[T]) BeginOrder() *OrderView[T] {
	return &OrderView[T]{c: c}
}

// EndOrder returns the past-the-end insertion-order view. Its position is
// the size at the time of the call and does not follow later mutation.
func (c *Collection[T]) EndOrder() *OrderView[T] {
	return &OrderView[T]{c: c, pos: len(c.items)}
}

// Value returns the element at the view's position.
func (v *OrderView[T]) Value() (T, error) {
	item, ok := v.c.at(v.pos)
	if !ok {
		return item, outOfBounds(OrderInsertion, v.pos, v.c.Size())
	}
	return item, nil
}

// Next moves one position forward. It does not check bounds: the view may
// be advanced past its end sentinel, and only Value reports the overrun.
func (v *OrderView[T]) Next() { v.pos++ }

// PostNext returns a copy of the view and then advances v.
func (v *OrderView[T]) PostNext() *OrderView[T] {
	prev := *v
	v.Next()
	return &prev
}

// Equal reports whether both views belong to the same collection instance
// and sit at the same position.
func (v *OrderView[T]) Equal(other *OrderView[T]) bool {
	return other != nil && v.c == other.c && v.pos == other.pos
}

// Position returns the storage index the view addresses.
func (v *OrderView[T]) Position() int { return v.pos }

// beforeFirst marks a reverse view that has stepped past the first element.
const beforeFirst = -1

// ReverseView walks a collection from the last added element to the first.
// Like [OrderView] it is live.
type ReverseView[T any] struct {
	c   *Collection[T]
	pos int
}

// BeginReverse returns a reverse view on the last element, or the end view
// when the collection is empty.
func (c *Collection[T]) BeginReverse() *ReverseView[T] {
	return &ReverseView[T]{c: c, pos: len(c.items) - 1}
}

// EndReverse returns the reverse view positioned before the first element.
func (c *Collection[T]) EndReverse() *ReverseView[T] {
	return &ReverseView[T]{c: c, pos: beforeFirst}
}

// Value returns the element at the view's position.
func (v *ReverseView[T]) Value() (T, error) {
	item, ok := v.c.at(v.pos)
	if !ok {
		return item, outOfBounds(OrderReverse, v.pos, v.c.Size())
	}
	return item, nil
}

// Next moves one position toward the first element and stops before it.
func (v *ReverseView[T]) Next() {
	if v.pos > beforeFirst {
		v.pos--
	}
}

// PostNext returns a copy of the view and then advances v.
func (v *ReverseView[T]) PostNext() *ReverseView[T] {
	prev := *v
	v.Next()
	return &prev
}

// Equal reports whether both views belong to the same collection instance
// and sit at the same position.
func (v *ReverseView[T]) Equal(other *ReverseView[T]) bool {
	return other != nil && v.c == other.c && v.pos == other.pos
}

// Position returns the storage index the view addresses, -1 once the view
// has passed the first element.
func (v *ReverseView[T]) Position() int { return v.pos }
