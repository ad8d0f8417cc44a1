package collections

// Cursor is the behaviour shared by every view a [Collection] produces.
//
// Accept Cursor in code that should work with any traversal order. Views
// additionally provide Equal and PostNext, which are typed per order and so
// cannot be part of this interface.
type Cursor[T any] interface {
	// Value returns the element the cursor addresses in the collection's
	// current storage, or an error wrapping [ErrOutOfBounds] when it
	// addresses none.
	Value() (T, error)

	// Next advances the cursor one step. It never fails; once a view is
	// exhausted further calls leave it where it is (the insertion-order view
	// keeps counting, see [OrderView.Next]).
	Next()
}

var (
	_ Cursor[int] = (*OrderView[int])(nil)
	_ Cursor[int] = (*ReverseView[int])(nil)
	_ Cursor[int] = (*AscendingView[int])(nil)
	_ Cursor[int] = (*DescendingView[int])(nil)
	_ Cursor[int] = (*SideCrossView[int])(nil)
	_ Cursor[int] = (*MiddleOutView[int])(nil)
)

// Cursor returns a view of order o positioned at its first element.
func (c *Collection[T]) Cursor(o Order) Cursor[T] {
	switch o {
	case OrderReverse:
		return c.BeginReverse()
	case OrderAscending:
		return c.BeginAscending()
	case OrderDescending:
		return c.BeginDescending()
	case OrderSideCross:
		return c.BeginSideCross()
	case OrderMiddleOut:
		return c.BeginMiddleOut()
	default:
		return c.BeginOrder()
	}
}
