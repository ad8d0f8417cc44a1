package collections

import "github.com/emirpasic/gods/containers"

var _ containers.IteratorWithIndex = (*Iterator[int])(nil)

// Iterator adapts one traversal order to the stateful iterator protocol of
// github.com/emirpasic/gods, so the six orders can feed code written against
// gods containers.
//
// A new Iterator sits one step before the first element; call Next or First
// to move onto it. Begin resets it and resolves snapshot orders again.
//
//	it := c.Iterator(collections.OrderSideCross)
//	for it.Next() {
//	    fmt.Println(it.Index(), it.Value())
//	}
type Iterator[T any] struct {
	c     *Collection[T]
	order Order
	cur   Cursor[T]
	index int
	value T
}

// Iterator returns a gods-compatible iterator over order o.
func (c *Collection[T]) Iterator(o Order) *Iterator[T] {
	it := &Iterator[T]{c: c, order: o}
	it.Begin()
	return it
}

// Next moves to the next element and reports whether there was one.
func (it *Iterator[T]) Next() bool {
	if it.cur == nil {
		it.cur = it.c.Cursor(it.order)
	} else {
		it.cur.Next()
	}
	v, err := it.cur.Value()
	if err != nil {
		var zero T
		it.value = zero
		return false
	}
	it.index++
	it.value = v
	return true
}

// Value returns the current element as an interface{} value.
func (it *Iterator[T]) Value() interface{} { return it.value }

// Typed returns the current element without boxing.
func (it *Iterator[T]) Typed() T { return it.value }

// Index returns the step number of the current element, starting at 0.
func (it *Iterator[T]) Index() int { return it.index }

// Begin resets the iterator to its one-before-first state.
func (it *Iterator[T]) Begin() {
	var zero T
	it.cur = nil
	it.index = -1
	it.value = zero
}

// First moves the iterator to the first element and reports whether there
// is one.
func (it *Iterator[T]) First() bool {
	it.Begin()
	return it.Next()
}

// NextTo moves the iterator to the next element for which f returns true
// and reports whether such an element exists.
func (it *Iterator[T]) NextTo(f func(index int, value interface{}) bool) bool {
	for it.Next() {
		if f(it.index, it.value) {
			return true
		}
	}
	return false
}
