package collections

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Collection and its views.
var (
	// ErrNotFound is returned by [Collection.Remove] when no element equals
	// the given value. The collection is left unchanged.
	ErrNotFound = errors.New("collections: element not found")

	// ErrOutOfBounds is returned by a view's Value method when its cursor
	// does not address an element of the collection's current storage.
	ErrOutOfBounds = errors.New("collections: dereference out of bounds")

	// ErrUnknownOrder is returned by [ParseOrder] for an unrecognised name.
	ErrUnknownOrder = errors.New("collections: unknown traversal order")
)

// OutOfBoundsError describes a failed dereference. It unwraps to
// [ErrOutOfBounds], so callers may match either with errors.Is or errors.As.
type OutOfBoundsError struct {
	// Order is the traversal the failing view belongs to.
	Order Order
	// Position is the storage index the view tried to read, or -1 when the
	// view sits on its end sentinel.
	Position int
	// Size is the collection size observed at the time of the read.
	Size int
}

func (e *OutOfBoundsError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("%s: %s view is at its end", ErrOutOfBounds, e.Order)
	}
	return fmt.Sprintf("%s: %s view position %d, size %d", ErrOutOfBounds, e.Order, e.Position, e.Size)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

func outOfBounds(o Order, pos, size int) error {
	return &OutOfBoundsError{Order: o, Position: pos, Size: size}
}
