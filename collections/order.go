package collections

import (
	"fmt"
	"strings"
)

// Order identifies one of the six traversals a [Collection] can produce.
type Order int

const (
	// OrderInsertion walks elements in the order they were added.
	OrderInsertion Order = iota
	// OrderReverse walks from the most recently added element to the first.
	OrderReverse
	// OrderAscending walks from the smallest element to the largest.
	OrderAscending
	// OrderDescending walks from the largest element to the smallest.
	OrderDescending
	// OrderSideCross alternates between the smallest and the largest
	// remaining element.
	OrderSideCross
	// OrderMiddleOut starts at the central position and alternates outward,
	// left neighbour first.
	OrderMiddleOut
)

var orderNames = [...]string{
	OrderInsertion:  "insertion",
	OrderReverse:    "reverse",
	OrderAscending:  "ascending",
	OrderDescending: "descending",
	OrderSideCross:  "side-cross",
	OrderMiddleOut:  "middle-out",
}

// Orders returns every traversal order in declaration order.
func Orders() []Order {
	return []Order{OrderInsertion, OrderReverse, OrderAscending, OrderDescending, OrderSideCross, OrderMiddleOut}
}

// String returns the order's canonical name, e.g. "side-cross".
func (o Order) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return fmt.Sprintf("Order(%d)", int(o))
	}
	return orderNames[o]
}

// Live reports whether views of this order read through to the collection on
// every access instead of freezing a permutation at construction.
func (o Order) Live() bool {
	return o == OrderInsertion || o == OrderReverse
}

// ParseOrder maps a name to its Order. Matching ignores case and accepts
// underscores or no separator in place of the hyphen ("middle_out",
// "MiddleOut"). "order" is accepted as an alias for insertion.
func ParseOrder(name string) (Order, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	switch key {
	case "insertion", "order":
		return OrderInsertion, nil
	case "reverse":
		return OrderReverse, nil
	case "ascending", "asc":
		return OrderAscending, nil
	case "descending", "desc":
		return OrderDescending, nil
	case "sidecross":
		return OrderSideCross, nil
	case "middleout":
		return OrderMiddleOut, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
}
