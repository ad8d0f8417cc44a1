// Package collections provides [Collection], a generic, insertion-ordered
// sequence that keeps duplicates and can be traversed in six orders without
// ever reordering itself.
//
// # Overview
//
//	c := collections.New(7, 1, 15, 2, 6)
//	fmt.Println(c)                                         // Collection elements: [7, 1, 15, 2, 6]
//	fmt.Println(collections.Collect(c.Ascending()))        // [1 2 6 7 15]
//	fmt.Println(collections.Collect(c.SideCross()))        // [1 15 2 7 6]
//
// Mutation is limited to [Collection.Add] and [Collection.Remove]; Remove
// deletes every occurrence of a value and fails with [ErrNotFound] when there
// is none.
//
// # Orders
//
//   - insertion ([OrderView]): the order elements were added in.
//   - reverse ([ReverseView]): last added first.
//   - ascending ([AscendingView]) and descending ([DescendingView]): sorted,
//     stable for equal elements.
//   - side-cross ([SideCrossView]): smallest, largest, second smallest, ...
//   - middle-out ([MiddleOutView]): the element at (n-1)/2, then alternately
//     its left and right neighbours moving outward.
//
// # Live and snapshot views
//
// Insertion and reverse views are live. They hold a position only and read
// the current storage on every access, so they see elements added or removed
// between steps.
//
// The other four are snapshots. They compute a permutation of storage
// positions when created and never recompute it. They still read current
// storage through that permutation, which means that after a mutation a
// snapshot view may return whatever value now occupies a frozen position, or
// report [ErrOutOfBounds] if the position no longer exists. Stale reports
// whether any Add or successful Remove happened since the permutation was
// resolved; create a new view to get an up-to-date order.
//
// # Cursor protocol
//
// Every view has Value, Next, PostNext and Equal. Value is the only
// operation that can fail. Next is always safe to call: sorted and arranged
// views stop at their end, the reverse view stops before the first element,
// and the insertion view keeps counting past its end. Two views are equal
// only if they come from the same *Collection and sit at the same step.
//
// For range loops use [Collection.Walk] or the per-order helpers such as
// [Collection.Ascending]; for gods-style iteration use [Collection.Iterator].
package collections
