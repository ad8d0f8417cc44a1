package collections

import "github.com/hasbyte1/go-multiorder/internal/logging"

// resolved is a cursor over a permutation of storage positions computed
// once at construction. The permutation is never recomputed; dereferencing
// still reads the collection's current storage, so after a mutation a frozen
// position may hold a different value or none at all.
type resolved[T any] struct {
	c       *Collection[T]
	perm    []int
	pos     int
	order   Order
	version uint64
}

func newResolved[T any](c *Collection[T], o Order, perm []int, atEnd bool) resolved[T] {
	r := resolved[T]{c: c, perm: perm, order: o, version: c.version}
	if atEnd {
		r.pos = len(perm)
	}
	logging.Trace().
		Str("collection", c.cfg.Name).
		Stringer("order", o).
		Int("size", len(perm)).
		Bool("end", atEnd).
		Msg("resolved snapshot view")
	return r
}

func (r *resolved[T]) value() (T, error) {
	if r.pos >= len(r.perm) {
		var zero T
		return zero, outOfBounds(r.order, beforeFirst, r.c.Size())
	}
	at := r.perm[r.pos]
	item, ok := r.c.at(at)
	if !ok {
		return item, outOfBounds(r.order, at, r.c.Size())
	}
	return item, nil
}

// next is clamped: once the cursor reaches len(perm) it stays there.
func (r *resolved[T]) next() {
	if r.pos < len(r.perm) {
		r.pos++
	}
}

func (r *resolved[T]) equal(other *resolved[T]) bool {
	return r.c == other.c && r.pos == other.pos
}

func (r *resolved[T]) stale() bool {
	return r.c.version != r.version
}

// positions returns a copy of the frozen permutation.
func (r *resolved[T]) positions() []int {
	out := make([]int, len(r.perm))
	copy(out, r.perm)
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Ascending
// ─────────────────────────────────────────────────────────────────────────────

// AscendingView walks a collection from its smallest element to its largest.
// Equal elements keep their insertion order.
type AscendingView[T any] struct {
	r resolved[T]
}

// BeginAscending sorts the current contents and returns a view on the
// smallest element.
func (c *Collection[T]) BeginAscending() *AscendingView[T] {
	return &AscendingView[T]{r: newResolved(c, OrderAscending, c.sortedPositions(1), false)}
}

// EndAscending returns the past-the-end ascending view.
func (c *Collection[T]) EndAscending() *AscendingView[T] {
	return &AscendingView[T]{r: newResolved(c, OrderAscending, c.sortedPositions(1), true)}
}

// Value returns the element at the view's frozen position.
func (v *AscendingView[T]) Value() (T, error) { return v.r.value() }

// Next advances the view, stopping at the end.
func (v *AscendingView[T]) Next() { v.r.next() }

// PostNext returns a copy of the view and then advances v.
func (v *AscendingView[T]) PostNext() *AscendingView[T] {
	prev := *v
	v.Next()
	return &prev
}

// Equal reports whether both views belong to the same collection instance
// and sit at the same step.
func (v *AscendingView[T]) Equal(other *AscendingView[T]) bool {
	return other != nil && v.r.equal(&other.r)
}

// Stale reports whether the collection was mutated since the view resolved
// its order, even if the mutations restored the original contents.
func (v *AscendingView[T]) Stale() bool { return v.r.stale() }

// Positions returns the storage positions in the order the view visits them.
func (v *AscendingView[T]) Positions() []int { return v.r.positions() }

// ─────────────────────────────────────────────────────────────────────────────
// Descending
// ─────────────────────────────────────────────────────────────────────────────

// DescendingView walks a collection from its largest element to its
// smallest. Equal elements keep their insertion order.
type DescendingView[T any] struct {
	r resolved[T]
}

// BeginDescending sorts the current contents and returns a view on the
// largest element.
func (c *Collection[T]) BeginDescending() *DescendingView[T] {
	return &DescendingView[T]{r: newResolved(c, OrderDescending, c.sortedPositions(-1), false)}
}

// EndDescending returns the past-the-end descending view.
func (c *Collection[T]) EndDescending() *DescendingView[T] {
	return &DescendingView[T]{r: newResolved(c, OrderDescending, c.sortedPositions(-1), true)}
}

// Value returns the element at the view's frozen position.
func (v *DescendingView[T]) Value() (T, error) { return v.r.value() }

// Next advances the view, stopping at the end.
func (v *DescendingView[T]) Next() { v.r.next() }

// PostNext returns a copy of the view and then advances v.
func (v *DescendingView[T]) PostNext() *DescendingView[T] {
	prev := *v
	v.Next()
	return &prev
}

// Equal reports whether both views belong to the same collection instance
// and sit at the same step.
func (v *DescendingView[T]) Equal(other *DescendingView[T]) bool {
	return other != nil && v.r.equal(&other.r)
}

// Stale reports whether the collection was mutated since the view resolved
// its order, even if the mutations restored the original contents.
func (v *DescendingView[T]) Stale() bool { return v.r.stale() }

// Positions returns the storage positions in the order the view visits them.
func (v *DescendingView[T]) Positions() []int { return v.r.positions() }

// ─────────────────────────────────────────────────────────────────────────────
// Middle-out
// ─────────────────────────────────────────────────────────────────────────────

// MiddleOutView starts at the central storage position, (n-1)/2, and then
// alternates outward: one step left, one step right, and so on. When one
// side runs out the other continues alone.
type MiddleOutView[T any] struct {
	r resolved[T]
}

// middleOut arranges the positions 0..n-1 from the middle outward.
func middleOut(n int) []int {
	if n == 0 {
		return []int{}
	}
	mid := (n - 1) / 2
	out := make([]int, 0, n)
	out = append(out, mid)
	for off := 1; len(out) < n; off++ {
		if l := mid - off; l >= 0 {
			out = append(out, l)
		}
		if r := mid + off; r < n {
			out = append(out, r)
		}
	}
	return out
}

// BeginMiddleOut arranges the current positions and returns a view on the
// middle element.
func (c *Collection[T]) BeginMiddleOut() *MiddleOutView[T] {
	return &MiddleOutView[T]{r: newResolved(c, OrderMiddleOut, middleOut(len(c.items)), false)}
}

// EndMiddleOut returns the past-the-end middle-out view.
func (c *Collection[T]) EndMiddleOut() *MiddleOutView[T] {
	return &MiddleOutView[T]{r: newResolved(c, OrderMiddleOut, middleOut(len(c.items)), true)}
}

// Value returns the element at the view's frozen position.
func (v *MiddleOutView[T]) Value() (T, error) { return v.r.value() }

// Next advances the view, stopping at the end.
func (v *MiddleOutView[T]) Next() { v.r.next() }

// PostNext returns a copy of the view and then advances v.
func (v *MiddleOutView[T]) PostNext() *MiddleOutView[T] {
	prev := *v
	v.Next()
	return &prev
}

// Equal reports whether both views belong to the same collection instance
// and sit at the same step.
func (v *MiddleOutView[T]) Equal(other *MiddleOutView[T]) bool {
	return other != nil && v.r.equal(&other.r)
}

// Stale reports whether the collection was mutated since the view resolved
// its order, even if the mutations restored the original contents.
func (v *MiddleOutView[T]) Stale() bool { return v.r.stale() }

// Positions returns the storage positions in the order the view visits them.
func (v *MiddleOutView[T]) Positions() []int { return v.r.positions() }
