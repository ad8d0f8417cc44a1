package collections

import (
	"cmp"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/hasbyte1/go-multiorder/internal/logging"
)

// Collection is a mutable, insertion-ordered sequence of T that allows
// duplicates and hands out six kinds of traversal views.
//
// Only [Collection.Add] and [Collection.Remove] change the stored sequence;
// creating or walking a view never reorders it.
//
// # Creating a collection
//
//	c := collections.New(7, 1, 15, 2, 6)
//	c := collections.NewFunc(strings.Compare, "b", "a")
//	c := collections.Empty[int]()
//
// # Views
//
// Views come in begin/end pairs, one pair per [Order]. Insertion and reverse
// views are live: they keep only a position and read the current storage on
// every access. The four sorted or arranged views resolve a permutation of
// storage positions once, when they are created, and keep it:
//
//	for it, end := c.BeginAscending(), c.EndAscending(); !it.Equal(end); it.Next() {
//	    v, _ := it.Value()
//	    fmt.Println(v)
//	}
//
// The same walk is available as a range-over-func sequence:
//
//	for v := range c.Ascending() {
//	    fmt.Println(v)
//	}
//
// A Collection is not safe for concurrent use. Mutating it while another
// goroutine walks one of its views is a data race; callers must serialise
// access themselves.
type Collection[T any] struct {
	items   []T
	compare func(a, b T) int
	cfg     Config
	version uint64 // bumped by every successful mutation
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection of an ordered element type, appending items in
// the order given.
func New[T constraints.Ordered](items ...T) *Collection[T] {
	return NewFunc(cmp.Compare[T], items...)
}

// Empty creates an empty Collection of an ordered element type.
func Empty[T constraints.Ordered]() *Collection[T] {
	return New[T]()
}

// NewFunc creates a Collection whose elements are compared with compare.
// compare must return a negative number when a < b, zero when a equals b
// and a positive number when a > b; it must describe a total order. It
// provides both the equality used by [Collection.Remove] and the ordering
// used by the sorted views.
func NewFunc[T any](compare func(a, b T) int, items ...T) *Collection[T] {
	if compare == nil {
		panic("collections: NewFunc called with a nil compare function")
	}
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{
		items:   dst,
		compare: compare,
		cfg:     DefaultConfig(),
	}
}

// Configure applies cfg to c and returns c for chaining. Empty fields fall
// back to their defaults.
func (c *Collection[T]) Configure(cfg Config) *Collection[T] {
	c.cfg = cfg.withDefaults()
	return c
}

// Name returns the display name used by [Collection.String].
func (c *Collection[T]) Name() string { return c.cfg.Name }

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Add appends value at the end. Size grows by exactly one.
func (c *Collection[T]) Add(value T) {
	c.items = append(c.items, value)
	c.version++
}

// AddAll appends values in the order given. Calling it with no values is
// not a mutation.
func (c *Collection[T]) AddAll(values ...T) {
	if len(values) == 0 {
		return
	}
	c.items = append(c.items, values...)
	c.version++
}

// Remove deletes every element equal to value, keeping the relative order of
// the rest. It returns an error wrapping [ErrNotFound] and leaves the
// collection untouched when nothing matched.
//
// Live views observe the shorter sequence immediately. Snapshot views that
// already exist keep their permutation and may now address different values
// or run past the end (see [AscendingView.Stale]).
func (c *Collection[T]) Remove(value T) error {
	kept := c.items[:0:0]
	for _, item := range c.items {
		if c.compare(item, value) != 0 {
			kept = append(kept, item)
		}
	}
	removed := len(c.items) - len(kept)
	if removed == 0 {
		logging.Debug().
			Str("collection", c.cfg.Name).
			Str("value", fmt.Sprint(value)).
			Msg("remove matched no element")
		return fmt.Errorf("%w: %v", ErrNotFound, value)
	}
	c.items = kept
	c.version++
	logging.Trace().
		Str("collection", c.cfg.Name).
		Int("removed", removed).
		Int("size", len(kept)).
		Msg("removed elements")
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Size returns the current number of elements.
func (c *Collection[T]) Size() int { return len(c.items) }

// IsEmpty reports whether the collection holds no elements.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// Elements returns a copy of the contents in insertion order.
func (c *Collection[T]) Elements() []T {
	return slices.Clone(c.items)
}

// Contains reports whether at least one element equals value.
func (c *Collection[T]) Contains(value T) bool {
	return c.Count(value) > 0
}

// Count returns how many elements equal value.
func (c *Collection[T]) Count(value T) int {
	n := 0
	for _, item := range c.items {
		if c.compare(item, value) == 0 {
			n++
		}
	}
	return n
}

// String renders the collection as "<Name> elements: [e1, e2, ..., en]".
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	var b strings.Builder
	b.WriteString(c.cfg.Name)
	b.WriteString(" elements: [")
	for i, item := range c.items {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, item)
	}
	b.WriteByte(']')
	return b.String()
}

// at reads storage position i, reporting false when i is outside the
// current bounds.
func (c *Collection[T]) at(i int) (T, bool) {
	if i < 0 || i >= len(c.items) {
		var zero T
		return zero, false
	}
	return c.items[i], true
}

// sortedPositions returns the storage positions 0..n-1 stably sorted by the
// element each one addresses. dir is 1 for ascending and -1 for descending.
func (c *Collection[T]) sortedPositions(dir int) []int {
	perm := make([]int, len(c.items))
	for i := range perm {
		perm[i] = i
	}
	slices.SortStableFunc(perm, func(a, b int) int {
		return dir * c.compare(c.items[a], c.items[b])
	})
	return perm
}
