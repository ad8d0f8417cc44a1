package collections

// This file contains package-level generic functions over the sequences a
// Collection produces. Go generics do not allow methods to introduce their
// own type parameters, so transformations that change the element type are
// stand-alone functions:
//
//	labels := collections.Map(c.Ascending(), strconv.Itoa)

import (
	"fmt"
	"iter"
	"strings"
)

// Collect gathers every value of seq into a slice. It never returns nil.
//
//	collections.Collect(collections.New(3, 1, 2).Ascending()) // → [1 2 3]
func Collect[T any](seq iter.Seq[T]) []T {
	out := []T{}
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// Map returns a sequence yielding fn(v) for every v in seq.
func Map[T, U any](seq iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Reduce folds seq into a single value, starting from initial.
//
//	sum := collections.Reduce(c.InOrder(), func(acc, n int) int { return acc + n }, 0)
func Reduce[T, U any](seq iter.Seq[T], fn func(U, T) U, initial U) U {
	result := initial
	for v := range seq {
		result = fn(result, v)
	}
	return result
}

// Join renders every value of seq with "%v" and joins them with sep.
//
//	collections.Join(c.MiddleOut(), " ") // → "6 15 1 7 2"
func Join[T any](seq iter.Seq[T], sep string) string {
	var b strings.Builder
	first := true
	for v := range seq {
		if !first {
			b.WriteString(sep)
		}
		first = false
		fmt.Fprint(&b, v)
	}
	return b.String()
}
