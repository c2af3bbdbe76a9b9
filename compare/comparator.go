package compare

import (
	"cmp"

	"facette.io/natsort"
)

// Comparator defines a total order over T. It returns a negative number when
// a sorts before b, zero when they are equal and a positive number otherwise.
// Only the sign of the result is significant.
//
// A Comparator must be consistent for the lifetime of whatever container
// holds it. Containers do not detect inconsistent or non-total comparators;
// the resulting order is simply undefined.
type Comparator[T any] func(a, b T) int

// Natural returns the comparator for the natural order of an ordered type.
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// FromSortable adapts a Sortable type's own LessThan/Equals methods into a Comparator.
func FromSortable[T Sortable[T]]() Comparator[T] {
	return func(a, b T) int {
		switch {
		case a.Equals(b):
			return 0
		case a.LessThan(b):
			return -1
		default:
			return 1
		}
	}
}

// NaturalStrings orders strings the way a human would, so that "file2"
// sorts before "file10".
func NaturalStrings() Comparator[string] {
	return func(a, b string) int {
		switch {
		case a == b:
			return 0
		case natsort.Compare(a, b):
			return -1
		case natsort.Compare(b, a):
			return 1
		default:
			return 0
		}
	}
}

// Reverse inverts the order of the given comparator.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	if c == nil {
		return nil
	}

	return func(a, b T) int {
		return c(b, a)
	}
}

// Then returns a comparator that orders by c and breaks ties with next.
//
// Example:
//
//	byAge := func(a, b Person) int { return cmp.Compare(a.Age, b.Age) }
//	byName := func(a, b Person) int { return cmp.Compare(a.Name, b.Name) }
//	ordered := compare.Then(byAge, byName)
func Then[T any](c Comparator[T], next Comparator[T]) Comparator[T] {
	switch {
	case c == nil:
		return next
	case next == nil:
		return c
	}

	return func(a, b T) int {
		if r := c(a, b); r != 0 {
			return r
		}

		return next(a, b)
	}
}

// Equal reports whether a and b are equal under c.
func Equal[T any](c Comparator[T], a, b T) bool {
	return c(a, b) == 0
}
