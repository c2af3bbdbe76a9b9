// Package compare provides utilities for comparing and ordering values.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Sortable extends Comparable with an ordering. Types implementing it can be
// kept in sorted containers without supplying a separate Comparator.
type Sortable[T any] interface {
	Comparable[T]

	LessThan(other T) bool
}

// Int is a sortable wrapper type for the built-in int type.
type Int int

var _ Sortable[Int] = (*Int)(nil)

func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}

// String is a sortable wrapper type for the built-in string type.
// Ordering is byte-wise, the same as the < operator on strings.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}
