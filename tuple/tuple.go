// Package tuple provides small fixed-arity value tuples with structural equality.
package tuple

import (
	"cmp"

	"github.com/amp-labs/fastsort/compare"
)

func NewTuple2[A, B comparable](first A, second B) Tuple2[A, B] {
	return Tuple2[A, B]{
		first:  first,
		second: second,
	}
}

// Tuple2 is a type that represents a pair of values.
type Tuple2[A, B comparable] struct {
	first  A
	second B
}

var _ compare.Comparable[Tuple2[int, int]] = Tuple2[int, int]{}

func (t Tuple2[A, B]) First() A { //nolint:ireturn
	return t.first
}

func (t Tuple2[A, B]) Second() B { //nolint:ireturn
	return t.second
}

// Equals reports whether both fields are equal, position by position.
func (t Tuple2[A, B]) Equals(other Tuple2[A, B]) bool {
	return t.first == other.first && t.second == other.second
}

func NewTuple3[A, B, C comparable](first A, second B, third C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{
		first:  first,
		second: second,
		third:  third,
	}
}

// Tuple3 is a key with two values attached. Two tuples are equal only when
// all three fields are equal in the same positions, so (1, 2, 3) and
// (1, 3, 2) are different.
type Tuple3[A, B, C comparable] struct {
	first  A
	second B
	third  C
}

var _ compare.Comparable[Tuple3[int, int, int]] = Tuple3[int, int, int]{}

func (t Tuple3[A, B, C]) First() A { //nolint:ireturn
	return t.first
}

func (t Tuple3[A, B, C]) Second() B { //nolint:ireturn
	return t.second
}

func (t Tuple3[A, B, C]) Third() C { //nolint:ireturn
	return t.third
}

// Equals reports whether all three fields are equal, position by position.
func (t Tuple3[A, B, C]) Equals(other Tuple3[A, B, C]) bool {
	return t.first == other.first &&
		t.second == other.second &&
		t.third == other.third
}

// Compare3 builds a lexicographic comparator over Tuple3 from one comparator per field.
// A nil field comparator treats that field as always equal.
func Compare3[A, B, C comparable](
	first compare.Comparator[A],
	second compare.Comparator[B],
	third compare.Comparator[C],
) compare.Comparator[Tuple3[A, B, C]] {
	return func(a, b Tuple3[A, B, C]) int {
		if first != nil {
			if r := first(a.first, b.first); r != 0 {
				return r
			}
		}

		if second != nil {
			if r := second(a.second, b.second); r != 0 {
				return r
			}
		}

		if third != nil {
			return third(a.third, b.third)
		}

		return 0
	}
}

// Ordered3 is Compare3 using the natural order of every field.
func Ordered3[A, B, C interface {
	comparable
	cmp.Ordered
}]() compare.Comparator[Tuple3[A, B, C]] {
	return Compare3(compare.Natural[A](), compare.Natural[B](), compare.Natural[C]())
}
