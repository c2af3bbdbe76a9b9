package sortedlist

import (
	"github.com/amp-labs/fastsort/compare"
)

// storage is an array with a logical size. len(items) is the capacity; only
// items[:size] are live. It is not safe for concurrent use; List guards it.
type storage[T any] struct {
	items []T
	size  int
}

func (s *storage[T]) capacity() int {
	return len(s.items)
}

// ensure grows the backing array by doubling (starting from 1) until it can
// hold required elements.
func (s *storage[T]) ensure(required int) {
	if required <= len(s.items) {
		return
	}

	newCap := max(len(s.items)*2, 1)
	for newCap < required {
		newCap *= 2
	}

	grown := make([]T, newCap)
	copy(grown, s.items[:s.size])
	s.items = grown
}

// push places item in the first free slot and returns its index.
func (s *storage[T]) push(item T) int {
	s.ensure(s.size + 1)

	s.items[s.size] = item
	s.size++

	return s.size - 1
}

// settle moves the element at index back toward the front, one adjacent swap
// at a time, until it is no longer less than its predecessor. items[:index]
// must already be sorted; afterwards items[:index+1] is. It returns the number
// of swaps performed. Equal elements are never swapped, but that alone does
// not make the list stable.
func (s *storage[T]) settle(index int, cmp compare.Comparator[T]) int {
	swaps := 0

	for i := index; i > 0; i-- {
		if cmp(s.items[i], s.items[i-1]) >= 0 {
			break
		}

		s.items[i], s.items[i-1] = s.items[i-1], s.items[i]
		swaps++
	}

	return swaps
}

// search returns the index of some element equal to item, not necessarily
// the first one, or -1. Each round checks both bounds before the midpoint and
// the search ends when the midpoint stops moving.
func (s *storage[T]) search(item T, cmp compare.Comparator[T]) int {
	if s.size == 0 {
		return -1
	}

	lo, hi := 0, s.size-1
	last, mid := -1, (lo+hi)/2

	for mid != last {
		if cmp(item, s.items[lo]) == 0 {
			return lo
		}

		if cmp(item, s.items[hi]) == 0 {
			return hi
		}

		last = mid

		switch c := cmp(item, s.items[mid]); {
		case c == 0:
			return mid
		case c > 0:
			lo = mid
		default:
			hi = mid
		}

		mid = (lo + hi) / 2
	}

	return -1
}

// run finds the bounds [lo, hi] of the contiguous block of elements equal to item.
func (s *storage[T]) run(item T, cmp compare.Comparator[T]) (int, int, bool) {
	anchor := s.search(item, cmp)
	if anchor < 0 {
		return 0, 0, false
	}

	lo, hi := anchor, anchor

	for lo > 0 && cmp(item, s.items[lo-1]) == 0 {
		lo--
	}

	for hi < s.size-1 && cmp(item, s.items[hi+1]) == 0 {
		hi++
	}

	return lo, hi, true
}

// cut drops items[lo:hi+1] by copying the prefix and suffix into a fresh array
// of the same capacity. It returns the number of elements removed.
func (s *storage[T]) cut(lo, hi int) int {
	removed := hi - lo + 1

	rebuilt := make([]T, len(s.items))
	copy(rebuilt, s.items[:lo])
	copy(rebuilt[lo:], s.items[hi+1:s.size])

	s.items = rebuilt
	s.size -= removed

	return removed
}

func (s *storage[T]) reset() {
	s.items = nil
	s.size = 0
}

func (s *storage[T]) at(index int) (T, bool) {
	if index < 0 || index >= s.size {
		var zero T

		return zero, false
	}

	return s.items[index], true
}
