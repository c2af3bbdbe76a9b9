package sortedlist

const (
	notStarted = -1
	finished   = -2
)

// Iterator is a cursor over a List's sorted storage. Like All, it reads the
// live list one element at a time. An Iterator is not safe for concurrent use.
//
//	it := list.Iterator()
//	defer it.Close()
//
//	for it.Next() {
//	    item, _ := it.Current()
//	    ...
//	}
type Iterator[T any] struct {
	core    *core[T]
	index   int
	current T
}

// Next advances to the following element and reports whether there is one.
// Once it returns false it keeps returning false until Reset.
func (it *Iterator[T]) Next() bool {
	if it.index == finished {
		return false
	}

	it.index++

	item, ok := it.core.get(it.index)
	if !ok {
		it.finish()

		return false
	}

	it.current = item

	return true
}

// Current returns the element the iterator is positioned on, or
// ErrInvalidState before the first Next, after the last element, or after Close.
func (it *Iterator[T]) Current() (T, error) {
	if it.index < 0 {
		var zero T

		return zero, ErrInvalidState
	}

	return it.current, nil
}

// Reset rewinds the iterator to before the first element.
func (it *Iterator[T]) Reset() {
	var zero T

	it.index = notStarted
	it.current = zero
}

// Close ends iteration. Further Next calls return false until Reset.
func (it *Iterator[T]) Close() {
	it.finish()
}

func (it *Iterator[T]) finish() {
	var zero T

	it.index = finished
	it.current = zero
}
