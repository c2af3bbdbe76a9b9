package sortedlist

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned by At for an index outside [0, Count()).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidState is returned by Iterator.Current when the iterator is not
	// positioned on an element: before the first Next, after the last, or after Close.
	ErrInvalidState = errors.New("iterator is not positioned on an element")

	// ErrNilComparator is the panic value when a list is built without a comparator.
	ErrNilComparator = errors.New("nil comparator")

	// ErrPanicRecovery wraps a panic recovered on the background sorter.
	ErrPanicRecovery = errors.New("recovered from panic")
)

func indexError(index, count int) error {
	return fmt.Errorf("%w: index %d, count %d", ErrIndexOutOfRange, index, count)
}

func panicError(recovered any, stack []byte) error {
	if err, ok := recovered.(error); ok {
		return fmt.Errorf("%w: %w\nstack trace:\n%s", ErrPanicRecovery, err, string(stack))
	}

	return fmt.Errorf("%w: %v\nstack trace:\n%s", ErrPanicRecovery, recovered, string(stack))
}
