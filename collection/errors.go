package collection

import (
	"fmt"

	"github.com/amp-labs/amp-toolkit/errors"
)

var (
	// ErrNilComparator is returned when a SortedList is built without a comparator.
	ErrNilComparator = fmt.Errorf("%w: comparator is nil", errors.ErrInvalidArgument)

	// ErrNilEqual is returned when a List is built without an equality function.
	ErrNilEqual = fmt.Errorf("%w: equality function is nil", errors.ErrInvalidArgument)

	// ErrNilItems is returned by the range operations when given a nil slice.
	// An empty, non-nil slice is a valid no-op.
	ErrNilItems = fmt.Errorf("%w: items is nil", errors.ErrInvalidArgument)

	// ErrIndexOutOfRange is returned for indices outside the container.
	ErrIndexOutOfRange = fmt.Errorf("%w: index out of range", errors.ErrInvalidArgument)

	// ErrGateNotLocked is returned when Unlock is called without a matching Lock.
	ErrGateNotLocked = fmt.Errorf("%w: unlock without matching lock", errors.ErrInvalidState)
)

func indexError(index, length int) error {
	return fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, index, length)
}
