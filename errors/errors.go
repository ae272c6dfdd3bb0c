// Package errors holds the error taxonomy shared by every package in the toolkit,
// plus a small accumulator for collecting several failures into one.
package errors

import "errors"

var (
	// ErrInvalidArgument is the root of every "the caller passed something unusable"
	// error: nil collections, nil comparators, out-of-range indices. Nothing has been
	// mutated when one of these is returned, so retrying with a valid argument is safe.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState is the root of every "the object was driven through an illegal
	// transition" error, such as unlocking a notification gate that isn't locked.
	// These are programming errors and retrying won't help.
	ErrInvalidState = errors.New("invalid state")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Use this when you need to collect errors from multiple operations and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns nil for an empty collection, the error itself when there's
// exactly one, and an errors.Join of everything otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
