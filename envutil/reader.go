//nolint:ireturn
package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

var (
	ErrBadEnvVar     = errors.New("error parsing environment variable")
	ErrEnvVarMissing = errors.New("missing environment variable")
)

// Reader is a value read from an environment variable, along with whether it
// was present and whether parsing it failed. Transformations chain through Map
// and stop at the first error.
type Reader[A any] struct {
	key     string
	present bool
	err     error

	value A
}

// NewReader builds a Reader from raw data instead of the process environment.
func NewReader[A any](key string, present bool, err error, value A) Reader[A] {
	return Reader[A]{
		key:     key,
		present: present,
		err:     err,
		value:   value,
	}
}

// Key returns the key of the environment variable.
func (e Reader[A]) Key() string {
	return e.key
}

// Value returns the value, or an error if it is missing or failed to parse.
func (e Reader[A]) Value() (A, error) {
	if e.err != nil {
		return e.value, fmt.Errorf("%w %s: %w", ErrBadEnvVar, e.key, e.err)
	}

	if !e.present {
		return e.value, fmt.Errorf("%w %s", ErrEnvVarMissing, e.key)
	}

	return e.value, nil
}

// ValueOrPanic returns the value or panics.
func (e Reader[A]) ValueOrPanic() A {
	value, err := e.Value()
	if err != nil {
		panic(err)
	}

	return value
}

// ValueOrFatal returns the value, or logs and exits the program.
func (e Reader[A]) ValueOrFatal() A {
	value, err := e.Value()
	if err != nil {
		slog.Error("error reading environment variable", "key", e.key, "error", err)
		os.Exit(1)
	}

	return value
}

// ValueOrElse returns the value, or v if the variable is missing or bad.
// A bad value is logged before falling back.
func (e Reader[A]) ValueOrElse(v A) A {
	if e.present && e.err == nil {
		return e.value
	}

	if e.err != nil {
		slog.Warn("error reading environment variable, using fallback value",
			"key", e.key, "error", e.err, "fallback", v)
	}

	return v
}

// DoWithValue calls f only when the value is present and parsed cleanly.
func (e Reader[A]) DoWithValue(f func(A)) {
	if e.present && e.err == nil {
		f(e.value)
	}
}

// HasValue returns true if the variable was set and parsed cleanly.
func (e Reader[A]) HasValue() bool {
	return e.present && e.err == nil
}

// HasError returns true if reading or transforming the variable failed.
func (e Reader[A]) HasError() bool {
	return e.err != nil
}

func (e Reader[A]) String() string {
	if e.present && e.err == nil {
		return fmt.Sprintf("%s=%v", e.key, e.value)
	}

	if e.err != nil {
		return fmt.Sprintf("%s=<error: %v>", e.key, e.err)
	}

	return e.key + "=<not set>"
}

// WithDefault fills in v when the variable is missing. A present value,
// even a bad one, is left alone.
func (e Reader[A]) WithDefault(v A) Reader[A] {
	if e.present {
		return e
	}

	return Reader[A]{
		key:     e.key,
		present: true,
		err:     e.err,
		value:   v,
	}
}

// Map transforms the value in place, keeping the type.
func (e Reader[A]) Map(f func(A) (A, error)) Reader[A] {
	return Map(e, f)
}

// Map transforms a Reader's value into another type. Missing values and
// earlier errors pass through untouched.
func Map[A any, B any](env Reader[A], f func(A) (B, error)) Reader[B] {
	if !env.present || env.err != nil {
		return Reader[B]{
			key:     env.key,
			present: env.present,
			err:     env.err,
		}
	}

	val, err := f(env.value)

	return Reader[B]{
		key:     env.key,
		present: true,
		err:     err,
		value:   val,
	}
}
