// Package assert provides panicking checks for invariants that cannot be
// violated through a package's public API. A failed assertion is a bug in
// the calling package, not a condition callers are expected to handle.
package assert

import "fmt"

// True panics when value is false.
// If the first arg is a string it is used as a format string for the rest.
func True(value bool, args ...any) {
	if value {
		return
	}

	if len(args) == 0 {
		panic("assertion failed")
	}

	if format, ok := args[0].(string); ok {
		panic(fmt.Sprintf(format, args[1:]...))
	}

	panic(fmt.Sprintf("assertion failed: %v", args))
}

// False panics when value is true.
func False(value bool, args ...any) {
	True(!value, args...)
}

// NoError panics when err is non-nil. The panic value wraps err so it stays
// inspectable by whoever recovers it.
func NoError(err error, args ...any) {
	if err == nil {
		return
	}

	if len(args) > 0 {
		if format, ok := args[0].(string); ok {
			panic(fmt.Errorf("%s: %w", fmt.Sprintf(format, args[1:]...), err))
		}
	}

	panic(fmt.Errorf("assertion failed: %w", err))
}
