// Package envutil reads typed configuration from environment variables.
//
// Every reader returns a Reader, which records whether the variable was present
// and whether parsing failed, so callers decide how strict to be:
//
//	level := envutil.SlogLevel("LOG_LEVEL", envutil.Default(slog.LevelInfo)).ValueOrFatal()
//	max := envutil.Int[int]("POOL_MAX_COUNT").ValueOrElse(16)
package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidLogLevel is returned when a log level string is not recognized.
var ErrInvalidLogLevel = errors.New("invalid log level")

// Intish is the set of signed integer types Int can produce.
type Intish interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the raw value of key.
func String(key string, opts ...Option[string]) Reader[string] {
	return apply(get(key), opts)
}

// StringList splits a comma-separated value, trimming blanks and dropping
// empty entries.
func StringList(key string, opts ...Option[[]string]) Reader[[]string] {
	rdr := Map(get(key), func(value string) ([]string, error) {
		var out []string

		for part := range strings.SplitSeq(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}

		return out, nil
	})

	return apply(rdr, opts)
}

// Bool parses the value with strconv.ParseBool.
func Bool(key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(key), strconv.ParseBool), opts)
}

// Int parses a base-10 integer.
func Int[I Intish](key string, opts ...Option[I]) Reader[I] {
	rdr := Map(get(key), func(value string) (I, error) {
		parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)

		return I(parsed), err
	})

	return apply(rdr, opts)
}

// Duration parses the value with time.ParseDuration.
func Duration(key string, opts ...Option[time.Duration]) Reader[time.Duration] {
	return apply(Map(get(key), time.ParseDuration), opts)
}

// SlogLevel accepts debug, info, warn and error in any case.
func SlogLevel(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	rdr := Map(get(key), parseSlogLevel)

	return apply(rdr, opts)
}

func parseSlogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}
