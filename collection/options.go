package collection

import "log/slog"

type config[T any] struct {
	items     []T
	equal     func(a, b T) bool
	linearMax int
	logger    *slog.Logger
}

// Option configures a List or SortedList at construction.
type Option[T any] func(*config[T])

// WithItems seeds the container. A SortedList inserts them one at a time
// through the sorted-insert path, so they needn't be sorted.
func WithItems[T any](items ...T) Option[T] {
	return func(c *config[T]) {
		c.items = append(c.items, items...)
	}
}

// WithEqual sets the equality used by Remove, RemoveRange, IndexOf and
// Contains. A SortedList defaults to "the comparator returns zero".
func WithEqual[T any](equal func(a, b T) bool) Option[T] {
	return func(c *config[T]) {
		c.equal = equal
	}
}

// WithLinearSearchMax tunes the span below which SortedList scans linearly
// instead of bisecting. See SearchInsertion.
func WithLinearSearchMax[T any](n int) Option[T] {
	return func(c *config[T]) {
		c.linearMax = n
	}
}

// WithLogger sets the logger used for debug output about batching.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(c *config[T]) {
		c.logger = logger
	}
}

func newConfig[T any](opts []Option[T]) *config[T] {
	cfg := &config[T]{
		linearMax: DefaultLinearSearchMax,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
