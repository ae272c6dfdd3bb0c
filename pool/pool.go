// Package pool keeps a bounded set of reusable objects in most-recently-used
// order.
//
// An [MRU] pool holds at most MaxCount entries. Pushing into a full pool
// evicts the least recently used entries first. Peek marks an entry as used
// without taking it, Pop takes it out. The current entries are also exposed
// as an observable [collection.List] so that callers can react to pool
// changes.
package pool

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/amp-labs/amp-toolkit/collection"
	"github.com/amp-labs/amp-toolkit/envutil"
	"github.com/amp-labs/amp-toolkit/logger"
)

const defaultMaxCount = 16

// Releaser is implemented by pooled entries that hold resources. Release is
// called when the pool evicts or clears the entry, never when it is popped.
type Releaser interface {
	Release()

	// TargetName names the wrapped object in pool logs.
	TargetName() string
}

// MaxCount reads POOL_MAX_COUNT, defaulting to 16.
func MaxCount() int {
	return envutil.Int[int]("POOL_MAX_COUNT", envutil.Default(defaultMaxCount)).ValueOrElse(defaultMaxCount)
}

type poolOptions struct {
	name   string
	logger *slog.Logger
}

// Option configures an MRU pool.
type Option func(*poolOptions)

// WithName labels the pool's metrics and logs.
func WithName(name string) Option {
	return func(p *poolOptions) {
		p.name = name
	}
}

// WithLogger sets the logger for push, pop and eviction debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(p *poolOptions) {
		p.logger = logger
	}
}

// MRU is a pool of at most MaxCount entries. It is safe for concurrent use.
// Observers of Entries run while the pool is locked and must not call back
// into it.
type MRU[T comparable] struct {
	name     string
	maxCount int
	logger   *slog.Logger

	mu sync.Mutex
	// mru holds entries from least to most recently used.
	mru     []T
	entries *collection.List[T]
}

// NewMRU creates an empty pool. A maxCount of zero or less falls back to
// POOL_MAX_COUNT.
func NewMRU[T comparable](maxCount int, opts ...Option) *MRU[T] {
	options := &poolOptions{
		name: "pool",
	}

	for _, opt := range opts {
		opt(options)
	}

	if options.logger == nil {
		options.logger = logger.Get()
	}

	if maxCount <= 0 {
		maxCount = max(MaxCount(), 1)
	}

	poolEntries.WithLabelValues(options.name).Set(0)
	entriesPushed.WithLabelValues(options.name).Add(0)
	entriesEvicted.WithLabelValues(options.name).Add(0)
	entriesPopped.WithLabelValues(options.name).Add(0)

	return &MRU[T]{
		name:     options.name,
		maxCount: maxCount,
		logger:   options.logger.With("pool", options.name),
		entries:  collection.NewList[T](collection.WithLogger[T](options.logger)),
	}
}

// Name returns the label used in metrics and logs.
func (p *MRU[T]) Name() string {
	return p.name
}

// MaxCount returns the most entries the pool holds.
func (p *MRU[T]) MaxCount() int {
	return p.maxCount
}

// Entries returns the observable list of pooled entries, in the order they
// were pushed. It must only be read; the pool owns its contents.
func (p *MRU[T]) Entries() *collection.List[T] {
	return p.entries
}

// Len returns the number of pooled entries.
func (p *MRU[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.mru)
}

// Push adds entry as the most recently used one. If the pool is full, the
// least recently used entries are evicted, released and returned, oldest
// first.
func (p *MRU[T]) Push(entry T) []T {
	p.mu.Lock()

	var evicted []T

	if len(p.mru) >= p.maxCount {
		n := len(p.mru) - p.maxCount + 1
		evicted = slices.Clone(p.mru[:n])
		p.mru = slices.Delete(p.mru, 0, n)

		_ = p.entries.RemoveRange(evicted)
	}

	p.mru = append(p.mru, entry)
	p.entries.Add(entry)
	size := len(p.mru)

	p.mu.Unlock()

	for _, e := range evicted {
		release(e)
		p.logger.Debug("entry evicted from pool", "entry", targetName(e), "size", size)
	}

	entriesEvicted.WithLabelValues(p.name).Add(float64(len(evicted)))
	entriesPushed.WithLabelValues(p.name).Inc()
	poolEntries.WithLabelValues(p.name).Set(float64(size))

	p.logger.Debug("entry pushed to pool", "entry", targetName(entry), "size", size)

	return evicted
}

// Pop removes and returns the most recently used entry matching match. The
// entry is not released.
func (p *MRU[T]) Pop(match func(T) bool) (T, bool) {
	p.mu.Lock()

	i := p.find(match)
	if i < 0 {
		p.mu.Unlock()

		var zero T

		return zero, false
	}

	entry := p.mru[i]
	p.mru = slices.Delete(p.mru, i, i+1)
	p.entries.Remove(entry)
	size := len(p.mru)

	p.mu.Unlock()

	entriesPopped.WithLabelValues(p.name).Inc()
	poolEntries.WithLabelValues(p.name).Set(float64(size))

	p.logger.Debug("entry popped from pool", "entry", targetName(entry), "size", size)

	return entry, true
}

// Peek returns the most recently used entry matching match and marks it as
// the most recently used one. The pool's size does not change.
func (p *MRU[T]) Peek(match func(T) bool) (T, bool) {
	p.mu.Lock()

	i := p.find(match)
	if i < 0 {
		p.mu.Unlock()

		var zero T

		return zero, false
	}

	entry := p.mru[i]
	p.mru = append(slices.Delete(p.mru, i, i+1), entry)

	p.mu.Unlock()

	p.logger.Debug("entry picked from pool", "entry", targetName(entry))

	return entry, true
}

// Clear releases and removes every entry.
func (p *MRU[T]) Clear() {
	p.mu.Lock()

	cleared := p.mru
	p.mru = nil
	p.entries.Clear()

	p.mu.Unlock()

	for _, e := range cleared {
		release(e)
	}

	poolEntries.WithLabelValues(p.name).Set(0)

	p.logger.Debug("pool cleared", "released", len(cleared))
}

func (p *MRU[T]) find(match func(T) bool) int {
	for i, e := range slices.Backward(p.mru) {
		if match(e) {
			return i
		}
	}

	return -1
}

func release[T any](entry T) {
	if r, ok := any(entry).(Releaser); ok {
		r.Release()
	}
}

func targetName[T any](entry T) string {
	if r, ok := any(entry).(Releaser); ok {
		return r.TargetName()
	}

	return fmt.Sprintf("%T", entry)
}
