// Package perf times named operations and aggregates the results by category.
//
// An [Analyzer] tracks running timers by name. Stopping a timer with a
// category folds its elapsed time into that category's mean, which
// [Analyzer.Statistics] reports. Stopped timers are also observed in the
// perf_operation_duration_seconds histogram and, when the analyzer has a
// tracer, recorded as spans.
//
// Statistics collection can be switched off with PERF_ENABLED=false, in which
// case timers still run but nothing is recorded.
package perf

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/amp-labs/amp-toolkit/envutil"
	"github.com/amp-labs/amp-toolkit/errors"
	"github.com/amp-labs/amp-toolkit/logger"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"
)

// ErrTimerExists is returned by Start when a timer with the same name is
// already tracked.
var ErrTimerExists = fmt.Errorf("%w: timer already running", errors.ErrInvalidState)

type tracked struct {
	timer *Timer
	span  trace.Span
}

type category struct {
	calls *atomic.Int64
	total *atomic.Duration
}

// Analyzer tracks running timers and per-category statistics. It is safe for
// concurrent use.
type Analyzer struct {
	enabled *atomic.Bool
	tracer  trace.Tracer
	logger  *slog.Logger
	clock   func() time.Time

	mu         sync.Mutex
	timers     map[string]*tracked
	categories map[string]*category
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithTracer records each timer as a span started and ended with it.
func WithTracer(tracer trace.Tracer) Option {
	return func(a *Analyzer) {
		a.tracer = tracer
	}
}

// WithLogger sets the logger for timer debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// WithEnabled overrides PERF_ENABLED.
func WithEnabled(enabled bool) Option {
	return func(a *Analyzer) {
		a.enabled.Store(enabled)
	}
}

// WithClock replaces time.Now.
func WithClock(clock func() time.Time) Option {
	return func(a *Analyzer) {
		a.clock = clock
	}
}

// Enabled reads PERF_ENABLED, defaulting to true.
func Enabled() bool {
	return envutil.Bool("PERF_ENABLED", envutil.Default(true)).ValueOrElse(true)
}

// NewAnalyzer creates an Analyzer. Collection is on unless PERF_ENABLED or
// WithEnabled say otherwise.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		enabled:    atomic.NewBool(Enabled()),
		clock:      time.Now,
		timers:     make(map[string]*tracked),
		categories: make(map[string]*category),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = logger.Get()
	}

	return a
}

var defaultAnalyzer = sync.OnceValue(func() *Analyzer { //nolint:gochecknoglobals
	return NewAnalyzer()
})

// Default returns the process-wide analyzer.
func Default() *Analyzer {
	return defaultAnalyzer()
}

// SetEnabled switches statistics collection on or off at runtime.
func (a *Analyzer) SetEnabled(enabled bool) {
	a.enabled.Store(enabled)
}

// IsEnabled reports whether stopped timers are recorded.
func (a *Analyzer) IsEnabled() bool {
	return a.enabled.Load()
}

// Start creates, tracks and starts a timer called name.
func (a *Analyzer) Start(ctx context.Context, name string) (*Timer, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.timers[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrTimerExists, name)
	}

	return a.startLocked(ctx, name), nil
}

// StartAuto starts a timer with a generated unique name.
func (a *Analyzer) StartAuto(ctx context.Context) *Timer {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.startLocked(ctx, uuid.NewString())
}

// EnsureStart returns the tracked timer called name, starting one if there
// is none.
func (a *Analyzer) EnsureStart(ctx context.Context, name string) *Timer {
	a.mu.Lock()
	defer a.mu.Unlock()

	if t, ok := a.timers[name]; ok {
		return t.timer
	}

	return a.startLocked(ctx, name)
}

func (a *Analyzer) startLocked(ctx context.Context, name string) *Timer {
	t := &tracked{timer: newTimer(name, a.clock)}

	if a.tracer != nil && a.IsEnabled() {
		_, t.span = a.tracer.Start(ctx, name)
	}

	a.timers[name] = t
	runningTimers.Inc()

	t.timer.Start()

	return t.timer
}

// Stop stops the running timer called name and adds its elapsed time to
// category. It reports false, and records nothing, when no such timer is
// tracked or the timer is paused.
func (a *Analyzer) Stop(name, categoryName string) (time.Duration, bool) {
	t, ok := a.untrack(name, func(t *tracked) bool { return t.timer.Running() })
	if !ok {
		return 0, false
	}

	t.timer.Stop()
	elapsed := t.timer.Elapsed()

	if t.span != nil {
		t.span.SetAttributes(
			attribute.String("perf.category", categoryName),
			attribute.Int64("perf.elapsed_ms", elapsed.Milliseconds()),
		)
		t.span.End()
	}

	if a.IsEnabled() {
		a.record(categoryName, elapsed)
	}

	a.logger.Debug("timer stopped", "timer", name, "category", categoryName, "elapsed", elapsed)

	return elapsed, true
}

// EnsureStop stops and forgets the timer called name, whatever its state,
// without recording it.
func (a *Analyzer) EnsureStop(name string) {
	t, ok := a.untrack(name, func(*tracked) bool { return true })
	if !ok {
		return
	}

	t.timer.Stop()

	if t.span != nil {
		t.span.SetAttributes(attribute.Bool("perf.discarded", true))
		t.span.End()
	}
}

func (a *Analyzer) untrack(name string, accept func(*tracked) bool) (*tracked, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	t, ok := a.timers[name]
	if !ok || !accept(t) {
		return nil, false
	}

	delete(a.timers, name)
	runningTimers.Dec()

	return t, true
}

func (a *Analyzer) record(categoryName string, elapsed time.Duration) {
	a.mu.Lock()

	c, ok := a.categories[categoryName]
	if !ok {
		c = &category{calls: atomic.NewInt64(0), total: atomic.NewDuration(0)}
		a.categories[categoryName] = c
	}

	a.mu.Unlock()

	c.calls.Inc()
	c.total.Add(elapsed)

	operationDuration.WithLabelValues(categoryName).Observe(elapsed.Seconds())
}

// PauseAll pauses every tracked timer.
func (a *Analyzer) PauseAll() {
	for _, t := range a.snapshot() {
		t.timer.Pause()
	}
}

// ResumeAll resumes every paused timer.
func (a *Analyzer) ResumeAll() {
	for _, t := range a.snapshot() {
		t.timer.Resume()
	}
}

func (a *Analyzer) snapshot() map[string]*tracked {
	a.mu.Lock()
	defer a.mu.Unlock()

	return maps.Clone(a.timers)
}

// Running returns the number of tracked timers, paused ones included.
func (a *Analyzer) Running() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.timers)
}

// Statistics returns the mean elapsed time per category, rounded to the
// millisecond.
func (a *Analyzer) Statistics() map[string]time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()

	stats := make(map[string]time.Duration, len(a.categories))

	for name, c := range a.categories {
		calls := c.calls.Load()
		if calls == 0 {
			continue
		}

		stats[name] = (c.total.Load() / time.Duration(calls)).Round(time.Millisecond)
	}

	return stats
}
