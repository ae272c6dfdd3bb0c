package perf

import (
	"sync"
	"time"
)

type timerState int

const (
	idle timerState = iota
	running
	paused
	stopped
)

// Timer measures how long an operation takes, excluding time spent paused.
// It is safe for concurrent use.
type Timer struct {
	name  string
	clock func() time.Time

	mu      sync.Mutex
	state   timerState
	since   time.Time
	elapsed time.Duration
}

// NewTimer creates an idle timer.
func NewTimer(name string) *Timer {
	return newTimer(name, time.Now)
}

func newTimer(name string, clock func() time.Time) *Timer {
	return &Timer{name: name, clock: clock}
}

func (t *Timer) Name() string {
	return t.name
}

// Start begins measuring. Starting an idle or stopped timer resets it;
// starting a running or paused timer does nothing.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == running || t.state == paused {
		return
	}

	t.state = running
	t.since = t.clock()
	t.elapsed = 0
}

// Stop ends the measurement. Only a running or paused timer can be stopped.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.state {
	case running:
		t.elapsed += t.clock().Sub(t.since)
	case paused:
	default:
		return
	}

	t.state = stopped
}

// Pause suspends a running timer.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != running {
		return
	}

	t.elapsed += t.clock().Sub(t.since)
	t.state = paused
}

// Resume continues a paused timer.
func (t *Timer) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != paused {
		return
	}

	t.since = t.clock()
	t.state = running
}

// Running reports whether the timer is measuring right now. Paused timers
// are not running.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state == running
}

// Elapsed returns the time measured so far.
func (t *Timer) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == running {
		return t.elapsed + t.clock().Sub(t.since)
	}

	return t.elapsed
}
