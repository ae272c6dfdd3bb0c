package collection

// Gate suppresses and coalesces notifications during batched work.
//
// Lock increments a depth counter. While the depth is above zero, Raise drops
// events and remembers that it did. When the outermost Unlock brings the depth
// back to zero and something was dropped, exactly one event is delivered in
// place of everything that was suppressed.
//
// A Gate is not safe for concurrent use.
type Gate[E any] struct {
	depth   int
	dirty   bool
	deliver func(E)
	reset   func() E
}

// NewGate creates a gate that hands events to deliver. reset builds the
// event Unlock delivers when the caller doesn't supply one.
func NewGate[E any](deliver func(E), reset func() E) *Gate[E] {
	return &Gate[E]{
		deliver: deliver,
		reset:   reset,
	}
}

// Lock opens (or nests) a batch.
func (g *Gate[E]) Lock() {
	g.depth++
}

// Raise delivers e immediately when the gate is open. Otherwise the event is
// dropped and the gate is marked dirty. It reports whether e was delivered.
func (g *Gate[E]) Raise(e E) bool {
	if g.depth > 0 {
		g.dirty = true

		return false
	}

	g.deliver(e)

	return true
}

// Unlock closes one level of batching. Closing the outermost level delivers
// the reset event if anything was suppressed.
func (g *Gate[E]) Unlock() error {
	return g.unlock(g.reset)
}

// UnlockWith is Unlock with a caller-supplied coalesced event, for observers
// that can handle something more specific than a reset.
func (g *Gate[E]) UnlockWith(e E) error {
	return g.unlock(func() E { return e })
}

func (g *Gate[E]) unlock(event func() E) error {
	if g.depth == 0 {
		return ErrGateNotLocked
	}

	g.depth--

	if g.depth == 0 && g.dirty {
		g.dirty = false
		g.deliver(event())
	}

	return nil
}

// Locked reports whether a batch is in progress.
func (g *Gate[E]) Locked() bool {
	return g.depth > 0
}

// Depth returns the current nesting depth.
func (g *Gate[E]) Depth() int {
	return g.depth
}

// HasSuppressed reports whether an event was dropped during the current batch.
func (g *Gate[E]) HasSuppressed() bool {
	return g.dirty
}
