package collection

import (
	"iter"
	"log/slog"
	"slices"

	"github.com/amp-labs/amp-toolkit/assert"
	"github.com/amp-labs/amp-toolkit/logger"
)

// observable is the storage, gate and subscriber list shared by List and
// SortedList. Its exported methods are promoted onto both containers; the
// containers add the operations whose placement rules differ.
type observable[T any] struct {
	items     []T
	equal     func(a, b T) bool
	gate      *Gate[ChangeEvent[T]]
	observers observers[T]
	logger    *slog.Logger
}

func newObservable[T any](cfg *config[T]) *observable[T] {
	obs := &observable[T]{
		equal:  cfg.equal,
		logger: cfg.logger,
	}

	if obs.logger == nil {
		obs.logger = logger.Get()
	}

	obs.gate = NewGate(obs.observers.notify, Reset[T])

	return obs
}

// Subscribe registers h for change events and returns a function that
// unregisters it. Events are delivered synchronously, in subscription order.
func (o *observable[T]) Subscribe(h Handler[T]) (unsubscribe func()) {
	return o.observers.subscribe(h)
}

// Lock starts (or nests) a batch. Events raised until the matching outermost
// Unlock are coalesced into one.
func (o *observable[T]) Lock() {
	o.gate.Lock()
}

// Unlock ends one level of batching. If this closes the outermost batch and
// anything changed, subscribers receive a single Reset event.
// It returns ErrGateNotLocked when there is no batch to end.
func (o *observable[T]) Unlock() error {
	return o.UnlockWith(Reset[T]())
}

// UnlockWith is Unlock with a caller-supplied coalesced event.
func (o *observable[T]) UnlockWith(e ChangeEvent[T]) error {
	flushing := o.gate.Depth() == 1 && o.gate.HasSuppressed()

	if err := o.gate.UnlockWith(e); err != nil {
		o.logger.Debug("unlock without matching lock", "error", err)

		return err
	}

	if flushing {
		o.logger.Debug("delivered coalesced change",
			"action", e.Action.String(),
			"items", len(e.Items),
			"len", len(o.items))
	}

	return nil
}

// Locked reports whether a batch is in progress.
func (o *observable[T]) Locked() bool {
	return o.gate.Locked()
}

// HasSuppressed reports whether an event was dropped during the current batch.
func (o *observable[T]) HasSuppressed() bool {
	return o.gate.HasSuppressed()
}

// Len returns the number of elements.
func (o *observable[T]) Len() int {
	return len(o.items)
}

// At returns the element at index.
func (o *observable[T]) At(index int) (T, error) {
	if index < 0 || index >= len(o.items) {
		var zero T

		return zero, indexError(index, len(o.items))
	}

	return o.items[index], nil
}

// MustAt returns the element at index and panics when it's out of range.
func (o *observable[T]) MustAt(index int) T {
	item, err := o.At(index)
	assert.NoError(err)

	return item
}

// First returns the first element, if any.
func (o *observable[T]) First() (T, bool) {
	if len(o.items) == 0 {
		var zero T

		return zero, false
	}

	return o.items[0], true
}

// Last returns the last element, if any.
func (o *observable[T]) Last() (T, bool) {
	if len(o.items) == 0 {
		var zero T

		return zero, false
	}

	return o.items[len(o.items)-1], true
}

// All yields (index, element) pairs in order. The container must not be
// mutated while iterating; range over Entries() for that.
func (o *observable[T]) All() iter.Seq2[int, T] {
	return slices.All(o.items)
}

// Values yields the elements in order.
func (o *observable[T]) Values() iter.Seq[T] {
	return slices.Values(o.items)
}

// Entries returns a copy of the elements in order.
func (o *observable[T]) Entries() []T {
	return slices.Clone(o.items)
}

// IndexOf returns the index of the first element equal to item, or -1.
func (o *observable[T]) IndexOf(item T) int {
	return slices.IndexFunc(o.items, func(existing T) bool {
		return o.equal(existing, item)
	})
}

// Contains reports whether an element equal to item is present.
func (o *observable[T]) Contains(item T) bool {
	return o.IndexOf(item) >= 0
}

// RemoveAt removes and returns the element at index.
func (o *observable[T]) RemoveAt(index int) (T, error) {
	item, err := o.At(index)
	if err != nil {
		return item, err
	}

	o.removeAt(index)

	return item, nil
}

// Remove removes the first element equal to item and reports whether one was found.
func (o *observable[T]) Remove(item T) bool {
	index := o.IndexOf(item)
	if index < 0 {
		return false
	}

	o.removeAt(index)

	return true
}

// RemoveFunc removes every element matching pred and returns how many were
// removed. Subscribers see one Remove event listing them, or nothing when
// no element matched.
func (o *observable[T]) RemoveFunc(pred func(T) bool) int {
	var removed []T

	o.gate.Lock()
	defer func() {
		assert.NoError(o.UnlockWith(Removed(removed...)), "remove func")
	}()

	for i := len(o.items) - 1; i >= 0; i-- {
		if pred(o.items[i]) {
			removed = append(removed, o.removeAt(i))
		}
	}

	slices.Reverse(removed)

	return len(removed)
}

// Clear removes every element. Subscribers receive a Remove event listing
// what was removed; clearing an empty container does nothing.
func (o *observable[T]) Clear() {
	if len(o.items) == 0 {
		return
	}

	removed := o.items
	o.items = nil

	o.gate.Raise(Removed(removed...))
}

// RemoveRange removes the first element equal to each of items, in order.
// Items that aren't present are skipped. Subscribers receive one Remove event
// listing what was actually removed.
//
// A nil slice returns ErrNilItems before anything changes; an empty one does
// nothing at all.
func (o *observable[T]) RemoveRange(items []T) error {
	if items == nil {
		return ErrNilItems
	}

	if len(items) == 0 {
		return nil
	}

	removed := make([]T, 0, len(items))

	o.gate.Lock()
	defer func() {
		assert.NoError(o.UnlockWith(Removed(removed...)), "remove range")
	}()

	for _, item := range items {
		if index := o.IndexOf(item); index >= 0 {
			removed = append(removed, o.removeAt(index))
		}
	}

	return nil
}

// addRange runs place for every item inside one batch and announces them
// with a single Add event.
func (o *observable[T]) addRange(items []T, place func(T)) error {
	if items == nil {
		return ErrNilItems
	}

	if len(items) == 0 {
		return nil
	}

	added := slices.Clone(items)

	o.gate.Lock()
	defer func() {
		assert.NoError(o.UnlockWith(Added(added...)), "add range")
	}()

	for _, item := range items {
		place(item)
	}

	return nil
}

// assignAll replaces the contents inside one batch and announces it with
// a single Reset.
func (o *observable[T]) assignAll(items []T, place func(T)) error {
	if items == nil {
		return ErrNilItems
	}

	o.gate.Lock()
	defer func() {
		assert.NoError(o.Unlock(), "assign all")
	}()

	o.Clear()

	return o.addRange(items, place)
}

func (o *observable[T]) insertAt(index int, item T) {
	o.items = slices.Insert(o.items, index, item)
	o.gate.Raise(addedAt(index, item))
}

func (o *observable[T]) removeAt(index int) T {
	item := o.items[index]
	o.items = slices.Delete(o.items, index, index+1)
	o.gate.Raise(removedAt(index, item))

	return item
}
