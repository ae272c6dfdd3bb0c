package collection

import "slices"

// Action describes what kind of structural change an event reports.
type Action int

const (
	// ActionAdd reports that Items were added.
	ActionAdd Action = iota
	// ActionRemove reports that Items were removed.
	ActionRemove
	// ActionReset reports that the contents changed in ways not worth
	// describing item by item. Observers should re-read the container.
	ActionReset
)

func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "add"
	case ActionRemove:
		return "remove"
	case ActionReset:
		return "reset"
	default:
		return "unknown"
	}
}

// ChangeEvent describes a structural change to a container.
//
// Index is the position affected by a single-item change, or -1 for range
// and reset events. Reset events carry no Items.
type ChangeEvent[T any] struct {
	Action Action
	Items  []T
	Index  int
}

// Added builds an Add event for items with no position information.
func Added[T any](items ...T) ChangeEvent[T] {
	return ChangeEvent[T]{Action: ActionAdd, Items: items, Index: -1}
}

// Removed builds a Remove event for items with no position information.
func Removed[T any](items ...T) ChangeEvent[T] {
	return ChangeEvent[T]{Action: ActionRemove, Items: items, Index: -1}
}

// Reset builds a Reset event.
func Reset[T any]() ChangeEvent[T] {
	return ChangeEvent[T]{Action: ActionReset, Index: -1}
}

func addedAt[T any](index int, item T) ChangeEvent[T] {
	return ChangeEvent[T]{Action: ActionAdd, Items: []T{item}, Index: index}
}

func removedAt[T any](index int, item T) ChangeEvent[T] {
	return ChangeEvent[T]{Action: ActionRemove, Items: []T{item}, Index: index}
}

// Handler receives change events.
type Handler[T any] func(ChangeEvent[T])

// DowngradeRanges wraps h so that Add and Remove events covering more than
// one item arrive as Reset. Use it for observers that can only apply
// single-item changes incrementally.
func DowngradeRanges[T any](h Handler[T]) Handler[T] {
	return func(e ChangeEvent[T]) {
		if e.Action != ActionReset && len(e.Items) > 1 {
			h(Reset[T]())

			return
		}

		h(e)
	}
}

type subscription[T any] struct {
	id      uint64
	handler Handler[T]
}

// observers is the subscriber list of a container. Handlers run in
// subscription order.
type observers[T any] struct {
	nextID uint64
	subs   []subscription[T]
}

func (o *observers[T]) subscribe(h Handler[T]) func() {
	if h == nil {
		return func() {}
	}

	o.nextID++
	id := o.nextID
	o.subs = append(o.subs, subscription[T]{id: id, handler: h})

	return func() {
		o.subs = slices.DeleteFunc(o.subs, func(s subscription[T]) bool {
			return s.id == id
		})
	}
}

func (o *observers[T]) len() int {
	return len(o.subs)
}

// notify delivers e to a snapshot of the current subscribers, so handlers
// may subscribe or unsubscribe while being notified.
func (o *observers[T]) notify(e ChangeEvent[T]) {
	if len(o.subs) == 0 {
		return
	}

	for _, s := range slices.Clone(o.subs) {
		s.handler(e)
	}
}
