package collection

// List is an observable list that keeps elements in insertion order.
//
// Besides the single-item operations it supports AddRange, RemoveRange and
// AssignAll, each of which notifies subscribers exactly once. Clear reports
// the removed elements in a Remove event rather than a bare reset.
type List[T any] struct {
	*observable[T]
}

// NewList creates a List whose Remove and Contains compare with ==.
func NewList[T comparable](opts ...Option[T]) *List[T] {
	opts = append([]Option[T]{WithEqual(func(a, b T) bool { return a == b })}, opts...)

	list, err := NewListFunc(nil, opts...)
	if err != nil {
		// Unreachable: the equality option above is always applied.
		panic(err)
	}

	return list
}

// NewListFunc creates a List for element types that aren't comparable, or
// that need a looser notion of equality. equal may be nil only when a
// WithEqual option provides one.
func NewListFunc[T any](equal func(a, b T) bool, opts ...Option[T]) (*List[T], error) {
	cfg := newConfig(opts)

	if equal != nil {
		cfg.equal = equal
	}

	if cfg.equal == nil {
		return nil, ErrNilEqual
	}

	list := &List[T]{observable: newObservable(cfg)}
	list.items = append(list.items, cfg.items...)

	return list, nil
}

// Add appends item.
func (l *List[T]) Add(item T) {
	l.insertAt(len(l.items), item)
}

// Insert places item at index, shifting later elements. index may equal Len().
func (l *List[T]) Insert(index int, item T) error {
	if index < 0 || index > len(l.items) {
		return indexError(index, len(l.items))
	}

	l.insertAt(index, item)

	return nil
}

// Set replaces the element at index. Subscribers see the old element removed
// and the new one added at the same position.
func (l *List[T]) Set(index int, item T) error {
	if index < 0 || index >= len(l.items) {
		return indexError(index, len(l.items))
	}

	l.removeAt(index)
	l.insertAt(index, item)

	return nil
}

// AddRange appends items in order. Subscribers receive one Add event listing
// all of them once they are in place.
//
// A nil slice returns ErrNilItems before anything changes; an empty one does
// nothing at all.
func (l *List[T]) AddRange(items []T) error {
	return l.addRange(items, l.Add)
}

// AssignAll replaces the contents with items. Subscribers receive a single
// Reset event.
func (l *List[T]) AssignAll(items []T) error {
	return l.assignAll(items, l.Add)
}
