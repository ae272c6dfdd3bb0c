package collection

// SortedList is an observable list that is always sorted under its
// Comparator. Callers never choose positions: every insertion is placed by
// SearchInsertion, after any elements it compares equal to.
type SortedList[T any] struct {
	*observable[T]

	compare   Comparator[T]
	linearMax int
}

// NewSortedList creates a SortedList ordered by c. Initial items given with
// WithItems are inserted one by one, so the order holds from the start.
// Unless WithEqual says otherwise, two elements are equal when c returns zero.
func NewSortedList[T any](c Comparator[T], opts ...Option[T]) (*SortedList[T], error) {
	if c == nil {
		return nil, ErrNilComparator
	}

	cfg := newConfig(opts)

	if cfg.equal == nil {
		cfg.equal = func(a, b T) bool { return c(a, b) == 0 }
	}

	list := &SortedList[T]{
		observable: newObservable(cfg),
		compare:    c,
		linearMax:  max(cfg.linearMax, MinLinearSearchMax),
	}

	for _, item := range cfg.items {
		list.Insert(item)
	}

	return list, nil
}

// Comparator returns the ordering the list maintains.
func (s *SortedList[T]) Comparator() Comparator[T] {
	return s.compare
}

// Insert places item at its sorted position and returns that index.
func (s *SortedList[T]) Insert(item T) int {
	index := SearchInsertion(s.items, item, s.compare, s.linearMax)
	s.insertAt(index, item)

	return index
}

// Replace removes the element at index and inserts item wherever it sorts.
// It returns item's new index. Subscribers see a Remove followed by an Add.
func (s *SortedList[T]) Replace(index int, item T) (int, error) {
	if _, err := s.RemoveAt(index); err != nil {
		return -1, err
	}

	return s.Insert(item), nil
}

// AddRange inserts each of items at its sorted position. Subscribers receive
// one Add event listing all of them, in the order given, once every item is
// in place.
//
// A nil slice returns ErrNilItems before anything changes; an empty one does
// nothing at all.
func (s *SortedList[T]) AddRange(items []T) error {
	return s.addRange(items, s.place)
}

// AssignAll replaces the contents with items, sorted. Subscribers receive a
// single Reset event.
func (s *SortedList[T]) AssignAll(items []T) error {
	return s.assignAll(items, s.place)
}

// IsSorted checks the ordering invariant. It exists for tests and debugging.
func (s *SortedList[T]) IsSorted() bool {
	for i := 1; i < len(s.items); i++ {
		if s.compare(s.items[i-1], s.items[i]) > 0 {
			return false
		}
	}

	return true
}

func (s *SortedList[T]) place(item T) {
	s.Insert(item)
}
