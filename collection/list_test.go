package collection

import (
	"slices"
	"strings"
	"testing"

	"github.com/amp-labs/amp-toolkit/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSingleItemEvents(t *testing.T) {
	t.Parallel()

	list := NewList[string]()
	events := watch(list.Subscribe)

	list.Add("a")
	list.Add("c")
	require.NoError(t, list.Insert(1, "b"))

	assert.Equal(t, []string{"a", "b", "c"}, list.Entries())
	assert.Equal(t, []ChangeEvent[string]{
		{Action: ActionAdd, Items: []string{"a"}, Index: 0},
		{Action: ActionAdd, Items: []string{"c"}, Index: 1},
		{Action: ActionAdd, Items: []string{"b"}, Index: 1},
	}, *events)

	*events = nil

	assert.True(t, list.Remove("b"))
	assert.False(t, list.Remove("zzz"))

	item, err := list.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, "a", item)

	assert.Equal(t, []ChangeEvent[string]{
		{Action: ActionRemove, Items: []string{"b"}, Index: 1},
		{Action: ActionRemove, Items: []string{"a"}, Index: 0},
	}, *events)
}

func TestListInsertBounds(t *testing.T) {
	t.Parallel()

	list := NewList(WithItems(1, 2))

	require.NoError(t, list.Insert(2, 3), "index may equal Len")

	err := list.Insert(5, 9)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	require.ErrorIs(t, err, errors.ErrInvalidArgument)

	require.ErrorIs(t, list.Insert(-1, 9), ErrIndexOutOfRange)
	assert.Equal(t, []int{1, 2, 3}, list.Entries())
}

func TestListSet(t *testing.T) {
	t.Parallel()

	list := NewList(WithItems("x", "y"))
	events := watch(list.Subscribe)

	require.NoError(t, list.Set(1, "z"))
	require.ErrorIs(t, list.Set(2, "w"), ErrIndexOutOfRange)

	assert.Equal(t, []string{"x", "z"}, list.Entries())
	assert.Equal(t, []ChangeEvent[string]{
		{Action: ActionRemove, Items: []string{"y"}, Index: 1},
		{Action: ActionAdd, Items: []string{"z"}, Index: 1},
	}, *events)
}

func TestListQueries(t *testing.T) {
	t.Parallel()

	empty := NewList[int]()

	_, ok := empty.First()
	assert.False(t, ok)

	_, ok = empty.Last()
	assert.False(t, ok)

	_, err := empty.At(0)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Panics(t, func() { empty.MustAt(0) })

	list := NewList(WithItems(4, 5, 6))

	first, ok := list.First()
	assert.True(t, ok)
	assert.Equal(t, 4, first)

	last, ok := list.Last()
	assert.True(t, ok)
	assert.Equal(t, 6, last)

	assert.Equal(t, 5, list.MustAt(1))
	assert.Equal(t, 2, list.IndexOf(6))
	assert.Equal(t, -1, list.IndexOf(7))
	assert.True(t, list.Contains(4))
	assert.Equal(t, 3, list.Len())
	assert.Equal(t, []int{4, 5, 6}, slices.Collect(list.Values()))

	for i, v := range list.All() {
		assert.Equal(t, list.MustAt(i), v)
	}
}

func TestListEntriesIsACopy(t *testing.T) {
	t.Parallel()

	list := NewList(WithItems(1, 2))
	entries := list.Entries()
	entries[0] = 100

	assert.Equal(t, 1, list.MustAt(0))
}

func TestListClearReportsRemovedItems(t *testing.T) {
	t.Parallel()

	list := NewList(WithItems(1, 2, 3))
	events := watch(list.Subscribe)

	list.Clear()
	list.Clear()

	assert.Zero(t, list.Len())
	assert.Equal(t, []ChangeEvent[int]{Removed(1, 2, 3)}, *events)
}

func TestListAddRange(t *testing.T) {
	t.Parallel()

	t.Run("one add event in input order", func(t *testing.T) {
		t.Parallel()

		list := NewList(WithItems(1))
		events := watch(list.Subscribe)

		require.NoError(t, list.AddRange([]int{7, 3, 9}))

		assert.Equal(t, []int{1, 7, 3, 9}, list.Entries())
		assert.Equal(t, []ChangeEvent[int]{Added(7, 3, 9)}, *events)
	})

	t.Run("empty range fires nothing", func(t *testing.T) {
		t.Parallel()

		list := NewList(WithItems(1))
		events := watch(list.Subscribe)

		require.NoError(t, list.AddRange([]int{}))

		assert.Empty(t, *events)
		assert.False(t, list.Locked())
	})

	t.Run("nil range is rejected", func(t *testing.T) {
		t.Parallel()

		list := NewList[int]()
		events := watch(list.Subscribe)

		err := list.AddRange(nil)
		require.ErrorIs(t, err, ErrNilItems)
		require.ErrorIs(t, err, errors.ErrInvalidArgument)
		assert.Empty(t, *events)
	})

	t.Run("caller's slice is not retained", func(t *testing.T) {
		t.Parallel()

		list := NewList[int]()
		events := watch(list.Subscribe)

		items := []int{1, 2}
		require.NoError(t, list.AddRange(items))
		items[0] = 50

		assert.Equal(t, []int{1, 2}, (*events)[0].Items)
		assert.Equal(t, []int{1, 2}, list.Entries())
	})
}

func TestListRemoveRange(t *testing.T) {
	t.Parallel()

	t.Run("reports only what was removed", func(t *testing.T) {
		t.Parallel()

		list := NewList(WithItems("a", "b", "c", "b"))
		events := watch(list.Subscribe)

		require.NoError(t, list.RemoveRange([]string{"b", "x", "c"}))

		assert.Equal(t, []string{"a", "b"}, list.Entries())
		assert.Equal(t, []ChangeEvent[string]{Removed("b", "c")}, *events)
	})

	t.Run("nothing matched fires nothing", func(t *testing.T) {
		t.Parallel()

		list := NewList(WithItems("a"))
		events := watch(list.Subscribe)

		require.NoError(t, list.RemoveRange([]string{"x"}))

		assert.Empty(t, *events)
	})

	t.Run("empty and nil ranges", func(t *testing.T) {
		t.Parallel()

		list := NewList(WithItems("a"))
		events := watch(list.Subscribe)

		require.NoError(t, list.RemoveRange([]string{}))
		require.ErrorIs(t, list.RemoveRange(nil), ErrNilItems)

		assert.Empty(t, *events)
		assert.Equal(t, 1, list.Len())
	})
}

func TestListRemoveFunc(t *testing.T) {
	t.Parallel()

	list := NewList(WithItems(1, 2, 3, 4, 5, 6))
	events := watch(list.Subscribe)

	n := list.RemoveFunc(func(v int) bool { return v%2 == 0 })

	assert.Equal(t, 3, n)
	assert.Equal(t, []int{1, 3, 5}, list.Entries())
	assert.Equal(t, []ChangeEvent[int]{Removed(2, 4, 6)}, *events)

	*events = nil

	assert.Zero(t, list.RemoveFunc(func(v int) bool { return v > 100 }))
	assert.Empty(t, *events)
}

func TestListAssignAll(t *testing.T) {
	t.Parallel()

	list := NewList(WithItems(1, 2, 3))
	events := watch(list.Subscribe)

	require.NoError(t, list.AssignAll([]int{9, 8}))

	assert.Equal(t, []int{9, 8}, list.Entries())
	assert.Equal(t, []ChangeEvent[int]{Reset[int]()}, *events)

	*events = nil

	require.NoError(t, list.AssignAll([]int{}))
	assert.Zero(t, list.Len())
	assert.Equal(t, []ChangeEvent[int]{Reset[int]()}, *events, "clearing still counts as a change")

	require.ErrorIs(t, list.AssignAll(nil), ErrNilItems)
}

func TestListBatching(t *testing.T) {
	t.Parallel()

	list := NewList[int]()
	events := watch(list.Subscribe)

	list.Lock()
	list.Add(1)
	require.NoError(t, list.AddRange([]int{2, 3}))
	list.Remove(1)
	assert.True(t, list.HasSuppressed())
	assert.Empty(t, *events)
	require.NoError(t, list.Unlock())

	assert.Equal(t, []ChangeEvent[int]{Reset[int]()}, *events)
	assert.Equal(t, []int{2, 3}, list.Entries())

	require.ErrorIs(t, list.Unlock(), ErrGateNotLocked)
	require.ErrorIs(t, list.Unlock(), errors.ErrInvalidState)
}

func TestListUnlockWith(t *testing.T) {
	t.Parallel()

	list := NewList[int]()
	events := watch(list.Subscribe)

	list.Lock()
	list.Add(1)
	list.Add(2)
	require.NoError(t, list.UnlockWith(Added(1, 2)))

	assert.Equal(t, []ChangeEvent[int]{Added(1, 2)}, *events)
}

func TestListUnsubscribe(t *testing.T) {
	t.Parallel()

	list := NewList[int]()

	var first, second int

	unsubscribe := list.Subscribe(func(ChangeEvent[int]) { first++ })
	list.Subscribe(func(ChangeEvent[int]) { second++ })
	list.Subscribe(nil)()

	list.Add(1)
	unsubscribe()
	unsubscribe()
	list.Add(2)

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
	assert.Equal(t, 1, list.observers.len())
}

func TestListHandlerMayUnsubscribeItself(t *testing.T) {
	t.Parallel()

	list := NewList[int]()

	var (
		calls       int
		unsubscribe func()
	)

	unsubscribe = list.Subscribe(func(ChangeEvent[int]) {
		calls++

		unsubscribe()
	})

	list.Add(1)
	list.Add(2)

	assert.Equal(t, 1, calls)
}

func TestNewListFunc(t *testing.T) {
	t.Parallel()

	_, err := NewListFunc[string](nil)
	require.ErrorIs(t, err, ErrNilEqual)

	list, err := NewListFunc(strings.EqualFold, WithItems("Go", "Rust"))
	require.NoError(t, err)

	assert.True(t, list.Contains("GO"))
	assert.True(t, list.Remove("rust"))
	assert.Equal(t, []string{"Go"}, list.Entries())
}

func TestDowngradeRanges(t *testing.T) {
	t.Parallel()

	list := NewList[int]()

	var events []ChangeEvent[int]

	list.Subscribe(DowngradeRanges(func(e ChangeEvent[int]) {
		events = append(events, e)
	}))

	list.Add(1)
	require.NoError(t, list.AddRange([]int{2, 3}))
	require.NoError(t, list.AddRange([]int{4}))

	assert.Equal(t, []ChangeEvent[int]{
		{Action: ActionAdd, Items: []int{1}, Index: 0},
		Reset[int](),
		Added(4),
	}, events)
}

func TestActionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "add", ActionAdd.String())
	assert.Equal(t, "remove", ActionRemove.String())
	assert.Equal(t, "reset", ActionReset.String())
	assert.Equal(t, "unknown", Action(42).String())
}
