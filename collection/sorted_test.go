package collection

import (
	"bytes"
	"log/slog"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/amp-labs/amp-toolkit/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSortedInts(t *testing.T, items ...int) *SortedList[int] {
	t.Helper()

	list, err := NewSortedList(Ascending[int](), WithItems(items...))
	require.NoError(t, err)

	return list
}

func TestSortedListInsertKeepsOrder(t *testing.T) {
	t.Parallel()

	list := newSortedInts(t)
	events := watch(list.Subscribe)

	indexes := []int{list.Insert(5), list.Insert(3), list.Insert(8), list.Insert(1)}

	assert.Equal(t, []int{1, 3, 5, 8}, list.Entries())
	assert.Equal(t, []int{0, 0, 2, 0}, indexes)
	assert.Equal(t, []ChangeEvent[int]{
		{Action: ActionAdd, Items: []int{5}, Index: 0},
		{Action: ActionAdd, Items: []int{3}, Index: 0},
		{Action: ActionAdd, Items: []int{8}, Index: 2},
		{Action: ActionAdd, Items: []int{1}, Index: 0},
	}, *events)
	assert.True(t, list.IsSorted())
}

func TestSortedListAddRangeDeliversOneEvent(t *testing.T) {
	t.Parallel()

	list := newSortedInts(t, 5, 3, 8, 1)
	events := watch(list.Subscribe)

	require.NoError(t, list.AddRange([]int{10, 2, 6}))

	assert.Equal(t, []ChangeEvent[int]{Added(10, 2, 6)}, *events)
	assert.Equal(t, []int{1, 2, 3, 5, 6, 8, 10}, list.Entries())
}

func TestSortedListUnlockOnFreshList(t *testing.T) {
	t.Parallel()

	list := newSortedInts(t)
	events := watch(list.Subscribe)

	err := list.Unlock()
	require.ErrorIs(t, err, errors.ErrInvalidState)
	assert.Empty(t, *events)
	assert.False(t, list.Locked())
}

func TestSortedListAssignAll(t *testing.T) {
	t.Parallel()

	t.Run("one reset with duplicates retained", func(t *testing.T) {
		t.Parallel()

		list := newSortedInts(t, 7, 1)
		events := watch(list.Subscribe)

		require.NoError(t, list.AssignAll([]int{4, 4, 2}))

		assert.Equal(t, []ChangeEvent[int]{Reset[int]()}, *events)
		assert.Equal(t, []int{2, 4, 4}, list.Entries())
	})

	t.Run("equal elements keep call order", func(t *testing.T) {
		t.Parallel()

		list, err := NewSortedList(byKey, WithItems(keyed{0, 0}))
		require.NoError(t, err)

		require.NoError(t, list.AssignAll([]keyed{{4, 1}, {4, 2}, {2, 3}}))

		assert.Equal(t, []keyed{{2, 3}, {4, 1}, {4, 2}}, list.Entries())
	})
}

func TestSortedListTiesGoAfterEqualElements(t *testing.T) {
	t.Parallel()

	list, err := NewSortedList(byKey)
	require.NoError(t, err)

	for seq := range 5 {
		list.Insert(keyed{key: 7, seq: seq})
	}

	index := list.Insert(keyed{key: 7, seq: 99})

	assert.Equal(t, 5, index)
	assert.Equal(t, keyed{7, 99}, list.MustAt(5))

	for i := range 5 {
		assert.Equal(t, i, list.MustAt(i).seq)
	}
}

func TestSortedListEmptyRangesFireNothing(t *testing.T) {
	t.Parallel()

	list := newSortedInts(t, 1, 2)
	events := watch(list.Subscribe)

	require.NoError(t, list.AddRange([]int{}))
	require.NoError(t, list.RemoveRange([]int{}))
	require.NoError(t, list.RemoveRange([]int{42}))

	assert.Empty(t, *events)
	assert.Equal(t, []int{1, 2}, list.Entries())

	require.ErrorIs(t, list.AddRange(nil), ErrNilItems)
	require.ErrorIs(t, list.AssignAll(nil), ErrNilItems)
	assert.Empty(t, *events)
}

func TestSortedListRemoveRange(t *testing.T) {
	t.Parallel()

	list := newSortedInts(t, 1, 2, 3, 4, 5)
	events := watch(list.Subscribe)

	require.NoError(t, list.RemoveRange([]int{4, 9, 1}))

	assert.Equal(t, []ChangeEvent[int]{Removed(4, 1)}, *events)
	assert.Equal(t, []int{2, 3, 5}, list.Entries())
}

func TestSortedListReplace(t *testing.T) {
	t.Parallel()

	list := newSortedInts(t, 10, 20, 30)
	events := watch(list.Subscribe)

	index, err := list.Replace(0, 25)
	require.NoError(t, err)

	assert.Equal(t, 1, index)
	assert.Equal(t, []int{20, 25, 30}, list.Entries())
	assert.Equal(t, []ChangeEvent[int]{
		{Action: ActionRemove, Items: []int{10}, Index: 0},
		{Action: ActionAdd, Items: []int{25}, Index: 1},
	}, *events)

	_, err = list.Replace(3, 1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, []int{20, 25, 30}, list.Entries())
}

func TestSortedListNilComparator(t *testing.T) {
	t.Parallel()

	list, err := NewSortedList[int](nil)

	require.ErrorIs(t, err, ErrNilComparator)
	require.ErrorIs(t, err, errors.ErrInvalidArgument)
	assert.Nil(t, list)
}

func TestSortedListDefaultEqualityUsesComparator(t *testing.T) {
	t.Parallel()

	list, err := NewSortedList(byKey, WithItems(keyed{1, 0}, keyed{2, 0}))
	require.NoError(t, err)

	assert.True(t, list.Contains(keyed{2, 50}))

	strict, err := NewSortedList(byKey,
		WithItems(keyed{1, 0}, keyed{2, 0}),
		WithEqual(func(a, b keyed) bool { return a == b }))
	require.NoError(t, err)

	assert.False(t, strict.Contains(keyed{2, 50}))
	assert.True(t, strict.Contains(keyed{2, 0}))
}

func TestSortedListDescending(t *testing.T) {
	t.Parallel()

	list, err := NewSortedList(Descending[string](), WithItems("b", "c", "a"))
	require.NoError(t, err)

	assert.Equal(t, []string{"c", "b", "a"}, list.Entries())
	assert.NotNil(t, list.Comparator())
}

func TestSortedListNestedBatch(t *testing.T) {
	t.Parallel()

	list := newSortedInts(t)
	events := watch(list.Subscribe)

	list.Lock()
	list.Insert(3)
	require.NoError(t, list.AddRange([]int{2, 1}))
	assert.Empty(t, *events)
	require.NoError(t, list.Unlock())

	assert.Equal(t, []ChangeEvent[int]{Reset[int]()}, *events)
	assert.Equal(t, []int{1, 2, 3}, list.Entries())
}

func TestSortedListLogsCoalescedDelivery(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	list, err := NewSortedList(Ascending[int](), WithLogger[int](log))
	require.NoError(t, err)

	require.NoError(t, list.AddRange([]int{2, 1}))
	require.Error(t, list.Unlock())

	assert.Contains(t, buf.String(), `"msg":"delivered coalesced change"`)
	assert.Contains(t, buf.String(), `"action":"add"`)
	assert.Contains(t, buf.String(), `"msg":"unlock without matching lock"`)
}

// Random operations checked against a stable sort of the same elements.
func TestSortedListMatchesStableSort(t *testing.T) {
	t.Parallel()

	for _, linearMax := range []int{0, 1, 2, 5, 64} {
		rng := rand.New(rand.NewPCG(uint64(linearMax), 7)) //nolint:gosec

		list, err := NewSortedList(byKey,
			WithLinearSearchMax[keyed](linearMax),
			WithEqual(func(a, b keyed) bool { return a == b }))
		require.NoError(t, err)

		var reference []keyed

		for seq := range 500 {
			switch op := rng.IntN(10); {
			case op < 6:
				item := keyed{key: rng.IntN(20), seq: seq}
				list.Insert(item)
				reference = append(reference, item)
			case op < 8 && len(reference) > 0:
				item := reference[rng.IntN(len(reference))]
				require.True(t, list.Remove(item))
				reference = slices.DeleteFunc(reference, func(k keyed) bool { return k == item })
			default:
				batch := make([]keyed, rng.IntN(4))
				for i := range batch {
					batch[i] = keyed{key: rng.IntN(20), seq: 1_000_000 + seq*10 + i}
				}

				require.NoError(t, list.AddRange(batch))
				reference = append(reference, batch...)
			}

			require.True(t, list.IsSorted())
		}

		want := slices.Clone(reference)
		slices.SortStableFunc(want, byKey)

		assert.Equal(t, want, list.Entries(), "linearMax=%d", linearMax)
	}
}
