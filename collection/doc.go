// Package collection provides observable list containers for code that renders
// or mirrors their contents, such as view models and caches.
//
// # Overview
//
// Two containers are provided:
//
//   - [List] keeps elements in insertion order.
//   - [SortedList] keeps elements sorted under a caller-supplied [Comparator].
//     Every insertion path (Insert, Replace, AddRange, AssignAll and the initial
//     items) goes through [SearchInsertion], so the order holds at all times.
//
// Both containers report structural changes as [ChangeEvent] values delivered
// synchronously to subscribers, and both support batched mutation through a
// notification [Gate]:
//
//	list, _ := collection.NewSortedList(collection.Ascending[int]())
//	unsubscribe := list.Subscribe(func(e collection.ChangeEvent[int]) {
//	    fmt.Println(e.Action, e.Items)
//	})
//	defer unsubscribe()
//
//	_ = list.AddRange([]int{10, 2, 6}) // prints "add [10 2 6]" once
//
// # Batching
//
// While the gate is locked, events are dropped and the gate remembers that
// something changed. When the outermost Unlock brings the depth back to zero,
// a single coalesced event is delivered: a Reset by default, or whatever
// UnlockWith was given. AddRange, RemoveRange and AssignAll are built on this
// and deliver exactly one event each. Unlocking a gate that isn't locked
// returns [ErrGateNotLocked].
//
// # Ties
//
// Elements that compare equal keep their relative insertion order: a new
// element is placed after every element it compares equal to.
//
// # Thread Safety
//
// The containers are meant for a single goroutine (typically a UI or event
// loop) and do no locking of their own. Events are delivered on the goroutine
// that made the change, before the mutating call returns. Callers sharing a
// container between goroutines must serialize access themselves.
package collection
