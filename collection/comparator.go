package collection

import (
	"cmp"
	"strings"

	"facette.io/natsort"
	"github.com/anacrolix/multiless"
)

// Comparator orders two values: negative when a sorts before b, zero when
// they are equivalent, positive when a sorts after b. It must describe a
// total order and must not change while a container is using it.
type Comparator[T any] func(a, b T) int

// Ascending orders values from smallest to largest.
func Ascending[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Descending orders values from largest to smallest.
func Descending[T cmp.Ordered]() Comparator[T] {
	return Reverse(Ascending[T]())
}

// Reverse flips the order of c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// By orders values by a projected key.
//
//	byAge := collection.By(func(p Person) int { return p.Age }, collection.Ascending[int]())
func By[T, K any](key func(T) K, c Comparator[K]) Comparator[T] {
	return func(a, b T) int {
		return c(key(a), key(b))
	}
}

// Natural orders strings the way people expect file names to be ordered,
// comparing digit runs numerically ("file2" before "file10"). Only identical
// strings compare equal: strings natsort can't tell apart, such as "file1"
// and "file01", fall back to byte order.
func Natural() Comparator[string] {
	return func(a, b string) int {
		if a == b {
			return 0
		}

		less, greater := natsort.Compare(a, b), natsort.Compare(b, a)

		switch {
		case less && !greater:
			return -1
		case greater && !less:
			return 1
		default:
			return strings.Compare(a, b)
		}
	}
}

// Chain orders by the first comparator, falling through to the next one
// on ties. Later comparators are only evaluated when needed.
func Chain[T any](cs ...Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		computation := multiless.New()

		for _, c := range cs {
			computation = computation.Lazy(func() multiless.Computation {
				return multiless.New().Cmp(c(a, b))
			})
		}

		return computation.OrderingInt()
	}
}
