package collection

const (
	// DefaultLinearSearchMax is the widest index span (high - low) that
	// SearchInsertion scans linearly instead of bisecting, i.e. ranges of up
	// to three elements.
	DefaultLinearSearchMax = 2

	// MinLinearSearchMax is the smallest usable threshold. Bisection needs a
	// midpoint strictly inside the range to make progress.
	MinLinearSearchMax = 1
)

// SearchInsertion returns the index in [0, len(items)] at which item must be
// inserted to keep items sorted under c. items must already be sorted.
//
// An item that compares equal to existing elements is placed after all of
// them, so equal elements keep their insertion order.
//
// Spans wider than linearMax are bisected: when item sorts strictly before the
// midpoint the search continues in [low, mid], otherwise in [mid, high]. Once
// the span is narrow enough it is scanned from the high end down. Thresholds
// below MinLinearSearchMax are raised to it.
func SearchInsertion[T any](items []T, item T, c Comparator[T], linearMax int) int {
	if len(items) == 0 {
		return 0
	}

	linearMax = max(linearMax, MinLinearSearchMax)
	low, high := 0, len(items)-1

	for high-low > linearMax {
		mid := (low + high) / 2

		if c(item, items[mid]) < 0 {
			high = mid
		} else {
			low = mid
		}
	}

	for i := high; i >= low; i-- {
		if c(item, items[i]) >= 0 {
			return i + 1
		}
	}

	return low
}
