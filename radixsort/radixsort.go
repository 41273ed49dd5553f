package radixsort

import "github.com/dreamware/ordcontainers/ordmap"

// SortBy stably sorts items in place in ascending order of key(item). It
// runs in O(n * p) time where p is the byte width of K, with no
// comparisons between items. Stable: items with equal keys retain their
// relative input order.
//
// SortBy returns immediately for len(items) <= 1 (spec.md §4.1: "Undefined
// behavior if range is empty ⇒ return immediately").
func SortBy[T any, K ordmap.Key](items []T, key func(T) K) {
	n := len(items)
	if n <= 1 {
		return
	}

	passes := ordmap.BitWidth[K]() / 8
	buf := make([]T, n)
	src, dst := items, buf

	for pass := 0; pass < passes; pass++ {
		shift := uint(8 * pass)

		var count [257]int
		for _, item := range src {
			d := digit(key(item), shift)
			count[d+1]++
		}
		for i := 0; i < 256; i++ {
			count[i+1] += count[i]
		}

		// Scatter back-to-front: count[d+1] is now the inclusive prefix
		// count of digit d (one past its last slot), so decrementing it
		// and placing the last-seen item of a digit first (working from
		// the end of src) leaves the first-seen item of that digit at the
		// lowest offset, preserving input order among equal digits.
		for i := n - 1; i >= 0; i-- {
			d := digit(key(src[i]), shift)
			count[d+1]--
			dst[count[d+1]] = src[i]
		}

		src, dst = dst, src
	}

	if passes%2 != 0 {
		copy(items, src)
	}
}

// digit extracts the byte at the given bit shift from k's sign-adjusted
// unsigned bit pattern.
func digit[K ordmap.Key](k K, shift uint) byte {
	u := ordmap.ToUint64(ordmap.Unsigned(k))
	return byte((u >> shift) & 0xFF)
}
