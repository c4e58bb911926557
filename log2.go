package pdqsort

import "math/bits"

// log2Floor returns floor(log2(n)) for n >= 1. Behavior is undefined
// for n == 0, matching the component contract (spec component C1).
func log2Floor(n int) int {
	return bits.Len(uint(n)) - 1
}
