package pdqsort

import "unsafe"

// heapsortRange sorts the n elements of size bytes starting at base, in
// place, via a binary max-heap. It is the O(n log n) worst-case
// fallback used by the driver when the bad-partition budget is
// exhausted, and also backs the standalone Heapsort entry point.
func heapsortRange(base unsafe.Pointer, n int, size uintptr, compare CompareFunc) {
	if n < 2 {
		return
	}

	for cur := n/2 - 1; cur >= 0; cur-- {
		siftDown(base, cur, n, size, compare)
	}

	for cur := n - 1; cur >= 1; cur-- {
		swapElem(at(base, cur, size), at(base, 0, size), size)
		siftDown(base, 0, cur, size, compare)
	}
}

// siftDown moves the element at node down into place within the heap
// occupying indices [0, limit) of base, preferring the larger of the
// two children when both exist; a node with only a left child treats
// it as the chosen child unconditionally.
func siftDown(base unsafe.Pointer, node, limit int, size uintptr, compare CompareFunc) {
	for {
		left := 2*node + 1
		right := left + 1

		if left >= limit {
			return
		}

		if left == limit-1 || compare(at(base, right, size), at(base, left, size)) < 0 {
			if compare(at(base, node, size), at(base, left, size)) < 0 {
				swapElem(at(base, node, size), at(base, left, size), size)
				node = left
			} else {
				return
			}
		} else {
			if compare(at(base, node, size), at(base, right, size)) < 0 {
				swapElem(at(base, node, size), at(base, right, size), size)
				node = right
			} else {
				return
			}
		}
	}
}
