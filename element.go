package pdqsort

import "unsafe"

// at returns the address of element i (0-based, from base) in a range
// whose elements are size bytes wide.
func at(base unsafe.Pointer, i int, size uintptr) unsafe.Pointer {
	return unsafe.Add(base, uintptr(i)*size)
}

// bytesAt views the size bytes at p as a byte slice, for copy/swap.
func bytesAt(p unsafe.Pointer, size uintptr) []byte {
	return unsafe.Slice((*byte)(p), size)
}

// copyElem copies the size bytes at src to dst. src and dst must not
// overlap unless they are equal.
func copyElem(dst, src unsafe.Pointer, size uintptr) {
	if dst == src {
		return
	}
	copy(bytesAt(dst, size), bytesAt(src, size))
}

// swapElem exchanges the size bytes at a and b in place.
func swapElem(a, b unsafe.Pointer, size uintptr) {
	if a == b {
		return
	}
	as, bs := bytesAt(a, size), bytesAt(b, size)
	for i := uintptr(0); i < size; i++ {
		as[i], bs[i] = bs[i], as[i]
	}
}

// sort2 swaps *a and *b if they are out of order.
func sort2(a, b unsafe.Pointer, size uintptr, compare CompareFunc) {
	if compare(b, a) < 0 {
		swapElem(a, b, size)
	}
}

// sort3 leaves *a, *b, *c in non-decreasing order under compare.
func sort3(a, b, c unsafe.Pointer, size uintptr, compare CompareFunc) {
	sort2(a, b, size, compare)
	sort2(b, c, size, compare)
	sort2(a, b, size, compare)
}
