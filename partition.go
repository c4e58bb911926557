package pdqsort

import "unsafe"

// partitionRight partitions the n elements of size bytes starting at
// base around the pivot at base (index 0), putting elements equal to
// the pivot in the right-hand partition. It returns the index the
// pivot ends up at and whether the input was already correctly
// partitioned against that pivot.
//
// Assumes the pivot is a median of at least three sampled elements and
// that n is at least insertionThreshold, so the unguarded scans below
// are guaranteed to find a stopping element before running past the
// ends of the range.
func partitionRight(base unsafe.Pointer, n int, size uintptr, compare CompareFunc, scratch unsafe.Pointer) (pivotPos int, alreadyPartitioned bool) {
	copyElem(scratch, at(base, 0, size), size)

	first := 0
	for {
		first++
		if !(compare(at(base, first, size), scratch) < 0) {
			break
		}
	}

	last := n
	if first == 1 {
		for first < last {
			last--
			if compare(at(base, last, size), scratch) < 0 {
				break
			}
		}
	} else {
		for {
			last--
			if compare(at(base, last, size), scratch) < 0 {
				break
			}
		}
	}

	alreadyPartitioned = first >= last

	for first < last {
		swapElem(at(base, first, size), at(base, last, size), size)

		for {
			first++
			if !(compare(at(base, first, size), scratch) < 0) {
				break
			}
		}
		for {
			last--
			if compare(at(base, last, size), scratch) < 0 {
				break
			}
		}
	}

	copyElem(at(base, 0, size), at(base, first-1, size), size)
	copyElem(at(base, first-1, size), scratch, size)

	return first - 1, alreadyPartitioned
}

// partitionLeft is the dual of partitionRight: elements equal to the
// pivot go to the left-hand partition. It is used only for the
// leading-duplicate shortcut in the driver and does not report an
// already-partitioned signal, since the duplicate-heavy case it
// handles already runs in O(n) overall.
func partitionLeft(base unsafe.Pointer, n int, size uintptr, compare CompareFunc, scratch unsafe.Pointer) int {
	copyElem(scratch, at(base, 0, size), size)

	first := 0
	last := n
	for {
		last--
		if !(compare(scratch, at(base, last, size)) < 0) {
			break
		}
	}

	guarded := last+1 == n
	if guarded {
		for first < last {
			first++
			if compare(scratch, at(base, first, size)) < 0 {
				break
			}
		}
	} else {
		for {
			first++
			if compare(scratch, at(base, first, size)) < 0 {
				break
			}
		}
	}

	for first < last {
		swapElem(at(base, first, size), at(base, last, size), size)

		for {
			last--
			if !(compare(scratch, at(base, last, size)) < 0) {
				break
			}
		}
		for {
			first++
			if compare(scratch, at(base, first, size)) < 0 {
				break
			}
		}
	}

	copyElem(at(base, 0, size), at(base, last, size), size)
	copyElem(at(base, last, size), scratch, size)

	return last
}
