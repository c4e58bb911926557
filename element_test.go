package pdqsort

import (
	"testing"
	"unsafe"
)

func TestSort2AndSort3(t *testing.T) {
	a, b := int32(2), int32(1)
	sort2(unsafe.Pointer(&a), unsafe.Pointer(&b), unsafe.Sizeof(a), compareInt32)
	if a != 1 || b != 2 {
		t.Fatalf("sort2: got (%d,%d), want (1,2)", a, b)
	}

	x, y, z := int32(3), int32(1), int32(2)
	sort3(unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&z), unsafe.Sizeof(x), compareInt32)
	if x != 1 || y != 2 || z != 3 {
		t.Fatalf("sort3: got (%d,%d,%d), want (1,2,3)", x, y, z)
	}
}

func TestSwapElemSelfAlias(t *testing.T) {
	v := int32(7)
	p := unsafe.Pointer(&v)
	swapElem(p, p, unsafe.Sizeof(v))
	if v != 7 {
		t.Fatalf("swapElem(p, p) corrupted value: got %d", v)
	}
}

func TestCopyElemSelfAlias(t *testing.T) {
	v := int32(9)
	p := unsafe.Pointer(&v)
	copyElem(p, p, unsafe.Sizeof(v))
	if v != 9 {
		t.Fatalf("copyElem(p, p) corrupted value: got %d", v)
	}
}

func TestAtAddressing(t *testing.T) {
	s := []int32{10, 20, 30, 40}
	base := unsafe.Pointer(&s[0])
	size := unsafe.Sizeof(s[0])

	for i, want := range s {
		got := *(*int32)(at(base, i, size))
		if got != want {
			t.Errorf("at(base, %d): got %d, want %d", i, got, want)
		}
	}
}

func TestLog2Floor(t *testing.T) {
	cases := map[int]int{1: 0, 2: 1, 3: 1, 4: 2, 7: 2, 8: 3, 1023: 9, 1024: 10}
	for n, want := range cases {
		if got := log2Floor(n); got != want {
			t.Errorf("log2Floor(%d) = %d, want %d", n, got, want)
		}
	}
}
