package fixed

import "unsafe"

// Array is a fixed-capacity sequence of N elements of type T stored inline.
// A must be the array type [N]T, which makes N part of the type:
//
//	var a fixed.Array[int, [5]int] // five ints, all zero
//
// The zero value is ready to use. Array is a plain value: assigning it copies
// every element. Not goroutine-safe.
type Array[T, A any] struct {
	data A
}

// At returns a pointer to element i, or ErrOutOfRange if i is not in [0, Len()).
// The pointer aliases the array's storage.
func (a *Array[T, A]) At(i int) (*T, error) {
	if uint(i) >= uint(a.Len()) {
		return nil, ErrOutOfRange
	}
	return a.Index(i), nil
}

// Index returns a pointer to element i without checking the range.
// The caller must ensure 0 <= i < Len(); anything else is undefined behaviour.
func (a *Array[T, A]) Index(i int) *T {
	var zero T
	return (*T)(unsafe.Add(unsafe.Pointer(&a.data), uintptr(i)*unsafe.Sizeof(zero)))
}

// Empty reports whether N is zero.
func (a *Array[T, A]) Empty() bool {
	return a.Len() == 0
}

// Len returns N.
func (a *Array[T, A]) Len() int {
	return arrayLen[T, A]()
}

// Fill assigns v to every element, in index order.
func (a *Array[T, A]) Fill(v T) {
	for i, n := 0, a.Len(); i < n; i++ {
		*a.Index(i) = v
	}
}
