package fixed

import (
	"math/bits"
	"unsafe"
)

// Bits is a fixed-capacity sequence of N bools packed eight to a byte.
// Element i lives in byte i/8 at bit i%8 (bit 0 is the least significant).
//
// L carries the length and S the storage: L is any array type of length N,
// conventionally the zero-width [N]struct{}, and S must be [(N+7)/8]byte.
//
//	var b fixed.Bits[[10]struct{}, [2]byte] // ten bools in two bytes
//
// Bits beyond N in the final byte are padding. Fill may set them, but they
// are never reported as elements. The zero value holds N false elements.
// Not goroutine-safe, including writes made through a BitRef.
type Bits[L, S any] struct {
	data S
}

// At returns element i, or ErrOutOfRange if i is not in [0, Len()).
func (b *Bits[L, S]) At(i int) (bool, error) {
	if uint(i) >= uint(b.Len()) {
		return false, ErrOutOfRange
	}
	return b.Index(i), nil
}

// RefAt returns a writable reference to element i, or ErrOutOfRange if i is
// not in [0, Len()).
func (b *Bits[L, S]) RefAt(i int) (BitRef, error) {
	if uint(i) >= uint(b.Len()) {
		return BitRef{}, ErrOutOfRange
	}
	return b.Ref(i), nil
}

// Set stores v in element i, or returns ErrOutOfRange.
func (b *Bits[L, S]) Set(i int, v bool) error {
	r, err := b.RefAt(i)
	if err != nil {
		return err
	}
	r.Set(v)
	return nil
}

// Index returns element i without checking the range.
// The caller must ensure 0 <= i < Len(); anything else is undefined behaviour.
func (b *Bits[L, S]) Index(i int) bool {
	return GetBit(*b.byteAt(i), uint(i)&7)
}

// Ref returns a writable reference to element i without checking the range.
func (b *Bits[L, S]) Ref(i int) BitRef {
	return BitRef{b: b.byteAt(i), pos: uint8(i & 7)}
}

// Empty reports whether N is zero.
func (b *Bits[L, S]) Empty() bool {
	return b.Len() == 0
}

// Len returns N, the number of elements (not bytes).
func (b *Bits[L, S]) Len() int {
	return bitsLen[L, S]()
}

// Fill sets every byte of storage to 0xFF when v is true and to 0 otherwise.
// Padding bits are written along with the elements.
func (b *Bits[L, S]) Fill(v bool) {
	var fill byte
	if v {
		fill = ^byte(0)
	}
	buf := b.storage()
	for i := range buf {
		buf[i] = fill
	}
}

// Count returns the number of true elements.
func (b *Bits[L, S]) Count() int {
	n := b.Len()
	buf := b.storage()
	c := 0
	for _, x := range buf[:n/8] {
		c += bits.OnesCount8(x)
	}
	if n%8 != 0 {
		c += bits.OnesCount8(buf[n/8] & tailMask(n))
	}
	return c
}

// Bytes returns a copy of the packed storage with padding bits cleared.
func (b *Bits[L, S]) Bytes() []byte {
	n := b.Len()
	out := append([]byte(nil), b.storage()...)
	if len(out) > 0 {
		out[len(out)-1] &= tailMask(n)
	}
	return out
}

// storage views the packed bytes, validating the shape first.
func (b *Bits[L, S]) storage() []byte {
	bitsLen[L, S]()
	return unsafe.Slice((*byte)(unsafe.Pointer(&b.data)), unsafe.Sizeof(b.data))
}

func (b *Bits[L, S]) byteAt(i int) *byte {
	return (*byte)(unsafe.Add(unsafe.Pointer(&b.data), i>>3))
}

// tailMask selects the element bits of the final byte of an n-bit container.
func tailMask(n int) byte {
	if r := n % 8; r != 0 {
		return byte(1)<<r - 1
	}
	return 0xFF
}
