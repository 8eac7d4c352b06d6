// Package fixed implements fixed-capacity arrays for Go, including a
// bit-packed variant for bools.
//
// # Overview
//
// The element count of every container is part of its type, carried by an
// array type argument, so storage lives inline in the value and never grows:
//
//   - Array[T, A] holds N elements of T, with A = [N]T
//   - Bits[L, S] holds N bools packed eight per byte, with L = [N]struct{}
//     and S = [(N+7)/8]byte
//
// Both zero values are ready to use (all zero / all false) and both are
// plain values: assignment copies the whole block.
//
// # Basic Usage
//
//	var a fixed.Array[int, [5]int]
//	a.Fill(7)
//
//	p, err := a.At(4) // bounds-checked, returns ErrOutOfRange
//	*p = 9
//	*a.Index(0) = 1   // unchecked
//
// # Bit-packed bools
//
// A single bit cannot be addressed, so mutable access to Bits goes through
// a BitRef proxy bound to the containing byte and bit offset:
//
//	var b fixed.Bits[[10]struct{}, [2]byte]
//	r, err := b.RefAt(3)
//	r.Set(true)
//	v, err := b.At(3) // true
//
// A BitRef aliases the container's storage. Keep it no longer than the
// container value it was taken from.
//
// SetBit and BitRef.Set are idempotent. XorBit and BitRef.Xor keep the
// toggle-on-true behaviour of the classic set_bit helper: writing true to a
// bit that is already set clears it.
//
// # Checked and Unchecked Access
//
// At, RefAt and Set validate the index and return ErrOutOfRange. Index and
// Ref skip validation; an index outside [0, Len()) is undefined behaviour.
//
// Type arguments that do not describe a valid layout (for example
// Array[int, [4]int32]) make the checked operations panic. ArrayShape and
// BitsShape report the same problem as an error wrapping ErrShape.
//
// # Interoperability
//
// Bits converts to and from go-bitfield Bitlist, bits-and-blooms BitSet
// and roaring Bitmap, and implements encoding.TextMarshaler as a string of
// '0' and '1'.
//
// # Thread Safety
//
// No type in this package is goroutine-safe. Concurrent reads are fine;
// any write, including through a BitRef, needs external synchronization.
package fixed
