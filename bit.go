package fixed

// GetBit reports whether bit pos of b is set. Bit 0 is the least significant.
// pos must be below 8.
func GetBit(b byte, pos uint) bool {
	return b&(1<<pos) != 0
}

// SetBit sets bit pos of *b to v. Writing the same value twice is a no-op.
func SetBit(b *byte, pos uint, v bool) {
	if v {
		*b |= 1 << pos
	} else {
		*b &^= 1 << pos
	}
}

// XorBit clears bit pos of *b when v is false and toggles it when v is true,
// so writing true to a bit that is already set clears it.
func XorBit(b *byte, pos uint, v bool) {
	if v {
		*b ^= 1 << pos
	} else {
		*b &^= 1 << pos
	}
}

// BitRef is a writable handle to a single bit of a byte. It stands in for a
// reference to a bool element of Bits, which cannot be addressed directly.
//
// A BitRef aliases the storage it was taken from: writes through it change
// that storage in place, and it keeps seeing that storage even after the
// owning container is reassigned. Do not keep one beyond the lifetime of
// the container value it came from.
type BitRef struct {
	b   *byte
	pos uint8
}

// NewBitRef binds bit pos of *b. It panics if pos is not below 8.
func NewBitRef(b *byte, pos uint) BitRef {
	if pos >= 8 {
		panic("fixed: bit position out of range")
	}
	return BitRef{b: b, pos: uint8(pos)}
}

// Get returns the current value of the bit.
func (r BitRef) Get() bool {
	return GetBit(*r.b, uint(r.pos))
}

// Set stores v in the bit.
func (r BitRef) Set(v bool) {
	SetBit(r.b, uint(r.pos), v)
}

// Xor applies XorBit to the bit: false clears it, true toggles it.
func (r BitRef) Xor(v bool) {
	XorBit(r.b, uint(r.pos), v)
}

// Assign copies the value of the bit referenced by src into r.
// Assigning a BitRef to itself does nothing.
func (r BitRef) Assign(src BitRef) {
	if r == src {
		return
	}
	r.Set(src.Get())
}
