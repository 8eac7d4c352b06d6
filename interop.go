package fixed

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/go-bitfield"
)

// Element i of Bits maps to bit i of each foreign container. The From*
// methods leave the receiver unchanged when they return an error.

// ToBitlist returns the elements as a go-bitfield Bitlist of length Len().
func (b *Bits[L, S]) ToBitlist() bitfield.Bitlist {
	n := b.Len()
	bl := bitfield.NewBitlist(uint64(n))
	for i := 0; i < n; i++ {
		if b.Index(i) {
			bl.SetBitAt(uint64(i), true)
		}
	}
	return bl
}

// FromBitlist replaces the elements with those of bl, which must hold
// exactly Len() bits.
func (b *Bits[L, S]) FromBitlist(bl bitfield.Bitlist) error {
	n := b.Len()
	if bl.Len() != uint64(n) {
		return errors.Wrapf(ErrLength, "bitlist has %d bits, want %d", bl.Len(), n)
	}
	var next Bits[L, S]
	for i := 0; i < n; i++ {
		if bl.BitAt(uint64(i)) {
			next.Ref(i).Set(true)
		}
	}
	*b = next
	return nil
}

// ToBitSet returns the elements as a BitSet of length Len().
func (b *Bits[L, S]) ToBitSet() *bitset.BitSet {
	n := b.Len()
	s := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		if b.Index(i) {
			s.Set(uint(i))
		}
	}
	return s
}

// FromBitSet replaces the elements with those of s. Every set bit of s must
// be below Len().
func (b *Bits[L, S]) FromBitSet(s *bitset.BitSet) error {
	n := uint(b.Len())
	var next Bits[L, S]
	for i, ok := s.NextSet(0); ok; i, ok = s.NextSet(i + 1) {
		if i >= n {
			return errors.Wrapf(ErrLength, "bit %d is set, length is %d", i, n)
		}
		next.Ref(int(i)).Set(true)
	}
	*b = next
	return nil
}

// ToRoaring returns the indices of the true elements as a roaring bitmap.
// Len() must not exceed 1<<32.
func (b *Bits[L, S]) ToRoaring() *roaring.Bitmap {
	rb := roaring.New()
	for i, n := 0, b.Len(); i < n; i++ {
		if b.Index(i) {
			rb.Add(uint32(i))
		}
	}
	return rb
}

// FromRoaring replaces the elements with the members of rb. Every member
// must be below Len().
func (b *Bits[L, S]) FromRoaring(rb *roaring.Bitmap) error {
	n := uint64(b.Len())
	var next Bits[L, S]
	it := rb.Iterator()
	for it.HasNext() {
		v := it.Next()
		if uint64(v) >= n {
			return errors.Wrapf(ErrLength, "member %d, length is %d", v, n)
		}
		next.Ref(int(v)).Set(true)
	}
	*b = next
	return nil
}
