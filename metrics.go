package fixed

import "unsafe"

// Metrics returns a snapshot of the array's layout.
func (a *Array[T, A]) Metrics() ArrayMetrics {
	var zero T
	return ArrayMetrics{
		Len:       a.Len(),
		ElemSize:  int(unsafe.Sizeof(zero)),
		SizeBytes: int(unsafe.Sizeof(a.data)),
	}
}

// ArrayMetrics describes the layout of an Array.
type ArrayMetrics struct {
	Len       int // Number of elements
	ElemSize  int // Bytes per element
	SizeBytes int // Bytes of inline storage
}

// Density returns the ratio of true elements to Len() (0.0 to 1.0).
// Returns 0.0 for an empty container.
func (b *Bits[L, S]) Density() float64 {
	n := b.Len()
	if n == 0 {
		return 0
	}
	return float64(b.Count()) / float64(n)
}

// Metrics returns a snapshot of the container's layout and contents.
func (b *Bits[L, S]) Metrics() BitsMetrics {
	n := b.Len()
	return BitsMetrics{
		Len:         n,
		Bytes:       byteLen(n),
		PaddingBits: byteLen(n)*8 - n,
		Count:       b.Count(),
		Density:     b.Density(),
	}
}

// BitsMetrics contains statistical information about a Bits container.
type BitsMetrics struct {
	Len         int     // Number of elements
	Bytes       int     // Bytes of packed storage
	PaddingBits int     // Unused bits in the final byte
	Count       int     // Elements currently true
	Density     float64 // Ratio of true elements to Len (0.0-1.0)
}
