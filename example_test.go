package fixed

import (
	"errors"
	"fmt"
)

// Example demonstrates basic fixed array usage
func Example() {
	// Five ints, all zero
	var a Array[int, [5]int]
	fmt.Printf("Size: %d, first: %d\n", a.Len(), *a.Index(0))

	a.Fill(7)
	p, _ := a.At(4)
	fmt.Printf("After fill: %d\n", *p)

	// Checked access reports out-of-range indices
	if _, err := a.At(5); errors.Is(err, ErrOutOfRange) {
		fmt.Println("At(5):", err)
	}

	// Output:
	// Size: 5, first: 0
	// After fill: 7
	// At(5): index out of range
}

// ExampleBits demonstrates the bit-packed bool array
func ExampleBits() {
	// Ten bools packed into two bytes
	var b Bits[[10]struct{}, [2]byte]

	r, _ := b.RefAt(3)
	r.Set(true)
	fmt.Println(b.String(), b.Count())

	b.Fill(true)
	fmt.Println(b.String(), b.Bytes())

	// Output:
	// 0001000000 1
	// 1111111111 [255 3]
}

// ExampleXorBit contrasts the toggling write with SetBit
func ExampleXorBit() {
	var b byte

	XorBit(&b, 2, true)
	fmt.Println(GetBit(b, 2))
	XorBit(&b, 2, true) // already set: toggles off
	fmt.Println(GetBit(b, 2))

	SetBit(&b, 2, true)
	SetBit(&b, 2, true) // already set: stays set
	fmt.Println(GetBit(b, 2))

	// Output:
	// true
	// false
	// true
}

// ExampleBitRef_Assign copies one bit into another
func ExampleBitRef_Assign() {
	var b Bits[[16]struct{}, [2]byte]
	b.Ref(1).Set(true)

	b.Ref(12).Assign(b.Ref(1))
	fmt.Println(b.Index(12))

	// Output:
	// true
}

// ExampleBits_Metrics demonstrates monitoring bit usage
func ExampleBits_Metrics() {
	var b Bits[[20]struct{}, [3]byte]
	for i := 0; i < b.Len(); i += 4 {
		b.Ref(i).Set(true)
	}

	metrics := b.Metrics()
	fmt.Printf("Metrics:\n")
	fmt.Printf("  Len: %d\n", metrics.Len)
	fmt.Printf("  Bytes: %d\n", metrics.Bytes)
	fmt.Printf("  Padding bits: %d\n", metrics.PaddingBits)
	fmt.Printf("  Count: %d\n", metrics.Count)
	fmt.Printf("  Density: %.1f%%\n", metrics.Density*100)

	// Output:
	// Metrics:
	//   Len: 20
	//   Bytes: 3
	//   Padding bits: 4
	//   Count: 5
	//   Density: 25.0%
}
