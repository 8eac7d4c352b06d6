package fixed

import "github.com/pkg/errors"

var (
	// ErrOutOfRange is returned by checked accessors when the index is not
	// within [0, Len()).
	ErrOutOfRange = errors.New("index out of range")

	// ErrShape reports type arguments that do not describe a valid container
	// layout, e.g. Array[int, [4]int32] or Bits[[10]struct{}, [1]byte].
	ErrShape = errors.New("invalid container shape")

	// ErrLength is returned when external data does not fit the fixed length.
	ErrLength = errors.New("length mismatch")

	// ErrSyntax is returned when decoding text that is not made of '0' and '1'.
	ErrSyntax = errors.New("invalid bit string")
)
