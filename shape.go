package fixed

import (
	"reflect"

	"github.com/pkg/errors"
)

// ArrayShape reports whether A is an array type [N]T and therefore a valid
// storage argument for Array[T, A]. The error wraps ErrShape.
func ArrayShape[T, A any]() error {
	at := reflect.TypeFor[A]()
	et := reflect.TypeFor[T]()
	if at.Kind() != reflect.Array {
		return errors.Wrapf(ErrShape, "storage %s is not an array", at)
	}
	if at.Elem() != et {
		return errors.Wrapf(ErrShape, "storage %s does not hold %s", at, et)
	}
	return nil
}

// BitsShape reports whether L and S are valid arguments for Bits[L, S]:
// L must be an array type whose length is the bit count (conventionally
// [N]struct{}, which takes no space) and S must be [(N+7)/8]byte.
// The error wraps ErrShape.
func BitsShape[L, S any]() error {
	lt := reflect.TypeFor[L]()
	if lt.Kind() != reflect.Array {
		return errors.Wrapf(ErrShape, "length marker %s is not an array", lt)
	}
	st := reflect.TypeFor[S]()
	if st.Kind() != reflect.Array || st.Elem().Kind() != reflect.Uint8 {
		return errors.Wrapf(ErrShape, "storage %s is not a byte array", st)
	}
	if want := byteLen(lt.Len()); st.Len() != want {
		return errors.Wrapf(ErrShape, "storage %s holds %d bytes, %d bits need %d", st, st.Len(), lt.Len(), want)
	}
	return nil
}

// arrayLen returns N for Array[T, A], panicking on an invalid shape.
func arrayLen[T, A any]() int {
	if err := ArrayShape[T, A](); err != nil {
		panic(err)
	}
	return reflect.TypeFor[A]().Len()
}

// bitsLen returns N for Bits[L, S], panicking on an invalid shape.
func bitsLen[L, S any]() int {
	if err := BitsShape[L, S](); err != nil {
		panic(err)
	}
	return reflect.TypeFor[L]().Len()
}

// byteLen is the number of bytes needed to pack n bits.
func byteLen(n int) int {
	return (n + 7) / 8
}
