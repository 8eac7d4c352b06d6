package fixed

import "github.com/pkg/errors"

// MarshalText encodes the elements as N characters '0' or '1', element 0 first.
func (b Bits[L, S]) MarshalText() ([]byte, error) {
	out := make([]byte, b.Len())
	for i := range out {
		out[i] = '0'
		if b.Index(i) {
			out[i] = '1'
		}
	}
	return out, nil
}

// UnmarshalText decodes the format produced by MarshalText. The input must
// hold exactly N characters; on error b is left unchanged.
func (b *Bits[L, S]) UnmarshalText(text []byte) error {
	n := b.Len()
	if len(text) != n {
		return errors.Wrapf(ErrLength, "got %d bits, want %d", len(text), n)
	}
	var next Bits[L, S]
	for i, c := range text {
		switch c {
		case '0':
		case '1':
			next.Ref(i).Set(true)
		default:
			return errors.Wrapf(ErrSyntax, "unexpected %q at offset %d", c, i)
		}
	}
	*b = next
	return nil
}

func (b Bits[L, S]) String() string {
	text, _ := b.MarshalText()
	return string(text)
}
