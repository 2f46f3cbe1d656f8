package codec

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/solwatch/parsecache"
)

// CBOR decodes account data using fxamacker/cbor.
// The zero value is NOT ready to use. Construct with NewCBOR or MustCBOR.
type CBOR[T any] struct {
	dec cbor.DecMode
}

var _ parsecache.Decoder[struct{}] = CBOR[struct{}]{}

// NewCBOR constructs a CBOR decoder from the given decode options.
// Pass a zero cbor.DecOptions for the library defaults.
func NewCBOR[T any](opts cbor.DecOptions) (CBOR[T], error) {
	dm, err := opts.DecMode()
	if err != nil {
		return CBOR[T]{}, err
	}
	return CBOR[T]{dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error.
// Should not use for prod just handy for package-level variables in tests/examples.
func MustCBOR[T any](opts cbor.DecOptions) CBOR[T] {
	c, err := NewCBOR[T](opts)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR[T]) Decode(rec *parsecache.RawRecord) (T, error) {
	var v T
	err := c.dec.Unmarshal(rec.Data, &v)
	return v, err
}
