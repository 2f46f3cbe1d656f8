package codec

import (
	"fmt"

	"github.com/solwatch/parsecache"
)

// Limit wraps another decoder to enforce a maximum allowed account-data size
// before decoding. If MaxDecode <= 0, size limiting is disabled.
//
// Typical use: protect against oversized accounts coming from an untrusted
// or misconfigured feed.
type Limit[T any] struct {
	// Inner is the underlying decoder being wrapped. It must be set.
	Inner parsecache.Decoder[T]
	// MaxDecode is the maximum permitted length (in bytes) of rec.Data.
	// If exceeded, Decode returns an error without invoking Inner.
	MaxDecode int
}

func (c Limit[T]) Decode(rec *parsecache.RawRecord) (T, error) {
	if c.MaxDecode > 0 && len(rec.Data) > c.MaxDecode {
		var zero T
		return zero, fmt.Errorf("account data too large: %d > %d", len(rec.Data), c.MaxDecode)
	}
	return c.Inner.Decode(rec)
}
