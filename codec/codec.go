// Package codec provides ready-made parsecache.Decoder implementations for
// common account-data encodings. Every decoder receives the full RawRecord,
// not just the bytes, so format-specific decoders may consult the owner or
// slot when they need to.
package codec

import (
	"github.com/solwatch/parsecache"
)

// compile-time interface checks for the stateless decoders.
var (
	_ parsecache.Decoder[struct{}] = JSON[struct{}]{}
	_ parsecache.Decoder[struct{}] = Msgpack[struct{}]{}
	_ parsecache.Decoder[struct{}] = Borsh[struct{}]{}
	_ parsecache.Decoder[struct{}] = Bincode[struct{}]{}
	_ parsecache.Decoder[[]byte]   = Raw{}
)
