package parsecache

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// Decoder turns one raw account snapshot into a typed value.
// Implementations must be pure: same record, same result. Ready-made
// decoders live in the codec subpackage.
type Decoder[T any] interface {
	Decode(rec *RawRecord) (T, error)
}

// DecoderFunc adapts a plain function to a Decoder.
type DecoderFunc[T any] func(*RawRecord) (T, error)

func (f DecoderFunc[T]) Decode(rec *RawRecord) (T, error) { return f(rec) }

// Provider fetches raw account snapshots in bulk.
//
// Fetch is positional: the result has the same length as ids, result[i]
// belongs to ids[i], a nil id yields a nil record, and a non-nil id whose
// account does not exist yields a nil record as well. Implementations MUST
// NOT reorder, drop, or deduplicate positions.
type Provider interface {
	Fetch(ctx context.Context, ids []*solana.PublicKey) ([]*RawRecord, error)
}

// Cache is the parsed-account cache API. T is the caller's decoded type.
//
// Refresh and RefreshFrom mutate; TrackMany and TrackOne only project the
// current snapshot. Refresh cycles are serialized against each other and a
// projection never observes a half-applied batch.
type Cache[T any] interface {
	// Refresh applies one batch of raw records and returns the projection
	// for ids. ids and raws are positional parallels; missing trailing raws
	// are treated as nil. Decode failures never propagate: they are reported
	// to Hooks.ParseFailed and recorded as Missing for that key only.
	Refresh(ids []*solana.PublicKey, raws []*RawRecord) []Entry[T]

	// RefreshFrom fetches raw records from the configured Provider, then
	// applies them as Refresh does. A fetch error is returned as-is and
	// leaves the cache untouched.
	RefreshFrom(ctx context.Context, ids []*solana.PublicKey) ([]Entry[T], error)

	// TrackMany projects the current snapshot for ids, order-preserving and
	// length-preserving. A nil id projects a zero (Unset) entry regardless
	// of cache contents.
	TrackMany(ids []*solana.PublicKey) []Entry[T]

	// TrackOne is the single-account convenience projection.
	TrackOne(id *solana.PublicKey) Single[T]

	// Len reports the number of keys ever observed (Parsed or Missing).
	Len() int
}

// Options tune the cache. Namespace and Decoder are required; everything
// else has a usable default.
type Options[T any] struct {
	// Required
	Namespace string // logical namespace, used in logs. e.g. "tokens", "markets"
	Decoder   Decoder[T]

	Provider Provider // optional; required only for RefreshFrom
	KeyOf    KeyFunc  // nil => Base58Key
	Logger   Logger   // nil => NopLogger
	Hooks    Hooks    // nil => NopHooks
}

func New[T any](opts Options[T]) (Cache[T], error) {
	return newEngine[T](opts)
}
