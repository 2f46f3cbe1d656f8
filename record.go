package parsecache

import (
	"github.com/gagliardetto/solana-go"
)

// KeyFunc derives the cache key for a public key. Must be deterministic and
// injective; two distinct keys mapping to the same string is a caller bug
// and is not detected here.
type KeyFunc func(solana.PublicKey) string

// Base58Key is the default KeyFunc.
func Base58Key(pk solana.PublicKey) string { return pk.String() }

// AccountMeta carries provider-level metadata for an account snapshot.
// The engine never interprets it; it travels from RawRecord to ParsedRecord
// unchanged.
type AccountMeta struct {
	Owner      solana.PublicKey
	Lamports   uint64
	Slot       uint64
	Executable bool
}

// RawRecord is one account's undecoded state at a point in time.
type RawRecord struct {
	Pubkey solana.PublicKey
	Data   []byte
	Meta   AccountMeta
}

// ParsedRecord is the result of successfully decoding a RawRecord.
// Raw holds the exact bytes Value was decoded from; the next refresh compares
// against it to decide whether re-decoding is needed at all.
type ParsedRecord[T any] struct {
	Pubkey solana.PublicKey
	Value  T
	Meta   AccountMeta
	Raw    []byte
}
