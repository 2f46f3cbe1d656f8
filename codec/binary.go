package codec

import (
	bin "github.com/gagliardetto/binary"

	"github.com/solwatch/parsecache"
)

// Borsh decodes borsh-encoded account data, the layout used by most Solana
// programs. The zero value is ready to use.
type Borsh[T any] struct{}

func (Borsh[T]) Decode(rec *parsecache.RawRecord) (T, error) {
	var v T
	err := bin.NewBorshDecoder(rec.Data).Decode(&v)
	return v, err
}

// Bincode decodes bincode-encoded account data (native programs such as
// stake and vote use this layout). The zero value is ready to use.
type Bincode[T any] struct{}

func (Bincode[T]) Decode(rec *parsecache.RawRecord) (T, error) {
	var v T
	err := bin.NewBinDecoder(rec.Data).Decode(&v)
	return v, err
}
