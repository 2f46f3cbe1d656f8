package codec

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/solwatch/parsecache"
)

// Msgpack decodes account data using vmihailenco/msgpack/v5.
// The zero value is ready to use.
//
// Be mindful of struct tag differences vs JSON. Use `msgpack:"fieldName"`
// tags if you need explicit control.
type Msgpack[T any] struct{}

func (Msgpack[T]) Decode(rec *parsecache.RawRecord) (T, error) {
	var v T
	err := msgpack.Unmarshal(rec.Data, &v)
	return v, err
}
