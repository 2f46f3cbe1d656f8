package codec

import (
	"encoding/json"

	"github.com/solwatch/parsecache"
)

// JSON decodes account data that carries a JSON document.
type JSON[T any] struct{}

func (JSON[T]) Decode(rec *parsecache.RawRecord) (T, error) {
	var v T
	err := json.Unmarshal(rec.Data, &v)
	return v, err
}
