package codec

import (
	"github.com/solwatch/parsecache"
)

// Raw is the identity decoder: the value is the raw bytes themselves.
// Useful when a consumer only wants change detection and referential
// stability without interpreting the data.
type Raw struct{}

func (Raw) Decode(rec *parsecache.RawRecord) ([]byte, error) { return rec.Data, nil }
