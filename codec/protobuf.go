package codec

import (
	"google.golang.org/protobuf/proto"

	"github.com/solwatch/parsecache"
)

// Protobuf decodes account data carrying a protobuf message. Indexer
// sidecars that re-publish accounts as protobuf pair with this decoder.
type Protobuf[T proto.Message] struct {
	new func() T // constructor for a concrete message (e.g., func() *pb.Market { return &pb.Market{} })
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Decode(rec *parsecache.RawRecord) (T, error) {
	m := c.new()
	err := proto.Unmarshal(rec.Data, m)
	return m, err
}
