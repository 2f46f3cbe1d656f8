package codec

import (
	"encoding/binary"
	"testing"

	"github.com/solwatch/parsecache"
)

func rec(data []byte) *parsecache.RawRecord {
	return &parsecache.RawRecord{Data: data}
}

type market struct {
	BaseLots  uint64 `json:"base_lots"`
	QuoteLots uint32 `json:"quote_lots"`
}

func TestJSON(t *testing.T) {
	got, err := JSON[market]{}.Decode(rec([]byte(`{"base_lots":7,"quote_lots":3}`)))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.BaseLots != 7 || got.QuoteLots != 3 {
		t.Fatalf("got %+v", got)
	}

	if _, err := (JSON[market]{}).Decode(rec([]byte("{"))); err == nil {
		t.Fatalf("malformed JSON should error")
	}
}

func TestBorsh(t *testing.T) {
	// borsh: little-endian fixed-width fields in declaration order
	data := make([]byte, 12)
	binary.LittleEndian.PutUint64(data[0:8], 7)
	binary.LittleEndian.PutUint32(data[8:12], 3)

	got, err := Borsh[market]{}.Decode(rec(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.BaseLots != 7 || got.QuoteLots != 3 {
		t.Fatalf("got %+v", got)
	}

	if _, err := (Borsh[market]{}).Decode(rec(data[:5])); err == nil {
		t.Fatalf("truncated borsh should error")
	}
}

func TestRaw(t *testing.T) {
	data := []byte{1, 2, 3}
	got, err := Raw{}.Decode(rec(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if &got[0] != &data[0] {
		t.Fatalf("Raw must be the identity decoder")
	}
}

func TestLimit(t *testing.T) {
	l := Limit[[]byte]{Inner: Raw{}, MaxDecode: 2}

	if _, err := l.Decode(rec([]byte{1, 2})); err != nil {
		t.Fatalf("within limit: %v", err)
	}
	if _, err := l.Decode(rec([]byte{1, 2, 3})); err == nil {
		t.Fatalf("over limit should error without invoking inner")
	}

	// disabled limit passes everything through
	l.MaxDecode = 0
	if _, err := l.Decode(rec(make([]byte, 1<<16))); err != nil {
		t.Fatalf("disabled limit: %v", err)
	}
}
