// Package wire frames raw account records for the caching providers.
// Framing is strict: decoders reject unknown magic/version and trailing bytes
// so foreign or corrupt store entries surface as ErrCorrupt instead of
// producing garbage records.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"

	"github.com/gagliardetto/solana-go"

	"github.com/solwatch/parsecache"
)

const (
	version byte = 1

	flagExecutable byte = 1 << 0
)

var (
	ErrCorrupt = errors.New("parsecache: corrupt raw-record frame")
	magic4     = [...]byte{'P', 'R', 'A', 'W'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Frame layout:
//
//	magic(4) | ver(1) | pubkey(32) | owner(32) | lamports(u64 be) |
//	slot(u64 be) | flags(1) | dlen(u32 be) | data(dlen)
func Encode(rec *parsecache.RawRecord) []byte {
	var buf bytes.Buffer
	buf.Grow(4 + 1 + 32 + 32 + 8 + 8 + 1 + 4 + len(rec.Data))

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.Write(rec.Pubkey[:])
	buf.Write(rec.Meta.Owner[:])

	var u8 [8]byte
	var u4 [4]byte

	binary.BigEndian.PutUint64(u8[:], rec.Meta.Lamports)
	buf.Write(u8[:])

	binary.BigEndian.PutUint64(u8[:], rec.Meta.Slot)
	buf.Write(u8[:])

	var flags byte
	if rec.Meta.Executable {
		flags |= flagExecutable
	}
	buf.WriteByte(flags)

	binary.BigEndian.PutUint32(u4[:], uint32(len(rec.Data)))
	buf.Write(u4[:])

	buf.Write(rec.Data)
	return buf.Bytes()
}

func Decode(b []byte) (*parsecache.RawRecord, error) {
	const hdr = 4 + 1 + 32 + 32 + 8 + 8 + 1 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version {
		return nil, ErrCorrupt
	}

	off := 5

	var pk, owner solana.PublicKey
	copy(pk[:], b[off:off+32])
	off += 32
	copy(owner[:], b[off:off+32])
	off += 32

	lamports := binary.BigEndian.Uint64(b[off : off+8])
	off += 8
	slot := binary.BigEndian.Uint64(b[off : off+8])
	off += 8

	flags := b[off]
	off++

	dlen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if dlen < 0 || dlen != len(b)-off { // strict: no trailing bytes
		return nil, ErrCorrupt
	}

	return &parsecache.RawRecord{
		Pubkey: pk,
		Data:   b[off : off+dlen],
		Meta: parsecache.AccountMeta{
			Owner:      owner,
			Lamports:   lamports,
			Slot:       slot,
			Executable: flags&flagExecutable != 0,
		},
	}, nil
}
