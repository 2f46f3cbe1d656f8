// Package parsecache implements a reactive, incrementally-updated cache that
// maps account public keys to their decoded representations, fed by a raw
// account-data provider.
//
// The engine re-decodes an account only when its raw bytes actually change;
// a byte-identical snapshot keeps the exact same *ParsedRecord pointer across
// refreshes, so consumers can use pointer equality to skip downstream work.
// Decode failures are isolated per key: one bad account never aborts a batch.
//
// Components:
//   - Decoder[T]: turns one RawRecord into a typed value. JSON, CBOR,
//     msgpack, borsh and protobuf implementations live under codec/.
//   - Provider: ordered batch fetch of raw account snapshots. An RPC
//     provider plus read-through caching middlewares live under provider/.
//   - Hooks: high-signal callbacks, including the decode-failure sink.
//
// Entry states per cache key:
//
//	Unset   - key never observed (or identifier absent)
//	Missing - provider reported no data, or the last decode failed
//	Parsed  - last successful decode
//
// Typical use:
//
//	cc, _ := parsecache.New[TokenAccount](parsecache.Options[TokenAccount]{
//	    Namespace: "tokens",
//	    Decoder:   codec.Borsh[TokenAccount]{},
//	    Provider:  rpcProvider,
//	})
//	entries, _ := cc.RefreshFrom(ctx, ids) // on every change notification
//	one := cc.TrackOne(id)                 // {Loading, Data}
package parsecache
