package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/solwatch/parsecache"
	"github.com/solwatch/parsecache/internal/util"
	"github.com/solwatch/parsecache/internal/wire"
)

// ReadThrough serves raw records from a byte store and falls back to an
// inner provider on miss, caching what it fetched. Absence is never cached:
// a nil record from the inner provider is passed through so the engine can
// record it, but the next fetch asks the inner provider again.
//
// Corrupt or foreign store entries are deleted on read (self-heal) and
// treated as misses.
type ReadThrough struct {
	store Store
	inner parsecache.Provider
	ns    string
	ttl   time.Duration
}

var _ parsecache.Provider = (*ReadThrough)(nil)

type Config struct {
	// Required
	Store Store
	Inner parsecache.Provider

	Namespace string        // store keyspace isolation; required
	TTL       time.Duration // per-record store TTL; 0 => no expiry
}

func NewReadThrough(cfg Config) (*ReadThrough, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("provider: store is required")
	}
	if cfg.Inner == nil {
		return nil, fmt.Errorf("provider: inner provider is required")
	}
	if cfg.Namespace == "" {
		return nil, fmt.Errorf("provider: namespace is required")
	}
	return &ReadThrough{
		store: cfg.Store,
		inner: cfg.Inner,
		ns:    cfg.Namespace,
		ttl:   cfg.TTL,
	}, nil
}

func (p *ReadThrough) Fetch(ctx context.Context, ids []*solana.PublicKey) ([]*parsecache.RawRecord, error) {
	out := make([]*parsecache.RawRecord, len(ids))

	var missIDs []*solana.PublicKey
	var missPos []int
	for i, id := range ids {
		if id == nil {
			continue
		}
		k := util.StorageKey(p.ns, id.String())
		b, ok, err := p.store.Get(ctx, k)
		if err != nil {
			return nil, err
		}
		if ok {
			rec, derr := wire.Decode(b)
			if derr == nil && rec.Pubkey == *id {
				out[i] = rec
				continue
			}
			_ = p.store.Del(ctx, k) // self-heal corrupt or misplaced frame
		}
		missIDs = append(missIDs, id)
		missPos = append(missPos, i)
	}

	if len(missIDs) == 0 {
		return out, nil
	}

	fetched, err := p.inner.Fetch(ctx, missIDs)
	if err != nil {
		return nil, err
	}
	if len(fetched) != len(missIDs) {
		return nil, fmt.Errorf("provider: inner returned %d records for %d ids", len(fetched), len(missIDs))
	}
	for j, rec := range fetched {
		out[missPos[j]] = rec
		if rec == nil {
			continue
		}
		k := util.StorageKey(p.ns, missIDs[j].String())
		frame := wire.Encode(rec)
		_, _ = p.store.Set(ctx, k, frame, int64(len(frame)), p.ttl) // best-effort warmup
	}
	return out, nil
}

// Invalidate drops the cached frame for one account so the next Fetch goes
// back to the inner provider.
func (p *ReadThrough) Invalidate(ctx context.Context, id solana.PublicKey) error {
	return p.store.Del(ctx, util.StorageKey(p.ns, id.String()))
}

// Close releases the underlying store.
func (p *ReadThrough) Close(ctx context.Context) error {
	return p.store.Close(ctx)
}
