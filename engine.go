package parsecache

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/gagliardetto/solana-go"
)

// engine is the parse-and-cache core.
//
// snap maps cache key -> last outcome. A present key with a nil value is the
// Missing marker (no data, or last decode failed); an absent key is Unset.
// Entries are only ever overwritten, never evicted.
//
// Every mutating refresh clones snap and swaps the clone in whole, so a
// projection taken before a refresh keeps reading a consistent map.
type engine[T any] struct {
	ns    string
	dec   Decoder[T]
	prov  Provider
	keyOf KeyFunc
	log   Logger
	hooks Hooks

	mu   sync.RWMutex
	snap map[string]*ParsedRecord[T]
}

func newEngine[T any](opts Options[T]) (*engine[T], error) {
	if opts.Namespace == "" {
		return nil, fmt.Errorf("parsecache: namespace is required")
	}
	if opts.Decoder == nil {
		return nil, fmt.Errorf("parsecache: decoder is required")
	}

	e := &engine[T]{
		ns:   opts.Namespace,
		dec:  opts.Decoder,
		prov: opts.Provider,
		snap: make(map[string]*ParsedRecord[T]),
	}

	// defaults
	e.log = coalesce[Logger](opts.Logger, NopLogger{})
	e.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	if opts.KeyOf != nil {
		e.keyOf = opts.KeyOf
	} else {
		e.keyOf = Base58Key
	}

	return e, nil
}

func (e *engine[T]) Refresh(ids []*solana.PublicKey, raws []*RawRecord) []Entry[T] {
	e.mu.Lock()
	cur := e.snap
	next := cur
	dirty := false

	// clone lazily: an all-reused batch commits the old map untouched and
	// every projected pointer stays identical.
	store := func(k string, rec *ParsedRecord[T]) {
		if !dirty {
			next = maps.Clone(cur)
			dirty = true
		}
		next[k] = rec
	}

	var updated, reused, missing, failed int
	for i, id := range ids {
		var raw *RawRecord
		if i < len(raws) {
			raw = raws[i]
		}

		switch {
		case raw != nil:
			k := e.keyOf(raw.Pubkey)
			if prev := next[k]; prev != nil && bytes.Equal(prev.Raw, raw.Data) {
				reused++
				e.hooks.EntryReused(k)
				continue
			}
			v, err := e.dec.Decode(raw)
			if err != nil {
				failed++
				perr := &ParseError{Key: k, Record: raw, Cause: err}
				e.hooks.ParseFailed(perr)
				e.log.Warn("decode failed; key marked missing", Fields{
					"ns": e.ns, "key": k, "err": err,
				})
				store(k, nil)
				continue
			}
			updated++
			e.hooks.EntryStored(k, len(raw.Data))
			store(k, &ParsedRecord[T]{
				Pubkey: raw.Pubkey,
				Value:  v,
				Meta:   raw.Meta,
				Raw:    raw.Data,
			})

		case id != nil:
			// data confirmed absent; not an error, no sink call.
			k := e.keyOf(*id)
			if prev, ok := next[k]; !ok || prev != nil {
				missing++
				e.hooks.RawMissing(k)
				store(k, nil)
			}

		default:
			// no subscription at this position
		}
	}

	e.snap = next
	e.mu.Unlock()

	if dirty {
		e.log.Debug("refresh committed", Fields{
			"ns": e.ns, "updated": updated, "reused": reused,
			"missing": missing, "failed": failed,
		})
	}
	return project(ids, next, e.keyOf)
}

func (e *engine[T]) RefreshFrom(ctx context.Context, ids []*solana.PublicKey) ([]Entry[T], error) {
	if e.prov == nil {
		return nil, fmt.Errorf("parsecache: no provider configured")
	}
	raws, err := e.prov.Fetch(ctx, ids)
	if err != nil {
		return nil, err
	}
	return e.Refresh(ids, raws), nil
}

func (e *engine[T]) TrackMany(ids []*solana.PublicKey) []Entry[T] {
	e.mu.RLock()
	snap := e.snap
	e.mu.RUnlock()
	return project(ids, snap, e.keyOf)
}

// TrackOne delegates to the batch projection with a singleton list.
// Loading is true iff a subscription was requested (id non-nil) and no
// outcome has been recorded yet.
func (e *engine[T]) TrackOne(id *solana.PublicKey) Single[T] {
	ent := e.TrackMany([]*solana.PublicKey{id})[0]
	return Single[T]{
		Loading: id != nil && ent.State == StateUnset,
		Data:    ent.Record,
	}
}

func (e *engine[T]) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.snap)
}

// project is the pure read phase: output mirrors ids in length and order.
// snap must not be mutated after publication.
func project[T any](ids []*solana.PublicKey, snap map[string]*ParsedRecord[T], keyOf KeyFunc) []Entry[T] {
	out := make([]Entry[T], len(ids))
	for i, id := range ids {
		if id == nil {
			continue // zero Entry is Unset
		}
		rec, ok := snap[keyOf(*id)]
		switch {
		case !ok:
			// never observed
		case rec == nil:
			out[i] = Entry[T]{State: StateMissing}
		default:
			out[i] = Entry[T]{State: StateParsed, Record: rec}
		}
	}
	return out
}
