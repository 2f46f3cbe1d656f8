// usage:
//
// import (
//
//	"log/slog"
//
//	"github.com/solwatch/parsecache"
//	"github.com/solwatch/parsecache/codec"
//	"github.com/solwatch/parsecache/hooks/async"
//	"github.com/solwatch/parsecache/sloghooks"
//
// )
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    ReusedEvery: 100, // sample logs: ~every 100th reuse
//	    StoredEvery: 10,  // ~every 10th store
//	})
//
// hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
// defer hooks.Close()
//
//	cache, _ := parsecache.New[Market](parsecache.Options[Market]{
//	    Namespace: "markets",
//	    Decoder:   codec.Borsh[Market]{},
//	    Hooks:     hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/solwatch/parsecache"
)

type Hooks struct {
	inner parsecache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ parsecache.Hooks = (*Hooks)(nil)

func New(inner parsecache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) ParseFailed(err *parsecache.ParseError) {
	h.try(func() { h.inner.ParseFailed(err) })
}
func (h *Hooks) RawMissing(k string)  { h.try(func() { h.inner.RawMissing(k) }) }
func (h *Hooks) EntryReused(k string) { h.try(func() { h.inner.EntryReused(k) }) }
func (h *Hooks) EntryStored(k string, size int) {
	h.try(func() { h.inner.EntryStored(k, size) })
}
