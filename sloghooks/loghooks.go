package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/solwatch/parsecache"
)

type Options struct {
	// Sampling to avoid floods on hot events; 0/1 = log all.
	ReusedEvery uint64
	StoredEvery uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	reusedCtr atomic.Uint64
	storedCtr atomic.Uint64
}

var _ parsecache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

// ParseFailed is never sampled: one log line per failed decode.
func (h *Hooks) ParseFailed(err *parsecache.ParseError) {
	if h.l == nil {
		return
	}
	h.l.Warn("parsecache.parse_failed",
		"key", h.redact(err.Key),
		"bytes", len(err.Record.Data),
		"err", err.Cause)
}

func (h *Hooks) RawMissing(key string) {
	if h.l == nil {
		return
	}
	h.l.Info("parsecache.raw_missing",
		"key", h.redact(key))
}

func (h *Hooks) EntryReused(key string) {
	if h.l == nil || !sample(h.opts.ReusedEvery, &h.reusedCtr) {
		return
	}
	h.l.Debug("parsecache.entry_reused",
		"key", h.redact(key))
}

func (h *Hooks) EntryStored(key string, size int) {
	if h.l == nil || !sample(h.opts.StoredEvery, &h.storedCtr) {
		return
	}
	h.l.Debug("parsecache.entry_stored",
		"key", h.redact(key),
		"bytes", size)
}
