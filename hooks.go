package parsecache

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The engine calls them inside the refresh hot path.
type Hooks interface {
	// A decoder rejected a raw record; the key was marked missing.
	// This is the error sink: err carries the offending record and cause.
	ParseFailed(err *ParseError)

	// The provider confirmed no data for a requested key.
	RawMissing(key string)

	// Incoming raw bytes matched the cached copy byte-for-byte;
	// the existing entry was kept as-is.
	EntryReused(key string)

	// A freshly decoded entry was committed. size is the raw byte length.
	EntryStored(key string, size int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) ParseFailed(*ParseError)  {}
func (NopHooks) RawMissing(string)        {}
func (NopHooks) EntryReused(string)       {}
func (NopHooks) EntryStored(string, int)  {}
