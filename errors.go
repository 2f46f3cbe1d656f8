package parsecache

import (
	"fmt"
)

// ParseError is delivered to Hooks.ParseFailed when a decoder rejects a raw
// record. It carries the offending record so the sink can inspect what was
// actually fetched.
type ParseError struct {
	Key    string
	Record *RawRecord
	Cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsecache: decode %q (%d bytes) failed: %v",
		e.Key, len(e.Record.Data), e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }
