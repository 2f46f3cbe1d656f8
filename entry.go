package parsecache

// State classifies one projected cache position.
type State uint8

const (
	// StateUnset means the key has never been observed, or the identifier at
	// that position was nil. Zero value on purpose: a zero Entry is Unset.
	StateUnset State = iota
	// StateMissing means the provider confirmed no data for the key, or the
	// last decode attempt failed.
	StateMissing
	// StateParsed means Record holds the last successful decode.
	StateParsed
)

func (s State) String() string {
	switch s {
	case StateUnset:
		return "unset"
	case StateMissing:
		return "missing"
	case StateParsed:
		return "parsed"
	default:
		return "unknown"
	}
}

// Entry is one position of a batch projection. Record is non-nil iff
// State == StateParsed.
type Entry[T any] struct {
	State  State
	Record *ParsedRecord[T]
}

// Single is the result of tracking exactly one account. Loading is true only
// while a requested account has produced no outcome yet, successful or not.
type Single[T any] struct {
	Loading bool
	Data    *ParsedRecord[T]
}
