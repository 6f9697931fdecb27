package domain

// LookupState is the outcome of a non-computing cache lookup.
type LookupState uint8

const (
	// LookupMiss means no usable entry exists. Stale or corrupt entries are misses too.
	LookupMiss LookupState = iota
	// LookupHit means the entry exists and is valid.
	LookupHit
	// LookupError means the lookup itself failed, e.g. the source file cannot be stat'ed.
	LookupError
)

// String returns the lower-case name of the state.
func (s LookupState) String() string {
	switch s {
	case LookupHit:
		return "hit"
	case LookupError:
		return "error"
	default:
		return "miss"
	}
}

// HashLookup is the outcome of reading a hash sidecar.
type HashLookup struct {
	State LookupState
	// Hash is only set when State is LookupHit.
	Hash Hash
	// Err is only set when State is LookupError.
	Err error
}

// PatchLookup is the outcome of reading a patch cache entry.
type PatchLookup struct {
	State LookupState
	// Patch is only set when State is LookupHit.
	Patch []byte
	// Err is only set when State is LookupError.
	Err error
}
