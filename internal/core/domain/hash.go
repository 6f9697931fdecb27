package domain

import (
	"fmt"
	"strconv"

	"go.trai.ch/zerr"
)

// HashSeed is the fixed seed of the 64-bit content hash.
const HashSeed uint64 = 0x42

// Hash is a 64-bit content hash. The zero value is NullHash, which callers get back
// when they asked for I/O errors to be swallowed.
type Hash struct {
	value uint64
	valid bool
}

// NullHash is the sentinel for "no hash available".
var NullHash = Hash{}

// NewHash wraps a computed digest.
func NewHash(v uint64) Hash {
	return Hash{value: v, valid: true}
}

// ParseHash parses the 16 digit hexadecimal form produced by Hex.
func ParseHash(s string) (Hash, error) {
	if len(s) != 16 {
		return NullHash, zerr.With(ErrInvalidHash, "hash", s)
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return NullHash, zerr.With(zerr.Wrap(err, ErrInvalidHash.Error()), "hash", s)
	}
	return NewHash(v), nil
}

// IsNull reports whether h is the null sentinel.
func (h Hash) IsNull() bool {
	return !h.valid
}

// Uint64 returns the raw digest.
func (h Hash) Uint64() uint64 {
	return h.value
}

// Hex returns the digest as 16 lowercase hexadecimal digits, or "" for NullHash.
func (h Hash) Hex() string {
	if !h.valid {
		return ""
	}
	return fmt.Sprintf("%016x", h.value)
}

// String implements fmt.Stringer.
func (h Hash) String() string {
	if !h.valid {
		return "<null>"
	}
	return h.Hex()
}
