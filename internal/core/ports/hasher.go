package ports

import (
	"context"
	"io"

	"go.trai.ch/patchwork/internal/core/domain"
)

// Hasher computes 64-bit content hashes of streams, reporting progress as it reads.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashReader hashes r until EOF. size is only used for progress and may be zero if unknown.
	HashReader(ctx context.Context, name string, r io.Reader, size int64) (domain.Hash, error)
	// HashBytes hashes an in-memory blob.
	HashBytes(ctx context.Context, data []byte) domain.Hash
}

// HashOptions controls how file hashing treats I/O failures.
type HashOptions struct {
	// NullOnIOError turns I/O errors into domain.NullHash with a nil error.
	NullOnIOError bool
}

// HashOption is a functional option for file hashing.
type HashOption func(*HashOptions)

// WithNullOnIOError makes I/O errors yield domain.NullHash instead of an error.
func WithNullOnIOError() HashOption {
	return func(o *HashOptions) {
		o.NullOnIOError = true
	}
}

// ApplyHashOptions folds opts into a HashOptions value.
func ApplyHashOptions(opts ...HashOption) HashOptions {
	var o HashOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// HashCache memoizes file hashes in <file>.hash sidecars.
type HashCache interface {
	// FileHash always reads and hashes the file.
	FileHash(ctx context.Context, path string, opts ...HashOption) (domain.Hash, error)
	// TryGetHashCache reads the sidecar without computing anything.
	TryGetHashCache(path string) domain.HashLookup
	// FileHashCached returns the sidecar hash when valid, otherwise computes and records it.
	FileHashCached(ctx context.Context, path string, opts ...HashOption) (domain.Hash, error)
	// FileHashCachedAsync runs FileHashCached off the pool and returns its future.
	FileHashCachedAsync(ctx context.Context, path string, opts ...HashOption) *domain.Future[domain.Hash]
}
