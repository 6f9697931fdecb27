package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"go.trai.ch/patchwork/internal/core/domain"
	"go.trai.ch/patchwork/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.HashCache = (*HashCache)(nil)

// sidecarWriteMu serializes sidecar writes across every HashCache in the process.
var sidecarWriteMu sync.Mutex

// HashStats counts cached-hash lookups.
type HashStats struct {
	// Hits is the number of calls answered from a valid sidecar.
	Hits int64
	// Misses is the number of calls that had to read and hash the file.
	Misses int64
}

// HashCache implements ports.HashCache with <file>.hash sidecars.
type HashCache struct {
	hasher ports.Hasher
	logger ports.Logger

	hits   atomic.Int64
	misses atomic.Int64
}

// NewHashCache creates a HashCache.
func NewHashCache(hasher ports.Hasher, logger ports.Logger) *HashCache {
	return &HashCache{
		hasher: hasher,
		logger: logger,
	}
}

// FileHash reads and hashes the file at path.
func (c *HashCache) FileHash(ctx context.Context, path string, opts ...ports.HashOption) (domain.Hash, error) {
	o := ports.ApplyHashOptions(opts...)

	//nolint:gosec // Path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		if o.NullOnIOError {
			return domain.NullHash, nil
		}
		return domain.NullHash, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	var size int64
	if info, statErr := f.Stat(); statErr == nil {
		size = info.Size()
	}

	h, err := c.hasher.HashReader(ctx, filepath.Base(path), f, size)
	if err != nil {
		if o.NullOnIOError {
			return domain.NullHash, nil
		}
		return domain.NullHash, zerr.With(err, "path", path)
	}
	return h, nil
}

// TryGetHashCache reads the sidecar of path without hashing anything.
// Any problem with the sidecar is a miss; failing to stat path itself is an error.
func (c *HashCache) TryGetHashCache(path string) domain.HashLookup {
	info, err := os.Stat(path)
	if err != nil {
		return domain.HashLookup{
			State: domain.LookupError,
			Err:   zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path),
		}
	}
	return c.lookup(path, info)
}

// FileHashCached returns the sidecar hash when it is valid for the file's current
// mtime. Otherwise it hashes the file and records a new sidecar. Failing to write
// the sidecar is logged and does not fail the call.
func (c *HashCache) FileHashCached(ctx context.Context, path string, opts ...ports.HashOption) (domain.Hash, error) {
	// The mtime is taken before hashing so a concurrent modification leaves a stale record behind.
	info, statErr := os.Stat(path)
	if statErr == nil {
		if lookup := c.lookup(path, info); lookup.State == domain.LookupHit {
			c.hits.Add(1)
			return lookup.Hash, nil
		}
	}

	c.misses.Add(1)
	h, err := c.FileHash(ctx, path, opts...)
	if err != nil || h.IsNull() || statErr != nil {
		return h, err
	}

	if err := c.writeRecord(path, modTime(info), h); err != nil && c.logger != nil {
		c.logger.Warn(fmt.Sprintf("could not record hash of %s: %v", path, err))
	}
	return h, nil
}

// FileHashCachedAsync runs FileHashCached on its own goroutine so no pool worker is held.
func (c *HashCache) FileHashCachedAsync(ctx context.Context, path string, opts ...ports.HashOption) *domain.Future[domain.Hash] {
	fut := domain.NewFuture[domain.Hash]()
	go func() {
		fut.Resolve(c.FileHashCached(ctx, path, opts...))
	}()
	return fut
}

// Stats returns hit and miss counts of FileHashCached.
func (c *HashCache) Stats() HashStats {
	return HashStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}
}

func (c *HashCache) lookup(path string, info os.FileInfo) domain.HashLookup {
	//nolint:gosec // Sidecar path derives from the caller's path
	data, err := os.ReadFile(domain.HashFilePath(path))
	if err != nil {
		return domain.HashLookup{State: domain.LookupMiss}
	}

	var rec domain.HashRecord
	if err := rec.UnmarshalBinary(data); err != nil {
		return domain.HashLookup{State: domain.LookupMiss}
	}
	if !rec.Matches(modTime(info)) {
		return domain.HashLookup{State: domain.LookupMiss}
	}

	return domain.HashLookup{State: domain.LookupHit, Hash: domain.NewHash(rec.Hash)}
}

func (c *HashCache) writeRecord(path string, mtime uint64, h domain.Hash) error {
	data, err := domain.NewHashRecord(mtime, h).MarshalBinary()
	if err != nil {
		return zerr.Wrap(err, domain.ErrHashRecordWriteFailed.Error())
	}

	sidecarWriteMu.Lock()
	defer sidecarWriteMu.Unlock()

	sidecar := domain.HashFilePath(path)
	if err := os.WriteFile(sidecar, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrHashRecordWriteFailed.Error()), "path", sidecar)
	}
	return nil
}

// modTime is the file's last-modified time in whole unix seconds.
func modTime(info os.FileInfo) uint64 {
	return uint64(info.ModTime().Unix()) //nolint:gosec // Pre-1970 mtimes wrap, which only causes a miss
}
