// Package patch implements the binary patch cache and the bsdiff differ.
package patch

import (
	"context"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/patchwork/internal/adapters/progress" //nolint:depguard // Discard sink default
	"go.trai.ch/patchwork/internal/core/domain"
	"go.trai.ch/patchwork/internal/core/ports"
	"go.trai.ch/zerr"
)

// CreatingMessage is the status reported while a patch is being computed.
const CreatingMessage = "Creating Patch"

var _ ports.PatchCache = (*Cache)(nil)

// Cache stores patches as flat files named <hex(a)>_<hex(b)>.patch in a directory.
// Publishing is a rename of a uniquely named temp file, so concurrent producers of
// the same key never expose a partial file.
type Cache struct {
	dir         string
	differ      ports.Differ
	hasher      ports.Hasher
	logger      ports.Logger
	sink        ports.ProgressSink
	backoff     time.Duration
	maxAttempts int

	rename func(oldPath, newPath string) error
}

// Option configures a Cache.
type Option func(*Cache)

// WithBackoff sets the wait between publish attempts.
func WithBackoff(d time.Duration) Option {
	return func(c *Cache) {
		if d > 0 {
			c.backoff = d
		}
	}
}

// WithMaxPublishAttempts bounds the publish retries. Zero retries forever.
func WithMaxPublishAttempts(n int) Option {
	return func(c *Cache) {
		if n >= 0 {
			c.maxAttempts = n
		}
	}
}

// WithLogger sets the logger used for publish retries.
func WithLogger(l ports.Logger) Option {
	return func(c *Cache) {
		c.logger = l
	}
}

// WithSink sets the progress sink.
func WithSink(s ports.ProgressSink) Option {
	return func(c *Cache) {
		c.sink = progress.OrDiscard(s)
	}
}

// NewCache creates a Cache rooted at dir. The directory is created lazily.
func NewCache(dir string, differ ports.Differ, hasher ports.Hasher, opts ...Option) *Cache {
	c := &Cache{
		dir:     filepath.Clean(dir),
		differ:  differ,
		hasher:  hasher,
		sink:    progress.Discard,
		backoff: domain.DefaultPublishBackoff,
		rename:  os.Rename,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

// CreatePatch writes the patch turning a into b to w. A cached patch is streamed as is;
// otherwise the patch is computed, published and then streamed.
func (c *Cache) CreatePatch(ctx context.Context, a, b []byte, w io.Writer) error {
	key := domain.NewPatchKey(c.hasher.HashBytes(ctx, a), c.hasher.HashBytes(ctx, b))

	if err := os.MkdirAll(c.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPatchCacheCreateFailed.Error()), "dir", c.dir)
	}

	final := c.path(key)
	for {
		copied, err := copyFile(final, w)
		if err != nil {
			return zerr.With(err, "key", key.String())
		}
		if copied {
			return nil
		}

		tmp, err := c.compute(ctx, a, b)
		if err != nil {
			return zerr.With(err, "key", key.String())
		}
		if err := c.publish(ctx, tmp, final); err != nil {
			_ = os.Remove(tmp)
			return zerr.With(err, "key", key.String())
		}
	}
}

// TryGetPatch returns the cached patch for the pair without computing anything.
func (c *Cache) TryGetPatch(from, to domain.Hash) domain.PatchLookup {
	path := c.path(domain.NewPatchKey(from, to))

	//nolint:gosec // Path is built from hex digests under the cache dir
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		return domain.PatchLookup{State: domain.LookupHit, Patch: data}
	case errors.Is(err, iofs.ErrNotExist):
		return domain.PatchLookup{State: domain.LookupMiss}
	default:
		return domain.PatchLookup{
			State: domain.LookupError,
			Err:   zerr.With(zerr.Wrap(err, domain.ErrPatchReadFailed.Error()), "path", path),
		}
	}
}

// Has reports whether a patch for the pair is present.
func (c *Cache) Has(from, to domain.Hash) bool {
	info, err := os.Stat(c.path(domain.NewPatchKey(from, to)))
	return err == nil && info.Mode().IsRegular()
}

func (c *Cache) path(key domain.PatchKey) string {
	return filepath.Join(c.dir, key.FileName())
}

// compute diffs a into b in a fresh temp file and returns its path.
func (c *Cache) compute(ctx context.Context, a, b []byte) (string, error) {
	c.sink.Report(ctx, CreatingMessage, domain.NewPercent(0))

	tmp := filepath.Join(c.dir, uuid.NewString()+domain.TempFileExtension)
	//nolint:gosec // Temp path lives under the cache dir
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPatchCreateFailed.Error()), "path", tmp)
	}

	if err := c.differ.Diff(a, b, f); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", zerr.Wrap(err, domain.ErrPatchCreateFailed.Error())
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", zerr.With(zerr.Wrap(err, domain.ErrPatchCreateFailed.Error()), "path", tmp)
	}

	c.sink.Report(ctx, CreatingMessage, domain.NewPercent(1))
	return tmp, nil
}

// publish renames tmp onto final. When another producer won the race the temp file is
// dropped and nil is returned so the caller reads the winner. Other failures are retried
// after the backoff.
func (c *Cache) publish(ctx context.Context, tmp, final string) error {
	for attempt := 1; ; attempt++ {
		err := c.rename(tmp, final)
		if err == nil {
			return nil
		}
		if _, statErr := os.Stat(final); statErr == nil {
			_ = os.Remove(tmp)
			return nil
		}
		if c.maxAttempts > 0 && attempt >= c.maxAttempts {
			return zerr.With(zerr.Wrap(err, domain.ErrPatchPublishFailed.Error()), "attempts", attempt)
		}

		if c.logger != nil {
			c.logger.Debug("patch publish failed, retrying: " + err.Error())
		}

		timer := time.NewTimer(c.backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zerr.Wrap(ctx.Err(), domain.ErrPatchPublishFailed.Error())
		case <-timer.C:
		}
	}
}

// copyFile streams path into w. It reports false when path does not exist.
func copyFile(path string, w io.Writer) (bool, error) {
	//nolint:gosec // Path is built from hex digests under the cache dir
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrPatchReadFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	buf := make([]byte, domain.CopyBufferSize)
	if _, err := io.CopyBuffer(w, f, buf); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrPatchReadFailed.Error()), "path", path)
	}
	return true, nil
}
