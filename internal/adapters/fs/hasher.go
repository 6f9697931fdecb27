// Package fs provides file system adapters for hashing files and caching their hashes.
package fs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/patchwork/internal/adapters/progress" //nolint:depguard // Discard sink default
	"go.trai.ch/patchwork/internal/core/domain"
	"go.trai.ch/patchwork/internal/core/ports"
	"go.trai.ch/zerr"
)

// memoryStreamName is the name reported when hashing in-memory data.
const memoryStreamName = "memory stream"

var _ ports.Hasher = (*Hasher)(nil)

var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, domain.CopyBufferSize)
		return &b
	},
}

// Hasher computes seeded XXH64 digests, reporting progress after every chunk.
type Hasher struct {
	sink ports.ProgressSink
}

// NewHasher creates a new Hasher. A nil sink discards progress.
func NewHasher(sink ports.ProgressSink) *Hasher {
	return &Hasher{sink: progress.OrDiscard(sink)}
}

// HashReader hashes r until EOF in CopyBufferSize chunks, reporting "Hashing <name>".
func (h *Hasher) HashReader(ctx context.Context, name string, r io.Reader, size int64) (domain.Hash, error) {
	bp, _ := bufPool.Get().(*[]byte)
	defer bufPool.Put(bp)
	buf := *bp

	digest := xxhash.NewWithSeed(domain.HashSeed)
	msg := "Hashing " + name

	var read int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			_, _ = digest.Write(buf[:n])
			read += int64(n)
			h.sink.Report(ctx, msg, domain.FromRatio(read, size))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.NullHash, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "name", name)
		}
	}

	return domain.NewHash(digest.Sum64()), nil
}

// HashBytes hashes data, reporting "Hashing memory stream".
func (h *Hasher) HashBytes(ctx context.Context, data []byte) domain.Hash {
	// A bytes.Reader never fails.
	hash, _ := h.HashReader(ctx, memoryStreamName, bytes.NewReader(data), int64(len(data)))
	return hash
}
