package patch

import (
	"bytes"
	"context"
	"io"
	"sync"

	"go.trai.ch/patchwork/internal/core/domain"
	"go.trai.ch/patchwork/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PatchCache = (*MemoryCache)(nil)

// MemoryCache is an in-memory PatchCache with the same keying as Cache.
type MemoryCache struct {
	differ ports.Differ
	hasher ports.Hasher

	mu      sync.RWMutex
	patches map[domain.PatchKey][]byte
}

// NewMemoryCache creates an empty MemoryCache.
func NewMemoryCache(differ ports.Differ, hasher ports.Hasher) *MemoryCache {
	return &MemoryCache{
		differ:  differ,
		hasher:  hasher,
		patches: make(map[domain.PatchKey][]byte),
	}
}

// CreatePatch writes the patch turning a into b to w, computing it on a miss.
func (m *MemoryCache) CreatePatch(ctx context.Context, a, b []byte, w io.Writer) error {
	key := domain.NewPatchKey(m.hasher.HashBytes(ctx, a), m.hasher.HashBytes(ctx, b))

	m.mu.RLock()
	data, ok := m.patches[key]
	m.mu.RUnlock()

	if !ok {
		var buf bytes.Buffer
		if err := m.differ.Diff(a, b, &buf); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrPatchCreateFailed.Error()), "key", key.String())
		}

		m.mu.Lock()
		if existing, found := m.patches[key]; found {
			data = existing
		} else {
			data = buf.Bytes()
			m.patches[key] = data
		}
		m.mu.Unlock()
	}

	if _, err := w.Write(data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPatchReadFailed.Error()), "key", key.String())
	}
	return nil
}

// TryGetPatch returns a copy of the stored patch.
func (m *MemoryCache) TryGetPatch(from, to domain.Hash) domain.PatchLookup {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.patches[domain.NewPatchKey(from, to)]
	if !ok {
		return domain.PatchLookup{State: domain.LookupMiss}
	}
	return domain.PatchLookup{State: domain.LookupHit, Patch: bytes.Clone(data)}
}

// Has reports whether a patch for the pair is stored.
func (m *MemoryCache) Has(from, to domain.Hash) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.patches[domain.NewPatchKey(from, to)]
	return ok
}

// Len returns the number of stored patches.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.patches)
}
