package ports

import (
	"context"
	"io"

	"go.trai.ch/patchwork/internal/core/domain"
)

// PatchCache memoizes binary patches keyed by the content hashes of both inputs.
//
//go:generate go run go.uber.org/mock/mockgen -source=patch_cache.go -destination=mocks/mock_patch_cache.go -package=mocks
type PatchCache interface {
	// CreatePatch writes the patch turning a into b to w, computing and publishing it on a miss.
	CreatePatch(ctx context.Context, a, b []byte, w io.Writer) error
	// TryGetPatch returns a cached patch without computing anything.
	TryGetPatch(from, to domain.Hash) domain.PatchLookup
	// Has reports whether a patch for the pair is cached.
	Has(from, to domain.Hash) bool
}
