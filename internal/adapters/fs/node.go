package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/patchwork/internal/adapters/logger"   //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/patchwork/internal/adapters/progress" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/patchwork/internal/core/ports"
)

const (
	// HasherNodeID is the unique identifier for the streaming hasher node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// HashCacheNodeID is the unique identifier for the hash cache node.
	HashCacheNodeID graft.ID = "adapter.fs.hash_cache"
	// ResolverNodeID is the unique identifier for the file resolver node.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
)

func init() {
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{progress.NodeID},
		Run: func(ctx context.Context) (ports.Hasher, error) {
			sink, err := graft.Dep[*progress.Broker](ctx)
			if err != nil {
				return nil, err
			}
			return NewHasher(sink), nil
		},
	})

	graft.Register(graft.Node[ports.HashCache]{
		ID:        HashCacheNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.HashCache, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewHashCache(hasher, log), nil
		},
	})

	graft.Register(graft.Node[ports.FileResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileResolver, error) {
			return NewResolver(), nil
		},
	})
}
