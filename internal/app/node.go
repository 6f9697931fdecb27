package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/patchwork/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/patchwork/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/patchwork/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/patchwork/internal/adapters/patch"    //nolint:depguard // Wired in app layer
	"go.trai.ch/patchwork/internal/adapters/progress" //nolint:depguard // Wired in app layer
	"go.trai.ch/patchwork/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			progress.NodeID,
			fs.HasherNodeID,
			fs.HashCacheNodeID,
			fs.ResolverNodeID,
			patch.DifferNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	broker, err := graft.Dep[*progress.Broker](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	hashes, err := graft.Dep[ports.HashCache](ctx)
	if err != nil {
		return nil, err
	}

	differ, err := graft.Dep[ports.Differ](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.FileResolver](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, broker, hasher, hashes, differ, resolver), nil
}
