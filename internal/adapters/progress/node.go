package progress

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/patchwork/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/patchwork/internal/core/ports"
)

// NodeID is the unique identifier for the progress broker Graft node.
const NodeID graft.ID = "adapter.progress"

func init() {
	graft.Register(graft.Node[*Broker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Broker, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			b := NewBroker()
			b.Subscribe(NewLogSubscriber(log, DefaultLogInterval))
			return b, nil
		},
	})
}
