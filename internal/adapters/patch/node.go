package patch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/patchwork/internal/core/ports"
)

// DifferNodeID is the unique identifier for the bsdiff differ node.
const DifferNodeID graft.ID = "adapter.patch.differ"

func init() {
	graft.Register(graft.Node[ports.Differ]{
		ID:        DifferNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Differ, error) {
			return NewBSDiff(), nil
		},
	})
}
