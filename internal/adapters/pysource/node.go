package pysource

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/libscan/internal/core/ports"
)

// NodeID is the unique identifier for the source tree Graft node.
const NodeID graft.ID = "adapter.source_tree"

func init() {
	graft.Register(graft.Node[ports.SourceTree]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceTree, error) {
			return NewTree(), nil
		},
	})
}
