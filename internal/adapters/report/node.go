package report

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/libscan/internal/core/ports"
)

// NodeID is the unique identifier for the stats writer Graft node.
const NodeID graft.ID = "adapter.stats_writer"

func init() {
	graft.Register(graft.Node[ports.StatsWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StatsWriter, error) {
			return NewWriter(), nil
		},
	})
}
