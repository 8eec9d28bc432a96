package listing

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/libscan/internal/core/ports"
)

// NodeID is the unique identifier for the listing store Graft node.
const NodeID graft.ID = "adapter.listing_store"

func init() {
	graft.Register(graft.Node[ports.ListingStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ListingStore, error) {
			return NewStore(), nil
		},
	})
}
