package inventory

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mart/internal/core/ports"
)

// NodeID is the unique identifier for the inventory store factory Graft node.
const NodeID graft.ID = "adapter.inventory_store"

func init() {
	graft.Register(graft.Node[ports.InventoryStoreFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InventoryStoreFactory, error) {
			return Factory{}, nil
		},
	})
}
