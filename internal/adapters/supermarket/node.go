package supermarket

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mart/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/mart/internal/core/ports"
)

// NodeID is the unique identifier for the cookbook index Graft node.
const NodeID graft.ID = "adapter.cookbook_index"

func init() {
	graft.Register(graft.Node[ports.CookbookIndex]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CookbookIndex, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			client, err := NewClient(log)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	})
}
