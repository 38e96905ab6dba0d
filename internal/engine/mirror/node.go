package mirror

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mart/internal/adapters/logger"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mart/internal/adapters/supermarket" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mart/internal/adapters/telemetry"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mart/internal/core/ports"
)

// NodeID is the unique identifier for the downloader Graft node.
const NodeID graft.ID = "engine.mirror"

func init() {
	graft.Register(graft.Node[*Downloader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			supermarket.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Downloader, error) {
			index, err := graft.Dep[ports.CookbookIndex](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewDownloader(index, tel, log), nil
		},
	})
}
