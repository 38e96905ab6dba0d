package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mart/internal/adapters/logger"             //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/mart/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/mart/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewTee(progrock.New(), NewTracer(NewProvider(log))), nil
		},
	})
}
