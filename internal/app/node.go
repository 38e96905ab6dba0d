package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mart/internal/adapters/config"      //nolint:depguard // Wired in app layer
	"go.trai.ch/mart/internal/adapters/inventory"   //nolint:depguard // Wired in app layer
	"go.trai.ch/mart/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.trai.ch/mart/internal/adapters/solver"      //nolint:depguard // Wired in app layer
	"go.trai.ch/mart/internal/adapters/supermarket" //nolint:depguard // Wired in app layer
	"go.trai.ch/mart/internal/adapters/telemetry"   //nolint:depguard // Wired in app layer
	"go.trai.ch/mart/internal/core/ports"
	"go.trai.ch/mart/internal/engine/mirror"
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
			supermarket.NodeID,
			inventory.NodeID,
			solver.NodeID,
			mirror.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	index, err := graft.Dep[ports.CookbookIndex](ctx)
	if err != nil {
		return nil, err
	}

	stores, err := graft.Dep[ports.InventoryStoreFactory](ctx)
	if err != nil {
		return nil, err
	}

	slv, err := graft.Dep[ports.Solver](ctx)
	if err != nil {
		return nil, err
	}

	downloader, err := graft.Dep[*mirror.Downloader](ctx)
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

	return New(loader, index, stores, slv, downloader, tel, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: tel,
	}, nil
}
