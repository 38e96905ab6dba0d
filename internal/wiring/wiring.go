// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/mart/internal/adapters/config"
	_ "go.trai.ch/mart/internal/adapters/inventory"
	_ "go.trai.ch/mart/internal/adapters/logger"
	_ "go.trai.ch/mart/internal/adapters/solver"
	_ "go.trai.ch/mart/internal/adapters/supermarket"
	_ "go.trai.ch/mart/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/mart/internal/app"
	_ "go.trai.ch/mart/internal/engine/mirror"
)
