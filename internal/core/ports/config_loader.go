package ports

import "go.trai.ch/mart/internal/core/domain"

// ConfigLoader defines the interface for loading the inventory configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the inventory configuration file at path.
	Load(path string) (*domain.Inventory, error)
}
