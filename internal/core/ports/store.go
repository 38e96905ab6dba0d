package ports

import (
	"context"
	"io"

	"go.trai.ch/mart/internal/core/domain"
)

// InventoryStore persists mirrored cookbook archives and their metadata.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type InventoryStore interface {
	// Has reports whether the given cookbook version is already mirrored.
	Has(name string, version domain.Version) (bool, error)

	// Put writes the archive for cookbook into the inventory and records its metadata.
	Put(ctx context.Context, cookbook domain.RemoteCookbook, archive io.Reader) (domain.InventoryEntry, error)

	// List returns the metadata of every mirrored cookbook, sorted by name and version.
	List() ([]domain.InventoryEntry, error)
}

// InventoryStoreFactory opens inventory stores rooted at a directory.
type InventoryStoreFactory interface {
	// Open returns a store for dir, creating the directory if needed.
	Open(dir string) (InventoryStore, error)
}
