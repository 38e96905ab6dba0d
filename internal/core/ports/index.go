package ports

import (
	"context"
	"io"

	"go.trai.ch/mart/internal/core/domain"
)

// CookbookIndex discovers cookbooks published by a remote source and downloads them.
//
//go:generate go run go.uber.org/mock/mockgen -source=index.go -destination=mocks/mock_index.go -package=mocks
type CookbookIndex interface {
	// Universe returns every cookbook version published by source,
	// sorted by name and then ascending version.
	Universe(ctx context.Context, source string) ([]domain.RemoteCookbook, error)

	// Download opens the archive of the given cookbook. The caller closes the reader.
	Download(ctx context.Context, cookbook domain.RemoteCookbook) (io.ReadCloser, error)
}
