// Package mirror copies resolved cookbooks from their index into the inventory.
package mirror

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"go.trai.ch/mart/internal/core/domain"
	"go.trai.ch/mart/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Result lists what a Run did with each cookbook, in input order.
type Result struct {
	Downloaded []domain.RemoteCookbook
	Cached     []domain.RemoteCookbook
}

// Downloader mirrors cookbooks with bounded parallelism.
type Downloader struct {
	index     ports.CookbookIndex
	telemetry ports.Telemetry
	logger    ports.Logger

	mu     sync.RWMutex
	status map[string]domain.MirrorStatus
}

// NewDownloader creates a new Downloader.
func NewDownloader(index ports.CookbookIndex, telemetry ports.Telemetry, logger ports.Logger) *Downloader {
	return &Downloader{
		index:     index,
		telemetry: telemetry,
		logger:    logger,
		status:    make(map[string]domain.MirrorStatus),
	}
}

// Status returns the last known status of the cookbook with the given "name-version" key.
func (d *Downloader) Status(key string) (domain.MirrorStatus, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s, ok := d.status[key]
	return s, ok
}

func (d *Downloader) setStatus(key string, status domain.MirrorStatus) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status[key] = status
}

// Run mirrors every cookbook into store. Cookbooks already present are skipped.
// At most parallelism downloads run at once; a value below one means runtime.NumCPU().
// The first failure cancels the remaining downloads and is returned wrapped in domain.ErrMirrorFailed.
func (d *Downloader) Run(
	ctx context.Context,
	store ports.InventoryStore,
	cookbooks []domain.RemoteCookbook,
	parallelism int,
) (Result, error) {
	if parallelism < 1 {
		parallelism = runtime.NumCPU()
	}

	for _, c := range cookbooks {
		d.setStatus(c.String(), domain.MirrorStatusPending)
	}

	outcomes := make([]domain.MirrorStatus, len(cookbooks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i, cookbook := range cookbooks {
		g.Go(func() error {
			status, err := d.mirrorOne(ctx, store, cookbook)
			d.setStatus(cookbook.String(), status)
			outcomes[i] = status
			if err != nil {
				return zerr.With(errors.Join(domain.ErrMirrorFailed, err), "cookbook", cookbook.String())
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var result Result
	for i, status := range outcomes {
		switch status {
		case domain.MirrorStatusDownloaded:
			result.Downloaded = append(result.Downloaded, cookbooks[i])
		case domain.MirrorStatusCached:
			result.Cached = append(result.Cached, cookbooks[i])
		}
	}

	d.logger.Info(fmt.Sprintf("downloaded %d cookbooks, %d already mirrored",
		len(result.Downloaded), len(result.Cached)))
	return result, nil
}

func (d *Downloader) mirrorOne(
	ctx context.Context,
	store ports.InventoryStore,
	cookbook domain.RemoteCookbook,
) (domain.MirrorStatus, error) {
	ctx, vertex := d.telemetry.Record(ctx, cookbook.String())

	has, err := store.Has(cookbook.Name(), cookbook.Version())
	if err != nil {
		vertex.Complete(err)
		return domain.MirrorStatusFailed, err
	}
	if has {
		vertex.Cached()
		return domain.MirrorStatusCached, nil
	}

	d.setStatus(cookbook.String(), domain.MirrorStatusDownloading)
	vertex.Log(domain.LogLevelDebug, "GET "+cookbook.DownloadURL)

	body, err := d.index.Download(ctx, cookbook)
	if err != nil {
		vertex.Complete(err)
		return domain.MirrorStatusFailed, err
	}
	defer func() {
		_ = body.Close()
	}()

	entry, err := store.Put(ctx, cookbook, body)
	if err != nil {
		vertex.Complete(err)
		return domain.MirrorStatusFailed, err
	}

	vertex.Log(domain.LogLevelInfo, "stored "+entry.Archive+" digest "+entry.Digest)
	vertex.Complete(nil)
	return domain.MirrorStatusDownloaded, nil
}
