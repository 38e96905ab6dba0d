// Package app implements the application layer for mart.
package app

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/mart/internal/core/domain"
	"go.trai.ch/mart/internal/core/ports"
	"go.trai.ch/mart/internal/engine/mirror"
	"go.trai.ch/mart/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App builds cookbook inventories.
type App struct {
	configLoader ports.ConfigLoader
	index        ports.CookbookIndex
	stores       ports.InventoryStoreFactory
	solver       ports.Solver
	downloader   *mirror.Downloader
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	index ports.CookbookIndex,
	stores ports.InventoryStoreFactory,
	solver ports.Solver,
	downloader *mirror.Downloader,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		index:        index,
		stores:       stores,
		solver:       solver,
		downloader:   downloader,
		telemetry:    telemetry,
		logger:       log,
	}
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	ConfigPath       string
	SkipDependencies bool
}

// MirrorOptions configuration for the Mirror method.
type MirrorOptions struct {
	ConfigPath       string
	InventoryDir     string
	SkipDependencies bool
	Parallelism      int
}

// catalog is the result of the discovery phase: a populated dependency graph
// and the download location of every registered cookbook.
type catalog struct {
	graph     *resolver.DependencyGraph
	locations map[string]domain.RemoteCookbook
}

// Resolve loads the inventory file and returns the cookbook versions it resolves to,
// without downloading anything.
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) ([]domain.ResolvedRequirement, error) {
	cat, err := a.discover(ctx, opts.ConfigPath, opts.SkipDependencies)
	if err != nil {
		return nil, err
	}
	return a.resolve(ctx, cat)
}

// Mirror resolves the inventory file and downloads every resolved cookbook
// that is not yet in the inventory directory.
func (a *App) Mirror(ctx context.Context, opts MirrorOptions) (domain.MirrorReport, error) {
	store, err := a.stores.Open(opts.InventoryDir)
	if err != nil {
		return domain.MirrorReport{}, zerr.Wrap(err, "failed to open inventory")
	}

	cat, err := a.discover(ctx, opts.ConfigPath, opts.SkipDependencies)
	if err != nil {
		return domain.MirrorReport{}, err
	}

	resolved, err := a.resolve(ctx, cat)
	if err != nil {
		return domain.MirrorReport{}, err
	}

	cookbooks := make([]domain.RemoteCookbook, 0, len(resolved))
	for _, r := range resolved {
		location, ok := cat.locations[r.String()]
		if !ok {
			return domain.MirrorReport{}, zerr.With(zerr.Wrap(domain.ErrArtifactNotFound, "no download location"), "cookbook", r.String())
		}
		cookbooks = append(cookbooks, location)
	}

	result, err := a.downloader.Run(ctx, store, cookbooks, opts.Parallelism)
	if err != nil {
		return domain.MirrorReport{}, err
	}

	return domain.MirrorReport{
		Resolved:   resolved,
		Downloaded: toResolved(result.Downloaded),
		Cached:     toResolved(result.Cached),
	}, nil
}

// List returns the cookbooks already mirrored into dir.
func (a *App) List(dir string) ([]domain.InventoryEntry, error) {
	store, err := a.stores.Open(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open inventory")
	}
	return store.List()
}

// Clean removes the cached universes.
func (a *App) Clean(_ context.Context) error {
	path := domain.DefaultUniverseCachePath()
	a.logger.Info(fmt.Sprintf("removing universe cache %s", path))
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove universe cache"), "path", path)
	}
	return nil
}

// discover loads the configuration, fetches every source's universe and
// registers all discovered cookbooks and the top-level requirements.
func (a *App) discover(ctx context.Context, configPath string, skipDependencies bool) (*catalog, error) {
	inv, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	universes, err := a.fetchUniverses(ctx, inv.Sources)
	if err != nil {
		return nil, err
	}

	cat := &catalog{
		graph:     resolver.NewDependencyGraph(a.solver, a.logger, skipDependencies),
		locations: make(map[string]domain.RemoteCookbook),
	}

	// Sources are registered in priority order so the first source wins for a shared version.
	for _, universe := range universes {
		for _, cookbook := range universe {
			key := cookbook.String()
			if _, ok := cat.locations[key]; ok {
				continue
			}
			cat.graph.AddArtifact(cookbook.Cookbook)
			cat.locations[key] = cookbook
		}
	}
	cat.graph.AddRequirement(inv.Requirements...)

	a.logger.Info(fmt.Sprintf("registered %d cookbook versions from %d sources",
		cat.graph.Graph().Len(), len(inv.Sources)))
	return cat, nil
}

func (a *App) fetchUniverses(ctx context.Context, sources []string) ([][]domain.RemoteCookbook, error) {
	universes := make([][]domain.RemoteCookbook, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	for i, source := range sources {
		g.Go(func() error {
			vctx, vertex := a.telemetry.Record(ctx, "universe "+source)
			cookbooks, err := a.index.Universe(vctx, source)
			vertex.Complete(err)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to fetch universe"), "source", source)
			}
			universes[i] = cookbooks
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return universes, nil
}

// resolve resolves every requirement and removes repeated cookbook versions,
// keeping the first occurrence.
func (a *App) resolve(ctx context.Context, cat *catalog) ([]domain.ResolvedRequirement, error) {
	resolved, err := cat.graph.ResolvedRequirements(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve requirements")
	}
	return dedupe(resolved), nil
}

func dedupe(resolved []domain.ResolvedRequirement) []domain.ResolvedRequirement {
	seen := make(map[string]bool, len(resolved))
	out := make([]domain.ResolvedRequirement, 0, len(resolved))
	for _, r := range resolved {
		key := r.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}

func toResolved(cookbooks []domain.RemoteCookbook) []domain.ResolvedRequirement {
	if len(cookbooks) == 0 {
		return nil
	}
	out := make([]domain.ResolvedRequirement, 0, len(cookbooks))
	for _, c := range cookbooks {
		out = append(out, domain.ResolvedRequirement{Name: c.Name(), Version: c.Version()})
	}
	return out
}
