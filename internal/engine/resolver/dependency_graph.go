// Package resolver turns top-level cookbook requirements into concrete cookbook versions.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.trai.ch/mart/internal/core/domain"
	"go.trai.ch/mart/internal/core/ports"
	"go.trai.ch/zerr"
)

// DependencyGraph collects every discovered cookbook and the inventory's
// top-level requirements, then resolves each requirement with a Solver.
//
// Registration and resolution are two separate passes: all artifacts are
// added first so that late-discovered edges are visible to every solve.
// A DependencyGraph is built for a single mirroring run and is not safe for
// concurrent use.
type DependencyGraph struct {
	graph            *domain.ArtifactGraph
	requirements     []domain.Requirement
	skipDependencies bool
	solver           ports.Solver
	logger           ports.Logger
}

// NewDependencyGraph creates an empty graph that resolves with solver.
// When skipDependencies is true, artifacts are registered without their dependency edges.
func NewDependencyGraph(solver ports.Solver, logger ports.Logger, skipDependencies bool) *DependencyGraph {
	return &DependencyGraph{
		graph:            domain.NewArtifactGraph(),
		skipDependencies: skipDependencies,
		solver:           solver,
		logger:           logger,
	}
}

// SkipDependencies reports whether dependency edges are being ignored.
func (d *DependencyGraph) SkipDependencies() bool {
	return d.skipDependencies
}

// Graph returns the underlying artifact graph.
func (d *DependencyGraph) Graph() *domain.ArtifactGraph {
	return d.graph
}

// AddArtifact registers cookbook as an artifact of the graph.
// Registering a name and version that is already present is a no-op.
func (d *DependencyGraph) AddArtifact(cookbook *domain.Cookbook) {
	if d.ArtifactRegistered(cookbook.Name(), cookbook.Version()) {
		return
	}

	artifact, _ := d.graph.Artifact(cookbook.Name(), cookbook.Version())
	if d.skipDependencies {
		return
	}
	for _, dep := range cookbook.Dependencies() {
		artifact.DependsOn(dep.Name, dep.Constraint)
	}
}

// ArtifactRegistered reports whether exactly this cookbook version is in the graph.
func (d *DependencyGraph) ArtifactRegistered(name string, version domain.Version) bool {
	return d.graph.Has(name, version)
}

// FindArtifact returns the graph artifact for cookbook.
// It returns domain.ErrArtifactNotFound if the cookbook was never registered.
func (d *DependencyGraph) FindArtifact(cookbook *domain.Cookbook) (*domain.Artifact, error) {
	return d.graph.Find(cookbook.Name(), cookbook.Version())
}

// AddRequirement appends requirements in the given order.
// Requirements are never deduplicated; each one is resolved on its own.
func (d *DependencyGraph) AddRequirement(requirements ...domain.Requirement) {
	d.requirements = append(d.requirements, requirements...)
}

// Requirements returns the accumulated requirements in insertion order.
func (d *DependencyGraph) Requirements() []domain.Requirement {
	return slices.Clone(d.requirements)
}

// ResolvedRequirements solves every requirement against the current graph and
// concatenates the results in requirement order. The same cookbook version may
// appear more than once if several requirements select it.
//
// If any requirement cannot be satisfied, the call fails with
// domain.ErrUnresolvedDependency and no partial result is returned.
func (d *DependencyGraph) ResolvedRequirements(ctx context.Context) ([]domain.ResolvedRequirement, error) {
	d.logger.Info(fmt.Sprintf("resolving %d requirements against %d artifacts",
		len(d.requirements), d.graph.Len()))

	var resolved []domain.ResolvedRequirement
	for _, req := range d.requirements {
		result, err := d.resolveRequirement(ctx, req)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, result...)
	}

	return resolved, nil
}

func (d *DependencyGraph) resolveRequirement(ctx context.Context, req domain.Requirement) ([]domain.ResolvedRequirement, error) {
	result, err := d.solver.Solve(ctx, d.graph, req)
	if err == nil {
		return result, nil
	}

	if errors.Is(err, domain.ErrNoSolution) {
		unresolved := zerr.With(errors.Join(domain.ErrUnresolvedDependency, err), "requirement", req.String())
		return nil, unresolved
	}
	return nil, zerr.With(err, "requirement", req.String())
}
