// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/mart/internal/core/domain"
)

// Solver resolves a single top-level requirement against a snapshot of the artifact graph.
//
//go:generate go run go.uber.org/mock/mockgen -source=solver.go -destination=mocks/mock_solver.go -package=mocks
type Solver interface {
	// Solve returns one assignment per cookbook name reachable from req through
	// the graph's edges, such that every edge constraint and req itself is satisfied.
	//
	// If no such assignment exists it returns an error wrapping domain.ErrNoSolution
	// whose message names the cookbook and range that could not be satisfied.
	Solve(ctx context.Context, graph *domain.ArtifactGraph, req domain.Requirement) ([]domain.ResolvedRequirement, error)
}
