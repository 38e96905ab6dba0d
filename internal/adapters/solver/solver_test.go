package solver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mart/internal/adapters/solver"
	"go.trai.ch/mart/internal/core/domain"
)

type edge struct {
	name       string
	constraint string
}

func add(g *domain.ArtifactGraph, name, version string, deps ...edge) {
	a, _ := g.Artifact(name, domain.MustParseVersion(version))
	for _, d := range deps {
		a.DependsOn(d.name, d.constraint)
	}
}

func names(resolved []domain.ResolvedRequirement) []string {
	out := make([]string, 0, len(resolved))
	for _, r := range resolved {
		out = append(out, r.String())
	}
	return out
}

func TestSolve_PicksHighestSatisfyingVersion(t *testing.T) {
	g := domain.NewArtifactGraph()
	add(g, "apt", "1.0.0")
	add(g, "apt", "2.0.0")
	add(g, "apt", "3.0.0")

	got, err := solver.New().Solve(context.Background(), g, domain.Requirement{Name: "apt", Constraint: "< 3.0"})
	require.NoError(t, err)
	assert.Equal(t, []string{"apt-2.0.0"}, names(got))
}

func TestSolve_Transitive(t *testing.T) {
	g := domain.NewArtifactGraph()
	add(g, "a", "1.0.0", edge{"b", ">= 1.0.0"})
	add(g, "b", "1.0.0")
	add(g, "b", "1.5.0")

	got, err := solver.New().Solve(context.Background(), g, domain.Requirement{Name: "a", Constraint: ">= 0.0.0"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a-1.0.0", "b-1.5.0"}, names(got))
}

func TestSolve_BacktracksToOlderVersion(t *testing.T) {
	g := domain.NewArtifactGraph()
	add(g, "a", "2.0.0", edge{"c", "< 1.0"})
	add(g, "a", "1.0.0", edge{"c", ">= 1.0"})
	add(g, "c", "0.5.0", edge{"missing", ">= 5.0"})
	add(g, "c", "1.0.0")

	got, err := solver.New().Solve(context.Background(), g, domain.Requirement{Name: "a", Constraint: ">= 0.0.0"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a-1.0.0", "c-1.0.0"}, names(got))
}

func TestSolve_SharedDependencyBacktracks(t *testing.T) {
	g := domain.NewArtifactGraph()
	add(g, "root", "1.0.0", edge{"a", ">= 0"}, edge{"c", ">= 0"})
	add(g, "a", "1.0.0", edge{"b", ">= 1.0"})
	add(g, "c", "1.0.0", edge{"b", "< 2.0"})
	add(g, "b", "1.0.0")
	add(g, "b", "2.0.0")

	got, err := solver.New().Solve(context.Background(), g, domain.Requirement{Name: "root", Constraint: "= 1.0.0"})
	require.NoError(t, err)
	assert.Equal(t, []string{"root-1.0.0", "a-1.0.0", "c-1.0.0", "b-1.0.0"}, names(got))
}

func TestSolve_Cycle(t *testing.T) {
	g := domain.NewArtifactGraph()
	add(g, "a", "1.0.0", edge{"b", "~> 1.0"})
	add(g, "b", "1.2.0", edge{"a", ">= 1.0"})

	got, err := solver.New().Solve(context.Background(), g, domain.Requirement{Name: "a", Constraint: ">= 0.0.0"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a-1.0.0", "b-1.2.0"}, names(got))
}

func TestSolve_NoSolution(t *testing.T) {
	tests := []struct {
		name    string
		build   func(g *domain.ArtifactGraph)
		req     domain.Requirement
		message string
	}{
		{
			name:    "no satisfying version",
			build:   func(g *domain.ArtifactGraph) { add(g, "pkg", "1.0.0") },
			req:     domain.Requirement{Name: "pkg", Constraint: ">= 2.0.0"},
			message: "no version of pkg satisfies >= 2.0.0",
		},
		{
			name:    "unknown cookbook",
			build:   func(*domain.ArtifactGraph) {},
			req:     domain.Requirement{Name: "ghost", Constraint: ">= 0.0.0"},
			message: "no version of ghost",
		},
		{
			name: "missing transitive dependency",
			build: func(g *domain.ArtifactGraph) {
				add(g, "a", "1.0.0", edge{"b", ">= 1.0"})
			},
			req:     domain.Requirement{Name: "a", Constraint: ">= 0.0.0"},
			message: "required by a-1.0.0",
		},
		{
			name: "conflicting ranges",
			build: func(g *domain.ArtifactGraph) {
				add(g, "a", "1.0.0", edge{"b", "= 1.0"}, edge{"c", ">= 0"})
				add(g, "c", "1.0.0", edge{"b", "= 2.0"})
				add(g, "b", "1.0.0")
				add(g, "b", "2.0.0")
			},
			req:     domain.Requirement{Name: "a", Constraint: ">= 0.0.0"},
			message: "b-1.0.0 is already selected but c-1.0.0 requires b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := domain.NewArtifactGraph()
			tt.build(g)

			got, err := solver.New().Solve(context.Background(), g, tt.req)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, domain.ErrNoSolution), "got %v", err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestSolve_InvalidConstraintAborts(t *testing.T) {
	g := domain.NewArtifactGraph()
	add(g, "a", "1.0.0", edge{"b", ">>> nope"})
	add(g, "b", "1.0.0")

	_, err := solver.New().Solve(context.Background(), g, domain.Requirement{Name: "a", Constraint: ">= 0.0.0"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidConstraint))
	assert.False(t, errors.Is(err, domain.ErrNoSolution))
}

func TestSolve_StepLimit(t *testing.T) {
	g := domain.NewArtifactGraph()
	add(g, "a", "1.0.0", edge{"b", ">= 0"})
	add(g, "b", "1.0.0")

	_, err := solver.New(solver.WithStepLimit(1)).Solve(
		context.Background(), g, domain.Requirement{Name: "a", Constraint: ">= 0.0.0"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSolverStepLimit))
}

func TestSolve_ContextCanceled(t *testing.T) {
	g := domain.NewArtifactGraph()
	add(g, "a", "1.0.0")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := solver.New().Solve(ctx, g, domain.Requirement{Name: "a", Constraint: ">= 0.0.0"})
	require.ErrorIs(t, err, context.Canceled)
}
