// Package solver implements a backtracking version solver over the artifact graph.
package solver

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.trai.ch/mart/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultStepLimit bounds the number of demands a single Solve may visit.
const DefaultStepLimit = 100_000

// Solver finds a consistent version assignment for one requirement.
//
// Candidates are tried highest version first, so when several assignments
// satisfy every constraint the one preferring newer versions wins.
type Solver struct {
	stepLimit int
}

// Option configures a Solver.
type Option func(*Solver)

// WithStepLimit overrides DefaultStepLimit. Values below one disable the limit.
func WithStepLimit(limit int) Option {
	return func(s *Solver) {
		s.stepLimit = limit
	}
}

// New creates a Solver.
func New(opts ...Option) *Solver {
	s := &Solver{stepLimit: DefaultStepLimit}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// demand is a pending constraint on a cookbook, raised by the top-level
// requirement or by an edge of an already selected artifact.
type demand struct {
	name       string
	constraint string
	requiredBy string
}

type search struct {
	ctx      context.Context
	graph    *domain.ArtifactGraph
	limit    int
	steps    int
	assigned map[string]*domain.Artifact
	order    []string
}

// Solve returns the selected artifacts in the order they were first chosen,
// starting with req's own cookbook.
func (s *Solver) Solve(
	ctx context.Context,
	graph *domain.ArtifactGraph,
	req domain.Requirement,
) ([]domain.ResolvedRequirement, error) {
	st := &search{
		ctx:      ctx,
		graph:    graph,
		limit:    s.stepLimit,
		assigned: make(map[string]*domain.Artifact),
	}

	root := demand{name: req.Name, constraint: req.Constraint, requiredBy: "requirement"}
	if err := st.solve([]demand{root}); err != nil {
		return nil, err
	}

	result := make([]domain.ResolvedRequirement, 0, len(st.order))
	for _, name := range st.order {
		a := st.assigned[name]
		result = append(result, domain.ResolvedRequirement{Name: a.Name(), Version: a.Version()})
	}
	return result, nil
}

// solve satisfies the queue front to back. Demands raised by a newly selected
// artifact are appended, which makes the walk breadth-first by discovery.
func (st *search) solve(queue []demand) error {
	if len(queue) == 0 {
		return nil
	}
	if err := st.step(); err != nil {
		return err
	}

	d, rest := queue[0], queue[1:]
	constraint, err := domain.ParseConstraint(d.constraint)
	if err != nil {
		return zerr.With(err, "required_by", d.requiredBy)
	}

	if current, ok := st.assigned[d.name]; ok {
		if constraint.Check(current.Version()) {
			return st.solve(rest)
		}
		return noSolution(d, fmt.Sprintf("%s is already selected but %s requires %s %s",
			current, d.requiredBy, d.name, constraint))
	}

	candidates := st.candidates(d.name, constraint)
	if len(candidates) == 0 {
		return noSolution(d, fmt.Sprintf("no version of %s satisfies %s (required by %s)",
			d.name, constraint, d.requiredBy))
	}

	var first error
	for _, candidate := range candidates {
		err := st.try(candidate, rest)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrNoSolution) {
			return err
		}
		if first == nil {
			first = err
		}
	}
	return first
}

func (st *search) try(candidate *domain.Artifact, rest []demand) error {
	name := candidate.Name()
	st.assigned[name] = candidate
	st.order = append(st.order, name)

	next := slices.Clone(rest)
	for _, dep := range candidate.Dependencies() {
		next = append(next, demand{
			name:       dep.Name,
			constraint: dep.Constraint,
			requiredBy: candidate.String(),
		})
	}

	if err := st.solve(next); err != nil {
		delete(st.assigned, name)
		st.order = st.order[:len(st.order)-1]
		return err
	}
	return nil
}

func (st *search) candidates(name string, constraint domain.Constraint) []*domain.Artifact {
	var out []*domain.Artifact
	for _, a := range st.graph.Versions(name) {
		if constraint.Check(a.Version()) {
			out = append(out, a)
		}
	}
	return out
}

func (st *search) step() error {
	if err := st.ctx.Err(); err != nil {
		return err
	}
	st.steps++
	if st.limit > 0 && st.steps > st.limit {
		return zerr.With(zerr.Wrap(domain.ErrSolverStepLimit, "search aborted"), "limit", st.limit)
	}
	return nil
}

func noSolution(d demand, msg string) error {
	err := zerr.With(zerr.Wrap(domain.ErrNoSolution, msg), "cookbook", d.name)
	return zerr.With(err, "constraint", d.constraint)
}
