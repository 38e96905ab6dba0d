// Package domain contains the core domain models of the cookbook mirror.
package domain

import (
	"slices"
	"sort"

	"go.trai.ch/zerr"
)

// Artifact is a node of the ArtifactGraph: one registered cookbook version
// with its outgoing dependency edges, each labelled with a version range.
type Artifact struct {
	name    InternedString
	version Version
	edges   []Dependency
}

// Name returns the artifact's cookbook name.
func (a *Artifact) Name() string {
	return a.name.String()
}

// Version returns the artifact's version.
func (a *Artifact) Version() Version {
	return a.version
}

// Dependencies returns a copy of the artifact's outgoing edges in insertion order.
func (a *Artifact) Dependencies() []Dependency {
	return slices.Clone(a.edges)
}

// DependsOn adds an edge from the artifact to the named cookbook, constrained by constraint.
func (a *Artifact) DependsOn(name, constraint string) *Artifact {
	a.edges = append(a.edges, Dependency{Name: name, Constraint: constraint})
	return a
}

// String returns "name-version".
func (a *Artifact) String() string {
	return a.Name() + "-" + a.version.String()
}

type artifactKey struct {
	name    InternedString
	version string
}

// ArtifactGraph holds every registered artifact, keyed by exact name and version.
// It is not safe for concurrent mutation.
type ArtifactGraph struct {
	artifacts map[artifactKey]*Artifact
	byName    map[InternedString][]*Artifact
}

// NewArtifactGraph creates a new empty ArtifactGraph.
func NewArtifactGraph() *ArtifactGraph {
	return &ArtifactGraph{
		artifacts: make(map[artifactKey]*Artifact),
		byName:    make(map[InternedString][]*Artifact),
	}
}

func keyOf(name string, version Version) artifactKey {
	return artifactKey{name: NewInternedString(name), version: version.String()}
}

// Artifact returns the artifact for name and version, creating it if needed.
// The boolean reports whether a new artifact was created.
func (g *ArtifactGraph) Artifact(name string, version Version) (*Artifact, bool) {
	key := keyOf(name, version)
	if a, ok := g.artifacts[key]; ok {
		return a, false
	}

	a := &Artifact{name: key.name, version: version}
	g.artifacts[key] = a
	g.byName[key.name] = append(g.byName[key.name], a)
	return a, true
}

// Has reports whether an artifact with exactly this name and version is registered.
func (g *ArtifactGraph) Has(name string, version Version) bool {
	_, ok := g.artifacts[keyOf(name, version)]
	return ok
}

// Find returns the artifact with exactly this name and version.
func (g *ArtifactGraph) Find(name string, version Version) (*Artifact, error) {
	a, ok := g.artifacts[keyOf(name, version)]
	if !ok {
		err := zerr.With(zerr.Wrap(ErrArtifactNotFound, "lookup failed"), "name", name)
		return nil, zerr.With(err, "version", version.String())
	}
	return a, nil
}

// Versions returns every registered artifact of the named cookbook, highest version first.
func (g *ArtifactGraph) Versions(name string) []*Artifact {
	versions := slices.Clone(g.byName[NewInternedString(name)])
	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].version.Compare(versions[j].version) > 0
	})
	return versions
}

// Names returns the names of all registered cookbooks, sorted.
func (g *ArtifactGraph) Names() []string {
	names := make([]string, 0, len(g.byName))
	for name := range g.byName {
		names = append(names, name.String())
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered artifacts.
func (g *ArtifactGraph) Len() int {
	return len(g.artifacts)
}

// EdgeCount returns the total number of dependency edges in the graph.
func (g *ArtifactGraph) EdgeCount() int {
	n := 0
	for _, a := range g.artifacts {
		n += len(a.edges)
	}
	return n
}
