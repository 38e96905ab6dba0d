package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mart/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestArtifactGraph_Artifact(t *testing.T) {
	g := domain.NewArtifactGraph()

	a, created := g.Artifact("apt", domain.MustParseVersion("1.0.0"))
	require.True(t, created)
	a.DependsOn("build-essential", ">= 1.0.0")

	again, created := g.Artifact("apt", domain.MustParseVersion("1.0.0"))
	assert.False(t, created)
	assert.Same(t, a, again)
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestArtifactGraph_CanonicalVersionIdentity(t *testing.T) {
	g := domain.NewArtifactGraph()
	g.Artifact("apt", domain.MustParseVersion("1.2"))

	assert.True(t, g.Has("apt", domain.MustParseVersion("1.2.0")))
	_, created := g.Artifact("apt", domain.MustParseVersion("1.2.0"))
	assert.False(t, created)
}

func TestArtifactGraph_HasIsExactMatch(t *testing.T) {
	g := domain.NewArtifactGraph()
	g.Artifact("apt", domain.MustParseVersion("1.0.0"))

	assert.True(t, g.Has("apt", domain.MustParseVersion("1.0.0")))
	assert.False(t, g.Has("apt", domain.MustParseVersion("1.0.1")))
	assert.False(t, g.Has("yum", domain.MustParseVersion("1.0.0")))
}

func TestArtifactGraph_Find(t *testing.T) {
	g := domain.NewArtifactGraph()
	g.Artifact("apt", domain.MustParseVersion("1.0.0"))

	a, err := g.Find("apt", domain.MustParseVersion("1.0.0"))
	require.NoError(t, err)
	assert.Equal(t, "apt-1.0.0", a.String())

	_, err = g.Find("apt", domain.MustParseVersion("2.0.0"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrArtifactNotFound))

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "apt", zErr.Metadata()["name"])
	assert.Equal(t, "2.0.0", zErr.Metadata()["version"])
}

func TestArtifactGraph_Versions(t *testing.T) {
	g := domain.NewArtifactGraph()
	g.Artifact("apt", domain.MustParseVersion("1.0.0"))
	g.Artifact("apt", domain.MustParseVersion("2.1.0"))
	g.Artifact("apt", domain.MustParseVersion("1.10.0"))
	g.Artifact("yum", domain.MustParseVersion("3.0.0"))

	var got []string
	for _, a := range g.Versions("apt") {
		got = append(got, a.Version().String())
	}
	assert.Equal(t, []string{"2.1.0", "1.10.0", "1.0.0"}, got)
	assert.Empty(t, g.Versions("missing"))
	assert.Equal(t, []string{"apt", "yum"}, g.Names())
}

func TestArtifact_DependenciesAreCopied(t *testing.T) {
	g := domain.NewArtifactGraph()
	a, _ := g.Artifact("apt", domain.MustParseVersion("1.0.0"))
	a.DependsOn("yum", ">= 1.0.0")

	deps := a.Dependencies()
	deps[0].Name = "changed"

	assert.Equal(t, "yum", a.Dependencies()[0].Name)
}
