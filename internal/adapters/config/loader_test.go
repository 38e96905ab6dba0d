package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mart/internal/adapters/config"
	"go.trai.ch/mart/internal/core/domain"
	"go.trai.ch/mart/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeInventory(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.InventoryFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(logger)
}

func TestLoad(t *testing.T) {
	path := writeInventory(t, `
sources:
  - https://supermarket.chef.io/
  - https://mirror.example
cookbooks:
  mysql:
    versions: ["~> 5.0", "= 6.0.1"]
  apt:
    version: ">= 2.0"
  yum:
  nginx: "~> 2.7"
  build-essential: {}
`)

	inv, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://supermarket.chef.io", "https://mirror.example"}, inv.Sources)
	assert.Equal(t, []domain.Requirement{
		{Name: "mysql", Constraint: "~> 5.0"},
		{Name: "mysql", Constraint: "= 6.0.1"},
		{Name: "apt", Constraint: ">= 2.0"},
		{Name: "yum", Constraint: domain.DefaultConstraint},
		{Name: "nginx", Constraint: "~> 2.7"},
		{Name: "build-essential", Constraint: domain.DefaultConstraint},
	}, inv.Requirements)
}

func TestLoad_DuplicateSources(t *testing.T) {
	path := writeInventory(t, `
sources: [https://a.example, "https://a.example/", "  "]
`)

	inv, err := newLoader(t).Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example"}, inv.Sources)
	assert.Empty(t, inv.Requirements)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{name: "invalid yaml", content: "sources: [", want: domain.ErrConfigParseFailed},
		{name: "no sources", content: "cookbooks:\n  apt:\n", want: domain.ErrNoSources},
		{
			name:    "invalid constraint",
			content: "sources: [https://a.example]\ncookbooks:\n  apt:\n    version: '>>> 1'\n",
			want:    domain.ErrInvalidConstraint,
		},
		{
			name:    "cookbooks not a mapping",
			content: "sources: [https://a.example]\ncookbooks: [apt]\n",
			want:    domain.ErrConfigParseFailed,
		},
		{
			name:    "unsupported entry",
			content: "sources: [https://a.example]\ncookbooks:\n  apt: [1, 2]\n",
			want:    domain.ErrConfigParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newLoader(t).Load(writeInventory(t, tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := newLoader(t).Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigReadFailed))
}
