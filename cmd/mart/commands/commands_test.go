package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mart/cmd/mart/commands"
	"go.trai.ch/mart/internal/app"
	"go.trai.ch/mart/internal/build"
	"go.trai.ch/mart/internal/core/domain"
)

type mockApp struct {
	resolveFunc func(ctx context.Context, opts app.ResolveOptions) ([]domain.ResolvedRequirement, error)
	mirrorFunc  func(ctx context.Context, opts app.MirrorOptions) (domain.MirrorReport, error)
	listFunc    func(dir string) ([]domain.InventoryEntry, error)
	cleaned     bool
}

func (m *mockApp) Resolve(ctx context.Context, opts app.ResolveOptions) ([]domain.ResolvedRequirement, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockApp) Mirror(ctx context.Context, opts app.MirrorOptions) (domain.MirrorReport, error) {
	if m.mirrorFunc != nil {
		return m.mirrorFunc(ctx, opts)
	}
	return domain.MirrorReport{}, nil
}

func (m *mockApp) List(dir string) ([]domain.InventoryEntry, error) {
	if m.listFunc != nil {
		return m.listFunc(dir)
	}
	return nil, nil
}

func (m *mockApp) Clean(_ context.Context) error {
	m.cleaned = true
	return nil
}

func resolved(name, version string) domain.ResolvedRequirement {
	return domain.ResolvedRequirement{Name: name, Version: domain.MustParseVersion(version)}
}

func execute(t *testing.T, cli *commands.CLI, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Mirror(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.MirrorOptions
		mock := &mockApp{
			mirrorFunc: func(_ context.Context, opts app.MirrorOptions) (domain.MirrorReport, error) {
				captured = opts
				return domain.MirrorReport{
					Resolved:   []domain.ResolvedRequirement{resolved("apt", "2.0.0"), resolved("yum", "3.1.0")},
					Downloaded: []domain.ResolvedRequirement{resolved("apt", "2.0.0")},
					Cached:     []domain.ResolvedRequirement{resolved("yum", "3.1.0")},
				}, nil
			},
		}

		out, err := execute(t, commands.New(mock),
			"mirror", "-c", "cookbooks.yml", "-d", "/srv/mirror", "--skip-dependencies", "-j", "4")
		require.NoError(t, err)

		assert.Equal(t, app.MirrorOptions{
			ConfigPath:       "cookbooks.yml",
			InventoryDir:     "/srv/mirror",
			SkipDependencies: true,
			Parallelism:      4,
		}, captured)
		assert.Contains(t, out, "✓ apt 2.0.0")
		assert.Contains(t, out, "● yum 3.1.0 (cached)")
		assert.Contains(t, out, "2 cookbooks resolved, 1 downloaded, 1 cached")
	})

	t.Run("uses defaults", func(t *testing.T) {
		var captured app.MirrorOptions
		mock := &mockApp{
			mirrorFunc: func(_ context.Context, opts app.MirrorOptions) (domain.MirrorReport, error) {
				captured = opts
				return domain.MirrorReport{}, nil
			},
		}

		_, err := execute(t, commands.New(mock), "mirror")
		require.NoError(t, err)
		assert.Equal(t, domain.InventoryFileName, captured.ConfigPath)
		assert.Equal(t, domain.InventoryDirName, captured.InventoryDir)
		assert.False(t, captured.SkipDependencies)
		assert.Zero(t, captured.Parallelism)
	})

	t.Run("returns error on mirror failure", func(t *testing.T) {
		mock := &mockApp{
			mirrorFunc: func(_ context.Context, _ app.MirrorOptions) (domain.MirrorReport, error) {
				return domain.MirrorReport{}, errors.New("simulated error")
			},
		}

		_, err := execute(t, commands.New(mock), "mirror")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Resolve(t *testing.T) {
	var captured app.ResolveOptions
	mock := &mockApp{
		resolveFunc: func(_ context.Context, opts app.ResolveOptions) ([]domain.ResolvedRequirement, error) {
			captured = opts
			return []domain.ResolvedRequirement{resolved("apt", "2.0.0"), resolved("build-essential", "1.4.2")}, nil
		},
	}

	out, err := execute(t, commands.New(mock), "resolve", "--config", "other.yml", "--skip-dependencies")
	require.NoError(t, err)

	assert.Equal(t, app.ResolveOptions{ConfigPath: "other.yml", SkipDependencies: true}, captured)
	assert.Equal(t, "Resolved 2 cookbooks\napt 2.0.0\nbuild-essential 1.4.2\n", out)
}

func TestCommands_List(t *testing.T) {
	var capturedDir string
	mock := &mockApp{
		listFunc: func(dir string) ([]domain.InventoryEntry, error) {
			capturedDir = dir
			return []domain.InventoryEntry{
				{Name: "apt", Version: domain.MustParseVersion("2.0.0"), Source: "https://supermarket.example"},
			}, nil
		},
	}

	out, err := execute(t, commands.New(mock), "list", "-d", "mirror")
	require.NoError(t, err)
	assert.Equal(t, "mirror", capturedDir)
	assert.Equal(t, "apt  2.0.0  https://supermarket.example\n", out)
}

func TestCommands_Clean(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, commands.New(mock), "clean")
	require.NoError(t, err)
	assert.True(t, mock.cleaned)
}

func TestCommands_JSONLogs(t *testing.T) {
	var got []bool
	cli := commands.New(&mockApp{}, commands.WithJSONLogs(func(enabled bool) {
		got = append(got, enabled)
	}))

	_, err := execute(t, cli, "clean", "--json-logs")
	require.NoError(t, err)
	assert.Equal(t, []bool{true}, got)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, commands.New(&mockApp{}), "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}
