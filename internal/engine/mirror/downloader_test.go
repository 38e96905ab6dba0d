package mirror_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mart/internal/adapters/inventory"
	"go.trai.ch/mart/internal/adapters/telemetry"
	"go.trai.ch/mart/internal/core/domain"
	"go.trai.ch/mart/internal/core/ports"
	"go.trai.ch/mart/internal/core/ports/mocks"
	"go.trai.ch/mart/internal/engine/mirror"
	"go.uber.org/mock/gomock"
)

func remote(name, version string) domain.RemoteCookbook {
	return domain.RemoteCookbook{
		Cookbook:    domain.MustNewCookbook(name, version),
		Source:      "https://supermarket.example",
		DownloadURL: "https://supermarket.example/" + name + "-" + version + ".tgz",
	}
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	return logger
}

func TestDownloader_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	index := mocks.NewMockCookbookIndex(ctrl)

	store, err := inventory.NewStore(t.TempDir())
	require.NoError(t, err)

	present := remote("yum", "3.0.0")
	_, err = store.Put(context.Background(), present, strings.NewReader("yum"))
	require.NoError(t, err)

	apt := remote("apt", "1.0.0")
	nginx := remote("nginx", "2.0.0")

	index.EXPECT().Download(gomock.Any(), apt).Return(io.NopCloser(strings.NewReader("apt")), nil)
	index.EXPECT().Download(gomock.Any(), nginx).Return(io.NopCloser(strings.NewReader("nginx")), nil)

	d := mirror.NewDownloader(index, telemetry.NewNoOp(), quietLogger(ctrl))
	result, err := d.Run(context.Background(), store, []domain.RemoteCookbook{apt, present, nginx}, 2)
	require.NoError(t, err)

	assert.Equal(t, []domain.RemoteCookbook{apt, nginx}, result.Downloaded)
	assert.Equal(t, []domain.RemoteCookbook{present}, result.Cached)

	for key, want := range map[string]domain.MirrorStatus{
		"apt-1.0.0":   domain.MirrorStatusDownloaded,
		"yum-3.0.0":   domain.MirrorStatusCached,
		"nginx-2.0.0": domain.MirrorStatusDownloaded,
	} {
		got, ok := d.Status(key)
		require.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}

	entries, err := store.List()
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestDownloader_DownloadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	index := mocks.NewMockCookbookIndex(ctrl)
	store := mocks.NewMockInventoryStore(ctrl)

	apt := remote("apt", "1.0.0")
	store.EXPECT().Has("apt", apt.Version()).Return(false, nil)
	index.EXPECT().Download(gomock.Any(), apt).Return(nil, domain.ErrDownloadFailed)

	d := mirror.NewDownloader(index, telemetry.NewNoOp(), quietLogger(ctrl))
	_, err := d.Run(context.Background(), store, []domain.RemoteCookbook{apt}, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMirrorFailed))
	assert.True(t, errors.Is(err, domain.ErrDownloadFailed))

	status, ok := d.Status("apt-1.0.0")
	require.True(t, ok)
	assert.Equal(t, domain.MirrorStatusFailed, status)
	assert.True(t, status.IsTerminal())
}

func TestDownloader_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	index := mocks.NewMockCookbookIndex(ctrl)
	store := mocks.NewMockInventoryStore(ctrl)
	tel := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)

	apt := remote("apt", "1.0.0")
	putErr := errors.Join(domain.ErrInventoryWriteFailed, errors.New("disk full"))

	tel.EXPECT().Record(gomock.Any(), "apt-1.0.0").DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		})
	vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()
	vertex.EXPECT().Complete(putErr)

	store.EXPECT().Has("apt", apt.Version()).Return(false, nil)
	index.EXPECT().Download(gomock.Any(), apt).Return(io.NopCloser(strings.NewReader("apt")), nil)
	store.EXPECT().Put(gomock.Any(), apt, gomock.Any()).Return(domain.InventoryEntry{}, putErr)

	d := mirror.NewDownloader(index, tel, quietLogger(ctrl))
	_, err := d.Run(context.Background(), store, []domain.RemoteCookbook{apt}, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInventoryWriteFailed))
}

func TestDownloader_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := mirror.NewDownloader(mocks.NewMockCookbookIndex(ctrl), telemetry.NewNoOp(), quietLogger(ctrl))

	result, err := d.Run(context.Background(), mocks.NewMockInventoryStore(ctrl), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, result.Downloaded)
	assert.Empty(t, result.Cached)
}
