package app_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/patchwork/internal/adapters/fs"
	"go.trai.ch/patchwork/internal/adapters/patch"
	"go.trai.ch/patchwork/internal/adapters/progress"
	"go.trai.ch/patchwork/internal/app"
	"go.trai.ch/patchwork/internal/core/domain"
	"go.trai.ch/patchwork/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app    *app.App
	loader *mocks.MockConfigLoader
	cache  *patch.MemoryCache
	hashes *fs.HashCache
	dir    string
}

func newFixture(t *testing.T, memoryPatches bool) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	hasher := fs.NewHasher(nil)
	hashes := fs.NewHashCache(hasher, log)
	differ := patch.NewBSDiff()
	cache := patch.NewMemoryCache(differ, hasher)

	var opts []app.Option
	if memoryPatches {
		opts = append(opts, app.WithPatchCache(cache))
	}

	a := app.New(loader, log, progress.NewBroker(), hasher, hashes, differ, fs.NewResolver(), opts...)
	t.Cleanup(func() { _ = a.Close() })

	return &fixture{app: a, loader: loader, cache: cache, hashes: hashes, dir: t.TempDir()}
}

func (f *fixture) configure(t *testing.T, workers int) {
	t.Helper()
	cfg := domain.DefaultConfig()
	cfg.Workers = workers
	cfg.CacheDir = filepath.Join(f.dir, domain.DefaultCacheDirName)
	f.loader.EXPECT().Load("").Return(cfg, nil)
	require.NoError(t, f.app.Configure("", app.Overrides{}))
}

func (f *fixture) write(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(f.dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

var (
	oldData = bytes.Repeat([]byte("abcdefgh"), 512)
	newData = append(bytes.Repeat([]byte("abcdefgh"), 500), []byte("tail changed")...)
)

func TestApp_NotConfigured(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)

	_, err := f.app.HashFiles(context.Background(), []string{"x"}, true)
	require.ErrorIs(t, err, domain.ErrNotConfigured)

	err = f.app.Diff(context.Background(), "a", "b", &bytes.Buffer{})
	require.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestApp_Configure(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	workers := 3
	f.loader.EXPECT().Load("custom.yaml").Return(domain.DefaultConfig(), nil)

	require.NoError(t, f.app.Configure("custom.yaml", app.Overrides{Workers: &workers, Verbose: true}))

	cfg := f.app.Config()
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, domain.LogLevelDebug, cfg.Log.Level)
}

func TestApp_Configure_Errors(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	f.loader.EXPECT().Load("").Return(domain.Config{}, errors.New("broken"))
	require.ErrorContains(t, f.app.Configure("", app.Overrides{}), "broken")

	negative := -1
	f.loader.EXPECT().Load("").Return(domain.DefaultConfig(), nil)
	err := f.app.Configure("", app.Overrides{Workers: &negative})
	require.ErrorContains(t, err, domain.ErrInvalidConfig.Error())
}

func TestApp_HashFiles(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	f.configure(t, 2)

	a := f.write(t, "a.bin", oldData)
	b := f.write(t, "b.bin", newData)

	hashes, err := f.app.HashFiles(context.Background(), []string{b, a}, true)
	require.NoError(t, err)
	require.Len(t, hashes, 2)

	hasher := fs.NewHasher(nil)
	assert.Equal(t, app.FileHash{Path: a, Hash: hasher.HashBytes(context.Background(), oldData)}, hashes[0])
	assert.Equal(t, app.FileHash{Path: b, Hash: hasher.HashBytes(context.Background(), newData)}, hashes[1])
	assert.Equal(t, domain.LookupHit, f.hashes.TryGetHashCache(a).State)

	again, err := f.app.HashFiles(context.Background(), []string{a, b}, true)
	require.NoError(t, err)
	assert.Equal(t, hashes, again)
	assert.Equal(t, fs.HashStats{Hits: 2, Misses: 2}, f.hashes.Stats())
}

func TestApp_HashFiles_Uncached(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	f.configure(t, 1)
	a := f.write(t, "a.bin", oldData)

	_, err := f.app.HashFiles(context.Background(), []string{a}, false)
	require.NoError(t, err)

	_, statErr := os.Stat(domain.HashFilePath(a))
	assert.True(t, os.IsNotExist(statErr))
}

func TestApp_DiffLookupApply(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	f.configure(t, 2)

	from := f.write(t, "from.bin", oldData)
	to := f.write(t, "to.bin", newData)

	var diff bytes.Buffer
	require.NoError(t, f.app.Diff(context.Background(), from, to, &diff))
	assert.Equal(t, 1, f.cache.Len())

	hasher := fs.NewHasher(nil)
	key := domain.NewPatchKey(
		hasher.HashBytes(context.Background(), oldData),
		hasher.HashBytes(context.Background(), newData),
	)

	cached, err := f.app.Lookup(context.Background(), key.From.Hex(), key.To.Hex())
	require.NoError(t, err)
	assert.Equal(t, diff.Bytes(), cached)

	patchPath := f.write(t, "p.patch", cached)
	var restored bytes.Buffer
	require.NoError(t, f.app.Apply(context.Background(), from, patchPath, &restored))
	assert.Equal(t, newData, restored.Bytes())
}

func TestApp_Diff_WritesFileCache(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)
	f.configure(t, 2)

	from := f.write(t, "from.bin", oldData)
	to := f.write(t, "to.bin", newData)

	require.NoError(t, f.app.Diff(context.Background(), from, to, &bytes.Buffer{}))

	entries, err := os.ReadDir(f.app.Config().PatchDir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.PatchFileExtension, filepath.Ext(entries[0].Name()))
}

func TestApp_Configure_RebuildsPatchCache(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)
	f.configure(t, 1)
	first := f.app.Config().PatchDir()

	cfg := domain.DefaultConfig()
	cfg.Workers = 1
	cfg.CacheDir = filepath.Join(f.dir, "second")
	f.loader.EXPECT().Load("").Return(cfg, nil)
	require.NoError(t, f.app.Configure("", app.Overrides{}))

	from := f.write(t, "from.bin", oldData)
	to := f.write(t, "to.bin", newData)
	require.NoError(t, f.app.Diff(context.Background(), from, to, &bytes.Buffer{}))

	entries, err := os.ReadDir(cfg.PatchDir())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.NoDirExists(t, first)
}

func TestApp_ProgressFile(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	progressPath := filepath.Join(f.dir, "progress.log")

	cfg := domain.DefaultConfig()
	cfg.Workers = 1
	cfg.CacheDir = filepath.Join(f.dir, domain.DefaultCacheDirName)
	f.loader.EXPECT().Load("").Return(cfg, nil)
	require.NoError(t, f.app.Configure("", app.Overrides{ProgressFile: progressPath}))

	file := f.write(t, "a.bin", []byte("payload"))
	_, err := f.app.HashFiles(context.Background(), []string{file}, false)
	require.NoError(t, err)
	require.NoError(t, f.app.Close())

	data, err := os.ReadFile(progressPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[worker-1] "+app.HashingMessage+" (1/1) 100%")
}

func TestApp_Diff_MissingInput(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	f.configure(t, 1)
	from := f.write(t, "from.bin", oldData)

	err := f.app.Diff(context.Background(), from, filepath.Join(f.dir, "missing"), &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFileOpenFailed.Error())
}

func TestApp_Lookup_Errors(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	f.configure(t, 1)

	_, err := f.app.Lookup(context.Background(), "zz", "00")
	require.ErrorContains(t, err, domain.ErrInvalidHash.Error())

	_, err = f.app.Lookup(context.Background(), "0000000000000001", "0000000000000002")
	require.ErrorContains(t, err, domain.ErrPatchNotFound.Error())
}
