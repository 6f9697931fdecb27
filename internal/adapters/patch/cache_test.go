package patch_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/patchwork/internal/adapters/fs"
	"go.trai.ch/patchwork/internal/adapters/patch"
	"go.trai.ch/patchwork/internal/core/domain"
)

type countingDiffer struct {
	inner *patch.BSDiff
	diffs atomic.Int64
}

func (d *countingDiffer) Diff(oldData, newData []byte, w io.Writer) error {
	d.diffs.Add(1)
	return d.inner.Diff(oldData, newData, w)
}

func (d *countingDiffer) Apply(oldData, p []byte) ([]byte, error) {
	return d.inner.Apply(oldData, p)
}

func newDiffer() *countingDiffer {
	return &countingDiffer{inner: patch.NewBSDiff()}
}

var (
	oldBlob = bytes.Repeat([]byte("the quick brown fox "), 200)
	newBlob = append(bytes.Repeat([]byte("the quick brown fox "), 150), []byte("jumps over the lazy dog")...)
)

func keyOf(a, b []byte) domain.PatchKey {
	h := fs.NewHasher(nil)
	return domain.NewPatchKey(h.HashBytes(context.Background(), a), h.HashBytes(context.Background(), b))
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestCache_CreatePatch_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "patches")
	differ := newDiffer()
	cache := patch.NewCache(dir, differ, fs.NewHasher(nil))

	var out bytes.Buffer
	require.NoError(t, cache.CreatePatch(context.Background(), oldBlob, newBlob, &out))

	restored, err := differ.Apply(oldBlob, out.Bytes())
	require.NoError(t, err)
	assert.Equal(t, newBlob, restored)

	key := keyOf(oldBlob, newBlob)
	assert.Equal(t, []string{key.FileName()}, dirEntries(t, dir))
	assert.True(t, cache.Has(key.From, key.To))
}

func TestCache_CreatePatch_ReusesPublishedPatch(t *testing.T) {
	t.Parallel()

	differ := newDiffer()
	cache := patch.NewCache(t.TempDir(), differ, fs.NewHasher(nil))

	var first, second bytes.Buffer
	require.NoError(t, cache.CreatePatch(context.Background(), oldBlob, newBlob, &first))
	// Content-identical inputs in distinct buffers map to the same entry.
	require.NoError(t, cache.CreatePatch(context.Background(), bytes.Clone(oldBlob), bytes.Clone(newBlob), &second))

	assert.Equal(t, first.Bytes(), second.Bytes())
	assert.Equal(t, int64(1), differ.diffs.Load())
}

func TestCache_CreatePatch_Deterministic(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	require.NoError(t, patch.NewCache(t.TempDir(), newDiffer(), fs.NewHasher(nil)).
		CreatePatch(context.Background(), oldBlob, newBlob, &a))
	require.NoError(t, patch.NewCache(t.TempDir(), newDiffer(), fs.NewHasher(nil)).
		CreatePatch(context.Background(), oldBlob, newBlob, &b))

	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestCache_CreatePatch_ConcurrentPublish(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	const producers = 8

	outs := make([]bytes.Buffer, producers)
	errs := make([]error, producers)

	var wg sync.WaitGroup
	for i := range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Separate caches on one directory behave like separate processes.
			cache := patch.NewCache(dir, newDiffer(), fs.NewHasher(nil))
			errs[i] = cache.CreatePatch(context.Background(), oldBlob, newBlob, &outs[i])
		}()
	}
	wg.Wait()

	for i := range producers {
		require.NoError(t, errs[i])
		assert.Equal(t, outs[0].Bytes(), outs[i].Bytes())
	}
	assert.Equal(t, []string{keyOf(oldBlob, newBlob).FileName()}, dirEntries(t, dir))
}

func TestCache_TryGetPatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	differ := newDiffer()
	cache := patch.NewCache(dir, differ, fs.NewHasher(nil))
	key := keyOf(oldBlob, newBlob)

	miss := cache.TryGetPatch(key.From, key.To)
	assert.Equal(t, domain.LookupMiss, miss.State)
	assert.False(t, cache.Has(key.From, key.To))

	var out bytes.Buffer
	require.NoError(t, cache.CreatePatch(context.Background(), oldBlob, newBlob, &out))

	hit := cache.TryGetPatch(key.From, key.To)
	assert.Equal(t, domain.LookupHit, hit.State)
	assert.Equal(t, out.Bytes(), hit.Patch)
	assert.Equal(t, int64(1), differ.diffs.Load())
}

func TestCache_TryGetPatch_ReadError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cache := patch.NewCache(dir, newDiffer(), fs.NewHasher(nil))
	key := domain.NewPatchKey(domain.NewHash(1), domain.NewHash(2))
	require.NoError(t, os.Mkdir(filepath.Join(dir, key.FileName()), 0o750))

	lookup := cache.TryGetPatch(key.From, key.To)
	assert.Equal(t, domain.LookupError, lookup.State)
	assert.ErrorContains(t, lookup.Err, domain.ErrPatchReadFailed.Error())
}

func TestCache_CreatePatch_DirCreateFailure(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	blocker := filepath.Join(root, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	cache := patch.NewCache(filepath.Join(blocker, "patches"), newDiffer(), fs.NewHasher(nil))
	err := cache.CreatePatch(context.Background(), oldBlob, newBlob, io.Discard)

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrPatchCacheCreateFailed.Error())
}

func TestCache_Publish_RetriesWithBackoff(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		dir := t.TempDir()
		cache := patch.NewCache(dir, newDiffer(), fs.NewHasher(nil), patch.WithBackoff(time.Second))

		var attempts atomic.Int64
		cache.SetRename(func(oldPath, newPath string) error {
			if attempts.Add(1) <= 2 {
				return errors.New("sharing violation")
			}
			return os.Rename(oldPath, newPath)
		})

		start := time.Now()
		var out bytes.Buffer
		require.NoError(t, cache.CreatePatch(context.Background(), oldBlob, newBlob, &out))

		assert.Equal(t, int64(3), attempts.Load())
		assert.Equal(t, 2*time.Second, time.Since(start))
		assert.Equal(t, []string{keyOf(oldBlob, newBlob).FileName()}, dirEntries(t, dir))
	})
}

func TestCache_Publish_MaxAttempts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		dir := t.TempDir()
		cache := patch.NewCache(dir, newDiffer(), fs.NewHasher(nil),
			patch.WithBackoff(time.Second), patch.WithMaxPublishAttempts(3))

		var attempts atomic.Int64
		cache.SetRename(func(string, string) error {
			attempts.Add(1)
			return errors.New("locked")
		})

		err := cache.CreatePatch(context.Background(), oldBlob, newBlob, io.Discard)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrPatchPublishFailed.Error())
		assert.Equal(t, int64(3), attempts.Load())
		assert.Empty(t, dirEntries(t, dir), "temp file must be removed")
	})
}

func TestCache_Publish_ContextCanceled(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		dir := t.TempDir()
		cache := patch.NewCache(dir, newDiffer(), fs.NewHasher(nil), patch.WithBackoff(time.Minute))
		cache.SetRename(func(string, string) error {
			return errors.New("locked")
		})

		ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
		defer cancel()

		err := cache.CreatePatch(ctx, oldBlob, newBlob, io.Discard)
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Empty(t, dirEntries(t, dir))
	})
}

func TestCache_Publish_LoserReadsWinner(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	key := keyOf(oldBlob, newBlob)
	winner := []byte("published by someone else")

	cache := patch.NewCache(dir, newDiffer(), fs.NewHasher(nil))
	cache.SetRename(func(string, string) error {
		require.NoError(t, os.WriteFile(filepath.Join(dir, key.FileName()), winner, 0o600))
		return errors.New("target exists")
	})

	var out bytes.Buffer
	require.NoError(t, cache.CreatePatch(context.Background(), oldBlob, newBlob, &out))

	assert.Equal(t, winner, out.Bytes())
	assert.Equal(t, []string{key.FileName()}, dirEntries(t, dir))
}
