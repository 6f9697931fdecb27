package fs_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/patchwork/internal/adapters/fs"
	"go.trai.ch/patchwork/internal/core/domain"
)

type report struct {
	msg      string
	fraction domain.Percent
}

type recordingSink struct {
	mu      sync.Mutex
	reports []report
}

func (s *recordingSink) Report(_ context.Context, msg string, fraction domain.Percent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, report{msg: msg, fraction: fraction})
}

func (s *recordingSink) Log(context.Context, domain.LogLevel, string) {}

func (s *recordingSink) Error(context.Context, error, string) {}

func (s *recordingSink) snapshot() []report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]report(nil), s.reports...)
}

type failingReader struct {
	err error
}

func (r failingReader) Read([]byte) (int, error) {
	return 0, r.err
}

func TestHasher_HashBytes_MatchesSeededXXH64(t *testing.T) {
	t.Parallel()

	data := []byte("hello world")
	h := fs.NewHasher(nil).HashBytes(context.Background(), data)

	digest := xxhash.NewWithSeed(domain.HashSeed)
	_, _ = digest.Write(data)

	assert.False(t, h.IsNull())
	assert.Equal(t, digest.Sum64(), h.Uint64())
	assert.NotEqual(t, xxhash.Sum64(data), h.Uint64())
}

func TestHasher_HashBytes_Empty(t *testing.T) {
	t.Parallel()

	h := fs.NewHasher(nil).HashBytes(context.Background(), nil)

	digest := xxhash.NewWithSeed(domain.HashSeed)
	assert.Equal(t, digest.Sum64(), h.Uint64())
	assert.False(t, h.IsNull())
}

func TestHasher_HashReader_ReportsEveryChunk(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	data := bytes.Repeat([]byte{0xAB}, 200*1024)

	h, err := fs.NewHasher(sink).HashReader(context.Background(), "big.bin", bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Equal(t, fs.NewHasher(nil).HashBytes(context.Background(), data), h)

	reports := sink.snapshot()
	require.Len(t, reports, 4)
	for i, rep := range reports {
		assert.Equal(t, "Hashing big.bin", rep.msg)
		if i > 0 {
			assert.GreaterOrEqual(t, rep.fraction.Float(), reports[i-1].fraction.Float())
		}
	}
	assert.InDelta(t, 1.0, reports[len(reports)-1].fraction.Float(), 1e-9)
}

func TestHasher_HashBytes_ReportsMemoryStream(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	fs.NewHasher(sink).HashBytes(context.Background(), []byte("abc"))

	reports := sink.snapshot()
	require.Len(t, reports, 1)
	assert.Equal(t, "Hashing memory stream", reports[0].msg)
}

func TestHasher_HashReader_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk on fire")
	h, err := fs.NewHasher(nil).HashReader(context.Background(), "x", failingReader{err: boom}, 10)

	require.Error(t, err)
	assert.True(t, h.IsNull())
	assert.ErrorContains(t, err, domain.ErrFileHashFailed.Error())
	assert.ErrorIs(t, err, boom)
}

func TestHasher_HashReader_SameContentSameHash(t *testing.T) {
	t.Parallel()

	hasher := fs.NewHasher(nil)
	a, err := hasher.HashReader(context.Background(), "a", strings.NewReader("payload"), 7)
	require.NoError(t, err)
	b, err := hasher.HashReader(context.Background(), "b", strings.NewReader("payload"), 0)
	require.NoError(t, err)
	c, err := hasher.HashReader(context.Background(), "c", strings.NewReader("payload!"), 8)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
