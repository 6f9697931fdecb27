package logger_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/patchwork/internal/adapters/logger"
	"go.trai.ch/patchwork/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		goldenName string
	}{
		{"simple message", "some message", "info_basic"},
		{"empty message", "", "info_empty"},
		{"multiline message", "line1\nline2", "info_multiline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Info(tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("some warning")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Debug(t *testing.T) {
	t.Run("filtered at info level", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.Debug("verbose")

		g := goldie.New(t)
		g.Assert(t, "debug_filtered", buf.Bytes())
	})

	t.Run("enabled at debug level", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.SetLevel(domain.LogLevelDebug)
		lg.Debug("verbose")

		g := goldie.New(t)
		g.Assert(t, "debug_enabled", buf.Bytes())
	})
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "multiline error",
			err:        errors.New("yaml: unmarshal errors:\n  line 30: cannot unmarshal"),
			goldenName: "error_multiline",
		},
		{
			name: "zerr chain",
			err: zerr.Wrap(
				zerr.Wrap(
					errors.New("database connection failed"),
					"failed to load user data",
				),
				"failed to process request",
			),
			goldenName: "error_chain_zerr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("hello")
	lg.Error(errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, `"msg":"hello"`)
	assert.Contains(t, out, `"msg":"operation failed"`)
	assert.Contains(t, out, `"error":"boom"`)

	// Switching back keeps the output destination.
	buf.Reset()
	lg.SetJSON(false)
	lg.Info("plain")
	assert.Equal(t, "plain\n", buf.String())
}

func TestLogger_OpenFile(t *testing.T) {
	lg, buf := newTestLogger(t)
	path := filepath.Join(t.TempDir(), "patchwork.log")

	require.NoError(t, lg.OpenFile(path))
	lg.Info("to both")
	lg.Warn("careful")
	require.NoError(t, lg.Close())

	lg.Info("console only")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=\"to both\"")
	assert.Contains(t, string(data), "level=WARN")
	assert.NotContains(t, string(data), "console only")

	assert.Contains(t, buf.String(), "to both")
	assert.Contains(t, buf.String(), "console only")
}

func TestLogger_OpenFile_Error(t *testing.T) {
	lg, _ := newTestLogger(t)
	err := lg.OpenFile(filepath.Join(t.TempDir(), "missing", "dir", "patchwork.log"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrLogFileOpenFailed.Error())
}
