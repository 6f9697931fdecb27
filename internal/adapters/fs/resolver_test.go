package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/patchwork/internal/adapters/fs"
	"go.trai.ch/patchwork/internal/core/domain"
)

func TestResolver_ResolveFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	require.NoError(t, os.MkdirAll(sub, 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(root, domain.DefaultCacheDirName), 0o750))

	a := writeFile(t, root, "a.txt", "a")
	b := writeFile(t, sub, "b.bin", "b")
	writeFile(t, root, "a.txt"+domain.HashFileExtension, "sidecar")
	writeFile(t, root, "x"+domain.TempFileExtension, "tmp")
	writeFile(t, filepath.Join(root, ".git"), "HEAD", "ref")
	writeFile(t, filepath.Join(root, domain.DefaultCacheDirName), "junk", "junk")

	files, err := fs.NewResolver().ResolveFiles([]string{root, a})
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, files)
}

func TestResolver_ResolveFiles_Glob(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	one := writeFile(t, root, "1.dat", "1")
	two := writeFile(t, root, "2.dat", "2")
	writeFile(t, root, "3.txt", "3")

	files, err := fs.NewResolver().ResolveFiles([]string{filepath.Join(root, "*.dat")})
	require.NoError(t, err)
	assert.Equal(t, []string{one, two}, files)
}

func TestResolver_ResolveFiles_Errors(t *testing.T) {
	t.Parallel()

	_, err := fs.NewResolver().ResolveFiles(nil)
	require.ErrorIs(t, err, domain.ErrNoFilesSpecified)

	_, err = fs.NewResolver().ResolveFiles([]string{filepath.Join(t.TempDir(), "nope")})
	require.Error(t, err)
	assert.ErrorContains(t, err, "input not found")
}
