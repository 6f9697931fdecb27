package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/patchwork/internal/core/domain"
	"go.trai.ch/patchwork/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileResolver = (*Resolver)(nil)

// Resolver expands command line arguments into the regular files they name.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveFiles expands globs and walks directories. Hash sidecars, temp files and
// the cache and VCS directories are skipped. The result is sorted and unique.
func (r *Resolver) ResolveFiles(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, domain.ErrNoFilesSpecified
	}

	unique := make(map[string]bool)
	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", arg)
		}
		if len(matches) == 0 {
			return nil, zerr.With(zerr.New("input not found"), "path", arg)
		}

		for _, match := range matches {
			if err := r.walk(match, unique); err != nil {
				return nil, err
			}
		}
	}

	result := make([]string, 0, len(unique))
	for path := range unique {
		result = append(result, path)
	}
	sort.Strings(result)

	return result, nil
}

func (r *Resolver) walk(root string, into map[string]bool) error {
	info, err := os.Stat(root)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", root)
	}
	if !info.IsDir() {
		if !skipFile(filepath.Base(root)) {
			into[root] = true
		}
		return nil
	}

	return filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to walk directory"), "path", path)
		}
		if d.IsDir() {
			if path != root && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && !skipFile(d.Name()) {
			into[path] = true
		}
		return nil
	})
}

func skipDir(name string) bool {
	switch name {
	case ".git", ".jj", domain.DefaultCacheDirName:
		return true
	default:
		return false
	}
}

func skipFile(name string) bool {
	return strings.HasSuffix(name, domain.HashFileExtension) ||
		strings.HasSuffix(name, domain.TempFileExtension)
}
