package domain

import (
	"path/filepath"
	"time"
)

const (
	// DefaultCacheDirName is the name of the internal cache directory.
	DefaultCacheDirName = ".patchwork"

	// PatchDirName is the name of the patch cache directory below the cache directory.
	PatchDirName = "patches"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "patchwork.yaml"

	// ConfigEnvVar overrides the configuration file path.
	ConfigEnvVar = "PATCHWORK_CONFIG"

	// HashFileExtension is appended to a file path to name its hash sidecar.
	HashFileExtension = ".hash"

	// PatchFileExtension is the extension of published patch cache entries.
	PatchFileExtension = ".patch"

	// TempFileExtension is the extension of patches that are still being written.
	TempFileExtension = ".tmp"

	// CopyBufferSize is the chunk size used when streaming file content.
	CopyBufferSize = 64 * 1024

	// DefaultPollInterval is the bounded wait used when a worker takes from the queue.
	DefaultPollInterval = 500 * time.Millisecond

	// DefaultPublishBackoff is the wait between attempts to publish a patch.
	DefaultPublishBackoff = time.Second

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// HashFilePath returns the sidecar path for the given file.
func HashFilePath(path string) string {
	return path + HashFileExtension
}

// DefaultPatchCachePath returns the default patch cache directory.
// It joins .patchwork and patches.
func DefaultPatchCachePath() string {
	return filepath.Join(DefaultCacheDirName, PatchDirName)
}
