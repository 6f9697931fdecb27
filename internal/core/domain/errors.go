package domain

import "go.trai.ch/zerr"

var (
	// ErrQueueClosed is returned for work submitted to, or still queued on, a closed work queue.
	ErrQueueClosed = zerr.New("work queue is closed")

	// ErrWorkItemPanicked is returned when a work item panics while executing.
	ErrWorkItemPanicked = zerr.New("work item panicked")

	// ErrWorkItemFailed is returned by a parallel map when one of its elements failed.
	ErrWorkItemFailed = zerr.New("work item failed")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrHashRecordSize is returned when a hash sidecar does not have the fixed record size.
	ErrHashRecordSize = zerr.New("hash record has invalid size")

	// ErrHashRecordVersion is returned when a hash sidecar carries an unknown format version.
	ErrHashRecordVersion = zerr.New("hash record has unsupported version")

	// ErrHashRecordWriteFailed is returned when a hash sidecar cannot be written.
	ErrHashRecordWriteFailed = zerr.New("failed to write hash record")

	// ErrInvalidHash is returned when a hexadecimal hash cannot be parsed.
	ErrInvalidHash = zerr.New("invalid hash, expected 16 hexadecimal digits")

	// ErrPatchCacheCreateFailed is returned when the patch cache directory cannot be created.
	ErrPatchCacheCreateFailed = zerr.New("failed to create patch cache directory")

	// ErrPatchCreateFailed is returned when a patch cannot be computed.
	ErrPatchCreateFailed = zerr.New("failed to create patch")

	// ErrPatchReadFailed is returned when a cached patch cannot be read.
	ErrPatchReadFailed = zerr.New("failed to read cached patch")

	// ErrPatchPublishFailed is returned when a computed patch cannot be moved into the cache.
	ErrPatchPublishFailed = zerr.New("failed to publish patch")

	// ErrPatchApplyFailed is returned when a patch cannot be applied.
	ErrPatchApplyFailed = zerr.New("failed to apply patch")

	// ErrPatchNotFound is returned when a requested patch is not in the cache.
	ErrPatchNotFound = zerr.New("patch not found in cache")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the configuration holds an invalid value.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrLogFileOpenFailed is returned when the log file cannot be opened.
	ErrLogFileOpenFailed = zerr.New("failed to open log file")

	// ErrNoFilesSpecified is returned when a command needs at least one file.
	ErrNoFilesSpecified = zerr.New("no files specified")

	// ErrNotConfigured is returned when the application is used before Configure.
	ErrNotConfigured = zerr.New("application is not configured")
)
