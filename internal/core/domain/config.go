package domain

import (
	"path/filepath"
	"time"

	"go.trai.ch/zerr"
)

// Config is the resolved runtime configuration.
type Config struct {
	// Workers is the fixed pool size. Zero means one worker per CPU.
	Workers      int
	PollInterval time.Duration
	CacheDir     string
	Patch        PatchConfig
	Log          LogConfig
}

// PatchConfig configures the patch cache publish loop.
type PatchConfig struct {
	Backoff time.Duration
	// MaxPublishAttempts bounds rename retries. Zero means retry until success or cancellation.
	MaxPublishAttempts int
}

// LogConfig configures the logger.
type LogConfig struct {
	JSON  bool
	Level LogLevel
	File  string
	// ProgressFile receives one line per worker status update when set.
	ProgressFile string
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Workers:      0,
		PollInterval: DefaultPollInterval,
		CacheDir:     DefaultCacheDirName,
		Patch: PatchConfig{
			Backoff: DefaultPublishBackoff,
		},
		Log: LogConfig{
			Level: LogLevelInfo,
		},
	}
}

// PatchDir returns the directory holding patch cache entries.
func (c Config) PatchDir() string {
	return filepath.Join(c.CacheDir, PatchDirName)
}

// Validate rejects configurations the engine cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Workers < 0:
		return zerr.With(ErrInvalidConfig, "workers", c.Workers)
	case c.PollInterval <= 0:
		return zerr.With(ErrInvalidConfig, "poll_interval", c.PollInterval.String())
	case c.Patch.Backoff <= 0:
		return zerr.With(ErrInvalidConfig, "patch.backoff", c.Patch.Backoff.String())
	case c.Patch.MaxPublishAttempts < 0:
		return zerr.With(ErrInvalidConfig, "patch.max_publish_attempts", c.Patch.MaxPublishAttempts)
	case c.CacheDir == "":
		return zerr.With(ErrInvalidConfig, "cache_dir", c.CacheDir)
	}
	return nil
}
