// Package config loads the patchwork runtime configuration from YAML.
package config

import (
	"errors"
	iofs "io/fs"
	"os"
	"time"

	"go.trai.ch/patchwork/internal/core/domain"
	"go.trai.ch/patchwork/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// ResolvePath picks the configuration file: an explicit path wins, then
// PATCHWORK_CONFIG, then patchwork.yaml in the working directory.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(domain.ConfigEnvVar); env != "" {
		return env
	}
	return domain.ConfigFileName
}

// Load reads the configuration at path. A missing file yields the defaults.
func (l *Loader) Load(path string) (domain.Config, error) {
	path = ResolvePath(path)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			l.logger.Debug("no configuration file at " + path + ", using defaults")
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}
	return cfg, nil
}

// Parse decodes YAML onto the defaults and validates the result.
func Parse(data []byte) (domain.Config, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Config{}, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	cfg := domain.DefaultConfig()
	if file.Workers != nil {
		cfg.Workers = *file.Workers
	}
	if file.CacheDir != "" {
		cfg.CacheDir = file.CacheDir
	}

	var err error
	if cfg.PollInterval, err = duration("poll_interval", file.PollInterval, cfg.PollInterval); err != nil {
		return domain.Config{}, err
	}
	if cfg.Patch.Backoff, err = duration("patch.backoff", file.Patch.Backoff, cfg.Patch.Backoff); err != nil {
		return domain.Config{}, err
	}
	if file.Patch.MaxPublishAttempts != nil {
		cfg.Patch.MaxPublishAttempts = *file.Patch.MaxPublishAttempts
	}

	if file.Log.JSON != nil {
		cfg.Log.JSON = *file.Log.JSON
	}
	if file.Log.Level != "" {
		cfg.Log.Level = domain.ParseLogLevel(file.Log.Level)
	}
	cfg.Log.File = file.Log.File
	cfg.Log.ProgressFile = file.Log.ProgressFile

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

func duration(key, raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), key, raw)
	}
	return d, nil
}
