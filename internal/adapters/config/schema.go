package config

// File is the on-disk shape of patchwork.yaml. Unset fields keep their defaults.
type File struct {
	Workers      *int     `yaml:"workers"`
	PollInterval string   `yaml:"poll_interval"`
	CacheDir     string   `yaml:"cache_dir"`
	Patch        PatchDTO `yaml:"patch"`
	Log          LogDTO   `yaml:"log"`
}

// PatchDTO is the patch section of the configuration file.
type PatchDTO struct {
	Backoff            string `yaml:"backoff"`
	MaxPublishAttempts *int   `yaml:"max_publish_attempts"`
}

// LogDTO is the log section of the configuration file.
type LogDTO struct {
	JSON         *bool  `yaml:"json"`
	Level        string `yaml:"level"`
	File         string `yaml:"file"`
	ProgressFile string `yaml:"progress_file"`
}
