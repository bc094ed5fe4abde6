// Package config loads the cssplay application configuration from a YAML
// file, an optional .env file and CSSPLAY_* environment variables.
package config

import (
	"time"
)

// Config represents the full cssplay configuration document.
type Config struct {
	LogLevel      string        `yaml:"log_level" validate:"required,oneof=debug info warn error"`
	HumanReadable bool          `yaml:"human_readable"`
	PresetsFile   string        `yaml:"presets_file,omitempty"`
	CopyFeedback  time.Duration `yaml:"copy_feedback" validate:"gt=0s,lte=1m"`
	Serve         Serve         `yaml:"serve"`
}

// Serve configures the HTTP API.
type Serve struct {
	Addr        string        `yaml:"addr" validate:"required,hostname_port"`
	ReadTimeout time.Duration `yaml:"read_timeout" validate:"gt=0s"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		LogLevel:      "info",
		HumanReadable: true,
		CopyFeedback:  2 * time.Second,
		Serve: Serve{
			Addr:        ":8080",
			ReadTimeout: 5 * time.Second,
		},
	}
}
