package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/cssplay/internal/validation"
	cssplayerrors "github.com/alexisbeaulieu97/cssplay/pkg/errors"
)

// Environment variables that override file values.
const (
	EnvLogLevel    = "CSSPLAY_LOG_LEVEL"
	EnvPresetsFile = "CSSPLAY_PRESETS_FILE"
	EnvServeAddr   = "CSSPLAY_SERVE_ADDR"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// DefaultPath returns $XDG_CONFIG_HOME/cssplay/config.yaml, or the platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cssplay", "config.yaml"), nil
}

// ParseConfig decodes a configuration document over the defaults and
// validates it. path is only used in errors.
func ParseConfig(path string, data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, cssplayerrors.NewParseError(path, extractLine(err), err)
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the configuration at path and applies environment overrides.
// An empty path means DefaultPath, where a missing file yields the
// defaults; an explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return finish(Default())
		}
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, fs.ErrNotExist):
		return finish(Default())
	default:
		return nil, cssplayerrors.NewParseError(path, 0, err)
	}

	cfg, err := ParseConfig(path, data)
	if err != nil {
		return nil, err
	}
	return finish(cfg)
}

func finish(cfg *Config) (*Config, error) {
	applyEnv(cfg)
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnvFile exports the variables of a .env file that are not already
// set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return cssplayerrors.NewParseError(path, 0, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvPresetsFile); ok {
		cfg.PresetsFile = v
	}
	if v, ok := os.LookupEnv(EnvServeAddr); ok && v != "" {
		cfg.Serve.Addr = v
	}
}

// ValidateConfig performs schema validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return cssplayerrors.NewValidationError("config", "configuration is nil", nil)
	}
	return validation.Struct("config", cfg)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
