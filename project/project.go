// Package project loads the optional configuration file for the vak
// tools. Command-line flags take precedence over file values.
package project

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up in the working
// directory when no explicit path is given.
const DefaultFile = "vak.yaml"

// Config carries server settings.
type Config struct {
	// Verbosity is the log verbosity: 0 shows errors and warnings,
	// 1 adds info, 2 adds debug output.
	Verbosity int `yaml:"verbosity"`
	// LogFile receives log output instead of stderr when set.
	// Stdout stays reserved for the protocol stream.
	LogFile string `yaml:"logFile"`
	// Debug enables protocol-level logging in the LSP server.
	Debug bool `yaml:"debug"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{Verbosity: 1}
}

// Load reads configuration from path, or from DefaultFile in the
// working directory when path is empty. A missing default file yields
// the defaults; a missing explicit file is an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
