package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

// The config file that is picked up from the working directory when no other
// file is given
const defaultConfigPath = "javafront.toml"

// Config holds the settings that can be stored in a TOML file, flags given on
// the command line take precedence over these
type Config struct {
	LogLevel string `toml:"log_level"`
	// Default output format of the parse command
	Format string `toml:"format"`
	// Directory for the rendered trees, empty means standard output
	OutputDir string `toml:"output_dir"`
}

// LoadConfig loads the config at the given path. Without a path, the
// JAVAFRONT_CONFIG environment variable and then the default file in the
// working directory are tried, and if none exist the defaults are used
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("JAVAFRONT_CONFIG")
	}
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		}
	}

	var cfg Config
	if path != "" {
		path = os.ExpandEnv(path)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}

		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for ind, key := range undecoded {
				keys[ind] = key.String()
			}
			return nil, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
		}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Format == "" {
		c.Format = "text"
	}
}

// Validate checks that the log level and format are known
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	if _, ok := renderers[c.Format]; !ok {
		return fmt.Errorf("invalid format %q, expected one of: %s", c.Format, strings.Join(formatNames(), ", "))
	}
	return nil
}
