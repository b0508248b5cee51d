// Package config loads the optional user configuration file, which extends
// the built-in stylesheet and watermark tables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration. Every section is
// optional; entries are merged over the built-in tables at startup.
type Config struct {
	// Watermarks maps extra raw watermark identifiers to display names.
	// The special value "skip" tolerates an identifier without emitting a
	// watermark field.
	Watermarks map[string]string `toml:"watermarks"`
	// Stylesheets maps extra stylesheet identifiers to layout/frame pairs.
	Stylesheets map[string]Stylesheet `toml:"stylesheets"`
}

// Stylesheet is one configured stylesheet entry.
type Stylesheet struct {
	Layout string `toml:"layout"`
	Frame  string `toml:"frame"`
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "msejson", "config.toml")
}

// LoadConfig loads the config file. A missing file yields an empty config.
func LoadConfig() (*Config, error) {
	return loadConfigFile(GetConfigFilePath())
}

func loadConfigFile(path string) (*Config, error) {
	var config Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &config, nil
	}
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}
	return &config, nil
}
