// Package config persists application preferences as a JSON file in the
// user's configuration directory.
package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Config holds the application preferences. The zero value is usable;
// Load fills in defaults for missing files.
type Config struct {
	// UseNotifications enables desktop notifications for import/export
	// results.
	UseNotifications bool `json:"use_notifications"`

	// DocumentName is the name given to exported binding documents.
	DocumentName string `json:"document_name"`

	// LastExportDirectory is the directory the user last exported key
	// bindings to or imported them from. Empty means "never used";
	// file dialogs then start in the home directory.
	LastExportDirectory string `json:"LastKeyBindingExportDirectory,omitempty"`

	configPath string
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "keybindery", "config.json")
}

// Load reads the configuration file, creating a default one when none
// exists.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
		log.Printf("Config file %q not found. Creating default.", configPath)
		cfg := defaultConfig(configPath)
		if saveErr := cfg.Save(); saveErr != nil {
			return nil, fmt.Errorf("config file not found and failed to create default %q: %w", configPath, saveErr)
		}
		return cfg, nil
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", configPath, err)
	}
	cfg.configPath = configPath
	if cfg.DocumentName == "" {
		cfg.DocumentName = "Key Bindings"
	}
	return &cfg, nil
}

func defaultConfig(configPath string) *Config {
	return &Config{
		UseNotifications: true,
		DocumentName:     "Key Bindings",
		configPath:       configPath,
	}
}

// Save writes the configuration back to its file, creating the parent
// directory when needed.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(c.configPath, data, 0o600)
}

// Path returns the location of the configuration file.
func (c *Config) Path() string {
	return c.configPath
}

// LastExportDir returns the last-used export directory, empty when
// unset.
func (c *Config) LastExportDir() string {
	return c.LastExportDirectory
}

// SetLastExportDir records and persists the last-used export directory.
// A preference that fails to save costs the user one extra navigation,
// so failures are logged and swallowed.
func (c *Config) SetLastExportDir(dir string) {
	c.LastExportDirectory = dir
	if err := c.Save(); err != nil {
		log.Printf("Warning: failed to save last export directory: %v", err)
	}
}
