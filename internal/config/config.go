// Package config handles loading agenda.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultTaskFile is the backing file used when no config sets tasks.file.
const DefaultTaskFile = "tasks.txt"

// Config represents the agenda.toml configuration file.
type Config struct {
	Tasks Tasks `toml:"tasks"`
	UI    UI    `toml:"ui"`
}

// Tasks contains task-list configuration.
type Tasks struct {
	// File is the path to the backing task file. Relative paths are
	// resolved against the directory agenda runs in.
	File string `toml:"file"`
}

// UI contains display configuration.
type UI struct {
	// Color controls ANSI styling: "auto" (default), "always", or "never".
	Color string `toml:"color"`
}

// Load loads configuration from dir and the global config file. Settings in
// dir/agenda.toml override ~/.config/agenda/config.toml. Missing files are
// not an error; absent keys fall back to defaults.
func Load(dir string) (*Config, error) {
	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	localCfg, localMeta, err := loadConfigFile(filepath.Join(dir, "agenda.toml"))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, localCfg, globalMeta, localMeta)
	applyDefaults(merged)

	if err := validate(merged); err != nil {
		return nil, err
	}

	return merged, nil
}

func globalConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "agenda", "config.toml"), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, localCfg *Config, globalMeta, localMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if localCfg == nil {
		localCfg = &Config{}
	}

	merged := Config{}
	merged.Tasks.File = mergeString(localMeta.IsDefined("tasks", "file"), localCfg.Tasks.File, globalCfg.Tasks.File)
	merged.UI.Color = mergeString(localMeta.IsDefined("ui", "color"), localCfg.UI.Color, globalCfg.UI.Color)

	return &merged
}

func mergeString(localDefined bool, localValue, globalValue string) string {
	value := globalValue
	if localDefined {
		value = localValue
	}
	return strings.TrimSpace(value)
}

func applyDefaults(cfg *Config) {
	if cfg.Tasks.File == "" {
		cfg.Tasks.File = DefaultTaskFile
	}
	if cfg.UI.Color == "" {
		cfg.UI.Color = "auto"
	}
}

func validate(cfg *Config) error {
	switch cfg.UI.Color {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("invalid ui.color %q: expected auto, always, or never", cfg.UI.Color)
	}
}
