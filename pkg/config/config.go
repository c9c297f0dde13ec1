// Package config stores CLI defaults in an INI file addressed by dotted
// section.key references.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	"arbor/pkg/tree"
)

// DefaultFile is where the CLI looks for settings.
const DefaultFile = "arbor.ini"

// Config carries the settings the CLI consults.
type Config struct {
	StrategyName    string // "flag" or "separator"
	Indexed         bool   // use the indexed builder
	RequireDeclared bool   // indexed builds demand declared ancestors
	Stats           bool   // print the summary line
	Progress        bool   // live progress reporting
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{StrategyName: "flag", Stats: true, Progress: true}
}

// Load reads settings from an INI file; a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	file, err := ini.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	build := file.Section("build")
	cfg.StrategyName = build.Key("strategy").MustString(cfg.StrategyName)
	cfg.Indexed = build.Key("indexed").MustBool(cfg.Indexed)
	cfg.RequireDeclared = build.Key("require_declared").MustBool(cfg.RequireDeclared)

	cfg.Stats = file.Section("render").Key("stats").MustBool(cfg.Stats)
	cfg.Progress = file.Section("progress").Key("enabled").MustBool(cfg.Progress)
	return cfg, nil
}

// Save writes the settings to an INI file, creating it if needed.
func (c *Config) Save(path string) error {
	file := ini.Empty()

	build := file.Section("build")
	build.Key("strategy").SetValue(c.StrategyName)
	build.Key("indexed").SetValue(strconv.FormatBool(c.Indexed))
	build.Key("require_declared").SetValue(strconv.FormatBool(c.RequireDeclared))

	file.Section("render").Key("stats").SetValue(strconv.FormatBool(c.Stats))
	file.Section("progress").Key("enabled").SetValue(strconv.FormatBool(c.Progress))

	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("save config %s: %w", path, err)
	}
	return nil
}

// Strategy maps the configured name to a parent-resolution strategy.
func (c *Config) Strategy() (tree.Strategy, error) {
	switch c.StrategyName {
	case "flag":
		return tree.DirectoryFlag, nil
	case "separator":
		return tree.SeparatorSynthesis, nil
	}
	return nil, fmt.Errorf("unknown strategy %q: valid values are flag, separator", c.StrategyName)
}

// splitKey breaks a dotted section.key reference.
func splitKey(key string) (string, string, error) {
	section, name, found := strings.Cut(key, ".")
	if !found || section == "" || name == "" {
		return "", "", fmt.Errorf("parse key %q: want section.key", key)
	}
	return section, name, nil
}

// Get reads one section.key value from an INI file.
func Get(path, key string) (string, error) {
	section, name, err := splitKey(key)
	if err != nil {
		return "", err
	}
	file, err := ini.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("config key %s not set", key)
		}
		return "", fmt.Errorf("load config %s: %w", path, err)
	}
	if !file.Section(section).HasKey(name) {
		return "", fmt.Errorf("config key %s not set", key)
	}
	return file.Section(section).Key(name).String(), nil
}

// Set updates one section.key value in an INI file, creating the file if
// needed.
func Set(path, key, value string) error {
	section, name, err := splitKey(key)
	if err != nil {
		return err
	}
	file, err := ini.Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load config %s: %w", path, err)
		}
		file = ini.Empty()
	}
	file.Section(section).Key(name).SetValue(value)
	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("save config %s: %w", path, err)
	}
	return nil
}
