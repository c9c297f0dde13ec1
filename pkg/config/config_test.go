package config

import (
	"path/filepath"
	"strings"
	"testing"

	"arbor/pkg/tree"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.ini"))
	if err != nil {
		t.Fatalf("Failed to load defaults: %v", err)
	}

	want := Default()
	if *cfg != *want {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, want)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)

	cfg := Default()
	cfg.StrategyName = "separator"
	cfg.Indexed = true
	cfg.Stats = false
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if *got != *cfg {
		t.Errorf("Load() = %+v, want %+v", got, cfg)
	}
}

func TestGetSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)

	if err := Set(path, "build.strategy", "separator"); err != nil {
		t.Fatalf("Failed to set key in a fresh file: %v", err)
	}
	value, err := Get(path, "build.strategy")
	if err != nil {
		t.Fatalf("Failed to get key: %v", err)
	}
	if value != "separator" {
		t.Errorf("Expected separator, got %q", value)
	}

	if err := Set(path, "build.strategy", "flag"); err != nil {
		t.Fatalf("Failed to overwrite key: %v", err)
	}
	value, err = Get(path, "build.strategy")
	if err != nil {
		t.Fatalf("Failed to get key after overwrite: %v", err)
	}
	if value != "flag" {
		t.Errorf("Expected flag, got %q", value)
	}

	if _, err := Get(path, "build.missing"); err == nil {
		t.Error("Expected an error for an unset key")
	}
	if _, err := Get(path, "nodot"); err == nil {
		t.Error("Expected an error for a key without a section")
	}
}

func TestGetMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.ini")
	if _, err := Get(path, "build.strategy"); err == nil {
		t.Error("Expected an error when the config file does not exist")
	}
}

func TestStrategyMapping(t *testing.T) {
	tests := []struct {
		name string
		want tree.Strategy
		ok   bool
	}{
		{"flag", tree.DirectoryFlag, true},
		{"separator", tree.SeparatorSynthesis, true},
		{"zip", nil, false},
		{"", nil, false},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.StrategyName = tt.name
		got, err := cfg.Strategy()
		if tt.ok {
			if err != nil {
				t.Errorf("Strategy(%q) returned error: %v", tt.name, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Strategy(%q) = %v, want %v", tt.name, got, tt.want)
			}
			continue
		}
		if err == nil {
			t.Errorf("Strategy(%q) succeeded, expected an error", tt.name)
		} else if !strings.Contains(err.Error(), "valid values") {
			t.Errorf("Strategy(%q) error should list valid values, got: %v", tt.name, err)
		}
	}
}
