package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg DroneConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if cfg != DefaultDroneConfig() {
		t.Errorf("embedded defaults differ from DefaultDroneConfig():\n got  %+v\n want %+v", cfg, DefaultDroneConfig())
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultDroneConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadDroneCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "physics:\n  gravity: 0.2\nlevels:\n  length: 1500\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDrone(path)
	if err != nil {
		t.Fatalf("LoadDrone: %v", err)
	}
	if cfg.Physics.Gravity != 0.2 {
		t.Errorf("gravity = %v, expected 0.2", cfg.Physics.Gravity)
	}
	if cfg.Levels.Length != 1500 {
		t.Errorf("level length = %v, expected 1500", cfg.Levels.Length)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.LiftForce != 0.28 {
		t.Errorf("lift_force = %v, expected default 0.28", cfg.Physics.LiftForce)
	}
	if cfg.Obstacles.Flare.MinLevel != 2 {
		t.Errorf("flare min_level = %d, expected default 2", cfg.Obstacles.Flare.MinLevel)
	}
}

func TestLoadDroneCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadDrone(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadDrone(bad)
	if err == nil {
		t.Error("expected parse error")
	}
	if cfg != DefaultDroneConfig() {
		t.Error("parse failure should return the defaults")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("levels:\n  length: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDrone(invalid); err == nil {
		t.Error("expected validation error for zero level length")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DroneConfig)
	}{
		{"zero width", func(c *DroneConfig) { c.World.Width = 0 }},
		{"ground above ceiling", func(c *DroneConfig) { c.World.GroundHeight = 480 }},
		{"hitbox inset too large", func(c *DroneConfig) { c.Drone.HitboxInset = 24 }},
		{"max speed below base", func(c *DroneConfig) { c.Physics.MaxSpeed = 0.1 }},
		{"inverted chimney range", func(c *DroneConfig) { c.Obstacles.Chimney.MaxWidth = 10 }},
		{"inverted flare lead", func(c *DroneConfig) { c.Obstacles.Flare.MaxLead = 100 }},
		{"no levels", func(c *DroneConfig) { c.Levels.Count = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDroneConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestWorldHelpers(t *testing.T) {
	cfg := DefaultDroneConfig()
	if got := cfg.World.GroundY(); got != 432 {
		t.Errorf("GroundY() = %v, expected 432", got)
	}
	if got := cfg.World.CenterY(); got != 240 {
		t.Errorf("CenterY() = %v, expected 240", got)
	}
}
