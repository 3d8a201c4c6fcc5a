package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const droneConfigFile = "dronemania.yaml"

// LoadDrone loads the game configuration.
// Search order: customPath -> ~/.arcade/configs/dronemania.yaml -> ./configs/dronemania.yaml -> embedded default
//
// Files are decoded on top of the hardcoded defaults, so a partial file
// only overrides the keys it names.
func LoadDrone(customPath string) (DroneConfig, error) {
	cfg := DefaultDroneConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultDroneConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(droneConfigFile); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", droneConfigFile)); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDroneYAML, &cfg); err != nil {
		return DefaultDroneConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, unparsable or invalid
// files are skipped.
func tryLoad(path string) (DroneConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DroneConfig{}, false
	}
	cfg := DefaultDroneConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DroneConfig{}, false
	}
	if err := cfg.Validate(); err != nil {
		return DroneConfig{}, false
	}
	return cfg, true
}

// UserConfigPath returns the per-user config file path, or empty if the
// home directory is unavailable.
func UserConfigPath() string {
	return userConfigPath(droneConfigFile)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate reports values the simulation cannot run with.
func (c DroneConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	case c.World.GroundHeight < 0 || c.World.GroundHeight >= c.World.Height:
		return fmt.Errorf("config: ground_height %v out of range", c.World.GroundHeight)
	case c.Drone.Size <= 0:
		return fmt.Errorf("config: drone size must be positive, got %v", c.Drone.Size)
	case c.Drone.HitboxInset*2 >= c.Drone.Size:
		return fmt.Errorf("config: hitbox_inset %v leaves no hitbox", c.Drone.HitboxInset)
	case c.Physics.MaxRotation <= 0:
		return fmt.Errorf("config: max_rotation must be positive, got %v", c.Physics.MaxRotation)
	case c.Physics.MaxSpeed < c.Physics.BaseSpeed:
		return fmt.Errorf("config: max_speed %v below base_speed %v", c.Physics.MaxSpeed, c.Physics.BaseSpeed)
	case c.Obstacles.SpawnDistance <= 0:
		return fmt.Errorf("config: spawn_distance must be positive, got %v", c.Obstacles.SpawnDistance)
	case c.Obstacles.Chimney.MaxWidth < c.Obstacles.Chimney.MinWidth ||
		c.Obstacles.Chimney.MaxHeight < c.Obstacles.Chimney.MinHeight:
		return fmt.Errorf("config: chimney size range is inverted")
	case c.Obstacles.Flare.MaxWidth < c.Obstacles.Flare.MinWidth ||
		c.Obstacles.Flare.MaxHeight < c.Obstacles.Flare.MinHeight ||
		c.Obstacles.Flare.MaxLead < c.Obstacles.Flare.MinLead:
		return fmt.Errorf("config: flare range is inverted")
	case c.Levels.Length <= 0:
		return fmt.Errorf("config: level length must be positive, got %v", c.Levels.Length)
	case c.Levels.Count < 1:
		return fmt.Errorf("config: level count must be at least 1, got %d", c.Levels.Count)
	}
	return nil
}
