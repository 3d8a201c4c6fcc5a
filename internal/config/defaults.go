package config

import (
	_ "embed"
)

//go:embed defaults/dronemania.yaml
var defaultDroneYAML []byte

// DefaultDroneConfig returns the hardcoded default configuration.
func DefaultDroneConfig() DroneConfig {
	return DroneConfig{
		World: World{
			Width:        640,
			Height:       480,
			GroundHeight: 48,
		},
		Drone: Drone{
			StartX:      150,
			Size:        48,
			HitboxInset: 10,
		},
		Physics: Physics{
			Gravity:       0.12,
			LiftForce:     0.28,
			LiftFactor:    0.7,
			MaxVelocity:   5,
			RotationSpeed: 2,
			MaxRotation:   45,
			BaseSpeed:     0.5,
			MaxSpeed:      4,
		},
		Obstacles: Obstacles{
			SpawnDistance: 250,
			SpawnLead:     50,
			PruneMargin:   100,
			Chimney: SizeRange{
				MinWidth:  50,
				MaxWidth:  80,
				MinHeight: 100,
				MaxHeight: 300,
			},
			Flare: FlareOptions{
				SizeRange: SizeRange{
					MinWidth:  40,
					MaxWidth:  60,
					MinHeight: 60,
					MaxHeight: 100,
				},
				MinLead:  150,
				MaxLead:  250,
				Chance:   0.5,
				MinLevel: 2,
			},
		},
		Levels: Levels{
			Length:            3000,
			Count:             3,
			MeasuringDistance: 60,
			MeasuringPoints:   5,
		},
		Input: Input{
			KeyHoldInitialMS: 500,
			KeyHoldRepeatMS:  150,
		},
		Audio: Audio{
			Enabled:      false,
			MasterVolume: 0.5,
			Music:        true,
			SampleRate:   44100,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultDroneYAML
}
