// Package config provides YAML-based configuration loading for the
// Dronemania simulation and its terminal host.
package config

// DroneConfig contains all tunables for the game. Distances are in world
// units on a 640x480 playfield; rates are per simulation step.
type DroneConfig struct {
	World     World     `yaml:"world"`
	Drone     Drone     `yaml:"drone"`
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Levels    Levels    `yaml:"levels"`
	Input     Input     `yaml:"input"`
	Audio     Audio     `yaml:"audio"`
}

// World defines the playfield dimensions.
type World struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// GroundY returns the y coordinate of the ground line.
func (w World) GroundY() float64 {
	return w.Height - w.GroundHeight
}

// CenterY returns the vertical middle of the playfield, where the drone starts.
func (w World) CenterY() float64 {
	return w.Height / 2
}

// Drone defines the drone sprite and its hitbox.
type Drone struct {
	StartX      float64 `yaml:"start_x"`
	Size        float64 `yaml:"size"`
	HitboxInset float64 `yaml:"hitbox_inset"` // trimmed from each side of the sprite
}

// Physics defines the per-step integrator constants.
type Physics struct {
	Gravity       float64 `yaml:"gravity"`
	LiftForce     float64 `yaml:"lift_force"`
	LiftFactor    float64 `yaml:"lift_factor"`
	MaxVelocity   float64 `yaml:"max_velocity"`
	RotationSpeed float64 `yaml:"rotation_speed"` // degrees per step
	MaxRotation   float64 `yaml:"max_rotation"`   // degrees
	BaseSpeed     float64 `yaml:"base_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
}

// Obstacles defines spawn cadence and obstacle size ranges.
type Obstacles struct {
	SpawnDistance float64      `yaml:"spawn_distance"`
	SpawnLead     float64      `yaml:"spawn_lead"`   // chimney offset past the right edge
	PruneMargin   float64      `yaml:"prune_margin"` // distance behind the left edge before removal
	Chimney       SizeRange    `yaml:"chimney"`
	Flare         FlareOptions `yaml:"flare"`
}

// SizeRange is a half-open [min, max) range for width and height.
type SizeRange struct {
	MinWidth  float64 `yaml:"min_width"`
	MaxWidth  float64 `yaml:"max_width"`
	MinHeight float64 `yaml:"min_height"`
	MaxHeight float64 `yaml:"max_height"`
}

// FlareOptions defines the optional second obstacle of a spawn batch.
type FlareOptions struct {
	SizeRange `yaml:",inline"`
	MinLead   float64 `yaml:"min_lead"`
	MaxLead   float64 `yaml:"max_lead"`
	Chance    float64 `yaml:"chance"`
	MinLevel  int     `yaml:"min_level"`
}

// Levels defines level length and the measuring bonus.
type Levels struct {
	Length            float64 `yaml:"length"`
	Count             int     `yaml:"count"`
	MeasuringDistance float64 `yaml:"measuring_distance"`
	MeasuringPoints   int     `yaml:"measuring_points"`
}

// Input defines how long a key press keeps a propeller running.
// Terminals report key repeats but no key release.
type Input struct {
	KeyHoldInitialMS int `yaml:"key_hold_initial_ms"`
	KeyHoldRepeatMS  int `yaml:"key_hold_repeat_ms"`
}

// Audio defines the synthesized sound output.
type Audio struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0.0 - 1.0
	Music        bool    `yaml:"music"`
	SampleRate   int     `yaml:"sample_rate"`
}
