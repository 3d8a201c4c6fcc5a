package dronemania

import "fmt"

// Status is the simulation lifecycle state.
type Status int

const (
	StatusReady Status = iota
	StatusPlaying
	StatusLevelComplete
	StatusGameOver
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusPlaying:
		return "playing"
	case StatusLevelComplete:
		return "level_complete"
	case StatusGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// State is the full simulation state. A new value is committed every
// frame; obstacle slices are never modified after commit.
type State struct {
	DroneX         float64
	DroneY         float64
	DroneVelocityY float64
	DroneRotation  float64
	ScrollOffset   float64
	Obstacles      []Obstacle // spawn order
	Score          int
	Level          int
	LevelProgress  float64 // percent, 0-100
	IsMeasuring    bool
	Status         Status
}

// Clone returns a copy that shares no memory with s.
func (s State) Clone() State {
	c := s
	if s.Obstacles != nil {
		c.Obstacles = make([]Obstacle, len(s.Obstacles))
		copy(c.Obstacles, s.Obstacles)
	}
	return c
}

// Kinematics returns the drone's vertical motion state.
func (s State) Kinematics() Kinematics {
	return Kinematics{Y: s.DroneY, VelocityY: s.DroneVelocityY, Rotation: s.DroneRotation}
}
