package dronemania

// Snapshot is the read-only view handed to renderers outside the game
// loop, such as the spectator feed. Obstacle positions are relative to
// the viewport.
type Snapshot struct {
	Mode          string             `json:"mode"`
	Status        Status             `json:"status"`
	Score         int                `json:"score"`
	HighScore     int                `json:"high_score"`
	Level         int                `json:"level"`
	LevelProgress float64            `json:"level_progress"`
	Measuring     bool               `json:"measuring"`
	ScrollOffset  float64            `json:"scroll_offset"`
	Drone         DroneSnapshot      `json:"drone"`
	Obstacles     []ObstacleSnapshot `json:"obstacles"`
}

// DroneSnapshot is the drone's position, attitude and active propellers.
type DroneSnapshot struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
	Left     bool    `json:"left"`
	Right    bool    `json:"right"`
}

// ObstacleSnapshot is an obstacle in viewport coordinates.
type ObstacleSnapshot struct {
	ID     uint64       `json:"id"`
	Kind   ObstacleKind `json:"kind"`
	X      float64      `json:"x"`
	Y      float64      `json:"y"`
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
}

// Snapshot returns a copy of the current state for another goroutine.
func (g *Game) Snapshot() any {
	return g.TakeSnapshot()
}

// TakeSnapshot is Snapshot with a concrete type.
func (g *Game) TakeSnapshot() Snapshot {
	s := g.state
	left, right := g.controls.Effective()

	obstacles := make([]ObstacleSnapshot, len(s.Obstacles))
	for i, o := range s.Obstacles {
		obstacles[i] = ObstacleSnapshot{
			ID:     o.ID,
			Kind:   o.Kind,
			X:      o.X - s.ScrollOffset,
			Y:      o.Y,
			Width:  o.Width,
			Height: o.Height,
		}
	}

	return Snapshot{
		Mode:          g.ID(),
		Status:        s.Status,
		Score:         s.Score,
		HighScore:     g.highScore,
		Level:         s.Level,
		LevelProgress: s.LevelProgress,
		Measuring:     s.IsMeasuring,
		ScrollOffset:  s.ScrollOffset,
		Drone: DroneSnapshot{
			X:        s.DroneX,
			Y:        s.DroneY,
			Rotation: s.DroneRotation,
			Left:     left && s.Status == StatusPlaying,
			Right:    right && s.Status == StatusPlaying,
		},
		Obstacles: obstacles,
	}
}
