package core

// RuntimeConfig is passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState summarizes a game for the platform after each step.
type GameState struct {
	Score         int
	HighScore     int
	Level         int
	Playing       bool
	LevelComplete bool
	GameOver      bool
}

// Event is something notable that happened during a step.
type Event int

const (
	EventNone Event = iota
	EventGameStarted
	EventLevelStarted
	EventLevelComplete
	EventLevelUp
	EventGameOver
	EventNewHighScore
	EventMeasuringStarted
	EventMeasuringStopped
)

// String returns a human-readable event name.
func (e Event) String() string {
	switch e {
	case EventGameStarted:
		return "game_started"
	case EventLevelStarted:
		return "level_started"
	case EventLevelComplete:
		return "level_complete"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	case EventNewHighScore:
		return "new_high_score"
	case EventMeasuringStarted:
		return "measuring_started"
	case EventMeasuringStopped:
		return "measuring_stopped"
	default:
		return "none"
	}
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the step produced the given event.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
