// Package dronemania implements the Dronemania simulation: a drone steered
// by two mutually exclusive propellers flies over a scrolling industrial
// landscape, dodging chimneys and flares and scoring while it measures
// chimney emissions from just above their caps.
package dronemania

import (
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dronemania/internal/config"
	"github.com/vovakirdan/dronemania/internal/control"
	"github.com/vovakirdan/dronemania/internal/core"
	"github.com/vovakirdan/dronemania/internal/highscore"
	"github.com/vovakirdan/dronemania/internal/logging"
	"github.com/vovakirdan/dronemania/internal/registry"
)

// Mode selects how level completion is handled.
type Mode int

const (
	ModeLevels  Mode = iota // pause between levels, wait for confirmation
	ModeEndless             // advance levels in flight
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game is the simulation controller. It owns the authoritative state and
// is the only writer of it and of the high score.
type Game struct {
	mode        Mode
	cfg         config.DroneConfig
	fixedConfig bool
	runtime     core.RuntimeConfig

	state            State
	levelStartOffset float64
	lastSpawnOffset  float64

	gen      *Generator
	detector Detector
	controls control.State

	highScores highscore.Store
	highScore  int
	logger     *log.Logger

	events []core.Event
}

// New creates a game in level mode.
func New() *Game {
	return newGame(ModeLevels)
}

// NewEndless creates a game in endless mode.
func NewEndless() *Game {
	return newGame(ModeEndless)
}

// NewWithConfig creates a game that uses cfg instead of loading
// configuration files on Reset.
func NewWithConfig(mode Mode, cfg config.DroneConfig) *Game {
	g := newGame(mode)
	g.cfg = cfg
	g.fixedConfig = true
	return g
}

func newGame(mode Mode) *Game {
	return &Game{
		mode:       mode,
		cfg:        config.DefaultDroneConfig(),
		highScores: highscore.NewMemory(0),
		logger:     logging.Discard(),
	}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "dronemania_endless"
	}
	return "dronemania"
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Dronemania (Endless)"
	}
	return "Dronemania"
}

// Bind attaches the high score store and logger.
func (g *Game) Bind(s registry.Services) {
	if s.HighScores != nil {
		g.highScores = s.HighScores
	}
	if s.Logger != nil {
		g.logger = s.Logger.WithPrefix(g.ID())
	}
}

// Reset loads configuration, reseeds the obstacle generator and puts the
// game into the ready state. Obstacle ids keep counting.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt

	if !g.fixedConfig {
		cfg, err := config.LoadDrone(configPath)
		if err != nil {
			g.logger.Warn("using default config", "error", err)
			cfg = config.DefaultDroneConfig()
		}
		g.cfg = cfg
	}
	g.detector = NewDetector(g.cfg)

	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := NewRandomSource(seed)
	if g.gen == nil {
		g.gen = NewGenerator(rng, g.cfg.World, g.cfg.Obstacles)
	} else {
		g.gen.Reconfigure(rng, g.cfg.World, g.cfg.Obstacles)
	}

	g.controls.Release()
	g.highScore = g.highScores.Load()
	g.state = g.freshState(StatusReady)
	g.levelStartOffset = 0
	g.lastSpawnOffset = 0
	g.events = nil
}

// SetRandomSource replaces the generator's random source.
func (g *Game) SetRandomSource(rng RandomSource) {
	if g.gen == nil {
		g.gen = NewGenerator(rng, g.cfg.World, g.cfg.Obstacles)
		return
	}
	g.gen.rng = rng
}

func (g *Game) freshState(status Status) State {
	return State{
		DroneX: g.cfg.Drone.StartX,
		DroneY: g.cfg.World.CenterY(),
		Level:  1,
		Status: status,
	}
}

// StartGame begins a new run at level 1 with score 0.
func (g *Game) StartGame() {
	g.state = g.freshState(StatusPlaying)
	g.levelStartOffset = 0
	g.lastSpawnOffset = 0
	g.emit(core.EventGameStarted)
	g.logger.Debug("game started")
}

// RestartGame is StartGame, callable from any status.
func (g *Game) RestartGame() {
	g.StartGame()
}

// StartNextLevel continues from LevelComplete into the next level. Score
// and scroll distance carry over; the drone, obstacles, progress and
// spawn tracker are reset. Returns false and does nothing in any other
// status.
func (g *Game) StartNextLevel() bool {
	if g.state.Status != StatusLevelComplete {
		return false
	}

	next := g.state
	next.DroneX = g.cfg.Drone.StartX
	next.DroneY = g.cfg.World.CenterY()
	next.DroneVelocityY = 0
	next.DroneRotation = 0
	next.Obstacles = nil
	next.Level++
	next.LevelProgress = 0
	next.IsMeasuring = false
	next.Status = StatusPlaying

	g.lastSpawnOffset = 0
	g.state = next
	g.emit(core.EventLevelStarted)
	g.logger.Debug("level started", "level", next.Level, "score", next.Score)
	return true
}

// Step handles one scheduler tick. One-shot actions are applied first;
// the simulation advances only while playing.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch {
	case in.Has(core.ActionRestart):
		g.RestartGame()
	case in.Has(core.ActionConfirm) && g.state.Status != StatusPlaying:
		if g.state.Status == StatusLevelComplete {
			g.StartNextLevel()
		} else {
			g.StartGame()
		}
	default:
		g.Tick()
	}

	events := g.events
	g.events = nil
	return core.StepResult{State: g.State(), Events: events}
}

// Tick runs one frame of the simulation. It is a no-op unless playing.
func (g *Game) Tick() {
	if g.state.Status != StatusPlaying {
		return
	}

	prev := g.state
	next := prev
	cfg := g.cfg

	left, right := g.controls.Effective()
	k, speed := Integrate(prev.Kinematics(), left, right, cfg.Physics)
	scroll := prev.ScrollOffset + speed

	next.DroneY = k.Y
	next.DroneRotation = k.Rotation
	next.ScrollOffset = scroll

	progress := (scroll - g.levelStartOffset) / cfg.Levels.Length * 100
	if progress >= 100 {
		switch {
		case g.mode == ModeLevels && prev.Level < cfg.Levels.Count:
			g.flushHighScore(prev.Score)
			g.levelStartOffset = scroll
			next.DroneVelocityY = k.VelocityY
			next.LevelProgress = 100
			next.Status = StatusLevelComplete
			g.state = next
			g.emit(core.EventLevelComplete)
			g.logger.Info("level complete", "level", prev.Level, "score", prev.Score)
			return
		case g.mode == ModeEndless:
			g.flushHighScore(prev.Score)
			g.levelStartOffset = scroll
			progress = 0
			if next.Level < cfg.Levels.Count {
				next.Level++
			}
			g.emit(core.EventLevelUp)
			g.logger.Info("level up", "level", next.Level, "score", prev.Score)
		}
	}

	obstacles := prev.Obstacles
	if scroll-g.lastSpawnOffset > cfg.Obstacles.SpawnDistance {
		batch := g.gen.Generate(scroll, next.Level)
		grown := make([]Obstacle, 0, len(obstacles)+len(batch))
		obstacles = append(append(grown, obstacles...), batch...)
		g.lastSpawnOffset = scroll
	}
	next.Obstacles = Prune(obstacles, scroll, cfg.Obstacles.PruneMargin)

	if g.detector.CheckCollision(prev.DroneX, next.DroneY, next.Obstacles, scroll) {
		g.flushHighScore(prev.Score)
		next.Status = StatusGameOver
		g.state = next
		g.emit(core.EventGameOver)
		g.logger.Info("game over", "level", next.Level, "score", next.Score, "high_score", g.highScore)
		return
	}

	measuring := g.detector.CheckMeasuring(prev.DroneX, next.DroneY, next.Obstacles, scroll)
	if measuring {
		next.Score += cfg.Levels.MeasuringPoints
	}
	if measuring != prev.IsMeasuring {
		if measuring {
			g.emit(core.EventMeasuringStarted)
		} else {
			g.emit(core.EventMeasuringStopped)
		}
	}
	next.IsMeasuring = measuring
	next.DroneVelocityY = k.VelocityY
	next.LevelProgress = math.Min(progress, 100)
	g.state = next
}

// flushHighScore persists score when it beats the persisted high score.
// The store is re-read first since other sessions may share it.
func (g *Game) flushHighScore(score int) {
	g.highScore = max(g.highScore, g.highScores.Load())
	if score <= g.highScore {
		return
	}
	g.highScore = score
	g.highScores.Save(score)
	g.emit(core.EventNewHighScore)
	g.logger.Debug("new high score", "score", score)
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// Controls returns the actuator flags for input capture.
func (g *Game) Controls() *control.State {
	return &g.controls
}

// Current returns a copy of the full simulation state.
func (g *Game) Current() State {
	return g.state.Clone()
}

// HighScore returns the best score known to this game.
func (g *Game) HighScore() int {
	return g.highScore
}

// Mode returns the level-handling mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Config returns the active configuration.
func (g *Game) Config() config.DroneConfig {
	return g.cfg
}

// IsNewHighScore reports whether the finished run set the high score.
func (g *Game) IsNewHighScore() bool {
	return g.state.Score > 0 && g.state.Score >= g.highScore
}

// State returns the summary state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:         g.state.Score,
		HighScore:     g.highScore,
		Level:         g.state.Level,
		Playing:       g.state.Status == StatusPlaying,
		LevelComplete: g.state.Status == StatusLevelComplete,
		GameOver:      g.state.Status == StatusGameOver,
	}
}

// Register both modes with the registry
func init() {
	registry.Register("dronemania", func() registry.Game {
		return New()
	})
	registry.Register("dronemania_endless", func() registry.Game {
		return NewEndless()
	})
}
