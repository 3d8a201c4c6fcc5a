package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dronemania/internal/audio"
	"github.com/vovakirdan/dronemania/internal/config"
	"github.com/vovakirdan/dronemania/internal/core"
	"github.com/vovakirdan/dronemania/internal/highscore"
	"github.com/vovakirdan/dronemania/internal/logging"
	"github.com/vovakirdan/dronemania/internal/registry"
	"github.com/vovakirdan/dronemania/internal/storage"
)

// SnapshotPublisher receives a read-only snapshot after every tick.
type SnapshotPublisher interface {
	Publish(v any)
}

// Options are the collaborators a Model drives. Zero values are safe:
// no run history, in-memory high score, no sound, no spectators.
type Options struct {
	Store      *storage.Store
	HighScores highscore.Store
	Sound      audio.Player
	Spectators SnapshotPublisher
	Logger     *log.Logger
	Input      config.Input

	// Embedded models run inside another program (the SSH session) and
	// leave quitting to their parent on "back".
	Embedded bool
}

// Model is the Bubble Tea model for running a game mode.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	sound      audio.Player
	spectators SnapshotPublisher
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	hold       *PropellerHold
	clock      func() time.Time
	loop       uint64
	embedded   bool
	paused     bool
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the run has been recorded for the current game over
}

// NewModel creates a new Bubble Tea model for the given game and binds
// the game's collaborators.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Sound == nil {
		opts.Sound = audio.Nop{}
	}
	if opts.HighScores == nil {
		if opts.Store != nil {
			opts.HighScores = highscore.NewKVStore(opts.Store, opts.Logger)
		} else {
			opts.HighScores = highscore.NewMemory(0)
		}
	}
	if opts.Input == (config.Input{}) {
		opts.Input = config.DefaultDroneConfig().Input
	}

	game.Bind(registry.Services{
		HighScores: opts.HighScores,
		Logger:     opts.Logger,
	})

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		sound:      opts.Sound,
		spectators: opts.Spectators,
		logger:     opts.Logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		hold:       NewPropellerHold(opts.Input),
		clock:      time.Now,
		loop:       nextLoopID(),
		embedded:   opts.Embedded,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.BlurMsg:
		m.hold.Release()
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		if !m.paused {
			m.hold.Press(action, m.clock())
		}
	case core.ActionCut:
		m.hold.Release()
	case core.ActionPause:
		m.togglePause()
	case core.ActionBack:
		if m.paused || !m.gameState.Playing {
			m.backToMenu = true
			m.sound.SetPropellers(false, false)
			m.sound.SetMusicPaused(true)
			if !m.embedded {
				return m, tea.Quit
			}
		}
	case core.ActionNone:
	default:
		if !m.paused {
			m.inputFrame.Set(action)
		}
	}

	return m, nil
}

// handleMouse latches the propeller for the half of the screen that was
// pressed. Any release clears both.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.paused {
			return m, nil
		}
		if msg.X < m.screen.Width()/2 {
			m.hold.Latch(core.ActionLeft)
		} else {
			m.hold.Latch(core.ActionRight)
		}
	case tea.MouseActionRelease:
		m.hold.Release()
	}
	return m, nil
}

func (m *Model) togglePause() {
	m.paused = !m.paused
	m.hold.Release()
	m.game.Controls().Release()
	m.sound.SetPropellers(false, false)
	m.sound.SetMusicPaused(m.paused || !m.gameState.Playing)
}

// handleTick runs one simulation step and fans the result out to the
// collaborators. While paused no step is dispatched.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.config.TickRate, m.loop)
	}

	m.hold.Apply(m.clock(), m.game.Controls())

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, e := range result.Events {
		m.sound.HandleEvent(e)
		m.logger.Debug("game event", "game", m.game.ID(), "event", e.String(),
			"score", m.gameState.Score, "level", m.gameState.Level)
	}
	m.sound.SetPropellers(m.game.Controls().Effective())

	if m.spectators != nil {
		m.spectators.Publish(m.game.Snapshot())
	}

	m.recordRun()

	return m, tickCmd(m.config.TickRate, m.loop)
}

// recordRun saves the finished run to the history table once per game over.
func (m *Model) recordRun() {
	if !m.gameState.GameOver {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Level); err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.paused {
		mid := m.screen.Height() / 2
		m.screen.DrawTextCentered(mid, " PAUSED ", core.ColorHighlight)
		m.screen.DrawTextCentered(mid+1, " P to resume, ESC for menu ", core.ColorDim)
	}

	return RenderScreen(m.screen)
}

// Paused reports whether the scheduler is paused.
func (m Model) Paused() bool {
	return m.paused
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for one game and blocks until the
// player leaves it. quit reports whether the player asked to exit the
// program rather than return to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (quit bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	final, err := p.Run()
	if err != nil {
		return true, err
	}
	if fm, ok := final.(Model); ok {
		return fm.IsQuitting(), nil
	}
	return true, nil
}
