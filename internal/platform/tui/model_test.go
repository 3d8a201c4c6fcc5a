package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dronemania/internal/config"
	"github.com/vovakirdan/dronemania/internal/core"
	"github.com/vovakirdan/dronemania/internal/games/dronemania"
	"github.com/vovakirdan/dronemania/internal/highscore"
	"github.com/vovakirdan/dronemania/internal/storage"
)

type recordingPlayer struct {
	events      []core.Event
	propellers  [][2]bool
	musicPaused []bool
}

func (p *recordingPlayer) HandleEvent(e core.Event) { p.events = append(p.events, e) }
func (p *recordingPlayer) SetPropellers(left, right bool) {
	p.propellers = append(p.propellers, [2]bool{left, right})
}
func (p *recordingPlayer) SetMusicPaused(paused bool) {
	p.musicPaused = append(p.musicPaused, paused)
}
func (p *recordingPlayer) Close() {}

type recordingPublisher struct {
	frames []any
}

func (p *recordingPublisher) Publish(v any) { p.frames = append(p.frames, v) }

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time { return c.now }

type harness struct {
	model  Model
	game   *dronemania.Game
	sound  *recordingPlayer
	pub    *recordingPublisher
	clock  *testClock
	scores *storage.Store
}

func newHarness(t *testing.T, withStore bool) *harness {
	t.Helper()

	h := &harness{
		game:  dronemania.NewWithConfig(dronemania.ModeLevels, config.DefaultDroneConfig()),
		sound: &recordingPlayer{},
		pub:   &recordingPublisher{},
		clock: &testClock{now: time.Unix(1000, 0)},
	}

	opts := Options{
		HighScores: highscore.NewMemory(0),
		Sound:      h.sound,
		Spectators: h.pub,
		Input:      config.Input{KeyHoldInitialMS: 500, KeyHoldRepeatMS: 150},
	}
	if withStore {
		store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
		if err != nil {
			t.Fatalf("open store: %v", err)
		}
		t.Cleanup(func() { store.Close() })
		h.scores = store
		opts.Store = store
	}

	cfg := core.RuntimeConfig{ScreenW: 64, ScreenH: 25, TickRate: 60, Seed: 42}
	h.model = NewModel(h.game, cfg, opts)
	h.model.clock = h.clock.Now
	h.model.Init()
	return h
}

func (h *harness) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := h.model.Update(msg)
	m, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	h.model = m
	return cmd
}

func (h *harness) tick(t *testing.T) {
	t.Helper()
	h.send(t, TickMsg{Time: h.clock.now, Loop: h.model.loop})
}

func (h *harness) start(t *testing.T) {
	t.Helper()
	h.send(t, tea.KeyMsg{Type: tea.KeyEnter})
	h.tick(t)
	if got := h.game.Current().Status; got != dronemania.StatusPlaying {
		t.Fatalf("status after enter = %v, want playing", got)
	}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestEnterStartsGameAndEmitsEvent(t *testing.T) {
	h := newHarness(t, false)
	h.start(t)

	if len(h.sound.events) != 1 || h.sound.events[0] != core.EventGameStarted {
		t.Errorf("sound events = %v, want [game_started]", h.sound.events)
	}
	if len(h.pub.frames) != 1 {
		t.Fatalf("published %d frames, want 1", len(h.pub.frames))
	}
	if _, ok := h.pub.frames[0].(dronemania.Snapshot); !ok {
		t.Errorf("published %T, want dronemania.Snapshot", h.pub.frames[0])
	}
}

func TestKeyHoldDrivesControls(t *testing.T) {
	h := newHarness(t, false)
	h.start(t)

	h.send(t, tea.KeyMsg{Type: tea.KeyLeft})
	h.tick(t)
	if !h.game.Controls().Left() {
		t.Fatal("left not held after key press")
	}
	last := h.sound.propellers[len(h.sound.propellers)-1]
	if last != [2]bool{true, false} {
		t.Errorf("propellers = %v, want left only", last)
	}

	h.clock.now = h.clock.now.Add(600 * time.Millisecond)
	h.tick(t)
	if h.game.Controls().Left() {
		t.Error("left still held after hold window")
	}
}

func TestCutReleasesBoth(t *testing.T) {
	h := newHarness(t, false)
	h.start(t)

	h.send(t, tea.KeyMsg{Type: tea.KeyLeft})
	h.send(t, tea.KeyMsg{Type: tea.KeyRight})
	h.send(t, tea.KeyMsg{Type: tea.KeySpace})
	h.tick(t)

	c := h.game.Controls()
	if c.Left() || c.Right() {
		t.Errorf("flags = %v %v after cut", c.Left(), c.Right())
	}
}

func TestMouseHalves(t *testing.T) {
	h := newHarness(t, false)
	h.start(t)

	h.send(t, tea.MouseMsg{X: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.tick(t)
	if l, r := h.game.Controls().Effective(); !l || r {
		t.Errorf("left-half press: effective = %v %v", l, r)
	}

	h.send(t, tea.MouseMsg{X: 10, Action: tea.MouseActionRelease})
	h.send(t, tea.MouseMsg{X: 50, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.tick(t)
	if l, r := h.game.Controls().Effective(); l || !r {
		t.Errorf("right-half press: effective = %v %v", l, r)
	}

	h.send(t, tea.MouseMsg{X: 50, Action: tea.MouseActionRelease})
	h.tick(t)
	if h.game.Controls().Left() || h.game.Controls().Right() {
		t.Error("release did not clear both")
	}
}

func TestBlurReleases(t *testing.T) {
	h := newHarness(t, false)
	h.start(t)

	h.send(t, tea.MouseMsg{X: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.send(t, tea.BlurMsg{})
	h.tick(t)
	if h.game.Controls().Left() {
		t.Error("focus loss did not release")
	}
}

func TestPauseStopsSteps(t *testing.T) {
	h := newHarness(t, false)
	h.start(t)
	h.tick(t)

	h.send(t, runeKey("p"))
	if !h.model.Paused() {
		t.Fatal("not paused")
	}
	before := h.game.Current()
	frames := len(h.pub.frames)
	for range 10 {
		h.tick(t)
	}
	after := h.game.Current()
	if after.ScrollOffset != before.ScrollOffset || after.DroneY != before.DroneY {
		t.Error("simulation advanced while paused")
	}
	if len(h.pub.frames) != frames {
		t.Error("published while paused")
	}
	if last := h.sound.musicPaused[len(h.sound.musicPaused)-1]; !last {
		t.Error("music not paused")
	}

	h.send(t, runeKey("p"))
	if last := h.sound.musicPaused[len(h.sound.musicPaused)-1]; last {
		t.Error("music not resumed")
	}
	h.tick(t)
	if h.game.Current().ScrollOffset <= before.ScrollOffset {
		t.Error("simulation did not resume")
	}
}

func TestResizeKeepsGame(t *testing.T) {
	h := newHarness(t, false)
	h.start(t)
	for range 5 {
		h.tick(t)
	}
	scroll := h.game.Current().ScrollOffset

	h.send(t, tea.WindowSizeMsg{Width: 100, Height: 40})

	if h.game.Current().Status != dronemania.StatusPlaying {
		t.Error("resize changed status")
	}
	if h.game.Current().ScrollOffset != scroll {
		t.Error("resize reset the run")
	}
	if h.model.screen.Width() != 100 || h.model.screen.Height() != 40 {
		t.Errorf("screen = %dx%d", h.model.screen.Width(), h.model.screen.Height())
	}
}

func TestStaleTickIgnored(t *testing.T) {
	h := newHarness(t, false)
	h.start(t)

	scroll := h.game.Current().ScrollOffset
	cmd := h.send(t, TickMsg{Time: h.clock.now, Loop: h.model.loop + 1000})
	if cmd != nil {
		t.Error("stale tick scheduled another tick")
	}
	if h.game.Current().ScrollOffset != scroll {
		t.Error("stale tick advanced the game")
	}
}

func TestBackOnlyOutsidePlay(t *testing.T) {
	h := newHarness(t, false)
	h.start(t)

	cmd := h.send(t, tea.KeyMsg{Type: tea.KeyEsc})
	if h.model.BackToMenu() || isQuit(cmd) {
		t.Fatal("back accepted while playing")
	}

	h.send(t, runeKey("p"))
	cmd = h.send(t, tea.KeyMsg{Type: tea.KeyEsc})
	if !h.model.BackToMenu() {
		t.Error("back not accepted while paused")
	}
	if !isQuit(cmd) {
		t.Error("standalone model did not quit on back")
	}
	if last := h.sound.musicPaused[len(h.sound.musicPaused)-1]; !last {
		t.Error("music still playing after leaving the game")
	}
}

func TestEmbeddedBackDoesNotQuit(t *testing.T) {
	h := newHarness(t, false)
	h.model.embedded = true

	cmd := h.send(t, tea.KeyMsg{Type: tea.KeyEsc})
	if !h.model.BackToMenu() {
		t.Error("back not accepted in ready state")
	}
	if isQuit(cmd) {
		t.Error("embedded model quit on back")
	}
}

func TestQuitKey(t *testing.T) {
	h := newHarness(t, false)
	cmd := h.send(t, runeKey("q"))
	if !h.model.IsQuitting() || !isQuit(cmd) {
		t.Error("q did not quit")
	}
	if h.model.View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestRecordRunOncePerGameOver(t *testing.T) {
	h := newHarness(t, true)

	h.model.gameState = core.GameState{GameOver: true, Score: 40, Level: 2}
	h.model.recordRun()
	h.model.recordRun()

	entries, err := h.scores.AllScores("dronemania")
	if err != nil {
		t.Fatalf("AllScores: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("recorded %d runs, want 1", len(entries))
	}
	if entries[0].Score != 40 || entries[0].Level != 2 {
		t.Errorf("entry = %+v", entries[0])
	}

	// A new run re-arms recording.
	h.model.gameState = core.GameState{Playing: true}
	h.model.recordRun()
	h.model.gameState = core.GameState{GameOver: true, Score: 10, Level: 1}
	h.model.recordRun()
	if entries, _ := h.scores.AllScores("dronemania"); len(entries) != 2 {
		t.Errorf("recorded %d runs, want 2", len(entries))
	}
}

func TestRecordRunSkipsZeroScore(t *testing.T) {
	h := newHarness(t, true)

	h.model.gameState = core.GameState{GameOver: true}
	h.model.recordRun()

	if entries, _ := h.scores.AllScores("dronemania"); len(entries) != 0 {
		t.Errorf("recorded %d runs, want 0", len(entries))
	}
}

func TestViewShowsPause(t *testing.T) {
	h := newHarness(t, false)
	h.start(t)
	h.send(t, runeKey("p"))

	h.model.View()
	found := false
	for y := range h.model.screen.Height() {
		if strings.Contains(h.model.screen.Row(y), "PAUSED") {
			found = true
		}
	}
	if !found {
		t.Error("pause overlay not drawn")
	}
}
