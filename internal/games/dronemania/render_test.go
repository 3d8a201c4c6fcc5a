package dronemania

import (
	"strings"
	"testing"

	"github.com/vovakirdan/dronemania/internal/core"
)

func TestRenderReadyOverlay(t *testing.T) {
	g, _ := newTestGame(t, ModeLevels, 0)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"DRONEMANIA", "ENTER to start", "SCORE 0", "LVL 1/3"} {
		if !strings.Contains(out, want) {
			t.Errorf("ready screen missing %q:\n%s", want, out)
		}
	}
}

func TestRenderGameOverNewHighScore(t *testing.T) {
	g, _ := newTestGame(t, ModeLevels, 80)
	g.StartGame()
	g.state.Score = 120
	g.state.DroneY = 420
	g.Tick()

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "NEW HIGH SCORE!") {
		t.Errorf("game over screen:\n%s", out)
	}
	if !strings.Contains(out, "HI 120") {
		t.Errorf("HUD should show the new high score:\n%s", out)
	}
}

func TestRenderGameOverWithoutRecord(t *testing.T) {
	g, _ := newTestGame(t, ModeLevels, 500)
	g.StartGame()
	g.state.Score = 120
	g.state.DroneY = 420
	g.Tick()

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if strings.Contains(screen.String(), "NEW HIGH SCORE") {
		t.Error("no record was set")
	}
}

func TestRenderPlayfield(t *testing.T) {
	g, _ := newTestGame(t, ModeLevels, 0)
	g.StartGame()
	g.state.Obstacles = []Obstacle{{ID: 1, X: 400, Y: 232, Width: 64, Height: 200, Kind: KindChimney}}
	g.state.IsMeasuring = true
	g.state.LevelProgress = 50

	screen := core.NewScreen(64, 25)
	g.Render(screen)
	out := screen.String()

	// 64 columns over 640 world units: the chimney spans cells 40..46
	if screen.GetCell(42, 20).Rune != ChimneyChar {
		t.Errorf("expected chimney body at (42, 20), got %q", screen.Get(42, 20))
	}
	if screen.GetCell(42, 20).Color != core.ColorChimney {
		t.Error("chimney should use the chimney color")
	}
	if screen.Get(15, 13) != '■' {
		t.Errorf("expected drone body at (15, 13), got %q\n%s", screen.Get(15, 13), out)
	}
	if !strings.Contains(out, "MEASURING +5") {
		t.Errorf("HUD should flag measuring:\n%s", out)
	}
	if !strings.Contains(out, "[█████░░░░░]") {
		t.Errorf("HUD should show half progress:\n%s", out)
	}
	if screen.Get(0, 24) != GroundChar {
		t.Errorf("bottom row should be ground, got %q", screen.Get(0, 24))
	}
}

func TestRenderLevelComplete(t *testing.T) {
	g, _ := newTestGame(t, ModeLevels, 0)
	g.StartGame()
	g.state.ScrollOffset = 2999
	g.Tick()

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "LEVEL 1 COMPLETE") || !strings.Contains(out, "ENTER for level 2") {
		t.Errorf("level complete screen:\n%s", out)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g, _ := newTestGame(t, ModeLevels, 0)
	screen := core.NewScreen(20, 6)

	g.Render(screen)

	if !strings.Contains(screen.String(), "Terminal too small") {
		t.Errorf("expected size warning:\n%s", screen.String())
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{0, "[░░░░]"},
		{50, "[██░░]"},
		{100, "[████]"},
		{150, "[████]"},
	}
	for _, tc := range tests {
		if got := progressBar(tc.pct, 4); got != tc.want {
			t.Errorf("progressBar(%v) = %q, expected %q", tc.pct, got, tc.want)
		}
	}
}
