package dronemania

import (
	"testing"

	"github.com/vovakirdan/dronemania/internal/config"
)

func testDetector() Detector {
	return NewDetector(config.DefaultDroneConfig())
}

func TestCheckCollisionBounds(t *testing.T) {
	d := testDetector()

	tests := []struct {
		name string
		y    float64
		want bool
	}{
		{"middle", 240, false},
		{"ground exact boundary", 408, false},
		{"ground breached", 408.001, true},
		{"ceiling exact boundary", 24, false},
		{"ceiling breached", 23.999, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.CheckCollision(150, tc.y, nil, 0); got != tc.want {
				t.Errorf("CheckCollision(y=%v) = %v, expected %v", tc.y, got, tc.want)
			}
		})
	}
}

func TestCheckCollisionObstacles(t *testing.T) {
	d := testDetector()

	// Drone at x=30 has hitbox x [16, 44], y [188, 212] at y=200.
	tests := []struct {
		name     string
		obstacle Obstacle
		scroll   float64
		want     bool
	}{
		{
			name:     "overlapping chimney",
			obstacle: Obstacle{X: 0, Y: 150, Width: 60, Height: 200, Kind: KindChimney},
			want:     true,
		},
		{
			name:     "overlap after scroll translation",
			obstacle: Obstacle{X: 1000, Y: 150, Width: 60, Height: 200, Kind: KindChimney},
			scroll:   1000,
			want:     true,
		},
		{
			// The hitbox is a quarter of the sprite tall, so a chimney
			// ending 38 units above the drone center misses it.
			name:     "chimney above the hitbox",
			obstacle: Obstacle{X: 0, Y: 50, Width: 60, Height: 100, Kind: KindChimney},
			want:     false,
		},
		{
			name:     "chimney below the hitbox",
			obstacle: Obstacle{X: 0, Y: 213, Width: 60, Height: 100, Kind: KindChimney},
			want:     false,
		},
		{
			name:     "touching bottom edge",
			obstacle: Obstacle{X: 0, Y: 212, Width: 60, Height: 100, Kind: KindChimney},
			want:     false,
		},
		{
			name:     "touching right edge",
			obstacle: Obstacle{X: 44, Y: 150, Width: 60, Height: 200, Kind: KindFlare},
			want:     false,
		},
		{
			name:     "inset ignores sprite corner",
			obstacle: Obstacle{X: 45, Y: 150, Width: 60, Height: 200, Kind: KindFlare},
			want:     false,
		},
		{
			name:     "flare overlapping",
			obstacle: Obstacle{X: 43.5, Y: 205, Width: 40, Height: 80, Kind: KindFlare},
			want:     true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := d.CheckCollision(30, 200, []Obstacle{tc.obstacle}, tc.scroll)
			if got != tc.want {
				t.Errorf("CheckCollision() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestHitbox(t *testing.T) {
	r := testDetector().Hitbox(150, 240)
	if r.X != 136 || r.Right() != 164 || r.Y != 228 || r.Bottom() != 252 {
		t.Errorf("Hitbox(150, 240) = %+v", r)
	}
}

func TestCheckMeasuring(t *testing.T) {
	d := testDetector()
	// Chimney centered under the drone at x=150, 60 wide
	chimney := func(top float64) Obstacle {
		return Obstacle{X: 120, Y: top, Width: 60, Height: 432 - top, Kind: KindChimney}
	}

	tests := []struct {
		name      string
		droneX    float64
		droneY    float64
		obstacles []Obstacle
		want      bool
	}{
		{"50 above cap", 150, 100, []Obstacle{chimney(150)}, true},
		{"70 above cap", 150, 80, []Obstacle{chimney(150)}, false},
		{"exactly at distance", 150, 90, []Obstacle{chimney(150)}, false},
		{"level with cap", 150, 150, []Obstacle{chimney(150)}, false},
		{"below cap", 150, 160, []Obstacle{chimney(150)}, false},
		{"offset within width", 209, 100, []Obstacle{chimney(150)}, true},
		{"offset beyond width", 210, 100, []Obstacle{chimney(150)}, false},
		{"flares never measure", 150, 100, []Obstacle{{X: 120, Y: 150, Width: 60, Height: 282, Kind: KindFlare}}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.CheckMeasuring(tc.droneX, tc.droneY, tc.obstacles, 0); got != tc.want {
				t.Errorf("CheckMeasuring() = %v, expected %v", got, tc.want)
			}
		})
	}
}
