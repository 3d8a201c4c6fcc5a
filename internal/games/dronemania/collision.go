package dronemania

import (
	"math"

	"github.com/vovakirdan/dronemania/internal/config"
	"github.com/vovakirdan/dronemania/internal/core"
)

// Detector runs the collision and measuring checks. All coordinates are
// viewport space for the drone and world space for obstacles.
type Detector struct {
	World             config.World
	Drone             config.Drone
	MeasuringDistance float64
}

// NewDetector builds a detector from the game configuration.
func NewDetector(cfg config.DroneConfig) Detector {
	return Detector{
		World:             cfg.World,
		Drone:             cfg.Drone,
		MeasuringDistance: cfg.Levels.MeasuringDistance,
	}
}

// Hitbox returns the drone's collision box: the sprite narrowed by the
// inset on both sides and cut to half its height.
func (d Detector) Hitbox(droneX, droneY float64) core.Rect {
	half := d.Drone.Size / 2
	quarter := d.Drone.Size / 4
	return core.RectFromEdges(
		droneX-half+d.Drone.HitboxInset,
		droneY-quarter,
		droneX+half-d.Drone.HitboxInset,
		droneY+quarter,
	)
}

// CheckCollision reports whether the drone touches the ground, the
// ceiling or any obstacle. Touching edges do not collide.
func (d Detector) CheckCollision(droneX, droneY float64, obstacles []Obstacle, scrollOffset float64) bool {
	half := d.Drone.Size / 2
	if droneY+half > d.World.GroundY() {
		return true
	}
	if droneY-half < 0 {
		return true
	}

	box := d.Hitbox(droneX, droneY)
	for _, o := range obstacles {
		if box.Intersects(o.ViewportRect(scrollOffset)) {
			return true
		}
	}
	return false
}

// CheckMeasuring reports whether the drone hovers above a chimney cap,
// horizontally within one chimney width of its center and vertically
// closer than the measuring distance.
func (d Detector) CheckMeasuring(droneX, droneY float64, obstacles []Obstacle, scrollOffset float64) bool {
	for _, o := range obstacles {
		if o.Kind != KindChimney {
			continue
		}
		distX := math.Abs(droneX - o.ViewportRect(scrollOffset).CenterX())
		distY := o.Y - droneY
		if distX < o.Width && distY > 0 && distY < d.MeasuringDistance {
			return true
		}
	}
	return false
}
