package dronemania

import (
	"math"

	"github.com/vovakirdan/dronemania/internal/config"
	"github.com/vovakirdan/dronemania/internal/core"
)

// Kinematics is the vertical motion state of the drone.
type Kinematics struct {
	Y         float64
	VelocityY float64
	Rotation  float64 // degrees, positive tilts forward
}

// Integrate advances k by one fixed step and returns the new kinematics
// with the horizontal scroll speed for that step. left and right are the
// effective flags; if both are set the drone falls as if neither were.
func Integrate(k Kinematics, left, right bool, p config.Physics) (Kinematics, float64) {
	if left && right {
		left, right = false, false
	}

	lift := p.Gravity
	target := 0.0
	switch {
	case left:
		lift = -p.LiftForce * p.LiftFactor
		target = p.MaxRotation
	case right:
		lift = -p.LiftForce * p.LiftFactor
		target = -p.MaxRotation
	}

	v := core.ClampF(k.VelocityY+lift, -p.MaxVelocity, p.MaxVelocity)
	next := Kinematics{
		Y:         k.Y + v,
		VelocityY: v,
		Rotation:  core.Approach(k.Rotation, target, p.RotationSpeed),
	}
	return next, ScrollSpeed(next.Rotation, p)
}

// ScrollSpeed maps pitch to forward speed: full back tilt gives
// BaseSpeed, level flight the midpoint, full forward tilt MaxSpeed.
func ScrollSpeed(rotation float64, p config.Physics) float64 {
	pitch := rotation / p.MaxRotation
	return math.Max(0, p.BaseSpeed+(pitch+1)*(p.MaxSpeed-p.BaseSpeed)/2)
}
