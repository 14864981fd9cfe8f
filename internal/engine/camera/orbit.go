// Package camera provides the orbit viewpoint and view/projection derivation
// shared by the camera and the light.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ThetaEpsilon replaces a non-positive polar angle so the view direction
// never becomes collinear with the +Y up vector.
const ThetaEpsilon float32 = 0.0001

// TwoPi is a full turn in radians.
const TwoPi float32 = 2 * math32.Pi

// ZoomMode selects how vertical pointer motion maps to distance.
type ZoomMode int

const (
	// ZoomPullIn moves the viewpoint toward the target when the pointer
	// moves down the screen (positive dy).
	ZoomPullIn ZoomMode = iota
	// ZoomPushOut moves the viewpoint away from the target when the pointer
	// moves down the screen.
	ZoomPushOut
)

// String returns the config name of the mode.
func (m ZoomMode) String() string {
	if m == ZoomPushOut {
		return "push-out"
	}
	return "pull-in"
}

// ParseZoomMode converts a config name to a ZoomMode. Unknown names map to
// ZoomPullIn.
func ParseZoomMode(s string) ZoomMode {
	if s == "push-out" {
		return ZoomPushOut
	}
	return ZoomPullIn
}

// Orbit is a viewpoint parametrized by spherical coordinates around a
// fixed target. Y is up: theta is measured from +Y, phi around Y starting
// at +Z.
type Orbit struct {
	// Spherical coordinates
	Distance float32 // Radial distance from Target
	Theta    float32 // Polar angle, (0, π]
	Phi      float32 // Azimuth, [0, 2π)

	Target mgl32.Vec3
	Up     mgl32.Vec3

	// Constraints
	MinDistance float32

	// Sensitivity (radians per pixel, units per pixel)
	RotateSensitivity float32
	ZoomSensitivity   float32
	Zoom              ZoomMode
}

// NewOrbit creates an orbit around the origin with the given spherical
// coordinates and default tuning. The invariants are applied immediately.
func NewOrbit(distance, theta, phi float32) *Orbit {
	o := &Orbit{
		Distance:          distance,
		Theta:             theta,
		Phi:               phi,
		Up:                mgl32.Vec3{0, 1, 0},
		MinDistance:       10,
		RotateSensitivity: 0.15 / 180 * math32.Pi,
		ZoomSensitivity:   0.15,
		Zoom:              ZoomPullIn,
	}
	o.Normalize()
	return o
}

// Rotate applies a pointer delta to the angles: theta -= dy*s and
// phi -= dx*s. Dragging right swings the viewpoint to lower azimuth, so the
// scene appears to turn left around the target.
func (o *Orbit) Rotate(dx, dy, sensitivity float32) {
	o.Theta -= dy * sensitivity
	o.Phi -= dx * sensitivity
	o.Normalize()
}

// Dolly applies a vertical pointer delta to the distance according to the
// orbit's ZoomMode, then pins the distance at MinDistance.
func (o *Orbit) Dolly(dy, sensitivity float32) {
	switch o.Zoom {
	case ZoomPushOut:
		o.Distance += dy * sensitivity
	default:
		o.Distance -= dy * sensitivity
	}
	o.clampDistance()
}

// HandleDrag rotates using the orbit's own sensitivity.
func (o *Orbit) HandleDrag(dx, dy float32) {
	o.Rotate(dx, dy, o.RotateSensitivity)
}

// HandleZoom dollies using the orbit's own sensitivity.
func (o *Orbit) HandleZoom(dy float32) {
	o.Dolly(dy, o.ZoomSensitivity)
}

// Normalize enforces theta in (0, π], phi in [0, 2π) and
// distance >= MinDistance.
func (o *Orbit) Normalize() {
	o.Theta = ClampTheta(o.Theta)
	o.Phi = WrapPhi(o.Phi)
	o.clampDistance()
}

func (o *Orbit) clampDistance() {
	if o.Distance < o.MinDistance {
		o.Distance = o.MinDistance
	}
}

// ClampTheta limits a polar angle to (0, π].
func ClampTheta(theta float32) float32 {
	if theta <= 0 {
		return ThetaEpsilon
	}
	if theta > math32.Pi {
		return math32.Pi
	}
	return theta
}

// WrapPhi reduces an azimuth into [0, 2π).
func WrapPhi(phi float32) float32 {
	phi = math32.Mod(phi, TwoPi)
	if phi < 0 {
		phi += TwoPi
	}
	// Rounding in the addition above can land exactly on 2π.
	if phi >= TwoPi {
		phi = 0
	}
	return phi
}

// Spherical returns the unit vector for the given angles.
func Spherical(theta, phi float32) mgl32.Vec3 {
	st := math32.Sin(theta)
	return mgl32.Vec3{
		st * math32.Sin(phi),
		math32.Cos(theta),
		st * math32.Cos(phi),
	}
}

// Position returns the viewpoint in world space.
func (o *Orbit) Position() mgl32.Vec3 {
	return o.Target.Add(Spherical(o.Theta, o.Phi).Mul(o.Distance))
}

// Direction returns the unit vector from the viewpoint toward the target.
func (o *Orbit) Direction() mgl32.Vec3 {
	return Spherical(o.Theta, o.Phi).Mul(-1)
}

// View returns the look-at result for this orbit.
func (o *Orbit) View() (View, error) {
	return LookAt(o.Position(), o.Target, o.Up)
}
