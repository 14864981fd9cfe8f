package session

import "github.com/go-gl/mathgl/mgl32"

// Pose is the scene object's transform, driven by alt-drags: primary
// drags tilt it about X and Y, secondary drags slide it along Z.
type Pose struct {
	RotX, RotY float32
	Depth      float32

	RotateSensitivity float32 // Radians per pixel
	ZoomSensitivity   float32 // Units per pixel
}

// DefaultPose returns an identity pose with the object-demo tuning.
func DefaultPose() Pose {
	return Pose{RotateSensitivity: 0.02, ZoomSensitivity: 0.15}
}

// HandleDrag tilts the object. Downward motion rotates about +X, rightward
// motion about +Y.
func (p *Pose) HandleDrag(dx, dy float32) {
	p.RotX += dy * p.RotateSensitivity
	p.RotY += dx * p.RotateSensitivity
}

// HandleZoom slides the object toward the viewer on downward motion.
func (p *Pose) HandleZoom(dy float32) {
	p.Depth += dy * p.ZoomSensitivity
}

// Matrix returns T(0, 0, depth) * Ry * Rx.
func (p Pose) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, p.Depth).
		Mul4(mgl32.HomogRotate3DY(p.RotY)).
		Mul4(mgl32.HomogRotate3DX(p.RotX))
}
