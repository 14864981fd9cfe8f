package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ResizePolicy decides what happens to the field of view when the window
// height changes.
type ResizePolicy int

const (
	// ResizeFixedFOV keeps the field of view; objects scale with the window.
	ResizeFixedFOV ResizePolicy = iota
	// ResizePreserveSize adjusts the vertical field of view so objects keep
	// their on-screen pixel size.
	ResizePreserveSize
)

// String returns the config name of the policy.
func (p ResizePolicy) String() string {
	if p == ResizePreserveSize {
		return "preserve-size"
	}
	return "fixed-fov"
}

// ParseResizePolicy converts a config name to a ResizePolicy. Unknown
// names map to ResizeFixedFOV.
func ParseResizePolicy(s string) ResizePolicy {
	if s == "preserve-size" {
		return ResizePreserveSize
	}
	return ResizeFixedFOV
}

// Projection holds the perspective parameters of one viewpoint.
type Projection struct {
	FOV    float32 // Vertical field of view, radians
	Aspect float32 // Width / height
	Near   float32
	Far    float32

	Width  int
	Height int
	Policy ResizePolicy

	// Ortho switches MatrixAt to an orthographic box.
	Ortho bool
}

// NewProjection creates a projection for a viewport of the given size.
func NewProjection(fov float32, width, height int, near, far float32, policy ResizePolicy) *Projection {
	p := &Projection{
		FOV:    fov,
		Near:   near,
		Far:    far,
		Width:  width,
		Height: height,
		Policy: policy,
	}
	p.Aspect = aspect(width, height)
	return p
}

func aspect(width, height int) float32 {
	if height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// Resize updates the aspect ratio and, under ResizePreserveSize, the field
// of view. Non-positive sizes (minimized windows) are ignored and Resize
// returns false.
func (p *Projection) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if p.Policy == ResizePreserveSize && p.Height > 0 {
		p.FOV = PreserveSizeFOV(p.FOV, p.Height, height)
	}
	p.Width = width
	p.Height = height
	p.Aspect = aspect(width, height)
	return true
}

// PreserveSizeFOV returns atan(tan(fov/2) * newHeight/oldHeight) * 2.
func PreserveSizeFOV(fov float32, oldHeight, newHeight int) float32 {
	return math32.Atan(math32.Tan(fov/2)*float32(newHeight)/float32(oldHeight)) * 2
}

// Perspective returns the perspective matrix for the given parameters.
func Perspective(fov, aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(fov, aspect, near, far)
}

// Matrix returns the perspective matrix.
func (p *Projection) Matrix() mgl32.Mat4 {
	return Perspective(p.FOV, p.Aspect, p.Near, p.Far)
}

// MatrixAt returns the projection for a viewpoint at the given distance
// from its target. In ortho mode the box matches the perspective frustum's
// cross-section at that distance, so toggling keeps the target framed.
func (p *Projection) MatrixAt(distance float32) mgl32.Mat4 {
	if !p.Ortho {
		return p.Matrix()
	}
	halfH := distance * math32.Tan(p.FOV/2)
	halfW := halfH * p.Aspect
	return mgl32.Ortho(-halfW, halfW, -halfH, halfH, p.Near, p.Far)
}
