package camera

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrDegenerateView is returned when the eye coincides with the target.
var ErrDegenerateView = errors.New("eye coincides with target")

const (
	coincidentEpsilon = 1e-6
	parallelEpsilon   = 1e-6
)

// alternateUps are tried in order when the view direction is parallel to
// the requested up vector.
var alternateUps = [...]mgl32.Vec3{
	{0, 0, 1},
	{1, 0, 0},
}

// View is a look-at matrix together with the up vector that produced it.
type View struct {
	Matrix mgl32.Mat4
	Up     mgl32.Vec3
	// Fallback is set when the requested up vector was parallel to the view
	// direction and an alternate axis was used instead.
	Fallback bool
}

// LookAt builds a view matrix looking from eye to target. A view direction
// parallel to up is resolved with an alternate up axis; an eye equal to the
// target is an error and yields the identity matrix.
func LookAt(eye, target, up mgl32.Vec3) (View, error) {
	dir := target.Sub(eye)
	if dir.Len() < coincidentEpsilon {
		return View{Matrix: mgl32.Ident4(), Up: up}, fmt.Errorf("look-at from %v: %w", eye, ErrDegenerateView)
	}
	dir = dir.Normalize()

	v := View{Up: up}
	if parallel(dir, up) {
		for _, alt := range alternateUps {
			if !parallel(dir, alt) {
				v.Up = alt
				v.Fallback = true
				break
			}
		}
	}
	v.Matrix = mgl32.LookAtV(eye, target, v.Up)
	return v, nil
}

func parallel(dir, up mgl32.Vec3) bool {
	return dir.Cross(up.Normalize()).Len() < parallelEpsilon
}

// ComposeMVP returns projection * view * model.
func ComposeMVP(projection, view, model mgl32.Mat4) mgl32.Mat4 {
	return projection.Mul4(view).Mul4(model)
}

// Transform is everything the renderer needs from one viewpoint. It is
// always derived from scratch.
type Transform struct {
	Position       mgl32.Vec3
	View           mgl32.Mat4
	Projection     mgl32.Mat4
	ViewProjection mgl32.Mat4
	MVP            mgl32.Mat4
	Fallback       bool
}

// Derive computes the transform for an orbit seen through a projection.
func Derive(o *Orbit, p *Projection, model mgl32.Mat4) (Transform, error) {
	v, err := o.View()
	if err != nil {
		return Transform{}, err
	}
	proj := p.MatrixAt(o.Distance)
	vp := proj.Mul4(v.Matrix)
	return Transform{
		Position:       o.Position(),
		View:           v.Matrix,
		Projection:     proj,
		ViewProjection: vp,
		MVP:            vp.Mul4(model),
		Fallback:       v.Fallback,
	}, nil
}
