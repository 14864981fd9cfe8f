// Package shadow derives the light-space matrices used for shadow mapping.
package shadow

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/orbitview/internal/engine/camera"
)

// DefaultBias is the depth offset subtracted in shadow-map texture space to
// suppress shadow acne.
const DefaultBias float32 = 0.00003

// BiasMatrix maps clip space [-1,1]^3 into texture space [0,1]^3 and
// subtracts bias from depth: T(0.5, 0.5, 0.5-bias) * S(0.5).
func BiasMatrix(bias float32) mgl32.Mat4 {
	return mgl32.Translate3D(0.5, 0.5, 0.5-bias).Mul4(mgl32.Scale3D(0.5, 0.5, 0.5))
}

// Matrix returns the shadow-sampling matrix
// BiasMatrix(bias) * lightProjection * lightView * model.
func Matrix(lightProjection, lightView, model mgl32.Mat4, bias float32) mgl32.Mat4 {
	return BiasMatrix(bias).Mul4(camera.ComposeMVP(lightProjection, lightView, model))
}

// Transform holds the light-side matrices for one frame.
type Transform struct {
	Position      mgl32.Vec3
	SpotDirection mgl32.Vec3 // Unit vector from the light toward its target

	View       mgl32.Mat4
	Projection mgl32.Mat4
	MVP        mgl32.Mat4 // Depth-pass transform
	Shadow     mgl32.Mat4 // World-to-shadow-map transform for the main pass

	// HintModel places the light marker: translation to the light position
	// times the rotation taking +Y onto the spot direction.
	HintModel mgl32.Mat4

	Fallback bool
}

// Derive computes the light transform for a light orbit.
func Derive(light *camera.Orbit, projection *camera.Projection, model mgl32.Mat4, bias float32) (Transform, error) {
	ct, err := camera.Derive(light, projection, model)
	if err != nil {
		return Transform{}, err
	}

	dir := light.Direction()
	return Transform{
		Position:      ct.Position,
		SpotDirection: dir,
		View:          ct.View,
		Projection:    ct.Projection,
		MVP:           ct.MVP,
		Shadow:        BiasMatrix(bias).Mul4(ct.MVP),
		HintModel:     HintModel(ct.Position, dir),
		Fallback:      ct.Fallback,
	}, nil
}

// HintModel returns the model matrix of a marker at position whose local +Y
// axis points along dir.
func HintModel(position, dir mgl32.Vec3) mgl32.Mat4 {
	rot := mgl32.QuatBetweenVectors(mgl32.Vec3{0, 1, 0}, dir.Normalize())
	return mgl32.Translate3D(position[0], position[1], position[2]).Mul4(rot.Mat4())
}
