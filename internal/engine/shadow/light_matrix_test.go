package shadow

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/orbitview/internal/engine/camera"
)

const pi = float32(math.Pi)

// nearVec3 compares component-wise with an absolute tolerance, so float
// noise around zero does not fail the check.
func nearVec3(a, b mgl32.Vec3, eps float32) bool {
	for i := range a {
		if d := a[i] - b[i]; d > eps || d < -eps {
			return false
		}
	}
	return true
}

func nearVec4(a, b mgl32.Vec4, eps float32) bool {
	for i := range a {
		if d := a[i] - b[i]; d > eps || d < -eps {
			return false
		}
	}
	return true
}

func TestBiasMatrixCenter(t *testing.T) {
	got := BiasMatrix(DefaultBias).Mul4x1(mgl32.Vec4{0, 0, 0, 1})

	want := mgl32.Vec4{0.5, 0.5, 0.5 - DefaultBias, 1}
	if !nearVec4(got, want, 1e-6) {
		t.Errorf("center = %v, want %v", got, want)
	}
}

func TestBiasMatrixCorners(t *testing.T) {
	const bias = 0.01
	m := BiasMatrix(bias)

	tests := []struct {
		in   mgl32.Vec4
		want mgl32.Vec4
	}{
		{mgl32.Vec4{-1, -1, -1, 1}, mgl32.Vec4{0, 0, -bias, 1}},
		{mgl32.Vec4{1, 1, 1, 1}, mgl32.Vec4{1, 1, 1 - bias, 1}},
		{mgl32.Vec4{1, -1, 0, 1}, mgl32.Vec4{1, 0, 0.5 - bias, 1}},
	}

	for _, tt := range tests {
		got := m.Mul4x1(tt.in)
		if !nearVec4(got, tt.want, 1e-6) {
			t.Errorf("BiasMatrix * %v = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMatrixIdentityChain(t *testing.T) {
	id := mgl32.Ident4()
	got := Matrix(id, id, id, DefaultBias).Mul4x1(mgl32.Vec4{0, 0, 0, 1})

	want := mgl32.Vec4{0.5, 0.5, 0.5 - DefaultBias, 1}
	if !nearVec4(got, want, 1e-6) {
		t.Errorf("shadow * center = %v, want %v", got, want)
	}
}

func newLight() (*camera.Orbit, *camera.Projection) {
	o := camera.NewOrbit(50, 0.4*pi, 1.2*pi)
	p := camera.NewProjection(0.3*pi, 1024, 1024, 0.1, 1000, camera.ResizeFixedFOV)
	return o, p
}

func TestDeriveTargetAtShadowMapCenter(t *testing.T) {
	o, p := newLight()

	tr, err := Derive(o, p, mgl32.Ident4(), DefaultBias)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}

	s := tr.Shadow.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	u, v := s[0]/s[3], s[1]/s[3]
	if math.Abs(float64(u-0.5)) > 1e-4 || math.Abs(float64(v-0.5)) > 1e-4 {
		t.Errorf("target in shadow map = (%f, %f), want (0.5, 0.5)", u, v)
	}
}

func TestDeriveConsistency(t *testing.T) {
	o, p := newLight()
	model := mgl32.Translate3D(2, 0, -1)

	tr, err := Derive(o, p, model, DefaultBias)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}

	if tr.Shadow != Matrix(tr.Projection, tr.View, model, DefaultBias) {
		t.Error("Shadow differs from Matrix(projection, view, model)")
	}
	if tr.MVP != camera.ComposeMVP(tr.Projection, tr.View, model) {
		t.Error("MVP differs from ComposeMVP")
	}

	wantDir := tr.Position.Mul(-1).Normalize()
	if !nearVec3(tr.SpotDirection, wantDir, 1e-5) {
		t.Errorf("SpotDirection = %v, want %v", tr.SpotDirection, wantDir)
	}
}

func TestDeriveLightAboveTarget(t *testing.T) {
	o, p := newLight()
	o.Theta = camera.ThetaEpsilon
	o.Target = mgl32.Vec3{0, -20, 0}

	tr, err := Derive(o, p, mgl32.Ident4(), DefaultBias)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	for i, f := range tr.Shadow {
		if f != f {
			t.Fatalf("Shadow[%d] is NaN", i)
		}
	}
}

func TestHintModel(t *testing.T) {
	pos := mgl32.Vec3{3, 4, 5}
	dir := mgl32.Vec3{1, -1, 0}.Normalize()

	m := HintModel(pos, dir)

	origin := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !nearVec3(origin.Vec3(), pos, 1e-5) {
		t.Errorf("marker origin = %v, want %v", origin.Vec3(), pos)
	}

	axis := m.Mul4x1(mgl32.Vec4{0, 1, 0, 0})
	if !nearVec3(axis.Vec3(), dir, 1e-5) {
		t.Errorf("marker +Y = %v, want %v", axis.Vec3(), dir)
	}
}

func TestHintModelStraightDown(t *testing.T) {
	m := HintModel(mgl32.Vec3{}, mgl32.Vec3{0, -1, 0})

	axis := m.Mul4x1(mgl32.Vec4{0, 1, 0, 0})
	if !nearVec3(axis.Vec3(), mgl32.Vec3{0, -1, 0}, 1e-5) {
		t.Errorf("marker +Y = %v, want (0, -1, 0)", axis.Vec3())
	}
}
