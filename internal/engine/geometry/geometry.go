// Package geometry builds the demo scene's triangle lists.
//
// Every function returns non-indexed triangles with interleaved
// position and normal, six floats per vertex.
package geometry

import "github.com/go-gl/mathgl/mgl32"

// FloatsPerVertex is the interleaved vertex width.
const FloatsPerVertex = 6

// Plane returns a horizontal square at height y facing +Y.
func Plane(half, y float32) []float32 {
	a := mgl32.Vec3{-half, y, -half}
	b := mgl32.Vec3{-half, y, half}
	c := mgl32.Vec3{half, y, half}
	d := mgl32.Vec3{half, y, -half}
	up := mgl32.Vec3{0, 1, 0}

	var out []float32
	out = appendTri(out, a, b, c, up)
	out = appendTri(out, a, c, d, up)
	return out
}

// Box returns an axis-aligned box with outward normals.
func Box(center, half mgl32.Vec3) []float32 {
	lo := center.Sub(half)
	hi := center.Add(half)

	corner := func(x, y, z int) mgl32.Vec3 {
		v := lo
		if x == 1 {
			v[0] = hi[0]
		}
		if y == 1 {
			v[1] = hi[1]
		}
		if z == 1 {
			v[2] = hi[2]
		}
		return v
	}

	// Counter-clockwise seen from outside.
	faces := []struct {
		n          mgl32.Vec3
		a, b, c, d mgl32.Vec3
	}{
		{mgl32.Vec3{1, 0, 0}, corner(1, 0, 1), corner(1, 0, 0), corner(1, 1, 0), corner(1, 1, 1)},
		{mgl32.Vec3{-1, 0, 0}, corner(0, 0, 0), corner(0, 0, 1), corner(0, 1, 1), corner(0, 1, 0)},
		{mgl32.Vec3{0, 1, 0}, corner(0, 1, 1), corner(1, 1, 1), corner(1, 1, 0), corner(0, 1, 0)},
		{mgl32.Vec3{0, -1, 0}, corner(0, 0, 0), corner(1, 0, 0), corner(1, 0, 1), corner(0, 0, 1)},
		{mgl32.Vec3{0, 0, 1}, corner(0, 0, 1), corner(1, 0, 1), corner(1, 1, 1), corner(0, 1, 1)},
		{mgl32.Vec3{0, 0, -1}, corner(1, 0, 0), corner(0, 0, 0), corner(0, 1, 0), corner(1, 1, 0)},
	}

	out := make([]float32, 0, 36*FloatsPerVertex)
	for _, f := range faces {
		out = appendTri(out, f.a, f.b, f.c, f.n)
		out = appendTri(out, f.a, f.c, f.d, f.n)
	}
	return out
}

// Marker returns a four-sided pyramid with its apex at the origin,
// opening along +Y. Rotated onto a spot direction it shows where the
// light points.
func Marker(length, radius float32) []float32 {
	apex := mgl32.Vec3{}
	base := [4]mgl32.Vec3{
		{radius, length, 0},
		{0, length, radius},
		{-radius, length, 0},
		{0, length, -radius},
	}

	var out []float32
	for i := range base {
		a, b := base[i], base[(i+1)%len(base)]
		out = appendTri(out, apex, a, b, faceNormal(apex, a, b))
	}
	top := mgl32.Vec3{0, 1, 0}
	out = appendTri(out, base[0], base[3], base[2], top)
	out = appendTri(out, base[0], base[2], base[1], top)
	return out
}

// Vertex returns the position and normal of vertex i.
func Vertex(vertices []float32, i int) (pos, normal mgl32.Vec3) {
	o := i * FloatsPerVertex
	pos = mgl32.Vec3{vertices[o], vertices[o+1], vertices[o+2]}
	normal = mgl32.Vec3{vertices[o+3], vertices[o+4], vertices[o+5]}
	return pos, normal
}

func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

func appendTri(out []float32, a, b, c, n mgl32.Vec3) []float32 {
	for _, p := range [3]mgl32.Vec3{a, b, c} {
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2])
	}
	return out
}
