// Package preset holds the per-demo camera and light parameters.
package preset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/chewxy/math32"

	"github.com/Faultbox/orbitview/internal/engine/camera"
)

// ErrUnknownPreset is returned by Lookup for names not in the table.
var ErrUnknownPreset = errors.New("unknown preset")

// Default is the preset used when none is configured.
const Default = "shadow-mapping"

// OrbitParams describes one orbiting viewpoint.
type OrbitParams struct {
	Distance          float32
	Theta             float32
	Phi               float32
	MinDistance       float32
	RotateSensitivity float32
	ZoomSensitivity   float32
	Zoom              camera.ZoomMode
}

// Orbit builds an orbit from the parameters.
func (p OrbitParams) Orbit() *camera.Orbit {
	o := camera.NewOrbit(p.Distance, p.Theta, p.Phi)
	o.MinDistance = p.MinDistance
	o.RotateSensitivity = p.RotateSensitivity
	o.ZoomSensitivity = p.ZoomSensitivity
	o.Zoom = p.Zoom
	o.Normalize()
	return o
}

// Preset is the full parametrization of one demo.
type Preset struct {
	Name        string
	Description string

	Camera OrbitParams
	FOV    float32
	Near   float32
	Far    float32
	Resize camera.ResizePolicy

	// Light is nil for demos without a movable light viewpoint.
	Light    *OrbitParams
	LightFOV float32
}

const (
	pi = math32.Pi

	// Object-rotation demos step 0.02 rad per pointer pixel.
	objectRotate = 0.02
	// Orbit demos step 0.15 degrees per pointer pixel.
	orbitRotate = 0.15 / 180 * pi

	zoomStep = 0.15
	// 40 degrees, computed with π truncated to 3.145.
	objectFOV = 3.145 * 40.0 / 180.0
)

func objectDemo(name, desc string) Preset {
	return Preset{
		Name:        name,
		Description: desc,
		Camera: OrbitParams{
			Distance:          48,
			Theta:             pi / 2,
			Phi:               0,
			MinDistance:       1,
			RotateSensitivity: objectRotate,
			ZoomSensitivity:   zoomStep,
			Zoom:              camera.ZoomPullIn,
		},
		FOV:    objectFOV,
		Near:   0.1,
		Far:    1000,
		Resize: camera.ResizePreserveSize,
	}
}

func withLight(p Preset, light OrbitParams) Preset {
	p.Light = &light
	p.LightFOV = 0.3 * pi
	return p
}

func shadowDemo(name, desc string, cam, light OrbitParams) Preset {
	return withLight(Preset{
		Name:        name,
		Description: desc,
		Camera:      cam,
		FOV:         0.25 * pi,
		Near:        0.1,
		Far:         1000,
		Resize:      camera.ResizeFixedFOV,
	}, light)
}

func orbitParams(distance, theta, phi float32, zoom camera.ZoomMode) OrbitParams {
	return OrbitParams{
		Distance:          distance,
		Theta:             theta,
		Phi:               phi,
		MinDistance:       10,
		RotateSensitivity: orbitRotate,
		ZoomSensitivity:   zoomStep,
		Zoom:              zoom,
	}
}

func directionalLight() OrbitParams {
	return OrbitParams{
		Distance:          1,
		Theta:             pi / 4,
		Phi:               0,
		MinDistance:       1,
		RotateSensitivity: objectRotate,
		ZoomSensitivity:   0,
		Zoom:              camera.ZoomPullIn,
	}
}

var table = map[string]Preset{}

func register(p Preset) {
	table[p.Name] = p
}

func init() {
	register(objectDemo("transformations", "point cloud rotated and zoomed by dragging"))
	register(withLight(objectDemo("shading", "per-pixel Blinn shading, ctrl-drag moves the light"), directionalLight()))
	register(withLight(objectDemo("textures", "textured mesh, ctrl-drag moves the light"), directionalLight()))
	register(withLight(objectDemo("render-buffers", "render-to-texture onto a plane"), directionalLight()))
	register(objectDemo("environment-mapping", "cube-map reflections"))
	register(shadowDemo("shadow-mapping", "spot light shadows, ctrl-drag orbits the light",
		orbitParams(150, 0.35*pi, 1.2*pi, camera.ZoomPullIn),
		orbitParams(50, 0.4*pi, 1.2*pi, camera.ZoomPushOut)))
	register(shadowDemo("tessellation", "displacement-mapped quad with shadows",
		orbitParams(300, 0.45*pi, 0, camera.ZoomPullIn),
		orbitParams(85, 0.45*pi, 0, camera.ZoomPushOut)))
}

// Lookup returns the preset with the given name.
func Lookup(name string) (Preset, error) {
	p, ok := table[name]
	if !ok {
		return Preset{}, fmt.Errorf("%q: %w", name, ErrUnknownPreset)
	}
	if p.Light != nil {
		light := *p.Light
		p.Light = &light
	}
	return p, nil
}

// Names returns all preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
