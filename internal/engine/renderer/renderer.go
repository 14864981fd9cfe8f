// Package renderer draws the orbit scene with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/orbitview/internal/engine/geometry"
	"github.com/Faultbox/orbitview/internal/engine/shader"
	"github.com/Faultbox/orbitview/internal/engine/shaders"
	"github.com/Faultbox/orbitview/internal/logger"
	"github.com/Faultbox/orbitview/internal/session"
)

// Config holds renderer configuration.
type Config struct {
	Width            int
	Height           int
	ShadowResolution int32
}

// Scene dimensions in world units.
const (
	floorHalf    = 100
	cubeHalf     = 10
	markerLength = 6
	markerRadius = 2
)

// shadowUnit is the texture unit the shadow map is sampled from.
const shadowUnit = 0

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	programs map[string]*shader.Program
	shadow   *ShadowMap

	floor  *mesh
	cube   *mesh
	marker *mesh
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config, src *shaders.Source) (*Renderer, error) {
	r := &Renderer{config: cfg}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	if err := r.Reload(src); err != nil {
		return nil, err
	}

	sm, err := NewShadowMap(cfg.ShadowResolution)
	if err != nil {
		r.Close()
		return nil, err
	}
	r.shadow = sm

	r.floor = newMesh(geometry.Plane(floorHalf, 0))
	r.cube = newMesh(geometry.Box(mgl32.Vec3{0, cubeHalf, 0}, mgl32.Vec3{cubeHalf, cubeHalf, cubeHalf}))
	r.marker = newMesh(geometry.Marker(markerLength, markerRadius))

	return r, nil
}

// Reload rebuilds every program from src. On failure the current
// programs stay in use.
func (r *Renderer) Reload(src *shaders.Source) error {
	sources, err := src.LoadAll()
	if err != nil {
		return fmt.Errorf("loading shaders: %w", err)
	}

	built := make(map[string]*shader.Program, len(sources))
	for _, name := range shaders.Names {
		p, err := shader.Build(sources[name])
		if err != nil {
			for _, b := range built {
				b.Delete()
			}
			return err
		}
		built[name] = p
	}

	for _, p := range r.programs {
		p.Delete()
	}
	r.programs = built
	logger.Info("shaders loaded", zap.Int("programs", len(built)))
	return nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.floor.delete()
	r.cube.delete()
	r.marker.delete()
	if r.shadow != nil {
		r.shadow.Destroy()
	}
	for _, p := range r.programs {
		p.Delete()
	}
	r.programs = nil
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Draw renders one frame: the shadow depth pass when a light exists,
// the lit scene, and the light marker.
func (r *Renderer) Draw(f session.Frame) {
	if f.HasLight {
		r.drawDepth(f)
	}

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.drawScene(f)

	if f.HasLight {
		r.drawMarker(f)
	}
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

func (r *Renderer) drawDepth(f session.Frame) {
	p := r.programs[shaders.Depth]
	r.shadow.Bind()
	p.Use()
	p.SetMat4("mvp", f.Light.MVP)
	r.floor.draw()
	r.cube.draw()
	r.shadow.Unbind()
}

func (r *Renderer) drawScene(f session.Frame) {
	p := r.programs[shaders.Scene]
	p.Use()

	p.SetMat4("mvp", f.Camera.MVP)
	p.SetMat4("m", f.Model)
	p.SetMat3("mN", f.Model.Mat3().Inv().Transpose())
	p.SetVec3("camPos", f.Camera.Position)
	p.SetBool("hasLight", f.HasLight)
	p.SetInt("shadowMap", shadowUnit)

	if f.HasLight {
		p.SetMat4("matrixShadow", f.Light.Shadow)
		p.SetVec3("lightPos", f.Light.Position)
		p.SetVec3("spotDir", f.Light.SpotDirection)
		p.SetFloat("lightFovRad", f.LightFOV)
		r.shadow.BindTexture(gl.TEXTURE0 + shadowUnit)
	}

	r.floor.draw()
	r.cube.draw()
}

func (r *Renderer) drawMarker(f session.Frame) {
	p := r.programs[shaders.Hint]
	p.Use()
	p.SetMat4("vp", f.Camera.ViewProjection)
	p.SetMat4("m", f.Light.HintModel)
	r.marker.draw()
}
