// Package session owns the camera and light viewpoints of a running viewer
// and turns input events into matrix updates.
package session

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/orbitview/internal/config"
	"github.com/Faultbox/orbitview/internal/engine/camera"
	"github.com/Faultbox/orbitview/internal/engine/input"
	"github.com/Faultbox/orbitview/internal/engine/shadow"
	"github.com/Faultbox/orbitview/internal/logger"
	"github.com/Faultbox/orbitview/internal/preset"
)

// Action tells the main loop what an event asked for.
type Action struct {
	Redraw        bool
	Quit          bool
	ReloadShaders bool
	Screenshot    bool
}

// Session is the per-run state. All mutation happens in Handle, called
// from the event loop; Frame is called from the same goroutine.
type Session struct {
	Preset string

	Camera           *camera.Orbit
	CameraProjection *camera.Projection

	// Light and LightProjection are nil for presets without a light.
	Light           *camera.Orbit
	LightProjection *camera.Projection

	// Model is derived from Pose whenever an alt-drag moves the object.
	Model mgl32.Mat4
	Pose  Pose
	Bias  float32

	drag  input.Drag
	dirty bool
	log   *zap.Logger
}

// Frame is the derived state handed to the renderer.
type Frame struct {
	Model    mgl32.Mat4
	Camera   camera.Transform
	Light    shadow.Transform
	LightFOV float32 // Spot cone angle in radians
	HasLight bool
}

// New creates a session for a preset and viewport size.
func New(p preset.Preset, width, height int, bias float32) *Session {
	s := &Session{
		Preset:           p.Name,
		Camera:           p.Camera.Orbit(),
		CameraProjection: camera.NewProjection(p.FOV, width, height, p.Near, p.Far, p.Resize),
		Model:            mgl32.Ident4(),
		Pose:             DefaultPose(),
		Bias:             bias,
		dirty:            true,
		log:              logger.Named("session"),
	}
	if p.Light != nil {
		s.Light = p.Light.Orbit()
		// The light renders into a square shadow map.
		s.LightProjection = camera.NewProjection(p.LightFOV, 1, 1, p.Near, p.Far, camera.ResizeFixedFOV)
	}

	s.log.Info("session created",
		zap.String("preset", p.Name),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Bool("light", s.Light != nil),
	)
	return s
}

// Zoom speeds selected at runtime with the B and S keys.
const (
	FastZoom float32 = 20
	SlowZoom float32 = 0.15
)

// FromConfig creates a session from the loaded configuration, applying
// the camera and light overrides on top of the preset.
func FromConfig(cfg *config.Config) (*Session, error) {
	p, err := preset.Lookup(cfg.Camera.Preset)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	if cfg.Camera.ResizePolicy != "" {
		p.Resize = camera.ParseResizePolicy(cfg.Camera.ResizePolicy)
	}
	overrideOrbit(&p.Camera, cfg.Camera.OrbitConfig)
	if p.Light != nil {
		overrideOrbit(p.Light, cfg.Light)
	}

	return New(p, cfg.Graphics.Width, cfg.Graphics.Height, cfg.Shadow.Bias), nil
}

func overrideOrbit(p *preset.OrbitParams, oc config.OrbitConfig) {
	if oc.MinDistance > 0 {
		p.MinDistance = oc.MinDistance
	}
	if oc.RotateSensitivity > 0 {
		p.RotateSensitivity = oc.RotateSensitivity
	}
	if oc.ZoomSensitivity > 0 {
		p.ZoomSensitivity = oc.ZoomSensitivity
	}
	if oc.ZoomMode != "" {
		p.Zoom = camera.ParseZoomMode(oc.ZoomMode)
	}
}

// Dirty reports whether the derived matrices are stale.
func (s *Session) Dirty() bool {
	return s.dirty
}

// Dragging reports whether a pointer drag is in progress.
func (s *Session) Dragging() bool {
	return s.drag.Dragging()
}

// Handle applies one input event.
func (s *Session) Handle(e input.Event) Action {
	var a Action

	switch e.Type {
	case input.EventQuit:
		a.Quit = true

	case input.EventWindowResize:
		if s.CameraProjection.Resize(e.Width, e.Height) {
			s.log.Debug("resized",
				zap.Int("width", e.Width),
				zap.Int("height", e.Height),
				zap.Float32("aspect", s.CameraProjection.Aspect),
				zap.Float32("fov", s.CameraProjection.FOV),
			)
			a.Redraw = true
		}

	case input.EventKeyDown:
		switch e.Key {
		case input.KeyEscape:
			a.Quit = true
		case input.KeyF6:
			a.ReloadShaders = true
			a.Redraw = true
		case input.KeyF12:
			a.Screenshot = true
		case input.KeyB:
			a.Redraw = s.setZoomSpeed(FastZoom)
		case input.KeyS:
			a.Redraw = s.setZoomSpeed(SlowZoom)
		case input.KeyP:
			s.CameraProjection.Ortho = !s.CameraProjection.Ortho
			s.log.Debug("projection toggled", zap.Bool("ortho", s.CameraProjection.Ortho))
			a.Redraw = true
		}

	case input.EventMouseDown, input.EventMouseUp, input.EventMouseMove:
		m, ok := s.drag.Handle(e)
		if ok {
			a.Redraw = s.apply(m)
		}
	}

	if a.Redraw {
		s.dirty = true
	}
	return a
}

// setZoomSpeed changes the zoom step of the camera, and of the light when
// it zooms at all. Nothing is redrawn: only later zooms change.
func (s *Session) setZoomSpeed(speed float32) bool {
	s.Camera.ZoomSensitivity = speed
	if s.Light != nil && s.Light.ZoomSensitivity > 0 {
		s.Light.ZoomSensitivity = speed
	}
	s.log.Debug("zoom speed", zap.Float32("sensitivity", speed))
	return false
}

// apply moves the dragged viewpoint or the model. It reports whether
// anything was driven, which is also when a redraw is wanted.
func (s *Session) apply(m input.Motion) bool {
	if m.Target == input.TargetModel {
		return s.applyModel(m)
	}

	o := s.Camera
	if m.Target == input.TargetLight {
		o = s.Light
	}
	if o == nil {
		return false
	}

	switch m.Button {
	case input.ButtonPrimary:
		o.HandleDrag(m.DX, m.DY)
	case input.ButtonSecondary:
		o.HandleZoom(m.DY)
	}

	if ce := s.log.Check(zap.DebugLevel, "orbit moved"); ce != nil {
		ce.Write(
			zap.Stringer("target", m.Target),
			zap.Float32("dx", m.DX),
			zap.Float32("dy", m.DY),
			zap.Float32("distance", o.Distance),
			zap.Float32("theta", o.Theta),
			zap.Float32("phi", o.Phi),
			logger.Vec3("position", o.Position()),
		)
	}
	return true
}

// Frame derives all matrices from the current state and clears the dirty
// flag. It is safe to call repeatedly.
func (s *Session) Frame() (Frame, error) {
	f := Frame{Model: s.Model}

	ct, err := camera.Derive(s.Camera, s.CameraProjection, s.Model)
	if err != nil {
		return Frame{}, fmt.Errorf("camera transform: %w", err)
	}
	f.Camera = ct

	if s.Light != nil {
		lt, err := shadow.Derive(s.Light, s.LightProjection, s.Model, s.Bias)
		if err != nil {
			return Frame{}, fmt.Errorf("light transform: %w", err)
		}
		f.Light = lt
		f.LightFOV = s.LightProjection.FOV
		f.HasLight = true
	}

	s.dirty = false
	return f, nil
}

func (s *Session) applyModel(m input.Motion) bool {
	switch m.Button {
	case input.ButtonPrimary:
		s.Pose.HandleDrag(m.DX, m.DY)
	case input.ButtonSecondary:
		s.Pose.HandleZoom(m.DY)
	default:
		return false
	}
	s.Model = s.Pose.Matrix()

	if ce := s.log.Check(zap.DebugLevel, "model moved"); ce != nil {
		ce.Write(
			zap.Float32("rot_x", s.Pose.RotX),
			zap.Float32("rot_y", s.Pose.RotY),
			zap.Float32("depth", s.Pose.Depth),
		)
	}
	return true
}
