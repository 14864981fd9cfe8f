// Package viewer runs the interactive orbit viewer: window, input,
// session and renderer tied together in one loop.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/orbitview/internal/config"
	"github.com/Faultbox/orbitview/internal/engine/input"
	"github.com/Faultbox/orbitview/internal/engine/input/sdlinput"
	"github.com/Faultbox/orbitview/internal/engine/renderer"
	"github.com/Faultbox/orbitview/internal/engine/shaders"
	"github.com/Faultbox/orbitview/internal/engine/window"
	"github.com/Faultbox/orbitview/internal/logger"
	"github.com/Faultbox/orbitview/internal/screenshot"
	"github.com/Faultbox/orbitview/internal/session"
	"github.com/Faultbox/orbitview/internal/watch"
)

// idleSleep bounds the loop rate while nothing needs redrawing.
const idleSleep = 5 * time.Millisecond

// Viewer is the main viewer instance.
type Viewer struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *sdlinput.Poller
	session  *session.Session
	shaders  *shaders.Source
	watcher  *watch.Watcher
	capture  *screenshot.Capture
	log      *zap.Logger
}

// New creates the window, GL resources and session described by cfg.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		config:  cfg,
		shaders: shaders.Dir(cfg.Shaders.Dir),
		capture: screenshot.New(cfg.Capture.Dir, "orbitview"),
		log:     logger.Named("viewer"),
	}

	var err error
	v.session, err = session.FromConfig(cfg)
	if err != nil {
		return nil, err
	}

	v.window, err = window.New(window.Config{
		Title:      "orbitview - " + v.session.Preset,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer after window, since the OpenGL context must exist.
	width, height := v.window.Size()
	v.renderer, err = renderer.New(renderer.Config{
		Width:            width,
		Height:           height,
		ShadowResolution: cfg.Shadow.Resolution,
	}, v.shaders)
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	// Sessions, renderer and resize events all work in drawable pixels.
	v.input = sdlinput.New(v.window.Size)
	v.session.Handle(input.Event{Type: input.EventWindowResize, Width: width, Height: height})

	if cfg.Shaders.Watch && cfg.Shaders.Dir != "" {
		v.watcher, err = watch.New(cfg.Shaders.Dir, ".vert", ".frag")
		if err != nil {
			// Reloading still works through F6.
			v.log.Warn("shader watch disabled", zap.Error(err))
		}
	}

	v.log.Info("viewer initialized", zap.String("preset", v.session.Preset))
	return v, nil
}

// Run processes events and redraws until quit.
func (v *Viewer) Run() error {
	v.running = true

	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting main loop")

	for v.running {
		v.input.Update()

		reload, capture := false, false
		for _, e := range v.input.Events() {
			a := v.session.Handle(e)
			if a.Quit {
				v.running = false
			}
			if a.ReloadShaders {
				reload = true
			}
			if a.Screenshot {
				capture = true
			}
			if e.Type == input.EventWindowResize {
				v.renderer.Resize(e.Width, e.Height)
			}
		}
		if !v.running {
			break
		}

		if v.watcher != nil {
			select {
			case name, ok := <-v.watcher.Changes():
				if ok {
					v.log.Debug("shader changed", zap.String("file", name))
					reload = true
				}
			default:
			}
		}

		redraw := v.session.Dirty()
		if reload {
			v.reloadShaders()
			redraw = true
		}

		if !redraw && !capture {
			time.Sleep(idleSleep)
			continue
		}

		f, err := v.session.Frame()
		if err != nil {
			return fmt.Errorf("deriving frame: %w", err)
		}
		if f.Camera.Fallback || f.Light.Fallback {
			v.log.Debug("view up axis substituted at a pole")
		}

		v.renderer.Draw(f)
		if capture {
			v.saveScreenshot()
		}
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("frames", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// reloadShaders rebuilds the programs, keeping the old ones on failure.
func (v *Viewer) reloadShaders() {
	if err := v.renderer.Reload(v.shaders); err != nil {
		v.log.Error("shader reload failed", zap.Error(err))
		return
	}
	v.log.Info("shaders reloaded")
}

// saveScreenshot captures the frame just drawn, before the swap.
func (v *Viewer) saveScreenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.capture.Save(pixels, w, h)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.watcher != nil {
		v.watcher.Close()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
