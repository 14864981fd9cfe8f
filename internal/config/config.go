// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Light    OrbitConfig    `yaml:"light"`
	Shadow   ShadowConfig   `yaml:"shadow"`
	Shaders  ShadersConfig  `yaml:"shaders"`
	Capture  CaptureConfig  `yaml:"capture"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// OrbitConfig overrides the tuning of one orbiting viewpoint.
// Zero values keep the preset's setting.
type OrbitConfig struct {
	MinDistance       float32 `yaml:"min_distance"`
	RotateSensitivity float32 `yaml:"rotate_sensitivity"`
	ZoomSensitivity   float32 `yaml:"zoom_sensitivity"`
	ZoomMode          string  `yaml:"zoom_mode"` // "pull-in" or "push-out"
}

// CameraConfig selects the demo preset and tunes the camera.
type CameraConfig struct {
	Preset       string `yaml:"preset"`
	ResizePolicy string `yaml:"resize_policy"` // "fixed-fov" or "preserve-size"
	OrbitConfig  `yaml:",inline"`
}

// ShadowConfig holds shadow mapping settings.
type ShadowConfig struct {
	Bias       float32 `yaml:"bias"`
	Resolution int32   `yaml:"resolution"`
}

// ShadersConfig holds shader source settings.
type ShadersConfig struct {
	Dir   string `yaml:"dir"`   // Empty uses the embedded shaders
	Watch bool   `yaml:"watch"` // Reload when files in Dir change
}

// CaptureConfig holds screenshot settings.
type CaptureConfig struct {
	Dir string `yaml:"dir"` // Empty writes to the working directory
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			Preset: "shadow-mapping",
		},
		Shadow: ShadowConfig{
			Bias:       0.00003,
			Resolution: 2048,
		},
		Shaders: ShadersConfig{
			Dir:   "",
			Watch: false,
		},
		Capture: CaptureConfig{
			Dir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
