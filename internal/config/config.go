// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Render  RenderConfig  `yaml:"render"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// RenderConfig holds rasterization and projection settings.
type RenderConfig struct {
	Wireframe  bool       `yaml:"wireframe"`
	LineColor  [3]float32 `yaml:"line_color"`
	ClearColor [3]float32 `yaml:"clear_color"`
	FOV        float32    `yaml:"fov"`
	NearPlane  float32    `yaml:"near_plane"`
	FarPlane   float32    `yaml:"far_plane"`
}

// SceneConfig holds the model to display and its animation. Position,
// orientation and scale are the object's starting transform;
// orientation is Euler angles in radians. SpinSpeed and DriftSpeed
// are per-frame deltas applied to the Y orientation and Z position.
type SceneConfig struct {
	Model       string     `yaml:"model"`
	FlipUVs     bool       `yaml:"flip_uvs"`
	Position    [3]float32 `yaml:"position"`
	Orientation [3]float32 `yaml:"orientation"`
	Scale       [3]float32 `yaml:"scale"`
	SpinSpeed   float32    `yaml:"spin_speed"`
	DriftSpeed  float32    `yaml:"drift_speed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values: the bunny
// model spinning slowly in front of a fixed camera.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Model Viewer",
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
		},
		Render: RenderConfig{
			Wireframe:  true,
			LineColor:  [3]float32{0, 1, 0},
			ClearColor: [3]float32{0, 0, 0},
			FOV:        45,
			NearPlane:  0.1,
			FarPlane:   100,
		},
		Scene: SceneConfig{
			Model:       "models/bunny.obj",
			FlipUVs:     true,
			Position:    [3]float32{0, 0, -3},
			Orientation: [3]float32{0, 0, 0},
			Scale:       [3]float32{3, 3, 3},
			SpinSpeed:   0.0003,
			DriftSpeed:  0.00005,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
