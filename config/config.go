package config

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const (
	RenderPoints    = "points"
	RenderTriangles = "triangles"
)

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Shaders ShaderConfig  `toml:"shaders"`
	Camera  CameraConfig  `toml:"camera"`
	Light   LightConfig   `toml:"light"`
	Mesh    MeshConfig    `toml:"mesh"`
	Input   InputConfig   `toml:"input"`
	Log     LogConfig     `toml:"log"`
	Overlay OverlayConfig `toml:"overlay"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	// ClearColor is RGB in [0,1].
	ClearColor [3]float32 `toml:"clear_color"`
}

type ShaderConfig struct {
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
	// HotReload recompiles the program when either file changes on disk.
	HotReload bool `toml:"hot_reload"`
}

type CameraConfig struct {
	Radius    float32 `toml:"radius"`
	Fov       float32 `toml:"fov"` // degrees
	Near      float32 `toml:"near"`
	Far       float32 `toml:"far"`
	ZoomSpeed float32 `toml:"zoom_speed"`
	Bookmark  string  `toml:"bookmark"`
}

type LightConfig struct {
	Radius    float32    `toml:"radius"`
	Elevation float32    `toml:"elevation"` // degrees
	Ambient   [3]float32 `toml:"ambient"`
	Diffuse   [3]float32 `toml:"diffuse"`
	Specular  [3]float32 `toml:"specular"`
	ShowLamp  bool       `toml:"show_lamp"`
}

type MeshConfig struct {
	RotateX float32 `toml:"rotate_x"` // degrees
	// Scale 0 fits the largest extent of the bounding box into 2 units.
	Scale     float32 `toml:"scale"`
	Mode      string  `toml:"mode"`
	PointSize float32 `toml:"point_size"`
}

type InputConfig struct {
	ZoomScale  float32 `toml:"zoom_scale"`
	ScrollStep float32 `toml:"scroll_step"`
}

type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Dev        bool   `toml:"dev"`
}

type OverlayConfig struct {
	Enabled  bool    `toml:"enabled"`
	FontSize float64 `toml:"font_size"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 960,
			Title:  "orbitview",
		},
		Shaders: ShaderConfig{
			Vertex:    "res/shaders/vertShader.glsl",
			Fragment:  "res/shaders/fragShader.glsl",
			HotReload: true,
		},
		Camera: CameraConfig{
			Radius:    3,
			Fov:       75,
			Near:      0.1,
			Far:       1000,
			ZoomSpeed: 1,
			Bookmark:  "orbitview.pose",
		},
		Light: LightConfig{
			Radius:    3,
			Elevation: 45,
			Ambient:   [3]float32{0.2, 0.2, 0.2},
			Diffuse:   [3]float32{0.8, 0.8, 0.8},
			Specular:  [3]float32{1, 1, 1},
			ShowLamp:  true,
		},
		Mesh: MeshConfig{
			RotateX:   -90,
			Mode:      RenderTriangles,
			PointSize: 2,
		},
		Input: InputConfig{
			ZoomScale:  1,
			ScrollStep: 0.1,
		},
		Log: LogConfig{
			Level:      "info",
			File:       "orbitview.log",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Overlay: OverlayConfig{
			Enabled:  true,
			FontSize: 14,
		},
	}
}

// Load overlays the TOML file at path on the defaults. Unknown keys are an
// error so that typos do not go unnoticed.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the viewer cannot run with. Comparisons are
// written so that NaN fails them.
func (cfg *Config) Validate() error {
	switch {
	case cfg.Window.Width <= 0 || cfg.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	case !(cfg.Camera.Near > 0 && cfg.Camera.Near < cfg.Camera.Far):
		return fmt.Errorf("camera planes must satisfy 0 < near < far, got near=%v far=%v", cfg.Camera.Near, cfg.Camera.Far)
	case !(cfg.Camera.Fov > 0 && cfg.Camera.Fov < 180):
		return fmt.Errorf("camera fov must be in (0, 180), got %v", cfg.Camera.Fov)
	case !(cfg.Camera.Radius >= 0 && cfg.Light.Radius >= 0):
		return fmt.Errorf("orbit radius must not be negative")
	case !positive(cfg.Camera.ZoomSpeed):
		return fmt.Errorf("camera zoom_speed must be positive, got %v", cfg.Camera.ZoomSpeed)
	case !positive(cfg.Input.ZoomScale) || !positive(cfg.Input.ScrollStep):
		return fmt.Errorf("input zoom_scale and scroll_step must be positive, got %v and %v", cfg.Input.ZoomScale, cfg.Input.ScrollStep)
	case cfg.Mesh.Mode != RenderPoints && cfg.Mesh.Mode != RenderTriangles:
		return fmt.Errorf("unknown mesh mode %q", cfg.Mesh.Mode)
	case !(cfg.Mesh.Scale >= 0):
		return fmt.Errorf("mesh scale must not be negative, got %v", cfg.Mesh.Scale)
	case !positive(cfg.Mesh.PointSize):
		return fmt.Errorf("mesh point_size must be positive, got %v", cfg.Mesh.PointSize)
	case !(cfg.Overlay.FontSize > 0):
		return fmt.Errorf("overlay font_size must be positive, got %v", cfg.Overlay.FontSize)
	case cfg.Shaders.Vertex == "" || cfg.Shaders.Fragment == "":
		return fmt.Errorf("both shader paths are required")
	}
	return nil
}

func positive(v float32) bool {
	return v > 0 && !math.IsInf(float64(v), 1)
}

// Encode writes cfg as TOML, used to print the effective configuration.
func (cfg *Config) Encode() ([]byte, error) {
	return toml.Marshal(cfg)
}
