package common

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const PROGRAM_NAME = "OpenGL scene"
const WINDOW_WIDTH, WINDOW_HEIGHT int32 = 800, 600
const REFRESH_INTERVAL = 16 * time.Millisecond

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

type CameraConfig struct {
	Position [3]float32 `yaml:"position"`
	Speed    float32    `yaml:"speed"`
	Fov      float32    `yaml:"fov"`
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
}

type SceneConfig struct {
	CubePosition    [3]float32 `yaml:"cube_position"`
	PyramidPosition [3]float32 `yaml:"pyramid_position"`
}

// Config holds everything that can be adjusted without recompiling. Every field has a default, a config file only
// needs to list the values it wants to change.
type Config struct {
	Window          WindowConfig  `yaml:"window"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	LogLevel        string        `yaml:"log_level"`
	Camera          CameraConfig  `yaml:"camera"`
	Scene           SceneConfig   `yaml:"scene"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  PROGRAM_NAME,
			Width:  WINDOW_WIDTH,
			Height: WINDOW_HEIGHT,
			VSync:  true,
		},
		RefreshInterval: REFRESH_INTERVAL,
		LogLevel:        "info",
		Camera: CameraConfig{
			Position: [3]float32{0, 0, 0},
			Speed:    0.3,
			Fov:      45,
			Near:     0.1,
			Far:      100,
		},
		Scene: SceneConfig{
			CubePosition:    [3]float32{0, 0, 0},
			PyramidPosition: [3]float32{3, 0, -5},
		},
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config '%s': %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config '%s': %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config '%s': %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.RefreshInterval <= 0 {
		errs = append(errs, fmt.Errorf("refresh_interval must be positive, got %v", c.RefreshInterval))
	}
	if c.Camera.Speed <= 0 {
		errs = append(errs, fmt.Errorf("camera speed must be positive, got %f", c.Camera.Speed))
	}
	if c.Camera.Fov <= 0 || c.Camera.Fov >= 180 {
		errs = append(errs, fmt.Errorf("camera fov must be in (0, 180), got %f", c.Camera.Fov))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera planes must satisfy 0 < near < far, got near=%f far=%f", c.Camera.Near, c.Camera.Far))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
