package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config: %s", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Default config should be valid: %s", err)
	}
}

// TestDefaultCameraAtOrigin pins the start pose: camera at the origin, cube at the origin, pyramid behind it
func TestDefaultCameraAtOrigin(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Camera.Position != [3]float32{0, 0, 0} {
		t.Errorf("Camera should start at the origin but starts at %v", cfg.Camera.Position)
	}
	if cfg.Scene.CubePosition != [3]float32{0, 0, 0} {
		t.Errorf("Cube should be placed at the origin but is at %v", cfg.Scene.CubePosition)
	}
	if cfg.Scene.PyramidPosition != [3]float32{3, 0, -5} {
		t.Errorf("Pyramid should be placed at (3, 0, -5) but is at %v", cfg.Scene.PyramidPosition)
	}
	if cfg.Camera.Speed != 0.3 || cfg.Camera.Fov != 45 {
		t.Errorf("Camera step should be 0.3 and fov 45, got %f and %f", cfg.Camera.Speed, cfg.Camera.Fov)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("Empty path should yield defaults, got error: %s", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Empty path should yield defaults, got %+v", cfg)
	}
}

// TestLoadConfigOverlay overrides a few values and checks the rest keeps its default
func TestLoadConfigOverlay(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 1280
refresh_interval: 33ms
log_level: debug
camera:
  position: [1, 2, 3]
scene:
  pyramid_position: [-3, 1, -4]
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %s", err)
	}
	if cfg.Window.Width != 1280 || cfg.Window.Height != WINDOW_HEIGHT {
		t.Errorf("Window should be 1280x%d but is %dx%d", WINDOW_HEIGHT, cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != PROGRAM_NAME {
		t.Errorf("Title should keep its default, got '%s'", cfg.Window.Title)
	}
	if cfg.RefreshInterval != 33*time.Millisecond {
		t.Errorf("Refresh interval should be 33ms but is %v", cfg.RefreshInterval)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Log level should be debug but is %s", cfg.LogLevel)
	}
	if cfg.Camera.Position != [3]float32{1, 2, 3} {
		t.Errorf("Camera position should be [1 2 3] but is %v", cfg.Camera.Position)
	}
	if cfg.Camera.Speed != 0.3 {
		t.Errorf("Camera speed should keep its default, got %f", cfg.Camera.Speed)
	}
	if cfg.Scene.PyramidPosition != [3]float32{-3, 1, -4} {
		t.Errorf("Pyramid position should be [-3 1 -4] but is %v", cfg.Scene.PyramidPosition)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "window: [", "failed to parse"},
		{"size", "window: {width: 0}", "window size"},
		{"interval", "refresh_interval: -1s", "refresh_interval"},
		{"planes", "camera: {near: 10, far: 1}", "near < far"},
		{"level", "log_level: loud", "unknown log level"},
		{"vector", "camera: {position: [1, 2]}", "failed to parse"},
	}
	for _, tt := range tests {
		_, err := LoadConfig(writeConfig(t, tt.content))
		if err == nil {
			t.Errorf("%s: expected an error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error should mention '%s', got: %s", tt.name, tt.want, err)
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Errorf("A missing config file should be reported")
	}
}

// TestExampleConfig keeps the shipped example file in sync with DefaultConfig
func TestExampleConfig(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "scene.example.yml"))
	if err != nil {
		t.Fatalf("Example config should load: %s", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Example config should match the defaults:\n%+v\n%+v", cfg, DefaultConfig())
	}
}
