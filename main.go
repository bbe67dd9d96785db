package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/bsu-mmf-2k4g2019/lab-2-milkeshaa/common"
	"github.com/bsu-mmf-2k4g2019/lab-2-milkeshaa/model"
	"github.com/bsu-mmf-2k4g2019/lab-2-milkeshaa/renderer"
	"github.com/bsu-mmf-2k4g2019/lab-2-milkeshaa/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	// SDL and the GL context have to stay on the main thread
	runtime.LockOSThread()
}

var sdlKeys = map[sdl.Keycode]scene.Key{
	sdl.K_SPACE: scene.KeySpace,
	sdl.K_w:     scene.KeyW,
	sdl.K_a:     scene.KeyA,
	sdl.K_s:     scene.KeyS,
	sdl.K_d:     scene.KeyD,
}

// heldButtons converts an SDL button state mask into scene buttons.
func heldButtons(state uint32) scene.Button {
	var b scene.Button
	if state&(1<<(sdl.BUTTON_LEFT-1)) != 0 {
		b |= scene.ButtonLeft
	}
	if state&(1<<(sdl.BUTTON_RIGHT-1)) != 0 {
		b |= scene.ButtonRight
	}
	return b
}

func onIteration(ctrl *scene.Controller) func(sdl.Event, *renderer.Core) {
	return func(event sdl.Event, c *renderer.Core) {
		switch ev := event.(type) {
		case *sdl.MouseButtonEvent:
			if ev.State == sdl.PRESSED {
				ctrl.MousePress(ev.X, ev.Y)
			}
		case *sdl.MouseMotionEvent:
			ctrl.MouseMove(ev.X, ev.Y, heldButtons(ev.State))
		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN {
				return
			}
			if k, ok := sdlKeys[ev.Keysym.Sym]; ok {
				ctrl.KeyPress(k)
			}
		}
	}
}

func vec3(v [3]float32) mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[1], v[2]}
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error), overrides the config file")
	flag.Parse()

	cfg, err := common.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	logger, err := common.NewLogger(cfg.LogLevel, os.Stdout)
	if err != nil {
		slog.Error("Failed to create logger", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)
	slog.Info("Starting scene renderer", "go", runtime.Version(), "config", *configPath)

	cam := model.NewCamera(cfg.Camera.Fov, cfg.Camera.Near, cfg.Camera.Far)
	cam.Pos = vec3(cfg.Camera.Position)
	cam.Speed = cfg.Camera.Speed

	win, err := common.NewWindow(cfg.Window)
	if err != nil {
		slog.Error("Failed to create window", "error", err)
		os.Exit(1)
	}

	core := renderer.NewRenderCore(win, cfg.RefreshInterval)
	state := scene.NewState(cam, vec3(cfg.Scene.CubePosition), vec3(cfg.Scene.PyramidPosition), core.RequestRedraw)
	state.Orientation.OnRotationChanged(func(axis scene.Axis, angle int) {
		slog.Debug("Rotation changed", "axis", axis, "angle", angle)
	})
	core.SetScene(state)

	if err := core.Initialize(); err != nil {
		slog.Error("Failed to initialize render core", "error", err)
		core.Destroy()
		os.Exit(1)
	}

	err = core.Loop(onIteration(scene.NewController(state)))
	core.Destroy()
	if err != nil {
		slog.Error("Render loop failed", "error", err)
		os.Exit(1)
	}
}
