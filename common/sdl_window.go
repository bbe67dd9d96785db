package common

import (
	"fmt"
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"
)

const SDL_MAJOR, SDL_MINOR, SDL_PATCH = int(sdl.MAJOR_VERSION), int(sdl.MINOR_VERSION), int(sdl.PATCHLEVEL)

// OpenGL core profile requested from SDL. The shaders are written against '#version 330 core'.
const GL_MAJOR, GL_MINOR = 3, 3

// Window encapsulates the SDL window and the OpenGL context created for it. SDL handles window management and
// user input, the context is made current on the calling thread which therefore has to issue every GL call.
type Window struct {
	sdlVersion string
	glVersion  string

	Win       *sdl.Window
	Ctx       sdl.GLContext
	Minimized bool
	Close     bool
}

// NewWindow initializes SDL, creates a resizable window and an OpenGL core context for it. On tear down Destroy
// has to be called to release the context, the window and SDL itself.
func NewWindow(cfg WindowConfig) (*Window, error) {
	window := &Window{
		sdlVersion: fmt.Sprintf("v%d.%d.%d", SDL_MAJOR, SDL_MINOR, SDL_PATCH),
		glVersion:  fmt.Sprintf("v%d.%d core", GL_MAJOR, GL_MINOR),
	}
	if err := window.initSDLWindow(cfg.Title, cfg.Width, cfg.Height); err != nil {
		return nil, err
	}
	if err := window.createGLContext(cfg.VSync); err != nil {
		window.Destroy()
		return nil, err
	}
	slog.Info("Generated SDL/OpenGL window", "sdl", window.sdlVersion, "gl", window.glVersion)
	return window, nil
}

// Destroy tears down everything NewWindow created. Errors are logged since there is nothing left to recover.
func (w *Window) Destroy() {
	if w.Ctx != nil {
		sdl.GLDeleteContext(w.Ctx)
		w.Ctx = nil
	}
	if w.Win != nil {
		if err := w.Win.Destroy(); err != nil {
			slog.Error("Failed to destroy SDL window", "error", err)
		}
		w.Win = nil
	}
	sdl.Quit()
}

// DrawableSize returns the size of the GL drawable in pixels, which can differ from the window size on HiDPI screens.
func (w *Window) DrawableSize() (int32, int32) {
	return w.Win.GLGetDrawableSize()
}

// Swap presents the back buffer.
func (w *Window) Swap() {
	w.Win.GLSwap()
}

func (w *Window) initSDLWindow(title string, width int32, height int32) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_TIMER | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialize SDL: %w", err)
	}
	slog.Info("Initialized SDL")

	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, GL_MAJOR},
		{sdl.GL_CONTEXT_MINOR_VERSION, GL_MINOR},
		{sdl.GL_CONTEXT_PROFILE_MASK, int(sdl.GL_CONTEXT_PROFILE_CORE)},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_DEPTH_SIZE, 24},
	}
	for _, a := range attrs {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			sdl.Quit()
			return fmt.Errorf("failed to set GL attribute %d=%d: %w", a.attr, a.value, err)
		}
	}

	win, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		width,
		height,
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE|sdl.WINDOW_OPENGL,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to create SDL window for use with OpenGL: %w", err)
	}
	slog.Info("Created SDL window for use with OpenGL", "title", title, "width", width, "height", height)
	w.Win = win
	return nil
}

func (w *Window) createGLContext(vsync bool) error {
	ctx, err := w.Win.GLCreateContext()
	if err != nil {
		return fmt.Errorf("failed to create OpenGL %s context: %w", w.glVersion, err)
	}
	w.Ctx = ctx

	interval := 0
	if vsync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		// Not fatal, the refresh tick still limits the frame rate
		slog.Warn("Failed to set swap interval", "interval", interval, "error", err)
	}
	return nil
}
