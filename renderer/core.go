package renderer

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bsu-mmf-2k4g2019/lab-2-milkeshaa/assets"
	com "github.com/bsu-mmf-2k4g2019/lab-2-milkeshaa/common"
	"github.com/bsu-mmf-2k4g2019/lab-2-milkeshaa/model"
	"github.com/bsu-mmf-2k4g2019/lab-2-milkeshaa/scene"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	ErrAlreadyInitialized = errors.New("render core already initialized")
	ErrNotInitialized     = errors.New("render core not initialized")
)

// Background the color buffer is cleared to each frame
var clearColor = mgl32.Vec4{0.2, 0.3, 0.3, 1.0}

// Core owns the GL context's resources and draws the scene. All methods have to be called from the thread the
// window's GL context is current on.
type Core struct {
	// OS/Window level
	Win *com.Window

	// Target level
	width, height int32

	// Drawing infrastructure level
	programs  []*Program
	textures  []*Texture
	meshes    []*GPUMesh
	drawables []*drawable

	// Frame level
	refresh     time.Duration
	redraw      bool
	setupCalled bool
	initialized bool
	now         func() time.Time

	// 3D World
	State *scene.State
}

// Externally facing functions

func NewRenderCore(win *com.Window, refresh time.Duration) *Core {
	return &Core{
		Win:     win,
		refresh: refresh,
		now:     time.Now,
	}
}

// SetScene hands the state read by every frame to the core.
func (c *Core) SetScene(s *scene.State) {
	c.State = s
}

// RequestRedraw makes the loop draw a frame as soon as the pending events are handled, without waiting for the
// next refresh tick.
func (c *Core) RequestRedraw() {
	c.redraw = true
}

// Initialize creates every GPU resource the scene needs: three meshes, two textures and three programs. It may only
// be called once, a second call returns ErrAlreadyInitialized even if the first one failed. On error all resources
// created so far are released again.
func (c *Core) Initialize() error {
	if c.setupCalled {
		return ErrAlreadyInitialized
	}
	c.setupCalled = true
	if c.State == nil {
		return errors.New("no scene state set, call SetScene before Initialize")
	}

	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to load OpenGL functions: %w", err)
	}
	slog.Info("Initialized OpenGL",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	)

	gl.Enable(gl.DEPTH_TEST)
	// RGB rows are tightly packed and not necessarily 4 Byte aligned
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	if err := c.createResources(); err != nil {
		c.release()
		return err
	}

	w, h := c.Win.DrawableSize()
	c.Resize(w, h)

	c.initialized = true
	c.redraw = true
	slog.Info("Render core initialized", "scene", c.SceneNames())
	return nil
}

func (c *Core) createResources() error {
	if err := c.createTexture(assets.ContainerTexture, bgUnit, false); err != nil {
		return err
	}
	if err := c.createTexture(assets.FaceTexture, faceUnit, true); err != nil {
		return err
	}

	for _, o := range sceneObjects {
		mesh, err := c.createMesh(o.mesh(o.name))
		if err != nil {
			return err
		}
		prog, err := c.createProgram(o.name, o.vert, o.frag)
		if err != nil {
			return err
		}
		c.AddToScene(o.name, mesh, prog, o.uniforms)
	}
	return nil
}

func (c *Core) createMesh(m *model.Mesh) (*GPUMesh, error) {
	g, err := uploadMesh(m)
	if err != nil {
		return nil, err
	}
	c.meshes = append(c.meshes, g)
	return g, nil
}

func (c *Core) createTexture(name string, unit uint32, flipY bool) error {
	t, err := loadTexture(name, unit, flipY)
	if err != nil {
		return err
	}
	c.textures = append(c.textures, t)
	return nil
}

func (c *Core) createProgram(name string, vert string, frag string) (*Program, error) {
	p, err := NewProgram(name, vert, frag)
	if err != nil {
		return nil, err
	}
	c.programs = append(c.programs, p)
	return p, nil
}

// Resize adapts the GL viewport to a new drawable size. The projection picks the aspect ratio up on the next frame.
func (c *Core) Resize(w int32, h int32) {
	c.width, c.height = w, h
	gl.Viewport(0, 0, w, h)
	slog.Debug("Viewport resized", "width", w, "height", h)
}

// DrawFrame renders one frame into the back buffer. GL errors are not checked.
func (c *Core) DrawFrame() error {
	if !c.initialized {
		return ErrNotInitialized
	}
	f := c.State.Frame(c.width, c.height, c.now())

	gl.ClearColor(clearColor[0], clearColor[1], clearColor[2], clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	for _, t := range c.textures {
		t.Bind()
	}
	for _, d := range c.drawables {
		d.draw(&f)
	}
	c.redraw = false
	return nil
}

type iterationHandler func(sdl.Event, *Core)

// Loop this function represents the event-loop for user interaction and the periodic redraw. Pending events are
// handed to ih, a frame is drawn whenever the refresh interval elapsed or a redraw was requested. Basic window
// handling is done here: no rendering while minimized, close on window 'close button' and on ESC.
func (c *Core) Loop(ih iterationHandler) error {
	if !c.initialized {
		return ErrNotInitialized
	}
	t0 := time.Now()
	frames := 0
	nextTick := t0
	c.Win.Close = false
	for !c.Win.Close {
		for event := c.waitEvent(nextTick); event != nil; event = sdl.PollEvent() {
			c.handleWindowEvent(event)
			ih(event, c)
		}
		if c.Win.Close || c.Win.Minimized {
			continue
		}
		now := time.Now()
		if c.redraw || !now.Before(nextTick) {
			if err := c.DrawFrame(); err != nil {
				return err
			}
			c.Win.Swap()
			frames++
			nextTick = now.Add(c.refresh)
		}
	}
	dt := time.Since(t0)
	slog.Info("Render loop finished", "elapsed", dt, "frames", frames, "avg_fps", float64(frames)/dt.Seconds())
	return nil
}

// waitEvent blocks until an event arrives or the next refresh tick is due. While minimized it sleeps until any
// event arrives.
func (c *Core) waitEvent(nextTick time.Time) sdl.Event {
	if c.Win.Minimized {
		return sdl.WaitEvent()
	}
	wait := time.Until(nextTick)
	if c.redraw || wait <= 0 {
		return sdl.PollEvent()
	}
	return sdl.WaitEventTimeout(int(wait / time.Millisecond))
}

func (c *Core) handleWindowEvent(event sdl.Event) {
	switch ev := event.(type) {
	case *sdl.QuitEvent:
		c.Win.Close = true
	case *sdl.WindowEvent:
		switch ev.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			w, h := c.Win.DrawableSize()
			c.Resize(w, h)
			c.RequestRedraw()
		case sdl.WINDOWEVENT_MINIMIZED:
			c.Win.Minimized = true
		case sdl.WINDOWEVENT_RESTORED:
			c.Win.Minimized = false
			c.RequestRedraw()
		}
	case *sdl.KeyboardEvent:
		if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
			c.Win.Close = true
		}
	}
}

// Destroy releases all GPU resources and tears down the window.
func (c *Core) Destroy() {
	c.release()
	c.initialized = false
	if c.Win != nil {
		c.Win.Destroy()
	}
}

// release deletes GL objects in reverse creation order.
func (c *Core) release() {
	c.ClearScene()
	for i := len(c.programs) - 1; i >= 0; i-- {
		c.programs[i].Delete()
	}
	for i := len(c.textures) - 1; i >= 0; i-- {
		c.textures[i].Destroy()
	}
	for i := len(c.meshes) - 1; i >= 0; i-- {
		c.meshes[i].Destroy()
	}
	c.programs, c.textures, c.meshes = nil, nil, nil
}
