package sandbox

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// State is the lifecycle state of an App.
type State int

const (
	StateInitializing State = iota
	StateRunning
	StateShuttingDown
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateShuttingDown:
		return "shutting down"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Window is the OS surface and GPU context the loop runs against.
type Window interface {
	ShouldClose() bool
	SwapBuffers()
	PollEvents()
	Input() *InputState
	FramebufferSize() (width, height int)
	Destroy()
}

// Renderer draws one frame and owns the GPU objects.
type Renderer interface {
	Render(f *Frame)
	Delete()
}

// Reloader is implemented by renderers that can rebuild their pipeline.
type Reloader interface {
	Reload() error
}

// ChangeNotifier reports resource changes between frames.
type ChangeNotifier interface {
	Pending() bool
	Close() error
}

// Frame is the per-frame input to a Renderer.
type Frame struct {
	Number     uint32
	Width      int
	Height     int
	ModelView  mgl32.Mat4
	Projection mgl32.Mat4
	Raster     RasterState
	ClearColor [4]float32
}

// ErrAlreadyRun is returned by Run on an App that has already run.
var ErrAlreadyRun = errors.New("sandbox: app already run")

// App drives the render loop. It is not safe for concurrent use; every
// method must be called from the thread that owns the GPU context.
type App struct {
	cfg        Config
	window     Window
	renderer   Renderer
	notifier   ChangeNotifier
	controller *Controller

	state      State
	frame      uint32
	modelView  mgl32.Mat4
	projection mgl32.Mat4
	width      int
	height     int
}

// NewApp creates an App in the Initializing state. The window and renderer
// must already be bootstrapped.
func NewApp(cfg Config, window Window, renderer Renderer) *App {
	a := &App{
		cfg:       cfg,
		window:    window,
		renderer:  renderer,
		state:     StateInitializing,
		modelView: cfg.InitialTransform(),
	}
	if cfg.Mode == UpdateInput {
		a.controller = NewController(a.modelView, cfg.Bindings)
	}
	return a
}

// SetNotifier attaches a change notifier whose events trigger a pipeline
// reload at the next iteration boundary. The App closes it on shutdown.
func (a *App) SetNotifier(n ChangeNotifier) {
	a.notifier = n
}

// State returns the current lifecycle state.
func (a *App) State() State { return a.state }

// FrameCount returns how many frames have been presented.
func (a *App) FrameCount() uint32 { return a.frame }

// Controller returns the keyboard controller, or nil outside UpdateInput mode.
func (a *App) Controller() *Controller { return a.controller }

// Run enters the render loop and returns once the window reports a close
// request and all resources are released.
func (a *App) Run() error {
	if a.state != StateInitializing {
		return ErrAlreadyRun
	}
	a.setState(StateRunning)

	for !a.window.ShouldClose() {
		a.step()
	}

	a.shutdown()
	return nil
}

// step runs a single iteration: update, draw, present, poll.
func (a *App) step() {
	if a.notifier != nil && a.notifier.Pending() {
		a.reload()
	}

	input := a.window.Input()
	f := a.update(input)
	a.renderer.Render(&f)
	a.window.SwapBuffers()

	input.Reset()
	a.window.PollEvents()
	a.frame++
}

// update computes the frame state from the current input.
func (a *App) update(input *InputState) Frame {
	w, h := a.window.FramebufferSize()
	if w != a.width || h != a.height {
		a.width, a.height = w, h
		a.projection = Projection(w, h)
		logger.Debug("framebuffer resized", "width", w, "height", h)
	}

	switch a.cfg.Mode {
	case UpdateAnimate:
		a.modelView = AnimateModelView(a.frame)
	case UpdateInput:
		a.modelView = a.controller.Update(input, a.cfg.FrameStep)
	}

	raster := FillState
	if a.cfg.XRayKey != KeyNone {
		raster = RasterFor(input.KeyDown(a.cfg.XRayKey))
	}

	return Frame{
		Number:     a.frame,
		Width:      a.width,
		Height:     a.height,
		ModelView:  a.modelView,
		Projection: a.projection,
		Raster:     raster,
		ClearColor: a.cfg.ClearColor,
	}
}

func (a *App) reload() {
	r, ok := a.renderer.(Reloader)
	if !ok {
		return
	}
	if err := r.Reload(); err != nil {
		logger.Warn("pipeline reload failed, keeping previous program", "err", err)
		return
	}
	logger.Info("pipeline reloaded", "frame", a.frame)
}

func (a *App) shutdown() {
	a.setState(StateShuttingDown)
	if a.notifier != nil {
		if err := a.notifier.Close(); err != nil {
			logger.Warn("close watcher", "err", err)
		}
	}
	a.renderer.Delete()
	a.window.Destroy()
}

func (a *App) setState(s State) {
	logger.Info("state", "from", a.state.String(), "to", s.String(), "frames", a.frame)
	a.state = s
}
