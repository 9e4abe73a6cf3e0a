package opengl

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/sandbox"
)

// Window wraps a GLFW window and implements sandbox.Window.
type Window struct {
	win   *glfw.Window
	input *GLFWInputAdapter
}

// NewWindow creates a window with a current OpenGL 4.6 core context and
// vsync enabled. glfw.Init must already have succeeded.
func NewWindow(cfg sandbox.Config) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.DebugOutput {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	return &Window{win: win, input: NewGLFWInputAdapter(win)}, nil
}

func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }
func (w *Window) SwapBuffers()      { w.win.SwapBuffers() }
func (w *Window) PollEvents()       { glfw.PollEvents() }

// Input returns the keyboard state collected by the key callback.
func (w *Window) Input() *sandbox.InputState { return w.input.Input() }

// FramebufferSize returns the framebuffer size in pixels.
func (w *Window) FramebufferSize() (int, int) { return w.win.GetFramebufferSize() }

// Destroy destroys the window and its context.
func (w *Window) Destroy() {
	if w.win != nil {
		w.win.Destroy()
		w.win = nil
	}
}

// GLFWInputAdapter adapts GLFW key events to sandbox.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *sandbox.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  sandbox.NewInputState(),
	}
	window.SetKeyCallback(adapter.keyCallback)
	window.SetFocusCallback(adapter.focusCallback)
	return adapter
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *sandbox.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToSandboxKey(key)
	if k == sandbox.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

// focusCallback releases every key when the window loses focus, since the
// release events will be delivered to another window.
func (a *GLFWInputAdapter) focusCallback(w *glfw.Window, focused bool) {
	if focused {
		return
	}
	for k := sandbox.KeyNone + 1; k < sandbox.KeyCount; k++ {
		a.input.SetKey(k, false)
	}
}

// glfwKeyToSandboxKey maps GLFW keys to sandbox keys.
func glfwKeyToSandboxKey(key glfw.Key) sandbox.Key {
	switch key {
	case glfw.KeyW:
		return sandbox.KeyW
	case glfw.KeyA:
		return sandbox.KeyA
	case glfw.KeyS:
		return sandbox.KeyS
	case glfw.KeyD:
		return sandbox.KeyD
	case glfw.KeyUp:
		return sandbox.KeyUp
	case glfw.KeyDown:
		return sandbox.KeyDown
	case glfw.KeyLeft:
		return sandbox.KeyLeft
	case glfw.KeyRight:
		return sandbox.KeyRight
	case glfw.KeyR:
		return sandbox.KeyR
	case glfw.KeyF:
		return sandbox.KeyF
	case glfw.KeyX:
		return sandbox.KeyX
	default:
		return sandbox.KeyNone
	}
}
