package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/VVatashi/nubik"
)

// Window owns the GLFW window, the GL context and the keyboard state
// adapter. The caller must lock the main OS thread before creating one.
type Window struct {
	window *glfw.Window
	input  *nubik.InputState
}

// NewWindow initializes GLFW, creates a 4.1 core profile context and
// initializes OpenGL.
func NewWindow(width, height int, title string, vsync bool) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	w := &Window{
		window: window,
		input:  nubik.NewInputState(),
	}
	window.SetKeyCallback(w.keyCallback)

	return w, nil
}

// Input returns the keyboard state polled by the game logic.
func (w *Window) Input() *nubik.InputState {
	return w.input
}

// FramebufferSize returns the drawable surface size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

// SetResizeCallback registers a framebuffer-size callback.
func (w *Window) SetResizeCallback(fn func(width, height int)) {
	w.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(width, height)
	})
}

// ShouldClose reports whether the user requested closing the window.
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

// Poll processes pending window events.
func (w *Window) Poll() {
	glfw.PollEvents()
}

// Swap presents the rendered frame.
func (w *Window) Swap() {
	w.window.SwapBuffers()
}

// Time returns seconds since GLFW initialization.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// Terminate destroys the window and shuts GLFW down.
func (w *Window) Terminate() {
	w.window.Destroy()
	glfw.Terminate()
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	gameKey := glfwKeyToGameKey(key)
	if gameKey == nubik.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		w.input.SetKey(gameKey, true)
	case glfw.Release:
		w.input.SetKey(gameKey, false)
	}
}

// glfwKeyToGameKey maps GLFW keys to game keys.
func glfwKeyToGameKey(key glfw.Key) nubik.Key {
	switch key {
	case glfw.KeyLeft, glfw.KeyA:
		return nubik.KeyLeft
	case glfw.KeyRight, glfw.KeyD:
		return nubik.KeyRight
	case glfw.KeyUp, glfw.KeyW:
		return nubik.KeyUp
	case glfw.KeyDown, glfw.KeyS:
		return nubik.KeyDown
	case glfw.KeySpace:
		return nubik.KeySpace
	case glfw.KeyEscape:
		return nubik.KeyEscape
	default:
		return nubik.KeyNone
	}
}
