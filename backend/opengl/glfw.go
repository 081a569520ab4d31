package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window owns a GLFW window with a current OpenGL 4.1 core context.
// GLFW must run on the main thread; callers lock it with runtime.LockOSThread.
type Window struct {
	window *glfw.Window
	input  *GLFWInputAdapter
}

// OpenWindow initializes GLFW and OpenGL and creates a window of the given size.
func OpenWindow(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	return &Window{
		window: window,
		input:  NewGLFWInputAdapter(window),
	}, nil
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.input.CloseRequested()
}

// BeginFrame polls events, sets the viewport to the framebuffer and clears it.
func (w *Window) BeginFrame() {
	glfw.PollEvents()

	fw, fh := w.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fw), int32(fh))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers presents the frame.
func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// Time returns seconds since GLFW was initialized.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.window.Destroy()
	glfw.Terminate()
}

// GLFWInputAdapter handles the window's keyboard input.
type GLFWInputAdapter struct {
	window *glfw.Window
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{window: window}
	window.SetKeyCallback(adapter.keyCallback)
	return adapter
}

// CloseRequested reports whether Escape was pressed or the window's close
// button was clicked.
func (a *GLFWInputAdapter) CloseRequested() bool {
	return a.window.ShouldClose()
}

func (a *GLFWInputAdapter) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		a.window.SetShouldClose(true)
	}
}
