// Example opens a 1280x720 window and draws the fluid renderer's pixel buffer
// as a full-screen quad.
//
// Prerequisites:
//
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	cd example && go run .    # shader paths are relative to the working directory
//
// Press Escape to quit.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/fluid"
	"github.com/go-theft-auto/fluid/backend/opengl"
)

const windowTitle = "fluid"

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	vertexPath := flag.String("vert", fluid.DefaultVertexShaderPath, "vertex shader source")
	fragmentPath := flag.String("frag", fluid.DefaultFragmentShaderPath, "fragment shader source")
	strict := flag.Bool("strict", false, "exit when the shader program fails to build")
	frames := flag.Uint64("frames", 0, "quit after this many frames (0 = run until closed)")
	verify := flag.Bool("verify", false, "read back the texture after the first frame and check the fill color")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	fluid.SetVerbose(*verbose)

	window, err := opengl.OpenWindow(fluid.ScreenWidth, fluid.ScreenHeight, windowTitle)
	if err != nil {
		return err
	}
	defer window.Close()

	device := opengl.NewDevice()
	renderer := fluid.NewRenderer(device,
		fluid.WithShaderPaths(*vertexPath, *fragmentPath),
		fluid.WithStrictShaders(*strict),
	)
	if err := renderer.Init(); err != nil {
		return fmt.Errorf("renderer init: %w", err)
	}
	defer renderer.Delete()

	// The renderer ignores the camera today; it is passed for interface
	// compatibility with a camera-aware draw.
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(45),
		float32(fluid.ScreenWidth)/float32(fluid.ScreenHeight), 0.1, 100)

	last := window.Time()
	for !window.ShouldClose() {
		now := window.Time()
		dt := float32(now - last)
		last = now

		window.BeginFrame()
		renderer.DrawFrame(dt, view, proj)
		window.SwapBuffers()

		if *verify && renderer.Frames() == 1 {
			w, h := renderer.Size()
			if !device.ReadTexture(renderer.Texture(), w, h).Uniform(fluid.FillColor) {
				return fmt.Errorf("texture readback does not match fill color %v", fluid.FillColor)
			}
		}

		if *frames > 0 && renderer.Frames() >= *frames {
			break
		}
	}

	return nil
}
