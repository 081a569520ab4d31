/*
Package fluid provides the rendering scaffold of a grid-based fluid viewer:
a CPU-side RGBA pixel buffer that is uploaded every frame into a texture and
drawn as a full-screen quad.

There is no simulation yet. Every frame the buffer is filled with FillColor,
so the screen shows a single flat color.

# Quick Start

	// On the thread that owns the GL context, after gl.Init():
	r := fluid.NewRenderer(opengl.NewDevice())
	if err := r.Init(); err != nil {
	    return err
	}
	defer r.Delete()

	for !window.ShouldClose() {
	    r.DrawFrame(dt, view, proj)
	    window.SwapBuffers()
	}

# Shader Build

Init reads the vertex and fragment stage sources (DefaultVertexShaderPath,
DefaultFragmentShaderPath), prepends GLSLVersion, compiles both stages and
links them. Failures do not stop initialization: each one is logged and the
renderer keeps going with whatever handle the driver produced. BuildProgram
returns the same failures as a joined error of *FileReadError,
*CompileError and *LinkError values for callers that want to decide for
themselves; WithStrictShaders makes Init return it.

# Draw Contract

DrawFrame performs, in order:

 1. fill every texel with the fill color
 2. replace the texture contents (linear filter, repeat wrap)
 3. bind the program, quad and texture unit 0, set the colorMap sampler,
    disable depth testing and draw 6 uint32 indices

The delta time and the view/projection matrices are accepted but unused.

# Backends

The Device interface isolates the GPU API. backend/opengl implements it on
OpenGL 4.1 core. Tests use an in-memory fake.
*/
package fluid
