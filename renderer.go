package fluid

import (
	"errors"
	"image/color"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrAlreadyInitialized is returned by Renderer.Init on a live renderer.
var ErrAlreadyInitialized = errors.New("renderer already initialized")

// Renderer fills a pixel buffer every frame and draws it as a full-screen
// textured quad.
type Renderer struct {
	dev    Device
	logger *slog.Logger

	width, height int
	vertexPath    string
	fragmentPath  string
	fill          color.RGBA
	strict        bool

	pixels  *PixelBuffer
	texture uint32
	program uint32
	mesh    Mesh

	initialized bool
	frames      uint64
}

// NewRenderer creates a renderer drawing through dev. No GPU work happens
// until Init.
func NewRenderer(dev Device, opts ...Option) *Renderer {
	r := &Renderer{
		dev:          dev,
		logger:       defaultLogger,
		width:        ScreenWidth,
		height:       ScreenHeight,
		vertexPath:   DefaultVertexShaderPath,
		fragmentPath: DefaultFragmentShaderPath,
		fill:         FillColor,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Init allocates the pixel buffer and creates the texture, shader program
// and quad mesh. Call it once, on the graphics thread, before any DrawFrame;
// after Delete it may be called again.
//
// Shader failures are logged and Init still succeeds; the program may then
// be unusable. With WithStrictShaders(true) the build error is returned
// instead, after all resources have been created.
func (r *Renderer) Init() error {
	if r.initialized {
		return ErrAlreadyInitialized
	}
	r.initialized = true

	r.pixels = NewPixelBuffer(r.width, r.height)
	r.texture = r.dev.CreateTexture()

	program, err := BuildProgram(r.dev, r.vertexPath, r.fragmentPath)
	r.program = program
	if err != nil {
		r.logBuildError(err)
	}

	r.mesh = r.dev.CreateMesh()

	r.logger.Debug("renderer initialized",
		"width", r.width, "height", r.height,
		"texture", r.texture, "program", r.program, "vao", r.mesh.VAO)

	if err != nil && r.strict {
		return err
	}
	return nil
}

// logBuildError emits one record per failure of a BuildProgram result.
func (r *Renderer) logBuildError(err error) {
	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}

	for _, e := range errs {
		var (
			fre *FileReadError
			ce  *CompileError
			le  *LinkError
		)
		switch {
		case errors.As(e, &fre):
			r.logger.Error("shader file not read", "path", fre.Path, "err", fre.Err)
		case errors.As(e, &ce):
			r.logger.Error("shader compilation failed", "stage", ce.Stage.String(), "log", ce.Log)
		case errors.As(e, &le):
			r.logger.Error("shader program linking failed", "log", le.Log)
		default:
			r.logger.Error("shader build failed", "err", e)
		}
	}
}

// DrawFrame fills the pixel buffer, uploads it and draws the quad.
//
// dt, view and proj are reserved for a camera-aware renderer; they do not
// affect the output.
func (r *Renderer) DrawFrame(dt float32, view, proj mgl32.Mat4) {
	if !r.initialized {
		r.logger.Warn("DrawFrame called on an uninitialized renderer")
		return
	}

	r.pixels.Fill(r.fill)
	r.dev.UploadTexture(r.texture, r.pixels)
	r.dev.DrawMesh(r.program, r.mesh, r.texture)
	r.frames++
}

// Pixels returns the CPU-side buffer. Callers must not modify it.
func (r *Renderer) Pixels() *PixelBuffer {
	return r.pixels
}

// Program returns the linked program handle, 0 before Init.
func (r *Renderer) Program() uint32 {
	return r.program
}

// Texture returns the texture handle, 0 before Init.
func (r *Renderer) Texture() uint32 {
	return r.texture
}

// Mesh returns the quad mesh handles.
func (r *Renderer) Mesh() Mesh {
	return r.mesh
}

// Size returns the pixel buffer resolution.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Frames returns how many frames have been drawn.
func (r *Renderer) Frames() uint64 {
	return r.frames
}

// Delete releases GPU resources. Each handle is released at most once;
// calling Delete again is a no-op. The renderer may be initialized again
// afterwards.
func (r *Renderer) Delete() {
	if r.texture != 0 {
		r.dev.DeleteTexture(r.texture)
		r.texture = 0
	}
	if !r.mesh.IsZero() {
		r.dev.DeleteMesh(r.mesh)
		r.mesh = Mesh{}
	}
	if r.program != 0 {
		r.dev.DeleteProgram(r.program)
		r.program = 0
	}
	r.pixels = nil
	r.initialized = false
}
