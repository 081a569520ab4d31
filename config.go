package fluid

import (
	"image/color"
	"log/slog"
)

// Screen resolution of the render target.
const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

// Step is the render step size. Reserved; nothing reads it yet.
const Step = 1

// Pi is the float32 approximation used by ToRadians.
const Pi float32 = 3.1415926

// ToRadians converts degrees to radians. Reserved helper, no render path
// depends on it.
func ToRadians(degrees float32) float32 {
	return degrees * 2 * Pi / 360
}

// GLSLVersion is prepended to both shader stages before compilation.
const GLSLVersion = "#version 410 core\n"

// Default shader stage locations, relative to the working directory.
const (
	DefaultVertexShaderPath   = "runtime/shader/opacity.vs"
	DefaultFragmentShaderPath = "runtime/shader/opacity.fs"
)

// SamplerUniform is the fragment shader sampler bound to texture unit 0.
const SamplerUniform = "colorMap"

// FillColor is written to every texel each frame.
var FillColor = color.RGBA{R: 255, G: 255, B: 90, A: 255}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSize overrides the pixel buffer resolution.
func WithSize(width, height int) Option {
	return func(r *Renderer) {
		r.width = width
		r.height = height
	}
}

// WithShaderPaths sets the vertex and fragment source files.
func WithShaderPaths(vertexPath, fragmentPath string) Option {
	return func(r *Renderer) {
		r.vertexPath = vertexPath
		r.fragmentPath = fragmentPath
	}
}

// WithFillColor sets the color written to the pixel buffer every frame.
func WithFillColor(c color.RGBA) Option {
	return func(r *Renderer) { r.fill = c }
}

// WithLogger sets the logger that receives shader diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) { r.logger = logger }
}

// WithStrictShaders makes Init return shader build failures instead of
// logging them and continuing. Off by default.
func WithStrictShaders(strict bool) Option {
	return func(r *Renderer) { r.strict = strict }
}
