package fluid

// ShaderStage identifies a single compilable unit of a program.
type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StageFragment
)

// String returns the stage name used in diagnostics.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Device is the GPU API surface the renderer draws through.
// All methods must be called on the thread that owns the graphics context.
//
// CompileShader and LinkProgram return the created handle even when they
// also return an error, matching the graphics API: the object exists, it is
// just unusable.
type Device interface {
	CompileShader(stage ShaderStage, source string) (uint32, error)
	LinkProgram(vertex, fragment uint32) (uint32, error)
	DeleteShader(shader uint32)
	DeleteProgram(program uint32)

	CreateTexture() uint32
	// UploadTexture replaces the full texture contents with pb and sets
	// linear filtering and repeat wrapping.
	UploadTexture(texture uint32, pb *PixelBuffer)
	DeleteTexture(texture uint32)

	// CreateMesh uploads QuadPositions, QuadUVs and QuadIndices.
	CreateMesh() Mesh
	DeleteMesh(m Mesh)

	// DrawMesh draws the quad with program, sampling texture on unit 0.
	DrawMesh(program uint32, m Mesh, texture uint32)
}
