package fluid

// Full-screen quad in normalized device coordinates. Two triangles share
// vertices 1 and 3.
var (
	// QuadPositions holds 4 vertices × (x, y, z), attribute location 0.
	QuadPositions = [12]float32{
		-1, -1, 0,
		1, -1, 0,
		1, 1, 0,
		-1, 1, 0,
	}

	// QuadUVs holds 4 vertices × (u, v), attribute location 1.
	QuadUVs = [8]float32{
		0, 0,
		1, 0,
		1, 1,
		0, 1,
	}

	// QuadIndices forms the two triangles.
	QuadIndices = [6]uint32{
		0, 1, 3,
		1, 2, 3,
	}
)

// Vertex attribute locations used by the quad mesh.
const (
	PositionLocation = 0
	UVLocation       = 1
)

// Mesh holds the device handles of the quad geometry.
type Mesh struct {
	VAO         uint32
	PositionVBO uint32
	UVVBO       uint32
	EBO         uint32
}

// IsZero reports whether the mesh has no handles.
func (m Mesh) IsZero() bool {
	return m == Mesh{}
}
