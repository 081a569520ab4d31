package fluid_test

import (
	"errors"
	"strings"

	"github.com/go-theft-auto/fluid"
)

// mockDevice is an in-memory fluid.Device that records every call.
type mockDevice struct {
	next uint32

	failStage map[fluid.ShaderStage]string // stage -> compile log
	failLink  string

	sources  map[fluid.ShaderStage]string
	shaders  []uint32 // created shaders, in order
	attached [][2]uint32

	deletedShaders  []uint32
	deletedPrograms []uint32
	deletedTextures []uint32
	deletedMeshes   []fluid.Mesh

	textures map[uint32][]byte // last upload per texture
	uploads  int
	draws    []drawCall

	// calls logs upload and draw in the order they happened; snapshots
	// holds the bytes seen by each upload.
	calls     []string
	snapshots [][]byte
}

type drawCall struct {
	program uint32
	mesh    fluid.Mesh
	texture uint32
}

func newMockDevice() *mockDevice {
	return &mockDevice{
		failStage: make(map[fluid.ShaderStage]string),
		sources:   make(map[fluid.ShaderStage]string),
		textures:  make(map[uint32][]byte),
	}
}

func (m *mockDevice) handle() uint32 {
	m.next++
	return m.next
}

func (m *mockDevice) CompileShader(stage fluid.ShaderStage, source string) (uint32, error) {
	h := m.handle()
	m.shaders = append(m.shaders, h)
	m.sources[stage] = source
	if log, ok := m.failStage[stage]; ok {
		return h, &fluid.CompileError{Stage: stage, Log: log}
	}
	// Mimic a compiler rejecting an empty source.
	if strings.TrimSpace(source) == "" {
		return h, errors.New("0:1: syntax error: empty source")
	}
	return h, nil
}

func (m *mockDevice) LinkProgram(vertex, fragment uint32) (uint32, error) {
	h := m.handle()
	m.attached = append(m.attached, [2]uint32{vertex, fragment})
	if m.failLink != "" {
		return h, errors.New(m.failLink)
	}
	return h, nil
}

func (m *mockDevice) DeleteShader(shader uint32) {
	m.deletedShaders = append(m.deletedShaders, shader)
}

func (m *mockDevice) DeleteProgram(program uint32) {
	m.deletedPrograms = append(m.deletedPrograms, program)
}

func (m *mockDevice) CreateTexture() uint32 {
	h := m.handle()
	m.textures[h] = nil
	return h
}

func (m *mockDevice) UploadTexture(texture uint32, pb *fluid.PixelBuffer) {
	m.uploads++
	m.calls = append(m.calls, "upload")
	snap := append([]byte(nil), pb.Pix...)
	m.snapshots = append(m.snapshots, snap)
	m.textures[texture] = snap
}

func (m *mockDevice) DeleteTexture(texture uint32) {
	m.deletedTextures = append(m.deletedTextures, texture)
}

func (m *mockDevice) CreateMesh() fluid.Mesh {
	return fluid.Mesh{VAO: m.handle(), PositionVBO: m.handle(), UVVBO: m.handle(), EBO: m.handle()}
}

func (m *mockDevice) DeleteMesh(mesh fluid.Mesh) {
	m.deletedMeshes = append(m.deletedMeshes, mesh)
}

func (m *mockDevice) DrawMesh(program uint32, mesh fluid.Mesh, texture uint32) {
	m.calls = append(m.calls, "draw")
	m.draws = append(m.draws, drawCall{program: program, mesh: mesh, texture: texture})
}
