// Package opengl provides an OpenGL 4.1 backend for the fluid renderer.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/fluid"
)

// Device implements fluid.Device using OpenGL.
// A GL context must be current and gl.Init must have succeeded.
type Device struct {
	samplerLocs map[uint32]int32
}

// NewDevice creates a new OpenGL device.
func NewDevice() *Device {
	return &Device{samplerLocs: make(map[uint32]int32)}
}

var _ fluid.Device = (*Device)(nil)

// CompileShader creates and compiles a single stage.
func (d *Device) CompileShader(stage fluid.ShaderStage, source string) (uint32, error) {
	var kind uint32
	switch stage {
	case fluid.StageVertex:
		kind = gl.VERTEX_SHADER
	case fluid.StageFragment:
		kind = gl.FRAGMENT_SHADER
	default:
		return 0, fmt.Errorf("unknown shader stage %d", stage)
	}

	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		return shader, &fluid.CompileError{Stage: stage, Log: infoLog(logLength, func(n int32, buf *uint8) {
			gl.GetShaderInfoLog(shader, n, nil, buf)
		})}
	}

	return shader, nil
}

// LinkProgram links two compiled stages into a program.
func (d *Device) LinkProgram(vertex, fragment uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		return program, &fluid.LinkError{Log: infoLog(logLength, func(n int32, buf *uint8) {
			gl.GetProgramInfoLog(program, n, nil, buf)
		})}
	}

	d.samplerLocs[program] = gl.GetUniformLocation(program, gl.Str(fluid.SamplerUniform+"\x00"))
	return program, nil
}

// infoLog reads a driver log of the given length and strips the trailing NUL.
func infoLog(length int32, read func(n int32, buf *uint8)) string {
	if length <= 0 {
		return ""
	}
	log := make([]byte, length+1)
	read(length, &log[0])
	return trimLog(log)
}

func trimLog(log []byte) string {
	for i, b := range log {
		if b == 0 {
			return string(log[:i])
		}
	}
	return string(log)
}

// DeleteShader releases a stage object.
func (d *Device) DeleteShader(shader uint32) {
	if shader != 0 {
		gl.DeleteShader(shader)
	}
}

// DeleteProgram releases a program object.
func (d *Device) DeleteProgram(program uint32) {
	if program != 0 {
		delete(d.samplerLocs, program)
		gl.DeleteProgram(program)
	}
}

// CreateTexture generates an empty texture name.
func (d *Device) CreateTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	return tex
}

// UploadTexture replaces the whole texture with pb.
func (d *Device) UploadTexture(texture uint32, pb *fluid.PixelBuffer) {
	if pb == nil || pb.Len() == 0 {
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(pb.Width), int32(pb.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pb.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// ReadTexture reads back the texture contents as RGBA8.
func (d *Device) ReadTexture(texture uint32, width, height int) *fluid.PixelBuffer {
	pb := fluid.NewPixelBuffer(width, height)
	if pb.Len() == 0 {
		return pb
	}
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 4)
	gl.GetTexImage(gl.TEXTURE_2D, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pb.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return pb
}

// DeleteTexture releases a texture.
func (d *Device) DeleteTexture(texture uint32) {
	if texture != 0 {
		gl.DeleteTextures(1, &texture)
	}
}

// CreateMesh uploads the quad geometry into a VAO with separate position
// and UV buffers and an index buffer.
func (d *Device) CreateMesh() fluid.Mesh {
	var m fluid.Mesh

	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)

	// The element buffer binding is recorded in the VAO.
	gl.GenBuffers(1, &m.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(fluid.QuadIndices)*int(unsafe.Sizeof(uint32(0))),
		gl.Ptr(&fluid.QuadIndices[0]), gl.STATIC_DRAW)

	floatSize := int(unsafe.Sizeof(float32(0)))

	gl.GenBuffers(1, &m.PositionVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.PositionVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(fluid.QuadPositions)*floatSize,
		gl.Ptr(&fluid.QuadPositions[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(fluid.PositionLocation, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(fluid.PositionLocation)

	gl.GenBuffers(1, &m.UVVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.UVVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(fluid.QuadUVs)*floatSize,
		gl.Ptr(&fluid.QuadUVs[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(fluid.UVLocation, 2, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(fluid.UVLocation)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return m
}

// DeleteMesh releases the quad buffers and vertex array.
func (d *Device) DeleteMesh(m fluid.Mesh) {
	if m.EBO != 0 {
		gl.DeleteBuffers(1, &m.EBO)
	}
	if m.UVVBO != 0 {
		gl.DeleteBuffers(1, &m.UVVBO)
	}
	if m.PositionVBO != 0 {
		gl.DeleteBuffers(1, &m.PositionVBO)
	}
	if m.VAO != 0 {
		gl.DeleteVertexArrays(1, &m.VAO)
	}
}

// DrawMesh draws the quad as two indexed triangles.
func (d *Device) DrawMesh(program uint32, m fluid.Mesh, texture uint32) {
	gl.UseProgram(program)
	gl.BindVertexArray(m.VAO)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	loc, ok := d.samplerLocs[program]
	if !ok {
		loc = gl.GetUniformLocation(program, gl.Str(fluid.SamplerUniform+"\x00"))
	}
	gl.Uniform1i(loc, 0)

	gl.Disable(gl.DEPTH_TEST)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(fluid.QuadIndices)), gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}
