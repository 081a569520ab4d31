package fluid

import (
	"errors"
	"fmt"
	"os"
)

// FileReadError reports a shader source file that could not be read.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("read shader %q: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// CompileError carries the compiler diagnostic of a failed stage.
type CompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

// LinkError carries the linker diagnostic of a failed program.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader program linking failed: %s", e.Log)
}

// ShaderSource holds the ready-to-compile text of both stages.
type ShaderSource struct {
	Vertex   string
	Fragment string
}

// LoadShaderSource reads both stage files and prepends GLSLVersion to each.
// If either file cannot be read, both sources are left empty and a
// *FileReadError for the first failing path is returned.
func LoadShaderSource(vertexPath, fragmentPath string) (ShaderSource, error) {
	vs, err := os.ReadFile(vertexPath)
	if err != nil {
		return ShaderSource{}, &FileReadError{Path: vertexPath, Err: err}
	}
	fs, err := os.ReadFile(fragmentPath)
	if err != nil {
		return ShaderSource{}, &FileReadError{Path: fragmentPath, Err: err}
	}
	return ShaderSource{
		Vertex:   GLSLVersion + string(vs),
		Fragment: GLSLVersion + string(fs),
	}, nil
}

// BuildProgram loads, compiles and links a program from two source files.
//
// It never stops early: a read failure continues with empty sources, a
// failed stage is still attached and linked. The program handle is returned
// in every case together with every failure joined in the order it
// occurred; a nil error means the program is usable. Callers pick failures
// apart with errors.As.
func BuildProgram(dev Device, vertexPath, fragmentPath string) (uint32, error) {
	var errs []error

	src, err := LoadShaderSource(vertexPath, fragmentPath)
	if err != nil {
		errs = append(errs, err)
	}

	vertex, err := dev.CompileShader(StageVertex, src.Vertex)
	if err != nil {
		errs = append(errs, asCompileError(StageVertex, err))
	}
	fragment, err := dev.CompileShader(StageFragment, src.Fragment)
	if err != nil {
		errs = append(errs, asCompileError(StageFragment, err))
	}

	program, err := dev.LinkProgram(vertex, fragment)
	if err != nil {
		errs = append(errs, asLinkError(err))
	}

	// Stages are owned by the program once linked.
	dev.DeleteShader(vertex)
	dev.DeleteShader(fragment)

	return program, errors.Join(errs...)
}

func asCompileError(stage ShaderStage, err error) error {
	var ce *CompileError
	if errors.As(err, &ce) {
		return err
	}
	return &CompileError{Stage: stage, Log: err.Error()}
}

func asLinkError(err error) error {
	var le *LinkError
	if errors.As(err, &le) {
		return err
	}
	return &LinkError{Log: err.Error()}
}
