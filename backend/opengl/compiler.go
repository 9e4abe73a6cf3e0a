package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/go-theft-auto/sandbox"
)

var shaderTypes = map[sandbox.StageKind]uint32{
	sandbox.StageVertex:         gl.VERTEX_SHADER,
	sandbox.StageTessControl:    gl.TESS_CONTROL_SHADER,
	sandbox.StageTessEvaluation: gl.TESS_EVALUATION_SHADER,
	sandbox.StageGeometry:       gl.GEOMETRY_SHADER,
	sandbox.StageFragment:       gl.FRAGMENT_SHADER,
	sandbox.StageCompute:        gl.COMPUTE_SHADER,
}

// Compiler implements sandbox.ShaderCompiler on the current GL context.
type Compiler struct{}

// CompileShader creates and compiles a shader object of the given kind.
func (Compiler) CompileShader(kind sandbox.StageKind, source string) (uint32, string, bool) {
	xtype, ok := shaderTypes[kind]
	if !ok {
		return 0, fmt.Sprintf("unsupported stage kind %s", kind), false
	}

	shader := gl.CreateShader(xtype)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		return shader, infoLog(logLength, func(n int32, buf *uint8) {
			gl.GetShaderInfoLog(shader, n, nil, buf)
		}), false
	}
	return shader, "", true
}

// CreateProgram creates an empty program object.
func (Compiler) CreateProgram() uint32 {
	return gl.CreateProgram()
}

// AttachShader attaches a compiled shader to a program.
func (Compiler) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

// LinkProgram links a program and reports the link status.
func (Compiler) LinkProgram(program uint32) (string, bool) {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		return infoLog(logLength, func(n int32, buf *uint8) {
			gl.GetProgramInfoLog(program, n, nil, buf)
		}), false
	}
	return "", true
}

// DeleteShader flags a shader object for deletion.
func (Compiler) DeleteShader(shader uint32) {
	if shader != 0 {
		gl.DeleteShader(shader)
	}
}

// DeleteProgram deletes a program object.
func (Compiler) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func infoLog(length int32, read func(n int32, buf *uint8)) string {
	if length <= 0 {
		return ""
	}
	log := make([]byte, length+1)
	read(length, &log[0])
	return strings.TrimRight(string(log), "\x00\n")
}
