// Package opengl provides the OpenGL 4.1 backend for the game: thin
// wrappers owning one GPU handle each, the mesh used by the batching
// renderer, the multi-pass bloom pipeline and the GLFW platform glue.
//
// Every wrapper follows the same lifetime contract: the constructor
// allocates the resource and leaves it bound in a known state, Delete
// releases it exactly once and resets the handle to zero so repeated
// calls are safe no-ops. Ownership is single and explicit; nothing here
// is garbage collected.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Shader wraps one compiled shader stage.
type Shader struct {
	handle uint32
}

// NewShader compiles GLSL source for the given stage (gl.VERTEX_SHADER
// or gl.FRAGMENT_SHADER). Compilation failure is unrecoverable at this
// layer: the returned error carries the driver's info log and the caller
// must abort initialization.
func NewShader(stage uint32, source string) (*Shader, error) {
	handle := gl.CreateShader(stage)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(handle, logLength, nil, &log[0])
		gl.DeleteShader(handle)
		return nil, fmt.Errorf("shader compilation failed: %s", log)
	}

	return &Shader{handle: handle}, nil
}

// Delete releases the shader. Safe to call more than once.
func (s *Shader) Delete() {
	if s.handle != 0 {
		gl.DeleteShader(s.handle)
		s.handle = 0
	}
}

// ShaderProgram wraps a linked vertex + fragment program and caches its
// uniform locations.
type ShaderProgram struct {
	handle   uint32
	uniforms map[string]int32
}

// NewShaderProgram compiles both stages and links them. Link failure is
// fatal in the same way as compilation failure. The stage shaders are
// released once linked.
func NewShaderProgram(vertexSource, fragmentSource string) (*ShaderProgram, error) {
	vertex, err := NewShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return nil, fmt.Errorf("vertex: %w", err)
	}
	defer vertex.Delete()

	fragment, err := NewShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("fragment: %w", err)
	}
	defer fragment.Delete()

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vertex.handle)
	gl.AttachShader(handle, fragment.handle)
	gl.LinkProgram(handle)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(handle, logLength, nil, &log[0])
		gl.DeleteProgram(handle)
		return nil, fmt.Errorf("shader program linking failed: %s", log)
	}

	return &ShaderProgram{
		handle:   handle,
		uniforms: make(map[string]int32),
	}, nil
}

// Use makes this program current.
func (p *ShaderProgram) Use() {
	gl.UseProgram(p.handle)
}

// UniformLocation returns the cached location of a named uniform.
func (p *ShaderProgram) UniformLocation(name string) int32 {
	if location, ok := p.uniforms[name]; ok {
		return location
	}

	location := gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
	p.uniforms[name] = location
	return location
}

// SetUniform1i sets an int (or sampler unit) uniform.
func (p *ShaderProgram) SetUniform1i(name string, value int32) {
	gl.Uniform1i(p.UniformLocation(name), value)
}

// SetUniform1f sets a float uniform.
func (p *ShaderProgram) SetUniform1f(name string, value float32) {
	gl.Uniform1f(p.UniformLocation(name), value)
}

// SetUniformMatrix4 sets a mat4 uniform from column-major data.
func (p *ShaderProgram) SetUniformMatrix4(name string, matrix *float32) {
	gl.UniformMatrix4fv(p.UniformLocation(name), 1, false, matrix)
}

// Delete releases the program. Safe to call more than once.
func (p *ShaderProgram) Delete() {
	if p.handle != 0 {
		gl.DeleteProgram(p.handle)
		p.handle = 0
	}
}
