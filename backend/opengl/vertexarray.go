package opengl

import "github.com/go-gl/gl/v4.1-core/gl"

// VertexAttribute describes one field within an interleaved vertex
// record. Immutable once constructed.
type VertexAttribute struct {
	Index      uint32
	Components int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     uintptr
}

// VertexArray wraps one vertex array object capturing a buffer's
// attribute layout.
type VertexArray struct {
	handle uint32
}

// NewVertexArray generates a VAO and leaves it bound.
func NewVertexArray() *VertexArray {
	a := &VertexArray{}
	gl.GenVertexArrays(1, &a.handle)
	gl.BindVertexArray(a.handle)

	return a
}

// Bind makes the VAO current.
func (a *VertexArray) Bind() {
	gl.BindVertexArray(a.handle)
}

// SetAttributes enables and configures the given attributes against the
// currently bound array buffer.
func (a *VertexArray) SetAttributes(attributes []VertexAttribute) {
	gl.BindVertexArray(a.handle)
	for _, attr := range attributes {
		gl.EnableVertexAttribArray(attr.Index)
		gl.VertexAttribPointerWithOffset(attr.Index, attr.Components, attr.Type, attr.Normalized, attr.Stride, attr.Offset)
	}
}

// Delete releases the VAO. Safe to call more than once.
func (a *VertexArray) Delete() {
	if a.handle != 0 {
		gl.DeleteVertexArrays(1, &a.handle)
		a.handle = 0
	}
}
