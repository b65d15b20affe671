package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/VVatashi/nubik"
)

// SpriteVertexAttributes returns the fixed interleaved layout every
// draw call issued through the batching renderer uses: position.xy,
// texCoord.xy, color.rgba as float32.
func SpriteVertexAttributes() []VertexAttribute {
	return []VertexAttribute{
		{Index: 0, Components: 2, Type: gl.FLOAT, Stride: nubik.VertexStride, Offset: 0},
		{Index: 1, Components: 2, Type: gl.FLOAT, Stride: nubik.VertexStride, Offset: 2 * 4},
		{Index: 2, Components: 4, Type: gl.FLOAT, Stride: nubik.VertexStride, Offset: 4 * 4},
	}
}

// Mesh couples a dynamic vertex buffer with its attribute layout into a
// drawable unit. It implements nubik.Mesh: the batching renderer uploads
// the used sub-range and issues one draw call per flush.
type Mesh struct {
	buffer *Buffer
	array  *VertexArray
	stride int32
}

// NewMesh allocates a dynamic vertex buffer sized for capacity vertices
// of the given layout.
func NewMesh(capacity int, attributes []VertexAttribute) *Mesh {
	m := &Mesh{
		array:  NewVertexArray(),
		stride: attributes[0].Stride,
	}
	m.buffer = NewBuffer(gl.ARRAY_BUFFER)
	m.buffer.Allocate(capacity*int(m.stride), gl.DYNAMIC_DRAW)
	m.array.SetAttributes(attributes)
	gl.BindVertexArray(0)

	return m
}

// NewMeshWithData allocates a static mesh pre-filled with vertices, used
// for the fullscreen post-processing quad.
func NewMeshWithData(vertices []float32, attributes []VertexAttribute) *Mesh {
	m := &Mesh{
		array:  NewVertexArray(),
		stride: attributes[0].Stride,
	}
	m.buffer = NewBuffer(gl.ARRAY_BUFFER)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	m.array.SetAttributes(attributes)
	gl.BindVertexArray(0)

	return m
}

// Update uploads vertex data into the front of the buffer.
func (m *Mesh) Update(vertices []float32) {
	m.array.Bind()
	m.buffer.SetSubData(vertices)
}

// Draw issues one draw call covering count vertices.
func (m *Mesh) Draw(count int) {
	m.array.Bind()
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))
}

// Delete releases the buffer and VAO. Safe to call more than once.
func (m *Mesh) Delete() {
	m.buffer.Delete()
	m.array.Delete()
}
