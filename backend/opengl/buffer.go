package opengl

import "github.com/go-gl/gl/v4.1-core/gl"

// Buffer wraps one GL buffer object.
type Buffer struct {
	handle uint32
	target uint32
}

// NewBuffer generates a buffer for the given target (gl.ARRAY_BUFFER)
// and leaves it bound.
func NewBuffer(target uint32) *Buffer {
	b := &Buffer{target: target}
	gl.GenBuffers(1, &b.handle)
	gl.BindBuffer(target, b.handle)

	return b
}

// Bind makes the buffer current on its target.
func (b *Buffer) Bind() {
	gl.BindBuffer(b.target, b.handle)
}

// Allocate reserves size bytes of uninitialized storage with the given
// usage hint.
func (b *Buffer) Allocate(size int, usage uint32) {
	gl.BindBuffer(b.target, b.handle)
	gl.BufferData(b.target, size, nil, usage)
}

// SetSubData uploads vertex data into the front of the buffer without
// reallocating storage.
func (b *Buffer) SetSubData(data []float32) {
	gl.BindBuffer(b.target, b.handle)
	gl.BufferSubData(b.target, 0, len(data)*4, gl.Ptr(data))
}

// Delete releases the buffer. Safe to call more than once.
func (b *Buffer) Delete() {
	if b.handle != 0 {
		gl.DeleteBuffers(1, &b.handle)
		b.handle = 0
	}
}
