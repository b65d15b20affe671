package opengl

import "github.com/go-gl/gl/v4.1-core/gl"

// Renderbuffer wraps one renderbuffer object, used as the multisampled
// color attachment of the scene framebuffer.
type Renderbuffer struct {
	handle uint32
}

// NewRenderbuffer allocates RGBA8 storage of the given size. With
// samples > 0 the storage is multisampled.
func NewRenderbuffer(width, height, samples int) *Renderbuffer {
	r := &Renderbuffer{}
	gl.GenRenderbuffers(1, &r.handle)
	gl.BindRenderbuffer(gl.RENDERBUFFER, r.handle)
	if samples > 0 {
		gl.RenderbufferStorageMultisample(gl.RENDERBUFFER, int32(samples), gl.RGBA8, int32(width), int32(height))
	} else {
		gl.RenderbufferStorage(gl.RENDERBUFFER, gl.RGBA8, int32(width), int32(height))
	}
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	return r
}

// Handle returns the underlying GL name.
func (r *Renderbuffer) Handle() uint32 {
	return r.handle
}

// Delete releases the renderbuffer. Safe to call more than once.
func (r *Renderbuffer) Delete() {
	if r.handle != 0 {
		gl.DeleteRenderbuffers(1, &r.handle)
		r.handle = 0
	}
}
