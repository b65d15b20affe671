package opengl

import "github.com/go-gl/gl/v4.1-core/gl"

// Framebuffer wraps one framebuffer object holding at most one color
// attachment, either a Texture or a Renderbuffer. Attaching a new
// attachment releases the previous one, so resizes cannot leak GPU
// memory.
type Framebuffer struct {
	handle       uint32
	width        int
	height       int
	texture      *Texture
	renderbuffer *Renderbuffer
}

// NewFramebuffer generates an empty framebuffer of the given logical
// size. An attachment must be added before rendering into it.
func NewFramebuffer(width, height int) *Framebuffer {
	f := &Framebuffer{width: width, height: height}
	gl.GenFramebuffers(1, &f.handle)
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.handle)

	return f
}

// Bind makes the framebuffer the render target and sets the viewport to
// its size.
func (f *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.handle)
	gl.Viewport(0, 0, int32(f.width), int32(f.height))
}

// BindDefault restores the visible surface as the render target.
func BindDefault(width, height int) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Width returns the logical width in pixels.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the logical height in pixels.
func (f *Framebuffer) Height() int {
	return f.height
}

// Texture returns the texture attachment, or nil when the attachment is
// a renderbuffer or absent.
func (f *Framebuffer) Texture() *Texture {
	return f.texture
}

// releaseAttachment deletes whichever attachment is present. Called
// before every attach so the framebuffer never holds two attachments.
func (f *Framebuffer) releaseAttachment() {
	if f.texture != nil {
		f.texture.Delete()
		f.texture = nil
	}
	if f.renderbuffer != nil {
		f.renderbuffer.Delete()
		f.renderbuffer = nil
	}
}

// AttachTexture makes the texture the color attachment, releasing any
// previous attachment and taking ownership of the new one.
func (f *Framebuffer) AttachTexture(texture *Texture) {
	f.releaseAttachment()
	f.texture = texture
	f.width = texture.Width()
	f.height = texture.Height()

	gl.BindFramebuffer(gl.FRAMEBUFFER, f.handle)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, texture.Handle(), 0)
}

// AttachRenderbuffer makes the renderbuffer the color attachment,
// releasing any previous attachment and taking ownership of the new one.
func (f *Framebuffer) AttachRenderbuffer(renderbuffer *Renderbuffer, width, height int) {
	f.releaseAttachment()
	f.renderbuffer = renderbuffer
	f.width = width
	f.height = height

	gl.BindFramebuffer(gl.FRAMEBUFFER, f.handle)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, renderbuffer.Handle())
}

// BlitTo copies (and resolves, when multisampled) this framebuffer's
// color into dst. Both framebuffers are unbound from the draw target
// first; the current framebuffer binding is left at dst.
func (f *Framebuffer) BlitTo(dst *Framebuffer) {
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, f.handle)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, dst.handle)
	gl.BlitFramebuffer(
		0, 0, int32(f.width), int32(f.height),
		0, 0, int32(dst.width), int32(dst.height),
		gl.COLOR_BUFFER_BIT, gl.NEAREST,
	)
	gl.BindFramebuffer(gl.FRAMEBUFFER, dst.handle)
}

// Delete releases the framebuffer and its attachment. Safe to call more
// than once.
func (f *Framebuffer) Delete() {
	f.releaseAttachment()
	if f.handle != 0 {
		gl.DeleteFramebuffers(1, &f.handle)
		f.handle = 0
	}
}
