package opengl

import "github.com/go-gl/gl/v4.1-core/gl"

// Texture parameter shorthands for callers outside this package.
const (
	TextureMinFilter = gl.TEXTURE_MIN_FILTER
	TextureMagFilter = gl.TEXTURE_MAG_FILTER
	FilterNearest    = gl.NEAREST
	FilterLinear     = gl.LINEAR
)

// Texture wraps one 2D texture. Construction allocates storage only;
// pixel data is uploaded separately through SetImage.
type Texture struct {
	handle uint32
	width  int32
	height int32
	msdf   bool
}

// TextureOption configures a new texture.
type TextureOption func(*Texture)

// WithMSDF marks the texture as a multi-channel signed-distance-field
// atlas. The scene shader samples it through the distance-field path
// instead of plain color modulation.
func WithMSDF() TextureOption {
	return func(t *Texture) {
		t.msdf = true
	}
}

// NewTexture allocates RGBA8 storage of the given size and leaves the
// texture bound with clamp-to-edge wrapping and linear filtering.
func NewTexture(width, height int, opts ...TextureOption) *Texture {
	t := &Texture{width: int32(width), height: int32(height)}
	for _, opt := range opts {
		opt(t)
	}

	gl.GenTextures(1, &t.handle)
	gl.BindTexture(gl.TEXTURE_2D, t.handle)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, t.width, t.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	return t
}

// Bind makes the texture current on the active unit.
func (t *Texture) Bind() {
	gl.BindTexture(gl.TEXTURE_2D, t.handle)
}

// Handle returns the underlying GL name.
func (t *Texture) Handle() uint32 {
	return t.handle
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int {
	return int(t.width)
}

// Height returns the texture height in pixels.
func (t *Texture) Height() int {
	return int(t.height)
}

// MSDF reports whether the texture is a distance-field atlas.
func (t *Texture) MSDF() bool {
	return t.msdf
}

// SetImage uploads pixel data and upgrades filtering to mipmapped
// trilinear, generating mipmaps. Callers that need pixel-perfect
// sampling override the filter afterward via SetParameter.
func (t *Texture) SetImage(width, height int, pixels []byte) {
	t.width = int32(width)
	t.height = int32(height)

	gl.BindTexture(gl.TEXTURE_2D, t.handle)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, t.width, t.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.GenerateMipmap(gl.TEXTURE_2D)
}

// SetParameter overrides a texture parameter, e.g. the filter mode.
func (t *Texture) SetParameter(name uint32, value int32) {
	gl.BindTexture(gl.TEXTURE_2D, t.handle)
	gl.TexParameteri(gl.TEXTURE_2D, name, value)
}

// Delete releases the texture. Safe to call more than once.
func (t *Texture) Delete() {
	if t.handle != 0 {
		gl.DeleteTextures(1, &t.handle)
		t.handle = 0
	}
}
