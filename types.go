package nubik

// Vertex layout shared by all geometry emitted through the Renderer:
// position.xy, texCoord.xy, color.rgba interleaved as float32.
// There is no per-draw layout switching.
const (
	// VertexElements is the number of float32 components per vertex.
	VertexElements = 8

	// VertexStride is the size of one vertex record in bytes.
	VertexStride = VertexElements * 4

	// MaxVertices is the capacity of the renderer's vertex buffer.
	// Shape emitters split batches transparently when a shape would
	// push the running count past this limit.
	MaxVertices = 65535
)

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Common colors.
var (
	ColorWhite       = Color{R: 1, G: 1, B: 1, A: 1}
	ColorBlack       = Color{R: 0, G: 0, B: 0, A: 1}
	ColorTransparent = Color{}
)

// Vertex is one record of the fixed interleaved layout: a screen-space
// position, normalized texture coordinates and an RGBA color.
type Vertex struct {
	X, Y  float32
	U, V  float32
	Color Color
}
