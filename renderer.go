package nubik

import "math"

// Mesh is the drawable unit the Renderer flushes into: a GPU vertex
// buffer coupled with its attribute layout. The OpenGL implementation
// lives in backend/opengl; tests substitute a recording fake.
type Mesh interface {
	// Update uploads the given vertex data to the start of the buffer.
	// Only the used sub-range is transferred.
	Update(vertices []float32)

	// Draw issues one draw call covering count vertices.
	Draw(count int)
}

// Renderer accumulates interleaved vertex data for batched 2D drawing.
// Geometry collected between BeginGeometry and EndGeometry is flushed to
// the mesh as a single draw call. The shape emitters check remaining
// capacity and split batches transparently, so batch boundaries are
// invisible to callers.
type Renderer struct {
	mesh        Mesh
	vertexData  []float32
	vertexCount int
}

// NewRenderer creates a renderer flushing into the given mesh. The
// CPU-side scratch buffer is allocated once at full capacity.
func NewRenderer(mesh Mesh) *Renderer {
	return &Renderer{
		mesh:       mesh,
		vertexData: make([]float32, 0, VertexElements*MaxVertices),
	}
}

// VertexCount returns the number of vertices accumulated in the current
// batch.
func (r *Renderer) VertexCount() int {
	return r.vertexCount
}

// BeginGeometry starts a new geometry batch, discarding any vertices
// accumulated so far.
func (r *Renderer) BeginGeometry() {
	r.vertexData = r.vertexData[:0]
	r.vertexCount = 0
}

// EndGeometry uploads the accumulated vertices and issues exactly one
// draw call covering them. It is a no-op on an empty batch.
func (r *Renderer) EndGeometry() {
	if r.vertexCount == 0 {
		return
	}

	r.mesh.Update(r.vertexData)
	r.mesh.Draw(r.vertexCount)

	r.vertexData = r.vertexData[:0]
	r.vertexCount = 0
}

// AddVertex appends one vertex record to the current batch. It performs
// no bounds check; the shape emitters flush before overflow.
func (r *Renderer) AddVertex(v Vertex) {
	c := v.Color
	r.vertexData = append(r.vertexData, v.X, v.Y, v.U, v.V, c.R, c.G, c.B, c.A)
	r.vertexCount++
}

// ensureCapacity flushes and restarts the batch when the next shape
// would exceed the vertex budget.
func (r *Renderer) ensureCapacity(vertices int) {
	if r.vertexCount+vertices > MaxVertices {
		r.EndGeometry()
	}
}

// DrawTriangle emits one triangle a-b-c.
func (r *Renderer) DrawTriangle(a, b, c Vertex) {
	r.ensureCapacity(3)
	r.AddVertex(a)
	r.AddVertex(b)
	r.AddVertex(c)
}

// DrawQuad emits the quad a-b-c-d as the two triangles a-b-c and a-c-d.
// The shared diagonal a→c keeps face orientation and UV continuity
// consistent across all quad-based emitters.
func (r *Renderer) DrawQuad(a, b, c, d Vertex) {
	r.ensureCapacity(6)
	r.AddVertex(a)
	r.AddVertex(b)
	r.AddVertex(c)
	r.AddVertex(a)
	r.AddVertex(c)
	r.AddVertex(d)
}

// DrawRect emits an axis-aligned rectangle with its top-left corner at
// (x, y), textured with the atlas region (u0, v0)-(u1, v1).
func (r *Renderer) DrawRect(x, y, width, height, u0, v0, u1, v1 float32, color Color) {
	r.DrawQuad(
		Vertex{X: x, Y: y, U: u0, V: v0, Color: color},
		Vertex{X: x + width, Y: y, U: u1, V: v0, Color: color},
		Vertex{X: x + width, Y: y + height, U: u1, V: v1, Color: color},
		Vertex{X: x, Y: y + height, U: u0, V: v1, Color: color},
	)
}

// DrawRectOffCenter emits an axis-aligned rectangle centered at (x, y).
func (r *Renderer) DrawRectOffCenter(x, y, width, height, u0, v0, u1, v1 float32, color Color) {
	r.DrawRect(x-width/2, y-height/2, width, height, u0, v0, u1, v1, color)
}

// DrawRotatedRect emits a rectangle centered at (x, y), rotated by angle
// radians. The four local corner offsets are rotated about the center
// and then translated to the world position.
func (r *Renderer) DrawRotatedRect(x, y, width, height, angle, u0, v0, u1, v1 float32, color Color) {
	sin, cos := math.Sincos(float64(angle))
	s, c := float32(sin), float32(cos)

	halfW := width / 2
	halfH := height / 2

	corners := [4][2]float32{
		{-halfW, -halfH},
		{halfW, -halfH},
		{halfW, halfH},
		{-halfW, halfH},
	}

	var rotated [4][2]float32
	for i, p := range corners {
		rotated[i][0] = x + p[0]*c - p[1]*s
		rotated[i][1] = y + p[0]*s + p[1]*c
	}

	r.DrawQuad(
		Vertex{X: rotated[0][0], Y: rotated[0][1], U: u0, V: v0, Color: color},
		Vertex{X: rotated[1][0], Y: rotated[1][1], U: u1, V: v0, Color: color},
		Vertex{X: rotated[2][0], Y: rotated[2][1], U: u1, V: v1, Color: color},
		Vertex{X: rotated[3][0], Y: rotated[3][1], U: u0, V: v1, Color: color},
	)
}

// DrawGlyph emits one glyph quad at pen position (x, y). The glyph's
// local plane offsets are scaled by size; the atlas rectangle supplies
// the texture coordinates.
func (r *Renderer) DrawGlyph(glyph Glyph, x, y, size float32, color Color) {
	x0 := x + size*glyph.PlaneLeft
	x1 := x + size*glyph.PlaneRight
	y0 := y - size*glyph.PlaneTop
	y1 := y - size*glyph.PlaneBottom

	r.DrawQuad(
		Vertex{X: x0, Y: y0, U: glyph.AtlasLeft, V: glyph.AtlasTop, Color: color},
		Vertex{X: x1, Y: y0, U: glyph.AtlasRight, V: glyph.AtlasTop, Color: color},
		Vertex{X: x1, Y: y1, U: glyph.AtlasRight, V: glyph.AtlasBottom, Color: color},
		Vertex{X: x0, Y: y1, U: glyph.AtlasLeft, V: glyph.AtlasBottom, Color: color},
	)
}

// DrawString lays out text glyph by glyph starting at pen position
// (x, y). Character codes without a glyph are skipped and do not advance
// the pen; known glyphs advance it by size × glyph advance, exactly as
// Font.MeasureString accumulates.
func (r *Renderer) DrawString(font *Font, text string, x, y, size float32, color Color) {
	pen := x
	for i := 0; i < len(text); i++ {
		glyph, ok := font.Glyph(text[i])
		if !ok {
			continue
		}

		r.DrawGlyph(glyph, pen, y, size, color)
		pen += size * glyph.Advance
	}
}

// DrawStringOffCenter draws text horizontally centered on x.
func (r *Renderer) DrawStringOffCenter(font *Font, text string, x, y, size float32, color Color) {
	r.DrawString(font, text, x-font.MeasureString(text, size)/2, y, size, color)
}
