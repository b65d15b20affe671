package nubik_test

import (
	"testing"

	"github.com/VVatashi/nubik"
)

// fakeMesh records every upload and draw call issued by the renderer.
type fakeMesh struct {
	uploads [][]float32
	draws   []int
}

func (m *fakeMesh) Update(vertices []float32) {
	upload := make([]float32, len(vertices))
	copy(upload, vertices)
	m.uploads = append(m.uploads, upload)
}

func (m *fakeMesh) Draw(count int) {
	m.draws = append(m.draws, count)
}

func (m *fakeMesh) totalVertices() int {
	total := 0
	for _, count := range m.draws {
		total += count
	}
	return total
}

func (m *fakeMesh) allUploads() []float32 {
	var all []float32
	for _, upload := range m.uploads {
		all = append(all, upload...)
	}
	return all
}

func TestEndGeometryEmptyIsNoOp(t *testing.T) {
	mesh := &fakeMesh{}
	renderer := nubik.NewRenderer(mesh)

	renderer.BeginGeometry()
	renderer.EndGeometry()

	if len(mesh.draws) != 0 {
		t.Errorf("expected no draw calls for empty batch, got %d", len(mesh.draws))
	}
}

func TestEndGeometryIssuesSingleDraw(t *testing.T) {
	mesh := &fakeMesh{}
	renderer := nubik.NewRenderer(mesh)

	renderer.BeginGeometry()
	for i := 0; i < 100; i++ {
		renderer.AddVertex(nubik.Vertex{X: float32(i), Y: float32(i)})
	}
	renderer.EndGeometry()

	if len(mesh.draws) != 1 {
		t.Fatalf("expected exactly 1 draw call, got %d", len(mesh.draws))
	}
	if mesh.draws[0] != 100 {
		t.Errorf("expected draw call covering 100 vertices, got %d", mesh.draws[0])
	}
	if len(mesh.uploads[0]) != 100*nubik.VertexElements {
		t.Errorf("expected %d floats uploaded, got %d", 100*nubik.VertexElements, len(mesh.uploads[0]))
	}
}

// rectVertices is an unbounded-buffer reference for DrawRect: the quad
// decomposed as triangles a-b-c and a-c-d.
func rectVertices(x, y, w, h, u0, v0, u1, v1 float32, c nubik.Color) []float32 {
	a := []float32{x, y, u0, v0, c.R, c.G, c.B, c.A}
	b := []float32{x + w, y, u1, v0, c.R, c.G, c.B, c.A}
	cc := []float32{x + w, y + h, u1, v1, c.R, c.G, c.B, c.A}
	d := []float32{x, y + h, u0, v1, c.R, c.G, c.B, c.A}

	var verts []float32
	for _, v := range [][]float32{a, b, cc, a, cc, d} {
		verts = append(verts, v...)
	}
	return verts
}

func TestShapeEmittersAutoFlushOnOverflow(t *testing.T) {
	mesh := &fakeMesh{}
	renderer := nubik.NewRenderer(mesh)

	// One more rectangle than fits in a single batch.
	rects := nubik.MaxVertices/6 + 1
	var expected []float32

	renderer.BeginGeometry()
	for i := 0; i < rects; i++ {
		x := float32(i)
		renderer.DrawRect(x, 0, 1, 1, 0, 0, 1, 1, nubik.ColorWhite)
		expected = append(expected, rectVertices(x, 0, 1, 1, 0, 0, 1, 1, nubik.ColorWhite)...)
	}
	renderer.EndGeometry()

	if len(mesh.draws) != 2 {
		t.Fatalf("expected 2 draw calls after overflow, got %d", len(mesh.draws))
	}

	fullBatch := nubik.MaxVertices / 6 * 6
	if mesh.draws[0] != fullBatch {
		t.Errorf("expected first draw to cover %d vertices, got %d", fullBatch, mesh.draws[0])
	}
	if got := mesh.totalVertices(); got != rects*6 {
		t.Errorf("expected %d total vertices, got %d", rects*6, got)
	}

	all := mesh.allUploads()
	if len(all) != len(expected) {
		t.Fatalf("expected %d floats across uploads, got %d", len(expected), len(all))
	}
	for i := range all {
		if all[i] != expected[i] {
			t.Fatalf("vertex data diverges from unbounded reference at float %d: got %v, want %v", i, all[i], expected[i])
		}
	}
}

func TestDrawQuadWinding(t *testing.T) {
	mesh := &fakeMesh{}
	renderer := nubik.NewRenderer(mesh)

	a := nubik.Vertex{X: 0, Y: 0}
	b := nubik.Vertex{X: 1, Y: 0}
	c := nubik.Vertex{X: 1, Y: 1}
	d := nubik.Vertex{X: 0, Y: 1}

	renderer.BeginGeometry()
	renderer.DrawQuad(a, b, c, d)
	renderer.EndGeometry()

	want := []nubik.Vertex{a, b, c, a, c, d}
	upload := mesh.uploads[0]
	for i, v := range want {
		x := upload[i*nubik.VertexElements]
		y := upload[i*nubik.VertexElements+1]
		if x != v.X || y != v.Y {
			t.Errorf("vertex %d: got (%v, %v), want (%v, %v)", i, x, y, v.X, v.Y)
		}
	}
}

func TestRotatedRectAtZeroAngleMatchesRectOffCenter(t *testing.T) {
	rotated := &fakeMesh{}
	renderer := nubik.NewRenderer(rotated)
	renderer.BeginGeometry()
	renderer.DrawRotatedRect(40, 30, 16, 8, 0, 0, 0, 1, 1, nubik.ColorWhite)
	renderer.EndGeometry()

	straight := &fakeMesh{}
	reference := nubik.NewRenderer(straight)
	reference.BeginGeometry()
	reference.DrawRectOffCenter(40, 30, 16, 8, 0, 0, 1, 1, nubik.ColorWhite)
	reference.EndGeometry()

	got := rotated.uploads[0]
	want := straight.uploads[0]
	for i := 0; i < 6; i++ {
		base := i * nubik.VertexElements
		if got[base] != want[base] || got[base+1] != want[base+1] {
			t.Errorf("vertex %d: got (%v, %v), want (%v, %v)",
				i, got[base], got[base+1], want[base], want[base+1])
		}
	}
}

func testFont() *nubik.Font {
	return nubik.NewFont([]nubik.Glyph{
		{CharCode: 'a', Advance: 0.5, PlaneLeft: 0.1, PlaneBottom: 0, PlaneRight: 0.4, PlaneTop: 0.7, AtlasLeft: 0, AtlasBottom: 0.1, AtlasRight: 0.1, AtlasTop: 0},
		{CharCode: 'b', Advance: 0.6, PlaneLeft: 0.05, PlaneBottom: 0, PlaneRight: 0.5, PlaneTop: 0.7, AtlasLeft: 0.1, AtlasBottom: 0.1, AtlasRight: 0.2, AtlasTop: 0},
	})
}

func TestDrawStringSkipsUnknownGlyphs(t *testing.T) {
	mesh := &fakeMesh{}
	renderer := nubik.NewRenderer(mesh)
	font := testFont()

	renderer.BeginGeometry()
	renderer.DrawString(font, "a?b", 0, 0, 10, nubik.ColorWhite)
	renderer.EndGeometry()

	// Two known glyphs, one quad each.
	if got := mesh.totalVertices(); got != 12 {
		t.Fatalf("expected 12 vertices for 2 known glyphs, got %d", got)
	}

	// The second glyph starts at the first glyph's advance; the unknown
	// code must not have moved the pen.
	upload := mesh.uploads[0]
	glyph, _ := font.Glyph('b')
	wantX := 10*0.5 + 10*glyph.PlaneLeft
	secondGlyphX := upload[6*nubik.VertexElements]
	if secondGlyphX != float32(wantX) {
		t.Errorf("second glyph starts at x=%v, want %v", secondGlyphX, wantX)
	}
}

func TestDrawStringOffCenterMatchesShiftedDrawString(t *testing.T) {
	font := testFont()
	const size = 16

	centered := &fakeMesh{}
	renderer := nubik.NewRenderer(centered)
	renderer.BeginGeometry()
	renderer.DrawStringOffCenter(font, "ab", 100, 50, size, nubik.ColorWhite)
	renderer.EndGeometry()

	shifted := &fakeMesh{}
	reference := nubik.NewRenderer(shifted)
	reference.BeginGeometry()
	reference.DrawString(font, "ab", 100-font.MeasureString("ab", size)/2, 50, size, nubik.ColorWhite)
	reference.EndGeometry()

	got := centered.uploads[0]
	want := shifted.uploads[0]
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("float %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
