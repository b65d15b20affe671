package opengl

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/VVatashi/nubik"
)

func TestBlurScheduleAlternatesSubPasses(t *testing.T) {
	passes := blurSchedule(blurIterations)

	if len(passes) != blurIterations*2 {
		t.Fatalf("expected %d sub-passes, got %d", blurIterations*2, len(passes))
	}

	for i, pass := range passes {
		wantHorizontal := i%2 == 0
		if pass.horizontal != wantHorizontal {
			t.Errorf("sub-pass %d: horizontal = %v, want %v", i, pass.horizontal, wantHorizontal)
		}
		if pass.target == pass.source {
			t.Errorf("sub-pass %d reads and writes framebuffer %d", i, pass.target)
		}
		if wantHorizontal && pass.target != 0 {
			t.Errorf("sub-pass %d: horizontal pass targets %d, want 0", i, pass.target)
		}
		if !wantHorizontal && pass.target != 1 {
			t.Errorf("sub-pass %d: vertical pass targets %d, want 1", i, pass.target)
		}
	}

	// The composite pass reads pingPong[1], so the last sub-pass must
	// write there.
	if last := passes[len(passes)-1]; last.target != 1 {
		t.Errorf("final sub-pass targets %d, want 1", last.target)
	}
}

func TestGaussianWeightsCoverKernel(t *testing.T) {
	sum := float64(gaussianWeights[0])
	for _, w := range gaussianWeights[1:] {
		// Off-center taps are sampled on both sides.
		sum += 2 * float64(w)
	}

	if math.Abs(sum-1) > 1e-5 {
		t.Errorf("kernel weights sum to %v, want 1", sum)
	}

	for i := 1; i < len(gaussianWeights); i++ {
		if gaussianWeights[i] >= gaussianWeights[i-1] {
			t.Errorf("weight %d (%v) not smaller than weight %d (%v)",
				i, gaussianWeights[i], i-1, gaussianWeights[i-1])
		}
	}
}

func TestProjectionMapsScreenToClipSpace(t *testing.T) {
	m := Projection(800, 600)

	// Column-major mat4: X scales by 2/w, Y by -2/h, translation (-1, 1).
	if got, want := m[0], float32(2)/800; got != want {
		t.Errorf("X scale = %v, want %v", got, want)
	}
	if got, want := m[5], float32(-2)/600; got != want {
		t.Errorf("Y scale = %v, want %v", got, want)
	}
	if m[12] != -1 || m[13] != 1 {
		t.Errorf("translation = (%v, %v), want (-1, 1)", m[12], m[13])
	}

	// Top-left screen corner lands in the top-left clip corner.
	origin := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if origin[0] != -1 || origin[1] != 1 {
		t.Errorf("(0, 0) maps to (%v, %v), want (-1, 1)", origin[0], origin[1])
	}
	corner := m.Mul4x1(mgl32.Vec4{800, 600, 0, 1})
	if corner[0] != 1 || corner[1] != -1 {
		t.Errorf("(800, 600) maps to (%v, %v), want (1, -1)", corner[0], corner[1])
	}
}

func TestBrightnessOscillatesWithinUnitRange(t *testing.T) {
	if got := Brightness(0); got != 0.5 {
		t.Errorf("Brightness(0) = %v, want 0.5", got)
	}

	for ms := 0.0; ms < 2000; ms += 7 {
		got := Brightness(ms)
		if got < 0 || got > 1 {
			t.Fatalf("Brightness(%v) = %v, out of [0, 1]", ms, got)
		}
	}

	// Quarter period of sin(8t/1000) in milliseconds.
	peak := 1000 * math.Pi / 2 / 8
	if got := Brightness(peak); math.Abs(float64(got)-1) > 1e-6 {
		t.Errorf("Brightness at peak = %v, want 1", got)
	}
}

func TestSpriteVertexAttributesMatchVertexLayout(t *testing.T) {
	attrs := SpriteVertexAttributes()

	if len(attrs) != 3 {
		t.Fatalf("expected 3 attributes, got %d", len(attrs))
	}

	components := 0
	for i, attr := range attrs {
		if attr.Index != uint32(i) {
			t.Errorf("attribute %d has index %d", i, attr.Index)
		}
		if attr.Stride != nubik.VertexStride {
			t.Errorf("attribute %d stride = %d, want %d", i, attr.Stride, nubik.VertexStride)
		}
		components += int(attr.Components)
	}
	if components != nubik.VertexElements {
		t.Errorf("attributes cover %d floats, want %d", components, nubik.VertexElements)
	}

	wantOffsets := []uintptr{0, 8, 16}
	for i, attr := range attrs {
		if attr.Offset != wantOffsets[i] {
			t.Errorf("attribute %d offset = %d, want %d", i, attr.Offset, wantOffsets[i])
		}
	}
}

func TestScreenQuadCoversClipSpace(t *testing.T) {
	verts := screenQuadVertices()

	if len(verts) != 6*4 {
		t.Fatalf("expected 6 vertices of 4 floats, got %d floats", len(verts))
	}

	for i := 0; i < 6; i++ {
		x, y := verts[i*4], verts[i*4+1]
		u, v := verts[i*4+2], verts[i*4+3]
		if x != -1 && x != 1 {
			t.Errorf("vertex %d x = %v, want ±1", i, x)
		}
		if y != -1 && y != 1 {
			t.Errorf("vertex %d y = %v, want ±1", i, y)
		}
		// Texture coordinates follow the clip position.
		if u != (x+1)/2 || v != (y+1)/2 {
			t.Errorf("vertex %d uv = (%v, %v), want (%v, %v)", i, u, v, (x+1)/2, (y+1)/2)
		}
	}
}
