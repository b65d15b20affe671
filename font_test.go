package nubik_test

import (
	"strings"
	"testing"

	"github.com/VVatashi/nubik"
)

func TestMeasureStringSumsAdvances(t *testing.T) {
	font := testFont()

	// 'a' advances 0.5 em, 'b' 0.6 em, '?' is unknown.
	want := float32(10*0.5 + 10*0.6)
	if got := font.MeasureString("a?b", 10); got != want {
		t.Errorf("MeasureString = %v, want %v", got, want)
	}

	if got := font.MeasureString("???", 10); got != 0 {
		t.Errorf("MeasureString of unknown codes = %v, want 0", got)
	}

	if got := font.MeasureString("", 10); got != 0 {
		t.Errorf("MeasureString of empty string = %v, want 0", got)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	font := testFont()

	data := font.SerializeData()
	if wantLen := 4 * (1 + font.GlyphCount()*10); len(data) != wantLen {
		t.Fatalf("serialized length = %d, want %d", len(data), wantLen)
	}

	decoded, err := nubik.DeserializeData(data)
	if err != nil {
		t.Fatalf("DeserializeData: %v", err)
	}

	if decoded.GlyphCount() != font.GlyphCount() {
		t.Fatalf("glyph count = %d, want %d", decoded.GlyphCount(), font.GlyphCount())
	}
	for _, code := range []byte{'a', 'b'} {
		want, _ := font.Glyph(code)
		got, ok := decoded.Glyph(code)
		if !ok {
			t.Fatalf("glyph %q missing after round trip", code)
		}
		if got != want {
			t.Errorf("glyph %q = %+v, want %+v", code, got, want)
		}
	}
}

func TestDeserializeRejectsMalformedData(t *testing.T) {
	font := testFont()
	data := font.SerializeData()

	cases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"not a multiple of four", data[:5]},
		{"truncated glyph", data[:len(data)-8]},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := nubik.DeserializeData(tc.data); err == nil {
				t.Error("expected an error, got nil")
			}
		})
	}
}

func TestParseGlyphCSV(t *testing.T) {
	input := strings.Join([]string{
		"97,0.5,0.1,0,0.4,0.7,0,0.1,0.1,0",
		"98,0.6,0.05,0,0.5,0.7,0.1,0.1,0.2,0",
	}, "\n")

	font, err := nubik.ParseGlyphCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseGlyphCSV: %v", err)
	}

	if font.GlyphCount() != 2 {
		t.Fatalf("glyph count = %d, want 2", font.GlyphCount())
	}

	glyph, ok := font.Glyph('a')
	if !ok {
		t.Fatal("glyph 'a' missing")
	}
	if glyph.Advance != 0.5 || glyph.PlaneLeft != 0.1 || glyph.AtlasRight != 0.1 {
		t.Errorf("glyph 'a' = %+v", glyph)
	}
}

func TestParseGlyphCSVRejectsBadRecords(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"wrong field count", "97,0.5,0.1"},
		{"non-numeric field", "97,abc,0.1,0,0.4,0.7,0,0.1,0.1,0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := nubik.ParseGlyphCSV(strings.NewReader(tc.input)); err == nil {
				t.Error("expected an error, got nil")
			}
		})
	}
}
