package nubik

import (
	"encoding/binary"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"

	"golang.org/x/mobile/exp/f32"
)

// Glyph describes one character of an MSDF font atlas: the advance, the
// local quad it occupies relative to the pen position (plane, in em
// units) and the normalized atlas region holding its distance field.
type Glyph struct {
	CharCode byte
	Advance  float32

	PlaneLeft   float32
	PlaneBottom float32
	PlaneRight  float32
	PlaneTop    float32

	AtlasLeft   float32
	AtlasBottom float32
	AtlasRight  float32
	AtlasTop    float32
}

// glyphFloats is the number of float32 fields per glyph in the binary
// table format.
const glyphFloats = 10

// Font maps single-byte character codes to glyphs. The table is built
// once at load time and immutable afterward.
type Font struct {
	glyphs map[byte]Glyph
}

// NewFont builds a font from a glyph list. Later duplicates of a
// character code win.
func NewFont(glyphs []Glyph) *Font {
	font := &Font{glyphs: make(map[byte]Glyph, len(glyphs))}
	for _, glyph := range glyphs {
		font.glyphs[glyph.CharCode] = glyph
	}

	return font
}

// Glyph looks up the glyph for a character code.
func (f *Font) Glyph(code byte) (Glyph, bool) {
	glyph, ok := f.glyphs[code]
	return glyph, ok
}

// GlyphCount returns the number of glyphs in the table.
func (f *Font) GlyphCount() int {
	return len(f.glyphs)
}

// MeasureString returns the width of text at the given size: the sum of
// size × advance over every known character code. Unknown codes
// contribute nothing, matching Renderer.DrawString exactly so measured
// widths round-trip for centering.
func (f *Font) MeasureString(text string, size float32) float32 {
	var width float32
	for i := 0; i < len(text); i++ {
		if glyph, ok := f.glyphs[text[i]]; ok {
			width += size * glyph.Advance
		}
	}

	return width
}

// SerializeData encodes the glyph table as the binary format consumed by
// LoadFont: little-endian float32s, a glyph count followed by 10 floats
// per glyph. Glyphs are written in ascending character-code order.
func (f *Font) SerializeData() []byte {
	codes := make([]int, 0, len(f.glyphs))
	for code := range f.glyphs {
		codes = append(codes, int(code))
	}
	sort.Ints(codes)

	floats := make([]float32, 0, 1+len(f.glyphs)*glyphFloats)
	floats = append(floats, float32(len(f.glyphs)))
	for _, code := range codes {
		glyph := f.glyphs[byte(code)]
		floats = append(floats,
			float32(glyph.CharCode),
			glyph.Advance,
			glyph.PlaneLeft, glyph.PlaneBottom, glyph.PlaneRight, glyph.PlaneTop,
			glyph.AtlasLeft, glyph.AtlasBottom, glyph.AtlasRight, glyph.AtlasTop,
		)
	}

	return f32.Bytes(binary.LittleEndian, floats...)
}

// DeserializeData decodes a binary glyph table produced by
// SerializeData (or the fontgen tool).
func DeserializeData(data []byte) (*Font, error) {
	if len(data) < 4 || len(data)%4 != 0 {
		return nil, fmt.Errorf("glyph table: invalid length %d", len(data))
	}

	floats := make([]float32, len(data)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}

	count := int(floats[0])
	if len(floats) != 1+count*glyphFloats {
		return nil, fmt.Errorf("glyph table: expected %d glyphs in %d floats", count, len(floats)-1)
	}

	glyphs := make([]Glyph, 0, count)
	for i := 0; i < count; i++ {
		fields := floats[1+i*glyphFloats:]
		glyphs = append(glyphs, Glyph{
			CharCode:    byte(fields[0]),
			Advance:     fields[1],
			PlaneLeft:   fields[2],
			PlaneBottom: fields[3],
			PlaneRight:  fields[4],
			PlaneTop:    fields[5],
			AtlasLeft:   fields[6],
			AtlasBottom: fields[7],
			AtlasRight:  fields[8],
			AtlasTop:    fields[9],
		})
	}

	return NewFont(glyphs), nil
}

// LoadFont reads a binary glyph table from disk.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	font, err := DeserializeData(data)
	if err != nil {
		return nil, fmt.Errorf("load font %s: %w", path, err)
	}

	return font, nil
}

// ParseGlyphCSV reads the layout CSV emitted by msdf-atlas-gen: one
// record per glyph with the same 10 fields as the binary table. Used by
// the fontgen conversion tool.
func ParseGlyphCSV(r io.Reader) (*Font, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = glyphFloats

	var glyphs []Glyph
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("glyph csv: %w", err)
		}

		fields := make([]float32, glyphFloats)
		for i, value := range record {
			parsed, err := strconv.ParseFloat(value, 32)
			if err != nil {
				return nil, fmt.Errorf("glyph csv: field %d: %w", i, err)
			}
			fields[i] = float32(parsed)
		}

		glyphs = append(glyphs, Glyph{
			CharCode:    byte(fields[0]),
			Advance:     fields[1],
			PlaneLeft:   fields[2],
			PlaneBottom: fields[3],
			PlaneRight:  fields[4],
			PlaneTop:    fields[5],
			AtlasLeft:   fields[6],
			AtlasBottom: fields[7],
			AtlasRight:  fields[8],
			AtlasTop:    fields[9],
		})
	}

	return NewFont(glyphs), nil
}
