package nubik

// Texture identifies a GPU texture the sprite batch binds once per
// bucket. backend/opengl provides the real implementation; tests use a
// counting fake.
type Texture interface {
	Bind()
}

// Command is the closed set of draw operations a SpriteBatch can record.
// Each variant carries its typed fields and is replayed through the
// identically-shaped Renderer method via an exhaustive type switch.
type Command interface {
	isCommand()
}

// TriangleCommand records a DrawTriangle call.
type TriangleCommand struct {
	A, B, C Vertex
}

// QuadCommand records a DrawQuad call.
type QuadCommand struct {
	A, B, C, D Vertex
}

// RectCommand records a DrawRect (or DrawRectOffCenter) call.
type RectCommand struct {
	X, Y, Width, Height float32
	U0, V0, U1, V1      float32
	Color               Color
	OffCenter           bool
}

// RotatedRectCommand records a DrawRotatedRect call.
type RotatedRectCommand struct {
	X, Y, Width, Height float32
	Angle               float32
	U0, V0, U1, V1      float32
	Color               Color
}

// GlyphCommand records a DrawGlyph call.
type GlyphCommand struct {
	Glyph      Glyph
	X, Y, Size float32
	Color      Color
}

// StringCommand records a DrawString or DrawStringOffCenter call.
type StringCommand struct {
	Font       *Font
	Text       string
	X, Y, Size float32
	Color      Color
	OffCenter  bool
}

func (TriangleCommand) isCommand()    {}
func (QuadCommand) isCommand()        {}
func (RectCommand) isCommand()        {}
func (RotatedRectCommand) isCommand() {}
func (GlyphCommand) isCommand()       {}
func (StringCommand) isCommand()      {}

// BindFunc binds a texture before its bucket is replayed. The default
// calls Texture.Bind; the render pipeline installs a hook that also
// configures per-texture shader state.
type BindFunc func(Texture)

// SpriteBatchOption configures a SpriteBatch.
type SpriteBatchOption func(*SpriteBatch)

// WithBindFunc overrides how bucket textures are bound during End.
func WithBindFunc(bind BindFunc) SpriteBatchOption {
	return func(b *SpriteBatch) {
		b.bind = bind
	}
}

// SpriteBatch is a deferred command recorder that groups draw calls by
// texture before replaying them through the Renderer. A full frame needs
// at most one texture bind per distinct texture, at the cost of losing
// strict paint order across different textures; order within one texture
// is preserved exactly.
type SpriteBatch struct {
	renderer *Renderer
	buckets  map[Texture][]Command
	order    []Texture // bucket creation order, the replay order
	bind     BindFunc
}

// NewSpriteBatch creates a sprite batch replaying into the renderer.
func NewSpriteBatch(renderer *Renderer, opts ...SpriteBatchOption) *SpriteBatch {
	b := &SpriteBatch{
		renderer: renderer,
		buckets:  make(map[Texture][]Command),
		bind:     func(t Texture) { t.Bind() },
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Begin clears all buckets for a new frame.
func (b *SpriteBatch) Begin() {
	for texture := range b.buckets {
		delete(b.buckets, texture)
	}
	b.order = b.order[:0]
}

// record appends a command to the texture's bucket, creating the bucket
// on first use.
func (b *SpriteBatch) record(texture Texture, cmd Command) {
	if _, ok := b.buckets[texture]; !ok {
		b.order = append(b.order, texture)
	}
	b.buckets[texture] = append(b.buckets[texture], cmd)
}

// DrawTriangle records a triangle against the texture's bucket.
func (b *SpriteBatch) DrawTriangle(texture Texture, a, v2, v3 Vertex) {
	b.record(texture, TriangleCommand{A: a, B: v2, C: v3})
}

// DrawQuad records a quad against the texture's bucket.
func (b *SpriteBatch) DrawQuad(texture Texture, a, v2, v3, v4 Vertex) {
	b.record(texture, QuadCommand{A: a, B: v2, C: v3, D: v4})
}

// DrawRect records an axis-aligned rectangle anchored at its top-left
// corner.
func (b *SpriteBatch) DrawRect(texture Texture, x, y, width, height, u0, v0, u1, v1 float32, color Color) {
	b.record(texture, RectCommand{
		X: x, Y: y, Width: width, Height: height,
		U0: u0, V0: v0, U1: u1, V1: v1,
		Color: color,
	})
}

// DrawRectOffCenter records an axis-aligned rectangle centered at (x, y).
func (b *SpriteBatch) DrawRectOffCenter(texture Texture, x, y, width, height, u0, v0, u1, v1 float32, color Color) {
	b.record(texture, RectCommand{
		X: x, Y: y, Width: width, Height: height,
		U0: u0, V0: v0, U1: u1, V1: v1,
		Color:     color,
		OffCenter: true,
	})
}

// DrawRotatedRect records a rectangle centered at (x, y) rotated by
// angle radians.
func (b *SpriteBatch) DrawRotatedRect(texture Texture, x, y, width, height, angle, u0, v0, u1, v1 float32, color Color) {
	b.record(texture, RotatedRectCommand{
		X: x, Y: y, Width: width, Height: height,
		Angle: angle,
		U0:    u0, V0: v0, U1: u1, V1: v1,
		Color: color,
	})
}

// DrawGlyph records a single glyph quad.
func (b *SpriteBatch) DrawGlyph(texture Texture, glyph Glyph, x, y, size float32, color Color) {
	b.record(texture, GlyphCommand{Glyph: glyph, X: x, Y: y, Size: size, Color: color})
}

// DrawString records a text run starting at pen position (x, y).
func (b *SpriteBatch) DrawString(texture Texture, font *Font, text string, x, y, size float32, color Color) {
	b.record(texture, StringCommand{Font: font, Text: text, X: x, Y: y, Size: size, Color: color})
}

// DrawStringOffCenter records a text run horizontally centered on x.
func (b *SpriteBatch) DrawStringOffCenter(texture Texture, font *Font, text string, x, y, size float32, color Color) {
	b.record(texture, StringCommand{
		Font: font, Text: text,
		X: x, Y: y, Size: size,
		Color:     color,
		OffCenter: true,
	})
}

// End replays the recorded commands bucket by bucket, in bucket creation
// order: the texture is bound once, one renderer geometry batch is
// opened, every command replays in recording order, and the batch is
// closed.
func (b *SpriteBatch) End() {
	for _, texture := range b.order {
		b.bind(texture)
		b.renderer.BeginGeometry()

		for _, cmd := range b.buckets[texture] {
			switch cmd := cmd.(type) {
			case TriangleCommand:
				b.renderer.DrawTriangle(cmd.A, cmd.B, cmd.C)
			case QuadCommand:
				b.renderer.DrawQuad(cmd.A, cmd.B, cmd.C, cmd.D)
			case RectCommand:
				if cmd.OffCenter {
					b.renderer.DrawRectOffCenter(cmd.X, cmd.Y, cmd.Width, cmd.Height, cmd.U0, cmd.V0, cmd.U1, cmd.V1, cmd.Color)
				} else {
					b.renderer.DrawRect(cmd.X, cmd.Y, cmd.Width, cmd.Height, cmd.U0, cmd.V0, cmd.U1, cmd.V1, cmd.Color)
				}
			case RotatedRectCommand:
				b.renderer.DrawRotatedRect(cmd.X, cmd.Y, cmd.Width, cmd.Height, cmd.Angle, cmd.U0, cmd.V0, cmd.U1, cmd.V1, cmd.Color)
			case GlyphCommand:
				b.renderer.DrawGlyph(cmd.Glyph, cmd.X, cmd.Y, cmd.Size, cmd.Color)
			case StringCommand:
				if cmd.OffCenter {
					b.renderer.DrawStringOffCenter(cmd.Font, cmd.Text, cmd.X, cmd.Y, cmd.Size, cmd.Color)
				} else {
					b.renderer.DrawString(cmd.Font, cmd.Text, cmd.X, cmd.Y, cmd.Size, cmd.Color)
				}
			}
		}

		b.renderer.EndGeometry()
	}
}
