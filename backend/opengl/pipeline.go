package opengl

import (
	"fmt"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/VVatashi/nubik"
)

const sceneVertexShader = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
`

// Two sampling modes: plain color sprites and MSDF glyph atlases, where
// the median of the three channels is the signed distance to the edge.
const sceneFragmentShader = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D spriteTexture;
uniform bool isMSDF;

float median(float r, float g, float b) {
    return max(min(r, g), min(max(r, g), b));
}

void main() {
    vec4 texColor = texture(spriteTexture, TexCoord);
    if (isMSDF) {
        float dist = median(texColor.r, texColor.g, texColor.b);
        float alpha = smoothstep(0.4, 0.6, dist);
        FragColor = vec4(Color.rgb, Color.a * alpha);
    } else {
        FragColor = texColor * Color;
    }
}
`

const screenVertexShader = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;

out vec2 TexCoord;

void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
}
`

const blurFragmentShader = `
#version 410 core
in vec2 TexCoord;

out vec4 FragColor;

uniform sampler2D image;
uniform bool horizontal;

const float weight[5] = float[](0.227027, 0.1945946, 0.1216216, 0.054054, 0.016216);

void main() {
    vec2 texelSize = 1.0 / vec2(textureSize(image, 0));
    vec4 result = texture(image, TexCoord) * weight[0];
    for (int i = 1; i < 5; ++i) {
        if (horizontal) {
            result += texture(image, TexCoord + vec2(texelSize.x * i, 0.0)) * weight[i];
            result += texture(image, TexCoord - vec2(texelSize.x * i, 0.0)) * weight[i];
        } else {
            result += texture(image, TexCoord + vec2(0.0, texelSize.y * i)) * weight[i];
            result += texture(image, TexCoord - vec2(0.0, texelSize.y * i)) * weight[i];
        }
    }
    FragColor = result;
}
`

const compositeFragmentShader = `
#version 410 core
in vec2 TexCoord;

out vec4 FragColor;

uniform sampler2D baseImage;
uniform sampler2D bloomImage;
uniform float bloomStrength;

void main() {
    vec3 base = texture(baseImage, TexCoord).rgb;
    vec3 bloom = texture(bloomImage, TexCoord).rgb;
    vec3 color = base + bloom * bloomStrength;
    FragColor = vec4(pow(color, vec3(1.0 / 2.2)), 1.0);
}
`

// blurIterations is the fixed number of ping-pong blur iterations, each
// one horizontal plus one vertical sub-pass, regardless of input size.
const blurIterations = 4

// gaussianWeights are the 5-tap separable blur weights, applied
// symmetrically around the center texel. They must stay in sync with
// the weight array in blurFragmentShader.
var gaussianWeights = [5]float32{0.227027, 0.1945946, 0.1216216, 0.054054, 0.016216}

// blurPass is one blur sub-pass: render into target reading source.
// Framebuffer indices are 0 for ping, 1 for pong.
type blurPass struct {
	horizontal     bool
	target, source int
}

// blurSchedule expands the iteration count into the fixed sub-pass
// sequence: horizontal into ping reading pong, then vertical into pong
// reading ping, repeated.
func blurSchedule(iterations int) []blurPass {
	passes := make([]blurPass, 0, iterations*2)
	for i := 0; i < iterations; i++ {
		passes = append(passes,
			blurPass{horizontal: true, target: 0, source: 1},
			blurPass{horizontal: false, target: 1, source: 0},
		)
	}

	return passes
}

// Projection returns the orthographic matrix over (0,0)-(width,height)
// with Y flipped so the origin is the top-left corner, matching 2D
// screen conventions.
func Projection(width, height int) mgl32.Mat4 {
	return mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// Brightness returns the time-varying bloom strength, oscillating in
// [0, 1]. The argument is milliseconds.
func Brightness(timeMs float64) float32 {
	return float32(math.Sin(8*timeMs/1000)+1) / 2
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithSamples sets the multisample count of the scene pass.
func WithSamples(samples int) PipelineOption {
	return func(p *Pipeline) {
		p.samples = samples
	}
}

// WithSkyColor sets the scene clear color.
func WithSkyColor(color nubik.Color) PipelineOption {
	return func(p *Pipeline) {
		p.skyColor = color
	}
}

// Pipeline drives the per-frame multi-pass render sequence: scene into a
// multisampled framebuffer, resolve to a base framebuffer, re-render the
// bloom sources in isolation, blur them across a ping-pong framebuffer
// pair, and composite base plus glow to the visible surface.
type Pipeline struct {
	width    int
	height   int
	samples  int
	skyColor nubik.Color

	sceneProgram     *ShaderProgram
	blurProgram      *ShaderProgram
	compositeProgram *ShaderProgram

	spriteMesh *Mesh
	screenQuad *Mesh

	msaa     *Framebuffer
	base     *Framebuffer
	pingPong [2]*Framebuffer

	renderer   *nubik.Renderer
	batch      *nubik.SpriteBatch
	projection mgl32.Mat4
}

// NewPipeline compiles the pass shaders and allocates every render
// target at the given resolution. Shader failure aborts initialization.
func NewPipeline(width, height int, opts ...PipelineOption) (*Pipeline, error) {
	p := &Pipeline{
		width:    width,
		height:   height,
		samples:  4,
		skyColor: nubik.Color{R: 0.53, G: 0.81, B: 0.92, A: 1},
	}
	for _, opt := range opts {
		opt(p)
	}

	var err error
	if p.sceneProgram, err = NewShaderProgram(sceneVertexShader, sceneFragmentShader); err != nil {
		return nil, fmt.Errorf("scene program: %w", err)
	}
	if p.blurProgram, err = NewShaderProgram(screenVertexShader, blurFragmentShader); err != nil {
		return nil, fmt.Errorf("blur program: %w", err)
	}
	if p.compositeProgram, err = NewShaderProgram(screenVertexShader, compositeFragmentShader); err != nil {
		return nil, fmt.Errorf("composite program: %w", err)
	}

	p.spriteMesh = NewMesh(nubik.MaxVertices, SpriteVertexAttributes())
	p.screenQuad = NewMeshWithData(screenQuadVertices(), screenQuadAttributes())

	p.msaa = NewFramebuffer(width, height)
	p.base = NewFramebuffer(width, height)
	p.pingPong[0] = NewFramebuffer(width, height)
	p.pingPong[1] = NewFramebuffer(width, height)
	p.allocateTargets(width, height)

	p.renderer = nubik.NewRenderer(p.spriteMesh)
	p.batch = nubik.NewSpriteBatch(p.renderer, nubik.WithBindFunc(p.bindSceneTexture))

	return p, nil
}

// screenQuadVertices is the fullscreen quad of the post-processing
// passes: two triangles covering clip space, position.xy + texCoord.xy.
func screenQuadVertices() []float32 {
	return []float32{
		-1, -1, 0, 0,
		1, -1, 1, 0,
		1, 1, 1, 1,
		-1, -1, 0, 0,
		1, 1, 1, 1,
		-1, 1, 0, 1,
	}
}

func screenQuadAttributes() []VertexAttribute {
	return []VertexAttribute{
		{Index: 0, Components: 2, Type: gl.FLOAT, Stride: 4 * 4, Offset: 0},
		{Index: 1, Components: 2, Type: gl.FLOAT, Stride: 4 * 4, Offset: 2 * 4},
	}
}

// allocateTargets (re)creates every framebuffer attachment at the given
// resolution. Attaching releases the previous attachment, so this is
// safe to call on every resize.
func (p *Pipeline) allocateTargets(width, height int) {
	p.msaa.AttachRenderbuffer(NewRenderbuffer(width, height, p.samples), width, height)
	p.base.AttachTexture(NewTexture(width, height))
	p.pingPong[0].AttachTexture(NewTexture(width, height))
	p.pingPong[1].AttachTexture(NewTexture(width, height))
	p.projection = Projection(width, height)
}

// Resize reallocates the render targets and recomputes the projection
// for a new surface size.
func (p *Pipeline) Resize(width, height int) {
	if width == p.width && height == p.height {
		return
	}

	p.width = width
	p.height = height
	p.allocateTargets(width, height)
}

// Batch returns the sprite batch the draw callbacks record into.
func (p *Pipeline) Batch() *nubik.SpriteBatch {
	return p.batch
}

// bindSceneTexture binds a bucket texture and flips the scene shader
// into MSDF mode for distance-field atlases.
func (p *Pipeline) bindSceneTexture(texture nubik.Texture) {
	gl.ActiveTexture(gl.TEXTURE0)
	texture.Bind()

	msdf := int32(0)
	if t, ok := texture.(*Texture); ok && t.MSDF() {
		msdf = 1
	}
	p.sceneProgram.SetUniform1i("isMSDF", msdf)
}

// Frame renders one animation tick. drawScene records all opaque world
// geometry; drawBloom records only the bloom sources. timeMs drives the
// oscillating bloom brightness.
func (p *Pipeline) Frame(timeMs float64, drawScene, drawBloom func(*nubik.SpriteBatch)) {
	// Scene pass into the multisampled target.
	p.msaa.Bind()
	gl.ClearColor(p.skyColor.R, p.skyColor.G, p.skyColor.B, p.skyColor.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	p.sceneProgram.Use()
	p.sceneProgram.SetUniformMatrix4("projection", &p.projection[0])
	p.sceneProgram.SetUniform1i("spriteTexture", 0)

	p.batch.Begin()
	drawScene(p.batch)
	p.batch.End()

	// Resolve into the single-sampled base target.
	p.msaa.BlitTo(p.base)

	// Bloom source extraction: only the glowing subset, on transparent
	// black, resolved into the pong target the first blur pass reads.
	p.msaa.Bind()
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	p.batch.Begin()
	drawBloom(p.batch)
	p.batch.End()

	p.msaa.BlitTo(p.pingPong[1])

	// Separable Gaussian blur, ping-ponging between the two targets.
	gl.Disable(gl.BLEND)
	p.blurProgram.Use()
	p.blurProgram.SetUniform1i("image", 0)
	gl.ActiveTexture(gl.TEXTURE0)

	for _, pass := range blurSchedule(blurIterations) {
		p.pingPong[pass.target].Bind()
		horizontal := int32(0)
		if pass.horizontal {
			horizontal = 1
		}
		p.blurProgram.SetUniform1i("horizontal", horizontal)
		p.pingPong[pass.source].Texture().Bind()
		p.screenQuad.Draw(6)
	}

	// Composite base + blurred glow to the visible surface, gamma
	// corrected.
	BindDefault(p.width, p.height)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	p.compositeProgram.Use()
	p.compositeProgram.SetUniform1i("baseImage", 0)
	p.compositeProgram.SetUniform1i("bloomImage", 1)
	p.compositeProgram.SetUniform1f("bloomStrength", Brightness(timeMs))

	gl.ActiveTexture(gl.TEXTURE0)
	p.base.Texture().Bind()
	gl.ActiveTexture(gl.TEXTURE1)
	p.pingPong[1].Texture().Bind()
	gl.ActiveTexture(gl.TEXTURE0)

	p.screenQuad.Draw(6)
}

// Delete releases every GPU resource owned by the pipeline. Safe to
// call more than once.
func (p *Pipeline) Delete() {
	p.sceneProgram.Delete()
	p.blurProgram.Delete()
	p.compositeProgram.Delete()
	p.spriteMesh.Delete()
	p.screenQuad.Delete()
	p.msaa.Delete()
	p.base.Delete()
	p.pingPong[0].Delete()
	p.pingPong[1].Delete()
}
