package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"procsnake/internal/render"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Shape program: coloured world-space triangles.
	shapeProg uint32
	shapeVAO  uint32
	shapeVBO  uint32

	shUCamera     int32
	shUZoom       int32
	shUResolution int32

	// Disc sprite program.
	spriteProg uint32
	spriteVAO  uint32
	spriteVBO  uint32

	spUCamera     int32
	spUZoom       int32
	spUResolution int32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
}

func NewRenderer() (*Renderer, error) {
	shapeProg, err := linkProgram(shapeVertSrc, shapeFragSrc)
	if err != nil {
		return nil, fmt.Errorf("shape program: %w", err)
	}
	spriteProg, err := linkProgram(spriteVertSrc, discFragSrc)
	if err != nil {
		gl.DeleteProgram(shapeProg)
		return nil, fmt.Errorf("sprite program: %w", err)
	}

	r := &Renderer{
		shapeProg:  shapeProg,
		spriteProg: spriteProg,
	}

	// Shape VAO/VBO: streaming triangles, 6 floats per vertex (x, y, r, g, b, a).
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(render.MeshStride * 4)
	// aWorldPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aColor (vec4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(2*4))
	r.shapeVAO = vao
	r.shapeVBO = vbo

	gl.UseProgram(shapeProg)
	r.shUCamera = gl.GetUniformLocation(shapeProg, gl.Str("uCamera\x00"))
	r.shUZoom = gl.GetUniformLocation(shapeProg, gl.Str("uZoom\x00"))
	r.shUResolution = gl.GetUniformLocation(shapeProg, gl.Str("uResolution\x00"))

	// Sprite VAO/VBO: streaming buffer for point sprites.
	// Each sprite: 8 floats (x, y, size, r, g, b, a, rotation).
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride = int32(render.SpriteStride * 4)
	// aWorldPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	// aRotation (float)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	gl.UseProgram(spriteProg)
	r.spUCamera = gl.GetUniformLocation(spriteProg, gl.Str("uCamera\x00"))
	r.spUZoom = gl.GetUniformLocation(spriteProg, gl.Str("uZoom\x00"))
	r.spUResolution = gl.GetUniformLocation(spriteProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.shapeVBO, r.spriteVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.shapeVAO, r.spriteVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.shapeProg, r.spriteProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// BeginFrame clears to bg and sets the viewport.
func (r *Renderer) BeginFrame(bg render.RGB, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	cr, cg, cb := bg.Floats()
	gl.ClearColor(cr, cg, cb, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawMesh renders a triangle list built by the render package.
func (r *Renderer) DrawMesh(m *render.Mesh, cam Camera, fbW, fbH int) {
	count := m.Len()
	if count == 0 {
		return
	}

	gl.UseProgram(r.shapeProg)
	gl.BindVertexArray(r.shapeVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.shapeVBO)

	gl.Uniform2f(r.shUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.shUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.shUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, len(m.Verts)*4, gl.Ptr(m.Verts), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
}

// DrawSprites renders round point sprites.
// buf format: [x, y, size, r, g, b, a, rotation] * N (8 floats per sprite).
func (r *Renderer) DrawSprites(buf []float32, cam Camera, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / render.SpriteStride

	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Uniform2f(r.spUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.spUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.spUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*render.SpriteStride*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}

// DrawFrame draws a built frame: fill, stroke, then sprites on top.
func (r *Renderer) DrawFrame(f *render.Frame, cam Camera, fbW, fbH int) {
	r.DrawMesh(&f.Fill, cam, fbW, fbH)
	r.DrawMesh(&f.Stroke, cam, fbW, fbH)
	r.DrawSprites(f.Sprites, cam, fbW, fbH)
}
