// Package direction draws a small compass at the bottom of the screen: an arrow that
// keeps pointing north while the camera orbits, and the letter of the side the camera
// is looking towards. It is drawn in the configured indicator colour.
package direction

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"container-indicator/assets"
	"container-indicator/internal/graphics"
	"container-indicator/internal/graphics/renderer"
	"container-indicator/internal/overlay"
	"container-indicator/internal/profiling"
	"container-indicator/internal/world"
)

const (
	vertShader = "shaders/direction.vert"
	fragShader = "shaders/direction.frag"
)

var (
	arrowOffset  = mgl32.Vec2{0, -0.86}
	letterOffset = mgl32.Vec2{0, -0.74}
)

// segment is a line from (x0, y0) to (x1, y1) in screen units before the aspect
// correction.
type segment [4]float32

var arrow = []segment{
	{0, -0.05, 0, 0.05},
	{-0.025, 0.02, 0, 0.05},
	{0.025, 0.02, 0, 0.05},
	{-0.015, -0.05, 0.015, -0.05},
}

var letters = map[world.BlockFace][]segment{
	world.FaceNorth: {
		{-0.02, -0.02, -0.02, 0.02},
		{-0.02, 0.02, 0.02, -0.02},
		{0.02, -0.02, 0.02, 0.02},
	},
	world.FaceEast: {
		{-0.02, -0.02, -0.02, 0.02},
		{-0.02, 0.02, 0.02, 0.02},
		{-0.02, 0, 0.01, 0},
		{-0.02, -0.02, 0.02, -0.02},
	},
	world.FaceSouth: {
		{0.02, 0.02, -0.02, 0.02},
		{-0.02, 0.02, -0.02, 0},
		{-0.02, 0, 0.02, 0},
		{0.02, 0, 0.02, -0.02},
		{0.02, -0.02, -0.02, -0.02},
	},
	world.FaceWest: {
		{-0.02, 0.02, -0.01, -0.02},
		{-0.01, -0.02, 0, 0.01},
		{0, 0.01, 0.01, -0.02},
		{0.01, -0.02, 0.02, 0.02},
	},
}

// span is a range of vertices in the line buffer.
type span struct {
	first, count int32
}

// geometry flattens the arrow and every letter into one GL_LINES vertex list.
func geometry() (verts []float32, arrowSpan span, letterSpans map[world.BlockFace]span) {
	add := func(segs []segment) span {
		s := span{first: int32(len(verts) / 2), count: int32(2 * len(segs))}
		for _, seg := range segs {
			verts = append(verts, seg[:]...)
		}
		return s
	}
	arrowSpan = add(arrow)
	letterSpans = make(map[world.BlockFace]span, len(letters))
	for _, f := range world.HorizontalFaces {
		letterSpans[f] = add(letters[f])
	}
	return verts, arrowSpan, letterSpans
}

var _ renderer.Renderable = (*Direction)(nil)

type Direction struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32

	tint    overlay.TintSource
	arrow   span
	letters map[world.BlockFace]span
}

// NewDirection creates the compass. tint supplies its colour; nil draws it white.
func NewDirection(tint overlay.TintSource) *Direction {
	return &Direction{tint: tint}
}

func (d *Direction) Init() error {
	var err error
	d.shader, err = graphics.NewShader(assets.FS, vertShader, fragShader)
	if err != nil {
		return err
	}

	var verts []float32
	verts, d.arrow, d.letters = geometry()

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)
	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.BindVertexArray(0)
	return nil
}

func (d *Direction) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderDirection")()

	color := mgl32.Vec3{1, 1, 1}
	if d.tint != nil {
		color = overlay.RGB(d.tint.IndicatorColor())
	}

	gl.Disable(gl.DEPTH_TEST)
	defer gl.Enable(gl.DEPTH_TEST)

	d.shader.Use()
	d.shader.SetFloat("aspectRatio", ctx.Camera.AspectRatio)
	d.shader.SetVec3("color", color)
	gl.BindVertexArray(d.vao)

	// turning clockwise by the yaw keeps the arrow on north
	d.shader.SetVec2("offset", arrowOffset)
	d.shader.SetFloat("rotation", mgl32.DegToRad(ctx.Camera.Yaw))
	gl.DrawArrays(gl.LINES, d.arrow.first, d.arrow.count)

	if s, ok := d.letters[ctx.Camera.Heading()]; ok {
		d.shader.SetVec2("offset", letterOffset)
		d.shader.SetFloat("rotation", 0)
		gl.DrawArrays(gl.LINES, s.first, s.count)
	}
	gl.BindVertexArray(0)
}

func (d *Direction) Dispose() {
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
	}
	if d.vbo != 0 {
		gl.DeleteBuffers(1, &d.vbo)
	}
	if d.shader != nil {
		d.shader.Delete()
	}
}

// SetViewport is a no-op; the aspect ratio is read from the camera every frame.
func (d *Direction) SetViewport(width, height int) {}
