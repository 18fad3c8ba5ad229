package overlay

import (
	"github.com/go-gl/mathgl/mgl32"

	"container-indicator/internal/world"
)

// Tint channels. The renderer maps them to the configured colours.
const (
	TintIndicator = 0
	TintFuel      = 1
)

// QuadsPerOverlay is the number of quads every overlay shape has: a four-piece rim
// plus one strip per side.
const QuadsPerOverlay = 8

type box struct {
	face     world.BlockFace
	from, to mgl32.Vec3
}

// Boxes are in sixteenths of a block. The small offsets outside the block keep the
// overlay from z-fighting with the block's own faces.
var (
	standardBoxes = [QuadsPerOverlay]box{
		{world.FaceTop, mgl32.Vec3{0, 16.01, 0}, mgl32.Vec3{16, 16.02, 1}},
		{world.FaceTop, mgl32.Vec3{0, 16.01, 15}, mgl32.Vec3{16, 16.02, 16}},
		{world.FaceTop, mgl32.Vec3{0, 16.01, 1}, mgl32.Vec3{1, 16.02, 15}},
		{world.FaceTop, mgl32.Vec3{15, 16.01, 1}, mgl32.Vec3{16, 16.02, 15}},
		{world.FaceNorth, mgl32.Vec3{0, 15, -0.01}, mgl32.Vec3{16, 16, -0.001}},
		{world.FaceSouth, mgl32.Vec3{0, 15, 16.001}, mgl32.Vec3{16, 16, 16.01}},
		{world.FaceWest, mgl32.Vec3{-0.01, 15, 0}, mgl32.Vec3{-0.001, 16, 16}},
		{world.FaceEast, mgl32.Vec3{16.001, 15, 0}, mgl32.Vec3{16.01, 16, 16}},
	}
	bottomBoxes = [QuadsPerOverlay]box{
		{world.FaceBottom, mgl32.Vec3{0, -0.02, 0}, mgl32.Vec3{16, -0.01, 1}},
		{world.FaceBottom, mgl32.Vec3{0, -0.02, 15}, mgl32.Vec3{16, -0.01, 16}},
		{world.FaceBottom, mgl32.Vec3{0, -0.02, 1}, mgl32.Vec3{1, -0.01, 15}},
		{world.FaceBottom, mgl32.Vec3{15, -0.02, 1}, mgl32.Vec3{16, -0.01, 15}},
		{world.FaceNorth, mgl32.Vec3{0, 0, -0.01}, mgl32.Vec3{16, 1, -0.001}},
		{world.FaceSouth, mgl32.Vec3{0, 0, 16.001}, mgl32.Vec3{16, 1, 16.01}},
		{world.FaceWest, mgl32.Vec3{-0.01, 0, 0}, mgl32.Vec3{-0.001, 1, 16}},
		{world.FaceEast, mgl32.Vec3{16.001, 0, 0}, mgl32.Vec3{16.01, 1, 16}},
	}
	potBoxes = [QuadsPerOverlay]box{
		{world.FaceTop, mgl32.Vec3{1, 16.01, 1}, mgl32.Vec3{15, 16.02, 2}},
		{world.FaceTop, mgl32.Vec3{1, 16.01, 14}, mgl32.Vec3{15, 16.02, 15}},
		{world.FaceTop, mgl32.Vec3{1, 16.01, 2}, mgl32.Vec3{2, 16.02, 14}},
		{world.FaceTop, mgl32.Vec3{14, 16.01, 2}, mgl32.Vec3{15, 16.02, 14}},
		{world.FaceNorth, mgl32.Vec3{1, 15, 0.99}, mgl32.Vec3{15, 16, 0.999}},
		{world.FaceSouth, mgl32.Vec3{1, 15, 15.001}, mgl32.Vec3{15, 16, 15.01}},
		{world.FaceWest, mgl32.Vec3{0.99, 15, 1}, mgl32.Vec3{0.999, 16, 15}},
		{world.FaceEast, mgl32.Vec3{15.001, 15, 1}, mgl32.Vec3{15.01, 16, 15}},
	}
	chestBoxes = [QuadsPerOverlay]box{
		{world.FaceTop, mgl32.Vec3{1, 9.01, 1}, mgl32.Vec3{15, 9.02, 2}},
		{world.FaceTop, mgl32.Vec3{1, 9.01, 14}, mgl32.Vec3{15, 9.02, 15}},
		{world.FaceTop, mgl32.Vec3{1, 9.01, 2}, mgl32.Vec3{2, 9.02, 14}},
		{world.FaceTop, mgl32.Vec3{14, 9.01, 2}, mgl32.Vec3{15, 9.02, 14}},
		{world.FaceNorth, mgl32.Vec3{1, 8, 0.99}, mgl32.Vec3{15, 9, 0.999}},
		{world.FaceSouth, mgl32.Vec3{1, 8, 15.001}, mgl32.Vec3{15, 9, 15.01}},
		{world.FaceWest, mgl32.Vec3{0.99, 8, 1}, mgl32.Vec3{0.999, 9, 15}},
		{world.FaceEast, mgl32.Vec3{15.001, 8, 1}, mgl32.Vec3{15.01, 9, 15}},
	}
	// The double chest overlay spans the left half and its partner to the east (+X).
	doubleChestBoxes = [QuadsPerOverlay]box{
		{world.FaceTop, mgl32.Vec3{1, 9.01, 1}, mgl32.Vec3{31, 9.02, 2}},
		{world.FaceTop, mgl32.Vec3{1, 9.01, 14}, mgl32.Vec3{31, 9.02, 15}},
		{world.FaceTop, mgl32.Vec3{1, 9.01, 2}, mgl32.Vec3{2, 9.02, 14}},
		{world.FaceTop, mgl32.Vec3{30, 9.01, 2}, mgl32.Vec3{31, 9.02, 14}},
		{world.FaceNorth, mgl32.Vec3{1, 8, 0.99}, mgl32.Vec3{31, 9, 0.999}},
		{world.FaceSouth, mgl32.Vec3{1, 8, 15.001}, mgl32.Vec3{31, 9, 15.01}},
		{world.FaceWest, mgl32.Vec3{0.99, 8, 1}, mgl32.Vec3{0.999, 9, 15}},
		{world.FaceEast, mgl32.Vec3{31.001, 8, 1}, mgl32.Vec3{31.01, 9, 15}},
	}
)

var fullUV = [4]float32{0, 0, 16, 16}

func build(sprite Sprite, tint int, culled bool, boxes *[QuadsPerOverlay]box) []Quad {
	quads := make([]Quad, 0, len(boxes))
	for _, b := range boxes {
		cull := world.FaceNone
		if culled {
			cull = b.face
		}
		quads = append(quads, newQuad(sprite, tint, b.face, cull, b.from, b.to, fullUV))
	}
	return quads
}

// StandardOverlay is the rim drawn around the top edge of a full block. Each quad is
// culled by the face it sits on.
func StandardOverlay(sprite Sprite) []Quad {
	return build(sprite, TintIndicator, true, &standardBoxes)
}

// BottomOverlay mirrors StandardOverlay at the bottom edge and uses the fuel tint.
func BottomOverlay(sprite Sprite) []Quad {
	return build(sprite, TintFuel, true, &bottomBoxes)
}

// PotOverlay is the rim around the top of a decorated pot, inset by one pixel.
func PotOverlay(sprite Sprite) []Quad {
	return build(sprite, TintIndicator, false, &potBoxes)
}

// ChestOverlay is the rim around the lid seam of a single chest.
func ChestOverlay(sprite Sprite) []Quad {
	return build(sprite, TintIndicator, false, &chestBoxes)
}

// DoubleChestOverlay is the lid seam rim of a north-facing double chest seen from its
// left half. Rotate it with RotateQuadsY for other facings.
func DoubleChestOverlay(sprite Sprite) []Quad {
	return build(sprite, TintIndicator, false, &doubleChestBoxes)
}

var blockCenter = mgl32.Vec3{0.5, 0, 0.5}

// quarterTurns holds cos and sin for 0..3 clockwise quarter turns seen from above.
var quarterTurns = [4][2]float32{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// RotateQuadsY turns quads clockwise (seen from above) about the vertical axis through
// the block centre. degrees must be a multiple of 90; a multiple of 360 returns quads
// unchanged. Horizontal faces and cull faces turn along with the geometry.
func RotateQuadsY(quads []Quad, degrees int) []Quad {
	if degrees == 0 {
		return quads
	}
	steps := (degrees/90%4 + 4) % 4
	if steps == 0 {
		return quads
	}

	c, s := quarterTurns[steps][0], quarterTurns[steps][1]
	m := mgl32.Mat3{c, 0, s, 0, 1, 0, -s, 0, c}

	out := make([]Quad, len(quads))
	for i, q := range quads {
		for j, v := range q.Vertices {
			q.Vertices[j] = m.Mul3x1(v.Sub(blockCenter)).Add(blockCenter)
		}
		q.Face = rotateFace(q.Face, steps)
		q.CullFace = rotateFace(q.CullFace, steps)
		out[i] = q
	}
	return out
}

func rotateFace(f world.BlockFace, steps int) world.BlockFace {
	for range steps {
		f = f.ClockWise()
	}
	return f
}

// FacingRotation returns the clockwise Y rotation that turns a north-facing model to
// face f.
func FacingRotation(f world.BlockFace) int {
	switch f {
	case world.FaceEast:
		return 90
	case world.FaceSouth:
		return 180
	case world.FaceWest:
		return 270
	}
	return 0
}
