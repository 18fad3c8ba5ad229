// Package overlay builds the indicator geometry drawn on top of container blocks and
// the models that combine it with a block's own geometry.
package overlay

import (
	"github.com/go-gl/mathgl/mgl32"

	"container-indicator/internal/world"
)

// Quad is a planar four-vertex polygon in block space (0..1 per axis). Vertices wind
// counter-clockwise seen from outside. Quads are shared between models and must be
// treated as read-only.
type Quad struct {
	Vertices [4]mgl32.Vec3
	UVs      [4]mgl32.Vec2

	// Face is the side the quad faces; CullFace is the neighbour that hides it, or
	// FaceNone when nothing does.
	Face      world.BlockFace
	CullFace  world.BlockFace
	TintIndex int
	Sprite    string
	Shade     bool
}

// Direction is the face the quad is filed under: its cull face, or its own face when
// it is never culled.
func (q Quad) Direction() world.BlockFace {
	if q.CullFace != world.FaceNone {
		return q.CullFace
	}
	return q.Face
}

// Normal returns the unit normal implied by the winding order.
func (q Quad) Normal() mgl32.Vec3 {
	n := q.Vertices[1].Sub(q.Vertices[0]).Cross(q.Vertices[2].Sub(q.Vertices[0]))
	if n.Len() == 0 {
		return mgl32.Vec3{}
	}
	return n.Normalize()
}

// corners lists, per face, which of the box's min (0) or max (1) coordinate each
// vertex takes on x, y and z. The order is counter-clockwise from outside, starting at
// the corner that gets UV (0,0).
var corners = map[world.BlockFace][4][3]int{
	world.FaceTop:    {{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}},
	world.FaceBottom: {{0, 0, 1}, {0, 0, 0}, {1, 0, 0}, {1, 0, 1}},
	world.FaceNorth:  {{1, 1, 0}, {1, 0, 0}, {0, 0, 0}, {0, 1, 0}},
	world.FaceSouth:  {{0, 1, 1}, {0, 0, 1}, {1, 0, 1}, {1, 1, 1}},
	world.FaceWest:   {{0, 1, 0}, {0, 0, 0}, {0, 0, 1}, {0, 1, 1}},
	world.FaceEast:   {{1, 1, 1}, {1, 0, 1}, {1, 0, 0}, {1, 1, 0}},
}

// newQuad builds the quad on one face of the box from..to, given in sixteenths of a
// block. uv is the sprite region in sixteenths (u0, v0, u1, v1); vertex i gets UV
// corner (0,0), (0,1), (1,1), (1,0) of that region in order.
func newQuad(sprite Sprite, tint int, face, cull world.BlockFace, from, to mgl32.Vec3, uv [4]float32) Quad {
	box := [2]mgl32.Vec3{from.Mul(1.0 / 16), to.Mul(1.0 / 16)}
	q := Quad{
		Face:      face,
		CullFace:  cull,
		TintIndex: tint,
		Sprite:    sprite.Name,
	}
	for i, c := range corners[face] {
		q.Vertices[i] = mgl32.Vec3{box[c[0]][0], box[c[1]][1], box[c[2]][2]}
	}
	u0, v0 := sprite.U(uv[0]/16), sprite.V(uv[1]/16)
	u1, v1 := sprite.U(uv[2]/16), sprite.V(uv[3]/16)
	q.UVs = [4]mgl32.Vec2{{u0, v0}, {u0, v1}, {u1, v1}, {u1, v0}}
	return q
}
