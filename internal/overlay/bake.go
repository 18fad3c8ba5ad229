package overlay

import (
	"github.com/go-gl/mathgl/mgl32"

	"container-indicator/internal/world"
	"container-indicator/pkg/blockmodel"
)

// BakeElements turns model elements into quads. Faces without an explicit UV get the
// region the element covers on that side. Element rotations are not applied.
func BakeElements(elements []blockmodel.Element, sprites SpriteSource) []Quad {
	var quads []Quad
	for _, e := range elements {
		from := mgl32.Vec3(e.From)
		to := mgl32.Vec3(e.To)
		for _, face := range world.Faces {
			f, ok := e.Faces[face.String()]
			if !ok {
				continue
			}
			uv := defaultUV(face, e.From, e.To)
			if f.UV != nil {
				uv = *f.UV
			}
			q := newQuad(sprites.Sprite(f.Texture), f.Tint(), face, world.ParseFace(f.CullFace), from, to, uv)
			q.Shade = e.Shade == nil || *e.Shade
			quads = append(quads, q)
		}
	}
	return quads
}

func defaultUV(face world.BlockFace, from, to [3]float32) [4]float32 {
	switch face {
	case world.FaceBottom:
		return [4]float32{from[0], 16 - to[2], to[0], 16 - from[2]}
	case world.FaceTop:
		return [4]float32{from[0], from[2], to[0], to[2]}
	case world.FaceNorth:
		return [4]float32{16 - to[0], 16 - to[1], 16 - from[0], 16 - from[1]}
	case world.FaceSouth:
		return [4]float32{from[0], 16 - to[1], to[0], 16 - from[1]}
	case world.FaceWest:
		return [4]float32{from[2], 16 - to[1], to[2], 16 - from[1]}
	case world.FaceEast:
		return [4]float32{16 - to[2], 16 - to[1], 16 - from[2], 16 - from[1]}
	}
	return fullUV
}
