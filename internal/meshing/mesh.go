// Package meshing turns chunks into vertex buffers, block models and indicator overlays
// included.
package meshing

import (
	"github.com/go-gl/mathgl/mgl32"

	"container-indicator/internal/overlay"
	"container-indicator/internal/profiling"
	"container-indicator/internal/registry"
	"container-indicator/internal/world"
)

// FloatsPerVertex is the vertex layout: position (3), uv (2), colour (3).
const FloatsPerVertex = 8

// VerticesPerQuad is two triangles.
const VerticesPerQuad = 6

// ModelSource resolves block states to models.
type ModelSource interface {
	Model(s world.State) overlay.Model
}

// BlockSource is the read access the mesher needs for neighbour culling.
type BlockSource interface {
	State(p world.Pos) (world.State, bool)
}

// Mesh is the output for one chunk. Positions are in world space.
type Mesh struct {
	Coord        world.ChunkCoord
	Vertices     []float32
	Quads        int
	OverlayQuads int
}

// VertexCount returns the number of vertices in the mesh.
func (m Mesh) VertexCount() int {
	return len(m.Vertices) / FloatsPerVertex
}

// Mesher builds chunk meshes. It is safe for concurrent use as long as its sources are.
type Mesher struct {
	blocks BlockSource
	models ModelSource
	tints  overlay.TintSource
}

func NewMesher(blocks BlockSource, models ModelSource, tints overlay.TintSource) *Mesher {
	return &Mesher{blocks: blocks, models: models, tints: tints}
}

// face brightness, matching the usual top-lit look
func brightness(f world.BlockFace) float32 {
	switch f {
	case world.FaceTop:
		return 1
	case world.FaceBottom:
		return 0.5
	case world.FaceNorth, world.FaceSouth:
		return 0.8
	}
	return 0.6
}

// BuildChunk meshes every block of c. A culling part contributes the quads of each
// side whose neighbour is not solid plus its unculled quads; a part that does not cull
// contributes everything in one query.
func (m *Mesher) BuildChunk(c *world.Chunk) Mesh {
	defer profiling.Track("meshing.BuildChunk")()

	out := Mesh{Coord: world.ChunkCoord{X: c.X, Y: c.Y, Z: c.Z}}
	c.ForEachBlock(func(p world.Pos, s world.State) {
		origin := mgl32.Vec3{float32(p[0]), float32(p[1]), float32(p[2])}
		for _, part := range m.models.Model(s).CollectParts() {
			if !part.CullsFaces() {
				m.emit(&out, part.Quads(world.FaceNone), origin)
				continue
			}
			for _, f := range world.Faces {
				if m.hidden(p, f) {
					continue
				}
				m.emit(&out, part.Quads(f), origin)
			}
			m.emit(&out, part.Quads(world.FaceNone), origin)
		}
	})
	return out
}

// hidden reports whether the neighbour of p across f is a solid block. Unloaded
// neighbours never hide anything.
func (m *Mesher) hidden(p world.Pos, f world.BlockFace) bool {
	o := f.Offset()
	n, ok := m.blocks.State(world.Pos{p[0] + o[0], p[1] + o[1], p[2] + o[2]})
	return ok && !n.IsAir() && registry.IsSolid(n.Type)
}

func (m *Mesher) emit(out *Mesh, quads []overlay.Quad, origin mgl32.Vec3) {
	for _, q := range quads {
		color := overlay.RGB(overlay.TintColor(m.tints, q.TintIndex))
		if q.Shade {
			color = color.Mul(brightness(q.Face))
		}
		for _, i := range [VerticesPerQuad]int{0, 1, 2, 2, 3, 0} {
			v := q.Vertices[i].Add(origin)
			uv := q.UVs[i]
			out.Vertices = append(out.Vertices,
				v.X(), v.Y(), v.Z(),
				uv.X(), uv.Y(),
				color.X(), color.Y(), color.Z(),
			)
		}
		out.Quads++
		if q.Sprite == overlay.IndicatorSprite {
			out.OverlayQuads++
		}
	}
}
