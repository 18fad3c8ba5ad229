package chunks

import (
	"github.com/go-gl/mathgl/mgl32"

	"container-indicator/internal/world"
)

// chunkMargin inflates chunk bounds so blocks straddling a plane are not dropped.
const chunkMargin float32 = 1

// frustum holds the six clip planes (left, right, bottom, top, near, far) as
// normalised (a, b, c, d) with points inside satisfying a*x + b*y + c*z + d >= 0.
type frustum [6]mgl32.Vec4

func newFrustum(clip mgl32.Mat4) frustum {
	r0, r1, r2, r3 := clip.Row(0), clip.Row(1), clip.Row(2), clip.Row(3)
	f := frustum{
		r3.Add(r0), r3.Sub(r0),
		r3.Add(r1), r3.Sub(r1),
		r3.Add(r2), r3.Sub(r2),
	}
	for i, p := range f {
		if l := p.Vec3().Len(); l > 0 {
			f[i] = p.Mul(1 / l)
		}
	}
	return f
}

// intersectsBox reports whether the box lo..hi is at least partly inside.
func (f frustum) intersectsBox(lo, hi mgl32.Vec3) bool {
	for _, p := range f {
		// the corner furthest along the plane normal
		v := hi
		for i := range 3 {
			if p[i] < 0 {
				v[i] = lo[i]
			}
		}
		if p.Vec3().Dot(v)+p[3] < 0 {
			return false
		}
	}
	return true
}

func (f frustum) containsChunk(coord world.ChunkCoord) bool {
	lo := mgl32.Vec3{
		float32(coord.X*world.ChunkSizeX) - chunkMargin,
		float32(coord.Y*world.ChunkSizeY) - chunkMargin,
		float32(coord.Z*world.ChunkSizeZ) - chunkMargin,
	}
	hi := lo.Add(mgl32.Vec3{
		world.ChunkSizeX + 2*chunkMargin,
		world.ChunkSizeY + 2*chunkMargin,
		world.ChunkSizeZ + 2*chunkMargin,
	})
	return f.intersectsBox(lo, hi)
}
