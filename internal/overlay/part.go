package overlay

import "container-indicator/internal/world"

// Part is one layer of geometry a renderer draws for a block.
type Part interface {
	// Quads returns the quads filed under side. Parts that do not cull return every
	// quad for any side, FaceNone included.
	Quads(side world.BlockFace) []Quad
	// CullsFaces reports whether Quads depends on side. When it is false a single
	// query yields the whole part.
	CullsFaces() bool
	AmbientOcclusion() bool
	ParticleSprite() Sprite
}

// ModelPart is an immutable bundle of quads. With culling the quads are bucketed by
// Direction and a FaceNone query returns those without a cull face.
type ModelPart struct {
	buckets [len(world.Faces) + 1][]Quad
	all     []Quad
	culled  bool
	ao      bool
	sprite  Sprite
}

var _ Part = (*ModelPart)(nil)

// NewModelPart wraps overlay quads. Overlay parts never use ambient occlusion.
func NewModelPart(quads []Quad, sprite Sprite, useCullFace bool) *ModelPart {
	return newPart(quads, sprite, useCullFace, false)
}

func newPart(quads []Quad, sprite Sprite, useCullFace, ao bool) *ModelPart {
	p := &ModelPart{
		all:    append([]Quad(nil), quads...),
		culled: useCullFace,
		ao:     ao,
		sprite: sprite,
	}
	if !useCullFace {
		return p
	}
	for _, q := range p.all {
		i := bucket(q.CullFace)
		p.buckets[i] = append(p.buckets[i], q)
	}
	return p
}

// bucket maps FaceNone to 0 and the real faces to 1..6.
func bucket(f world.BlockFace) int {
	return int(f) + 1
}

func (p *ModelPart) Quads(side world.BlockFace) []Quad {
	if !p.culled {
		return p.all
	}
	i := bucket(side)
	if i < 0 || i >= len(p.buckets) {
		return nil
	}
	return p.buckets[i]
}

func (p *ModelPart) CullsFaces() bool       { return p.culled }
func (p *ModelPart) AmbientOcclusion() bool { return p.ao }
func (p *ModelPart) ParticleSprite() Sprite { return p.sprite }

// Len returns the number of quads in the part.
func (p *ModelPart) Len() int {
	return len(p.all)
}
