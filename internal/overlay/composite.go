package overlay

// Model is what a renderer draws for one block state.
type Model interface {
	CollectParts() []Part
	ParticleSprite() Sprite
}

// BakedModel is a plain block model made of fixed parts.
type BakedModel struct {
	parts    []Part
	particle Sprite
}

// NewBakedModel creates a model from parts. particle is used for break effects.
func NewBakedModel(particle Sprite, parts ...Part) *BakedModel {
	return &BakedModel{parts: parts, particle: particle}
}

func (m *BakedModel) CollectParts() []Part {
	return append([]Part(nil), m.parts...)
}

func (m *BakedModel) ParticleSprite() Sprite {
	return m.particle
}

// CompositeModel draws a base model with overlay parts on top. The base parts always
// come first and the overlays follow in the order given.
type CompositeModel struct {
	base     Model
	overlays []Part
}

// NewCompositeModel layers overlays over base.
func NewCompositeModel(base Model, overlays ...Part) *CompositeModel {
	return &CompositeModel{base: base, overlays: overlays}
}

func (m *CompositeModel) CollectParts() []Part {
	parts := m.base.CollectParts()
	return append(parts, m.overlays...)
}

// ParticleSprite is always the base model's, never the overlay texture.
func (m *CompositeModel) ParticleSprite() Sprite {
	return m.base.ParticleSprite()
}

// Base returns the wrapped model.
func (m *CompositeModel) Base() Model {
	return m.base
}

// Overlays returns the overlay parts in draw order.
func (m *CompositeModel) Overlays() []Part {
	return append([]Part(nil), m.overlays...)
}
