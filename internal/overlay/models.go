package overlay

import (
	"maps"
	"slices"
	"sync"

	"go.uber.org/zap"

	"container-indicator/internal/container"
	"container-indicator/internal/logger"
	"container-indicator/internal/profiling"
	"container-indicator/internal/registry"
	"container-indicator/internal/world"
)

// parts holds the overlay parts shared by every model. They are built once per
// Invalidate since they only depend on the indicator sprite.
type parts struct {
	standard *ModelPart
	bottom   *ModelPart
	pot      *ModelPart
	chest    *ModelPart
	// double chest overlays indexed by the left half's facing, N E S W
	double [4]*ModelPart
}

func buildParts(sprite Sprite) parts {
	p := parts{
		standard: NewModelPart(StandardOverlay(sprite), sprite, true),
		bottom:   NewModelPart(BottomOverlay(sprite), sprite, true),
		pot:      NewModelPart(PotOverlay(sprite), sprite, false),
		chest:    NewModelPart(ChestOverlay(sprite), sprite, false),
	}
	double := DoubleChestOverlay(sprite)
	for i, f := range world.HorizontalFaces {
		p.double[i] = NewModelPart(RotateQuadsY(double, FacingRotation(f)), sprite, false)
	}
	return p
}

// ModelRegistry maps block states to the models the renderer draws. Models are built
// on first use and cached per state until Invalidate.
type ModelRegistry struct {
	sprites SpriteSource
	log     *zap.Logger

	mu    sync.RWMutex
	parts parts
	cache map[world.State]Model
}

// NewModelRegistry creates a registry resolving textures through sprites.
func NewModelRegistry(sprites SpriteSource, log *zap.Logger) *ModelRegistry {
	r := &ModelRegistry{
		sprites: sprites,
		log:     logger.OrNop(log),
	}
	r.Invalidate()
	return r
}

// Invalidate drops every cached model and rebuilds the overlay parts. Call it after
// the atlas or the block models change.
func (r *ModelRegistry) Invalidate() {
	p := buildParts(r.sprites.Sprite(IndicatorSprite))
	r.mu.Lock()
	r.parts = p
	r.cache = make(map[world.State]Model)
	r.mu.Unlock()
	r.log.Debug("overlay models rebuilt")
}

// Model returns the model for s. States that show no indicator get the plain block
// model; the others get a CompositeModel over it.
func (r *ModelRegistry) Model(s world.State) Model {
	r.mu.RLock()
	m, ok := r.cache[s]
	r.mu.RUnlock()
	if ok {
		return m
	}

	defer profiling.Track("overlay.buildModel")()

	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.cache[s]; ok {
		return m
	}
	m = r.baseModel(s)
	if overlays := r.overlaysLocked(s); len(overlays) > 0 {
		m = NewCompositeModel(m, overlays...)
	}
	r.cache[s] = m
	return m
}

// Overlays returns the overlay parts a state shows, in draw order.
func (r *ModelRegistry) Overlays(s world.State) []Part {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.overlaysLocked(s)
}

// Len returns the number of cached models.
func (r *ModelRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cache)
}

func (r *ModelRegistry) overlaysLocked(s world.State) []Part {
	switch container.KindOf(s) {
	case container.KindSimple:
		if s.HasItems {
			return []Part{r.parts.standard}
		}
	case container.KindPot:
		if s.HasItems {
			return []Part{r.parts.pot}
		}
	case container.KindFurnace:
		switch {
		case s.HasInput && s.HasFuel:
			return []Part{r.parts.standard, r.parts.bottom}
		case s.HasInput:
			return []Part{r.parts.standard}
		case s.HasFuel:
			return []Part{r.parts.bottom}
		}
	case container.KindChest:
		if s.HasItems {
			return []Part{r.parts.chest}
		}
	case container.KindDoubleChestLeft:
		if s.HasItems {
			return []Part{r.parts.double[facingIndex(s.Facing)]}
		}
	case container.KindDoubleChestRight:
		// the left half draws the overlay for both
	}
	return nil
}

func facingIndex(f world.BlockFace) int {
	for i, h := range world.HorizontalFaces {
		if h == f {
			return i
		}
	}
	return 0
}

func (r *ModelRegistry) baseModel(s world.State) Model {
	def, ok := registry.Lookup(s.Type)
	if !ok || len(def.Elements) == 0 {
		return NewBakedModel(r.sprites.Sprite(MissingSprite))
	}
	rotation := def.ModelY
	if def.Orientable {
		rotation += FacingRotation(s.Facing)
	}
	quads := RotateQuadsY(BakeElements(def.Elements, r.sprites), rotation%360)
	particle := r.sprites.Sprite(def.Particle)
	return NewBakedModel(particle, newPart(quads, particle, true, def.AmbientOcclusion))
}

// BlockTextures lists every texture the registered block models reference, sorted.
// Load the block models first.
func BlockTextures() []string {
	set := make(map[string]struct{})
	for _, def := range registry.Blocks {
		if def.Particle != "" {
			set[def.Particle] = struct{}{}
		}
		for _, e := range def.Elements {
			for _, f := range e.Faces {
				set[f.Texture] = struct{}{}
			}
		}
	}
	return slices.Sorted(maps.Keys(set))
}
