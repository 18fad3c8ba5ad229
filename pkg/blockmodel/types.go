package blockmodel

import (
	"encoding/json"
	"maps"
)

// Model is a block model in the JSON model format. Coordinates are in sixteenths of a
// block.
type Model struct {
	Parent           string            `json:"parent"`
	AmbientOcclusion *bool             `json:"ambientocclusion"`
	Textures         map[string]string `json:"textures"`
	Elements         []Element         `json:"elements"`
}

type Element struct {
	From     [3]float32      `json:"from"`
	To       [3]float32      `json:"to"`
	Rotation *Rotation       `json:"rotation"`
	Shade    *bool           `json:"shade"`
	Faces    map[string]Face `json:"faces"`
}

type Rotation struct {
	Origin  [3]float32 `json:"origin"`
	Angle   float32    `json:"angle"`
	Axis    string     `json:"axis"`
	Rescale bool       `json:"rescale"`
}

type Face struct {
	UV        *[4]float32 `json:"uv"`
	Texture   string      `json:"texture"`
	CullFace  string      `json:"cullface"`
	Rotation  int         `json:"rotation"`
	TintIndex *int        `json:"tintindex"`
}

// Tint returns the face's tint index, or -1 when it has none.
func (f Face) Tint() int {
	if f.TintIndex == nil {
		return -1
	}
	return *f.TintIndex
}

// IsFullCube reports whether the element spans the whole block.
func (e Element) IsFullCube() bool {
	const eps = 0.001
	for i := range 3 {
		if e.From[i] > eps || e.From[i] < -eps {
			return false
		}
		if e.To[i] < 16-eps || e.To[i] > 16+eps {
			return false
		}
	}
	return true
}

// clone deep copies the element so a child model can resolve textures without touching
// the parent's cached copy.
func (e Element) clone() Element {
	out := e
	out.Faces = maps.Clone(e.Faces)
	if e.Rotation != nil {
		r := *e.Rotation
		out.Rotation = &r
	}
	return out
}

// HasOcclusion reports whether ambient occlusion is on, which is the default.
func (m *Model) HasOcclusion() bool {
	return m.AmbientOcclusion == nil || *m.AmbientOcclusion
}

// BlockState maps variant keys such as "facing=north,type=left" to models.
type BlockState struct {
	Variants map[string]BlockStateVariants `json:"variants"`
}

// BlockStateVariants accepts either a single variant object or an array of them.
type BlockStateVariants []Variant

func (v *BlockStateVariants) UnmarshalJSON(data []byte) error {
	var variants []Variant
	if err := json.Unmarshal(data, &variants); err == nil {
		*v = variants
		return nil
	}

	var single Variant
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*v = []Variant{single}
	return nil
}

// Variant names a model and the quarter-turn rotation applied to it.
type Variant struct {
	Model string `json:"model"`
	Y     int    `json:"y"`
}
