package blockmodel

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
)

// Loader reads models and blockstates from an asset tree laid out as
// models/<name>.json and blockstates/<name>.json. Loaded models are cached and safe to
// share between goroutines; callers must not modify them.
type Loader struct {
	fsys fs.FS

	mu         sync.Mutex
	modelCache map[string]*Model
}

func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:       fsys,
		modelCache: make(map[string]*Model),
	}
}

// LoadModel loads a model and its parent chain. Names without a directory are looked
// up under block/.
func (l *Loader) LoadModel(name string) (*Model, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadModel(name, 0)
}

const maxParentDepth = 16

func (l *Loader) loadModel(name string, depth int) (*Model, error) {
	name = strings.TrimPrefix(name, "minecraft:")
	if !strings.Contains(name, "/") {
		name = "block/" + name
	}
	if model, ok := l.modelCache[name]; ok {
		return model, nil
	}
	if depth > maxParentDepth {
		return nil, fmt.Errorf("model %s: parent chain too deep", name)
	}

	data, err := fs.ReadFile(l.fsys, path.Join("models", name+".json"))
	if err != nil {
		return nil, fmt.Errorf("could not read model file: %w", err)
	}
	model, err := ParseModel(data)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", name, err)
	}

	if model.Parent != "" && !strings.HasPrefix(model.Parent, "builtin/") {
		parent, err := l.loadModel(model.Parent, depth+1)
		if err != nil {
			return nil, fmt.Errorf("could not load parent model '%s': %w", model.Parent, err)
		}
		inherit(model, parent)
	}

	l.resolveTextures(model)
	l.modelCache[name] = model
	return model, nil
}

// ParseModel decodes a single model file without resolving its parent.
func ParseModel(data []byte) (*Model, error) {
	var model Model
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("could not unmarshal model json: %w", err)
	}
	if model.Textures == nil {
		model.Textures = make(map[string]string)
	}
	return &model, nil
}

func inherit(model, parent *Model) {
	if model.AmbientOcclusion == nil {
		model.AmbientOcclusion = parent.AmbientOcclusion
	}
	if len(model.Elements) == 0 {
		model.Elements = make([]Element, len(parent.Elements))
		for i, e := range parent.Elements {
			model.Elements[i] = e.clone()
		}
	}
	for key, val := range parent.Textures {
		if _, ok := model.Textures[key]; !ok {
			model.Textures[key] = val
		}
	}
}

func (l *Loader) resolveTextures(m *Model) {
	for i := range m.Elements {
		for faceName, face := range m.Elements[i].Faces {
			resolved := ResolveTexture(face.Texture, m)
			if resolved != face.Texture {
				face.Texture = resolved
				m.Elements[i].Faces[faceName] = face
			}
		}
	}
}

// ResolveTexture follows "#name" references through the model's texture map.
func ResolveTexture(textureName string, m *Model) string {
	for i := 0; i < 10 && strings.HasPrefix(textureName, "#"); i++ {
		resolved, ok := m.Textures[strings.TrimPrefix(textureName, "#")]
		if !ok {
			break
		}
		textureName = resolved
	}
	return textureName
}

func (l *Loader) LoadBlockState(name string) (*BlockState, error) {
	data, err := fs.ReadFile(l.fsys, path.Join("blockstates", name+".json"))
	if err != nil {
		return nil, fmt.Errorf("could not read blockstate file: %w", err)
	}

	var blockState BlockState
	if err := json.Unmarshal(data, &blockState); err != nil {
		return nil, fmt.Errorf("could not unmarshal blockstate json: %w", err)
	}
	return &blockState, nil
}
