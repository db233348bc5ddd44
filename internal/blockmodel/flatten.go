package blockmodel

import (
	"strings"

	lru "github.com/hashicorp/golang-lru"

	"github.com/Schem-at/Schematic-Mesher-sub001/internal/voxel"
)

// Flattener loads a model by id, recursively resolves its `parent`
// chain, merges textures/elements, and resolves every
// texture-variable chain to a concrete path or the missing-texture
// sentinel. One Flattener is scoped to a single Mesh call; its cache is
// write-once within that call.
type Flattener struct {
	pack     ResourcePack
	cache    *lru.Cache // modelID -> *FlattenedModel
	Warnings []voxel.Warning
}

// NewFlattener creates a Flattener bound to pack, with an LRU cache sized
// generously enough that a single mesh() call never evicts a model it
// will need again (the cache is write-once and read-only thereafter).
func NewFlattener(pack ResourcePack, cacheSize int) *Flattener {
	if cacheSize <= 0 {
		cacheSize = 4096
	}
	c, _ := lru.New(cacheSize)
	return &Flattener{pack: pack, cache: c}
}

// Flatten resolves modelID through its parent chain into a FlattenedModel.
func (f *Flattener) Flatten(modelID string) (*FlattenedModel, error) {
	return f.flatten(modelID, map[string]bool{})
}

func (f *Flattener) flatten(modelID string, visiting map[string]bool) (*FlattenedModel, error) {
	if cached, ok := f.cache.Get(modelID); ok {
		return cached.(*FlattenedModel), nil
	}
	if visiting[modelID] {
		return nil, &voxel.ResolutionError{Kind: voxel.ParentCycle, Model: modelID}
	}
	visiting[modelID] = true

	model, ok := f.pack.GetModel(modelID)
	if !ok {
		return nil, &voxel.ResolutionError{Kind: voxel.MissingModel, Model: modelID}
	}

	out := &FlattenedModel{
		AmbientOcclusion: true,
		Textures:         map[string]string{},
	}
	haveAO := false
	if model.AmbientOcclusion != nil {
		out.AmbientOcclusion = *model.AmbientOcclusion
		haveAO = true
	}
	if len(model.Elements) > 0 {
		out.Elements = cloneElements(model.Elements)
	}
	for k, v := range model.Textures {
		out.Textures[k] = v
	}

	if model.Parent != "" {
		parent, err := f.flatten(model.Parent, visiting)
		if err != nil {
			if re, isRes := err.(*voxel.ResolutionError); isRes && re.Kind == voxel.MissingModel {
				// Missing parents resolve at the deepest existing ancestor:
				// warn, keep what we have, do not fail.
				f.Warnings = append(f.Warnings, voxel.Warning{Err: err})
			} else {
				return nil, err
			}
		} else {
			if len(out.Elements) == 0 {
				out.Elements = cloneElements(parent.Elements)
			}
			for k, v := range parent.Textures {
				if _, exists := out.Textures[k]; !exists {
					out.Textures[k] = v
				}
			}
			if !haveAO {
				out.AmbientOcclusion = parent.AmbientOcclusion
			}
		}
	}

	resolveAllTextures(out)

	delete(visiting, modelID)
	f.cache.Add(modelID, out)
	return out, nil
}

func cloneElements(src []Element) []Element {
	out := make([]Element, len(src))
	for i, e := range src {
		ne := e
		ne.Faces = make(map[string]Face, len(e.Faces))
		for dir, face := range e.Faces {
			ne.Faces[dir] = face
		}
		out[i] = ne
	}
	return out
}

// resolveAllTextures rewrites every face's texture reference to its
// concrete root, following #name chains with cycle detection.
func resolveAllTextures(m *FlattenedModel) {
	resolved := map[string]string{}
	for i := range m.Elements {
		for dir, face := range m.Elements[i].Faces {
			face.Texture = resolveTextureChain(face.Texture, m.Textures, resolved, map[string]bool{})
			m.Elements[i].Faces[dir] = face
		}
	}
}

// resolveTextureChain follows a #name chain to its concrete root or the
// missing-texture sentinel. Cyclic chains resolve to the sentinel.
func resolveTextureChain(name string, textures map[string]string, memo map[string]string, visiting map[string]bool) string {
	if !strings.HasPrefix(name, "#") {
		return name
	}
	if v, ok := memo[name]; ok {
		return v
	}
	if visiting[name] {
		memo[name] = MissingTexturePath
		return MissingTexturePath
	}
	visiting[name] = true

	key := strings.TrimPrefix(name, "#")
	next, ok := textures[key]
	if !ok {
		memo[name] = MissingTexturePath
		return MissingTexturePath
	}
	resolved := resolveTextureChain(next, textures, memo, visiting)
	memo[name] = resolved
	return resolved
}
