package main

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/Schem-at/Schematic-Mesher-sub001/internal/blockmodel"
)

// dirPack is a blockmodel.ResourcePack reading straight from a resource
// pack directory laid out the vanilla way:
//
//	assets/<namespace>/blockstates/<id>.json
//	assets/<namespace>/models/<path>.json
//	assets/<namespace>/textures/<path>.png
//	assets/<namespace>/textures/<path>.png.mcmeta  (animation metadata)
//
// This is CLI-only I/O plumbing: it gives meshcli a real ResourcePack to
// point at a directory with, independent of whatever in-memory pack an
// embedder might use instead.
type dirPack struct {
	root        string
	blockstates map[string]*blockmodel.BlockState
	models      map[string]*blockmodel.Model
	textures    map[string]*blockmodel.Texture
	animations  map[string]*blockmodel.AnimationMeta
}

func newDirPack(root string) *dirPack {
	return &dirPack{
		root:        root,
		blockstates: map[string]*blockmodel.BlockState{},
		models:      map[string]*blockmodel.Model{},
		textures:    map[string]*blockmodel.Texture{},
		animations:  map[string]*blockmodel.AnimationMeta{},
	}
}

func (p *dirPack) GetBlockState(id string) (*blockmodel.BlockState, bool) {
	if s, ok := p.blockstates[id]; ok {
		return s, true
	}
	ns, name := splitIdentifier(id)
	path := filepath.Join(p.root, "assets", ns, "blockstates", name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var s blockmodel.BlockState
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, false
	}
	p.blockstates[id] = &s
	return &s, true
}

func (p *dirPack) GetModel(id string) (*blockmodel.Model, bool) {
	if m, ok := p.models[id]; ok {
		return m, true
	}
	ns, name := splitIdentifier(id)
	path := filepath.Join(p.root, "assets", ns, "models", name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var m blockmodel.Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, false
	}
	p.models[id] = &m
	return &m, true
}

func (p *dirPack) GetTexture(path string) (*blockmodel.Texture, bool) {
	if t, ok := p.textures[path]; ok {
		return t, true
	}
	ns, name := splitIdentifier(path)
	fullPath := filepath.Join(p.root, "assets", ns, "textures", name+".png")
	f, err := os.Open(fullPath)
	if err != nil {
		return nil, false
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, false
	}
	rgba := toRGBA(img)
	tex := &blockmodel.Texture{Width: rgba.Rect.Dx(), Height: rgba.Rect.Dy(), Pixels: rgba.Pix}
	if meta, ok := p.GetAnimationMeta(path); ok {
		tex.Animation = meta
	}
	p.textures[path] = tex
	return tex, true
}

func (p *dirPack) GetAnimationMeta(path string) (*blockmodel.AnimationMeta, bool) {
	if m, ok := p.animations[path]; ok {
		return m, true
	}
	ns, name := splitIdentifier(path)
	fullPath := filepath.Join(p.root, "assets", ns, "textures", name+".png.mcmeta")
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, false
	}
	var doc struct {
		Animation struct {
			FrameTime   int  `json:"frametime"`
			Interpolate bool `json:"interpolate"`
			Frames      []struct {
				Index int `json:"index"`
				Time  int `json:"time"`
			} `json:"frames"`
		} `json:"animation"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false
	}
	frameTime := doc.Animation.FrameTime
	if frameTime <= 0 {
		frameTime = 1
	}
	meta := &blockmodel.AnimationMeta{FrameTime: frameTime, Interpolate: doc.Animation.Interpolate}
	for _, f := range doc.Animation.Frames {
		dur := f.Time
		if dur <= 0 {
			dur = frameTime
		}
		meta.Frames = append(meta.Frames, blockmodel.AnimationFrame{Index: f.Index, Duration: dur})
	}
	p.animations[path] = meta
	return meta, true
}

func (p *dirPack) IterBlockstates(yield func(id string, state *blockmodel.BlockState) bool) {
	dir := filepath.Join(p.root, "assets")
	namespaces, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, ns := range namespaces {
		if !ns.IsDir() {
			continue
		}
		bsDir := filepath.Join(dir, ns.Name(), "blockstates")
		entries, err := os.ReadDir(bsDir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
				continue
			}
			id := fmt.Sprintf("%s:%s", ns.Name(), e.Name()[:len(e.Name())-len(".json")])
			state, ok := p.GetBlockState(id)
			if !ok {
				continue
			}
			if !yield(id, state) {
				return
			}
		}
	}
}

func splitIdentifier(id string) (namespace, name string) {
	for i := 0; i < len(id); i++ {
		if id[i] == ':' {
			return id[:i], id[i+1:]
		}
	}
	return "minecraft", id
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			rgba.Set(x, y, img.At(x, y))
		}
	}
	return rgba
}
