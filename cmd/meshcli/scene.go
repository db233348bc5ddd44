package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/Schem-at/Schematic-Mesher-sub001/internal/voxel"
)

// sceneBlock is one entry of a scene JSON file's "blocks" array, a flat
// block-placement format independent of any particular schematic container.
type sceneBlock struct {
	X          int32             `json:"x"`
	Y          int32             `json:"y"`
	Z          int32             `json:"z"`
	Name       string            `json:"name"`
	Properties map[string]string `json:"properties"`
}

type sceneFile struct {
	Blocks []sceneBlock `json:"blocks"`
}

// memSource is an in-memory voxel.Source built from a decoded sceneFile.
type memSource struct {
	blocks map[voxel.Position]voxel.Block
	bounds voxel.BoundingBox
}

func (m *memSource) Get(pos voxel.Position) (voxel.Block, bool) {
	b, ok := m.blocks[pos]
	return b, ok
}

func (m *memSource) Iterate(yield func(voxel.Position, voxel.Block) bool) {
	keys := make([]voxel.Position, 0, len(m.blocks))
	for pos := range m.blocks {
		keys = append(keys, pos)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		return a.X < b.X
	})
	for _, pos := range keys {
		if !yield(pos, m.blocks[pos]) {
			return
		}
	}
}

func (m *memSource) Bounds() voxel.BoundingBox { return m.bounds }

func loadScene(path string) (*memSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	var doc sceneFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}

	src := &memSource{blocks: map[voxel.Position]voxel.Block{}}
	for _, b := range doc.Blocks {
		pos := voxel.Position{X: b.X, Y: b.Y, Z: b.Z}
		src.blocks[pos] = voxel.Block{Name: b.Name, Properties: b.Properties}
		box := voxel.BoundingBox{
			Min: [3]float32{float32(b.X), float32(b.Y), float32(b.Z)},
			Max: [3]float32{float32(b.X) + 1, float32(b.Y) + 1, float32(b.Z) + 1},
		}
		src.bounds = src.bounds.Union(box)
	}
	return src, nil
}
