package blockmodel

import "testing"

func boolPtr(b bool) *bool { return &b }

func TestFlattenSimpleModel(t *testing.T) {
	pack := NewMemoryPack()
	pack.Models["block/test_cube"] = &Model{
		Textures: map[string]string{"all": "block/stone"},
		Elements: []Element{{
			From:  [3]float32{0, 0, 0},
			To:    [3]float32{16, 16, 16},
			Faces: map[string]Face{"down": {Texture: "#all"}},
		}},
	}

	f := NewFlattener(pack, 0)
	model, err := f.Flatten("block/test_cube")
	if err != nil {
		t.Fatalf("flatten failed: %v", err)
	}
	if len(model.Elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(model.Elements))
	}
	if got := model.Elements[0].Faces["down"].Texture; got != "block/stone" {
		t.Errorf("expected resolved texture block/stone, got %q", got)
	}
	if !model.AmbientOcclusion {
		t.Error("expected ambient occlusion to default true")
	}
}

func TestFlattenChildInheritsElementsAndMergesTextures(t *testing.T) {
	pack := NewMemoryPack()
	pack.Models["block/test_cube"] = &Model{
		Textures: map[string]string{"all": "block/stone"},
		Elements: []Element{{From: [3]float32{0, 0, 0}, To: [3]float32{16, 16, 16}, Faces: map[string]Face{"down": {Texture: "#all"}}}},
	}
	pack.Models["block/test_child"] = &Model{
		Parent:   "block/test_cube",
		Textures: map[string]string{"particle": "block/dirt"},
	}

	f := NewFlattener(pack, 0)
	model, err := f.Flatten("block/test_child")
	if err != nil {
		t.Fatalf("flatten failed: %v", err)
	}
	if len(model.Elements) != 1 {
		t.Fatalf("expected elements inherited from parent, got %d", len(model.Elements))
	}
	if model.Textures["particle"] != "block/dirt" {
		t.Errorf("expected own texture particle=block/dirt, got %q", model.Textures["particle"])
	}
	if model.Textures["all"] != "block/stone" {
		t.Errorf("expected inherited texture all=block/stone, got %q", model.Textures["all"])
	}
}

func TestFlattenChildReplacesElementsAndOverridesAO(t *testing.T) {
	pack := NewMemoryPack()
	pack.Models["block/parent"] = &Model{
		AmbientOcclusion: boolPtr(true),
		Elements:         []Element{{To: [3]float32{16, 16, 16}}, {To: [3]float32{8, 8, 8}}},
	}
	pack.Models["block/child"] = &Model{
		Parent:           "block/parent",
		AmbientOcclusion: boolPtr(false),
		Elements:         []Element{{To: [3]float32{4, 4, 4}}},
	}

	f := NewFlattener(pack, 0)
	model, err := f.Flatten("block/child")
	if err != nil {
		t.Fatalf("flatten failed: %v", err)
	}
	if len(model.Elements) != 1 {
		t.Fatalf("expected child elements to fully replace parent's, got %d", len(model.Elements))
	}
	if model.AmbientOcclusion {
		t.Error("expected child's explicit ambient_occlusion=false to win")
	}
}

func TestResolveTextureChainMultiHop(t *testing.T) {
	pack := NewMemoryPack()
	pack.Models["block/test"] = &Model{
		Textures: map[string]string{"primary": "block/diamond_block", "secondary": "#primary"},
		Elements: []Element{{Faces: map[string]Face{"north": {Texture: "#secondary"}}}},
	}

	f := NewFlattener(pack, 0)
	model, err := f.Flatten("block/test")
	if err != nil {
		t.Fatalf("flatten failed: %v", err)
	}
	if got := model.Elements[0].Faces["north"].Texture; got != "block/diamond_block" {
		t.Errorf("expected multi-hop resolved texture, got %q", got)
	}
}

func TestResolveTextureChainCycleResolvesToSentinel(t *testing.T) {
	pack := NewMemoryPack()
	pack.Models["block/cyclic"] = &Model{
		Textures: map[string]string{"a": "#b", "b": "#a"},
		Elements: []Element{{Faces: map[string]Face{"up": {Texture: "#a"}}}},
	}

	f := NewFlattener(pack, 0)
	model, err := f.Flatten("block/cyclic")
	if err != nil {
		t.Fatalf("flatten failed: %v", err)
	}
	if got := model.Elements[0].Faces["up"].Texture; got != MissingTexturePath {
		t.Errorf("expected sentinel for cyclic texture chain, got %q", got)
	}
}

func TestFlattenParentCycleIsFatal(t *testing.T) {
	pack := NewMemoryPack()
	pack.Models["block/a"] = &Model{Parent: "block/b"}
	pack.Models["block/b"] = &Model{Parent: "block/a"}

	f := NewFlattener(pack, 0)
	_, err := f.Flatten("block/a")
	if err == nil {
		t.Fatal("expected parent cycle to be fatal")
	}
}

func TestFlattenMissingParentWarnsAndKeepsChild(t *testing.T) {
	pack := NewMemoryPack()
	pack.Models["block/orphan"] = &Model{
		Parent:   "block/does_not_exist",
		Textures: map[string]string{"all": "block/stone"},
		Elements: []Element{{To: [3]float32{16, 16, 16}}},
	}

	f := NewFlattener(pack, 0)
	model, err := f.Flatten("block/orphan")
	if err != nil {
		t.Fatalf("expected missing parent to warn, not fail: %v", err)
	}
	if len(model.Elements) != 1 {
		t.Fatalf("expected child's own elements to survive, got %d", len(model.Elements))
	}
	if len(f.Warnings) != 1 {
		t.Errorf("expected exactly one warning, got %d", len(f.Warnings))
	}
}

func TestFlattenCachesByModelID(t *testing.T) {
	pack := NewMemoryPack()
	pack.Models["block/test_cube"] = &Model{Elements: []Element{{To: [3]float32{16, 16, 16}}}}

	f := NewFlattener(pack, 0)
	m1, _ := f.Flatten("block/test_cube")
	m2, _ := f.Flatten("block/test_cube")
	if m1 != m2 {
		t.Error("expected the same flattened instance from cache")
	}
}
