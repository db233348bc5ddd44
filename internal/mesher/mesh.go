package mesher

import (
	"image/color"
	"sort"
	"strings"

	"github.com/Schem-at/Schematic-Mesher-sub001/internal/atlas"
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/blockmodel"
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/cull"
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/entitymodel"
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/geometry"
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/greedy"
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/light"
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/occlusion"
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/voxel"
)

// signTextColor is vanilla's dark-brown ink color used across every wood
// type's sign texture.
var signTextColor = color.RGBA{R: 45, G: 33, B: 24, A: 255}

// signTextLines reads a sign block's "text1".."text4" properties (plain
// strings, not the vanilla JSON text-component format — full component
// parsing is out of scope), returning ok=false when every line is blank.
func signTextLines(props map[string]string) ([]string, bool) {
	lines := [4]string{props["text1"], props["text2"], props["text3"], props["text4"]}
	any := false
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			any = true
			break
		}
	}
	if !any {
		return nil, false
	}
	return lines[:], true
}

// dynamicSignKey names the per-instance composited texture a sign's text
// produces, so two signs sharing a wood type but carrying different text
// don't collide in the atlas.
func dynamicSignKey(texturePath string, lines []string) string {
	return texturePath + "#text:" + strings.Join(lines, "\x1f")
}

// fingerprint identifies one (block name, sorted properties) combination,
// so the resolve+flatten chain runs once per distinct variant rather than
// once per voxel.
type fingerprint string

func fingerprintOf(b voxel.Block) fingerprint {
	keys := make([]string, 0, len(b.Properties))
	for k := range b.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	s := b.Name
	for _, k := range keys {
		s += ";" + k + "=" + b.Properties[k]
	}
	return fingerprint(s)
}

// resolvedVariant is the cached result of running one fingerprint through
// Resolve and Flatten.
type resolvedVariant struct {
	identifier string
	posed      []blockmodel.PosedModel
	err        error
}

// liquidTexture maps a liquid identifier to its still-texture path. The
// built-in catalog only needs the two vanilla fluids; a richer pack
// would resolve this through a still/flow blockstate instead.
func liquidTexture(identifier string) string {
	switch identifier {
	case "lava":
		return "minecraft:block/lava_still"
	default:
		return "minecraft:block/water_still"
	}
}

// Mesh runs the full resolve-flatten-emit-light-cull-atlas pipeline over
// src and returns the assembled output. The only fatal errors are
// resource-pack corruption (voxel.PackError) or atlas overflow
// (voxel.AtlasError); a single block's resolution failure is downgraded
// to a warning plus a missing-texture fallback cube.
func Mesh(src voxel.Source, pack blockmodel.ResourcePack, tint blockmodel.TintProvider, cfg Config) (MesherOutput, error) {
	if tint == nil {
		tint = blockmodel.DefaultTintProvider{}
	}

	flattener := blockmodel.NewFlattener(pack, 4096)
	lookup := textureLookup(pack)
	opaqueTexture := func(path string) bool {
		full, partial := lookup(path)
		return !full && !partial
	}

	variants := map[fingerprint]resolvedVariant{}
	resolve := func(b voxel.Block) resolvedVariant {
		fp := fingerprintOf(b)
		if v, ok := variants[fp]; ok {
			return v
		}
		identifier := identifierOf(b)
		state, ok := pack.GetBlockState(identifier)
		if !ok {
			v := resolvedVariant{identifier: identifier, err: &voxel.ResolutionError{Kind: voxel.MissingBlockstate, Block: b.Name}}
			variants[fp] = v
			return v
		}
		refs, err := blockmodel.Resolve(state, b.Name, b.Properties)
		if err != nil {
			v := resolvedVariant{identifier: identifier, err: err}
			variants[fp] = v
			return v
		}
		posed := make([]blockmodel.PosedModel, 0, len(refs))
		for _, ref := range refs {
			flat, ferr := flattener.Flatten(ref.Model)
			if ferr != nil {
				v := resolvedVariant{identifier: identifier, err: ferr}
				variants[fp] = v
				return v
			}
			posed = append(posed, blockmodel.PosedModel{
				Flattened: flat, RotationX: ref.RotationX, RotationY: ref.RotationY,
				UVLock: ref.UVLock, Weight: ref.Weight,
			})
		}
		v := resolvedVariant{identifier: identifier, posed: posed}
		variants[fp] = v
		return v
	}

	// opaqueAt implements the occlusion/culling opacity test: a voxel is
	// opaque only if it resolves to exactly one posed model shaped like a
	// full 0..16 cube with no transparent faces. Liquids and entity models
	// never count.
	opaqueAt := func(pos voxel.Position) bool {
		b, ok := src.Get(pos)
		if !ok {
			return false
		}
		if _, isLiquid := classifyLiquid(b.Name, b.Properties); isLiquid {
			return false
		}
		if _, isEntity := entitymodel.ModelForIdentifier(identifierOf(b), b.Properties); isEntity {
			return false
		}
		v := resolve(b)
		if v.err != nil || len(v.posed) != 1 {
			return false
		}
		return cull.IsOpaqueFullCube(v.posed[0].Flattened, opaqueTexture)
	}

	neighborInfo := func(pos voxel.Position) cull.NeighborInfo {
		b, ok := src.Get(pos)
		if !ok {
			return cull.NeighborInfo{}
		}
		if linfo, isLiquid := classifyLiquid(b.Name, b.Properties); isLiquid {
			isSource := linfo.level == 0
			return cull.NeighborInfo{
				Exists: true, Identifier: identifierOf(b),
				IsLiquidSource: isSource, LiquidCoversFull: isSource,
			}
		}
		v := resolve(b)
		if v.err != nil || len(v.posed) != 1 {
			return cull.NeighborInfo{Exists: true, Identifier: identifierOf(b)}
		}
		return cull.NeighborInfo{Exists: true, Identifier: v.identifier, Flattened: v.posed[0].Flattened}
	}

	var occluded map[voxel.Position]bool
	if cfg.CullOccludedBlocks {
		occluded = occlusion.Scan(src, opaqueAt, occlusion.Config{Enabled: true})
	}

	lightCfg := light.Config{
		AOIntensity: cfg.AOIntensity, BlockLightEnabled: cfg.EnableBlockLight,
		SkyLightEnabled: cfg.EnableSkyLight, SkyLightLevel: cfg.SkyLightLevel,
	}
	sampler := lightingSampler{
		opaqueAt: opaqueAt, cfg: lightCfg, ao: cfg.AmbientOcclusion,
		baked: cfg.EnableBlockLight || cfg.EnableSkyLight,
	}

	var quads []geometry.Quad
	var warnings []voxel.Warning
	var bounds voxel.BoundingBox

	missingSize := 16
	missingTex := missingTextureChecker(missingSize)
	dynamicTextures := map[string]*blockmodel.Texture{}

	src.Iterate(func(pos voxel.Position, b voxel.Block) bool {
		if !cfg.IncludeAir && isAirBlock(b) {
			return true
		}
		if occluded != nil && occluded[pos] {
			return true
		}

		bounds = bounds.Union(voxel.BoundingBox{
			Min: [3]float32{float32(pos.X), float32(pos.Y), float32(pos.Z)},
			Max: [3]float32{float32(pos.X) + 1, float32(pos.Y) + 1, float32(pos.Z) + 1},
		})

		if linfo, isLiquid := classifyLiquid(b.Name, b.Properties); isLiquid {
			transparent := linfo.identifier == "water"
			lq := buildLiquidQuads(src, pos, linfo, liquidTexture(linfo.identifier), transparent)
			for _, q := range lq {
				q = sampler.apply(q, pos)
				quads = append(quads, q)
			}
			return true
		}

		if model, isEntity := entitymodel.ModelForIdentifier(identifierOf(b), b.Properties); isEntity {
			result := entitymodel.Build(model)
			materialKey := model.TexturePath
			if lines, ok := signTextLines(b.Properties); ok {
				key := dynamicSignKey(model.TexturePath, lines)
				if _, exists := dynamicTextures[key]; !exists {
					if base, ok := pack.GetTexture(model.TexturePath); ok {
						composited := atlas.CompositeText(toRGBAImage(base), lines, signTextColor)
						dynamicTextures[key] = &blockmodel.Texture{
							Width: composited.Rect.Dx(), Height: composited.Rect.Dy(), Pixels: composited.Pix,
						}
					}
				}
				if _, ok := dynamicTextures[key]; ok {
					materialKey = key
				}
			}
			for _, q := range result.Quads {
				q = translateQuad(q, float32(pos.X), float32(pos.Y), float32(pos.Z))
				q.AO = [4]int{3, 3, 3, 3}
				q.Light = [4]int{15, 15, 15, 15}
				q.MaterialKey = materialKey
				quads = append(quads, q)
			}
			return true
		}

		v := resolve(b)
		if v.err != nil {
			warnings = append(warnings, voxel.Warning{Position: pos, Err: v.err})
			quads = append(quads, missingCubeQuads(pos, missingTex)...)
			return true
		}

		ectx := geometry.EmitContext{Tint: tint, Identifier: v.identifier, TextureLookup: lookup}
		for _, pm := range v.posed {
			for _, elem := range pm.Flattened.Elements {
				faceQuads := geometry.EmitElement(elem, pos, pm.RotationX, pm.RotationY, pm.UVLock, ectx)
				for _, q := range faceQuads {
					if cfg.CullHiddenFaces && q.CullFace != "" {
						npos := cullNeighborPos(pos, q.CullFace)
						if cull.CanCull(q.CullFace, true, v.identifier, q.Layer == geometry.LayerTransparent, neighborInfo(npos), opaqueTexture) {
							continue
						}
					}
					q = sampler.apply(q, pos)
					quads = append(quads, q)
				}
			}
		}
		return true
	})

	passthrough, greedyMats := greedy.Merge(quads, greedy.Config{Enabled: cfg.GreedyMeshing})

	atlasResult, err := buildAtlas(pack, passthrough, cfg, dynamicTextures)
	if err != nil {
		return MesherOutput{}, err
	}

	out := MesherOutput{
		Bounds:   bounds,
		Warnings: append(warnings, flattener.Warnings...),
	}
	assembleLayers(&out, passthrough, atlasResult)
	assembleGreedyMaterials(&out, greedyMats)
	out.Atlas = Image{Width: atlasResult.Image.Bounds().Dx(), Height: atlasResult.Image.Bounds().Dy(), Pixels: atlasResult.Image.Pix, Regions: atlasResult.Regions}
	out.AnimatedTextures = atlasResult.Animated

	return out, nil
}

// cullNeighborPos maps a declared cullface name to the neighbor voxel
// position it refers to.
func cullNeighborPos(pos voxel.Position, face string) voxel.Position {
	switch face {
	case "up":
		return pos.Add(0, 1, 0)
	case "down":
		return pos.Add(0, -1, 0)
	case "north":
		return pos.Add(0, 0, -1)
	case "south":
		return pos.Add(0, 0, 1)
	case "west":
		return pos.Add(-1, 0, 0)
	case "east":
		return pos.Add(1, 0, 0)
	default:
		return pos
	}
}
