package blockmodel

// Texture is a decoded RGBA8 texture plus optional animation metadata.
type Texture struct {
	Width, Height int
	Pixels        []byte // RGBA8, row-major, len == Width*Height*4
	Animation     *AnimationMeta
}

// AnimationFrame is one entry in an animation's frame sequence.
type AnimationFrame struct {
	Index    int
	Duration int
}

// AnimationMeta describes an animated texture's frame strip.
type AnimationMeta struct {
	FrameTime   int // ticks per frame, positive
	Interpolate bool
	Frames      []AnimationFrame
}

// FrameCount returns height/width, the number of stacked square frames.
func (a *AnimationMeta) FrameCount(width, height int) int {
	if width == 0 {
		return 0
	}
	return height / width
}

// ResourcePack is the external collaborator contract: a reader providing
// blockstate JSON, model JSON, raw texture pixels, and
// animation metadata by logical name. All lookups are optional — a
// missing asset is "not found", not an error, at this layer.
type ResourcePack interface {
	GetBlockState(id string) (*BlockState, bool)
	GetModel(id string) (*Model, bool)
	GetTexture(path string) (*Texture, bool)
	GetAnimationMeta(path string) (*AnimationMeta, bool)
	// IterBlockstates visits every known blockstate. Stops early if yield
	// returns false.
	IterBlockstates(yield func(id string, state *BlockState) bool)
}

// TintProvider resolves a tint index plus biome name to an RGB
// multiplier.
type TintProvider interface {
	Tint(tintIndex int, biome string) [3]float32
}

// DefaultTintProvider returns white ([1,1,1]) for every input.
type DefaultTintProvider struct{}

func (DefaultTintProvider) Tint(int, string) [3]float32 { return [3]float32{1, 1, 1} }

// MemoryPack is a simple in-memory ResourcePack, convenient for tests and
// for embedding a small built-in catalog. It is not a resource-pack
// *loader* — it is just a map-backed implementation of the contract.
type MemoryPack struct {
	BlockStates map[string]*BlockState
	Models      map[string]*Model
	Textures    map[string]*Texture
	Animations  map[string]*AnimationMeta
}

// NewMemoryPack returns an empty MemoryPack ready for population.
func NewMemoryPack() *MemoryPack {
	return &MemoryPack{
		BlockStates: map[string]*BlockState{},
		Models:      map[string]*Model{},
		Textures:    map[string]*Texture{},
		Animations:  map[string]*AnimationMeta{},
	}
}

func (p *MemoryPack) GetBlockState(id string) (*BlockState, bool) {
	s, ok := p.BlockStates[id]
	return s, ok
}

func (p *MemoryPack) GetModel(id string) (*Model, bool) {
	m, ok := p.Models[id]
	return m, ok
}

func (p *MemoryPack) GetTexture(path string) (*Texture, bool) {
	t, ok := p.Textures[path]
	return t, ok
}

func (p *MemoryPack) GetAnimationMeta(path string) (*AnimationMeta, bool) {
	a, ok := p.Animations[path]
	return a, ok
}

func (p *MemoryPack) IterBlockstates(yield func(id string, state *BlockState) bool) {
	for id, s := range p.BlockStates {
		if !yield(id, s) {
			return
		}
	}
}
