package voxel

import "fmt"

// ResolutionKind enumerates the recoverable per-block resolution failures
// from the blockstate/model chain.
type ResolutionKind int

const (
	MissingBlockstate ResolutionKind = iota
	MissingModel
	NoVariantMatches
	ParentCycle
)

func (k ResolutionKind) String() string {
	switch k {
	case MissingBlockstate:
		return "MissingBlockstate"
	case MissingModel:
		return "MissingModel"
	case NoVariantMatches:
		return "NoVariantMatches"
	case ParentCycle:
		return "ParentCycle"
	default:
		return "UnknownResolutionKind"
	}
}

// ResolutionError is a per-block failure in the resolution chain. The
// mesher orchestrator downgrades these to a warning plus a fallback
// missing-texture cube; it never aborts Mesh on its own.
type ResolutionError struct {
	Kind  ResolutionKind
	Block string
	Model string
	Err   error
}

func (e *ResolutionError) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("resolution: %s: block %q model %q", e.Kind, e.Block, e.Model)
	}
	return fmt.Sprintf("resolution: %s: block %q", e.Kind, e.Block)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// PackKind enumerates unrecoverable resource-pack corruption.
type PackKind int

const (
	MalformedJSON PackKind = iota
	MissingAsset
)

func (k PackKind) String() string {
	if k == MalformedJSON {
		return "MalformedJson"
	}
	return "MissingAsset"
}

// PackError is a fatal pack-corruption error; it aborts mesh().
type PackError struct {
	Kind PackKind
	Path string
	Err  error
}

func (e *PackError) Error() string {
	return fmt.Sprintf("pack: %s: %s", e.Kind, e.Path)
}

func (e *PackError) Unwrap() error { return e.Err }

// AtlasKind enumerates fatal atlas-packing failures.
type AtlasKind int

const (
	Overflow AtlasKind = iota
	EncodeFailure
)

func (k AtlasKind) String() string {
	if k == Overflow {
		return "Overflow"
	}
	return "EncodeFailure"
}

// AtlasError is a fatal atlas-packing failure; it aborts mesh().
type AtlasError struct {
	Kind AtlasKind
	Err  error
}

func (e *AtlasError) Error() string {
	return fmt.Sprintf("atlas: %s: %v", e.Kind, e.Err)
}

func (e *AtlasError) Unwrap() error { return e.Err }

// ExportKind enumerates export-step failures. These are fatal for the
// export call only — the mesh product itself remains usable.
type ExportKind int

const (
	EmptyMesh ExportKind = iota
	SerializeFailure
)

func (k ExportKind) String() string {
	if k == EmptyMesh {
		return "EmptyMesh"
	}
	return "SerializeFailure"
}

// ExportError wraps a failure in one of the export-format adapters.
type ExportError struct {
	Kind   ExportKind
	Format string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export: %s: %s: %v", e.Kind, e.Format, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// Warning is a recoverable, non-fatal condition collected during mesh().
// Warnings are never printed by the core; callers decide what to do with
// the diagnostics list on MesherOutput.
type Warning struct {
	Position Position
	Err      error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %v", w.Position, w.Err)
}
