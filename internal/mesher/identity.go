package mesher

import "github.com/Schem-at/Schematic-Mesher-sub001/internal/voxel"

// identifierOf returns a block's fully namespaced identifier, defaulting
// the namespace the same way the rest of the pipeline does.
func identifierOf(b voxel.Block) string {
	ns, id := voxel.SplitIdentifier(b.Name)
	return ns + ":" + id
}

func isAirBlock(b voxel.Block) bool {
	_, id := voxel.SplitIdentifier(b.Name)
	return id == "air" || id == "cave_air" || id == "void_air"
}
