package blockmodel

import (
	"sort"
	"strings"

	"github.com/Schem-at/Schematic-Mesher-sub001/internal/voxel"
)

// Resolve matches a block's properties against a blockstate's
// variant/multipart rules and yields one ModelReference per contributing
// part.
func Resolve(state *BlockState, blockName string, properties map[string]string) ([]ModelReference, error) {
	if state.IsMultipart() {
		return resolveMultipart(state.Multipart, properties), nil
	}
	return resolveVariant(state.Variants, blockName, properties)
}

// resolveVariant builds the property-selector key in alphabetic
// property-name order, then progressively drops properties from the
// least-significant (alphabetically last) end until a match is found,
// finally falling back to the empty-key variant.
func resolveVariant(variants map[string]variantList, blockName string, properties map[string]string) ([]ModelReference, error) {
	keys := make([]string, 0, len(properties))
	for k := range properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for n := len(keys); n >= 0; n-- {
		selector := variantKey(keys[:n], properties)
		if list, ok := variants[selector]; ok {
			return []ModelReference{pickDeterministic(list)}, nil
		}
	}
	if list, ok := variants[""]; ok {
		return []ModelReference{pickDeterministic(list)}, nil
	}
	return nil, &voxel.ResolutionError{Kind: voxel.NoVariantMatches, Block: blockName}
}

func variantKey(keys []string, properties map[string]string) string {
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(properties[k])
	}
	return b.String()
}

// pickDeterministic selects the first alternative in declared order,
// ignoring weight: resolution must be deterministic, never randomized,
// even when weights differ or tie.
func pickDeterministic(list variantList) ModelReference {
	return list[0].toRef()
}

// resolveMultipart evaluates every part's predicate and accumulates the
// model references of every satisfied part, in declared order.
func resolveMultipart(parts []MultipartCase, properties map[string]string) []ModelReference {
	var out []ModelReference
	for _, part := range parts {
		if !part.When.Matches(properties) {
			continue
		}
		for _, v := range part.Apply {
			out = append(out, v.toRef())
		}
	}
	return out
}
