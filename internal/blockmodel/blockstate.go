package blockmodel

import (
	"encoding/json"
	"fmt"
)

// variantJSON is the wire shape of one entry in a variant map or a
// multipart's "apply" list: either a single object or an array of
// weighted alternatives.
type variantJSON struct {
	Model     string `json:"model"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	UVLock    bool   `json:"uvlock"`
	Weight    *int   `json:"weight"`
}

func (v variantJSON) toRef() ModelReference {
	w := 1
	if v.Weight != nil {
		w = *v.Weight
	}
	return ModelReference{Model: v.Model, RotationX: v.X, RotationY: v.Y, UVLock: v.UVLock, Weight: w}
}

// variantList unmarshals either a bare object or an array of objects into
// a slice, covering every ModelReference field rather than just Model.
type variantList []variantJSON

func (v *variantList) UnmarshalJSON(data []byte) error {
	var arr []variantJSON
	if err := json.Unmarshal(data, &arr); err == nil {
		*v = arr
		return nil
	}
	var single variantJSON
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*v = []variantJSON{single}
	return nil
}

// WhenClause is a multipart predicate: either "always" (nil), a flat AND
// of property=value pairs, or an OR of such AND-conjunctions under the
// "OR" key. A value may be a "|"-separated list meaning "any of".
type WhenClause struct {
	OR   []map[string]string `json:"OR,omitempty"`
	And  map[string]string   `json:"-"`
}

func (w *WhenClause) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if orRaw, ok := raw["OR"]; ok {
		var clauses []map[string]string
		if err := json.Unmarshal(orRaw, &clauses); err != nil {
			return err
		}
		w.OR = clauses
		return nil
	}
	flat := make(map[string]string, len(raw))
	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return fmt.Errorf("when clause %q: %w", k, err)
		}
		flat[k] = s
	}
	w.And = flat
	return nil
}

// Matches evaluates the predicate against a block's properties. A
// "|"-separated value means "any of".
func (w *WhenClause) Matches(props map[string]string) bool {
	if w == nil {
		return true // absent "when" means "always"
	}
	if len(w.OR) > 0 {
		for _, clause := range w.OR {
			if matchAnd(clause, props) {
				return true
			}
		}
		return false
	}
	return matchAnd(w.And, props)
}

func matchAnd(clause map[string]string, props map[string]string) bool {
	for k, want := range clause {
		got, ok := props[k]
		if !ok {
			return false
		}
		if !matchesAnyOf(want, got) {
			return false
		}
	}
	return true
}

func matchesAnyOf(want, got string) bool {
	start := 0
	for i := 0; i <= len(want); i++ {
		if i == len(want) || want[i] == '|' {
			if want[start:i] == got {
				return true
			}
			start = i + 1
		}
	}
	return false
}

// MultipartCase is one entry in a multipart blockstate.
type MultipartCase struct {
	When  *WhenClause `json:"when"`
	Apply variantList `json:"apply"`
}

// BlockState is the parsed blockstate JSON. Exactly one of Variants or
// Multipart is populated.
type BlockState struct {
	Variants  map[string]variantList `json:"variants,omitempty"`
	Multipart []MultipartCase        `json:"multipart,omitempty"`
}

// IsMultipart reports whether this blockstate uses the multipart shape.
func (b *BlockState) IsMultipart() bool {
	return len(b.Multipart) > 0
}
