// Package structeq decides whether two component definitions are
// structurally equal for the Namer's dedupe branch: properties/mappings
// compare set-wise (order-independent), while enum/required/allOf-style
// sequences compare positionally (order matters).
//
// Rather than hand-walk each document type's fields (easy to miss one as
// the model grows), both sides are round-tripped through encoding/json into
// generic Go values: a map[string]interface{} compares set-wise by
// definition (Go maps have no order), and a []interface{} compares
// positionally by definition (slices are ordered). The JSON encoding
// already carries the exact semantics needed here; this package just
// trusts it.
package structeq

import "encoding/json"

// Equal reports whether a and b marshal to the same JSON value, ignoring
// Go-side representation differences (pointer identity, map key order,
// struct field declaration order) that carry no OpenAPI meaning.
func Equal(a, b any) bool {
	av, aok := toGeneric(a)
	bv, bok := toGeneric(b)
	if !aok || !bok {
		return false
	}
	return equalValue(av, bv)
}

func toGeneric(v any) (any, bool) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, false
	}
	return out, true
}

func equalValue(a, b any) bool {
	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, aval := range av {
			bval, ok := bv[k]
			if !ok || !equalValue(aval, bval) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !equalValue(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
