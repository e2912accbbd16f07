package oasmodel

import json "github.com/segmentio/encoding/json"

// StructuralEqual reports whether two component definitions are
// structurally identical: recursive, set-wise for unordered maps (object
// keys, like a schema's "properties"), positional for ordered sequences
// (arrays, like "required" or "enum"). Rather than writing a bespoke
// comparator per type, both values are marshaled to their generic JSON
// shape and compared there, since a decoded JSON object is naturally
// order-independent (its identity is its key/value set) while a decoded
// JSON array is naturally order-dependent (its identity is its element
// sequence) — exactly the rule this function needs. Because every
// Extra-bearing type's MarshalJSON flattens its x-* extensions into the
// same JSON object, Extra participates in the comparison for free: two
// components differing only by a specification extension marshal to
// different shapes and compare unequal.
func StructuralEqual(a, b any) bool {
	aJSON, aErr := toJSONValue(a)
	bJSON, bErr := toJSONValue(b)
	if aErr != nil || bErr != nil {
		return false
	}
	return jsonValueEqual(aJSON, bJSON)
}

func toJSONValue(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func jsonValueEqual(a, b any) bool {
	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, aVal := range av {
			bVal, exists := bv[k]
			if !exists || !jsonValueEqual(aVal, bVal) {
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
			if !jsonValueEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
