package oasmodel

import json "github.com/segmentio/encoding/json"

// extraFieldsJSON collects every "x-"-prefixed specification extension key
// out of a decoded JSON object, the same criterion the teacher's
// parser/common_json.go uses to tell a spec extension apart from an unknown
// or malformed field: only "x-*" keys are captured into Extra, everything
// else is silently ignored rather than round-tripped.
func extraFieldsJSON(data []byte) (map[string]any, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	var extra map[string]any
	for k, raw := range m {
		if len(k) < 2 || k[0] != 'x' || k[1] != '-' {
			continue
		}
		if extra == nil {
			extra = make(map[string]any, len(m))
		}
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		extra[k] = v
	}
	return extra, nil
}

// mergeExtraJSON marshals alias — a type-aliased copy of a struct whose
// Extra field is tagged json:"-" — and flattens extra's keys into the
// resulting object. encoding/json and segmentio/json have no equivalent of
// yaml's inline-map tag, so a struct's x-* specification extensions would
// otherwise be dropped on every JSON encode; this is the flattening half of
// the same round-trip the teacher's per-type MarshalJSON methods in
// parser/common_json.go perform, generalized to one function every
// Extra-bearing type in this package can share.
func mergeExtraJSON(alias any, extra map[string]any) ([]byte, error) {
	data, err := json.Marshal(alias)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return data, nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	for k, v := range extra {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		m[k] = raw
	}
	return json.Marshal(m)
}
