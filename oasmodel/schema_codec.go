package oasmodel

import (
	"fmt"

	json "github.com/segmentio/encoding/json"
	yaml "go.yaml.in/yaml/v4"
)

// UnmarshalYAML decodes a Schema the usual reflection-driven way for every
// field except additionalProperties, whose wire shape is either a boolean or
// a nested schema object. Decoding that field through the same struct-tag
// machinery as the rest would leave it as a bool or a map[string]any, never
// a *Schema, so any $ref nested inside it would be invisible to the
// Reference Index.
func (s *Schema) UnmarshalYAML(value *yaml.Node) error {
	type schemaAlias Schema
	var a schemaAlias
	if err := value.Decode(&a); err != nil {
		return err
	}
	*s = Schema(a)

	for i := 0; i+1 < len(value.Content); i += 2 {
		if value.Content[i].Value != "additionalProperties" {
			continue
		}
		node := value.Content[i+1]
		var b bool
		if err := node.Decode(&b); err == nil {
			s.AdditionalProperties = b
			break
		}
		var sub Schema
		if err := node.Decode(&sub); err != nil {
			return fmt.Errorf("decoding additionalProperties: %w", err)
		}
		s.AdditionalProperties = &sub
		break
	}
	return nil
}

// UnmarshalJSON mirrors UnmarshalYAML's additionalProperties handling for
// the JSON decoding path.
func (s *Schema) UnmarshalJSON(data []byte) error {
	type schemaAlias Schema
	var a schemaAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = Schema(a)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if apRaw, ok := raw["additionalProperties"]; ok {
		var b bool
		if err := json.Unmarshal(apRaw, &b); err == nil {
			s.AdditionalProperties = b
		} else {
			var sub Schema
			if err := json.Unmarshal(apRaw, &sub); err != nil {
				return fmt.Errorf("decoding additionalProperties: %w", err)
			}
			s.AdditionalProperties = &sub
		}
	}

	extra, err := extraFieldsJSON(data)
	if err != nil {
		return err
	}
	s.Extra = extra
	return nil
}

// MarshalJSON flattens Schema's x-* specification extensions into the
// top-level object; see mergeExtraJSON. AdditionalProperties needs no
// special handling here: its dynamic type (bool or *Schema) is already
// concrete by the time this marshals, so the ambiguity UnmarshalJSON
// resolves only exists on the decode side.
func (s *Schema) MarshalJSON() ([]byte, error) {
	type schemaAlias Schema
	return mergeExtraJSON((*schemaAlias)(s), s.Extra)
}

func (x *XML) MarshalJSON() ([]byte, error) {
	type alias XML
	return mergeExtraJSON((*alias)(x), x.Extra)
}

func (x *XML) UnmarshalJSON(data []byte) error {
	type alias XML
	if err := json.Unmarshal(data, (*alias)(x)); err != nil {
		return err
	}
	extra, err := extraFieldsJSON(data)
	if err != nil {
		return err
	}
	x.Extra = extra
	return nil
}

var _ yaml.Unmarshaler = (*Schema)(nil)
var _ json.Unmarshaler = (*Schema)(nil)
var _ json.Marshaler = (*Schema)(nil)
