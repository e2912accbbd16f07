package oasmodel

import (
	"testing"

	json "github.com/segmentio/encoding/json"
	yaml "go.yaml.in/yaml/v4"
)

func TestSchemaUnmarshalJSONAdditionalPropertiesRef(t *testing.T) {
	data := []byte(`{"type":"object","additionalProperties":{"$ref":"#/components/schemas/Extension"}}`)

	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	sub, ok := s.AdditionalProperties.(*Schema)
	if !ok {
		t.Fatalf("AdditionalProperties = %T, want *Schema", s.AdditionalProperties)
	}
	if sub.Ref != "#/components/schemas/Extension" {
		t.Errorf("AdditionalProperties.Ref = %q, want #/components/schemas/Extension", sub.Ref)
	}
}

func TestSchemaUnmarshalJSONAdditionalPropertiesBool(t *testing.T) {
	var s Schema
	if err := json.Unmarshal([]byte(`{"additionalProperties":false}`), &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	b, ok := s.AdditionalProperties.(bool)
	if !ok || b {
		t.Errorf("AdditionalProperties = %#v, want false", s.AdditionalProperties)
	}
}

func TestSchemaUnmarshalYAMLAdditionalPropertiesRef(t *testing.T) {
	data := []byte("type: object\nadditionalProperties:\n  $ref: '#/components/schemas/Extension'\n")

	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	sub, ok := s.AdditionalProperties.(*Schema)
	if !ok {
		t.Fatalf("AdditionalProperties = %T, want *Schema", s.AdditionalProperties)
	}
	if sub.Ref != "#/components/schemas/Extension" {
		t.Errorf("AdditionalProperties.Ref = %q, want #/components/schemas/Extension", sub.Ref)
	}
}

func TestSchemaUnmarshalYAMLAdditionalPropertiesBool(t *testing.T) {
	var s Schema
	if err := yaml.Unmarshal([]byte("additionalProperties: true\n"), &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	b, ok := s.AdditionalProperties.(bool)
	if !ok || !b {
		t.Errorf("AdditionalProperties = %#v, want true", s.AdditionalProperties)
	}
}

func TestSchemaJSONRoundTripsExtensions(t *testing.T) {
	data := []byte(`{"type":"string","x-nullable":true,"x-go-name":"Widget"}`)

	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if v, ok := s.Extra["x-nullable"]; !ok || v != true {
		t.Fatalf("Extra[x-nullable] = %v, ok=%v, want true", v, ok)
	}

	out, err := json.Marshal(&s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var roundTripped Schema
	if err := json.Unmarshal(out, &roundTripped); err != nil {
		t.Fatalf("Unmarshal(round-tripped): %v", err)
	}
	if roundTripped.Extra["x-nullable"] != true || roundTripped.Extra["x-go-name"] != "Widget" {
		t.Errorf("Extra did not survive round-trip: %+v", roundTripped.Extra)
	}
}

func TestXMLJSONRoundTripsExtensions(t *testing.T) {
	data := []byte(`{"name":"widget","x-internal":true}`)

	var x XML
	if err := json.Unmarshal(data, &x); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if x.Extra["x-internal"] != true {
		t.Fatalf("Extra[x-internal] = %v, want true", x.Extra["x-internal"])
	}

	out, err := json.Marshal(&x)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !jsonContainsKey(out, "x-internal") {
		t.Errorf("marshaled XML dropped x-internal: %s", out)
	}
}

func jsonContainsKey(data []byte, key string) bool {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return false
	}
	_, ok := m[key]
	return ok
}

func TestSchemaUnmarshalJSONAdditionalPropertiesNestedFields(t *testing.T) {
	data := []byte(`{"additionalProperties":{"type":"string","properties":{"x":{"type":"integer"}}}}`)

	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	sub, ok := s.AdditionalProperties.(*Schema)
	if !ok {
		t.Fatalf("AdditionalProperties = %T, want *Schema", s.AdditionalProperties)
	}
	if sub.Type != "string" {
		t.Errorf("AdditionalProperties.Type = %q, want string", sub.Type)
	}
	prop, ok := sub.Properties.Get("x")
	if !ok || prop.Type != "integer" {
		t.Errorf("AdditionalProperties.Properties[x] = %+v, want type integer", prop)
	}
}
