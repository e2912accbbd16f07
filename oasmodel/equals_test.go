package oasmodel

import "testing"

func TestStructuralEqualIdenticalSchemas(t *testing.T) {
	a := &Schema{Type: "object", Properties: NewOrderedMap[*Schema]()}
	a.Properties.Set("name", &Schema{Type: "string"})

	b := &Schema{Type: "object", Properties: NewOrderedMap[*Schema]()}
	b.Properties.Set("name", &Schema{Type: "string"})

	if !StructuralEqual(a, b) {
		t.Error("identical schemas should be structurally equal")
	}
}

func TestStructuralEqualDifferentValues(t *testing.T) {
	a := &Schema{Type: "string"}
	b := &Schema{Type: "integer"}

	if StructuralEqual(a, b) {
		t.Error("schemas with different types should not be structurally equal")
	}
}

func TestStructuralEqualObjectKeyOrderIndependent(t *testing.T) {
	a := NewOrderedMap[int]()
	a.Set("x", 1)
	a.Set("y", 2)

	b := NewOrderedMap[int]()
	b.Set("y", 2)
	b.Set("x", 1)

	if !StructuralEqual(a, b) {
		t.Error("object-like maps should compare equal regardless of key order")
	}
}

func TestStructuralEqualArrayOrderMatters(t *testing.T) {
	a := &Schema{Required: []string{"id", "name"}}
	b := &Schema{Required: []string{"name", "id"}}

	if StructuralEqual(a, b) {
		t.Error("array fields should be order-sensitive")
	}
}

func TestStructuralEqualArrayOrderIdentical(t *testing.T) {
	a := &Schema{Required: []string{"id", "name"}}
	b := &Schema{Required: []string{"id", "name"}}

	if !StructuralEqual(a, b) {
		t.Error("identically ordered arrays should be equal")
	}
}

func TestStructuralEqualExtraDiffers(t *testing.T) {
	a := &Schema{Type: "string", Extra: map[string]any{"x-internal": true}}
	b := &Schema{Type: "string"}

	if StructuralEqual(a, b) {
		t.Error("schemas differing only by a specification extension should not be structurally equal")
	}
}

func TestStructuralEqualExtraIdentical(t *testing.T) {
	a := &Schema{Type: "string", Extra: map[string]any{"x-internal": true}}
	b := &Schema{Type: "string", Extra: map[string]any{"x-internal": true}}

	if !StructuralEqual(a, b) {
		t.Error("schemas with identical specification extensions should be structurally equal")
	}
}

func TestJSONValueEqualMismatchedTypes(t *testing.T) {
	if jsonValueEqual(map[string]any{"a": 1}, []any{1}) {
		t.Error("a map and an array should never be equal")
	}
}

func TestJSONValueEqualScalars(t *testing.T) {
	if !jsonValueEqual("x", "x") {
		t.Error("identical scalars should be equal")
	}
	if jsonValueEqual("x", "y") {
		t.Error("different scalars should not be equal")
	}
}
