package pathutil

import "testing"

func TestSchemaRef(t *testing.T) {
	got := SchemaRef("Pet")
	want := "#/components/schemas/Pet"
	if got != want {
		t.Errorf("SchemaRef(Pet) = %q, want %q", got, want)
	}
}

func TestParameterRef(t *testing.T) {
	got := ParameterRef("limitParam")
	want := "#/components/parameters/limitParam"
	if got != want {
		t.Errorf("ParameterRef(limitParam) = %q, want %q", got, want)
	}
}

func TestResponseRef(t *testing.T) {
	got := ResponseRef("NotFound")
	want := "#/components/responses/NotFound"
	if got != want {
		t.Errorf("ResponseRef(NotFound) = %q, want %q", got, want)
	}
}

func TestSecuritySchemeRef(t *testing.T) {
	got := SecuritySchemeRef("api_key")
	want := "#/components/securitySchemes/api_key"
	if got != want {
		t.Errorf("SecuritySchemeRef(api_key) = %q, want %q", got, want)
	}
}

func TestHeaderRef(t *testing.T) {
	got := HeaderRef("X-Rate-Limit")
	want := "#/components/headers/X-Rate-Limit"
	if got != want {
		t.Errorf("HeaderRef(X-Rate-Limit) = %q, want %q", got, want)
	}
}

func TestRequestBodyRef(t *testing.T) {
	got := RequestBodyRef("PetRequest")
	want := "#/components/requestBodies/PetRequest"
	if got != want {
		t.Errorf("RequestBodyRef(PetRequest) = %q, want %q", got, want)
	}
}

func TestExampleRef(t *testing.T) {
	got := ExampleRef("PetExample")
	want := "#/components/examples/PetExample"
	if got != want {
		t.Errorf("ExampleRef(PetExample) = %q, want %q", got, want)
	}
}

func TestLinkRef(t *testing.T) {
	got := LinkRef("GetPetById")
	want := "#/components/links/GetPetById"
	if got != want {
		t.Errorf("LinkRef(GetPetById) = %q, want %q", got, want)
	}
}

func TestCallbackRef(t *testing.T) {
	got := CallbackRef("onData")
	want := "#/components/callbacks/onData"
	if got != want {
		t.Errorf("CallbackRef(onData) = %q, want %q", got, want)
	}
}

func TestPathRef(t *testing.T) {
	got := PathRef("/pets/{id}")
	want := "#/paths/~1pets~1{id}"
	if got != want {
		t.Errorf("PathRef(/pets/{id}) = %q, want %q", got, want)
	}
}

func TestEscapeUnescapeJSONPointer(t *testing.T) {
	tests := []string{"/pets/{id}", "a~b", "", "/a/b~c/d"}
	for _, s := range tests {
		escaped := EscapeJSONPointer(s)
		if got := UnescapeJSONPointer(escaped); got != s {
			t.Errorf("UnescapeJSONPointer(EscapeJSONPointer(%q)) = %q, want %q", s, got, s)
		}
	}
}
