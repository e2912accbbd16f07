package oasmodel

import (
	"strings"
	"testing"

	json "github.com/segmentio/encoding/json"
	yaml "go.yaml.in/yaml/v4"
)

func TestResponsesUnmarshalJSONSeparatesDefault(t *testing.T) {
	data := []byte(`{"default":{"description":"unexpected error"},"404":{"description":"not found"}}`)

	var r Responses
	if err := json.Unmarshal(data, &r); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if r.Default == nil || r.Default.Description != "unexpected error" {
		t.Fatalf("Default = %+v, want description %q", r.Default, "unexpected error")
	}
	if r.Codes.Has("default") {
		t.Error("\"default\" must not be stored in Codes")
	}
	resp, ok := r.Codes.Get("404")
	if !ok || resp.Description != "not found" {
		t.Errorf("Codes[404] = %+v, want description %q", resp, "not found")
	}
}

func TestResponsesUnmarshalYAMLSeparatesDefault(t *testing.T) {
	data := []byte("default:\n  description: unexpected error\n404:\n  description: not found\n")

	var r Responses
	if err := yaml.Unmarshal(data, &r); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if r.Default == nil || r.Default.Description != "unexpected error" {
		t.Fatalf("Default = %+v, want description %q", r.Default, "unexpected error")
	}
	if r.Codes.Has("default") {
		t.Error("\"default\" must not be stored in Codes")
	}
}

func TestResponsesUnmarshalRejectsInvalidStatusCode(t *testing.T) {
	data := []byte(`{"not-a-code":{"description":"bad"}}`)

	var r Responses
	err := json.Unmarshal(data, &r)
	if err == nil {
		t.Fatal("expected an error for an invalid status code key")
	}
	if !strings.Contains(err.Error(), "not-a-code") {
		t.Errorf("error %q should mention the offending key", err.Error())
	}
}

func TestResponsesMarshalJSONWritesDefaultFirst(t *testing.T) {
	r := Responses{
		Default: &Response{Description: "unexpected error"},
		Codes:   NewOrderedMap[*Response](),
	}
	r.Codes.Set("404", &Response{Description: "not found"})
	r.Codes.Set("200", &Response{Description: "ok"})

	data, err := json.Marshal(&r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	defaultIdx := strings.Index(string(data), `"default"`)
	code404Idx := strings.Index(string(data), `"404"`)
	code200Idx := strings.Index(string(data), `"200"`)
	if defaultIdx < 0 || code404Idx < 0 || code200Idx < 0 {
		t.Fatalf("marshaled output missing expected keys: %s", data)
	}
	if !(defaultIdx < code404Idx && code404Idx < code200Idx) {
		t.Errorf("expected order default, 404, 200; got %s", data)
	}
}

func TestResponsesMarshalJSONWithoutDefault(t *testing.T) {
	r := Responses{Codes: NewOrderedMap[*Response]()}
	r.Codes.Set("200", &Response{Description: "ok"})

	data, err := json.Marshal(&r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if strings.Contains(string(data), `"default"`) {
		t.Errorf("marshaled output should not contain a default key: %s", data)
	}
}
