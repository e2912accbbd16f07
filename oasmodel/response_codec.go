package oasmodel

import (
	"fmt"

	json "github.com/segmentio/encoding/json"
	yaml "go.yaml.in/yaml/v4"

	"github.com/erraggy/openapi-merge/internal/httputil"
)

// MarshalYAML implements yaml.Marshaler, writing "default" first (when
// present) followed by status codes in their original order.
func (r *Responses) MarshalYAML() (any, error) {
	items := make(yamlMapSlice, 0, r.Codes.Len()+1)
	if r.Default != nil {
		items = append(items, yamlMapItem{Key: "default", Value: r.Default})
	}
	r.Codes.Range(func(key string, value *Response) bool {
		items = append(items, yamlMapItem{Key: key, Value: value})
		return true
	})
	return toYAMLNode(items)
}

// UnmarshalYAML implements yaml.Unmarshaler, validating each key as a legal
// OpenAPI response-map key ("default" or a status code / wildcard pattern)
// while decoding, the same validate-during-parse idiom as the teacher's
// Responses type.
func (r *Responses) UnmarshalYAML(value *yaml.Node) error {
	r.Codes = NewOrderedMap[*Response]()
	return unmarshalOrderedYAML(value, func(key string, decode func(any) error) error {
		if !httputil.ValidateStatusCode(key) {
			return fmt.Errorf("invalid response status code %q", key)
		}
		var resp Response
		if err := decode(&resp); err != nil {
			return err
		}
		if key == "default" {
			r.Default = &resp
			return nil
		}
		r.Codes.Set(key, &resp)
		return nil
	})
}

// MarshalJSON implements json.Marshaler, writing "default" first when present.
func (r *Responses) MarshalJSON() ([]byte, error) {
	keys := make([]string, 0, r.Codes.Len()+1)
	values := map[string]*Response{}
	if r.Default != nil {
		keys = append(keys, "default")
		values["default"] = r.Default
	}
	r.Codes.Range(func(key string, value *Response) bool {
		keys = append(keys, key)
		values[key] = value
		return true
	})
	return marshalOrderedJSON(keys, func(k string) any { return values[k] })
}

// UnmarshalJSON implements json.Unmarshaler with the same status-code
// validation as UnmarshalYAML.
func (r *Responses) UnmarshalJSON(data []byte) error {
	r.Codes = NewOrderedMap[*Response]()
	return unmarshalOrderedJSON(data, func(key string, decode func(any) error) error {
		if !httputil.ValidateStatusCode(key) {
			return fmt.Errorf("invalid response status code %q", key)
		}
		var resp Response
		if err := decode(&resp); err != nil {
			return err
		}
		if key == "default" {
			r.Default = &resp
			return nil
		}
		r.Codes.Set(key, &resp)
		return nil
	})
}

func (r *Response) MarshalJSON() ([]byte, error) {
	type alias Response
	return mergeExtraJSON((*alias)(r), r.Extra)
}

func (r *Response) UnmarshalJSON(data []byte) error {
	type alias Response
	if err := json.Unmarshal(data, (*alias)(r)); err != nil {
		return err
	}
	extra, err := extraFieldsJSON(data)
	if err != nil {
		return err
	}
	r.Extra = extra
	return nil
}

var _ json.Marshaler = (*Responses)(nil)
