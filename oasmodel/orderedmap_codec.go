package oasmodel

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"

	json "github.com/segmentio/encoding/json"
	yaml "go.yaml.in/yaml/v4"
)

// yamlNode aliases yaml.Node so OrderedMap's UnmarshalYAML signature does not
// need to import go.yaml.in/yaml/v4 directly in orderedmap.go.
type yamlNode = yaml.Node

// unmarshalOrderedYAML decodes a YAML mapping node field-by-field in
// document order, since go.yaml.in/yaml/v4 (like yaml.v3) only preserves key
// order when the caller walks Content manually.
func unmarshalOrderedYAML(value *yamlNode, set func(key string, decode func(any) error) error) error {
	if value == nil {
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("expected a mapping, got kind %d", value.Kind)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode := value.Content[i]
		valNode := value.Content[i+1]
		var key string
		if err := keyNode.Decode(&key); err != nil {
			return fmt.Errorf("decoding map key: %w", err)
		}
		if err := set(key, func(target any) error { return valNode.Decode(target) }); err != nil {
			return fmt.Errorf("decoding value for key %q: %w", key, err)
		}
	}
	return nil
}

// unmarshalOrderedJSON decodes a JSON object field-by-field in document
// order using token-level streaming, since a plain map[string]V destination
// loses key order.
func unmarshalOrderedJSON(data []byte, set func(key string, decode func(any) error) error) error {
	dec := stdjson.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(stdjson.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object")
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected string object key, got %v", keyTok)
		}
		if err := set(key, func(target any) error { return dec.Decode(target) }); err != nil {
			return fmt.Errorf("decoding value for key %q: %w", key, err)
		}
	}
	return nil
}

// marshalOrderedJSON writes a JSON object preserving the given key order,
// since encoding/json (and segmentio/json) only marshal maps in sorted key
// order. Used by OrderedMap.MarshalJSON.
func marshalOrderedJSON(keys []string, valueFor func(string) any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyBytes, err := json.Marshal(k)
		if err != nil {
			return nil, fmt.Errorf("marshaling key %q: %w", k, err)
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')
		valBytes, err := json.Marshal(valueFor(k))
		if err != nil {
			return nil, fmt.Errorf("marshaling value for key %q: %w", k, err)
		}
		buf.Write(valBytes)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// yamlMapItem is one key/value pair of an order-preserving mapping, used by
// toYAMLNode to build the *yaml.Node OrderedMap.MarshalYAML returns.
type yamlMapItem struct {
	Key   string
	Value any
}
type yamlMapSlice []yamlMapItem

// toYAMLNode builds an order-preserving mapping node from a yamlMapSlice,
// since go.yaml.in/yaml/v4 (like gopkg.in/yaml.v3) marshals plain Go maps in
// sorted key order; a *yaml.Node with Kind MappingNode is the documented way
// to control key order explicitly.
func toYAMLNode(items yamlMapSlice) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, item := range items {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: item.Key}
		valNode := &yaml.Node{}
		if err := valNode.Encode(item.Value); err != nil {
			return nil, fmt.Errorf("encoding value for key %q: %w", item.Key, err)
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}
