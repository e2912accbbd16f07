package oasmodel

import (
	"fmt"

	yaml "go.yaml.in/yaml/v4"
)

// MarshalYAML emits either {$ref: ...} or the expression-to-PathItem mapping
// directly, since Callback's wire shape is a flat map (or a $ref object),
// not a nested "items" object.
func (c *Callback) MarshalYAML() (any, error) {
	if c.Ref != "" {
		return map[string]string{"$ref": c.Ref}, nil
	}
	items := make(yamlMapSlice, 0, c.Items.Len())
	c.Items.Range(func(key string, value *PathItem) bool {
		items = append(items, yamlMapItem{Key: key, Value: value})
		return true
	})
	return toYAMLNode(items)
}

// UnmarshalYAML decodes either {$ref: ...} or an expression-to-PathItem map.
func (c *Callback) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("expected a mapping for callback, got kind %d", value.Kind)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		if value.Content[i].Value == "$ref" {
			return value.Content[i+1].Decode(&c.Ref)
		}
	}
	c.Items = NewOrderedMap[*PathItem]()
	return unmarshalOrderedYAML(value, func(key string, decode func(any) error) error {
		var item PathItem
		if err := decode(&item); err != nil {
			return err
		}
		c.Items.Set(key, &item)
		return nil
	})
}

// MarshalJSON mirrors MarshalYAML for the JSON encoding path.
func (c *Callback) MarshalJSON() ([]byte, error) {
	if c.Ref != "" {
		return marshalOrderedJSON([]string{"$ref"}, func(string) any { return c.Ref })
	}
	keys := c.Items.Keys()
	return marshalOrderedJSON(keys, func(k string) any {
		v, _ := c.Items.Get(k)
		return v
	})
}

// UnmarshalJSON mirrors UnmarshalYAML for the JSON decoding path.
func (c *Callback) UnmarshalJSON(data []byte) error {
	c.Items = NewOrderedMap[*PathItem]()
	return unmarshalOrderedJSON(data, func(key string, decode func(any) error) error {
		if key == "$ref" {
			return decode(&c.Ref)
		}
		var item PathItem
		if err := decode(&item); err != nil {
			return err
		}
		c.Items.Set(key, &item)
		return nil
	})
}
