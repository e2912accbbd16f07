package oasmodel

// OrderedMap is a string-keyed map that preserves insertion order, used for
// every collection in this model whose iteration order is load-bearing:
// paths and each of the nine component category maps. A plain Go map has no
// defined iteration order, which would make the merge engine's ordering
// guarantees (insertion order = concatenation across inputs) impossible to
// honor deterministically.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrderedMap creates an empty ordered map.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{values: make(map[string]V)}
}

// Len returns the number of entries.
func (m *OrderedMap[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Get returns the value for key and whether it was present.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *OrderedMap[V]) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.values[key]
	return ok
}

// Set inserts or updates key. Inserting a new key appends it to the
// iteration order; updating an existing key leaves its position unchanged.
func (m *OrderedMap[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Delete removes key if present.
func (m *OrderedMap[V]) Delete(key string) {
	if m == nil {
		return
	}
	if _, exists := m.values[key]; !exists {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order. The caller must not mutate it.
func (m *OrderedMap[V]) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// Range calls fn for each entry in insertion order, stopping early if fn
// returns false.
func (m *OrderedMap[V]) Range(fn func(key string, value V) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// MarshalYAML implements yaml.Marshaler, emitting a mapping in insertion order.
func (m *OrderedMap[V]) MarshalYAML() (any, error) {
	if m == nil || len(m.keys) == 0 {
		return map[string]V{}, nil
	}
	items := make(yamlMapSlice, 0, len(m.keys))
	for _, k := range m.keys {
		items = append(items, yamlMapItem{Key: k, Value: m.values[k]})
	}
	return toYAMLNode(items)
}

// MarshalJSON implements json.Marshaler, emitting an object in insertion order.
func (m *OrderedMap[V]) MarshalJSON() ([]byte, error) {
	return marshalOrderedJSON(m.keys, func(k string) any { return m.values[k] })
}

// UnmarshalYAML implements yaml.Unmarshaler, preserving key order from the
// source document.
func (m *OrderedMap[V]) UnmarshalYAML(value *yamlNode) error {
	return unmarshalOrderedYAML(value, func(key string, decode func(any) error) error {
		var v V
		if err := decode(&v); err != nil {
			return err
		}
		m.Set(key, v)
		return nil
	})
}

// UnmarshalJSON implements json.Unmarshaler, preserving key order from the
// source document.
func (m *OrderedMap[V]) UnmarshalJSON(data []byte) error {
	return unmarshalOrderedJSON(data, func(key string, decode func(any) error) error {
		var v V
		if err := decode(&v); err != nil {
			return err
		}
		m.Set(key, v)
		return nil
	})
}
