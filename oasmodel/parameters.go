package oasmodel

// Parameter describes a single operation or path-level parameter, inline or
// by reference. Name and In are omitempty because a parameter defined via
// $ref leaves them on the referenced definition, not the referencing site.
type Parameter struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	Name            string                      `yaml:"name,omitempty" json:"name,omitempty"`
	In              string                      `yaml:"in,omitempty" json:"in,omitempty"` // "query", "header", "path", "cookie"
	Description     string                      `yaml:"description,omitempty" json:"description,omitempty"`
	Required        bool                        `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated      bool                        `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	AllowEmptyValue bool                        `yaml:"allowEmptyValue,omitempty" json:"allowEmptyValue,omitempty"`
	Style           string                      `yaml:"style,omitempty" json:"style,omitempty"`
	Explode         bool                        `yaml:"explode,omitempty" json:"explode,omitempty"`
	AllowReserved   bool                        `yaml:"allowReserved,omitempty" json:"allowReserved,omitempty"`
	Schema          *Schema                     `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example         any                         `yaml:"example,omitempty" json:"example,omitempty"`
	Examples        *OrderedMap[*Example]       `yaml:"examples,omitempty" json:"examples,omitempty"`
	Content         *OrderedMap[*MediaType]     `yaml:"content,omitempty" json:"content,omitempty"`
	Extra           map[string]any              `yaml:",inline" json:"-"`
}

// RequestBody describes a single request body, inline or by reference.
type RequestBody struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	Description string                  `yaml:"description,omitempty" json:"description,omitempty"`
	Content     *OrderedMap[*MediaType] `yaml:"content,omitempty" json:"content,omitempty"`
	Required    bool                    `yaml:"required,omitempty" json:"required,omitempty"`
	Extra       map[string]any          `yaml:",inline" json:"-"`
}

// Header describes a single response header, inline or by reference. It
// shares every field with Parameter except Name and In, which a header does
// not carry (its name is the map key it is stored under).
type Header struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	Description   string                  `yaml:"description,omitempty" json:"description,omitempty"`
	Required      bool                    `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated    bool                    `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Style         string                  `yaml:"style,omitempty" json:"style,omitempty"`
	Explode       bool                    `yaml:"explode,omitempty" json:"explode,omitempty"`
	Schema        *Schema                 `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example       any                     `yaml:"example,omitempty" json:"example,omitempty"`
	Examples      *OrderedMap[*Example]   `yaml:"examples,omitempty" json:"examples,omitempty"`
	Content       *OrderedMap[*MediaType] `yaml:"content,omitempty" json:"content,omitempty"`
	Extra         map[string]any          `yaml:",inline" json:"-"`
}

// MediaType provides the schema and examples for a particular media type.
type MediaType struct {
	Schema   *Schema                `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example  any                    `yaml:"example,omitempty" json:"example,omitempty"`
	Examples *OrderedMap[*Example] `yaml:"examples,omitempty" json:"examples,omitempty"`
	Encoding map[string]*Encoding   `yaml:"encoding,omitempty" json:"encoding,omitempty"`
	Extra    map[string]any         `yaml:",inline" json:"-"`
}

// Encoding describes a single encoded property for multipart/form-data and
// application/x-www-form-urlencoded request bodies.
type Encoding struct {
	ContentType   string         `yaml:"contentType,omitempty" json:"contentType,omitempty"`
	Headers       map[string]*Header `yaml:"headers,omitempty" json:"headers,omitempty"`
	Style         string         `yaml:"style,omitempty" json:"style,omitempty"`
	Explode       bool           `yaml:"explode,omitempty" json:"explode,omitempty"`
	AllowReserved bool           `yaml:"allowReserved,omitempty" json:"allowReserved,omitempty"`
	Extra         map[string]any `yaml:",inline" json:"-"`
}
