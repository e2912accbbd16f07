// Package oasmodel is the OpenAPI 3.0 document model used by the merge
// engine. It is intentionally scoped to OAS 3.0 only: no Swagger 2.0 or OAS
// 3.1/3.2-only fields are modeled, since the merge engine does not merge or
// convert across versions.
package oasmodel

// Document is a top-level OpenAPI 3.0 document.
type Document struct {
	OpenAPI      string           `yaml:"openapi" json:"openapi"`
	Info         *Info            `yaml:"info" json:"info"`
	Servers      []*Server        `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths        *OrderedMap[*PathItem] `yaml:"paths" json:"paths"`
	Components   *Components      `yaml:"components,omitempty" json:"components,omitempty"`
	Security     []SecurityRequirement `yaml:"security,omitempty" json:"security,omitempty"`
	Tags         []*Tag           `yaml:"tags,omitempty" json:"tags,omitempty"`
	ExternalDocs *ExternalDocs    `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	Extra        map[string]any   `yaml:",inline" json:"-"`
}

// Info is the document's metadata block.
type Info struct {
	Title          string         `yaml:"title" json:"title"`
	Summary        string         `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description    string         `yaml:"description,omitempty" json:"description,omitempty"`
	TermsOfService string         `yaml:"termsOfService,omitempty" json:"termsOfService,omitempty"`
	Contact        *Contact       `yaml:"contact,omitempty" json:"contact,omitempty"`
	License        *License       `yaml:"license,omitempty" json:"license,omitempty"`
	Version        string         `yaml:"version" json:"version"`
	Extra          map[string]any `yaml:",inline" json:"-"`
}

// Contact holds contact information for the API.
type Contact struct {
	Name  string         `yaml:"name,omitempty" json:"name,omitempty"`
	URL   string         `yaml:"url,omitempty" json:"url,omitempty"`
	Email string         `yaml:"email,omitempty" json:"email,omitempty"`
	Extra map[string]any `yaml:",inline" json:"-"`
}

// License holds license information for the API.
type License struct {
	Name  string         `yaml:"name" json:"name"`
	URL   string         `yaml:"url,omitempty" json:"url,omitempty"`
	Extra map[string]any `yaml:",inline" json:"-"`
}

// ExternalDocs references external documentation.
type ExternalDocs struct {
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	URL         string         `yaml:"url" json:"url"`
	Extra       map[string]any `yaml:",inline" json:"-"`
}

// Tag adds metadata to a single tag used by an Operation.
type Tag struct {
	Name         string         `yaml:"name" json:"name"`
	Description  string         `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs  `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	Extra        map[string]any `yaml:",inline" json:"-"`
}

// Server describes a single server hosting the API.
type Server struct {
	URL         string                     `yaml:"url" json:"url"`
	Description string                     `yaml:"description,omitempty" json:"description,omitempty"`
	Variables   map[string]*ServerVariable `yaml:"variables,omitempty" json:"variables,omitempty"`
	Extra       map[string]any             `yaml:",inline" json:"-"`
}

// ServerVariable describes one templated variable in a Server URL.
type ServerVariable struct {
	Enum        []string       `yaml:"enum,omitempty" json:"enum,omitempty"`
	Default     string         `yaml:"default" json:"default"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Extra       map[string]any `yaml:",inline" json:"-"`
}

// Components holds the nine reusable-object category maps. Field order here
// fixes the Component Namer's processing order (schemas, responses,
// parameters, examples, requestBodies, headers, securitySchemes, links,
// callbacks), matching the base specification's §4.3.
type Components struct {
	Schemas         *OrderedMap[*Schema]         `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Responses       *OrderedMap[*Response]       `yaml:"responses,omitempty" json:"responses,omitempty"`
	Parameters      *OrderedMap[*Parameter]      `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Examples        *OrderedMap[*Example]        `yaml:"examples,omitempty" json:"examples,omitempty"`
	RequestBodies   *OrderedMap[*RequestBody]    `yaml:"requestBodies,omitempty" json:"requestBodies,omitempty"`
	Headers         *OrderedMap[*Header]         `yaml:"headers,omitempty" json:"headers,omitempty"`
	SecuritySchemes *OrderedMap[*SecurityScheme] `yaml:"securitySchemes,omitempty" json:"securitySchemes,omitempty"`
	Links           *OrderedMap[*Link]           `yaml:"links,omitempty" json:"links,omitempty"`
	Callbacks       *OrderedMap[*Callback]       `yaml:"callbacks,omitempty" json:"callbacks,omitempty"`
	Extra           map[string]any               `yaml:",inline" json:"-"`
}

// Example is a single example value, inline or by reference.
type Example struct {
	Ref           string         `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Summary       string         `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description   string         `yaml:"description,omitempty" json:"description,omitempty"`
	Value         any            `yaml:"value,omitempty" json:"value,omitempty"`
	ExternalValue string         `yaml:"externalValue,omitempty" json:"externalValue,omitempty"`
	Extra         map[string]any `yaml:",inline" json:"-"`
}

// Link describes a possible design-time link for a response.
type Link struct {
	Ref          string         `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	OperationRef string         `yaml:"operationRef,omitempty" json:"operationRef,omitempty"`
	OperationID  string         `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters   map[string]any `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody  any            `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Description  string         `yaml:"description,omitempty" json:"description,omitempty"`
	Server       *Server        `yaml:"server,omitempty" json:"server,omitempty"`
	Extra        map[string]any `yaml:",inline" json:"-"`
}

// Callback is a map of runtime expression to the PathItem it invokes.
type Callback struct {
	Ref   string                  `yaml:"-" json:"-"`
	Items *OrderedMap[*PathItem] `yaml:"-" json:"-"`
}
