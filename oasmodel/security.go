package oasmodel

// SecurityRequirement lists the security schemes required to execute an
// operation, mapping scheme name to the list of required scopes (empty for
// non-OAuth2/OIDC schemes).
type SecurityRequirement map[string][]string

// SecurityScheme defines a single security scheme that operations can
// require. Type is omitempty because a security scheme can be defined via
// $ref, in which case the actual value lives on the referenced definition.
type SecurityScheme struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	Type             string         `yaml:"type,omitempty" json:"type,omitempty"` // "apiKey", "http", "oauth2", "openIdConnect"
	Description      string         `yaml:"description,omitempty" json:"description,omitempty"`
	Name             string         `yaml:"name,omitempty" json:"name,omitempty"`
	In               string         `yaml:"in,omitempty" json:"in,omitempty"`
	Scheme           string         `yaml:"scheme,omitempty" json:"scheme,omitempty"`
	BearerFormat     string         `yaml:"bearerFormat,omitempty" json:"bearerFormat,omitempty"`
	Flows            *OAuthFlows    `yaml:"flows,omitempty" json:"flows,omitempty"`
	OpenIDConnectURL string         `yaml:"openIdConnectUrl,omitempty" json:"openIdConnectUrl,omitempty"`
	Extra            map[string]any `yaml:",inline" json:"-"`
}

// OAuthFlows configures the supported OAuth2 flows.
type OAuthFlows struct {
	Implicit          *OAuthFlow     `yaml:"implicit,omitempty" json:"implicit,omitempty"`
	Password          *OAuthFlow     `yaml:"password,omitempty" json:"password,omitempty"`
	ClientCredentials *OAuthFlow     `yaml:"clientCredentials,omitempty" json:"clientCredentials,omitempty"`
	AuthorizationCode *OAuthFlow     `yaml:"authorizationCode,omitempty" json:"authorizationCode,omitempty"`
	Extra             map[string]any `yaml:",inline" json:"-"`
}

// OAuthFlow configures a single OAuth2 flow.
type OAuthFlow struct {
	AuthorizationURL string            `yaml:"authorizationUrl,omitempty" json:"authorizationUrl,omitempty"`
	TokenURL         string            `yaml:"tokenUrl,omitempty" json:"tokenUrl,omitempty"`
	RefreshURL       string            `yaml:"refreshUrl,omitempty" json:"refreshUrl,omitempty"`
	Scopes           map[string]string `yaml:"scopes" json:"scopes"`
	Extra            map[string]any    `yaml:",inline" json:"-"`
}
