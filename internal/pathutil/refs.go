package pathutil

// Component reference prefixes, one per OAS 3.0 reusable-object category.
const (
	RefPrefixSchemas         = "#/components/schemas/"
	RefPrefixResponses       = "#/components/responses/"
	RefPrefixParameters      = "#/components/parameters/"
	RefPrefixExamples        = "#/components/examples/"
	RefPrefixRequestBodies   = "#/components/requestBodies/"
	RefPrefixHeaders         = "#/components/headers/"
	RefPrefixSecuritySchemes = "#/components/securitySchemes/"
	RefPrefixLinks           = "#/components/links/"
	RefPrefixCallbacks       = "#/components/callbacks/"

	// RefPrefixPaths prefixes a JSON-Pointer-escaped path template, used by
	// Link.OperationRef values like "#/paths/~1pets~1{id}/get".
	RefPrefixPaths = "#/paths/"
)

// CategoryPrefixes maps each component category name, as used by
// oasmodel.Components' field order, to its reference prefix.
var CategoryPrefixes = map[string]string{
	"schemas":         RefPrefixSchemas,
	"responses":       RefPrefixResponses,
	"parameters":      RefPrefixParameters,
	"examples":        RefPrefixExamples,
	"requestBodies":   RefPrefixRequestBodies,
	"headers":         RefPrefixHeaders,
	"securitySchemes": RefPrefixSecuritySchemes,
	"links":           RefPrefixLinks,
	"callbacks":       RefPrefixCallbacks,
}

// SchemaRef builds "#/components/schemas/{name}".
func SchemaRef(name string) string { return RefPrefixSchemas + name }

// ResponseRef builds "#/components/responses/{name}".
func ResponseRef(name string) string { return RefPrefixResponses + name }

// ParameterRef builds "#/components/parameters/{name}".
func ParameterRef(name string) string { return RefPrefixParameters + name }

// ExampleRef builds "#/components/examples/{name}".
func ExampleRef(name string) string { return RefPrefixExamples + name }

// RequestBodyRef builds "#/components/requestBodies/{name}".
func RequestBodyRef(name string) string { return RefPrefixRequestBodies + name }

// HeaderRef builds "#/components/headers/{name}".
func HeaderRef(name string) string { return RefPrefixHeaders + name }

// SecuritySchemeRef builds "#/components/securitySchemes/{name}".
func SecuritySchemeRef(name string) string { return RefPrefixSecuritySchemes + name }

// LinkRef builds "#/components/links/{name}".
func LinkRef(name string) string { return RefPrefixLinks + name }

// CallbackRef builds "#/components/callbacks/{name}".
func CallbackRef(name string) string { return RefPrefixCallbacks + name }

// PathRef builds "#/paths/{escaped path}" using JSON Pointer escaping
// (RFC 6901: "~" becomes "~0", "/" becomes "~1").
func PathRef(path string) string {
	return RefPrefixPaths + EscapeJSONPointer(path)
}

// EscapeJSONPointer escapes a raw path segment for use inside a JSON
// Pointer reference token, per RFC 6901.
func EscapeJSONPointer(s string) string {
	escaped := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '~':
			escaped = append(escaped, '~', '0')
		case '/':
			escaped = append(escaped, '~', '1')
		default:
			escaped = append(escaped, s[i])
		}
	}
	return string(escaped)
}

// UnescapeJSONPointer reverses EscapeJSONPointer.
func UnescapeJSONPointer(s string) string {
	unescaped := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '~' && i+1 < len(s) {
			switch s[i+1] {
			case '0':
				unescaped = append(unescaped, '~')
				i++
				continue
			case '1':
				unescaped = append(unescaped, '/')
				i++
				continue
			}
		}
		unescaped = append(unescaped, s[i])
	}
	return string(unescaped)
}
