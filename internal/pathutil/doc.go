// Package pathutil builds and parses OpenAPI 3.0 reference strings
// ("#/components/<category>/<name>", "#/paths/<path>"), and sanitizes
// output file paths.
//
// # Reference Builders
//
//	ref := pathutil.SchemaRef("Pet")   // "#/components/schemas/Pet"
//	ref := pathutil.LinkRef("GetPet")  // "#/components/links/GetPet"
//
// These use simple string concatenation which Go optimizes well for two
// operands, avoiding the overhead of fmt.Sprintf.
//
// [PathRef] builds a JSON-Pointer-escaped "#/paths/<path>" reference, the
// form a Link.OperationRef uses to point at an operation by path template
// rather than by operationId:
//
//	ref := pathutil.PathRef("/pets/{id}")  // "#/paths/~1pets~1{id}"
//
// # Output Path Sanitization
//
// [SanitizeOutputPath] validates and cleans output file paths for security.
// It resolves ".." components to an absolute path and rejects paths that
// resolve to symlinks:
//
//	safe, err := pathutil.SanitizeOutputPath(userProvidedPath)
//	if err != nil {
//	    return err // symlink detected, or the path could not be resolved
//	}
package pathutil
