package merge

import (
	"strings"

	"github.com/yosida95/uritemplate/v3"

	"github.com/erraggy/openapi-merge/mergeconfig"
	"github.com/erraggy/openapi-merge/mergelog"
	"github.com/erraggy/openapi-merge/oasmodel"
	"github.com/erraggy/openapi-merge/oaserrors"
)

// Assemble finalizes state's output document (§4.6): resolves the
// top-level openapi version, then runs the final reference-integrity pass
// and the supplemented path-template validation pass (§7), logging a
// warning for any path whose template syntax does not parse as a URI
// Template rather than failing the merge, since path transformation is
// defined as total (§4.1).
func Assemble(state *State, cfg *mergeconfig.Config, firstInputVersion string, logger mergelog.Logger) error {
	if logger == nil {
		logger = mergelog.NopLogger{}
	}

	if cfg.OpenAPIVersion != "" && !strings.HasPrefix(cfg.OpenAPIVersion, "3.0.") {
		return &oaserrors.UnsupportedVersionError{Version: cfg.OpenAPIVersion}
	}
	state.Output.OpenAPI = resolveVersion(cfg, firstInputVersion)

	validatePathTemplates(state, logger)

	return verifyIntegrity(state)
}

func resolveVersion(cfg *mergeconfig.Config, firstInputVersion string) string {
	if cfg.OpenAPIVersion != "" {
		return cfg.OpenAPIVersion
	}
	return firstInputVersion
}

func validatePathTemplates(state *State, logger mergelog.Logger) {
	for _, path := range state.Output.Paths.Keys() {
		if _, err := uritemplate.New(path); err != nil {
			logger.Warn("path does not parse as a URI template", "path", path, "error", err)
		}
	}
}

// verifyIntegrity walks every reference site in the assembled output and
// confirms it resolves to a definition actually present in the output's
// components, failing with IntegrityFailure on the first one that doesn't
// (§4.6).
func verifyIntegrity(state *State) error {
	for _, site := range Index(state.Output) {
		if err := verifySite(state, *site.Ptr); err != nil {
			return err
		}
	}
	return nil
}

func verifySite(state *State, reference string) error {
	category, name, ok := parseComponentRef(reference)
	if !ok {
		return nil
	}
	if !categoryHas(state.Output.Components, category, name) {
		return &oaserrors.IntegrityFailureError{Reference: reference}
	}
	return nil
}

func categoryHas(c *oasmodel.Components, category, name string) bool {
	switch category {
	case "schemas":
		return c.Schemas != nil && c.Schemas.Has(name)
	case "responses":
		return c.Responses != nil && c.Responses.Has(name)
	case "parameters":
		return c.Parameters != nil && c.Parameters.Has(name)
	case "examples":
		return c.Examples != nil && c.Examples.Has(name)
	case "requestBodies":
		return c.RequestBodies != nil && c.RequestBodies.Has(name)
	case "headers":
		return c.Headers != nil && c.Headers.Has(name)
	case "securitySchemes":
		return c.SecuritySchemes != nil && c.SecuritySchemes.Has(name)
	case "links":
		return c.Links != nil && c.Links.Has(name)
	case "callbacks":
		return c.Callbacks != nil && c.Callbacks.Has(name)
	}
	return false
}
