package merge

import (
	"github.com/erraggy/openapi-merge/mergeconfig"
	"github.com/erraggy/openapi-merge/oasmodel"
	"github.com/erraggy/openapi-merge/oaserrors"
)

// categoryOrder fixes the Component Namer's processing order, matching
// oasmodel.Components' field order (§4.3).
var categoryOrder = []string{
	"schemas", "responses", "parameters", "examples", "requestBodies",
	"headers", "securitySchemes", "links", "callbacks",
}

// RenameMap maps, per component category, an input's original component
// name to its final name in the merged output. It carries an entry for
// every name the input contributed: an identity entry for names that were
// adopted unchanged or deduplicated, and the dispute candidate for names
// that were renamed.
type RenameMap map[string]map[string]string

func newRenameMap() RenameMap {
	m := make(RenameMap, len(categoryOrder))
	for _, cat := range categoryOrder {
		m[cat] = make(map[string]string)
	}
	return m
}

// nameCategory runs the Component Namer's per-category algorithm (§4.3)
// over one category: for each (name, def) in input, in insertion order,
// decide adopt / dedupe / dispute-rename against output, mutating output
// in place and recording the decision into renames.
func nameCategory[V any](category string, output, input *oasmodel.OrderedMap[V], policy *mergeconfig.DisputeConfig, inputIndex int, renames map[string]string) error {
	if input == nil {
		return nil
	}
	for _, name := range input.Keys() {
		def, _ := input.Get(name)
		alwaysApply := policy != nil && policy.AlwaysApply

		existing, exists := output.Get(name)

		if !exists && !alwaysApply {
			output.Set(name, def)
			renames[name] = name
			continue
		}

		if exists && !alwaysApply && oasmodel.StructuralEqual(existing, def) {
			renames[name] = name
			continue
		}

		if policy == nil {
			return &oaserrors.DisputeUnresolvedError{Category: category, Name: name, InputIndex: inputIndex}
		}
		candidate := policy.Candidate(name)
		if candidateExisting, candidateExists := output.Get(candidate); candidateExists && !oasmodel.StructuralEqual(candidateExisting, def) {
			return &oaserrors.DisputeStillConflictsError{Category: category, Original: name, Candidate: candidate}
		}
		output.Set(candidate, def)
		renames[name] = candidate
	}
	return nil
}

// NameComponents applies the Component Namer to every category of input in
// the fixed category order, mutating output's Components in place and
// returning the per-category rename map for the Reference Rewriter.
func NameComponents(output, input *oasmodel.Components, policy *mergeconfig.DisputeConfig, inputIndex int) (RenameMap, error) {
	renames := newRenameMap()
	if input == nil {
		return renames, nil
	}
	ensureComponents(output)

	if err := nameCategory("schemas", output.Schemas, input.Schemas, policy, inputIndex, renames["schemas"]); err != nil {
		return nil, err
	}
	if err := nameCategory("responses", output.Responses, input.Responses, policy, inputIndex, renames["responses"]); err != nil {
		return nil, err
	}
	if err := nameCategory("parameters", output.Parameters, input.Parameters, policy, inputIndex, renames["parameters"]); err != nil {
		return nil, err
	}
	if err := nameCategory("examples", output.Examples, input.Examples, policy, inputIndex, renames["examples"]); err != nil {
		return nil, err
	}
	if err := nameCategory("requestBodies", output.RequestBodies, input.RequestBodies, policy, inputIndex, renames["requestBodies"]); err != nil {
		return nil, err
	}
	if err := nameCategory("headers", output.Headers, input.Headers, policy, inputIndex, renames["headers"]); err != nil {
		return nil, err
	}
	if err := nameCategory("securitySchemes", output.SecuritySchemes, input.SecuritySchemes, policy, inputIndex, renames["securitySchemes"]); err != nil {
		return nil, err
	}
	if err := nameCategory("links", output.Links, input.Links, policy, inputIndex, renames["links"]); err != nil {
		return nil, err
	}
	if err := nameCategory("callbacks", output.Callbacks, input.Callbacks, policy, inputIndex, renames["callbacks"]); err != nil {
		return nil, err
	}
	return renames, nil
}

// ensureComponents initializes any nil category map on output so
// nameCategory can always call Get/Set on it.
func ensureComponents(output *oasmodel.Components) {
	if output.Schemas == nil {
		output.Schemas = oasmodel.NewOrderedMap[*oasmodel.Schema]()
	}
	if output.Responses == nil {
		output.Responses = oasmodel.NewOrderedMap[*oasmodel.Response]()
	}
	if output.Parameters == nil {
		output.Parameters = oasmodel.NewOrderedMap[*oasmodel.Parameter]()
	}
	if output.Examples == nil {
		output.Examples = oasmodel.NewOrderedMap[*oasmodel.Example]()
	}
	if output.RequestBodies == nil {
		output.RequestBodies = oasmodel.NewOrderedMap[*oasmodel.RequestBody]()
	}
	if output.Headers == nil {
		output.Headers = oasmodel.NewOrderedMap[*oasmodel.Header]()
	}
	if output.SecuritySchemes == nil {
		output.SecuritySchemes = oasmodel.NewOrderedMap[*oasmodel.SecurityScheme]()
	}
	if output.Links == nil {
		output.Links = oasmodel.NewOrderedMap[*oasmodel.Link]()
	}
	if output.Callbacks == nil {
		output.Callbacks = oasmodel.NewOrderedMap[*oasmodel.Callback]()
	}
}
