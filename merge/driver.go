// Package merge implements the merge engine: a pure transformation from an
// ordered list of OpenAPI 3.0 documents, plus per-input directives, into
// one merged document (Merge, the Top-level Driver).
package merge

import (
	"github.com/erraggy/openapi-merge/mergeconfig"
	"github.com/erraggy/openapi-merge/mergelog"
	"github.com/erraggy/openapi-merge/oasmodel"
)

// Merge is the Top-level Driver (§4.8): a pure function from (cfg, inputs)
// to (merged Document | error). inputs must be parallel to cfg.Inputs —
// inputs[i] is the already-loaded document for cfg.Inputs[i]. Merge does
// no I/O of its own; loading inputs is mergeio's job.
func Merge(cfg *mergeconfig.Config, inputs []*oasmodel.Document, logger mergelog.Logger) (*oasmodel.Document, error) {
	if logger == nil {
		logger = mergelog.NopLogger{}
	}

	state := NewState()
	var firstInputVersion string

	for i, doc := range inputs {
		in := cfg.Inputs[i]
		logger.Debug("merging input", "index", i)

		if i == 0 {
			if doc.Info != nil {
				info := *doc.Info
				state.Output.Info = &info
			}
			firstInputVersion = doc.OpenAPI
		}

		pathRenames := TransformPaths(doc, in)

		componentRenames, err := NameComponents(state.Output.Components, doc.Components, in.Dispute, i)
		if err != nil {
			return nil, err
		}

		if err := RewriteReferences(doc, componentRenames, pathRenames); err != nil {
			return nil, err
		}

		if err := MergeInput(state, doc, in, i, logger); err != nil {
			return nil, err
		}

		JoinDescription(state, doc, in)
	}

	if err := Assemble(state, cfg, firstInputVersion, logger); err != nil {
		return nil, err
	}

	return state.Output, nil
}
