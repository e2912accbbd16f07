package merge

import (
	"github.com/erraggy/openapi-merge/mergeconfig"
	"github.com/erraggy/openapi-merge/mergelog"
	"github.com/erraggy/openapi-merge/oasmodel"
	"github.com/erraggy/openapi-merge/oaserrors"
)

// State is the accumulating output document the Merger builds up across
// inputs, plus the bookkeeping needed to apply the supplemented
// operationId-dedup feature (§7), the by-name tag union (first occurrence
// kept), and the "first non-empty value wins" policy for servers,
// top-level security, and externalDocs.
type State struct {
	Output *oasmodel.Document

	seenTags         map[string]struct{}
	seenOperationIDs map[string]struct{}
	descriptionParts []string
	serversSet       bool
	securitySet      bool
	externalDocsSet  bool
}

// NewState initializes an empty accumulating output document.
func NewState() *State {
	return &State{
		Output: &oasmodel.Document{
			Paths:      oasmodel.NewOrderedMap[*oasmodel.PathItem](),
			Components: &oasmodel.Components{},
		},
		seenTags:         make(map[string]struct{}),
		seenOperationIDs: make(map[string]struct{}),
	}
}

// MergeInput folds one already-loaded, path-transformed,
// reference-rewritten input Document into state, per §4.5 steps 5, 7, and
// 8: path union, tag union, and first-non-empty-wins
// server/security/externalDocs. Component union (step 6) already happened
// when the driver called NameComponents directly against
// state.Output.Components, ahead of RewriteReferences and this call.
func MergeInput(state *State, doc *oasmodel.Document, in mergeconfig.InputConfig, inputIndex int, logger mergelog.Logger) error {
	if err := mergePaths(state, doc, inputIndex); err != nil {
		return err
	}
	mergeTags(state, doc)
	mergeServersSecurityExternalDocs(state, doc)
	dedupeOperationIDs(state, doc, in, logger)
	return nil
}

// mergePaths unions doc's (already-transformed) paths into state's output,
// failing with PathConflict if any path key was already contributed by an
// earlier input (§4.5 step 5).
func mergePaths(state *State, doc *oasmodel.Document, inputIndex int) error {
	for _, path := range doc.Paths.Keys() {
		item, _ := doc.Paths.Get(path)
		if state.Output.Paths.Has(path) {
			return &oaserrors.PathConflictError{Path: path, InputIndex: inputIndex}
		}
		state.Output.Paths.Set(path, item)
	}
	return nil
}

// mergeTags unions doc's tags into state's output by name, preserving
// first occurrence (§4.5 step 7).
func mergeTags(state *State, doc *oasmodel.Document) {
	for _, tag := range doc.Tags {
		if tag == nil {
			continue
		}
		if _, seen := state.seenTags[tag.Name]; seen {
			continue
		}
		state.seenTags[tag.Name] = struct{}{}
		state.Output.Tags = append(state.Output.Tags, tag)
	}
}

// mergeServersSecurityExternalDocs implements the refined "first input that
// declares a non-empty value wins" policy for servers, top-level security,
// and externalDocs (§7 of the full specification, refining §9's base Open
// Question resolution).
func mergeServersSecurityExternalDocs(state *State, doc *oasmodel.Document) {
	if !state.serversSet && len(doc.Servers) > 0 {
		state.Output.Servers = doc.Servers
		state.serversSet = true
	}
	if !state.securitySet && len(doc.Security) > 0 {
		state.Output.Security = doc.Security
		state.securitySet = true
	}
	if !state.externalDocsSet && doc.ExternalDocs != nil {
		state.Output.ExternalDocs = doc.ExternalDocs
		state.externalDocsSet = true
	}
}

// dedupeOperationIDs applies the supplemented operationId-dedup feature
// (§7): a duplicate operationId is disputed using the same per-input
// dispute policy used for component names, falling back to a logged
// warning (not a fatal error) when no policy is configured or the renamed
// candidate also collides, since operationId uniqueness is outside the
// base specification's fatal-error taxonomy.
func dedupeOperationIDs(state *State, doc *oasmodel.Document, in mergeconfig.InputConfig, logger mergelog.Logger) {
	if logger == nil {
		logger = mergelog.NopLogger{}
	}
	for _, path := range doc.Paths.Keys() {
		item, _ := doc.Paths.Get(path)
		for _, mo := range oasmodel.OrderedOperations(item) {
			if mo.Operation.OperationID == "" {
				continue
			}
			resolveOperationID(state, mo.Operation, path, mo.Method, in, logger)
		}
	}
}

func resolveOperationID(state *State, op *oasmodel.Operation, path, method string, in mergeconfig.InputConfig, logger mergelog.Logger) {
	id := op.OperationID
	if _, seen := state.seenOperationIDs[id]; !seen {
		state.seenOperationIDs[id] = struct{}{}
		return
	}
	if in.Dispute == nil {
		logger.Warn("duplicate operationId left as-is", "operationId", id, "path", path, "method", method)
		return
	}
	candidate := in.Dispute.Candidate(id)
	if _, taken := state.seenOperationIDs[candidate]; taken {
		logger.Warn("duplicate operationId could not be disambiguated", "operationId", id, "candidate", candidate, "path", path, "method", method)
		return
	}
	state.seenOperationIDs[candidate] = struct{}{}
	op.OperationID = candidate
}
