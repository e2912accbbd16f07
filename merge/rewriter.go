package merge

import (
	"strings"

	"github.com/erraggy/openapi-merge/internal/pathutil"
	"github.com/erraggy/openapi-merge/oasmodel"
	"github.com/erraggy/openapi-merge/oaserrors"
)

// RewriteReferences walks every $ref site in doc (via Index) and, for each
// one matching "#/components/<category>/<name>", substitutes <name> with
// its mapped name from renames. The Component Namer records an entry for
// every component the input contributes, deduplicated ones included, so a
// reference whose name is absent from renames[category] has no target and
// fails with DanglingReferenceError (§4.4).
//
// It also rewrites, using pathRenames, every Link.OperationRef of the form
// "#/paths/<path>/<method>" found in the responses of doc's path
// operations, the supplemented behavior described in §7 of the full
// specification. Links under components.links or inside callbacks are not
// visited by this step.
func RewriteReferences(doc *oasmodel.Document, renames RenameMap, pathRenames PathRenameMap) error {
	for _, site := range Index(doc) {
		if err := rewriteSite(site, renames); err != nil {
			return err
		}
	}
	return rewriteOperationRefs(doc, pathRenames)
}

func rewriteSite(site *RefSite, renames RenameMap) error {
	category, name, ok := parseComponentRef(*site.Ptr)
	if !ok {
		return nil
	}
	catRenames, known := renames[category]
	if !known {
		return nil
	}
	newName, ok := catRenames[name]
	if !ok {
		return &oaserrors.DanglingReferenceError{Category: category, Name: name}
	}
	*site.Ptr = pathutil.CategoryPrefixes[category] + newName
	return nil
}

// parseComponentRef splits "#/components/<category>/<name>" into its
// category and name, reporting ok=false for any string that does not match
// a known component-reference prefix (external references, non-ref
// strings accidentally visited, or "#/paths/..." refs handled separately).
func parseComponentRef(s string) (category, name string, ok bool) {
	for cat, prefix := range pathutil.CategoryPrefixes {
		if strings.HasPrefix(s, prefix) {
			return cat, strings.TrimPrefix(s, prefix), true
		}
	}
	return "", "", false
}

// rewriteOperationRefs rewrites every Link.OperationRef of the form
// "#/paths/<escaped-path>/<method>" found in doc's responses, using
// pathRenames to translate the path segment.
func rewriteOperationRefs(doc *oasmodel.Document, pathRenames PathRenameMap) error {
	if doc.Paths == nil {
		return nil
	}
	for _, path := range doc.Paths.Keys() {
		item, _ := doc.Paths.Get(path)
		for _, op := range oasmodel.GetOperations(item) {
			rewriteOperationRefsInResponses(op.Responses, pathRenames)
		}
	}
	return nil
}

func rewriteOperationRefsInResponses(responses *oasmodel.Responses, pathRenames PathRenameMap) {
	if responses == nil {
		return
	}
	rewriteOperationRefsInResponse(responses.Default, pathRenames)
	if responses.Codes != nil {
		responses.Codes.Range(func(_ string, resp *oasmodel.Response) bool {
			rewriteOperationRefsInResponse(resp, pathRenames)
			return true
		})
	}
}

func rewriteOperationRefsInResponse(resp *oasmodel.Response, pathRenames PathRenameMap) {
	if resp == nil || resp.Links == nil {
		return
	}
	resp.Links.Range(func(_ string, link *oasmodel.Link) bool {
		if link != nil {
			link.OperationRef = rewritePathRef(link.OperationRef, pathRenames)
		}
		return true
	})
}

// rewritePathRef rewrites a single "#/paths/<escaped-path>/<method>"
// reference using pathRenames, leaving any other string untouched.
func rewritePathRef(ref string, pathRenames PathRenameMap) string {
	if !strings.HasPrefix(ref, pathutil.RefPrefixPaths) {
		return ref
	}
	rest := strings.TrimPrefix(ref, pathutil.RefPrefixPaths)
	escapedPath, method, hasMethod := strings.Cut(rest, "/")
	originalPath := pathutil.UnescapeJSONPointer(escapedPath)
	newPath, known := pathRenames[originalPath]
	if !known {
		return ref
	}
	newRef := pathutil.RefPrefixPaths + pathutil.EscapeJSONPointer(newPath)
	if hasMethod {
		newRef += "/" + method
	}
	return newRef
}
