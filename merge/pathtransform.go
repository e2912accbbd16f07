package merge

import (
	"strings"

	"github.com/erraggy/openapi-merge/mergeconfig"
	"github.com/erraggy/openapi-merge/oasmodel"
)

// PathRenameMap maps an input's original path keys to their transformed
// keys, used by the Reference Rewriter to update "#/paths/<path>"
// references (§7 of the full specification).
type PathRenameMap map[string]string

// TransformPaths applies one input's pathModification and
// operationSelection directives to doc's paths, in place. It returns the
// path rename map recording, for every original path key, the key it was
// transformed to.
//
// stripStart is applied before prepend. Operation filtering happens first,
// since a PathItem whose every operation is removed is dropped entirely
// regardless of what its key would transform to.
func TransformPaths(doc *oasmodel.Document, in mergeconfig.InputConfig) PathRenameMap {
	filterOperations(doc, in.OperationSelection)

	renamed := oasmodel.NewOrderedMap[*oasmodel.PathItem]()
	renames := make(PathRenameMap, doc.Paths.Len())
	for _, originalPath := range doc.Paths.Keys() {
		item, _ := doc.Paths.Get(originalPath)
		if !oasmodel.HasAnyOperation(item) {
			continue
		}
		newPath := transformPathKey(originalPath, in.PathModification)
		renames[originalPath] = newPath
		renamed.Set(newPath, item)
	}
	doc.Paths = renamed
	return renames
}

func transformPathKey(path string, mod *mergeconfig.PathModification) string {
	if mod == nil {
		return path
	}
	if mod.StripStart != "" && strings.HasPrefix(path, mod.StripStart) {
		stripped := strings.TrimPrefix(path, mod.StripStart)
		if stripped == "" {
			if mod.Prepend != "" {
				return mod.Prepend
			}
			stripped = "/"
		}
		path = stripped
	}
	return mod.Prepend + path
}

func filterOperations(doc *oasmodel.Document, sel *mergeconfig.OperationSelection) {
	if sel == nil || (len(sel.IncludeTags) == 0 && len(sel.ExcludeTags) == 0) {
		return
	}
	include := toTagSet(sel.IncludeTags)
	exclude := toTagSet(sel.ExcludeTags)

	for _, path := range doc.Paths.Keys() {
		item, _ := doc.Paths.Get(path)
		for method, op := range oasmodel.GetOperations(item) {
			if op == nil {
				continue
			}
			tags := toTagSet(op.Tags)
			if len(include) > 0 && !intersects(tags, include) {
				oasmodel.SetOperation(item, method, nil)
				continue
			}
			if len(exclude) > 0 && intersects(tags, exclude) {
				oasmodel.SetOperation(item, method, nil)
			}
		}
	}
}

func toTagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return set
}

func intersects(a, b map[string]struct{}) bool {
	for t := range a {
		if _, ok := b[t]; ok {
			return true
		}
	}
	return false
}
