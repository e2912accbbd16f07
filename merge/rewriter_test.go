package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/openapi-merge/oasmodel"
	"github.com/erraggy/openapi-merge/oaserrors"
)

func TestRewriteReferencesAppliesRenames(t *testing.T) {
	schema := &oasmodel.Schema{Ref: "#/components/schemas/Error"}
	content := oasmodel.NewOrderedMap[*oasmodel.MediaType]()
	content.Set("application/json", &oasmodel.MediaType{Schema: schema})

	responses := &oasmodel.Responses{Codes: oasmodel.NewOrderedMap[*oasmodel.Response]()}
	responses.Codes.Set("default", &oasmodel.Response{Content: content})

	pathMap := oasmodel.NewOrderedMap[*oasmodel.PathItem]()
	pathMap.Set("/x", &oasmodel.PathItem{Get: &oasmodel.Operation{Responses: responses}})
	doc := &oasmodel.Document{Paths: pathMap}

	renames := newRenameMap()
	renames["schemas"]["Error"] = "BError"

	require.NoError(t, RewriteReferences(doc, renames, nil))
	assert.Equal(t, "#/components/schemas/BError", schema.Ref)
}

func TestRewriteReferencesLeavesDedupedUntouched(t *testing.T) {
	schema := &oasmodel.Schema{Ref: "#/components/schemas/Pagination"}
	content := oasmodel.NewOrderedMap[*oasmodel.MediaType]()
	content.Set("application/json", &oasmodel.MediaType{Schema: schema})
	responses := &oasmodel.Responses{Codes: oasmodel.NewOrderedMap[*oasmodel.Response]()}
	responses.Codes.Set("200", &oasmodel.Response{Content: content})
	pathMap := oasmodel.NewOrderedMap[*oasmodel.PathItem]()
	pathMap.Set("/x", &oasmodel.PathItem{Get: &oasmodel.Operation{Responses: responses}})
	doc := &oasmodel.Document{Paths: pathMap}

	renames := newRenameMap()
	renames["schemas"]["Pagination"] = "Pagination"

	require.NoError(t, RewriteReferences(doc, renames, nil))
	assert.Equal(t, "#/components/schemas/Pagination", schema.Ref)
}

func TestRewriteReferencesDanglingReference(t *testing.T) {
	schema := &oasmodel.Schema{Ref: "#/components/schemas/Ghost"}
	content := oasmodel.NewOrderedMap[*oasmodel.MediaType]()
	content.Set("application/json", &oasmodel.MediaType{Schema: schema})
	responses := &oasmodel.Responses{Codes: oasmodel.NewOrderedMap[*oasmodel.Response]()}
	responses.Codes.Set("200", &oasmodel.Response{Content: content})
	pathMap := oasmodel.NewOrderedMap[*oasmodel.PathItem]()
	pathMap.Set("/x", &oasmodel.PathItem{Get: &oasmodel.Operation{Responses: responses}})
	doc := &oasmodel.Document{Paths: pathMap}

	renames := newRenameMap()

	err := RewriteReferences(doc, renames, nil)
	var dangling *oaserrors.DanglingReferenceError
	require.ErrorAs(t, err, &dangling)
	assert.Equal(t, "Ghost", dangling.Name)
}

func TestRewriteOperationRefUsesPathRenames(t *testing.T) {
	links := oasmodel.NewOrderedMap[*oasmodel.Link]()
	links.Set("GetPet", &oasmodel.Link{OperationRef: "#/paths/~1pets~1{id}/get"})
	responses := &oasmodel.Responses{Codes: oasmodel.NewOrderedMap[*oasmodel.Response]()}
	responses.Codes.Set("200", &oasmodel.Response{Links: links})
	pathMap := oasmodel.NewOrderedMap[*oasmodel.PathItem]()
	pathMap.Set("/api/pets/{id}", &oasmodel.PathItem{Get: &oasmodel.Operation{Responses: responses}})
	doc := &oasmodel.Document{Paths: pathMap}

	pathRenames := PathRenameMap{"/pets/{id}": "/api/pets/{id}"}

	require.NoError(t, RewriteReferences(doc, newRenameMap(), pathRenames))
	link, _ := links.Get("GetPet")
	assert.Equal(t, "#/paths/~1api~1pets~1{id}/get", link.OperationRef)
}
