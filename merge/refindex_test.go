package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/openapi-merge/oasmodel"
)

func TestIndexVisitsEveryRefSite(t *testing.T) {
	petSchema := &oasmodel.Schema{Ref: "#/components/schemas/Pet"}
	errSchema := &oasmodel.Schema{Ref: "#/components/schemas/Error"}

	content := oasmodel.NewOrderedMap[*oasmodel.MediaType]()
	content.Set("application/json", &oasmodel.MediaType{Schema: petSchema})

	responses := &oasmodel.Responses{Codes: oasmodel.NewOrderedMap[*oasmodel.Response]()}
	responses.Codes.Set("200", &oasmodel.Response{Content: content})
	responses.Default = &oasmodel.Response{Content: content}

	op := &oasmodel.Operation{
		Parameters: []*oasmodel.Parameter{{Ref: "#/components/parameters/Limit"}},
		Responses:  responses,
	}

	pathMap := oasmodel.NewOrderedMap[*oasmodel.PathItem]()
	pathMap.Set("/pets", &oasmodel.PathItem{Get: op})

	components := &oasmodel.Components{
		Schemas: oasmodel.NewOrderedMap[*oasmodel.Schema](),
	}
	components.Schemas.Set("Pet", &oasmodel.Schema{
		Properties: func() *oasmodel.OrderedMap[*oasmodel.Schema] {
			m := oasmodel.NewOrderedMap[*oasmodel.Schema]()
			m.Set("error", errSchema)
			return m
		}(),
	})

	doc := &oasmodel.Document{Paths: pathMap, Components: components}

	sites := Index(doc)
	var refs []string
	for _, s := range sites {
		refs = append(refs, *s.Ptr)
	}

	assert.Contains(t, refs, "#/components/parameters/Limit")
	assert.Contains(t, refs, "#/components/schemas/Pet")
	assert.Contains(t, refs, "#/components/schemas/Error")
}

func TestIndexVisitsAdditionalPropertiesSchema(t *testing.T) {
	mapSchema := &oasmodel.Schema{
		Type:                 "object",
		AdditionalProperties: &oasmodel.Schema{Ref: "#/components/schemas/Extension"},
	}

	components := &oasmodel.Components{Schemas: oasmodel.NewOrderedMap[*oasmodel.Schema]()}
	components.Schemas.Set("Dict", mapSchema)

	doc := &oasmodel.Document{Paths: oasmodel.NewOrderedMap[*oasmodel.PathItem](), Components: components}

	sites := Index(doc)
	require.Len(t, sites, 1)
	assert.Equal(t, "#/components/schemas/Extension", *sites[0].Ptr)
}

func TestIndexIgnoresBooleanAdditionalProperties(t *testing.T) {
	boolSchema := &oasmodel.Schema{Type: "object", AdditionalProperties: false}

	components := &oasmodel.Components{Schemas: oasmodel.NewOrderedMap[*oasmodel.Schema]()}
	components.Schemas.Set("Closed", boolSchema)

	doc := &oasmodel.Document{Paths: oasmodel.NewOrderedMap[*oasmodel.PathItem](), Components: components}

	assert.Empty(t, Index(doc))
}

func TestRefSiteMutatesInPlace(t *testing.T) {
	schema := &oasmodel.Schema{Ref: "#/components/schemas/Old"}
	pathMap := oasmodel.NewOrderedMap[*oasmodel.PathItem]()
	content := oasmodel.NewOrderedMap[*oasmodel.MediaType]()
	content.Set("application/json", &oasmodel.MediaType{Schema: schema})
	pathMap.Set("/x", &oasmodel.PathItem{
		Get: &oasmodel.Operation{
			RequestBody: &oasmodel.RequestBody{Content: content},
			Responses:   &oasmodel.Responses{Codes: oasmodel.NewOrderedMap[*oasmodel.Response]()},
		},
	})
	doc := &oasmodel.Document{Paths: pathMap}

	sites := Index(doc)
	require.Len(t, sites, 1)
	*sites[0].Ptr = "#/components/schemas/New"

	assert.Equal(t, "#/components/schemas/New", schema.Ref)
}
