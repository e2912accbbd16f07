package merge

import (
	"maps"
	"slices"

	"github.com/erraggy/openapi-merge/oasmodel"
)

// RefSite is a mutable handle to one $ref field found by Index. Reading or
// writing through Ptr reads or writes the document in place.
type RefSite struct {
	Ptr *string
}

// Index enumerates, in a fixed stable order, every $ref field in doc:
// PathItems and their operations (parameters, requestBody, responses,
// callbacks, and the schemas reachable from each), then every component
// category in the fixed order schemas, responses, parameters, examples,
// requestBodies, headers, securitySchemes, links, callbacks. The order is
// stable for a given document shape; it is never relied on for semantics
// beyond visiting every site exactly once.
//
// Link.OperationRef is not indexed here: its "#/paths/<path>" shape is a
// different reference space, rewritten separately (§7 of the full
// specification).
func Index(doc *oasmodel.Document) []*RefSite {
	var sites []*RefSite
	if doc == nil {
		return sites
	}
	if doc.Paths != nil {
		for _, path := range doc.Paths.Keys() {
			item, _ := doc.Paths.Get(path)
			sites = append(sites, indexPathItem(item)...)
		}
	}
	if doc.Components != nil {
		sites = append(sites, indexComponents(doc.Components)...)
	}
	return sites
}

func ref(s *string) *RefSite {
	if s == nil {
		return nil
	}
	return &RefSite{Ptr: s}
}

func indexPathItem(item *oasmodel.PathItem) []*RefSite {
	if item == nil {
		return nil
	}
	var sites []*RefSite
	if item.Ref != "" {
		sites = append(sites, ref(&item.Ref))
	}
	for _, p := range item.Parameters {
		sites = append(sites, indexParameter(p)...)
	}
	for _, op := range []*oasmodel.Operation{
		item.Get, item.Put, item.Post, item.Delete,
		item.Options, item.Head, item.Patch, item.Trace,
	} {
		sites = append(sites, indexOperation(op)...)
	}
	return sites
}

func indexOperation(op *oasmodel.Operation) []*RefSite {
	if op == nil {
		return nil
	}
	var sites []*RefSite
	for _, p := range op.Parameters {
		sites = append(sites, indexParameter(p)...)
	}
	sites = append(sites, indexRequestBody(op.RequestBody)...)
	sites = append(sites, indexResponses(op.Responses)...)
	if op.Callbacks != nil {
		op.Callbacks.Range(func(_ string, cb *oasmodel.Callback) bool {
			sites = append(sites, indexCallback(cb)...)
			return true
		})
	}
	return sites
}

func indexCallback(cb *oasmodel.Callback) []*RefSite {
	if cb == nil {
		return nil
	}
	if cb.Ref != "" {
		return []*RefSite{ref(&cb.Ref)}
	}
	var sites []*RefSite
	if cb.Items != nil {
		cb.Items.Range(func(_ string, item *oasmodel.PathItem) bool {
			sites = append(sites, indexPathItem(item)...)
			return true
		})
	}
	return sites
}

func indexParameter(p *oasmodel.Parameter) []*RefSite {
	if p == nil {
		return nil
	}
	if p.Ref != "" {
		return []*RefSite{ref(&p.Ref)}
	}
	var sites []*RefSite
	sites = append(sites, indexSchema(p.Schema)...)
	if p.Examples != nil {
		p.Examples.Range(func(_ string, ex *oasmodel.Example) bool {
			sites = append(sites, indexExample(ex)...)
			return true
		})
	}
	sites = append(sites, indexContent(p.Content)...)
	return sites
}

func indexRequestBody(rb *oasmodel.RequestBody) []*RefSite {
	if rb == nil {
		return nil
	}
	if rb.Ref != "" {
		return []*RefSite{ref(&rb.Ref)}
	}
	return indexContent(rb.Content)
}

func indexResponses(responses *oasmodel.Responses) []*RefSite {
	if responses == nil {
		return nil
	}
	var sites []*RefSite
	sites = append(sites, indexResponse(responses.Default)...)
	if responses.Codes != nil {
		responses.Codes.Range(func(_ string, resp *oasmodel.Response) bool {
			sites = append(sites, indexResponse(resp)...)
			return true
		})
	}
	return sites
}

func indexResponse(resp *oasmodel.Response) []*RefSite {
	if resp == nil {
		return nil
	}
	if resp.Ref != "" {
		return []*RefSite{ref(&resp.Ref)}
	}
	var sites []*RefSite
	if resp.Headers != nil {
		resp.Headers.Range(func(_ string, h *oasmodel.Header) bool {
			sites = append(sites, indexHeader(h)...)
			return true
		})
	}
	sites = append(sites, indexContent(resp.Content)...)
	if resp.Links != nil {
		resp.Links.Range(func(_ string, l *oasmodel.Link) bool {
			sites = append(sites, indexLink(l)...)
			return true
		})
	}
	return sites
}

func indexHeader(h *oasmodel.Header) []*RefSite {
	if h == nil {
		return nil
	}
	if h.Ref != "" {
		return []*RefSite{ref(&h.Ref)}
	}
	var sites []*RefSite
	sites = append(sites, indexSchema(h.Schema)...)
	if h.Examples != nil {
		h.Examples.Range(func(_ string, ex *oasmodel.Example) bool {
			sites = append(sites, indexExample(ex)...)
			return true
		})
	}
	sites = append(sites, indexContent(h.Content)...)
	return sites
}

func indexExample(ex *oasmodel.Example) []*RefSite {
	if ex == nil || ex.Ref == "" {
		return nil
	}
	return []*RefSite{ref(&ex.Ref)}
}

func indexLink(l *oasmodel.Link) []*RefSite {
	if l == nil || l.Ref == "" {
		return nil
	}
	return []*RefSite{ref(&l.Ref)}
}

func indexContent(content *oasmodel.OrderedMap[*oasmodel.MediaType]) []*RefSite {
	if content == nil {
		return nil
	}
	var sites []*RefSite
	content.Range(func(_ string, mt *oasmodel.MediaType) bool {
		sites = append(sites, indexMediaType(mt)...)
		return true
	})
	return sites
}

func indexMediaType(mt *oasmodel.MediaType) []*RefSite {
	if mt == nil {
		return nil
	}
	var sites []*RefSite
	sites = append(sites, indexSchema(mt.Schema)...)
	if mt.Examples != nil {
		mt.Examples.Range(func(_ string, ex *oasmodel.Example) bool {
			sites = append(sites, indexExample(ex)...)
			return true
		})
	}
	for _, encName := range slices.Sorted(maps.Keys(mt.Encoding)) {
		enc := mt.Encoding[encName]
		for _, hName := range slices.Sorted(maps.Keys(enc.Headers)) {
			sites = append(sites, indexHeader(enc.Headers[hName])...)
		}
	}
	return sites
}

func indexSchema(s *oasmodel.Schema) []*RefSite {
	if s == nil {
		return nil
	}
	if s.Ref != "" {
		return []*RefSite{ref(&s.Ref)}
	}
	var sites []*RefSite
	if s.Properties != nil {
		s.Properties.Range(func(_ string, prop *oasmodel.Schema) bool {
			sites = append(sites, indexSchema(prop)...)
			return true
		})
	}
	if s.PatternProperties != nil {
		s.PatternProperties.Range(func(_ string, prop *oasmodel.Schema) bool {
			sites = append(sites, indexSchema(prop)...)
			return true
		})
	}
	if additional, ok := s.AdditionalProperties.(*oasmodel.Schema); ok {
		sites = append(sites, indexSchema(additional)...)
	}
	sites = append(sites, indexSchema(s.Items)...)
	for _, sub := range s.AllOf {
		sites = append(sites, indexSchema(sub)...)
	}
	for _, sub := range s.AnyOf {
		sites = append(sites, indexSchema(sub)...)
	}
	for _, sub := range s.OneOf {
		sites = append(sites, indexSchema(sub)...)
	}
	sites = append(sites, indexSchema(s.Not)...)
	return sites
}

func indexComponents(c *oasmodel.Components) []*RefSite {
	if c == nil {
		return nil
	}
	var sites []*RefSite
	if c.Schemas != nil {
		c.Schemas.Range(func(_ string, s *oasmodel.Schema) bool {
			sites = append(sites, indexSchema(s)...)
			return true
		})
	}
	if c.Responses != nil {
		c.Responses.Range(func(_ string, r *oasmodel.Response) bool {
			sites = append(sites, indexResponse(r)...)
			return true
		})
	}
	if c.Parameters != nil {
		c.Parameters.Range(func(_ string, p *oasmodel.Parameter) bool {
			sites = append(sites, indexParameter(p)...)
			return true
		})
	}
	if c.Examples != nil {
		c.Examples.Range(func(_ string, e *oasmodel.Example) bool {
			sites = append(sites, indexExample(e)...)
			return true
		})
	}
	if c.RequestBodies != nil {
		c.RequestBodies.Range(func(_ string, rb *oasmodel.RequestBody) bool {
			sites = append(sites, indexRequestBody(rb)...)
			return true
		})
	}
	if c.Headers != nil {
		c.Headers.Range(func(_ string, h *oasmodel.Header) bool {
			sites = append(sites, indexHeader(h)...)
			return true
		})
	}
	// SecuritySchemes have no nested $ref-bearing fields beyond their own Ref.
	if c.SecuritySchemes != nil {
		c.SecuritySchemes.Range(func(_ string, s *oasmodel.SecurityScheme) bool {
			if s != nil && s.Ref != "" {
				sites = append(sites, ref(&s.Ref))
			}
			return true
		})
	}
	if c.Links != nil {
		c.Links.Range(func(_ string, l *oasmodel.Link) bool {
			sites = append(sites, indexLink(l)...)
			return true
		})
	}
	if c.Callbacks != nil {
		c.Callbacks.Range(func(_ string, cb *oasmodel.Callback) bool {
			sites = append(sites, indexCallback(cb)...)
			return true
		})
	}
	return sites
}
