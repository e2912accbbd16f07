package mergemcp

import (
	"fmt"
	"net/http"
	"strings"

	yaml "go.yaml.in/yaml/v4"

	"github.com/erraggy/openapi-merge/mergeconfig"
	"github.com/erraggy/openapi-merge/mergelog"
	"github.com/erraggy/openapi-merge/mergeio"
	"github.com/erraggy/openapi-merge/oasmodel"
	"github.com/erraggy/openapi-merge/oaserrors"
)

// specInput represents the three ways a single OAS document can be provided
// to the merge tool. Exactly one of File, URL, or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OAS 3.0 document on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch an OAS 3.0 document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline OAS 3.0 document content (YAML or JSON)"`
}

// resolve parses the spec from whichever input was provided, using mergeio
// for file/URL sources and a direct decode for inline content.
func (s specInput) resolve(index int, logger mergelog.Logger) (*oasmodel.Document, error) {
	count := 0
	if s.File != "" {
		count++
	}
	if s.URL != "" {
		count++
	}
	if s.Content != "" {
		count++
	}
	if count != 1 {
		return nil, &oaserrors.ConfigInvalidError{
			Message: fmt.Sprintf("inputs[%d]: exactly one of file, url, or content must be provided (got %d)", index, count),
		}
	}

	if s.Content != "" {
		if int64(len(s.Content)) > cfg.MaxInlineSize {
			return nil, &oaserrors.ConfigInvalidError{
				Message: fmt.Sprintf("inputs[%d]: inline content size %d bytes exceeds maximum %d bytes", index, len(s.Content), cfg.MaxInlineSize),
			}
		}
		return decodeInline(index, s.Content)
	}

	client := &http.Client{Timeout: cfg.HTTPTimeout}
	in := mergeconfig.InputConfig{InputFile: s.File, InputURL: s.URL}
	return mergeio.Load(index, in, mergeio.WithHTTPClient(client), mergeio.WithLogger(logger))
}

// decodeInline decodes inline spec content the way mergeio decodes
// file/URL sources: YAML 1.2 is a superset of JSON, so one decoder path
// handles both.
func decodeInline(index int, content string) (*oasmodel.Document, error) {
	var doc oasmodel.Document
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return nil, &oaserrors.InputUnparseableError{InputIndex: index, Source: "<inline>", Cause: err}
	}
	if !strings.HasPrefix(doc.OpenAPI, "3.0.") {
		return nil, &oaserrors.UnsupportedVersionError{Version: doc.OpenAPI}
	}
	return &doc, nil
}
