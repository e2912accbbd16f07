package mergemcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	json "github.com/segmentio/encoding/json"
	yaml "go.yaml.in/yaml/v4"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/openapi-merge/internal/pathutil"
	"github.com/erraggy/openapi-merge/merge"
	"github.com/erraggy/openapi-merge/mergeconfig"
	"github.com/erraggy/openapi-merge/mergelog"
	"github.com/erraggy/openapi-merge/oasmodel"
)

type mergeInputItem struct {
	specInput
	PathModification   *mergeconfig.PathModification   `json:"pathModification,omitempty"   jsonschema:"Strip a path prefix and/or prepend a new one"`
	OperationSelection *mergeconfig.OperationSelection `json:"operationSelection,omitempty" jsonschema:"Keep only operations matching includeTags, or drop operations matching excludeTags"`
	Description        *mergeconfig.DescriptionConfig  `json:"description,omitempty"        jsonschema:"Append this input's info.description onto the merged document's, optionally under a markdown title"`
	Dispute            *mergeconfig.DisputeConfig      `json:"dispute,omitempty"            jsonschema:"Rename strategy (prefix/suffix) to resolve component name collisions with earlier inputs"`
}

type mergeToolInput struct {
	Inputs         []mergeInputItem `json:"inputs"                   jsonschema:"OAS 3.0 documents to merge, in order (minimum 2)"`
	OpenAPIVersion string           `json:"openapiVersion,omitempty" jsonschema:"openapi version for the merged document; defaults to the first input's version"`
	Output         string           `json:"output,omitempty"         jsonschema:"File path to write the merged document to. If omitted, the document is returned inline."`
}

type mergeToolOutput struct {
	InputCount  int    `json:"input_count"`
	Version     string `json:"version"`
	PathCount   int    `json:"path_count"`
	SchemaCount int    `json:"schema_count"`
	WrittenTo   string `json:"written_to,omitempty"`
	Document    string `json:"document,omitempty"`
	Summary     string `json:"summary"`
}

func handleMerge(_ context.Context, _ *mcp.CallToolRequest, input mergeToolInput) (*mcp.CallToolResult, mergeToolOutput, error) {
	if len(input.Inputs) < 2 {
		return errResult(fmt.Errorf("at least 2 inputs are required for merging, got %d", len(input.Inputs))), mergeToolOutput{}, nil
	}

	logger := mergelog.NopLogger{}

	docs := make([]*oasmodel.Document, len(input.Inputs))
	cfgInputs := make([]mergeconfig.InputConfig, len(input.Inputs))
	for i, item := range input.Inputs {
		doc, err := item.specInput.resolve(i, logger)
		if err != nil {
			return errResult(fmt.Errorf("inputs[%d]: %w", i, err)), mergeToolOutput{}, nil
		}
		docs[i] = doc
		cfgInputs[i] = mergeconfig.InputConfig{
			PathModification:   item.PathModification,
			OperationSelection: item.OperationSelection,
			Description:        item.Description,
			Dispute:            item.Dispute,
		}
	}

	cfg := &mergeconfig.Config{
		Inputs:         cfgInputs,
		OpenAPIVersion: input.OpenAPIVersion,
		Output:         input.Output,
	}

	merged, err := merge.Merge(cfg, docs, logger)
	if err != nil {
		return errResult(err), mergeToolOutput{}, nil
	}

	output := mergeToolOutput{
		InputCount:  len(input.Inputs),
		Version:     merged.OpenAPI,
		PathCount:   merged.Paths.Len(),
		SchemaCount: schemaCount(merged),
	}
	output.Summary = buildMergeSummary(output)

	data, err := marshalForPath(merged, input.Output)
	if err != nil {
		return errResult(err), mergeToolOutput{}, nil
	}

	if input.Output != "" {
		safePath, err := pathutil.SanitizeOutputPath(input.Output)
		if err != nil {
			return errResult(fmt.Errorf("invalid output path: %w", err)), mergeToolOutput{}, nil
		}
		if err := os.WriteFile(safePath, data, 0o600); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), mergeToolOutput{}, nil
		}
		output.WrittenTo = safePath
	} else {
		output.Document = string(data)
	}

	return nil, output, nil
}

func schemaCount(doc *oasmodel.Document) int {
	if doc.Components == nil || doc.Components.Schemas == nil {
		return 0
	}
	return doc.Components.Schemas.Len()
}

func marshalForPath(doc *oasmodel.Document, path string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Marshal(doc)
	default:
		return json.MarshalIndent(doc, "", "  ")
	}
}

func buildMergeSummary(output mergeToolOutput) string {
	summary := "Merged " + strconv.Itoa(output.InputCount) + " inputs into " + output.Version + " document"
	summary += " with " + formatCount(output.PathCount, "path")
	summary += " and " + formatCount(output.SchemaCount, "schema") + "."
	return summary
}

func formatCount(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
