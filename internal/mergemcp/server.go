// Package mergemcp implements an MCP (Model Context Protocol) server that
// exposes the merge engine as a single "merge" tool over stdio.
package mergemcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	openapimerge "github.com/erraggy/openapi-merge"
)

const serverInstructions = `openapi-merge MCP server — merges multiple OpenAPI 3.0 documents into one.

Configuration: OPENAPI_MERGE_MCP_HTTP_TIMEOUT (default: 30s) bounds URL-sourced
input fetches. OPENAPI_MERGE_MCP_MAX_INLINE_SIZE (default: 5MiB) caps inline
"content" spec input size.

Each input may be a file path, a URL, or inline content, plus optional
pathModification, operationSelection, description, and dispute directives.
Name collisions between non-identical components of different inputs fail
the merge unless a dispute policy is set on the later input; identical
same-name components are deduplicated.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or ctx is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "openapi-merge", Version: openapimerge.Version()},
		&mcp.ServerOptions{Instructions: serverInstructions},
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge",
		Description: "Merge two or more OpenAPI 3.0 documents into a single document. Inputs are provided inline, by file path, or by URL. Per-input path modification (strip/prepend), operation selection (tag include/exclude), description append, and dispute (rename-on-collision) directives are supported. Returns the merged document inline, or writes it to a file when output is set.",
	}, handleMerge)

	return server.Run(ctx, &mcp.StdioTransport{})
}
