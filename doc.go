// Package openapimerge provides build metadata (Version, UserAgent) shared
// by the openapi-merge binaries. The merge engine itself lives in merge,
// mergeconfig, mergeio, mergelog, and oaserrors.
//
// # Overview
//
//   - oasmodel: OAS 3.0 document model
//   - mergeconfig: merge configuration loading and validation
//   - mergeio: input resolution (file/URL, YAML/JSON) into oasmodel.Document
//   - merge: the merge engine (path transform, component naming, reference
//     rewriting, merging, assembly, description joining)
//   - mergelog: structured logging interface used throughout
//   - oaserrors: the engine's fatal-error taxonomy and process exit codes
//
// # Quick Start
//
//	cfg, err := mergeconfig.Load(configBytes)
//	if err != nil {
//		log.Fatal(err)
//	}
//	inputs := make([]*oasmodel.Document, len(cfg.Inputs))
//	for i, in := range cfg.Inputs {
//		doc, err := mergeio.Load(i, in)
//		if err != nil {
//			log.Fatal(err)
//		}
//		inputs[i] = doc
//	}
//	merged, err := merge.Merge(cfg, inputs, nil)
//	if err != nil {
//		os.Exit(oaserrors.ExitCode(err))
//	}
//
// See cmd/openapi-merge for the CLI that wires this together, and
// cmd/openapi-merge-mcp for an MCP server exposing the same engine as a
// single "merge" tool over stdio.
package openapimerge
