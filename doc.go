// Package openapimerge merges an ordered list of parsed OpenAPI 3.0
// documents, plus per-input directives, into one internally consistent
// OpenAPI 3.0 document.
//
// # Overview
//
// The merge is a pipeline of small, single-purpose stages:
//
//   - config: decodes and validates the merge configuration document
//   - internal/loader: reads each configured input (file or URL) and
//     decodes it into a document.Document
//   - pathtransform: applies per-input path prefix/strip and tag-based
//     operation filtering
//   - namer: decides, per component category, whether an input's
//     definition can be adopted unchanged, deduped against an existing
//     equal definition, or must be renamed under the input's dispute
//     policy
//   - rewriter: applies the namer's rename map across every internal
//     $ref and discriminator mapping in an input document
//   - merge: orchestrates the above per input, in order, and assembles
//     the final document
//
// # Quick Start
//
//	cfg, err := config.Load("openapi-merge.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	docs, err := loader.LoadAll(context.Background(), cfg.Inputs)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	inputs := make([]merge.Input, len(docs))
//	for i, doc := range docs {
//		inputs[i] = merge.Input{Document: doc, Config: cfg.Inputs[i]}
//	}
//
//	merged, err := merge.Merge(cfg, inputs)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Command-Line Interface
//
// The cmd/openapi-merge binary drives this pipeline end to end:
//
//	openapi-merge --config openapi-merge.json
//
// # Error Handling
//
// Every failure mode the merge can hit is one of the nine structured
// error types in package merrors, checkable with errors.As: a path
// collision, a dispute an input's rename policy could not resolve, a
// dangling reference, an unsupported openapi version, and so on.
//
// # Limitations
//
//   - Only OpenAPI 3.0.x inputs are accepted; 2.0 and 3.1 are rejected.
//   - References to definitions outside the document being merged are
//     not resolved.
//   - Component name collisions are only reconciled by an input's
//     configured rename policy, never by comparing security scheme
//     semantics.
package openapimerge
