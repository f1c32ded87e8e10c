// Package merge implements the Merger, Output Assembler, Description
// Joiner, and top-level driver: the orchestration that drives one document
// at a time through the Path Transformer, Component
// Namer, and Reference Rewriter, accumulating them into a single merged
// document and auditing its reference integrity at the end.
package merge

import (
	"fmt"
	"strings"

	"github.com/erraggy/openapi-merge/config"
	"github.com/erraggy/openapi-merge/document"
	"github.com/erraggy/openapi-merge/internal/ordered"
	"github.com/erraggy/openapi-merge/merrors"
	"github.com/erraggy/openapi-merge/namer"
	"github.com/erraggy/openapi-merge/pathtransform"
	"github.com/erraggy/openapi-merge/rewriter"
)

// Input pairs one parsed document with the input directives that govern
// how it is folded into the merge.
type Input struct {
	Document *document.Document
	Config   config.InputConfig
}

// Merge drives each input through the Path Transformer, Component Namer,
// and Reference Rewriter in configuration order and returns the assembled
// document, or the first error any stage raises. Merge is pure: it
// performs no I/O and owns no resource beyond its own arguments.
func Merge(cfg *config.Config, inputs []Input) (*document.Document, error) {
	out := document.New()

	for i, in := range inputs {
		doc := in.Document
		if !strings.HasPrefix(doc.OpenAPI, "3.0") {
			return nil, &merrors.UnsupportedVersionError{Input: fmt.Sprintf("input %d", i), Version: doc.OpenAPI}
		}
		if doc.Components == nil {
			doc.Components = document.NewComponents()
		}

		pathtransform.Apply(doc, pathtransform.Rules{
			StripPrefix: in.Config.PathModification.StripStart,
			PrependPath: in.Config.PathModification.Prepend,
			IncludeTags: in.Config.OperationSelection.IncludeTags,
			ExcludeTags: in.Config.OperationSelection.ExcludeTags,
		})

		renames, err := reconcileComponents(out, doc, i, in.Config)
		if err != nil {
			return nil, err
		}

		if err := rewriter.Rewrite(doc, renames); err != nil {
			return nil, err
		}

		if err := unionPaths(out, doc, i); err != nil {
			return nil, err
		}
		unionComponents(out, doc, renames)

		if i == 0 {
			out.OpenAPI = doc.OpenAPI
			out.Info = doc.Info
			out.Servers = doc.Servers
			out.Security = doc.Security
			out.ExternalDocs = doc.ExternalDocs
		}
		unionTags(out, doc)

		joinDescription(out, doc, in.Config.Description)
	}

	return assemble(out, cfg)
}

func policyFor(d *config.DisputeConfig) namer.Policy {
	if d == nil {
		return namer.Policy{}
	}
	return namer.Policy{Prefix: d.Prefix, Suffix: d.Suffix, AlwaysApply: d.AlwaysApply}
}

// reconcileComponents runs the Component Namer over every category, in
// the mandated processing order, and returns the combined per-category
// rename map for this input.
func reconcileComponents(out, in *document.Document, inputIndex int, ic config.InputConfig) (rewriter.RenameMap, error) {
	policy := policyFor(ic.Dispute)
	renames := make(rewriter.RenameMap)

	r, err := namer.Resolve(document.CategorySchemas, inputIndex, out.Components.Schemas, in.Components.Schemas, policy)
	if err != nil {
		return nil, err
	}
	renames[document.CategorySchemas] = r

	r, err = namer.Resolve(document.CategoryResponses, inputIndex, out.Components.Responses, in.Components.Responses, policy)
	if err != nil {
		return nil, err
	}
	renames[document.CategoryResponses] = r

	r, err = namer.Resolve(document.CategoryParameters, inputIndex, out.Components.Parameters, in.Components.Parameters, policy)
	if err != nil {
		return nil, err
	}
	renames[document.CategoryParameters] = r

	r, err = namer.Resolve(document.CategoryExamples, inputIndex, out.Components.Examples, in.Components.Examples, policy)
	if err != nil {
		return nil, err
	}
	renames[document.CategoryExamples] = r

	r, err = namer.Resolve(document.CategoryRequestBodies, inputIndex, out.Components.RequestBodies, in.Components.RequestBodies, policy)
	if err != nil {
		return nil, err
	}
	renames[document.CategoryRequestBodies] = r

	r, err = namer.Resolve(document.CategoryHeaders, inputIndex, out.Components.Headers, in.Components.Headers, policy)
	if err != nil {
		return nil, err
	}
	renames[document.CategoryHeaders] = r

	r, err = namer.Resolve(document.CategorySecuritySchemes, inputIndex, out.Components.SecuritySchemes, in.Components.SecuritySchemes, policy)
	if err != nil {
		return nil, err
	}
	renames[document.CategorySecuritySchemes] = r

	r, err = namer.Resolve(document.CategoryLinks, inputIndex, out.Components.Links, in.Components.Links, policy)
	if err != nil {
		return nil, err
	}
	renames[document.CategoryLinks] = r

	r, err = namer.Resolve(document.CategoryCallbacks, inputIndex, out.Components.Callbacks, in.Components.Callbacks, policy)
	if err != nil {
		return nil, err
	}
	renames[document.CategoryCallbacks] = r

	return renames, nil
}

func unionPaths(out, in *document.Document, inputIndex int) error {
	if in.Paths == nil {
		return nil
	}
	for _, path := range in.Paths.Keys() {
		if out.Paths.Has(path) {
			return &merrors.PathConflictError{Path: path, InputIndex: inputIndex}
		}
		item, _ := in.Paths.Get(path)
		out.Paths.Set(path, item)
	}
	return nil
}

// unionComponents inserts every surviving definition from in's components
// into out, under its final (possibly renamed) name. Deduped definitions
// (no rename entry, name already present in out) are skipped.
func unionComponents(out, in *document.Document, renames rewriter.RenameMap) {
	insertCategory(out.Components.Schemas, in.Components.Schemas, renames[document.CategorySchemas])
	insertCategory(out.Components.Responses, in.Components.Responses, renames[document.CategoryResponses])
	insertCategory(out.Components.Parameters, in.Components.Parameters, renames[document.CategoryParameters])
	insertCategory(out.Components.Examples, in.Components.Examples, renames[document.CategoryExamples])
	insertCategory(out.Components.RequestBodies, in.Components.RequestBodies, renames[document.CategoryRequestBodies])
	insertCategory(out.Components.Headers, in.Components.Headers, renames[document.CategoryHeaders])
	insertCategory(out.Components.SecuritySchemes, in.Components.SecuritySchemes, renames[document.CategorySecuritySchemes])
	insertCategory(out.Components.Links, in.Components.Links, renames[document.CategoryLinks])
	insertCategory(out.Components.Callbacks, in.Components.Callbacks, renames[document.CategoryCallbacks])
}

func insertCategory[V any](out, in *ordered.Map[V], renamed map[string]string) {
	if in == nil {
		return
	}
	for _, name := range in.Keys() {
		final := name
		if newName, ok := renamed[name]; ok {
			final = newName
		} else if out.Has(name) {
			continue // deduped: identical definition already present under this name
		}
		val, _ := in.Get(name)
		out.Set(final, val)
	}
}

func unionTags(out, in *document.Document) {
	seen := make(map[string]bool, len(out.Tags))
	for _, t := range out.Tags {
		seen[t.Name] = true
	}
	for _, t := range in.Tags {
		if !seen[t.Name] {
			out.Tags = append(out.Tags, t)
			seen[t.Name] = true
		}
	}
}

// joinDescription appends one input's description onto the merged
// document's, when that input is configured to.
func joinDescription(out, in *document.Document, dc config.DescriptionConfig) {
	if !dc.Append {
		return
	}
	section := in.Info.Description
	if dc.Title != "" {
		section = "# " + dc.Title + "\n\n" + section
	}
	if out.Info.Description == "" {
		out.Info.Description = section
		return
	}
	out.Info.Description = out.Info.Description + "\n\n" + section
}

/// assemble finalizes the openapi version on the merged document and runs
// the final reference-integrity pass.
func assemble(out *document.Document, cfg *config.Config) (*document.Document, error) {
	if cfg.OpenAPIVersion != "" {
		out.OpenAPI = cfg.OpenAPIVersion
	}
	if !strings.HasPrefix(out.OpenAPI, "3.0") {
		return nil, &merrors.UnsupportedVersionError{Input: "output", Version: out.OpenAPI}
	}

	if err := checkIntegrity(out); err != nil {
		return nil, err
	}
	return out, nil
}
