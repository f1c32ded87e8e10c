// Package rewriter implements the Reference Rewriter: given one document
// and the per-category rename maps the Namer produced for it, rewrite
// every reference site the Reference Index finds so it points at the
// name the component will actually carry in the merged output.
//
// Every one of the nine component categories can be renamed, so every
// site the Reference Index visits is a rewrite candidate, not just
// schema refs.
package rewriter

import (
	"github.com/erraggy/openapi-merge/document"
	"github.com/erraggy/openapi-merge/internal/refindex"
	"github.com/erraggy/openapi-merge/merrors"
)

// RenameMap is the Namer's output for one input: the old -> new name
// recorded per category for definitions that needed disambiguation. A
// category or name absent from the map means the definition was adopted or
// deduped under its original name.
type RenameMap map[document.Category]map[string]string

// Rewrite mutates doc in place, replacing every reference string the
// Reference Index visits with its renamed form. doc must be the same
// document the rename maps were computed against (path-transformed, not
// yet merged into the accumulating output).
func Rewrite(doc *document.Document, renames RenameMap) error {
	for _, s := range refindex.Walk(doc) {
		ref := s.Get()
		if ref == "" {
			continue
		}

		if cat, name, ok := document.ParseRef(ref); ok {
			if newName, renamed := renames[cat][name]; renamed {
				s.Set(document.BuildRef(cat, newName))
				continue
			}
			if !hasDefinition(doc, cat, name) {
				return &merrors.DanglingReferenceError{Category: cat.String(), Name: name}
			}
			continue
		}

		if s.BareAllowed {
			if newName, renamed := renames[s.BareCategory][ref]; renamed {
				s.Set(newName)
			}
		}
	}
	return nil
}

func hasDefinition(doc *document.Document, cat document.Category, name string) bool {
	if doc.Components == nil {
		return false
	}
	switch cat {
	case document.CategorySchemas:
		return doc.Components.Schemas != nil && doc.Components.Schemas.Has(name)
	case document.CategoryResponses:
		return doc.Components.Responses != nil && doc.Components.Responses.Has(name)
	case document.CategoryParameters:
		return doc.Components.Parameters != nil && doc.Components.Parameters.Has(name)
	case document.CategoryExamples:
		return doc.Components.Examples != nil && doc.Components.Examples.Has(name)
	case document.CategoryRequestBodies:
		return doc.Components.RequestBodies != nil && doc.Components.RequestBodies.Has(name)
	case document.CategoryHeaders:
		return doc.Components.Headers != nil && doc.Components.Headers.Has(name)
	case document.CategorySecuritySchemes:
		return doc.Components.SecuritySchemes != nil && doc.Components.SecuritySchemes.Has(name)
	case document.CategoryLinks:
		return doc.Components.Links != nil && doc.Components.Links.Has(name)
	case document.CategoryCallbacks:
		return doc.Components.Callbacks != nil && doc.Components.Callbacks.Has(name)
	default:
		return false
	}
}
