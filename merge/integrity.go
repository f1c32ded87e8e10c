package merge

import (
	"github.com/erraggy/openapi-merge/document"
	"github.com/erraggy/openapi-merge/internal/refindex"
	"github.com/erraggy/openapi-merge/merrors"
)

// checkIntegrity is the Output Assembler's final pass: every
// "#/components/<cat>/<name>" reference in the fully merged document must
// resolve against that category's map. Anything else — an empty ref, a
// bare discriminator mapping name that was never a full reference, an
// external URL — is out of scope for this pass.
func checkIntegrity(doc *document.Document) error {
	for _, s := range refindex.Walk(doc) {
		ref := s.Get()
		if ref == "" {
			continue
		}
		cat, name, ok := document.ParseRef(ref)
		if !ok {
			continue
		}
		if !hasDefinition(doc, cat, name) {
			return &merrors.IntegrityFailureError{Reference: ref}
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
