package document

import "strings"

// Category is one of the nine OpenAPI 3.0 component categories, treated as a
// closed enumeration so the Namer and Rewriter can switch over it exhaustively
// rather than keying maps of maps by string.
type Category int

const (
	CategorySchemas Category = iota
	CategoryResponses
	CategoryParameters
	CategoryExamples
	CategoryRequestBodies
	CategoryHeaders
	CategorySecuritySchemes
	CategoryLinks
	CategoryCallbacks

	categoryCount
)

// Categories lists every category in the order the Namer and Reference
// Rewriter must process them: schemas, responses, parameters, examples,
// requestBodies, headers, securitySchemes, links, callbacks.
var Categories = [categoryCount]Category{
	CategorySchemas,
	CategoryResponses,
	CategoryParameters,
	CategoryExamples,
	CategoryRequestBodies,
	CategoryHeaders,
	CategorySecuritySchemes,
	CategoryLinks,
	CategoryCallbacks,
}

var categoryNames = [categoryCount]string{
	"schemas",
	"responses",
	"parameters",
	"examples",
	"requestBodies",
	"headers",
	"securitySchemes",
	"links",
	"callbacks",
}

// String returns the component category segment used in a reference string,
// e.g. "schemas" for CategorySchemas.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// Prefix returns the full "#/components/<category>/" prefix for c.
func (c Category) Prefix() string {
	return "#/components/" + c.String() + "/"
}

const refRoot = "#/components/"

// ParseRef splits a reference string of the form "#/components/<category>/<name>"
// into its category and name. It reports ok=false for external references or
// any string that does not match the internal-reference shape exactly.
func ParseRef(ref string) (cat Category, name string, ok bool) {
	if !strings.HasPrefix(ref, refRoot) {
		return 0, "", false
	}
	rest := ref[len(refRoot):]
	slash := strings.IndexByte(rest, '/')
	if slash < 0 {
		return 0, "", false
	}
	segment, n := rest[:slash], rest[slash+1:]
	if n == "" {
		return 0, "", false
	}
	for _, c := range Categories {
		if categoryNames[c] == segment {
			return c, n, true
		}
	}
	return 0, "", false
}

// BuildRef constructs "#/components/<category>/<name>".
func BuildRef(cat Category, name string) string {
	return cat.Prefix() + name
}
