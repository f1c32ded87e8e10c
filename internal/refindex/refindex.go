// Package refindex walks a parsed document and produces a stable,
// mutating index of every site at which a component reference string may
// appear. The walk itself does not interpret or rewrite anything — it
// only hands back get/set closures over each site so the Namer's lookups
// and the Reference Rewriter's mutations share one traversal instead of
// each re-implementing it.
//
// The traversal covers request bodies, responses and their headers,
// parameters, callbacks recursing into nested path items, and schema
// trees — every site a component reference can occupy, not just schemas.
package refindex

import (
	"sort"

	"github.com/erraggy/openapi-merge/document"
)

// Site is one mutable reference location. Get/Set read and write the
// underlying string in place; an empty Get() means no reference is set at
// this site (common for inline, non-Ref definitions) and is always a no-op
// for callers.
type Site struct {
	Get func() string
	Set func(string)

	// BareAllowed marks a site whose value may be a bare component name
	// instead of a full "#/components/<cat>/<name>" reference —
	// discriminator.mapping shorthand is the only such site. BareCategory
	// names the category a bare value belongs to.
	BareAllowed  bool
	BareCategory document.Category
}

func site(get func() string, set func(string)) Site {
	return Site{Get: get, Set: set}
}

// Walk returns every reference site in doc, in a stable, deterministic
// order: paths in the document's insertion order, operations in fixed
// method order, and any Go map keyed by string (headers, content types,
// callbacks, examples) sorted lexically since Go maps carry no order of
// their own.
func Walk(doc *document.Document) []Site {
	var sites []Site
	if doc == nil {
		return sites
	}
	if doc.Paths != nil {
		for _, path := range doc.Paths.Keys() {
			item, _ := doc.Paths.Get(path)
			sites = append(sites, walkPathItem(item)...)
		}
	}
	if doc.Components != nil {
		sites = append(sites, walkComponents(doc.Components)...)
	}
	return sites
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func walkComponents(c *document.Components) []Site {
	var sites []Site
	if c.Schemas != nil {
		for _, name := range c.Schemas.Keys() {
			s, _ := c.Schemas.Get(name)
			sites = append(sites, walkSchema(s)...)
		}
	}
	if c.Responses != nil {
		for _, name := range c.Responses.Keys() {
			r, _ := c.Responses.Get(name)
			sites = append(sites, walkResponse(r)...)
		}
	}
	if c.Parameters != nil {
		for _, name := range c.Parameters.Keys() {
			p, _ := c.Parameters.Get(name)
			sites = append(sites, walkParameter(p)...)
		}
	}
	if c.Examples != nil {
		for _, name := range c.Examples.Keys() {
			e, _ := c.Examples.Get(name)
			sites = append(sites, walkExample(e)...)
		}
	}
	if c.RequestBodies != nil {
		for _, name := range c.RequestBodies.Keys() {
			rb, _ := c.RequestBodies.Get(name)
			sites = append(sites, walkRequestBody(rb)...)
		}
	}
	if c.Headers != nil {
		for _, name := range c.Headers.Keys() {
			h, _ := c.Headers.Get(name)
			sites = append(sites, walkHeader(h)...)
		}
	}
	if c.Links != nil {
		for _, name := range c.Links.Keys() {
			l, _ := c.Links.Get(name)
			sites = append(sites, walkLink(l)...)
		}
	}
	if c.Callbacks != nil {
		for _, name := range c.Callbacks.Keys() {
			cb, _ := c.Callbacks.Get(name)
			sites = append(sites, walkCallback(cb)...)
		}
	}
	// SecuritySchemes have no nested Ref-bearing fields beyond their own
	// (handled as top-level component entries, not via this walk — callers
	// reference a security scheme only by name in a SecurityRequirement
	// map, which has no $ref shape to rewrite).
	return sites
}

func walkPathItem(item *document.PathItem) []Site {
	if item == nil {
		return nil
	}
	sites := []Site{site(func() string { return item.Ref }, func(v string) { item.Ref = v })}
	for i := range item.Parameters {
		sites = append(sites, walkParameter(&item.Parameters[i])...)
	}
	for _, mo := range item.Operations() {
		sites = append(sites, walkOperation(mo.Operation)...)
	}
	return sites
}

func walkOperation(op *document.Operation) []Site {
	if op == nil {
		return nil
	}
	var sites []Site
	for i := range op.Parameters {
		sites = append(sites, walkParameter(&op.Parameters[i])...)
	}
	if op.RequestBody != nil {
		sites = append(sites, walkRequestBody(op.RequestBody)...)
	}
	if op.Responses != nil {
		for _, code := range op.Responses.Keys() {
			r, _ := op.Responses.Get(code)
			sites = append(sites, walkResponse(r)...)
		}
	}
	for _, name := range sortedKeys(op.Callbacks) {
		sites = append(sites, walkCallback(op.Callbacks[name])...)
	}
	return sites
}

func walkParameter(p *document.Parameter) []Site {
	if p == nil {
		return nil
	}
	sites := []Site{site(func() string { return p.Ref }, func(v string) { p.Ref = v })}
	sites = append(sites, walkSchema(p.Schema)...)
	for _, name := range sortedKeys(p.Examples) {
		sites = append(sites, walkExample(p.Examples[name])...)
	}
	for _, name := range sortedKeys(p.Content) {
		sites = append(sites, walkMediaType(p.Content[name])...)
	}
	return sites
}

func walkHeader(h *document.Header) []Site {
	if h == nil {
		return nil
	}
	sites := []Site{site(func() string { return h.Ref }, func(v string) { h.Ref = v })}
	sites = append(sites, walkSchema(h.Schema)...)
	for _, name := range sortedKeys(h.Examples) {
		sites = append(sites, walkExample(h.Examples[name])...)
	}
	for _, name := range sortedKeys(h.Content) {
		sites = append(sites, walkMediaType(h.Content[name])...)
	}
	return sites
}

func walkMediaType(mt *document.MediaType) []Site {
	if mt == nil {
		return nil
	}
	var sites []Site
	sites = append(sites, walkSchema(mt.Schema)...)
	for _, name := range sortedKeys(mt.Examples) {
		sites = append(sites, walkExample(mt.Examples[name])...)
	}
	for _, name := range sortedKeys(mt.Encoding) {
		enc := mt.Encoding[name]
		for _, hname := range sortedKeys(enc.Headers) {
			sites = append(sites, walkHeader(enc.Headers[hname])...)
		}
	}
	return sites
}

func walkExample(e *document.Example) []Site {
	if e == nil {
		return nil
	}
	return []Site{site(func() string { return e.Ref }, func(v string) { e.Ref = v })}
}

func walkLink(l *document.Link) []Site {
	if l == nil {
		return nil
	}
	return []Site{site(func() string { return l.Ref }, func(v string) { l.Ref = v })}
}

func walkRequestBody(rb *document.RequestBody) []Site {
	if rb == nil {
		return nil
	}
	sites := []Site{site(func() string { return rb.Ref }, func(v string) { rb.Ref = v })}
	for _, name := range sortedKeys(rb.Content) {
		sites = append(sites, walkMediaType(rb.Content[name])...)
	}
	return sites
}

func walkResponse(r *document.Response) []Site {
	if r == nil {
		return nil
	}
	sites := []Site{site(func() string { return r.Ref }, func(v string) { r.Ref = v })}
	for _, name := range sortedKeys(r.Headers) {
		sites = append(sites, walkHeader(r.Headers[name])...)
	}
	for _, name := range sortedKeys(r.Content) {
		sites = append(sites, walkMediaType(r.Content[name])...)
	}
	for _, name := range sortedKeys(r.Links) {
		sites = append(sites, walkLink(r.Links[name])...)
	}
	return sites
}

func walkCallback(cb *document.Callback) []Site {
	if cb == nil {
		return nil
	}
	sites := []Site{site(func() string { return cb.Ref }, func(v string) { cb.Ref = v })}
	if cb.Expressions != nil {
		for _, expr := range cb.Expressions.Keys() {
			item, _ := cb.Expressions.Get(expr)
			sites = append(sites, walkPathItem(item)...)
		}
	}
	return sites
}

func walkSchema(s *document.Schema) []Site {
	if s == nil {
		return nil
	}
	sites := []Site{site(func() string { return s.Ref }, func(v string) { s.Ref = v })}
	sites = append(sites, walkSchema(s.Items)...)
	if sub, ok := s.AdditionalProperties.(*document.Schema); ok {
		sites = append(sites, walkSchema(sub)...)
	}
	for i := range s.AllOf {
		sites = append(sites, walkSchema(s.AllOf[i])...)
	}
	for i := range s.OneOf {
		sites = append(sites, walkSchema(s.OneOf[i])...)
	}
	for i := range s.AnyOf {
		sites = append(sites, walkSchema(s.AnyOf[i])...)
	}
	sites = append(sites, walkSchema(s.Not)...)
	if s.Properties != nil {
		for _, name := range s.Properties.Keys() {
			prop, _ := s.Properties.Get(name)
			sites = append(sites, walkSchema(prop)...)
		}
	}
	if s.Discriminator != nil {
		for _, key := range sortedKeys(s.Discriminator.Mapping) {
			k := key
			sites = append(sites, Site{
				Get:          func() string { return s.Discriminator.Mapping[k] },
				Set:          func(v string) { s.Discriminator.Mapping[k] = v },
				BareAllowed:  true,
				BareCategory: document.CategorySchemas,
			})
		}
	}
	return sites
}
