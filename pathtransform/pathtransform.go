// Package pathtransform implements the Path Transformer component:
// per-input path prefix/strip and tag-based operation filtering, applied to
// one parsed document before it reaches the Merger.
package pathtransform

import (
	"strings"

	"github.com/erraggy/openapi-merge/document"
	"github.com/erraggy/openapi-merge/internal/ordered"
)

// Rules is one input's path-modification and operation-selection
// directives, grounded on the prefix/strip and include/exclude-tag fields
// rperez95's config.PathModificationConfig/OperationSelectionConfig use.
type Rules struct {
	StripPrefix string
	PrependPath string

	IncludeTags []string
	ExcludeTags []string
}

// Apply rewrites doc.Paths in place: every path has StripPrefix removed (if
// present) and PrependPath added, operations not matching IncludeTags/
// ExcludeTags are dropped, and any PathItem left with zero operations is
// removed entirely.
func Apply(doc *document.Document, rules Rules) {
	if doc.Paths == nil {
		return
	}
	filterOperations(doc, rules)
	renamePaths(doc, rules)
}

func filterOperations(doc *document.Document, rules Rules) {
	if len(rules.IncludeTags) == 0 && len(rules.ExcludeTags) == 0 {
		return
	}
	var empty []string
	for _, path := range doc.Paths.Keys() {
		item, _ := doc.Paths.Get(path)
		for _, mo := range item.Operations() {
			if !keepOperation(mo.Operation.Tags, rules) {
				item.SetOperation(mo.Method, nil)
			}
		}
		if item.Empty() {
			empty = append(empty, path)
		}
	}
	for _, path := range empty {
		doc.Paths.Delete(path)
	}
}

func keepOperation(tags []string, rules Rules) bool {
	if len(rules.IncludeTags) > 0 && !anyTagMatches(tags, rules.IncludeTags) {
		return false
	}
	if len(rules.ExcludeTags) > 0 && anyTagMatches(tags, rules.ExcludeTags) {
		return false
	}
	return true
}

func anyTagMatches(tags, candidates []string) bool {
	for _, t := range tags {
		for _, c := range candidates {
			if t == c {
				return true
			}
		}
	}
	return false
}

// renamePaths applies StripPrefix then PrependPath verbatim, with no slash
// normalization — the caller's PrependPath must include or omit the leading
// slash as desired. The one special case is a path left empty once both
// have applied (stripped down to nothing, with no PrependPath to refill
// it), which becomes "/".
func renamePaths(doc *document.Document, rules Rules) {
	if rules.StripPrefix == "" && rules.PrependPath == "" {
		return
	}
	renamed := ordered.NewMap[*document.PathItem]()
	for _, path := range doc.Paths.Keys() {
		item, _ := doc.Paths.Get(path)
		newPath := path
		if rules.StripPrefix != "" && strings.HasPrefix(newPath, rules.StripPrefix) {
			newPath = strings.TrimPrefix(newPath, rules.StripPrefix)
		}
		if rules.PrependPath != "" {
			newPath = rules.PrependPath + newPath
		}
		if newPath == "" {
			newPath = "/"
		}
		renamed.Set(newPath, item)
	}
	doc.Paths = renamed
}
