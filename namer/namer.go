// Package namer implements the Component Namer: for each of the nine
// component categories, decide whether an input's
// definition can be adopted unchanged, deduped against an identical
// existing definition, or must be renamed under the input's dispute
// policy — and fail with a structured error when no policy resolves the
// collision.
package namer

import (
	"github.com/erraggy/openapi-merge/document"
	"github.com/erraggy/openapi-merge/internal/ordered"
	"github.com/erraggy/openapi-merge/internal/structeq"
	"github.com/erraggy/openapi-merge/merrors"
)

// Policy is one input's dispute configuration for a component category.
// Prefix and Suffix are mutually exclusive in practice (the config package
// rejects both being set), but Resolve does not assume that — it simply
// builds Prefix+name+Suffix, so either or both apply if both are set.
type Policy struct {
	Prefix string
	Suffix string

	// AlwaysApply forces the rename onto every definition from this input
	// in this category, not just ones that collide.
	AlwaysApply bool
}

// Resolve decides a name for every key in incoming against the names
// already claimed in merged, returning the old -> new name map for entries
// that needed renaming. Keys absent from the returned map are either new
// (adopt unchanged) or deduped against an identical existing definition;
// either way the caller uses the original key to look the definition up in
// the final merged document.
func Resolve[V any](cat document.Category, inputIndex int, merged, incoming *ordered.Map[V], policy Policy) (map[string]string, error) {
	renamed := make(map[string]string)
	taken := make(map[string]bool, merged.Len())
	for _, k := range merged.Keys() {
		taken[k] = true
	}

	for _, key := range incoming.Keys() {
		val, _ := incoming.Get(key)
		existing, exists := merged.Get(key)

		if !policy.AlwaysApply {
			if !exists {
				taken[key] = true
				continue
			}
			if structeq.Equal(existing, val) {
				continue // dedupe: reuse the existing definition under the same name
			}
		}

		if policy.Prefix == "" && policy.Suffix == "" {
			return nil, &merrors.DisputeUnresolvedError{
				Category:   cat.String(),
				Name:       key,
				InputIndex: inputIndex,
			}
		}
		candidate := policy.Prefix + key + policy.Suffix
		if taken[candidate] {
			return nil, &merrors.DisputeStillConflictsError{
				Category:  cat.String(),
				Original:  key,
				Candidate: candidate,
			}
		}
		renamed[key] = candidate
		taken[candidate] = true
	}

	return renamed, nil
}
