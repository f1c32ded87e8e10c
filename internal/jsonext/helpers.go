// Package jsonext provides helpers for marshaling structs whose unknown
// fields (OpenAPI specification extensions, "x-*" properties) must round
// trip through an Extra map, since encoding/json has no equivalent of
// yaml's ",inline" map tag.
package jsonext

import (
	"encoding/json"
	"maps"
)

// MarshalAliasWithExtras marshals alias (ordinarily a `type alias T` cast of
// the receiver, to dodge infinite MarshalJSON recursion) and merges extra's
// entries into the result. Used by InlineOrRef types whose only JSON gap is
// round-tripping specification-extension ("x-*") fields that plain struct
// tags can't express (encoding/json has no ",inline" map support).
func MarshalAliasWithExtras(alias any, extra map[string]any) ([]byte, error) {
	data, err := json.Marshal(alias)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return data, nil
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	maps.Copy(m, extra)
	return json.Marshal(m)
}

// ExtractExtensions re-decodes data generically and returns every top-level
// "x-"-prefixed key, or nil if there are none.
func ExtractExtensions(data []byte) map[string]any {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	var extra map[string]any
	for k, v := range m {
		if len(k) >= 2 && k[0] == 'x' && k[1] == '-' {
			if extra == nil {
				extra = make(map[string]any)
			}
			extra[k] = v
		}
	}
	return extra
}
