package client

import (
	"bytes"
	"encoding/json"
)

// listEnvelope is the paginated wrapper some list endpoints answer with
// instead of a bare array.
type listEnvelope[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// NormalizeList resolves the backend's two list shapes once, at the transport
// boundary: a bare JSON array is returned unchanged, `{results: [...]}`
// yields exactly the results, and anything else (null, an object without
// results) yields an empty slice. Every list-returning call goes through
// here; list views silently empty out if this detection ever regresses.
func NormalizeList[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []T{}, nil
	}

	switch trimmed[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		if items == nil {
			items = []T{}
		}
		return items, nil
	case '{':
		var env listEnvelope[T]
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, err
		}
		if env.Results == nil {
			return []T{}, nil
		}
		return env.Results, nil
	default:
		// null, a bare scalar, or junk: coerce to empty rather than erroring,
		// matching what list views expect.
		return []T{}, nil
	}
}
