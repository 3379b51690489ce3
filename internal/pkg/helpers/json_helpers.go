package helpers

import (
	"encoding/json"
)

// DecodeAggregate normalizes an aggregated column (json_agg) into a typed slice.
// The driver may hand the value over already decoded ([]any, []map[string]any),
// as serialized JSON (string, []byte) or as NULL. Anything that cannot be
// decoded yields an empty slice, never nil and never an error.
func DecodeAggregate[T any](value interface{}) []T {
	out := []T{}

	var raw []byte
	switch v := value.(type) {
	case nil:
		return out
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	case []T:
		if v == nil {
			return out
		}
		return v
	case []interface{}, []map[string]interface{}:
		encoded, err := json.Marshal(v)
		if err != nil {
			return out
		}
		raw = encoded
	default:
		return out
	}

	var decoded []T
	if err := json.Unmarshal(raw, &decoded); err != nil || decoded == nil {
		return out
	}
	return decoded
}
