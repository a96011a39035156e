package types

import "encoding/json"

// splitExtra unmarshals data into v (a pointer to the entity struct) and
// returns any object keys that are not in known. Unknown fields from an
// imported document are preserved verbatim rather than rejected, so a later
// export round-trips them.
func splitExtra(data []byte, v any, known map[string]bool) (map[string]json.RawMessage, error) {
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	var extra map[string]json.RawMessage
	for k, val := range raw {
		if known[k] {
			continue
		}
		if extra == nil {
			extra = make(map[string]json.RawMessage)
		}
		extra[k] = val
	}
	return extra, nil
}

// mergeExtra marshals v and splices the preserved unknown fields back into
// the resulting JSON object. Known fields win on key collision.
func mergeExtra(v any, extra map[string]json.RawMessage) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return data, nil
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, val := range extra {
		if _, ok := merged[k]; !ok {
			merged[k] = val
		}
	}
	return json.Marshal(merged)
}
