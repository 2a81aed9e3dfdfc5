package services

import "encoding/json"

// toPayload converts a typed input struct into the key-value body sent to
// PostgREST. Optional fields are pointers with omitempty tags, so unset
// fields are dropped instead of overwriting columns with nulls.
func toPayload(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// firstRow returns the first element of a representation response, nil
// when the upstream returned none
func firstRow(rows []map[string]any) map[string]any {
	if len(rows) == 0 {
		return nil
	}
	return rows[0]
}

// decodeRow maps a PostgREST row onto a typed struct
func decodeRow(row map[string]any, out any) error {
	raw, err := json.Marshal(row)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
