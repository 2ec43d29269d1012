package postgres

import "bytes"

// JSONPayload returns raw as text for a jsonb column, or nil when raw is
// empty or the JSON literal null. Both are stored as absent.
func JSONPayload(raw []byte) *string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	s := string(raw)
	return &s
}
