package adapter

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Slug normalises a slug field. Sanity sends {"_type": "slug", "current": "x"}, Payload and
// hand-written GROQ projections send "x".
func Slug(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var obj struct {
		Current string `json:"current"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return strings.TrimSpace(obj.Current)
	}
	return ""
}
