// Package adapter is the only place that knows both CMS document shapes. Every function
// here is total: absent optional fields become "" or an empty slice, never nil or a panic.
package adapter

import (
	"encoding/json"
	"strings"
)

// Map adapts a slice of source documents with fn. The result is never nil.
func Map[S, T any](docs []S, fn func(S) T) []T {
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		out = append(out, fn(d))
	}
	return out
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

func intOr(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}

func cleanStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// jsonStrings reads a jsonb array that Payload stores either as ["a", "b"] or as
// array-field rows [{"<key>": "a"}, ...].
func jsonStrings(raw json.RawMessage, key string) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var plain []string
	if err := json.Unmarshal(raw, &plain); err == nil {
		return cleanStrings(plain)
	}
	var rows []map[string]any
	if err := json.Unmarshal(raw, &rows); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if s, ok := row[key].(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}
