package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg := FromLookup(mapLookup(nil))

	assert.Equal(t, "8080", cfg.PORT)
	assert.Equal(t, "classic", cfg.SITE_DESIGN)
	assert.Equal(t, "production", cfg.SANITY_DATASET)
	assert.Equal(t, 5*time.Second, cfg.SANITY_TIMEOUT)
	assert.False(t, cfg.PayloadEnabled())
	assert.False(t, cfg.SanityEnabled())
	assert.False(t, cfg.PreviewEnabled())
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg := FromLookup(mapLookup(map[string]string{
		"PORT":               "3000",
		"DB_URL":             "postgres://localhost/site",
		"PAYLOAD_PUBLIC_URL": "https://cms.example.com/",
		"SANITY_PROJECT_ID":  "abc123",
		"SANITY_TIMEOUT":     "750ms",
		"SITE_DESIGN":        "Modern",
		"PREVIEW_SECRET":     "s3cret",
	}))

	assert.Equal(t, "3000", cfg.PORT)
	assert.Equal(t, "https://cms.example.com", cfg.PAYLOAD_PUBLIC_URL)
	assert.Equal(t, 750*time.Millisecond, cfg.SANITY_TIMEOUT)
	assert.Equal(t, "modern", cfg.SITE_DESIGN)
	assert.True(t, cfg.PayloadEnabled())
	assert.True(t, cfg.SanityEnabled())
	assert.True(t, cfg.PreviewEnabled())
}

func TestFromLookup_BadDurationFallsBack(t *testing.T) {
	cfg := FromLookup(mapLookup(map[string]string{"SANITY_TIMEOUT": "soon"}))
	assert.Equal(t, 5*time.Second, cfg.SANITY_TIMEOUT)
}

func TestFromLookup_BlankValuesUseFallback(t *testing.T) {
	cfg := FromLookup(mapLookup(map[string]string{"PORT": "  "}))
	assert.Equal(t, "8080", cfg.PORT)
}
