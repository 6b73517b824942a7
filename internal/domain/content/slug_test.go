package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeSlug(t *testing.T) {
	cases := map[string]string{
		"Dryer Repair":              "dryer-repair",
		"  Washer & Dryer Service ": "washer-dryer-service",
		"Sub-Zero -- Fridges":       "sub-zero-fridges",
		"!!!":                       "",
	}
	for in, want := range cases {
		assert.Equal(t, want, MakeSlug(in), in)
	}
}

func TestTitleFromSlug(t *testing.T) {
	assert.Equal(t, "Dryer Repair", TitleFromSlug("dryer-repair"))
	assert.Equal(t, "Home", TitleFromSlug("/home/"))
	assert.Equal(t, "", TitleFromSlug(""))
}
