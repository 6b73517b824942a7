package sanity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageURLBuilder_Resolve(t *testing.T) {
	b := ImageURLBuilder{ProjectID: "proj", Dataset: "production"}

	u, err := b.Resolve("image-Tb9Ew8CXIwaY6R1kjMvI0uRR-2000x3000-jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.sanity.io/images/proj/production/Tb9Ew8CXIwaY6R1kjMvI0uRR-2000x3000.jpg", u)

	b.Width = 800
	u, err = b.Resolve("image-abc-10x20-png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.sanity.io/images/proj/production/abc-10x20.png?w=800&auto=format", u)
}

func TestImageURLBuilder_Errors(t *testing.T) {
	_, err := ImageURLBuilder{ProjectID: "p", Dataset: "d"}.Resolve("file-abc-pdf")
	assert.Error(t, err)

	_, err = ImageURLBuilder{}.Resolve("image-abc-10x20-png")
	assert.Error(t, err)
}
