package sanity

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// asset refs look like image-<assetId>-<width>x<height>-<format>
var imageRef = regexp.MustCompile(`^image-([A-Za-z0-9]+)-(\d+x\d+)-([a-z0-9]+)$`)

// ImageURLBuilder builds CDN URLs for image asset references.
type ImageURLBuilder struct {
	ProjectID string
	Dataset   string
	// Width, when set, asks the CDN for a resized rendition.
	Width int
}

func (b ImageURLBuilder) Resolve(ref string) (string, error) {
	if b.ProjectID == "" || b.Dataset == "" {
		return "", errors.New("sanity image: project or dataset not configured")
	}
	m := imageRef.FindStringSubmatch(strings.TrimSpace(ref))
	if m == nil {
		return "", errors.Errorf("sanity image: malformed asset reference %q", ref)
	}
	u := fmt.Sprintf("https://cdn.sanity.io/images/%s/%s/%s-%s.%s", b.ProjectID, b.Dataset, m[1], m[2], m[3])
	if b.Width > 0 {
		u += fmt.Sprintf("?w=%d&auto=format", b.Width)
	}
	return u, nil
}
