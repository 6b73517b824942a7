package adapter

import (
	"fmt"
	"strings"

	"appliance-site/internal/domain/payload"
	"appliance-site/internal/domain/sanity"
)

// ImageURLBuilder turns a CMS image reference into an absolute URL.
type ImageURLBuilder interface {
	Resolve(ref string) (string, error)
}

// ImageURL resolves a Sanity image field. A builder error or panic yields "".
func ImageURL(b ImageURLBuilder, img *sanity.Image) (url string) {
	if img == nil || img.Asset == nil {
		return ""
	}
	if img.Asset.URL != "" {
		return img.Asset.URL
	}
	ref := img.Asset.Ref
	if ref == "" {
		ref = img.Asset.ID
	}
	if ref == "" || b == nil {
		return ""
	}

	defer func() {
		if r := recover(); r != nil {
			url = ""
		}
	}()
	u, err := b.Resolve(ref)
	if err != nil {
		return ""
	}
	return u
}

// MediaURL makes a Payload upload URL absolute against the Payload public URL.
func MediaURL(publicURL string, m *payload.Media) string {
	if m == nil {
		return ""
	}
	return absoluteURL(publicURL, m.URL)
}

func absoluteURL(base, u string) string {
	u = strings.TrimSpace(u)
	switch {
	case u == "":
		return ""
	case strings.HasPrefix(u, "http://"), strings.HasPrefix(u, "https://"), strings.HasPrefix(u, "//"):
		return u
	case base == "":
		return u
	}
	return fmt.Sprintf("%s/%s", strings.TrimRight(base, "/"), strings.TrimLeft(u, "/"))
}
