package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// unescapeText undoes the text escaping StrictPolicy applies to plain characters, so
// "Washers & Dryers" survives. Angle brackets stay escaped.
var unescapeText = strings.NewReplacer("&amp;", "&", "&#39;", "'", "&#34;", `"`)

// SanitizeQueryMiddleware strips markup from every query parameter before handlers see it.
// Query values reach content queries, e.g. /api/posts?category= and /api/services?featured=.
func SanitizeQueryMiddleware() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Next()
			return
		}

		values := c.Request.URL.Query()
		if len(values) == 0 {
			c.Next()
			return
		}
		for k, vs := range values {
			for i, v := range vs {
				vs[i] = unescapeText.Replace(policy.Sanitize(v))
			}
			values[k] = vs
		}
		c.Request.URL.RawQuery = values.Encode()

		c.Next()
	}
}
