package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	ScopePreview = "preview"
	ScopeAdmin   = "admin"
)

// PreviewAuth accepts an HMAC-signed token from the Authorization header or, for links
// opened from the CMS, the "token" query parameter. The token's scope claim is stored
// under "scope".
func PreviewAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := []byte(secret)
		if len(key) == 0 {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Preview is not enabled"})
			return
		}

		tokenString := bearer(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Preview token missing"})
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}
		scope, _ := claims["scope"].(string)
		if scope == "" {
			scope = ScopePreview
		}
		c.Set("scope", scope)
		if sub, ok := claims["sub"].(string); ok {
			c.Set("subject", sub)
		}
		c.Next()
	}
}

func bearer(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if t := strings.TrimPrefix(h, "Bearer "); t != h {
			return strings.TrimSpace(t)
		}
		return ""
	}
	return strings.TrimSpace(c.Query("token"))
}

// RequireScope must run after PreviewAuth.
func RequireScope(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("scope")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Scope not found in token"})
			return
		}
		if value != scope {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}

// SignPreviewToken issues a token PreviewAuth accepts. Used by sitectl.
func SignPreviewToken(secret, scope, subject string, claims jwt.MapClaims) (string, error) {
	if secret == "" {
		return "", errors.New("preview secret not configured")
	}
	if claims == nil {
		claims = jwt.MapClaims{}
	}
	claims["scope"] = scope
	if subject != "" {
		claims["sub"] = subject
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
