package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func init() { gin.SetMode(gin.TestMode) }

func previewRouter(secret string) *gin.Engine {
	r := gin.New()
	r.GET("/preview", PreviewAuth(secret), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("scope"))
	})
	r.GET("/admin", PreviewAuth(secret), RequireScope(ScopeAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func get(r http.Handler, target string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPreviewAuth(t *testing.T) {
	r := previewRouter("s3cret")
	token, err := SignPreviewToken("s3cret", ScopePreview, "editor@example.com", nil)
	require.NoError(t, err)

	w := get(r, "/preview", map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ScopePreview, w.Body.String())

	w = get(r, "/preview?token="+token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/preview", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/preview", map[string]string{"Authorization": "Token abc"}).Code)

	forged, err := SignPreviewToken("other", ScopePreview, "", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/preview?token="+forged, nil).Code)
}

func TestPreviewAuth_Expired(t *testing.T) {
	token, err := SignPreviewToken("s3cret", ScopePreview, "", jwt.MapClaims{
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(previewRouter("s3cret"), "/preview?token="+token, nil).Code)
}

func TestPreviewAuth_DisabledWithoutSecret(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, get(previewRouter(""), "/preview", nil).Code)
	_, err := SignPreviewToken("", ScopePreview, "", nil)
	assert.Error(t, err)
}

func TestRequireScope(t *testing.T) {
	r := previewRouter("s3cret")
	preview, _ := SignPreviewToken("s3cret", ScopePreview, "", nil)
	admin, _ := SignPreviewToken("s3cret", ScopeAdmin, "", nil)

	assert.Equal(t, http.StatusForbidden, get(r, "/admin?token="+preview, nil).Code)
	assert.Equal(t, http.StatusNoContent, get(r, "/admin?token="+admin, nil).Code)
}

func TestSanitizeQueryMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(SanitizeQueryMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.Query("category")) })

	w := get(r, "/?category=%3Cscript%3Ealert(1)%3C%2Fscript%3EDryers", nil)
	assert.Equal(t, "Dryers", w.Body.String())
	w = get(r, "/?category=Washers+%26+Dryers", nil)
	assert.Equal(t, "Washers & Dryers", w.Body.String())

	w = get(r, "/?category=O%27Brien%27s", nil)
	assert.Equal(t, "O'Brien's", w.Body.String())

	// already-escaped markup stays inert
	w = get(r, "/?category=%26lt%3Bb%26gt%3B", nil)
	assert.Equal(t, "&lt;b&gt;", w.Body.String())
}

func TestRequestLogger_SetsID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zaptest.NewLogger(t)))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	w := get(r, "/", nil)
	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, w.Body.String())

	given := uuid.NewString()
	w = get(r, "/", map[string]string{RequestIDHeader: given})
	assert.Equal(t, given, w.Header().Get(RequestIDHeader))
}
