package sanity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"appliance-site/internal/source"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, token string, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		ProjectID: "proj",
		Dataset:   "production",
		Token:     token,
		Timeout:   2 * time.Second,
		BaseURL:   srv.URL,
	}, srv.Client())
}

func TestClient_FindSendsParamsAndToken(t *testing.T) {
	var gotPath, gotQuery, gotType, gotSlug, gotAuth string
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("query")
		gotType = r.URL.Query().Get("$type")
		gotSlug = r.URL.Query().Get("$slug")
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"result":[{"_id":"svc-1","_type":"service"}],"ms":3}`))
	})

	docs, err := c.Find(context.Background(), "service", source.Query{}, "dryer-repair")
	require.NoError(t, err)
	require.Len(t, docs, 1)

	assert.Equal(t, "/v2024-01-01/data/query/production", gotPath)
	assert.Contains(t, gotQuery, `_type == $type`)
	assert.Contains(t, gotQuery, `slug.current == $slug`)
	assert.Equal(t, `"service"`, gotType)
	assert.Equal(t, `"dryer-repair"`, gotSlug)
	assert.Equal(t, "Bearer tok", gotAuth)
}

func TestClient_NullResultIsEmptyList(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":null}`))
	})
	docs, err := c.Find(context.Background(), "post", source.Query{Limit: 3}, "")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestClient_ServerErrorIsUnavailable(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	_, err := c.Find(context.Background(), "post", source.Query{}, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, source.ErrUnavailable))
}

func TestClient_QueryErrorBodyIsUnavailable(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":{"description":"expected ']'"}}`))
	})
	_, err := c.Query(context.Background(), "*[", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, source.ErrUnavailable))
	assert.Contains(t, err.Error(), "expected ']'")
}

func TestClient_UnreachableIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()
	c := NewClient(Config{ProjectID: "p", BaseURL: srv.URL, Timeout: time.Second}, nil)

	_, err := c.Find(context.Background(), "service", source.Query{}, "")
	assert.True(t, errors.Is(err, source.ErrUnavailable))
}

func TestClient_FindGlobalMissingIsNotFound(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `"siteSettings"`, r.URL.Query().Get("$id"))
		_, _ = w.Write([]byte(`{"result":null}`))
	})
	_, err := c.FindGlobal(context.Background(), "siteSettings")
	assert.True(t, errors.Is(err, source.ErrNotFound))
}

func TestClient_FindDraftOrdersDraftsFirst(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		_, _ = w.Write([]byte(`{"result":[{"_id":"drafts.page-home","_type":"page"},{"_id":"page-home","_type":"page"}]}`))
	})

	docs, err := c.FindDraft(context.Background(), "page", "home")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Contains(t, gotQuery, `order(_id in path("drafts.**") desc)`)
	assert.NotContains(t, gotQuery, "order(_id desc)")
}

func TestNewClient_HostDependsOnToken(t *testing.T) {
	assert.Equal(t, "https://abc.apicdn.sanity.io", NewClient(Config{ProjectID: "abc"}, nil).base)
	assert.Equal(t, "https://abc.api.sanity.io", NewClient(Config{ProjectID: "abc", Token: "t"}, nil).base)
}

func TestBuildQuery(t *testing.T) {
	groq, params := buildQuery("post", source.Query{Limit: 3, Category: "Dryers"}, "")
	assert.True(t, strings.HasPrefix(groq, `*[_type == $type && !(_id in path("drafts.**")) && $category in categories[]->title]`))
	assert.Contains(t, groq, "| order(publishedAt desc)[0...3]")
	assert.Equal(t, "Dryers", params["category"])

	groq, params = buildQuery("service", source.Query{Refs: []string{"a", "b"}, Limit: 1, Featured: true}, "")
	assert.Contains(t, groq, `(_id in $refs || slug.current in $refs)`)
	assert.NotContains(t, groq, "featured == true")
	assert.NotContains(t, groq, "[0...1]")
	assert.Equal(t, []string{"a", "b"}, params["refs"])

	groq, _ = buildQuery("testimonial", source.Query{Service: "Oven Repair"}, "")
	assert.Contains(t, groq, `service->title == $service`)
}
