// Package sanity is a small read-only client for the Sanity HTTP query API.
package sanity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"appliance-site/internal/source"

	"github.com/pkg/errors"
)

type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	Timeout    time.Duration
	// BaseURL overrides the API host, used by tests.
	BaseURL string
}

type Client struct {
	cfg  Config
	http *http.Client
	base string
}

func NewClient(cfg Config, hc *http.Client) *Client {
	if cfg.Dataset == "" {
		cfg.Dataset = "production"
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2024-01-01"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}

	base := cfg.BaseURL
	if base == "" {
		host := "apicdn.sanity.io"
		if cfg.Token != "" {
			// authenticated reads must bypass the CDN
			host = "api.sanity.io"
		}
		base = fmt.Sprintf("https://%s.%s", cfg.ProjectID, host)
	}

	return &Client{cfg: cfg, http: hc, base: strings.TrimRight(base, "/")}
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Description string `json:"description"`
	} `json:"error,omitempty"`
}

// Query runs a GROQ query with parameters and returns the raw "result" value.
func (c *Client) Query(ctx context.Context, groq string, params map[string]any) (json.RawMessage, error) {
	values := url.Values{}
	values.Set("query", groq)
	for k, v := range params {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, errors.Wrapf(err, "sanity: encode param %s", k)
		}
		values.Set("$"+k, string(b))
	}
	endpoint := fmt.Sprintf("%s/v%s/data/query/%s?%s",
		c.base, strings.TrimPrefix(c.cfg.APIVersion, "v"), url.PathEscape(c.cfg.Dataset), values.Encode())

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(source.ErrUnavailable, "sanity: build request: "+err.Error())
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(source.ErrUnavailable, "sanity: "+err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, errors.Wrap(source.ErrUnavailable, "sanity: read body: "+err.Error())
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(source.ErrUnavailable, "sanity: status %d", resp.StatusCode)
	}

	var out queryResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrap(source.ErrUnavailable, "sanity: decode: "+err.Error())
	}
	if out.Error != nil {
		return nil, errors.Wrap(source.ErrUnavailable, "sanity: "+out.Error.Description)
	}
	return out.Result, nil
}

// Find returns the published documents of one type. The projection and ordering per
// type live in queries.go.
func (c *Client) Find(ctx context.Context, docType string, q source.Query, slug string) ([]json.RawMessage, error) {
	groq, params := buildQuery(docType, q, slug)
	raw, err := c.Query(ctx, groq, params)
	if err != nil {
		return nil, err
	}
	var docs []json.RawMessage
	if len(raw) == 0 || string(raw) == "null" {
		return []json.RawMessage{}, nil
	}
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, errors.Wrap(source.ErrUnavailable, "sanity: result is not a list")
	}
	return docs, nil
}

// FindGlobal returns a singleton document by _id or type, e.g. siteSettings.
func (c *Client) FindGlobal(ctx context.Context, id string) (json.RawMessage, error) {
	raw, err := c.Query(ctx, `*[_id == $id || _type == $id][0]`+projection(id), map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, errors.Wrapf(source.ErrNotFound, "sanity: %s", id)
	}
	return raw, nil
}

// FindDraft is Find for a single slug with drafts preferred, for preview.
func (c *Client) FindDraft(ctx context.Context, docType, slug string) ([]json.RawMessage, error) {
	groq := fmt.Sprintf(`*[_type == $type && slug.current == $slug] | order(_id in path("drafts.**") desc)%s`, projection(docType))
	raw, err := c.Query(ctx, groq, map[string]any{"type": docType, "slug": slug})
	if err != nil {
		return nil, err
	}
	var docs []json.RawMessage
	if err := json.Unmarshal(raw, &docs); err != nil {
		return []json.RawMessage{}, nil
	}
	return docs, nil
}
