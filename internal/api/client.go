package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

const HeaderCorrelationID = "X-Correlation-Id"

// Client is the single outbound path to the shop backend. It normalizes
// headers and bodies but deliberately does not look at HTTP status codes:
// a 4xx/5xx with a JSON body flows back to the caller like any success,
// and only transport failure is reported as an error.
type Client struct {
	BaseURL *url.URL
	HTTP    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	u, err := url.Parse(baseURL)
	if err != nil {
		// Fail fast: config error
		panic(fmt.Sprintf("invalid shop base url %q: %v", baseURL, err))
	}
	return &Client{BaseURL: u, HTTP: httpClient}
}

// Do performs a round-trip against path. A nil body sends no body; a string
// or []byte body is sent verbatim (pre-encoded); anything else is marshalled
// to JSON with a matching Content-Type header.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*Body, error) {
	rel := &url.URL{Path: path}
	u := c.BaseURL.ResolveReference(rel)

	var (
		reader      io.Reader
		contentType string
	)
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewReader([]byte(b))
	case []byte:
		reader = bytes.NewReader(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set(HeaderCorrelationID, uuid.NewString())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &Body{raw: raw}, nil
}

func (c *Client) Get(ctx context.Context, path string) (*Body, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) (*Body, error) {
	return c.Do(ctx, http.MethodPost, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) (*Body, error) {
	return c.Do(ctx, http.MethodDelete, path, nil)
}
