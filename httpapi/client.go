package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/invoicekit/invoicekit"
	"github.com/invoicekit/invoicekit/store"
)

// Client implements store.Store against a Server. Failures include
// store.ErrNotFound for 404 responses, so callers can treat a remote store
// exactly like a local one.
type Client struct {
	base string
	http *http.Client
}

var _ store.Store = (*Client)(nil)

// NewClient creates a client for the API at baseURL, e.g.
// "http://localhost:8080". Pass nil to use http.DefaultClient.
func NewClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{base: strings.TrimRight(baseURL, "/"), http: hc}
}

// List returns all stored documents.
func (c *Client) List(ctx context.Context) ([]invoicekit.Document, error) {
	var docs []invoicekit.Document
	if err := c.do(ctx, http.MethodGet, "/api/documents", nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Get returns the document with the given id.
func (c *Client) Get(ctx context.Context, id string) (invoicekit.Document, error) {
	var doc invoicekit.Document
	err := c.do(ctx, http.MethodGet, "/api/documents/"+id, nil, &doc)
	return doc, err
}

// Create stores a new document and returns the stored form.
func (c *Client) Create(ctx context.Context, doc invoicekit.Document) (invoicekit.Document, error) {
	var created invoicekit.Document
	err := c.do(ctx, http.MethodPost, "/api/documents", doc, &created)
	return created, err
}

// Update replaces a stored document and returns the stored form.
func (c *Client) Update(ctx context.Context, doc invoicekit.Document) (invoicekit.Document, error) {
	var updated invoicekit.Document
	err := c.do(ctx, http.MethodPut, "/api/documents/"+doc.ID, doc, &updated)
	return updated, err
}

// Delete removes the document with the given id.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/documents/"+id, nil, nil)
}

// do sends one request and decodes the response into out when out is
// non-nil. Error responses are unwrapped into Go errors; a 404 wraps
// store.ErrNotFound.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reqBody)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		if eb.Error == "" {
			eb.Error = resp.Status
		}
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%s %s: %s: %w", method, path, eb.Error, store.ErrNotFound)
		}
		return fmt.Errorf("%s %s: %s", method, path, eb.Error)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}
