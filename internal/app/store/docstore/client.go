// internal/app/store/docstore/client.go
package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

var (
	// ErrConnection is wrapped into errors from bulk fetches when the store
	// is unreachable or denies access. Callers fall back to the built-in
	// demo dataset on this error.
	ErrConnection = errors.New("document store connection failed")

	// ErrPersistence is wrapped into errors from individual create, update,
	// and delete calls. By the time it surfaces, local state has already
	// been applied optimistically and is not rolled back.
	ErrPersistence = errors.New("document store write failed")
)

// Client talks to the remote document store over HTTP. It is safe for
// concurrent use.
type Client struct {
	baseURL  string // documents root, no trailing slash
	apiKey   string
	pageSize int
	httpc    *http.Client
	logger   *zap.Logger
}

// New constructs a Client for the documents root at baseURL. pageSize bounds
// each list page; the store enforces its own ceiling as well.
func New(baseURL, apiKey string, pageSize int, httpc *http.Client, logger *zap.Logger) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	if pageSize <= 0 {
		pageSize = 300
	}
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		pageSize: pageSize,
		httpc:    httpc,
		logger:   logger,
	}
}

// ListAll fetches every document in a collection, following page tokens
// until the listing is exhausted. Failures wrap ErrConnection.
func (c *Client) ListAll(ctx context.Context, collection string) ([]Document, error) {
	var docs []Document
	pageToken := ""
	for {
		q := url.Values{}
		q.Set("pageSize", fmt.Sprint(c.pageSize))
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}
		body, err := c.do(ctx, http.MethodGet, c.collectionURL(collection, q), nil)
		if err != nil {
			return nil, fmt.Errorf("%w: list %q: %v", ErrConnection, collection, err)
		}

		var page struct {
			Documents     []map[string]any `json:"documents"`
			NextPageToken string           `json:"nextPageToken"`
		}
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("%w: list %q: %v", ErrConnection, collection, err)
		}
		for _, wire := range page.Documents {
			doc, err := DecodeDocument(wire)
			if err != nil {
				return nil, fmt.Errorf("%w: list %q: %v", ErrConnection, collection, err)
			}
			docs = append(docs, doc)
		}
		if page.NextPageToken == "" {
			return docs, nil
		}
		pageToken = page.NextPageToken
	}
}

// Create stores a new document. When doc.ID is set it becomes the explicit
// document id; otherwise the store assigns one. The stored document (with
// its final id) is returned. Failures wrap ErrPersistence.
func (c *Client) Create(ctx context.Context, collection string, doc Document) (Document, error) {
	payload, err := EncodeDocument(doc)
	if err != nil {
		return Document{}, fmt.Errorf("%w: create in %q: %v", ErrPersistence, collection, err)
	}

	q := url.Values{}
	if doc.ID != "" {
		q.Set("documentId", doc.ID)
	}
	body, err := c.do(ctx, http.MethodPost, c.collectionURL(collection, q), payload)
	if err != nil {
		return Document{}, fmt.Errorf("%w: create in %q: %v", ErrPersistence, collection, err)
	}

	var wire map[string]any
	if err := json.Unmarshal(body, &wire); err != nil {
		return Document{}, fmt.Errorf("%w: create in %q: %v", ErrPersistence, collection, err)
	}
	stored, err := DecodeDocument(wire)
	if err != nil {
		return Document{}, fmt.Errorf("%w: create in %q: %v", ErrPersistence, collection, err)
	}
	return stored, nil
}

// Update patches a document, touching only the top-level fields named in the
// field mask. Array-valued fields in the mask are replaced wholesale (see
// the package contract notes). Failures wrap ErrPersistence.
func (c *Client) Update(ctx context.Context, collection, id string, fields map[string]any, fieldMask []string) error {
	payload, err := EncodeDocument(Document{Fields: fields})
	if err != nil {
		return fmt.Errorf("%w: update %s/%s: %v", ErrPersistence, collection, id, err)
	}

	q := url.Values{}
	for _, path := range fieldMask {
		q.Add("updateMask.fieldPaths", path)
	}
	if _, err := c.do(ctx, http.MethodPatch, c.documentURL(collection, id, q), payload); err != nil {
		return fmt.Errorf("%w: update %s/%s: %v", ErrPersistence, collection, id, err)
	}
	return nil
}

// Delete removes a document. Failures wrap ErrPersistence.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	if _, err := c.do(ctx, http.MethodDelete, c.documentURL(collection, id, nil), nil); err != nil {
		return fmt.Errorf("%w: delete %s/%s: %v", ErrPersistence, collection, id, err)
	}
	return nil
}

// SeedBatch creates documents one at a time, in order. It is not atomic: a
// failure mid-batch leaves earlier documents in place and returns the first
// error.
func (c *Client) SeedBatch(ctx context.Context, collection string, docs []Document) error {
	for i, doc := range docs {
		if _, err := c.Create(ctx, collection, doc); err != nil {
			return fmt.Errorf("seed %q: document %d of %d: %w", collection, i+1, len(docs), err)
		}
	}
	if c.logger != nil {
		c.logger.Info("seeded collection",
			zap.String("collection", collection),
			zap.Int("documents", len(docs)))
	}
	return nil
}

// do issues one request and returns the response body, treating any
// non-2xx status as an error.
func (c *Client) do(ctx context.Context, method, rawURL string, payload map[string]any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s %s: %s: %s", method, rawURL, resp.Status, truncate(body, 200))
	}
	return body, nil
}

func (c *Client) collectionURL(collection string, q url.Values) string {
	return c.buildURL(c.baseURL+"/"+collection, q)
}

func (c *Client) documentURL(collection, id string, q url.Values) string {
	return c.buildURL(c.baseURL+"/"+collection+"/"+url.PathEscape(id), q)
}

func (c *Client) buildURL(base string, q url.Values) string {
	if q == nil {
		q = url.Values{}
	}
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}
	if len(q) == 0 {
		return base
	}
	return base + "?" + q.Encode()
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
