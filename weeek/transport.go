// ABOUTME: HTTP transport for the deckhand API client: request building, bearer auth, and envelope unwrapping.
// ABOUTME: Provides the raw passthrough Do plus generic helpers that tolerate absent envelope fields.

package weeek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"

	"github.com/google/uuid"
)

// Do issues a raw request against the API and returns the response body.
// Query parameters with empty values are omitted from the serialized query
// string. A non-success status is returned as a TransportError carrying the
// status code and raw body; the client never retries.
//
// Do is the passthrough surface for callers that need an endpoint the typed
// methods do not cover.
func (c *Client) Do(ctx context.Context, method, path string, body any, query map[string]string) (json.RawMessage, error) {
	return c.do(ctx, method, path, body, query, nil)
}

// do is Do plus per-request headers, used internally by the orchestrator to
// attach workflow correlation headers.
func (c *Client) do(ctx context.Context, method, path string, body any, query map[string]string, headers map[string]string) (json.RawMessage, error) {
	u := c.baseURL + path
	if qs := encodeQuery(query); qs != "" {
		u += "?" + qs
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	reqID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	c.logf("%s %s -> %d (request %s)", method, path, resp.StatusCode, reqID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newTransportError(method, path, resp.StatusCode, respBody)
	}

	return respBody, nil
}

// doMultipart uploads a single file as multipart form data. Used by the
// attachment endpoint, which does not accept JSON bodies.
func (c *Client) doMultipart(ctx context.Context, path, field, filename string, r io.Reader) (json.RawMessage, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return nil, fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("copying file contents: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	reqID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", reqID)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing POST %s: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	c.logf("POST %s -> %d (request %s, multipart)", path, resp.StatusCode, reqID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newTransportError(http.MethodPost, path, resp.StatusCode, respBody)
	}

	return respBody, nil
}

// encodeQuery serializes query parameters, omitting entries with empty
// values. Keys are sorted so request URLs are deterministic.
func encodeQuery(query map[string]string) string {
	if len(query) == 0 {
		return ""
	}
	keys := make([]string, 0, len(query))
	for k, v := range query {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	vals := url.Values{}
	for _, k := range keys {
		vals.Set(k, query[k])
	}
	return vals.Encode()
}

// unwrapList decodes the named field of a response envelope as a collection.
// An absent field yields an empty (non-nil) slice, never an error: list
// endpoints omit the field when the collection is empty.
func unwrapList[T any](raw json.RawMessage, field string) ([]T, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decoding response envelope: %w", err)
	}

	inner, ok := envelope[field]
	if !ok {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(inner, &items); err != nil {
		return nil, fmt.Errorf("decoding %q field: %w", field, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// unwrapItem decodes the named singular field of a response envelope. When
// the field is absent the whole body is decoded instead, which tolerates
// endpoints that return the entity un-enveloped.
func unwrapItem[T any](raw json.RawMessage, field string) (T, error) {
	var zero T

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return zero, fmt.Errorf("decoding response envelope: %w", err)
	}

	inner, ok := envelope[field]
	if !ok {
		inner = raw
	}

	var item T
	if err := json.Unmarshal(inner, &item); err != nil {
		return zero, fmt.Errorf("decoding %q field: %w", field, err)
	}
	return item, nil
}
