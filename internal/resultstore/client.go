// Package resultstore is a client for the outline result store, an
// HTTP service that keeps extracted outlines keyed by document ID.
// The store is optional: when no URL is configured the service keeps
// results in memory only.
package resultstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dgallion1/outliner/internal/outline"
)

// Client communicates with the result store HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// RetryableError marks a store failure worth retrying (throttling or a
// server-side fault).
type RetryableError struct {
	StatusCode int
	Msg        string
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("resultstore: status %d: %s", e.StatusCode, e.Msg)
}

// OutlineRecord is the body for PUT /outlines/{doc_id}.
type OutlineRecord struct {
	DocID       string           `json:"doc_id"`
	Filename    string           `json:"filename"`
	ContentHash string           `json:"content_hash,omitempty"`
	Strategy    string           `json:"strategy,omitempty"`
	Outline     *outline.Outline `json:"result"`
	CreatedAt   string           `json:"created_at,omitempty"`
}

// PutOutline stores or replaces the outline for a document.
func (c *Client) PutOutline(ctx context.Context, rec OutlineRecord) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal outline: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/outlines/"+url.PathEscape(rec.DocID), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &RetryableError{Msg: err.Error()}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		if retryableStatus(resp.StatusCode) {
			return &RetryableError{StatusCode: resp.StatusCode, Msg: string(respBody)}
		}
		return fmt.Errorf("put outline %s: status %d: %s", rec.DocID, resp.StatusCode, string(respBody))
	}
	return nil
}

// GetOutline retrieves a stored outline by document ID. A missing
// document returns (nil, nil).
func (c *Client) GetOutline(ctx context.Context, docID string) (*OutlineRecord, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/outlines/"+url.PathEscape(docID), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("get outline: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("get outline %s: status %d: %s", docID, resp.StatusCode, string(respBody))
	}

	var rec OutlineRecord
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode outline: %w", err)
	}
	return &rec, nil
}

// DeleteOutline removes a stored outline.
func (c *Client) DeleteOutline(ctx context.Context, docID string) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/outlines/"+url.PathEscape(docID), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("delete outline: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("delete outline %s: status %d: %s", docID, resp.StatusCode, string(respBody))
	}
	return nil
}

// FindByHash does a content-hash lookup so duplicate uploads can reuse
// the stored outline instead of re-extracting.
func (c *Client) FindByHash(ctx context.Context, hash string) (*OutlineRecord, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/outlines?hash="+url.QueryEscape(hash), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("find by hash: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("find by hash: status %d: %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Records []OutlineRecord `json:"records"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	if len(result.Records) == 0 {
		return nil, nil
	}
	return &result.Records[0], nil
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

// Close releases any resources (currently a no-op).
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
