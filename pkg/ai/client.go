// Package ai is the boundary client for the external rewrite service. The
// core pipeline never depends on it: callers hand it section text and take
// back section text, nothing more.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Client calls the ai-service to rewrite section content and detect the
// document language.
type Client struct {
	BaseURL         string
	HTTP            *http.Client
	DefaultLanguage string
}

func NewClient() *Client {
	base := os.Getenv("AI_SERVICE_URL")
	if base == "" {
		base = "http://ai-service:8000"
	}
	return &Client{BaseURL: base, HTTP: &http.Client{Timeout: 60 * time.Second}}
}

func NewClientWithLanguage(language string) *Client {
	c := NewClient()
	c.DefaultLanguage = language
	return c
}

// doPostWithRetry performs an HTTP POST to the given path with retry/backoff.
func (c *Client) doPostWithRetry(ctx context.Context, path string, body []byte) (*http.Response, error) {
	attempts := 3
	var lastErr error
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.HTTP.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

func (c *Client) postJSON(ctx context.Context, path string, payload map[string]interface{}) (map[string]interface{}, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	resp, err := c.doPostWithRetry(ctx, path, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("ai-service %s: status %d: %s", path, resp.StatusCode, string(b))
	}
	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("ai-service %s: decode: %w", path, err)
	}
	return out, nil
}

// RewriteSection asks the service to polish one section's markup. The reply
// must contain a "content" field; anything else is treated as a miss and the
// caller keeps the original content.
func (c *Client) RewriteSection(ctx context.Context, sectionID, content, language string) (string, error) {
	if language == "" {
		language = c.DefaultLanguage
	}
	out, err := c.postJSON(ctx, "/v1/rewrite", map[string]interface{}{
		"section":  sectionID,
		"content":  content,
		"language": language,
	})
	if err != nil {
		return "", err
	}
	rewritten, _ := out["content"].(string)
	if rewritten == "" {
		return "", fmt.Errorf("ai-service rewrite: empty content for section %s", sectionID)
	}
	return rewritten, nil
}

// DetectLanguage returns the service's language code for the given text.
func (c *Client) DetectLanguage(ctx context.Context, text string) (string, error) {
	out, err := c.postJSON(ctx, "/v1/detect-language", map[string]interface{}{
		"text": text,
	})
	if err != nil {
		return "", err
	}
	lang, _ := out["language"].(string)
	if lang == "" {
		return "", fmt.Errorf("ai-service detect-language: empty reply")
	}
	return lang, nil
}
