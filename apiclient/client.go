// Package apiclient wraps the admin REST API: bearer authentication, the
// {success, message, data} envelope, and deduplicated failure logging.
package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"food-delivery-admin/errorlog"
)

// TokenSource supplies the bearer token and owns session teardown. The
// session gate implements it.
type TokenSource interface {
	AccessToken() string
	Invalidate()
}

// envelope is the wire wrapper every endpoint responds with.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client performs authenticated requests against the versioned base URL.
// Every failure is routed through the error dedup cache before it is
// returned; the client itself never retries.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	errors  *errorlog.Cache
	log     *zap.SugaredLogger
}

func New(baseURL string, timeout time.Duration, tokens TokenSource, errors *errorlog.Cache, log *zap.SugaredLogger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		errors:  errors,
		log:     log,
	}
}

// do issues one request and decodes the envelope's data field into out (when
// out is non-nil). It returns an *APIError on any failure.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.tokens.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		apiErr := transportError(method, url, err)
		c.errors.LogRequestError(method, apiErr.Classifier, url, err)
		return apiErr
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Session teardown belongs to the gate, not to the sync core.
		c.tokens.Invalidate()
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		apiErr := transportError(method, url, err)
		c.errors.LogRequestError(method, apiErr.Classifier, url, err)
		return apiErr
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < 300 {
			apiErr := httpError(method, url, resp.StatusCode, "malformed response body")
			c.errors.LogRequestError(method, apiErr.Classifier, url, apiErr)
			return apiErr
		}
	}

	if resp.StatusCode >= 300 || !env.Success {
		apiErr := httpError(method, url, resp.StatusCode, env.Message)
		c.errors.LogRequestError(method, apiErr.Classifier, url, apiErr)
		return apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			apiErr := httpError(method, url, resp.StatusCode, "malformed response data")
			c.errors.LogRequestError(method, apiErr.Classifier, url, apiErr)
			return apiErr
		}
	}

	c.log.Debugw("api request completed", "method", method, "url", url, "status", resp.StatusCode)
	return nil
}
