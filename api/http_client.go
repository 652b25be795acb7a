// api/http_client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"lapangin-web/config"
)

// ErrEmptyBody is returned when a 2xx response that should carry JSON has no body.
var ErrEmptyBody = errors.New("empty response body")

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	return "unexpected status code: " + e.Status
}

// Message returns the backend's "message" field when the error body carries one.
func (e *StatusError) Message() string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(e.Body, &body); err != nil {
		return ""
	}
	return body.Message
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// Credentials are the browser cookies forwarded to the backend.
type Credentials struct {
	SessionID string
	CSRFToken string
}

type credentialsKey struct{}

// WithCredentials attaches the caller's cookies to ctx.
func WithCredentials(ctx context.Context, c Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey{}, c)
}

// CredentialsFrom returns the credentials attached to ctx, if any.
func CredentialsFrom(ctx context.Context) (Credentials, bool) {
	c, ok := ctx.Value(credentialsKey{}).(Credentials)
	return c, ok
}

// HTTPClient struct to hold base URL and HTTP client configuration
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHTTPClient creates a new instance of HTTPClient with default settings
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: config.BACKEND_TIMEOUT_SECONDS * time.Second,
		},
	}
}

// Request makes an HTTP request to the API and decodes the response
func (c *HTTPClient) Request(ctx context.Context, method, endpoint string, query url.Values, body interface{}, response interface{}) error {
	var requestBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		requestBody = bytes.NewReader(jsonBody)
	}

	target := c.BaseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, requestBody)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if creds, ok := CredentialsFrom(ctx); ok {
		applyCredentials(req, creds)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &StatusError{
			Method:     method,
			URL:        target,
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Body:       resBody,
		}
	}

	if response == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}
	if len(bytes.TrimSpace(resBody)) == 0 {
		return fmt.Errorf("failed to decode %s %s: %w", method, endpoint, ErrEmptyBody)
	}
	if err := json.Unmarshal(resBody, response); err != nil {
		return fmt.Errorf("failed to decode %s %s: %w", method, endpoint, err)
	}

	return nil
}

func applyCredentials(req *http.Request, creds Credentials) {
	if creds.SessionID != "" {
		req.AddCookie(&http.Cookie{Name: config.SESSION_COOKIE_NAME, Value: creds.SessionID})
	}
	if creds.CSRFToken == "" {
		return
	}
	req.AddCookie(&http.Cookie{Name: config.CSRF_COOKIE_NAME, Value: creds.CSRFToken})
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		req.Header.Set(config.CSRF_HEADER_NAME, creds.CSRFToken)
	}
}
