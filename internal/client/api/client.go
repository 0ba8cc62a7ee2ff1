// Package api is the single network choke point of the client. Every call
// goes through one request path that injects the bearer token read from the
// session at send time, translates HTTP failures into typed errors, and
// tears the session down on any 401 so an expired token can never leave the
// UI half-authenticated.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dangtv/coinclub/internal/logging"
)

// Session is the slice of the session state the client needs: the current
// token and the teardown hook for 401 responses.
type Session interface {
	Token() string
	ClearAuth(ctx context.Context) error
}

// Client talks to the coinclub backend.
type Client struct {
	baseURL string
	http    *http.Client
	session Session
	log     logging.Logger
}

// New builds a client for the given base URL ("http://host:port", no
// trailing slash required).
func New(baseURL string, sess Session, log logging.Logger) *Client {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		session: sess,
		log:     log,
	}
}

func (c *Client) url(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// authorize injects the bearer header. The token is read from the session at
// send time, never from a request parameter, so every in-flight request
// observes the token value current when it left.
func (c *Client) authorize(req *http.Request) {
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// do performs a JSON round trip. body and out may be nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	return c.roundTrip(ctx, req, out)
}

// doMultipart uploads a single file field. The content type is left to the
// multipart writer.
func (c *Client) doMultipart(ctx context.Context, path, field, filename string, content io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("build multipart: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return fmt.Errorf("build multipart: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("build multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path, nil), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.authorize(req)

	return c.roundTrip(ctx, req, out)
}

// doRaw fetches a binary body (KYC images) and returns it with its content
// type.
func (c *Client) doRaw(ctx context.Context, path string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path, nil), nil)
	if err != nil {
		return nil, "", err
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(ctx, resp); err != nil {
		return nil, "", err
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	return data, resp.Header.Get("Content-Type"), nil
}

func (c *Client) roundTrip(ctx context.Context, req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(ctx, resp); err != nil {
		return err
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	// Empty bodies resolve fine; only real payloads are decoded.
	if len(data) == 0 || out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

// checkStatus maps the response status to the error taxonomy. On 401 - from
// ANY endpoint - the session is torn down before the error is returned.
func (c *Client) checkStatus(ctx context.Context, resp *http.Response) error {
	if resp.StatusCode == http.StatusUnauthorized {
		c.log.Info(ctx, "401 received, clearing session", "path", resp.Request.URL.Path)
		if err := c.session.ClearAuth(ctx); err != nil {
			c.log.Warn(ctx, "session teardown failed", "error", err)
		}
		return ErrUnauthorized
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return &RequestError{Status: resp.StatusCode, Message: errorMessage(resp)}
}

// errorMessage pulls a display message out of a JSON error body, trying the
// two field names servers have used, and falls back to "HTTP <status>".
func errorMessage(resp *http.Response) string {
	fallback := fmt.Sprintf("HTTP %d", resp.StatusCode)

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(data) == 0 {
		return fallback
	}
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return fallback
	}
	if body.Error != "" {
		return body.Error
	}
	if body.Message != "" {
		return body.Message
	}
	return fallback
}
