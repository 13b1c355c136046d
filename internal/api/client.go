// Package api wraps the storefront backend's REST surface in three resource
// clients (products, orders, users) that share one request core. Calls are
// plain request/response: no retry, no timeout policy, no caching. Callers
// sequence and refresh as they see fit.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	applog "tiendita/internal/log"
)

// TokenSource yields the bearer token for the active session, if any.
type TokenSource interface {
	Token() (string, bool)
}

// Client is the shared request core. BaseURL must end with a slash.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Tokens  TokenSource
}

func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{BaseURL: baseURL, HTTP: http.DefaultClient, Tokens: tokens}
}

const fallbackMessage = "Error en la solicitud"

// doJSON performs a JSON request. When auth is set, a missing token fails
// with ErrMissingToken before any network activity. out may be nil when the
// caller does not need the body.
func (c *Client) doJSON(ctx context.Context, method, path string, auth bool, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.send(req, path, auth, out)
}

// doMultipart performs a multipart/form-data request (product create/update,
// which carry an image). A nil image still sends the remaining fields.
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, image *ImageFile, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return err
		}
	}
	if image != nil {
		part, err := w.CreateFormFile("image", image.Name)
		if err != nil {
			return err
		}
		_, cerr := io.Copy(part, image.Content)
		// The content is fully buffered at this point; an upload handle must
		// not outlive the request that drained it.
		if rc, ok := image.Content.(io.Closer); ok {
			rc.Close()
		}
		if cerr != nil {
			return cerr
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.send(req, path, true, out)
}

// ImageFile is binary product image content for multipart uploads. Content is
// closed by the client after the upload when it implements io.Closer.
type ImageFile struct {
	Name    string
	Content io.Reader
}

func (c *Client) send(req *http.Request, path string, auth bool, out any) error {
	if auth {
		tok, ok := c.Tokens.Token()
		if !ok || tok == "" {
			applog.Error(nil, "api.token.missing", ErrMissingToken, map[string]any{"path": path})
			return ErrMissingToken
		}
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		applog.Error(nil, "api.request.fail", err, map[string]any{"path": path})
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The error body is always attempted as structured data first.
		msg := fallbackMessage
		var errBody struct {
			Message string `json:"message"`
		}
		if b, rerr := io.ReadAll(resp.Body); rerr == nil {
			if json.Unmarshal(b, &errBody) == nil && errBody.Message != "" {
				msg = errBody.Message
			}
		}
		reqErr := &RequestError{StatusCode: resp.StatusCode, Message: msg}
		applog.Error(nil, "api.request.fail", reqErr, map[string]any{"path": path})
		return reqErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		derr := &DecodeError{What: "response body", Err: err}
		applog.Error(nil, "api.decode.fail", derr, map[string]any{"path": path})
		return derr
	}
	return nil
}
