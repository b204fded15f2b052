package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second

	// DefaultMaxBodyBytes aplica cuando Options.MaxBodyBytes <= 0.
	DefaultMaxBodyBytes int64 = 1 << 20
)

var ErrNilClient = errors.New("httpclient: nil client")

// Client envuelve *http.Client con helpers JSON para los servicios que
// consumen el backend REST.
type Client struct {
	HTTP         *http.Client
	BaseURL      string // sin "/" final; permite paths relativos
	MaxBodyBytes int64
}

type Options struct {
	BaseURL      string
	Timeout      time.Duration
	MaxBodyBytes int64
	Transport    http.RoundTripper // opcional (tests)
}

// New valida BaseURL (si viene) y aplica DefaultTimeout cuando Timeout <= 0.
func New(opts Options) (*Client, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	limit := opts.MaxBodyBytes
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}

	c := &Client{
		HTTP: &http.Client{
			Timeout:   timeout,
			Transport: opts.Transport,
		},
		MaxBodyBytes: limit,
	}

	base := strings.TrimSpace(opts.BaseURL)
	if base == "" {
		return c, nil
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	c.BaseURL = strings.TrimRight(base, "/")
	return c, nil
}

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// BodyTooLargeError: respuesta 2xx cuyo body supera MaxBodyBytes. No se
// decodifica un body cortado.
type BodyTooLargeError struct {
	Limit int64
}

func (e *BodyTooLargeError) Error() string {
	return fmt.Sprintf("httpclient: response body exceeds %d bytes", e.Limit)
}

// StatusCode extrae el status de un *HTTPError envuelto en err.
func StatusCode(err error) (int, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode, true
	}
	return 0, false
}

// GetJSON es un atajo para GET sin body.
func (c *Client) GetJSON(ctx context.Context, pathOrURL string, headers map[string]string, out any) error {
	return c.DoJSON(ctx, http.MethodGet, pathOrURL, headers, nil, out)
}

// GetRaw devuelve el body 2xx sin decodificar; el caller decide cómo
// interpretarlo.
func (c *Client) GetRaw(ctx context.Context, pathOrURL string, headers map[string]string) ([]byte, error) {
	return c.Do(ctx, http.MethodGet, pathOrURL, headers, nil)
}

// DoJSON hace un request JSON y decodifica la respuesta en out
// (nil o body vacío => no se decodifica).
func (c *Client) DoJSON(
	ctx context.Context,
	method string,
	pathOrURL string,
	headers map[string]string,
	in any,
	out any,
) error {
	raw, err := c.Do(ctx, method, pathOrURL, headers, in)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}
	return nil
}

// Do manda el request y devuelve el body crudo.
// Status fuera de 2xx => *HTTPError (body recortado a MaxBodyBytes).
// Body 2xx más grande que MaxBodyBytes => *BodyTooLargeError.
func (c *Client) Do(
	ctx context.Context,
	method string,
	pathOrURL string,
	headers map[string]string,
	in any,
) ([]byte, error) {
	if c == nil || c.HTTP == nil {
		return nil, ErrNilClient
	}

	fullURL, err := c.resolveURL(pathOrURL)
	if err != nil {
		return nil, err
	}

	req, err := newRequest(ctx, method, fullURL, in)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		if strings.TrimSpace(k) == "" {
			continue
		}
		req.Header.Set(k, v)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	limit := c.MaxBodyBytes
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}
	// un byte extra para detectar que el body no entra
	raw, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}
	truncated := int64(len(raw)) > limit
	if truncated {
		raw = raw[:limit]
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}
	if truncated {
		return nil, &BodyTooLargeError{Limit: limit}
	}
	return raw, nil
}

func newRequest(ctx context.Context, method, fullURL string, in any) (*http.Request, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("httpclient: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *Client) resolveURL(pathOrURL string) (string, error) {
	pathOrURL = strings.TrimSpace(pathOrURL)
	if pathOrURL == "" {
		return "", errors.New("httpclient: empty url")
	}

	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL, nil
	}

	if c.BaseURL == "" {
		return "", errors.New("httpclient: relative path requires BaseURL")
	}

	if !strings.HasPrefix(pathOrURL, "/") {
		pathOrURL = "/" + pathOrURL
	}
	return c.BaseURL + pathOrURL, nil
}
