// Package client is the typed access layer for the marketplace backend: one
// service group per backend resource, each method performing exactly one HTTP
// call through a shared bearer-authenticated transport.
//
// The layer never retries, never caches, and never classifies errors — a
// failed call surfaces as *APIError (HTTP status answered) or a wrapped
// transport error (no response), and the caller owns user-visible messaging.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/movehub/marketplace-client/internal/client/metrics"
)

// TokenSource supplies the bearer credential attached to outgoing requests.
// Token reports false when no credential is available, in which case the
// request is sent unauthenticated.
type TokenSource interface {
	Token() (string, bool)
}

// TokenSourceFunc adapts a function to the TokenSource interface.
type TokenSourceFunc func() (string, bool)

func (f TokenSourceFunc) Token() (string, bool) { return f() }

// Transport performs HTTP calls against the backend: base URL resolution,
// JSON codec, bearer header, metrics and debug logging. All service groups
// share one Transport.
type Transport struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     zerolog.Logger
}

// TransportOption customises a Transport at construction time.
type TransportOption func(*Transport)

// WithHTTPClient replaces the default HTTP client (30s timeout).
func WithHTTPClient(hc *http.Client) TransportOption {
	return func(t *Transport) { t.http = hc }
}

// WithTokenSource sets the source of the bearer credential.
func WithTokenSource(src TokenSource) TransportOption {
	return func(t *Transport) { t.tokens = src }
}

// WithLogger sets the logger used for per-request debug traces.
func WithLogger(log zerolog.Logger) TransportOption {
	return func(t *Transport) { t.log = log }
}

// NewTransport creates a Transport rooted at baseURL.
func NewTransport(baseURL string, opts ...TransportOption) *Transport {
	t := &Transport{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// do performs one HTTP round trip and returns the raw response body. Status
// codes >= 400 are converted to *APIError; everything else is returned as-is.
func (t *Transport) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	target := t.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.tokens != nil {
		if tok, ok := t.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	start := time.Now()
	resp, err := t.http.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		metrics.RequestErrorsTotal.WithLabelValues(method).Inc()
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RequestErrorsTotal.WithLabelValues(method).Inc()
		return nil, fmt.Errorf("read %s %s: %w", method, path, err)
	}

	metrics.RequestsTotal.WithLabelValues(method, statusClass(resp.StatusCode)).Inc()
	metrics.RequestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
	t.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", elapsed).
		Msg("api request")

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, newAPIError(resp.StatusCode, data)
	}
	return data, nil
}

func statusClass(code int) string {
	return fmt.Sprintf("%dxx", code/100)
}

// Do performs one call and decodes the JSON response into T. An empty body
// decodes to the zero value.
func Do[T any](ctx context.Context, t *Transport, method, path string, body any) (T, error) {
	return DoQuery[T](ctx, t, method, path, nil, body)
}

// DoQuery is Do with an explicit query string.
func DoQuery[T any](ctx context.Context, t *Transport, method, path string, query url.Values, body any) (T, error) {
	var out T
	data, err := t.do(ctx, method, path, query, body)
	if err != nil {
		return out, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return out, nil
}

// DoNoContent performs one call whose response body, if any, is discarded.
// Used for delete/logout style endpoints that answer success-or-throw.
func DoNoContent(ctx context.Context, t *Transport, method, path string, body any) error {
	_, err := t.do(ctx, method, path, nil, body)
	return err
}

// DoList performs a GET and normalizes the answer through NormalizeList, so
// callers receive a plain slice whether the backend sent a bare array or a
// paginated envelope.
func DoList[T any](ctx context.Context, t *Transport, path string, query url.Values) ([]T, error) {
	data, err := t.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	items, err := NormalizeList[T](data)
	if err != nil {
		return nil, fmt.Errorf("decode GET %s: %w", path, err)
	}
	return items, nil
}

// DoRaw performs one call and returns the raw body bytes (binary exports).
func DoRaw(ctx context.Context, t *Transport, method, path string, query url.Values) ([]byte, error) {
	return t.do(ctx, method, path, query, nil)
}
