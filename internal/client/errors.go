package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is an HTTP error status answered by the backend, carrying the
// server-supplied structured detail when one was present.
type APIError struct {
	StatusCode int
	// Detail is the human-readable message extracted from the response body
	// (detail/error/message field), or the HTTP status text as a fallback.
	Detail string
	// Body is the raw error payload for callers that need the full shape.
	Body json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Detail)
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: status,
		Detail:     http.StatusText(status),
	}
	if len(body) > 0 {
		apiErr.Body = json.RawMessage(append([]byte(nil), body...))
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return apiErr
	}
	for _, key := range []string{"detail", "error", "message"} {
		if msg, ok := payload[key].(string); ok && strings.TrimSpace(msg) != "" {
			apiErr.Detail = msg
			break
		}
	}
	return apiErr
}
