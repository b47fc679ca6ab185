package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTransport_AttachesBearerWhenPresent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	tr := NewTransport(srv.URL, WithTokenSource(TokenSourceFunc(func() (string, bool) {
		return "tok-123", true
	})))
	if _, err := Do[map[string]any](context.Background(), tr, http.MethodGet, "/auth/profile/", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestTransport_NoBearerWhenAbsent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	tr := NewTransport(srv.URL, WithTokenSource(TokenSourceFunc(func() (string, bool) {
		return "", false
	})))
	if _, err := Do[map[string]any](context.Background(), tr, http.MethodGet, "/quotes/", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no authorization header, got %q", gotAuth)
	}
}

func TestTransport_APIErrorCarriesServerDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"company_name is required for this account type"}`))
	}))
	defer srv.Close()

	tr := NewTransport(srv.URL)
	_, err := Do[map[string]any](context.Background(), tr, http.MethodPost, "/auth/register/", map[string]string{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", apiErr.StatusCode)
	}
	if apiErr.Detail != "company_name is required for this account type" {
		t.Fatalf("unexpected detail: %q", apiErr.Detail)
	}
	if len(apiErr.Body) == 0 {
		t.Fatalf("expected raw body to be preserved")
	}
}

func TestTransport_APIErrorFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	tr := NewTransport(srv.URL)
	_, err := Do[map[string]any](context.Background(), tr, http.MethodGet, "/analytics/dashboard/", nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Detail != http.StatusText(http.StatusBadGateway) {
		t.Fatalf("unexpected detail: %q", apiErr.Detail)
	}
}

func TestTransport_DoNoContentAcceptsEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	tr := NewTransport(srv.URL)
	if err := DoNoContent(context.Background(), tr, http.MethodDelete, "/movers/pricing/ov-1/", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTransport_DoRawReturnsBytesVerbatim(t *testing.T) {
	payload := []byte("date,orders\n2026-01-01,4\n")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	tr := NewTransport(srv.URL)
	data, err := DoRaw(context.Background(), tr, http.MethodGet, "/analytics/export/", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != string(payload) {
		t.Fatalf("raw bytes altered: %q", data)
	}
}

func TestTransport_TransportFailureIsNotAPIError(t *testing.T) {
	tr := NewTransport("http://127.0.0.1:1") // nothing listens here
	_, err := Do[map[string]any](context.Background(), tr, http.MethodGet, "/quotes/", nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("transport failure must not masquerade as an HTTP error")
	}
}
