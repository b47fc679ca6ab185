package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestClient wires a Client against a handler that records the request.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)
	return New(srv.URL), srv.Close
}

func TestAuthService_Login_PostsCredentials(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]string
	c, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access":"A","refresh":"R"}`))
	})
	defer done()

	pair, err := c.Auth.Login(context.Background(), "u@x.com", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/auth/login/" {
		t.Fatalf("unexpected request: %s %s", gotMethod, gotPath)
	}
	if gotBody["email"] != "u@x.com" || gotBody["password"] != "pw" {
		t.Fatalf("unexpected body: %+v", gotBody)
	}
	if pair.Access != "A" || pair.Refresh != "R" {
		t.Fatalf("unexpected pair: %+v", pair)
	}
}

func TestPricingService_ItemTypes_NormalizesEnvelope(t *testing.T) {
	c, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movers/item-types/" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count":1,"next":null,"previous":null,"results":[{"id":"it-sofa","name":"Sofa","base_price":45,"effective_price":40,"has_override":true}]}`))
	})
	defer done()

	items, err := c.Pricing.ItemTypes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].ID != "it-sofa" || !items[0].HasOverride {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestPricingService_ItemTypes_NormalizesBareArray(t *testing.T) {
	c, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"it-sofa","name":"Sofa"}]`))
	})
	defer done()

	items, err := c.Pricing.ItemTypes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].ID != "it-sofa" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestAnalyticsService_RevenueSeries_SendsGranularity(t *testing.T) {
	var gotGranularity string
	c, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotGranularity = r.URL.Query().Get("granularity")
		_, _ = w.Write([]byte(`[{"period":"2026-07","revenue":1200,"orders":14}]`))
	})
	defer done()

	points, err := c.Analytics.RevenueSeries(context.Background(), "monthly")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotGranularity != "monthly" {
		t.Fatalf("granularity not sent, got %q", gotGranularity)
	}
	if len(points) != 1 || points[0].Revenue != 1200 {
		t.Fatalf("unexpected points: %+v", points)
	}
}

func TestNotificationService_UnreadCount(t *testing.T) {
	c, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/notifications/unread-count/" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"count":7}`))
	})
	defer done()

	count, err := c.Notifications.UnreadCount(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 7 {
		t.Fatalf("unexpected count: %d", count)
	}
}

func TestQuoteService_Accept_PostsToActionPath(t *testing.T) {
	var gotMethod, gotPath string
	c, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		_, _ = w.Write([]byte(`{"id":"q1","status":"accepted"}`))
	})
	defer done()

	quote, err := c.Quotes.Accept(context.Background(), "q1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/quotes/q1/accept/" {
		t.Fatalf("unexpected request: %s %s", gotMethod, gotPath)
	}
	if quote.Status != "accepted" {
		t.Fatalf("unexpected quote: %+v", quote)
	}
}

func TestMoverAdminService_Reject_SendsReason(t *testing.T) {
	var gotBody map[string]string
	c, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		_, _ = w.Write([]byte(`{"id":"m1","status":"rejected"}`))
	})
	defer done()

	acc, err := c.Movers.Reject(context.Background(), "m1", "incomplete insurance papers")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotBody["reason"] != "incomplete insurance papers" {
		t.Fatalf("reason not sent: %+v", gotBody)
	}
	if acc.Status != "rejected" {
		t.Fatalf("unexpected account: %+v", acc)
	}
}
