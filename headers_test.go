package youversion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHeaderTransport_FixedHeaders(t *testing.T) {
	t.Parallel()
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	}))
	defer srv.Close()

	c, err := New("secret-token", WithBaseURL(srv.URL), WithRetryAttempts(1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.SetLanguage("es"); err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}
	if _, err := c.BibleVersions(context.Background()); err != nil {
		t.Fatalf("BibleVersions: %v", err)
	}

	if got.Get("X-Youversion-Developer-Token") != "secret-token" {
		t.Fatalf("token header = %q", got.Get("X-Youversion-Developer-Token"))
	}
	if got.Get("Accept") != "application/json" {
		t.Fatalf("accept header = %q", got.Get("Accept"))
	}
	if got.Get("Accept-Language") != "es" {
		t.Fatalf("accept-language header = %q", got.Get("Accept-Language"))
	}
	if got.Get("X-Request-Id") == "" {
		t.Fatal("request id header missing")
	}
}

func TestHeaderTransport_FreshRequestID(t *testing.T) {
	t.Parallel()
	ids := make(map[string]bool)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids[r.Header.Get("X-Request-Id")] = true
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"id": 1, "abbreviation": "KJV"}},
		})
	}))
	defer srv.Close()

	for i := 0; i < 3; i++ {
		c, err := New("tok", WithBaseURL(srv.URL), WithRetryAttempts(1))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if _, err := c.BibleVersions(context.Background()); err != nil {
			t.Fatalf("BibleVersions: %v", err)
		}
	}
	if len(ids) != 3 {
		t.Fatalf("want 3 distinct request ids, got %d", len(ids))
	}
}
