package clocked_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tiliavir/clocked/internal/clocked"
)

func TestBearerAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer secret")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"status":"in","_id":"2024-01-01T09:00:00Z"}]`))
	}))
	defer srv.Close()

	client := clocked.NewClient(context.Background(), clocked.Options{
		BaseURL: srv.URL,
		APIKey:  "secret",
		Auth:    clocked.AuthBearer,
	})
	events, err := client.ListEvents(context.Background())
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("events = %d, want 1", len(events))
	}
}
