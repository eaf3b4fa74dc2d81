package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/docuvault/go-doc-manager/internal/config"
	"github.com/docuvault/go-doc-manager/internal/logger"
)

func newSearchClient(t *testing.T, baseURL string) SearchClient {
	t.Helper()
	client, err := NewHTTPSearchClient(config.Search{
		BaseURL:        baseURL,
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	if err != nil {
		t.Fatalf("failed to create search client: %v", err)
	}
	return client
}

func TestGetDocuments_Passthrough(t *testing.T) {
	const upstreamBody = `{"documents":[{"id":1,"title":"First"}],"total":1}`

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/get_documents" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("expected page=2, got %q", got)
		}
		if got := r.URL.Query().Get("limit"); got != "5" {
			t.Errorf("expected limit=5, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(upstreamBody))
	}))
	defer upstream.Close()

	client := newSearchClient(t, upstream.URL)

	body, err := client.GetDocuments(context.Background(), 2, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != upstreamBody {
		t.Errorf("expected body passed through verbatim, got %s", body)
	}
}

func TestGetDocuments_UpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	client := newSearchClient(t, upstream.URL)

	_, err := client.GetDocuments(context.Background(), 1, 10)
	if !errors.Is(err, ErrSearchBadStatus) {
		t.Fatalf("expected ErrSearchBadStatus, got %v", err)
	}
}

func TestGetDocuments_UpstreamUnreachable(t *testing.T) {
	// Closed server: connection refused.
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	client := newSearchClient(t, upstream.URL)

	_, err := client.GetDocuments(context.Background(), 1, 10)
	if !errors.Is(err, ErrSearchRequestFailed) {
		t.Fatalf("expected ErrSearchRequestFailed, got %v", err)
	}
}

func TestNewHTTPSearchClient_InvalidBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
	}{
		{name: "empty", baseURL: ""},
		{name: "spaces only", baseURL: "   "},
		{name: "no host", baseURL: "http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewHTTPSearchClient(config.Search{BaseURL: tt.baseURL}, logger.Nop()); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestNormalizeBaseURL_AddsScheme(t *testing.T) {
	got, err := normalizeBaseURL("localhost:5000/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "http://localhost:5000" {
		t.Errorf("expected http scheme added and trailing slash trimmed, got %q", got)
	}
}
