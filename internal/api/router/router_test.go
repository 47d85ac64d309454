package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kaptiva-io/lead-listener/internal/extraction"
	"github.com/kaptiva-io/lead-listener/internal/webhook"
)

type stubExtractor struct{}

func (stubExtractor) Extract(ctx context.Context, message string) extraction.Result {
	return extraction.Result{FullName: "Jane Doe"}
}

type stubRecorder struct{}

func (stubRecorder) Persist(ctx context.Context, result extraction.Result, worksheetTitle string) (bool, error) {
	return true, nil
}

func newTestRouter() http.Handler {
	h := webhook.NewHandler(
		webhook.NewValidator("120363403986445201@g.us"),
		stubExtractor{},
		stubRecorder{},
		"",
		nil,
		nil,
	)
	return New(&Config{WebhookHandler: h})
}

func TestHealthRoute(t *testing.T) {
	r := newTestRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestWebhookRoutes(t *testing.T) {
	r := newTestRouter()
	for _, path := range []string{"/webhook", "/webhook/evolution/instance-1"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{}`)))

		if w.Code != http.StatusOK {
			t.Errorf("%s: expected status %d, got %d", path, http.StatusOK, w.Code)
		}
	}
}

func TestWebhookRejectsGet(t *testing.T) {
	r := newTestRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/webhook", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status %d, got %d", http.StatusMethodNotAllowed, w.Code)
	}
}
