package logger

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New("loud", ""); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNew_WritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	l, err := New("info", path)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	l.Debug("hidden")
	l.Info("visible", zap.Int("port", 3040))
	_ = l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"msg":"visible"`) || !strings.Contains(out, `"port":3040`) {
		t.Fatalf("expected JSON entry in log file, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug entry should be filtered at info level, got %q", out)
	}
}

func TestMiddleware_LogsRequest(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := zap.New(core)

	h := middleware.RequestID(Middleware(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusTeapot)
	})))

	req := httptest.NewRequest(http.MethodPost, "/submit", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	entries := logs.FilterMessage("HTTP Request").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["method"] != http.MethodPost {
		t.Fatalf("expected method POST, got %v", fields["method"])
	}
	if fields["path"] != "/submit" {
		t.Fatalf("expected path /submit, got %v", fields["path"])
	}
	if fields["status"] != int64(http.StatusTeapot) {
		t.Fatalf("expected status 418, got %v", fields["status"])
	}
	if id, _ := fields["request_id"].(string); id == "" {
		t.Fatal("expected request id to be logged")
	}
}

func TestMiddleware_DefaultStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	h := Middleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["status"]; got != int64(http.StatusOK) {
		t.Fatalf("expected status 200, got %v", got)
	}
}
