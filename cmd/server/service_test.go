package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/wikilabels-gadget/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"lib/oojs-ui/oojs-ui-mediawiki.css": "a{}",
		"lib/codemirror/codemirror.css":     "b{}",
		"css/form_builder.css":              "c{}",
		"css/wikilabels.css":                "d{}",
		"js/wikilabels.gadget.js":           "app();",
		"js/wikilabels.loader.js":           "load();",
	}
	for key, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(key))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("MkdirAll() error = %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}

	cfg := &config.Config{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Logging.Level = "error"
	cfg.Storage.BasePath = dir
	warm := true
	cfg.Assets.Warm = &warm
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	// Bind an ephemeral port.
	cfg.Server.Port = 0
	return cfg
}

func TestBuildHandler(t *testing.T) {
	cfg := testConfig(t)

	runtime, err := NewRuntime(cfg)
	if err != nil {
		t.Fatalf("NewRuntime() error = %v", err)
	}
	if err := runtime.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	handler, err := buildHandler(runtime, cfg)
	if err != nil {
		t.Fatalf("buildHandler() error = %v", err)
	}

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	if w := get("/readyz"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("/readyz before startup = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}

	runtime.Lifecycle.WaitForStartup()

	tests := []struct {
		path        string
		status      int
		contentType string
		body        string
	}{
		{"/healthz", http.StatusOK, "", "OK"},
		{"/readyz", http.StatusOK, "", "READY"},
		{"/gadget/style.css", http.StatusOK, "text/css", "a{}b{}c{}d{}"},
		{"/gadget/application.js", http.StatusOK, "application/javascript", "app();"},
		{"/gadget/loader.js", http.StatusOK, "application/javascript", "load();"},
		{"/gadget/", http.StatusOK, "text/html; charset=utf-8", ""},
		{"/gadget", http.StatusMovedPermanently, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(tt.path)
			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			if tt.contentType != "" && w.Header().Get("Content-Type") != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", w.Header().Get("Content-Type"), tt.contentType)
			}
			if tt.body != "" && w.Body.String() != tt.body {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.body)
			}
			if w.Header().Get("X-Request-ID") == "" {
				t.Error("X-Request-ID header missing")
			}
		})
	}

	w := get("/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("/metrics status = %d, want %d", w.Code, http.StatusOK)
	}
	body, _ := io.ReadAll(w.Result().Body)
	if !strings.Contains(string(body), `gadget_cache_lookups_total{category="stylesheet",outcome="hit"}`) {
		t.Error("/metrics missing cache hit sample after warm-up")
	}
}

func TestService_StartShutdown(t *testing.T) {
	cfg := testConfig(t)

	svc, err := NewService(cfg)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	if err := svc.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	resp, err := http.Get("http://" + svc.server.Addr() + "/gadget/loader.js")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if string(body) != "load();" {
		t.Errorf("body = %q, want %q", body, "load();")
	}

	if err := svc.Shutdown(2 * time.Second); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
}
