package gadget_test

import (
	"testing"

	"github.com/JaimeStill/wikilabels-gadget/internal/gadget"
)

func TestConfig_Finalize(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		want    string
		wantErr bool
	}{
		{"default", "", "/gadget", false},
		{"custom", "/labels/gadget", "/labels/gadget", false},
		{"root", "/", "", false},
		{"relative", "gadget", "", true},
		{"trailing slash", "/gadget/", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &gadget.Config{BasePath: tt.base}
			err := cfg.Finalize(nil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Finalize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && cfg.BasePath != tt.want {
				t.Errorf("BasePath = %q, want %q", cfg.BasePath, tt.want)
			}
		})
	}
}

func TestConfig_Finalize_Env(t *testing.T) {
	t.Setenv("TEST_GADGET_BASE_PATH", "/wikilabels/gadget")

	cfg := &gadget.Config{}
	if err := cfg.Finalize(&gadget.Env{BasePath: "TEST_GADGET_BASE_PATH"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if cfg.BasePath != "/wikilabels/gadget" {
		t.Errorf("BasePath = %q, want %q", cfg.BasePath, "/wikilabels/gadget")
	}
}

func TestConfig_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		path     string
		expected bool
	}{
		{"bare prefix", "/gadget", "/gadget", true},
		{"ancestor", "/labels/gadget", "/labels", true},
		{"asset route", "/gadget", "/gadget/loader.js", true},
		{"index", "/gadget", "/gadget/", true},
		{"sibling", "/gadget", "/healthz", false},
		{"name prefix", "/gadget", "/gadgets", false},
		{"unrelated subpath", "/gadget", "/gadget/metrics", false},
		{"root mount asset", "/", "/style.css", true},
		{"root mount other", "/", "/healthz", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &gadget.Config{BasePath: tt.base}
			if err := cfg.Finalize(nil); err != nil {
				t.Fatalf("Finalize() error = %v", err)
			}
			if got := cfg.Overlaps(tt.path); got != tt.expected {
				t.Errorf("Overlaps(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}
