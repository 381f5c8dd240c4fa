package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/JaimeStill/wikilabels-gadget/pkg/logging"
)

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatText}, &buf)

	logger.Info("hello", "key", "value")

	out := buf.String()
	if !strings.Contains(out, "msg=hello") {
		t.Errorf("text output = %q, want msg=hello", out)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatJSON}, &buf)

	logger.Info("hello")

	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Errorf("json output = %q, want msg field", buf.String())
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&logging.Config{Level: logging.LevelWarn, Format: logging.FormatText}, &buf)

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("info message written at warn level: %q", buf.String())
	}
}

func TestLevel_ToSlogLevel(t *testing.T) {
	tests := []struct {
		level    logging.Level
		expected slog.Level
	}{
		{logging.LevelDebug, slog.LevelDebug},
		{logging.LevelInfo, slog.LevelInfo},
		{logging.LevelWarn, slog.LevelWarn},
		{logging.LevelError, slog.LevelError},
		{logging.Level("unknown"), slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := tt.level.ToSlogLevel(); got != tt.expected {
				t.Errorf("ToSlogLevel() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestConfig_Finalize(t *testing.T) {
	env := &logging.Env{Level: "TEST_LOG_LEVEL", Format: "TEST_LOG_FORMAT"}

	t.Run("defaults", func(t *testing.T) {
		cfg := &logging.Config{}
		if err := cfg.Finalize(env); err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}
		if cfg.Level != logging.LevelInfo {
			t.Errorf("Level = %q, want %q", cfg.Level, logging.LevelInfo)
		}
		if cfg.Format != logging.FormatText {
			t.Errorf("Format = %q, want %q", cfg.Format, logging.FormatText)
		}
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv("TEST_LOG_LEVEL", "DEBUG")
		t.Setenv("TEST_LOG_FORMAT", "json")

		cfg := &logging.Config{}
		if err := cfg.Finalize(env); err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}
		if cfg.Level != logging.LevelDebug {
			t.Errorf("Level = %q, want %q", cfg.Level, logging.LevelDebug)
		}
		if cfg.Format != logging.FormatJSON {
			t.Errorf("Format = %q, want %q", cfg.Format, logging.FormatJSON)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		cfg := &logging.Config{Format: "xml"}
		if err := cfg.Finalize(nil); err == nil {
			t.Error("Finalize() error = nil, want error for invalid format")
		}
	})
}

func TestConfig_Merge(t *testing.T) {
	base := &logging.Config{Level: logging.LevelInfo, Format: logging.FormatText}
	base.Merge(&logging.Config{Format: logging.FormatJSON})

	if base.Level != logging.LevelInfo {
		t.Errorf("Level = %q, want %q (should not change)", base.Level, logging.LevelInfo)
	}
	if base.Format != logging.FormatJSON {
		t.Errorf("Format = %q, want %q (should merge)", base.Format, logging.FormatJSON)
	}
}
