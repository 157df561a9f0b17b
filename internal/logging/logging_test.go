package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseFormatter(t *testing.T) {
	tests := []struct {
		format string
		want   log.Formatter
		err    bool
	}{
		{format: "", want: log.TextFormatter},
		{format: "text", want: log.TextFormatter},
		{format: "JSON", want: log.JSONFormatter},
		{format: "logfmt", want: log.LogfmtFormatter},
		{format: "xml", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := ParseFormatter(tt.format)
			if tt.err {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Fatalf("expected ErrInvalidFormat, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseFormatter(%q) = %v, %v", tt.format, got, err)
			}
		})
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn", "text")
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown", "key", "todos")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=todos") {
		t.Errorf("expected warn message with fields, got %q", out)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "debug", "json")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Debug("synced todos", "count", 3)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "synced todos" {
		t.Errorf("unexpected msg %v", entry["msg"])
	}
	if entry["prefix"] != Prefix {
		t.Errorf("unexpected prefix %v", entry["prefix"])
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud", "text"); err == nil {
		t.Error("expected error for unknown level")
	}
}
