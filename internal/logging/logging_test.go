package logging

import (
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"", log.InfoLevel},
		{"bogus", log.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q): got %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseFormatter(t *testing.T) {
	if got := ParseFormatter("json"); got != log.JSONFormatter {
		t.Errorf("ParseFormatter(json): got %v, want JSONFormatter", got)
	}
	if got := ParseFormatter("logfmt"); got != log.LogfmtFormatter {
		t.Errorf("ParseFormatter(logfmt): got %v, want LogfmtFormatter", got)
	}
	if got := ParseFormatter(""); got != log.TextFormatter {
		t.Errorf("ParseFormatter(empty): got %v, want TextFormatter", got)
	}
}

func TestTestLoggerWrites(t *testing.T) {
	var buf strings.Builder
	logger := NewTestLogger(&buf)
	logger.Info("archived", "count", 3)

	out := buf.String()
	if !strings.Contains(out, "archived") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, "count") {
		t.Errorf("output missing field: %q", out)
	}
}
