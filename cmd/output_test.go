package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"gpt-4o-mini", 20, "gpt-4o-mini"},
		{"claude-haiku-4-5-20251001", 12, "claude-haik…"},
		{"ÉÉÉÉ", 3, "ÉÉ…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestFormatCost(t *testing.T) {
	if got := formatCost(0.00042); got != "$0.0004" {
		t.Errorf("small cost = %q", got)
	}
	if got := formatCost(1.234); got != "$1.23" {
		t.Errorf("cost = %q", got)
	}
}

func TestNewTable(t *testing.T) {
	var buf bytes.Buffer
	tbl := newTable(&buf, "Subject", "Answers")
	tbl.Append([]string{"math", "3"})
	tbl.Render()

	out := buf.String()
	for _, want := range []string{"SUBJECT", "ANSWERS", "math", "3"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected table to contain %q:\n%s", want, out)
		}
	}
}
