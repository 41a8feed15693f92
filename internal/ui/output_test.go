package ui

import (
	"strings"
	"testing"
)

func TestStatusHelpers(t *testing.T) {
	if got := Success("done"); got != "✓ done" {
		t.Errorf("Success = %q", got)
	}
	if got := Errorf("failed: %d", 2); got != "✗ failed: 2" {
		t.Errorf("Errorf = %q", got)
	}
	if got := Warning("careful"); got != "⚠ careful" {
		t.Errorf("Warning = %q", got)
	}
}

func TestCount(t *testing.T) {
	if got := Count(1, "error", "errors"); got != "(1 error)" {
		t.Errorf("Count(1) = %q", got)
	}
	if got := Count(3, "error", "errors"); got != "(3 errors)" {
		t.Errorf("Count(3) = %q", got)
	}
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("# Title\n\nSome *text*.\n", 80)
	if err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}
	if !strings.Contains(out, "Title") {
		t.Fatalf("rendered output missing heading:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n") || strings.HasSuffix(out, "\n\n") {
		t.Fatal("output should end with exactly one newline")
	}
}
