package diffutil

import (
	"strings"
	"testing"
)

func TestUnified(t *testing.T) {
	old := "line one\nline two\nline three\n"
	updated := "line one\nline TWO\nline three\n"

	got, err := Unified(old, updated, "example.txt")
	if err != nil {
		t.Fatalf("Unified() error = %v", err)
	}
	if got == "" {
		t.Fatal("Unified() returned empty diff for differing content")
	}
	for _, want := range []string{"--- example.txt", "+++ example.txt", "-line two", "+line TWO"} {
		if !strings.Contains(got, want) {
			t.Errorf("Unified() missing %q in:\n%s", want, got)
		}
	}
}

func TestUnifiedIdenticalContent(t *testing.T) {
	content := "unchanged\n"
	got, err := Unified(content, content, "same.txt")
	if err != nil {
		t.Fatalf("Unified() error = %v", err)
	}
	if got != "" {
		t.Errorf("Unified() = %q, want empty diff for identical content", got)
	}
}
