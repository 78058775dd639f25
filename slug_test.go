package main

import (
	"strings"
	"testing"
)

func TestDefaultSlugger(t *testing.T) {
	s := defaultSlugger()

	got, err := s.Normalize("Systems Programming")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got == "" {
		t.Fatal("empty slug")
	}
	if strings.Contains(got, " ") {
		t.Fatalf("slug contains spaces: %q", got)
	}
	if got != strings.ToLower(got) {
		t.Fatalf("slug is not lowercase: %q", got)
	}
}
