package ui

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"  padded  ", 10, "padded"},
		{"Employment and earnings", 10, "Employm..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestTruncateMiddleKeepsBothEnds(t *testing.T) {
	got := truncateMiddle("https://members-api.parliament.uk/api/Members/172/Portrait", 21)
	if len([]rune(got)) != 21 {
		t.Fatalf("expected 21 runes, got %d (%q)", len([]rune(got)), got)
	}
	if !strings.HasPrefix(got, "https://me") || !strings.HasSuffix(got, "/Portrait") {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := truncateMiddle("short", 21); got != "short" {
		t.Fatalf("short value changed: %q", got)
	}
}

func TestWrap(t *testing.T) {
	if got := wrap("   ", 10); got != nil {
		t.Fatalf("blank text should wrap to nil, got %#v", got)
	}
	lines := wrap("one two three four five", 9)
	if len(lines) < 2 {
		t.Fatalf("expected multiple lines, got %#v", lines)
	}
	for _, line := range lines {
		if len(line) > 9 {
			t.Fatalf("line %q wider than 9", line)
		}
	}
	if got := wrap("unbounded text", 0); len(got) != 1 || got[0] != "unbounded text" {
		t.Fatalf("width 0 should not wrap, got %#v", got)
	}
}
