package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"  short  ", 10, "short"},
		{"abcdef", 0, "abcdef"},
		{"abcdef", 2, "ab"},
		{"abcdefghij", 6, "abc..."},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.limit); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestTruncateName(t *testing.T) {
	if got := truncateName("  ", 10); got != "" {
		t.Fatalf("truncateName blank = %q, want empty", got)
	}
	if got := truncateName("book.pdf", 20); got != "book.pdf" {
		t.Fatalf("truncateName short = %q, want unchanged", got)
	}
	got := truncateName("a-very-long-volume-title.pdf", 16)
	if got != "a-ver…-title.pdf" {
		t.Fatalf("truncateName = %q, want %q", got, "a-ver…-title.pdf")
	}
	if n := len([]rune(got)); n != 16 {
		t.Fatalf("truncateName length = %d, want 16", n)
	}
}
