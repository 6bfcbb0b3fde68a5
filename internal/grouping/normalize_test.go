// file: internal/grouping/normalize_test.go
// version: 1.0.0
// guid: a2b3c4d5-e6f7-8a9b-0c1d-2e3f4a5b6c7d

package grouping

import "testing"

func TestNormalizeStem(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"01-The_Hobbit", "the hobbit"},
		{"01-The_Hobbit.mp3", "the hobbit"},
		{"Harry Potter 01", "harry potter"},
		{"Harry Potter 02", "harry potter"},
		{"The Great Gatsby", "the great gatsby"},
		{"book1_01", "book1"},
		{"Chapter 12", ""},
		{"Part 3", ""},
		{"CD2", ""},
		{"my-book---vol-2", "my book"},
		{"", ""},
		{"   ", ""},
		{"12345", ""},
	}
	for _, tt := range tests {
		if got := NormalizeStem(tt.input); got != tt.want {
			t.Errorf("NormalizeStem(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// Word-boundary behavior: "track" survives when glued to the rest of the
// stem with underscores, because token removal runs before separators are
// collapsed.
func TestNormalizeStem_TokenBoundaries(t *testing.T) {
	if got := NormalizeStem("Track_01_Introduction"); got != "track 01 introduction" {
		t.Errorf("underscore-glued token was stripped: got %q", got)
	}
	if got := NormalizeStem("Track 01 Introduction"); got != "introduction" {
		t.Errorf("whole-word token survived: got %q", got)
	}
}

func TestNormalizeStem_Idempotent(t *testing.T) {
	// Representative real-world stems; normalization should be stable on
	// its own output for these.
	corpus := []string{
		"01-The_Hobbit.mp3",
		"Harry Potter 01",
		"The Great Gatsby",
		"Pride and Prejudice",
		"A Game of Thrones (Unabridged)",
		"dune-messiah_05",
		"",
	}
	for _, s := range corpus {
		once := NormalizeStem(s)
		twice := NormalizeStem(once)
		if once != twice {
			t.Errorf("NormalizeStem not idempotent for %q: %q -> %q", s, once, twice)
		}
	}
}
