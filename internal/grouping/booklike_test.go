// file: internal/grouping/booklike_test.go
// version: 1.0.0
// guid: c4d5e6f7-a8b9-0c1d-2e3f-4a5b6c7d8e9f

package grouping

import "testing"

func TestIsBookLikeName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		// Exact organizational names
		{"audiobooks", false},
		{"Audiobooks", false},
		{"incoming", false},
		{"temp", false},
		// Substring rejections, intentionally aggressive
		{"Audio.Books.incoming", false},
		{"audiobook_downloads", false},
		{"processing_queue", false},
		{"My Audio Collection", false},
		// Too short or numeric
		{"a", false},
		{"123", false},
		{"12 34", false},
		{"", false},
		// Real titles
		{"The Great Gatsby", true},
		{"Dune", true},
		{"1984 Annotated", true},
		{"Pride and Prejudice", true},
	}
	for _, tt := range tests {
		if got := IsBookLikeName(tt.name); got != tt.want {
			t.Errorf("IsBookLikeName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
