// file: internal/grouping/booklike.go
// version: 1.0.0
// guid: 8d9e0f1a-2b3c-4d5e-6f7a-8b9c0d1e2f3a

package grouping

import "strings"

// Exact organizational folder names that are never book titles.
var organizationalNames = map[string]bool{
	"audiobooks": true,
	"books":      true,
	"audio":      true,
	"media":      true,
	"downloads":  true,
	"incoming":   true,
	"new":        true,
	"old":        true,
	"temp":       true,
}

// Substrings that mark a staging or container folder. Broader than the exact
// list above and intentionally aggressive: "audiobook_downloads" is rejected
// even though it is not an exact match.
var organizationalSubstrings = []string{
	"incoming", "download", "temp", "new", "old",
	"queue", "processing", "books", "audiobook", "audio",
}

// IsBookLikeName reports whether a directory name plausibly is itself a book
// title rather than an organizational folder. Precision-favoring: a real
// title containing "audio" is rejected, which costs a false negative but
// keeps staging folders from being treated as books.
func IsBookLikeName(name string) bool {
	lower := strings.ToLower(name)

	if organizationalNames[lower] {
		return false
	}
	for _, sub := range organizationalSubstrings {
		if strings.Contains(lower, sub) {
			return false
		}
	}
	if len(name) < 2 || isAllDigits(name) {
		return false
	}

	words := strings.Fields(name)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !isAllDigits(w) {
			return true
		}
	}
	return false
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
