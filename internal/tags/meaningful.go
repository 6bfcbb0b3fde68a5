// file: internal/tags/meaningful.go
// version: 1.1.0
// guid: 5a6b7c8d-9e0f-1a2b-3c4d-5e6f7a8b9c0d

package tags

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// Patterns that suggest an auto-generated track title.
var genericTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^track\s*\d+$`),
	regexp.MustCompile(`^pt\d+$`),
	regexp.MustCompile(`^part\s*\d+$`),
	regexp.MustCompile(`^audio\s*track\s*\d+$`),
	regexp.MustCompile(`^untitled`),
	regexp.MustCompile(`^unknown`),
	regexp.MustCompile(`^audiobook$`),
	regexp.MustCompile(`^chapter$`),
}

// Keywords that suggest a real chapter or section title.
var meaningfulKeywords = []string{
	"chapter", "prologue", "epilogue", "introduction", "intro",
	"preface", "foreword", "acknowledgment", "appendix",
	"credit", "opening", "closing", "interlude", "excerpt",
	"author", "narrator", "publisher", "copyright",
	"dedication", "contents", "glossary", "note", "afterword",
	"act", "scene", "section", "verse",
}

var (
	reYearTitle    = regexp.MustCompile(`^(19|20)\d\d$`)
	reNumericTitle = regexp.MustCompile(`^\d+$`)
	reTrailingPart = regexp.MustCompile(`[\s_-]*(pt|part)?\d+$`)
)

// IsMeaningfulTitle reports whether an existing track title should be
// preserved when retagging. Generic titles (Track 01, pt003, bare numbers,
// filename echoes) are replaced with the book title; chapter-like titles are
// kept. filename may be empty.
//
// Rules fire in a fixed order; years (1900-2099) are checked before the
// bare-number rule so "1984" stays a valid chapter title while "42" does not.
func IsMeaningfulTitle(title, filename string) bool {
	if strings.TrimSpace(title) == "" {
		return false
	}

	lower := strings.ToLower(strings.TrimSpace(title))

	if reYearTitle.MatchString(lower) {
		return true
	}
	if reNumericTitle.MatchString(lower) {
		return false
	}

	for _, p := range genericTitlePatterns {
		if p.MatchString(lower) {
			return false
		}
	}

	// A title that is just the filename echoed back carries no information.
	if filename != "" {
		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
		stem = reTrailingPart.ReplaceAllString(stem, "")
		if reTrailingPart.ReplaceAllString(lower, "") == stem {
			return false
		}
	}

	for _, kw := range meaningfulKeywords {
		if strings.Contains(lower, kw) && lower != kw {
			return true
		}
	}

	if len(strings.Fields(title)) > 3 {
		return true
	}

	if hasMixedCase(title) && len(title) > 5 {
		return true
	}

	// Default bias toward preservation.
	return len(title) > 10
}

// hasMixedCase reports whether s is neither all-upper nor all-lower.
func hasMixedCase(s string) bool {
	hasUpper := false
	hasLower := false
	for _, r := range s {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsLower(r) {
			hasLower = true
		}
	}
	return hasUpper && hasLower
}
