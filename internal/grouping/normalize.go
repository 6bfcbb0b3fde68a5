// file: internal/grouping/normalize.go
// version: 1.0.0
// guid: 6b7c8d9e-0f1a-2b3c-4d5e-6f7a8b9c0d1e

package grouping

import (
	"regexp"
	"strings"
)

// Numbering and part/chapter noise removed before comparing filename stems.
var (
	reLeadingNumber  = regexp.MustCompile(`^\d+[-_\s.)]*`)
	reTrailingNumber = regexp.MustCompile(`[-_\s]*\d+$`)
	reNoiseToken     = regexp.MustCompile(`(?i)\b(?:pt|part|chapter|ch|track|cd|disc|disk|vol|volume)\b[-_\s]*\d*`)
	reAudioExt       = regexp.MustCompile(`(?i)\.(?:mp3|m4b|m4a|ogg|oga|opus|flac|wma|aac)$`)
	reSeparators     = regexp.MustCompile(`[-_\s]+`)
)

// NormalizeStem reduces a filename stem to a comparison key: numbering and
// part/chapter tokens removed, extension dropped, separators collapsed to
// single spaces, lower-cased.
//
// Token removal happens on the raw separator characters, before separators
// are collapsed. That means "Track_01_Introduction" keeps its "track" prefix
// (underscore is a word character, so no word boundary forms); this ordering
// is load-bearing and covered by tests.
func NormalizeStem(text string) string {
	s := reLeadingNumber.ReplaceAllString(text, "")
	s = reTrailingNumber.ReplaceAllString(s, "")
	s = reNoiseToken.ReplaceAllString(s, "")
	s = reAudioExt.ReplaceAllString(s, "")
	s = reSeparators.ReplaceAllString(s, " ")
	return strings.ToLower(strings.TrimSpace(s))
}
