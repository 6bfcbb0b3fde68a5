// file: internal/query/infer.go
// version: 1.2.0
// guid: 0f1a2b3c-4d5e-6f7a-8b9c-0d1e2f3a4b5c

// Package query turns a group of audio files into a best-guess retailer
// search string, preferring existing tags and falling back to filename and
// directory parsing.
package query

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jeffjose/audtag/internal/tags"
)

// Artist values that carry no information.
var placeholderArtists = map[string]bool{
	"unknown":         true,
	"various artists": true,
}

// Parent directories that are generic containers, never part of a title.
var genericParents = map[string]bool{
	".":                    true,
	"..":                   true,
	"/":                    true,
	"audiobooks":           true,
	"Audiobooks":           true,
	"Audio.Books":          true,
	"Audio.Books.incoming": true,
	"incoming":             true,
}

var (
	reCDSuffix        = regexp.MustCompile(`(?i)[\s_-]*cd[\s_-]?\d+\s*$`)
	reAbridgedSuffix  = regexp.MustCompile(`(?i)[\s_-]*\((?:un)?abridged\)\s*$`)
	reNarratedPrefix  = regexp.MustCompile(`(?i)^narrated by:?\s*`)
	reLeadingNumbers  = regexp.MustCompile(`^\d+[-_\s.)]*`)
	reTrailingPartNum = regexp.MustCompile(`(?i)[-_\s]+(?:\d+|cd[\s_-]?\d*|part[\s_-]?\d*|chapter[\s_-]?\d*)\s*$`)
	reTrailingNoise   = regexp.MustCompile(`(?i)[\s_-]*(?:\((?:un)?abridged\)|audiobook)\s*$`)
	reTrackLikeStem   = regexp.MustCompile(`(?i)^(?:track|cd|part|chapter)?[-_\s]*\d+$`)
	reWhitespace      = regexp.MustCompile(`\s+`)
)

// Infer produces a search query for a group of files. Tags win over
// filenames: the first file with a usable album (then title, then artist)
// tag decides; only when no file yields a tag-based query does the first
// file's stem and parent directory get parsed instead. Never fails —
// unreadable tags just mean "no hint from this file".
func Infer(files []string, reader tags.Reader) string {
	for _, f := range files {
		st, err := reader.ReadSemantic(f)
		if err != nil {
			continue
		}
		if q := queryFromTags(st); q != "" {
			return q
		}
	}
	if len(files) == 0 {
		return ""
	}
	return cleanup(queryFromPath(files[0]))
}

// queryFromTags tries album, then title, then artist. Returns "" when the
// record carries nothing usable.
func queryFromTags(st tags.SemanticTags) string {
	artist := usableArtist(st)

	if album := strings.TrimSpace(st.Album); album != "" {
		album = reCDSuffix.ReplaceAllString(album, "")
		album = reAbridgedSuffix.ReplaceAllString(album, "")
		album = strings.TrimSpace(album)
		if album != "" {
			if artist != "" {
				return cleanup(artist + " " + album)
			}
			return cleanup(album)
		}
	}

	if title := strings.TrimSpace(st.Title); title != "" && !isPlaceholder(title) {
		if artist != "" {
			return cleanup(artist + " " + title)
		}
		return cleanup(title)
	}

	if artist != "" {
		return cleanup(artist)
	}
	return ""
}

// usableArtist prefers album-artist over artist, skipping placeholders.
func usableArtist(st tags.SemanticTags) string {
	for _, candidate := range []string{st.AlbumArtist, st.Artist} {
		candidate = strings.TrimSpace(candidate)
		if candidate != "" && !isPlaceholder(candidate) {
			return candidate
		}
	}
	return ""
}

func isPlaceholder(s string) bool {
	return placeholderArtists[strings.ToLower(strings.TrimSpace(s))]
}

// queryFromPath derives a query from a file's stem and parent directory
// name when no tags were usable.
func queryFromPath(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	parent := filepath.Base(filepath.Dir(path))

	if !genericParents[parent] {
		cleanedParent := strings.TrimSpace(reWhitespace.ReplaceAllString(
			strings.NewReplacer(".", " ", "_", " ").Replace(parent), " "))
		if stemLooksGeneric(stem, cleanedParent) {
			stem = cleanedParent
		} else if len(cleanedParent) > len(stem) && !strings.EqualFold(parent, "audio.books.incoming") {
			stem = cleanedParent + " " + stem
		}
	}

	stem = reLeadingNumbers.ReplaceAllString(stem, "")
	stem = reTrailingPartNum.ReplaceAllString(stem, "")

	if idx := strings.Index(stem, " - "); idx >= 0 {
		// Author - Title and Title - Author cannot be told apart; both
		// halves go into the query as-is.
		return stem[:idx] + " " + stem[idx+3:]
	}

	if idx := indexFold(stem, " by "); idx >= 0 {
		title := strings.TrimSpace(stem[:idx])
		author := strings.TrimSpace(stem[idx+4:])
		return author + " " + title
	}

	stem = strings.NewReplacer("_", " ", ".", " ").Replace(stem)
	stem = reWhitespace.ReplaceAllString(stem, " ")
	stem = reTrailingNoise.ReplaceAllString(stem, "")
	return stem
}

// stemLooksGeneric reports whether a stem carries no title information of
// its own (container words, the parent name echoed, or a bare track token).
func stemLooksGeneric(stem, cleanedParent string) bool {
	lower := strings.ToLower(strings.TrimSpace(stem))
	switch lower {
	case "audiobook", "book", "audio":
		return true
	}
	if lower == strings.ToLower(cleanedParent) {
		return true
	}
	return reTrackLikeStem.MatchString(lower)
}

func indexFold(s, sub string) int {
	return strings.Index(strings.ToLower(s), strings.ToLower(sub))
}

func cleanup(q string) string {
	q = reWhitespace.ReplaceAllString(q, " ")
	q = reNarratedPrefix.ReplaceAllString(strings.TrimSpace(q), "")
	return strings.TrimSpace(q)
}
