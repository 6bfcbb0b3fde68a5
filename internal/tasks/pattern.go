// file: internal/tasks/pattern.go
// version: 1.1.0
// guid: 8b9c0d1e-2f3a-4b5c-6d7e-8f9a0b1c2d3e

package tasks

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jeffjose/audtag/internal/tags"
)

// fileMetadata holds the values a naming pattern can reference.
type fileMetadata struct {
	values map[string]string
	track  int
	date   time.Time
}

var (
	reDateFormat    = regexp.MustCompile(`\{date:([^}]+)\}`)
	reTrackFormat   = regexp.MustCompile(`\{track:(\d+)d\}`)
	reUnreplaced    = regexp.MustCompile(`\{[^}]+\}`)
	reEmptyParens   = regexp.MustCompile(`\(\s*\)`)
	reMultiSpace    = regexp.MustCompile(`\s+`)
	reParenYear     = regexp.MustCompile(`\((\d{4})\)`)
	reUnsafeInValue = regexp.MustCompile(`[<>:"/\\|?*]`)
)

// metadataFor builds the pattern variables for one file: filename stem,
// extension, now-date, plus whatever the tag reader yields. Tag values are
// sanitized so they cannot inject path separators.
func metadataFor(path string, reader tags.Reader) fileMetadata {
	base := filepath.Base(path)
	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	m := fileMetadata{
		values: map[string]string{
			"filename": stem,
			"ext":      ext,
		},
		date: time.Now(),
	}

	// A "(YYYY)" in the filename is a usable year even without tags.
	if match := reParenYear.FindStringSubmatch(stem); match != nil {
		m.values["year"] = match[1]
	}

	if reader != nil {
		if st, err := reader.ReadSemantic(path); err == nil {
			setIfNonEmpty(m.values, "title", st.Title)
			setIfNonEmpty(m.values, "artist", st.Artist)
			setIfNonEmpty(m.values, "album", st.Album)
			setIfNonEmpty(m.values, "composer", st.Composer)
			setIfNonEmpty(m.values, "genre", st.Genre)
			if st.Year > 0 {
				m.values["year"] = strconv.Itoa(st.Year)
			}
			m.track = st.Track
		}
	}
	m.values["track"] = strconv.Itoa(m.track)

	for k, v := range m.values {
		v = reUnsafeInValue.ReplaceAllString(v, "_")
		m.values[k] = strings.Trim(v, ". ")
	}
	return m
}

func setIfNonEmpty(values map[string]string, key, val string) {
	if strings.TrimSpace(val) != "" {
		values[key] = val
	}
}

// expandPattern substitutes pattern variables: {name}, {track:02d} for
// zero-padded track numbers, and {date:FORMAT} with strftime-style format
// verbs. Unknown variables expand to nothing.
func expandPattern(pattern string, m fileMetadata) string {
	result := pattern

	result = reDateFormat.ReplaceAllStringFunc(result, func(match string) string {
		format := reDateFormat.FindStringSubmatch(match)[1]
		return formatDate(m.date, format)
	})

	result = reTrackFormat.ReplaceAllStringFunc(result, func(match string) string {
		width, _ := strconv.Atoi(reTrackFormat.FindStringSubmatch(match)[1])
		return fmt.Sprintf("%0*d", width, m.track)
	})

	for key, value := range m.values {
		result = strings.ReplaceAll(result, "{"+key+"}", value)
	}

	result = reUnreplaced.ReplaceAllString(result, "")
	result = reEmptyParens.ReplaceAllString(result, "")
	result = reMultiSpace.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

var strftimeVerbs = strings.NewReplacer(
	"%Y", "2006",
	"%y", "06",
	"%m", "01",
	"%d", "02",
	"%H", "15",
	"%M", "04",
	"%S", "05",
)

// formatDate renders t with the strftime-ish verbs task configs use.
func formatDate(t time.Time, format string) string {
	return t.Format(strftimeVerbs.Replace(format))
}
