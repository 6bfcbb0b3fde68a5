// file: internal/tasks/pattern_test.go
// version: 1.0.0
// guid: e2f3a4b5-c6d7-8e9f-0a1b-2c3d4e5f6a7b

package tasks

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jeffjose/audtag/internal/tags"
)

type stubReader struct {
	records map[string]tags.SemanticTags
}

func (s *stubReader) ReadSemantic(path string) (tags.SemanticTags, error) {
	if st, ok := s.records[path]; ok {
		return st, nil
	}
	return tags.SemanticTags{}, errors.New("no tags")
}

func TestExpandPattern(t *testing.T) {
	m := fileMetadata{
		values: map[string]string{
			"filename": "01-dune",
			"ext":      "mp3",
			"title":    "Dune",
			"artist":   "Frank Herbert",
			"year":     "2007",
		},
		track: 3,
		date:  time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC),
	}

	tests := []struct {
		pattern string
		want    string
	}{
		{"{filename}.{ext}", "01-dune.mp3"},
		{"{artist} - {title} ({year}).{ext}", "Frank Herbert - Dune (2007).mp3"},
		{"{track:02d} - {title}.{ext}", "03 - Dune.mp3"},
		{"{track:04d}", "0003"},
		{"{date:%Y-%m-%d}", "2024-06-15"},
		{"{date:%Y}/{title}", "2024/Dune"},
		// Unknown variables vanish, empty parens and doubled spaces collapse
		{"{title} {bogus}.{ext}", "Dune .mp3"},
		{"{title} ({album}).{ext}", "Dune .mp3"},
		{"  {title}  ", "Dune"},
	}
	for _, tt := range tests {
		if got := expandPattern(tt.pattern, m); got != tt.want {
			t.Errorf("expandPattern(%q) = %q, want %q", tt.pattern, got, tt.want)
		}
	}
}

func TestMetadataFor_TagValues(t *testing.T) {
	reader := &stubReader{records: map[string]tags.SemanticTags{
		"a/01-dune.mp3": {
			Title:  "Chapter 1",
			Artist: "Frank Herbert",
			Album:  "Dune",
			Year:   2007,
			Track:  1,
		},
	}}

	m := metadataFor("a/01-dune.mp3", reader)
	assert.Equal(t, "01-dune", m.values["filename"])
	assert.Equal(t, "mp3", m.values["ext"])
	assert.Equal(t, "Chapter 1", m.values["title"])
	assert.Equal(t, "Frank Herbert", m.values["artist"])
	assert.Equal(t, "Dune", m.values["album"])
	assert.Equal(t, "2007", m.values["year"])
	assert.Equal(t, 1, m.track)
}

func TestMetadataFor_SanitizesValues(t *testing.T) {
	reader := &stubReader{records: map[string]tags.SemanticTags{
		"x.mp3": {Title: "AC/DC: Live?", Artist: "A*B"},
	}}

	m := metadataFor("x.mp3", reader)
	assert.Equal(t, "AC_DC_ Live_", m.values["title"])
	assert.Equal(t, "A_B", m.values["artist"])
}

func TestMetadataFor_YearFromFilename(t *testing.T) {
	m := metadataFor("Dune (1965).mp3", &stubReader{})
	assert.Equal(t, "1965", m.values["year"])
}

func TestMetadataFor_NoTags(t *testing.T) {
	m := metadataFor("b/solo.m4b", &stubReader{})
	assert.Equal(t, "solo", m.values["filename"])
	assert.Equal(t, "m4b", m.values["ext"])
	assert.Equal(t, "0", m.values["track"])
	_, ok := m.values["title"]
	assert.False(t, ok)
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 6, 15, 10, 30, 45, 0, time.UTC)
	tests := []struct {
		format string
		want   string
	}{
		{"%Y-%m-%d", "2024-06-15"},
		{"%y%m%d", "240615"},
		{"%Y", "2024"},
		{"%H:%M:%S", "10:30:45"},
	}
	for _, tt := range tests {
		if got := formatDate(d, tt.format); got != tt.want {
			t.Errorf("formatDate(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}
