// file: internal/tags/applier_test.go
// version: 1.1.0
// guid: a8b9c0d1-e2f3-4a5b-6c7d-8e9f0a1b2c3d

package tags

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.senan.xyz/taglib"

	"github.com/jeffjose/audtag/internal/audible"
)

type stubReader struct {
	records map[string]SemanticTags
}

func (s *stubReader) ReadSemantic(path string) (SemanticTags, error) {
	if st, ok := s.records[path]; ok {
		return st, nil
	}
	return SemanticTags{}, errors.New("no tags")
}

// recordingApplier captures written field maps instead of touching files.
func recordingApplier(reader Reader, workers int) (*Applier, map[string]map[string][]string, *sync.Mutex) {
	written := make(map[string]map[string][]string)
	var mu sync.Mutex
	a := NewApplier(reader, workers)
	a.WriteFunc = func(path string, fields map[string][]string) error {
		mu.Lock()
		defer mu.Unlock()
		written[path] = fields
		return nil
	}
	return a, written, &mu
}

func TestApplier_WritesAllFiles(t *testing.T) {
	files := []string{"a/01.mp3", "a/02.mp3", "a/03.mp3"}
	meta := &audible.BookMetadata{
		Title:    "Dune",
		Author:   "Frank Herbert",
		Narrator: "Scott Brick",
		Year:     "2007",
	}

	a, written, _ := recordingApplier(&stubReader{}, 4)
	results := a.Apply(files, meta)

	require.Len(t, results, 3)
	for _, r := range results {
		assert.NoError(t, r.Err)
	}
	require.Len(t, written, 3)

	fields := written["a/02.mp3"]
	assert.Equal(t, []string{"Dune"}, fields[taglib.Album])
	assert.Equal(t, []string{"Frank Herbert"}, fields[taglib.Artist])
	assert.Equal(t, []string{"Frank Herbert"}, fields[taglib.AlbumArtist])
	assert.Equal(t, []string{"Scott Brick"}, fields[taglib.Composer])
	assert.Equal(t, []string{"2007"}, fields[taglib.Date])
	assert.Equal(t, []string{"2/3"}, fields[taglib.TrackNumber])
	assert.Equal(t, []string{"Audiobook"}, fields[taglib.Genre])
}

func TestApplier_SubtitleInTitle(t *testing.T) {
	meta := &audible.BookMetadata{Title: "Dune", Subtitle: "Book One"}
	a, written, _ := recordingApplier(&stubReader{}, 1)
	a.Apply([]string{"x.mp3"}, meta)

	assert.Equal(t, []string{"Dune: Book One"}, written["x.mp3"][taglib.Title])
	assert.Equal(t, []string{"Dune: Book One"}, written["x.mp3"][taglib.Album])
}

func TestApplier_PreservesMeaningfulTitles(t *testing.T) {
	reader := &stubReader{records: map[string]SemanticTags{
		"a/01.mp3": {Title: "Chapter 1: A Long-Expected Party"},
		"a/02.mp3": {Title: "Track 02"},
	}}
	meta := &audible.BookMetadata{Title: "The Fellowship of the Ring"}

	a, written, _ := recordingApplier(reader, 2)
	a.Apply([]string{"a/01.mp3", "a/02.mp3"}, meta)

	assert.Equal(t, []string{"Chapter 1: A Long-Expected Party"}, written["a/01.mp3"][taglib.Title])
	assert.Equal(t, []string{"The Fellowship of the Ring"}, written["a/02.mp3"][taglib.Title])
}

func TestApplier_SingleFileOmitsTrack(t *testing.T) {
	a, written, _ := recordingApplier(&stubReader{}, 1)
	a.Apply([]string{"solo.m4b"}, &audible.BookMetadata{Title: "Dune"})

	_, ok := written["solo.m4b"][taglib.TrackNumber]
	assert.False(t, ok, "single-file group should not carry a track number")
}

func TestApplier_CustomFields(t *testing.T) {
	meta := &audible.BookMetadata{
		Title:      "Dune",
		Series:     "Dune Saga",
		SeriesPart: "1",
		ASIN:       "B000R9RC7K",
		SourceURL:  "https://www.audible.com/pd/Dune",
	}
	a, written, _ := recordingApplier(&stubReader{}, 1)
	a.Apply([]string{"x.mp3"}, meta)

	fields := written["x.mp3"]
	assert.Equal(t, []string{"Dune Saga"}, fields["SERIES"])
	assert.Equal(t, []string{"1"}, fields["SERIES-PART"])
	assert.Equal(t, []string{"B000R9RC7K"}, fields["ASIN"])
	assert.Equal(t, []string{"https://www.audible.com/pd/Dune"}, fields["WWWAUDIOFILE"])
}

func TestApplier_FailureDoesNotAbortSiblings(t *testing.T) {
	a := NewApplier(&stubReader{}, 2)
	var mu sync.Mutex
	var succeeded []string
	a.WriteFunc = func(path string, fields map[string][]string) error {
		if path == "a/bad.mp3" {
			return errors.New("write failed")
		}
		mu.Lock()
		defer mu.Unlock()
		succeeded = append(succeeded, path)
		return nil
	}

	results := a.Apply([]string{"a/ok1.mp3", "a/bad.mp3", "a/ok2.mp3"}, &audible.BookMetadata{Title: "X"})

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.NoError(t, results[2].Err)
	assert.Len(t, succeeded, 2)
}
