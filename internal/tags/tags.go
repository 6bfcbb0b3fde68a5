// file: internal/tags/tags.go
// version: 1.2.0
// guid: 4f5a6b7c-8d9e-0f1a-2b3c-4d5e6f7a8b9c

package tags

import (
	"fmt"
	"os"

	"github.com/dhowden/tag"
)

// SemanticTags is the fixed semantic record the rest of the program depends
// on. Format-specific field identifiers (ID3 frames, MP4 atoms, Vorbis
// comments) never leak past this package.
type SemanticTags struct {
	Title       string
	Album       string
	Artist      string
	AlbumArtist string
	Composer    string
	Genre       string
	Year        int
	Track       int
}

// Reader reads the semantic tag record from an audio file. An error means
// "no metadata available" — callers treat absence and failure identically.
type Reader interface {
	ReadSemantic(path string) (SemanticTags, error)
}

// FileReader reads tags from files on disk.
type FileReader struct{}

// NewFileReader returns a Reader backed by the on-disk files.
func NewFileReader() *FileReader {
	return &FileReader{}
}

// ReadSemantic extracts the semantic record from the file at path.
func (r *FileReader) ReadSemantic(path string) (SemanticTags, error) {
	var st SemanticTags

	f, err := os.Open(path)
	if err != nil {
		return st, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return st, fmt.Errorf("error reading tags: %w", err)
	}

	st.Title = m.Title()
	st.Album = m.Album()
	st.Artist = m.Artist()
	st.AlbumArtist = m.AlbumArtist()
	st.Composer = m.Composer()
	st.Genre = m.Genre()
	st.Year = m.Year()
	st.Track, _ = m.Track()
	return st, nil
}
