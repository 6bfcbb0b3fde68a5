// file: internal/tags/applier.go
// version: 1.2.0
// guid: 2b3c4d5e-6f7a-8b9c-0d1e-2f3a4b5c6d7e

package tags

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.senan.xyz/taglib"

	"github.com/jeffjose/audtag/internal/audible"
)

// FileResult reports the outcome of tagging one file.
type FileResult struct {
	Path string
	Err  error
}

// Applier writes a BookMetadata record to every file of a group.
type Applier struct {
	Reader  Reader
	Workers int
	Debug   bool

	// WriteFunc performs the actual tag write. Defaults to taglib; tests
	// substitute a recorder so no real audio files are needed.
	WriteFunc func(path string, fields map[string][]string) error
}

// NewApplier returns an Applier with the given parallelism.
func NewApplier(reader Reader, workers int) *Applier {
	return &Applier{
		Reader:  reader,
		Workers: workers,
		WriteFunc: func(path string, fields map[string][]string) error {
			return taglib.WriteTags(path, fields, taglib.Clear)
		},
	}
}

// Apply tags all files with meta across a bounded worker pool. Workers
// operate on disjoint files; one file's failure never aborts its siblings.
// Results are returned in input order, one per file.
func (a *Applier) Apply(files []string, meta *audible.BookMetadata) []FileResult {
	results := make([]FileResult, len(files))
	workers := a.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(files) {
		workers = len(files)
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription("Tagging files"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	semaphore := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(idx int, path string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			err := a.applyOne(path, idx+1, len(files), meta)
			results[idx] = FileResult{Path: path, Err: err}
			_ = bar.Add(1)
		}(i, f)
	}
	wg.Wait()
	return results
}

// applyOne builds the field map for a single file and writes it. Track
// numbers are 1-based; multi-file groups get track/total form.
func (a *Applier) applyOne(path string, track, total int, meta *audible.BookMetadata) error {
	title := meta.FullTitle()
	if a.Reader != nil {
		if existing, err := a.Reader.ReadSemantic(path); err == nil {
			if IsMeaningfulTitle(existing.Title, filepath.Base(path)) {
				title = existing.Title
			}
		}
	}

	fields := map[string][]string{
		taglib.Title:       {title},
		taglib.Album:       {meta.FullTitle()},
		taglib.Artist:      {meta.Author},
		taglib.AlbumArtist: {meta.Author},
		taglib.Genre:       {genreOrDefault(meta.Genre)},
	}
	if meta.Narrator != "" {
		fields[taglib.Composer] = []string{meta.Narrator}
	}
	if meta.Year != "" {
		fields[taglib.Date] = []string{meta.Year}
	}
	if total > 1 {
		fields[taglib.TrackNumber] = []string{fmt.Sprintf("%d/%d", track, total)}
	}
	if meta.Series != "" {
		fields["SERIES"] = []string{meta.Series}
		if meta.SeriesPart != "" {
			fields["SERIES-PART"] = []string{meta.SeriesPart}
		}
	}
	if meta.ASIN != "" {
		fields["ASIN"] = []string{meta.ASIN}
	}
	if meta.SourceURL != "" {
		fields["WWWAUDIOFILE"] = []string{meta.SourceURL}
	}
	if meta.Description != "" {
		fields["COMMENT"] = []string{meta.Description}
	}

	if a.Debug {
		log.Printf("writing tags to %s (track %d/%d)", path, track, total)
	}
	if err := a.WriteFunc(path, fields); err != nil {
		return fmt.Errorf("error writing tags to %s: %w", path, err)
	}
	return nil
}

func genreOrDefault(genre string) string {
	if genre == "" {
		return "Audiobook"
	}
	return genre
}
