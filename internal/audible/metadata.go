// file: internal/audible/metadata.go
// version: 1.1.0
// guid: 1a2b3c4d-5e6f-7a8b-9c0d-1e2f3a4b5c6d

package audible

// SearchResult is one row of an Audible search page.
type SearchResult struct {
	Title    string
	Subtitle string
	Author   string
	Narrator string
	Duration string
	Year     string
	URL      string
}

// BookMetadata is the canonical record scraped from a detail page. Built
// once per selected result and shared read-only across all files of a group
// during tagging.
type BookMetadata struct {
	Title       string
	Subtitle    string
	Author      string
	Narrator    string
	Series      string
	SeriesPart  string
	Genre       string
	Year        string
	ReleaseYear string
	Publisher   string
	Description string
	Rating      string
	ASIN        string
	CoverURL    string
	SourceURL   string
}

// FullTitle returns "Title: Subtitle" when a subtitle is present.
func (m *BookMetadata) FullTitle() string {
	if m.Subtitle != "" {
		return m.Title + ": " + m.Subtitle
	}
	return m.Title
}
