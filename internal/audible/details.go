// file: internal/audible/details.go
// version: 1.2.0
// guid: 6f7a8b9c-0d1e-2f3a-4b5c-6d7e8f9a0b1c

package audible

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	reCopyrightYear = regexp.MustCompile(`©(\d{4})`)
	rePublisher     = regexp.MustCompile(`\(P\)(\d{4})\s+(.+)`)
	reSeriesBook    = regexp.MustCompile(`Book (\d+)`)
	reRatingNumber  = regexp.MustCompile(`[\d.]+`)
	reNarratorExtra = regexp.MustCompile(`(?i)[;,]\s*(introduction|foreword|afterword|preface)\s+by.*`)
)

// GetBookDetails fetches and parses a product detail page.
func (c *Client) GetBookDetails(ctx context.Context, pageURL string) (*BookMetadata, error) {
	if cached, ok := c.detailCache.Get(pageURL); ok {
		if c.Debug {
			log.Printf("detail cache hit for %s", pageURL)
		}
		return cached, nil
	}

	doc, err := c.fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("error fetching book details: %w", err)
	}

	meta := parseDetails(doc)
	meta.SourceURL = pageURL
	c.detailCache.Set(pageURL, meta)
	return meta, nil
}

func parseDetails(doc *html.Node) *BookMetadata {
	meta := &BookMetadata{}

	if img := findFirst(doc, "img", "bc-image-inset-border"); img != nil {
		meta.CoverURL = upgradeCoverURL(attr(img, "src"))
	}

	if input := findByAttr(doc, "input", "name", "asin"); input != nil {
		meta.ASIN = attr(input, "value")
	}

	if heading := findFirst(doc, "h1", "bc-heading"); heading != nil {
		title := cleanText(heading)
		if idx := strings.Index(title, ":"); idx >= 0 {
			meta.Title = strings.TrimSpace(title[:idx])
			meta.Subtitle = strings.TrimSpace(title[idx+1:])
		} else {
			meta.Title = title
		}
	}

	meta.Author = joinLinks(findFirst(doc, "li", "authorLabel"))
	meta.Narrator = cleanNarrator(joinLinks(findFirst(doc, "li", "narratorLabel")))

	if elem := findFirst(doc, "li", "seriesLabel"); elem != nil {
		if link := findFirst(elem, "a", "bc-link"); link != nil {
			meta.Series = cleanText(link)
		}
		if m := reSeriesBook.FindStringSubmatch(cleanText(elem)); m != nil {
			meta.SeriesPart = m[1]
		}
	}

	if elem := findFirst(doc, "li", "categoriesLabel"); elem != nil {
		var categories []string
		for _, link := range findAll(elem, "a", "bc-link") {
			categories = append(categories, cleanText(link))
		}
		if len(categories) > 2 {
			categories = categories[:2]
		}
		meta.Genre = strings.Join(categories, "/")
	}

	if section := findFirst(doc, "div", "productPublisherSummary"); section != nil {
		meta.Description = cleanText(findFirst(section, "span", "bc-text"))
	}

	// The copyright line carries the © year plus "(P)<year> <publisher>".
	for _, p := range findAll(doc, "p", "bc-text") {
		text := cleanText(p)
		if !strings.Contains(text, "©") {
			continue
		}
		if m := reCopyrightYear.FindStringSubmatch(text); m != nil {
			meta.Year = m[1]
		}
		if m := rePublisher.FindStringSubmatch(text); m != nil {
			meta.ReleaseYear = m[1]
			meta.Publisher = strings.TrimSpace(m[2])
		}
		break
	}
	if meta.Year == "" {
		if elem := findFirst(doc, "li", "releaseDateLabel"); elem != nil {
			release := strings.TrimPrefix(cleanText(elem), "Release date:")
			meta.Year = reFourYear.FindString(release)
		}
	}

	if elem := findFirst(doc, "li", "ratingsLabel"); elem != nil {
		if stars := findFirst(elem, "span", "bc-text"); stars != nil {
			meta.Rating = reRatingNumber.FindString(cleanText(stars))
		}
	}

	return meta
}

// joinLinks joins the text of all anchor children with ", ".
func joinLinks(elem *html.Node) string {
	if elem == nil {
		return ""
	}
	var parts []string
	for _, link := range findAll(elem, "a", "bc-link") {
		parts = append(parts, cleanText(link))
	}
	return strings.Join(parts, ", ")
}

// cleanNarrator drops "introduction by" style suffixes and keeps only the
// first of several comma-separated narrators.
func cleanNarrator(narrator string) string {
	narrator = reNarratorExtra.ReplaceAllString(narrator, "")
	if strings.Contains(narrator, ",") && !strings.Contains(strings.ToLower(narrator), "introduction") {
		narrator = strings.SplitN(narrator, ",", 2)[0]
	}
	return strings.TrimSpace(narrator)
}
