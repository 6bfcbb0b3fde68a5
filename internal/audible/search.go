// file: internal/audible/search.go
// version: 1.2.0
// guid: 5e6f7a8b-9c0d-1e2f-3a4b-5c6d7e8f9a0b

package audible

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

const maxSearchResults = 20

var (
	reHours    = regexp.MustCompile(`(\d+)\s*hr`)
	reMinutes  = regexp.MustCompile(`(\d+)\s*min`)
	reFourYear = regexp.MustCompile(`(19\d{2}|20\d{2})`)
)

// Search runs a keyword search and parses up to 20 results. Rows that fail
// to parse are skipped with a warning.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	if cached, ok := c.searchCache.Get(query); ok {
		if c.Debug {
			log.Printf("search cache hit for %q", query)
		}
		return cached, nil
	}

	doc, err := c.fetch(ctx, c.searchURL(query))
	if err != nil {
		return nil, fmt.Errorf("error searching for %q: %w", query, err)
	}

	results := c.parseSearch(doc)
	c.searchCache.Set(query, results)
	return results, nil
}

func (c *Client) parseSearch(doc *html.Node) []SearchResult {
	products := findAll(doc, "li", "productListItem")
	if len(products) == 0 {
		if list := findByAttr(doc, "div", "data-widget", "productList"); list != nil {
			products = findAll(list, "li", "bc-list-item")
		}
	}
	if len(products) > maxSearchResults {
		products = products[:maxSearchResults]
	}

	var results []SearchResult
	for _, p := range products {
		r, ok := c.parseSearchResult(p)
		if !ok {
			continue
		}
		results = append(results, r)
	}
	return results
}

// parseSearchResult reads one product row. A row without a title is
// discarded.
func (c *Client) parseSearchResult(product *html.Node) (SearchResult, bool) {
	var r SearchResult

	if heading := findFirst(product, "h3", "bc-heading"); heading != nil {
		if link := findFirst(heading, "a", "bc-link"); link != nil {
			r.Title = cleanText(link)
			r.URL = c.productURL(attr(link, "href"))
		} else {
			r.Title = cleanText(heading)
		}
	} else if link := findFirst(product, "a", "bc-link"); link != nil {
		r.Title = cleanText(link)
		r.URL = c.productURL(attr(link, "href"))
	}
	if r.Title == "" {
		return r, false
	}

	r.Subtitle = cleanText(findFirst(product, "li", "subtitle"))

	r.Author = "Unknown"
	if elem := findFirst(product, "li", "authorLabel"); elem != nil {
		if link := findFirst(elem, "a", "bc-link"); link != nil {
			r.Author = cleanText(link)
		}
	}
	if elem := findFirst(product, "li", "narratorLabel"); elem != nil {
		if link := findFirst(elem, "a", "bc-link"); link != nil {
			r.Narrator = cleanText(link)
		}
	}

	if elem := findFirst(product, "li", "runtimeLabel"); elem != nil {
		r.Duration = compressDuration(strings.TrimSpace(strings.TrimPrefix(cleanText(elem), "Length:")))
	}
	if elem := findFirst(product, "li", "releaseDateLabel"); elem != nil {
		r.Year = extractYear(strings.TrimSpace(strings.TrimPrefix(cleanText(elem), "Release date:")))
	}
	return r, true
}

// productURL strips query parameters from a product href and re-appends the
// region overrides.
func (c *Client) productURL(href string) string {
	if href == "" {
		return ""
	}
	if idx := strings.Index(href, "?"); idx >= 0 {
		href = href[:idx]
	}
	return c.baseURL + href + "?" + urlOverrides
}

// compressDuration turns "11 hrs and 41 mins" into "11:41:00".
func compressDuration(text string) string {
	hours, mins := 0, 0
	if m := reHours.FindStringSubmatch(text); m != nil {
		hours, _ = strconv.Atoi(m[1])
	}
	if m := reMinutes.FindStringSubmatch(text); m != nil {
		mins, _ = strconv.Atoi(m[1])
	}
	if hours == 0 && mins == 0 {
		return ""
	}
	return fmt.Sprintf("%02d:%02d:00", hours, mins)
}

// extractYear pulls a 4-digit year out of a release date. Audible renders
// MM-DD-YY and MM-DD-YYYY; 2-digit years below 50 are taken as 20xx.
func extractYear(text string) string {
	if strings.Contains(text, "-") {
		parts := strings.Split(text, "-")
		if len(parts) >= 3 {
			yearPart := strings.TrimSpace(parts[len(parts)-1])
			switch {
			case len(yearPart) == 2 && isNumeric(yearPart):
				if n, _ := strconv.Atoi(yearPart); n < 50 {
					return "20" + yearPart
				}
				return "19" + yearPart
			case len(yearPart) == 4 && isNumeric(yearPart):
				return yearPart
			}
		}
	}
	return reFourYear.FindString(text)
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
