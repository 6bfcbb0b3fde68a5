// file: cmd/tag.go
// version: 1.2.0
// guid: 0d1e2f3a-4b5c-6d7e-8f9a-0b1c2d3e4f5a

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeffjose/audtag/internal/audible"
	"github.com/jeffjose/audtag/internal/config"
	"github.com/jeffjose/audtag/internal/grouping"
	"github.com/jeffjose/audtag/internal/matcher"
	"github.com/jeffjose/audtag/internal/scanner"
	"github.com/jeffjose/audtag/internal/tags"
)

var tagYes bool
var tagCover bool

// tagCmd represents the tag command
var tagCmd = &cobra.Command{
	Use:   "tag [paths...]",
	Short: "Search Audible and tag audiobook files",
	Long: `Group the given files into books, search Audible with an inferred
query, let you pick the right result, and write its metadata to every
file of the group.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := scanner.Expand(args, config.AppConfig.Workers)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Println("No supported audio files found")
			return nil
		}

		reader := tags.NewFileReader()
		grouper := grouping.New(reader, config.AppConfig.Debug)
		groups := grouper.GroupFiles(files)
		fmt.Printf("Found %d file(s) in %d book group(s)\n\n", len(files), len(groups))

		client := audible.NewClient()
		client.Debug = config.AppConfig.Debug

		for _, group := range groups {
			if err := tagGroup(cmd.Context(), client, reader, group); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	tagCmd.Flags().BoolVarP(&tagYes, "yes", "y", false, "non-interactive: take the best-ranked result")
	tagCmd.Flags().BoolVar(&tagCover, "cover", false, "download the cover image next to the files")
}

// tagGroup runs the search/select/write flow for one book group.
func tagGroup(ctx context.Context, client *audible.Client, reader tags.Reader, group grouping.BookGroup) error {
	fmt.Printf("=== %s (%d files) ===\n", group.Name, len(group.Files))

	query := group.Query
	for {
		fmt.Printf("Searching Audible for: %s\n", query)
		results, err := client.Search(ctx, query)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		if len(results) == 0 {
			fmt.Println("No results found")
			next, retry := promptRetry()
			if !retry {
				return nil
			}
			query = next
			continue
		}

		ranked := rankResults(query, results)
		choice := 0
		if !tagYes {
			choice = promptSelection(query, ranked, results)
			if choice == -1 {
				fmt.Println("Skipped")
				return nil
			}
			if choice == -2 {
				next, retry := promptRetry()
				if !retry {
					return nil
				}
				query = next
				continue
			}
		}

		selected := results[ranked[choice].Index]
		meta, err := client.GetBookDetails(ctx, selected.URL)
		if err != nil {
			return fmt.Errorf("failed to fetch details: %w", err)
		}

		applier := tags.NewApplier(reader, config.AppConfig.Workers)
		applier.Debug = config.AppConfig.Debug
		failures := 0
		for _, r := range applier.Apply(group.Files, meta) {
			if r.Err != nil {
				failures++
				fmt.Printf("✗ %s: %v\n", filepath.Base(r.Path), r.Err)
			}
		}
		fmt.Printf("Tagged %d/%d files as %q\n", len(group.Files)-failures, len(group.Files), meta.FullTitle())

		if tagCover && meta.CoverURL != "" {
			coverPath := filepath.Join(filepath.Dir(group.Files[0]), "cover.jpg")
			if err := client.DownloadCover(ctx, meta.CoverURL, coverPath); err != nil {
				fmt.Printf("Warning: cover download failed: %v\n", err)
			} else {
				fmt.Printf("Cover saved to %s\n", coverPath)
			}
		}
		fmt.Println()
		return nil
	}
}

// rankResults orders result indices best-first, scoring the query against
// "Author Title" strings. Results the scorer rejects entirely still get
// listed, after the ranked ones, so the user can always pick anything.
func rankResults(query string, results []audible.SearchResult) []matcher.FuzzyResult {
	candidates := make([]string, len(results))
	for i, r := range results {
		candidates[i] = strings.TrimSpace(r.Author + " " + r.Title)
	}
	ranked := matcher.RankResults(query, candidates, 1)

	seen := make(map[int]bool, len(ranked))
	for _, r := range ranked {
		seen[r.Index] = true
	}
	for i := range results {
		if !seen[i] {
			ranked = append(ranked, matcher.FuzzyResult{Index: i, Score: 0})
		}
	}
	return ranked
}

// promptSelection shows the ranked results and reads a choice. Returns the
// position in ranked, -1 for skip, -2 for retry with a new query.
func promptSelection(query string, ranked []matcher.FuzzyResult, results []audible.SearchResult) int {
	fmt.Printf("\nResults for %q:\n", query)
	for i, r := range ranked {
		res := results[r.Index]
		line := fmt.Sprintf("%2d. %s", i+1, res.Title)
		if res.Subtitle != "" {
			line += ": " + res.Subtitle
		}
		line += " — " + res.Author
		if res.Narrator != "" {
			line += ", narrated by " + res.Narrator
		}
		if res.Duration != "" {
			line += " (" + res.Duration + ")"
		}
		if res.Year != "" {
			line += " [" + res.Year + "]"
		}
		fmt.Println(line)
	}
	fmt.Print("\nSelect [1-", len(ranked), "], (r)etry, (s)kip: ")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		input := strings.TrimSpace(strings.ToLower(scanner.Text()))
		switch input {
		case "s", "skip", "":
			return -1
		case "r", "retry":
			return -2
		}
		if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(ranked) {
			return n - 1
		}
		fmt.Print("Invalid choice, try again: ")
	}
	return -1
}

// promptRetry asks for a replacement query. Empty input skips the group.
func promptRetry() (string, bool) {
	fmt.Print("Enter a new search query (empty to skip): ")
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return "", false
	}
	query := strings.TrimSpace(scanner.Text())
	if query == "" {
		return "", false
	}
	return query, true
}
