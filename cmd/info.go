// file: cmd/info.go
// version: 1.1.0
// guid: 1e2f3a4b-5c6d-7e8f-9a0b-1c2d3e4f5a6b

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jeffjose/audtag/internal/config"
	"github.com/jeffjose/audtag/internal/grouping"
	"github.com/jeffjose/audtag/internal/scanner"
	"github.com/jeffjose/audtag/internal/tags"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info [paths...]",
	Short: "Show existing tags grouped by book",
	Args:  cobra.MinimumNArgs(1),
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
		groups := grouping.New(reader, config.AppConfig.Debug).GroupFiles(files)

		for _, group := range groups {
			fmt.Printf("=== %s (%d files) ===\n", group.Name, len(group.Files))
			for _, f := range group.Files {
				st, err := reader.ReadSemantic(f)
				if err != nil {
					fmt.Printf("  %s: (no readable tags)\n", filepath.Base(f))
					continue
				}
				fmt.Printf("  %s\n", filepath.Base(f))
				printField("title", st.Title)
				printField("album", st.Album)
				printField("artist", st.Artist)
				printField("albumartist", st.AlbumArtist)
				printField("composer", st.Composer)
				printField("genre", st.Genre)
				if st.Year > 0 {
					fmt.Printf("    %-12s %d\n", "year", st.Year)
				}
				if st.Track > 0 {
					fmt.Printf("    %-12s %d\n", "track", st.Track)
				}
			}
			fmt.Println()
		}
		return nil
	},
}

func printField(name, value string) {
	if value != "" {
		fmt.Printf("    %-12s %s\n", name, value)
	}
}
