// file: cmd/group.go
// version: 1.1.0
// guid: 2f3a4b5c-6d7e-8f9a-0b1c-2d3e4f5a6b7c

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

// groupCmd represents the group command
var groupCmd = &cobra.Command{
	Use:   "group [paths...]",
	Short: "Show how files would be grouped into books",
	Long: `Show the book groups and inferred search queries without touching
any files or the network. Useful for checking what "tag" would do.`,
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

		groups := grouping.New(tags.NewFileReader(), config.AppConfig.Debug).GroupFiles(files)
		fmt.Printf("%d file(s) in %d group(s)\n\n", len(files), len(groups))
		for i, group := range groups {
			fmt.Printf("%d. %s\n", i+1, group.Name)
			fmt.Printf("   query: %s\n", group.Query)
			for _, f := range group.Files {
				fmt.Printf("   - %s\n", filepath.Base(f))
			}
			fmt.Println()
		}
		return nil
	},
}
