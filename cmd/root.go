// file: cmd/root.go
// version: 2.0.0
// guid: 6a7b8c9d-0e1f-2a3b-4c5d-6e7f8a9b0c1d

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jeffjose/audtag/internal/config"
)

var cfgFile string
var debugFlag bool
var workersFlag int

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "audtag",
	Short: "Tag audiobook files with metadata from Audible",
	Long: `audtag groups audiobook files into books, infers a search query from
their tags or filenames, looks the book up on Audible, and writes the
scraped metadata back into the files.

Post-tagging move, copy, and rename tasks can be declared in audtag.yaml.`,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.audtag.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().IntVar(&workersFlag, "workers", config.OptimalWorkers(), "number of parallel tagging workers")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))

	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(groupCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(renameCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".audtag")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && debugFlag {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}

	config.InitConfig()
}
