// file: cmd/root.go
// version: 2.0.0
// guid: 6a7b8c9d-0e1f-2a3b-4c5d-6e7f8a9b0c1d

package cmd

import (
	"fmt"
	"os"

	"github.com/managedkaos/oreilly-book-searcher/internal/config"
	"github.com/managedkaos/oreilly-book-searcher/internal/logging"
	"github.com/managedkaos/oreilly-book-searcher/internal/searcher"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string
var titlesFile string
var dataDir string
var baseURL string
var useCache bool
var debug bool
var requestDelay string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "oreilly-book-searcher",
	Short: "Look up publication dates for a list of book titles",
	Long: `O'Reilly Book Searcher reads a list of book titles, queries the
O'Reilly catalog search API for each one, and records the publication date
of the best-matching book edition.

Raw API responses are cached under the data directory, and a summary
mapping each title to its publication date is written at the end of a run.`,
}

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the catalog for every title in the titles file",
	Long: `Search processes the titles file in order. Each title is resolved
from the response cache (with --cache) or fetched live, one line of
"<title>: <publication date>" is printed per title, and the summary is
saved as publication_dates.json in the data directory.

Live requests are spaced out to respect API rate limits; cached responses
are served without delay. A failed fetch records "Not found" and the run
continues with the next title.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Titles file: %s\n", config.AppConfig.TitlesFile)
		fmt.Printf("Data directory: %s\n", config.AppConfig.DataDir)
		if config.AppConfig.UseCache {
			fmt.Println("Cache-first mode enabled")
		}

		return searcher.Run(cmd.Context(), config.AppConfig)
	},
}

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup <query>",
	Short: "Fuzzy-search titles in a saved summary",
	Long: `Lookup matches the query against the titles recorded in
publication_dates.json from an earlier search run and prints their
publication dates, closest match first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matches, err := searcher.Lookup(config.AppConfig.DataDir, args[0])
		if err != nil {
			return fmt.Errorf("no summary to search, run a search first: %w", err)
		}

		if len(matches) == 0 {
			fmt.Printf("No titles matching %q\n", args[0])
			return nil
		}
		for _, m := range matches {
			fmt.Fprintf(searcher.Out, "%s: %s\n", m.Title, m.PublicationDate)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.oreilly-book-searcher.yaml)")
	rootCmd.PersistentFlags().StringVar(&titlesFile, "titles", "titles.txt", "file containing book titles, one entry per blank-line-separated block")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "data", "directory for cached responses and the summary")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "override the catalog search endpoint")
	rootCmd.PersistentFlags().BoolVar(&useCache, "cache", false, "serve from cached responses when present (env: USE_CACHE)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose diagnostic logging (env: DEBUG)")
	rootCmd.PersistentFlags().StringVar(&requestDelay, "delay", "1s", "delay between live API requests (e.g. 1s, 500ms)")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(lookupCmd)
}

func initConfig() {
	// Rebound on every invocation; a viper.Reset would otherwise orphan
	// the bindings made at package init.
	viper.BindPFlag("titles_file", rootCmd.PersistentFlags().Lookup("titles"))
	viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data"))
	viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	viper.BindPFlag("use_cache", rootCmd.PersistentFlags().Lookup("cache"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("request_delay", rootCmd.PersistentFlags().Lookup("delay"))

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".oreilly-book-searcher")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}

	config.InitConfig()
	logging.SetVerbose(config.AppConfig.Debug)
}
