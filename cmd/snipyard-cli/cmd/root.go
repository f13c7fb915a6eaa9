package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"snipyard/internal/adapters/filesystem"
	"snipyard/internal/config"
	"snipyard/internal/domain"
	"snipyard/internal/ports"
)

var (
	corpusPath  string
	wikiPath    string
	langContext string
	maxDepth    int
	repo        ports.SnippetRepository
)

var rootCmd = &cobra.Command{
	Use:   "snipyard-cli",
	Short: "CLI for resolving code recipes from an org corpus",
	Long: `snipyard-cli indexes code snippets ("recipes") embedded under the
headings of org documents and resolves them into text, expanding the
pre/post recipe references a snippet declares and merging everything
per destination.

It provides commands to list, resolve, insert, copy, and expand
recipes from your corpus.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		repo = filesystem.NewRepository(corpusPath, wikiPath)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	config.Load()
	rootCmd.PersistentFlags().StringVarP(&corpusPath, "corpus", "C", config.CorpusPath(), "path to the snippet corpus")
	rootCmd.PersistentFlags().StringVar(&wikiPath, "wiki", config.WikiPath(), "path to the optional companion corpus")
	rootCmd.PersistentFlags().StringVarP(&langContext, "context", "c", config.Context(), "active language context")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", config.MaxDepth(), "recursion guard for recipe references (0 disables)")
}

// GetRepo returns the initialized repository
func GetRepo() ports.SnippetRepository {
	return repo
}

// printDestinations writes a resolved map to stdout, one section per
// destination, in map insertion order.
func printDestinations(m *domain.DestinationMap) {
	for _, dest := range m.Destinations() {
		text, _ := m.Text(dest)
		fmt.Printf("--- %s ---\n%s\n", dest, text)
	}
}
