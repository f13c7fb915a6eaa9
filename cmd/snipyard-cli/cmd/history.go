package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"snipyard/internal/adapters/sqlite"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently picked snippets",
	Long: `Show the display labels of recently picked snippets, most recent
first. History is kept per corpus.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := sqlite.OpenHistory(corpusPath)
		if err != nil {
			return err
		}
		defer store.Close()

		recent, err := store.Recent(historyLimit)
		if err != nil {
			return err
		}
		if len(recent) == 0 {
			fmt.Println("No history yet")
			return nil
		}
		for _, d := range recent {
			fmt.Println(d)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum entries to show")
	rootCmd.AddCommand(historyCmd)
}
