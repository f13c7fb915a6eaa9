package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"snipyard/internal/application/commands"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <symbol>...",
	Short: "Resolve recipes to per-destination text",
	Long: `Resolve one or more recipe symbols, expanding their pre/post recipe
references recursively and merging the text per destination.

The result is printed one section per destination; the "here" sentinel
stands for the caller's insertion point.

Examples:
  snipyard-cli resolve greet
  snipyard-cli -c python resolve setup main`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		resolveCmd := commands.NewResolveCommand(GetRepo(), langContext, maxDepth)
		resolveCmd.Symbols = args

		m, err := resolveCmd.Execute(ctx)
		if err != nil {
			return err
		}

		printDestinations(m)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
