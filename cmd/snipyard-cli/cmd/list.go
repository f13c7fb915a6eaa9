package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"snipyard/internal/application/commands"
)

var listSymbol string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List snippet candidates",
	Long: `List the snippet candidates indexed from the corpus under the
active language context.

Examples:
  snipyard-cli list
  snipyard-cli -c python list
  snipyard-cli list --symbol greet`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		listCmd := commands.NewListCommand(GetRepo(), langContext, listSymbol)
		candidates, err := listCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if len(candidates) == 0 {
			fmt.Println("No snippets found")
			return nil
		}

		for _, c := range candidates {
			fmt.Printf("%s\t%s:%d\n", c.Display, c.File, c.Line)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listSymbol, "symbol", "", "only candidates with this SYMBOL")
	rootCmd.AddCommand(listCmd)
}
