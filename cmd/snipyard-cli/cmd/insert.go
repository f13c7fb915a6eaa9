package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"snipyard/internal/adapters/distribute"
	"snipyard/internal/application/commands"
)

var insertDir string

var insertCmd = &cobra.Command{
	Use:   "insert <symbol>...",
	Short: "Resolve recipes and write them in place",
	Long: `Resolve recipes and distribute the result: text for the "here"
sentinel goes to stdout, text for named destinations is inserted at the
top of those files (created when absent).

Destinations are handled best-effort: one unwritable file does not stop
the others.

Examples:
  snipyard-cli insert greet
  snipyard-cli insert setup --dir ./src`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		resolveCmd := commands.NewResolveCommand(GetRepo(), langContext, maxDepth)
		resolveCmd.Symbols = args

		m, err := resolveCmd.Execute(ctx)
		if err != nil {
			return err
		}

		dir := insertDir
		if dir == "" {
			dir, _ = os.Getwd()
		}
		return distribute.New(os.Stdout, dir).Insert(m)
	},
}

func init() {
	insertCmd.Flags().StringVar(&insertDir, "dir", "", "directory for relative destinations (default: working directory)")
	rootCmd.AddCommand(insertCmd)
}
