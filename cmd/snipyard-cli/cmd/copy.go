package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"snipyard/internal/adapters/distribute"
	"snipyard/internal/application/commands"
)

var copyCmd = &cobra.Command{
	Use:   "copy <symbol>...",
	Short: "Resolve recipes onto the clipboard",
	Long: `Resolve recipes and place the result on the system clipboard
instead of writing it in place. Destination texts are joined in
resolution order.

Examples:
  snipyard-cli copy greet`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		resolveCmd := commands.NewResolveCommand(GetRepo(), langContext, maxDepth)
		resolveCmd.Symbols = args

		m, err := resolveCmd.Execute(ctx)
		if err != nil {
			return err
		}
		if m.Len() == 0 {
			fmt.Println("Nothing to copy")
			return nil
		}

		cwd, _ := os.Getwd()
		if err := distribute.New(os.Stdout, cwd).Copy(m); err != nil {
			return err
		}
		fmt.Println("Copied to clipboard")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
