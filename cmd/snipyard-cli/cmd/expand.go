package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"snipyard/internal/adapters/distribute"
	"snipyard/internal/application/commands"
)

var expandCol int

var expandCmd = &cobra.Command{
	Use:   "expand <line>",
	Short: "Expand the recipe reference at a cursor position",
	Long: `Expand the recipe reference found at a cursor position in a line
of text: either a literal (sym sym ...) list or the single symbol token
under the cursor. The line is printed with the reference replaced by
the resolved "here" text; text for named destinations is written into
those files.

Examples:
  snipyard-cli expand 'greet' --col 0
  snipyard-cli expand 'setup (imports helpers) teardown' --col 8`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		expandCmd := commands.NewExpandCommand(GetRepo(), langContext, maxDepth, args[0], expandCol)
		res, err := expandCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(res.Line)

		cwd, _ := os.Getwd()
		return distribute.New(nil, cwd).Insert(res.Rest)
	},
}

func init() {
	expandCmd.Flags().IntVar(&expandCol, "col", 0, "0-based cursor column within the line")
	rootCmd.AddCommand(expandCmd)
}
