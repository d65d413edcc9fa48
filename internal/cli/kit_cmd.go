package cli

import (
	"fmt"

	"github.com/alexanderramin/stockpile/internal/app"
	"github.com/alexanderramin/stockpile/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newKitCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kit",
		Short: "Load the recommendation catalog",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "init",
			Short: "Load the built-in recommendation kit",
			RunE: func(cmd *cobra.Command, args []string) error {
				res, err := a.Kits.InitDefault(cmd.Context())
				if err != nil {
					return err
				}
				printKitResult(cmd, res)
				return nil
			},
		},
		&cobra.Command{
			Use:   "import FILE",
			Short: "Replace the catalog with a YAML or JSON kit file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				res, err := a.Kits.ImportKit(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printKitResult(cmd, res)
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List catalog entries",
			RunE: func(cmd *cobra.Command, args []string) error {
				views, err := a.Recommendations.List(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecommendations(views))
				return nil
			},
		},
	)

	return cmd
}

func printKitResult(cmd *cobra.Command, res *app.KitImportResult) {
	fmt.Fprintf(cmd.OutOrStdout(), "Loaded kit %s: %d items in %d categories\n",
		formatter.Bold(res.Name), res.ItemCount, res.CategoryCount)
}
