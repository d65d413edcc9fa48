package cli

import (
	"fmt"

	"github.com/alexanderramin/stockpile/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRecommendationCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "recommendation",
		Aliases: []string{"rec"},
		Short:   "Turn catalog entries on or off for this household",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List recommendations with quantities for this household",
			RunE: func(cmd *cobra.Command, args []string) error {
				views, err := a.Recommendations.List(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecommendations(views))
				return nil
			},
		},
		&cobra.Command{
			Use:   "disable ID",
			Short: "Stop counting a recommendation",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.Recommendations.Disable(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Disabled %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "enable ID",
			Short: "Count a disabled recommendation again",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.Recommendations.Enable(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Enabled %s\n", args[0])
				return nil
			},
		},
	)

	return cmd
}
