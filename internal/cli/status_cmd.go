package cli

import (
	"fmt"

	"github.com/alexanderramin/stockpile/internal/app"
	"github.com/alexanderramin/stockpile/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(a *App) *cobra.Command {
	var categoryID, textfile string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show preparedness per category",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.NewStatusRequest()
			req.CategoryID = categoryID

			resp, err := a.Status.GetStatus(cmd.Context(), req)
			if err != nil {
				return err
			}

			if categoryID != "" && len(resp.Categories) == 1 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCategory(resp.Categories[0]))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDashboard(resp))
			}

			return a.exportMetrics(resp, textfile)
		},
	}

	cmd.Flags().StringVar(&categoryID, "category", "", "Show a single category in detail")
	cmd.Flags().StringVar(&textfile, "textfile", "", "Write Prometheus metrics to this file")

	return cmd
}

func newScoreCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Print the overall preparedness score",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Status.GetStatus(cmd.Context(), app.NewStatusRequest())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatScore(resp.Score))
			return a.exportMetrics(resp, "")
		},
	}
}

// exportMetrics refreshes the collector and writes the textfile when a
// path is configured. The flag wins over the environment.
func (a *App) exportMetrics(resp *app.StatusResponse, path string) error {
	if a.Metrics == nil {
		return nil
	}
	a.Metrics.RecordDashboard(resp.Categories, resp.Score)
	a.Metrics.RecordReminder(resp.ReminderDue)

	if path == "" {
		path = a.MetricsTextfile
	}
	if path == "" {
		return nil
	}
	return a.Metrics.WriteTextfile(path)
}
