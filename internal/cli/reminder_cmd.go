package cli

import (
	"fmt"

	"github.com/alexanderramin/stockpile/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newReminderCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminder",
		Short: "Backup reminder",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "check",
			Short: "Report whether a backup is due",
			RunE: func(cmd *cobra.Command, args []string) error {
				due, err := a.Reminders.Check(cmd.Context())
				if err != nil {
					return err
				}
				if due {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleYellow.Render("Backup due"))
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("No backup needed"))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "dismiss",
			Short: "Hide the reminder until next month",
			RunE: func(cmd *cobra.Command, args []string) error {
				until, err := a.Reminders.Dismiss(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Reminder hidden until %s\n", until.Format(dateLayout))
				return nil
			},
		},
		&cobra.Command{
			Use:     "done",
			Aliases: []string{"backup"},
			Short:   "Record that a backup was made today",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.Reminders.RecordBackup(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Backup recorded")
				return nil
			},
		},
	)

	return cmd
}
