package cli

import (
	"fmt"

	"github.com/alexanderramin/stockpile/internal/cli/formatter"
	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/spf13/cobra"
)

func newOptionsCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Show or override calculation defaults",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show effective calculation options",
			RunE: func(cmd *cobra.Command, args []string) error {
				opts, err := a.Options.Get(cmd.Context())
				if err != nil {
					return err
				}
				a.printOptions(cmd, opts)
				return nil
			},
		},
		newOptionsSetCmd(a),
	)

	return cmd
}

func newOptionsSetCmd(a *App) *cobra.Command {
	var changes domain.CategoryCalculationOptions
	var reset bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Override calculation options; pass \"default\" to clear one",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts, err := a.Options.Get(ctx)
			if err != nil {
				return err
			}
			if reset {
				opts = domain.CategoryCalculationOptions{}
			}

			flags := cmd.Flags()
			if flags.Changed("children-multiplier") {
				opts.ChildrenMultiplier = changes.ChildrenMultiplier
			}
			if flags.Changed("daily-calories") {
				opts.DailyCaloriesPerPerson = changes.DailyCaloriesPerPerson
			}
			if flags.Changed("daily-water") {
				opts.DailyWaterPerPerson = changes.DailyWaterPerPerson
			}

			if err := a.Options.Update(ctx, opts); err != nil {
				return err
			}
			a.printOptions(cmd, opts)
			return nil
		},
	}

	cmd.Flags().Var(optionalFloat{&changes.ChildrenMultiplier}, "children-multiplier", "Share of an adult's needs a child counts for")
	cmd.Flags().Var(optionalFloat{&changes.DailyCaloriesPerPerson}, "daily-calories", "Calories per person per day")
	cmd.Flags().Var(optionalFloat{&changes.DailyWaterPerPerson}, "daily-water", "Liters of drinking water per person per day")
	cmd.Flags().BoolVar(&reset, "reset", false, "Clear all overrides first")

	return cmd
}

func (a *App) printOptions(cmd *cobra.Command, opts domain.CategoryCalculationOptions) {
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatOptions(opts, a.Config, a.Config.WithOptions(opts)))
}
