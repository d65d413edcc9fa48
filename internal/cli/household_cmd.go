package cli

import (
	"fmt"

	"github.com/alexanderramin/stockpile/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHouseholdCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "household",
		Short: "Show or change who the supplies are for",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the household",
			RunE: func(cmd *cobra.Command, args []string) error {
				h, err := a.Household.Get(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHousehold(h))
				return nil
			},
		},
		newHouseholdSetCmd(a),
	)

	return cmd
}

func newHouseholdSetCmd(a *App) *cobra.Command {
	var adults, children, pets, days int
	var freezer bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the household; opens a form when no flags are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			h, err := a.Household.Get(ctx)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.NFlag() == 0 && a.interactive() {
				fields := newHouseholdFields(h)
				if err := householdForm(fields).RunWithContext(ctx); err != nil {
					return err
				}
				if h, err = fields.toConfig(); err != nil {
					return err
				}
			} else {
				if flags.Changed("adults") {
					h.Adults = adults
				}
				if flags.Changed("children") {
					h.Children = children
				}
				if flags.Changed("pets") {
					h.Pets = pets
				}
				if flags.Changed("days") {
					h.SupplyDurationDays = days
				}
				if flags.Changed("freezer") {
					h.UseFreezer = freezer
				}
			}

			if err := a.Household.Update(ctx, h); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHousehold(h))
			return nil
		},
	}

	cmd.Flags().IntVar(&adults, "adults", 0, "Number of adults")
	cmd.Flags().IntVar(&children, "children", 0, "Number of children")
	cmd.Flags().IntVar(&pets, "pets", 0, "Number of pets")
	cmd.Flags().IntVar(&days, "days", 0, "Days the supplies should last")
	cmd.Flags().BoolVar(&freezer, "freezer", false, "Household relies on a freezer")

	return cmd
}
