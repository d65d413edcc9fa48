package cli

import (
	"fmt"

	"github.com/alexanderramin/stockpile/internal/app"
	"github.com/alexanderramin/stockpile/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newShoppingListCmd(a *App) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "shopping-list",
		Aliases: []string{"shop"},
		Short:   "List everything missing from the recommendations",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.ShoppingList.ShoppingList(cmd.Context(), app.ShoppingListRequest{})
			if err != nil {
				return err
			}
			if plain {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatShoppingListPlain(resp))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatShoppingList(resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Tab-separated output without styling")

	return cmd
}
