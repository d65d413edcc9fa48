package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/stockpile/internal/cli/formatter"
	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/spf13/cobra"
)

func newItemCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage inventory items",
	}

	cmd.AddCommand(
		newItemAddCmd(a),
		newItemListCmd(a),
		newItemQuantityCmd(a),
		newItemEnoughCmd(a),
		newItemRemoveCmd(a),
	)

	return cmd
}

func newItemAddCmd(a *App) *cobra.Command {
	var (
		name, categoryID, link, tag, expires string
		quantity, calories, water            float64
		unit                                 = domain.UnitPieces
		neverExpires                         bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item to the inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := parseDate(expires)
			if err != nil {
				return err
			}

			item := &domain.InventoryItem{
				Name:              name,
				CategoryID:        categoryID,
				Quantity:          quantity,
				Unit:              unit,
				ProductTemplateID: link,
				ItemType:          tag,
				ExpirationDate:    exp,
				NeverExpires:      neverExpires,
			}
			if cmd.Flags().Changed("calories") {
				item.CaloriesPerUnit = domain.Float64Ptr(calories)
			}
			if cmd.Flags().Changed("water-per-unit") {
				item.WaterLitersPerUnit = domain.Float64Ptr(water)
			}

			if err := a.Inventory.Add(cmd.Context(), item); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s) %s\n",
				item.Name, formatter.FormatQuantity(item.Quantity, item.Unit), formatter.TruncID(item.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Item name")
	cmd.Flags().StringVar(&categoryID, "category", "", "Category id, e.g. food")
	cmd.Flags().Float64Var(&quantity, "quantity", 0, "Quantity held")
	cmd.Flags().Var(newUnitFlag(&unit), "unit", "Unit ("+joinUnits()+")")
	cmd.Flags().StringVar(&link, "link", "", "Recommendation id this item fulfills")
	cmd.Flags().StringVar(&tag, "type", "", "Type tag for items without a link")
	cmd.Flags().Float64Var(&calories, "calories", 0, "Calories per unit")
	cmd.Flags().Float64Var(&water, "water-per-unit", 0, "Liters of water needed to prepare one unit")
	cmd.Flags().StringVar(&expires, "expires", "", "Expiration date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&neverExpires, "never-expires", false, "Item does not expire")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("quantity")
	cmd.MarkFlagsMutuallyExclusive("expires", "never-expires")

	return cmd
}

func newItemListCmd(a *App) *cobra.Command {
	var categoryID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List inventory items",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.Inventory.List(cmd.Context(), categoryID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatItems(items, a.now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryID, "category", "", "Only this category")

	return cmd
}

func newItemQuantityCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "qty ID QUANTITY",
		Short: "Set an item's quantity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			id, err := resolveItemID(cmd.Context(), a, args[0])
			if err != nil {
				return err
			}
			if err := a.Inventory.SetQuantity(cmd.Context(), id, q); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Quantity set to %s\n", formatter.FormatNumber(q))
			return nil
		},
	}
}

func newItemEnoughCmd(a *App) *cobra.Command {
	var off bool

	cmd := &cobra.Command{
		Use:   "enough ID",
		Short: "Mark an item as enough regardless of quantity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveItemID(cmd.Context(), a, args[0])
			if err != nil {
				return err
			}
			if err := a.Inventory.SetMarkedAsEnough(cmd.Context(), id, !off); err != nil {
				return err
			}
			if off {
				fmt.Fprintln(cmd.OutOrStdout(), "Item counts by quantity again")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Item marked as enough")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&off, "off", false, "Clear the mark")

	return cmd
}

func newItemRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Remove an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveItemID(cmd.Context(), a, args[0])
			if err != nil {
				return err
			}
			if err := a.Inventory.Remove(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Item removed")
			return nil
		},
	}
}
