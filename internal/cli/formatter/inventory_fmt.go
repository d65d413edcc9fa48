package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/alexanderramin/stockpile/internal/readiness"
	"github.com/alexanderramin/stockpile/internal/service"
)

// FormatItems renders the inventory as a table. now drives expiry coloring.
func FormatItems(items []domain.InventoryItem, now time.Time) string {
	if len(items) == 0 {
		return Dim("No items yet. Add one with `stockpile item add`.") + "\n"
	}

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		name := it.Name
		if it.MarkedAsEnough {
			name += " " + StyleGreen.Render("✔")
		}
		link := Dim("custom")
		if !it.IsCustom() {
			link = StyleBlue.Render(it.ItemType)
		}
		rows = append(rows, []string{
			TruncID(it.ID),
			Bold(name),
			it.CategoryID,
			FormatQuantity(it.Quantity, it.Unit),
			link,
			ExpiryLabel(it.ExpirationDate, it.NeverExpires, now),
		})
	}
	return Table{
		Headers:    []string{"ID", "NAME", "CATEGORY", "QUANTITY", "TYPE", "EXPIRES"},
		Rows:       rows,
		RightAlign: map[int]bool{3: true},
	}.Render()
}

// FormatRecommendations renders the catalog with per-household quantities.
func FormatRecommendations(views []service.RecommendationView) string {
	if len(views) == 0 {
		return Dim("No recommendations. Load the built-in kit with `stockpile kit init`.") + "\n"
	}

	rows := make([][]string, 0, len(views))
	for _, v := range views {
		state := StyleGreen.Render("on")
		if v.Disabled {
			state = Dim("off")
		}
		rows = append(rows, []string{
			v.Item.ID,
			v.Item.Name,
			v.Item.CategoryID,
			FormatQuantity(v.Recommended, v.Item.Unit),
			scaling(v.Item),
			state,
		})
	}
	return Table{
		Headers:    []string{"ID", "NAME", "CATEGORY", "RECOMMENDED", "SCALES", "STATE"},
		Rows:       rows,
		RightAlign: map[int]bool{3: true},
	}.Render()
}

func scaling(r domain.RecommendedItem) string {
	s := ""
	if r.ScaleWithPeople {
		s += "P"
	}
	if r.ScaleWithDays {
		s += "D"
	}
	if r.ScaleWithPets {
		s += "A"
	}
	if r.RequiresFreezer {
		s += "F"
	}
	if s == "" {
		return Dim("-")
	}
	return s
}

// FormatHousehold renders the household configuration.
func FormatHousehold(h domain.HouseholdConfig) string {
	freezer := "no"
	if h.UseFreezer {
		freezer = "yes"
	}
	return RenderBox("Household", fmt.Sprintf(
		"Adults:   %d\nChildren: %d\nPets:     %d\nDays:     %d\nFreezer:  %s",
		h.Adults, h.Children, h.Pets, h.SupplyDurationDays, freezer,
	))
}

// FormatOptions shows each calculation option with its effective value,
// noting the default next to overridden ones.
func FormatOptions(opts domain.CategoryCalculationOptions, defaults, effective readiness.Config) string {
	line := func(label string, set *float64, def, eff float64, unit string) string {
		suffix := Dim(" (default)")
		if set != nil {
			suffix = Dim(fmt.Sprintf(" (default %s)", FormatNumber(def)))
		}
		return fmt.Sprintf("%-26s %s%s%s", label, FormatNumber(eff), unit, suffix)
	}
	lines := []string{
		line("Children multiplier:", opts.ChildrenMultiplier, defaults.ChildrenMultiplier, effective.ChildrenMultiplier, ""),
		line("Daily calories / person:", opts.DailyCaloriesPerPerson, defaults.DailyCaloriesPerPerson, effective.DailyCaloriesPerPerson, " kcal"),
		line("Daily water / person:", opts.DailyWaterPerPerson, defaults.DailyWaterPerPerson, effective.DailyWaterPerPerson, " L"),
	}
	return RenderBox("Calculation options", strings.Join(lines, "\n"))
}
