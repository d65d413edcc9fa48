package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/stockpile/internal/cli/formatter"
	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func stockpileHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// householdFields are the string-backed values a household form edits.
type householdFields struct {
	Adults, Children, Pets, Days string
	Freezer                      bool
}

func newHouseholdFields(h domain.HouseholdConfig) *householdFields {
	return &householdFields{
		Adults:   strconv.Itoa(h.Adults),
		Children: strconv.Itoa(h.Children),
		Pets:     strconv.Itoa(h.Pets),
		Days:     strconv.Itoa(h.SupplyDurationDays),
		Freezer:  h.UseFreezer,
	}
}

func (f *householdFields) toConfig() (domain.HouseholdConfig, error) {
	var h domain.HouseholdConfig
	for _, field := range []struct {
		name string
		raw  string
		dst  *int
	}{
		{"adults", f.Adults, &h.Adults},
		{"children", f.Children, &h.Children},
		{"pets", f.Pets, &h.Pets},
		{"days", f.Days, &h.SupplyDurationDays},
	} {
		v, err := strconv.Atoi(field.raw)
		if err != nil {
			return h, fmt.Errorf("%s: enter a whole number", field.name)
		}
		*field.dst = v
	}
	h.UseFreezer = f.Freezer
	return h, nil
}

func householdForm(f *householdFields) *huh.Form {
	count := func(title string, value *string) *huh.Input {
		return huh.NewInput().
			Title(title).
			Value(value).
			Validate(validateNonNegativeInt)
	}
	return huh.NewForm(
		huh.NewGroup(
			count("Adults", &f.Adults),
			count("Children", &f.Children),
			count("Pets", &f.Pets),
			count("Supply duration (days)", &f.Days),
			huh.NewConfirm().
				Title("Do you rely on a freezer?").
				Description("Frozen food only counts when the household has one.").
				Value(&f.Freezer),
		),
	).WithTheme(stockpileHuhTheme()).WithShowHelp(false)
}

// validateNonNegativeInt accepts a whole number of zero or more.
func validateNonNegativeInt(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a whole number, 0 or more")
	}
	return nil
}
