package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/stockpile/internal/app"
	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/alexanderramin/stockpile/internal/readiness"
)

const statusProgressBarWidth = 10

// FormatDashboard renders every category as a row with the overall score
// underneath.
func FormatDashboard(resp *app.StatusResponse) string {
	var b strings.Builder

	rows := make([][]string, 0, len(resp.Categories))
	for _, c := range resp.Categories {
		rows = append(rows, []string{
			Bold(c.Name),
			StatusPill(c.Status),
			RenderProgress(c.CompletionPercentage, statusProgressBarWidth),
			haveNeed(c),
			shortCount(c),
		})
	}
	b.WriteString(Table{
		Headers:    []string{"CATEGORY", "STATUS", "COMPLETION", "HAVE / NEED", "SHORT"},
		Rows:       rows,
		RightAlign: map[int]bool{4: true},
	}.Render())

	b.WriteString("\n")
	b.WriteString(FormatScore(resp.Score) + "\n")
	b.WriteString(Dim(householdLine(resp.Household)) + "\n")
	if resp.ReminderDue {
		b.WriteString("\n" + reminderLine() + "\n")
	}
	return RenderBox("Preparedness", b.String())
}

// FormatCategory renders one category with its shortages and item counts.
func FormatCategory(c readiness.CategoryStatusSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", StatusPill(c.Status), RenderProgress(c.CompletionPercentage, statusProgressBarWidth*2))
	fmt.Fprintf(&b, "Have / need: %s\n", haveNeed(c))

	if c.Calories != nil {
		fmt.Fprintf(&b, "Calories: %s of %s kcal", FormatNumber(c.Calories.Actual), FormatNumber(c.Calories.Needed))
		if c.Calories.Missing > 0 {
			b.WriteString(StyleRed.Render(fmt.Sprintf(" (%s short)", FormatNumber(c.Calories.Missing))))
		}
		b.WriteString("\n")
	}
	if c.Water != nil {
		fmt.Fprintf(&b, "Water: %s of %s L (drinking %s + preparation %s)\n",
			FormatNumber(c.Water.Actual),
			FormatNumber(c.Water.Needed()),
			FormatNumber(c.Water.Drinking),
			FormatNumber(c.Water.Preparation))
	}
	fmt.Fprintf(&b, "Items: %s, %s, %s\n",
		StyleRed.Render(fmt.Sprintf("%d critical", c.Counts.Critical)),
		StyleYellow.Render(fmt.Sprintf("%d warning", c.Counts.Warning)),
		StyleGreen.Render(fmt.Sprintf("%d ok", c.Counts.OK)))

	if len(c.Shortages) > 0 {
		b.WriteString("\n" + Header("Shortages") + "\n")
		b.WriteString(shortageTable(c.Shortages))
	} else if !c.HasRecommendations {
		b.WriteString("\n" + Dim("No recommendations for this category.") + "\n")
	}

	return RenderBox(c.Name, b.String())
}

// FormatScore renders the overall score line.
func FormatScore(score int) string {
	return fmt.Sprintf("Preparedness score: %s", ScoreStyle(score).Render(fmt.Sprintf("%d/100", score)))
}

func haveNeed(c readiness.CategoryStatusSummary) string {
	if c.TotalNeeded <= 0 {
		if c.Calories != nil && c.Calories.Needed > 0 {
			return FormatNumber(c.Calories.Actual) + " / " + FormatQuantity(c.Calories.Needed, domain.UnitKcal)
		}
		if c.Water != nil && c.Water.Needed() > 0 {
			return FormatNumber(c.Water.Actual) + " / " + FormatQuantity(c.Water.Needed(), domain.UnitLiters)
		}
		return Dim("--")
	}
	return FormatNumber(c.TotalActual) + " / " + FormatQuantity(c.TotalNeeded, c.PrimaryUnit)
}

func shortCount(c readiness.CategoryStatusSummary) string {
	if len(c.Shortages) == 0 {
		return Dim("0")
	}
	return StatusColor(c.Status).Render(fmt.Sprint(len(c.Shortages)))
}

func shortageTable(shortages []readiness.CategoryShortage) string {
	rows := make([][]string, 0, len(shortages))
	for _, s := range shortages {
		rows = append(rows, []string{
			s.Name,
			FormatNumber(s.Actual),
			FormatNumber(s.Needed),
			StyleRed.Render(FormatNumber(s.Missing)),
			string(s.Unit),
		})
	}
	return Table{
		Headers:    []string{"ITEM", "HAVE", "NEED", "MISSING", "UNIT"},
		Rows:       rows,
		RightAlign: map[int]bool{1: true, 2: true, 3: true},
	}.Render()
}

func householdLine(h domain.HouseholdConfig) string {
	line := fmt.Sprintf("%d adults, %d children, %d pets, %d days", h.Adults, h.Children, h.Pets, h.SupplyDurationDays)
	if h.UseFreezer {
		line += ", freezer"
	}
	return line
}

func reminderLine() string {
	return StyleYellow.Render("Backup due: run `stockpile reminder done` after exporting, or `stockpile reminder dismiss`.")
}
