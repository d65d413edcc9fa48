package formatter

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title == "" {
		return boxStyle.Render(content)
	}
	return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// FormatNumber drops trailing zeros: 3 -> "3", 2.5 -> "2.5", 0.125 -> "0.13".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// FormatQuantity renders an amount with its unit. Weighted totals carry no
// unit and read as item counts.
func FormatQuantity(v float64, unit domain.Unit) string {
	if unit == "" {
		return FormatNumber(v) + " items"
	}
	return FormatNumber(v) + " " + string(unit)
}

// FormatDate renders a calendar day, or "--" when absent.
func FormatDate(t *time.Time) string {
	if t == nil {
		return Dim("--")
	}
	return t.Format("2006-01-02")
}

// ExpiryLabel describes an expiration date relative to now, colored by urgency.
func ExpiryLabel(exp *time.Time, neverExpires bool, now time.Time) string {
	if neverExpires {
		return Dim("never")
	}
	if exp == nil {
		return Dim("--")
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	ey, em, ed := exp.Date()
	day := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	days := int(day.Sub(today).Hours() / 24)

	text := day.Format("2006-01-02")
	switch {
	case days < 0:
		return StyleRed.Render(text + " expired")
	case days <= 30:
		return StyleYellow.Render(text + " in " + strconv.Itoa(days) + "d")
	default:
		return StyleFg.Render(text)
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
