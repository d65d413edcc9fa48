package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusColor maps a traffic-light status onto the palette.
func StatusColor(s domain.Status) lipgloss.Style {
	switch s {
	case domain.StatusCritical:
		return StyleRed
	case domain.StatusWarning:
		return StyleYellow
	case domain.StatusOK:
		return StyleGreen
	default:
		return StyleDim
	}
}

// StatusPill returns a colored indicator such as "● CRITICAL".
func StatusPill(s domain.Status) string {
	switch s {
	case domain.StatusCritical:
		return StyleRed.Render("● CRITICAL")
	case domain.StatusWarning:
		return StyleYellow.Render("● WARNING")
	case domain.StatusOK:
		return StyleGreen.Render("● OK")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// ScoreStyle colors an overall 0-100 score with the same bands as categories.
func ScoreStyle(score int) lipgloss.Style {
	switch {
	case score < 30:
		return StyleRed
	case score < 70:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
