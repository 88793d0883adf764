package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/metrics"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// HealthColor returns the style for a health status.
func HealthColor(s metrics.HealthStatus) lipgloss.Style {
	switch s {
	case metrics.OffTrack:
		return StyleRed
	case metrics.AtRisk:
		return StyleYellow
	case metrics.Healthy:
		return StyleGreen
	default:
		return StyleDim
	}
}

// HealthIndicator returns a colored health label such as "● AT RISK".
func HealthIndicator(s metrics.HealthStatus) string {
	return HealthColor(s).Render("● " + strings.ToUpper(string(s)))
}

// BandColor returns the style for a time-reality band.
func BandColor(b metrics.RealityBand) lipgloss.Style {
	switch b {
	case metrics.BandExceeded:
		return StyleRed
	case metrics.BandApproaching:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// StatusPill returns a colored indicator for goal status.
func StatusPill(status domain.GoalStatus) string {
	switch status {
	case domain.GoalActive:
		return StyleGreen.Render("● Active")
	case domain.GoalCompleted:
		return StyleDim.Render("✔ Completed")
	case domain.GoalFailed:
		return StyleRed.Render("✖ Failed")
	default:
		return StyleDim.Render(string(status))
	}
}

// ImpactColor returns the style for a note impact.
func ImpactColor(i domain.NoteImpact) lipgloss.Style {
	switch i {
	case domain.ImpactPositive:
		return StyleGreen
	case domain.ImpactNegative:
		return StyleRed
	default:
		return StyleDim
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
