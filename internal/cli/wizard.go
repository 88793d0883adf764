package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/journey/internal/cli/formatter"
	"github.com/alexanderramin/journey/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// journeyHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func journeyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
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

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(journeyHuhTheme()).WithShowHelp(false)
}

// wizardProfile asks for the profile fields. Existing values are pre-filled.
func wizardProfile(name, bio, avatar *string) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Your name").
				Value(name).
				Validate(domain.ValidateProfileName),
			huh.NewText().
				Title("Bio").
				Description("Optional").
				Value(bio),
			huh.NewInput().
				Title("Avatar URL").
				Description("Optional").
				Value(avatar),
		),
	)
}

// wizardNewGoal asks for the goal creation fields.
func wizardNewGoal(title, description, deadline, hours, tags *string) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What do you want to achieve?").
				Value(title).
				Validate(validateRequired("title")),
			huh.NewText().
				Title("Description").
				Value(description),
			huh.NewInput().
				Title("Deadline").
				Placeholder("YYYY-MM-DD").
				Value(deadline).
				Validate(validateDate),
			huh.NewInput().
				Title("Estimated hours").
				Placeholder("0").
				Value(hours).
				Validate(validateOptionalHours),
			huh.NewInput().
				Title("Tags").
				Description("Comma separated").
				Value(tags),
		),
	)
}

// wizardReflection asks the three completion questions.
func wizardReflection(worked, didntWork, differently *string) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewText().
				Title("What worked?").
				Value(worked).
				Validate(validateRequired("what worked")),
			huh.NewText().
				Title("What didn't work?").
				Value(didntWork),
			huh.NewText().
				Title("What would you do differently?").
				Value(differently),
		),
	)
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	)
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validateDate accepts a YYYY-MM-DD date string.
func validateDate(s string) error {
	if _, err := domain.ParseDate(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateOptionalHours accepts empty or a non-negative number.
func validateOptionalHours(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a number of hours")
	}
	return nil
}

// parseHoursOrZero converts a validated hours string.
func parseHoursOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// splitTags turns "go, backend" into its parts. Normalization happens in
// the domain.
func splitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}
