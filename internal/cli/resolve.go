package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/journey/internal/domain"
)

// resolveGoalID accepts a full id, the short display id or an id prefix.
func resolveGoalID(ctx context.Context, app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", domain.Invalid("goal", "is required")
	}

	goals, err := app.Goals.ListGoals(ctx)
	if err != nil {
		return "", err
	}

	// 1. Exact id
	for _, g := range goals {
		if g.ID == input {
			return g.ID, nil
		}
	}

	// 2. Short id, case-insensitive
	for _, g := range goals {
		if strings.EqualFold(g.DisplayID(), input) {
			return g.ID, nil
		}
	}

	// 3. Prefix
	var matches []string
	for _, g := range goals {
		if strings.HasPrefix(g.ID, input) {
			matches = append(matches, g.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", domain.NotFoundf("goal %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", domain.Invalid("goal", fmt.Sprintf("id prefix %q is ambiguous (%d matches)", input, len(matches)))
	}
}

// resolveMilestoneID accepts the 1-based position shown by "milestone list",
// a full milestone id or its short form.
func resolveMilestoneID(g *domain.Goal, input string) (string, error) {
	input = strings.TrimSpace(input)
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(g.Milestones) {
			return "", domain.NotFoundf("milestone #%d in goal %s", n, g.DisplayID())
		}
		return g.Milestones[n-1].ID, nil
	}
	for _, m := range g.Milestones {
		if m.ID == input || strings.EqualFold(domain.ShortID(m.ID), input) {
			return m.ID, nil
		}
	}
	return "", domain.NotFoundf("milestone %q in goal %s", input, g.DisplayID())
}
