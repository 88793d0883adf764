package importer

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/journey/internal/domain"
)

// ValidatePlan checks the whole plan before anything is created.
// Returns a slice of all validation errors found.
func ValidatePlan(plan *PlanFile) []error {
	if len(plan.Goals) == 0 {
		return []error{fmt.Errorf("goals: at least one goal is required")}
	}
	var errs []error
	for i := range plan.Goals {
		errs = append(errs, validateGoal(fmt.Sprintf("goals[%d]", i), &plan.Goals[i])...)
	}
	return errs
}

func validateGoal(path string, g *GoalImport) []error {
	var errs []error

	if strings.TrimSpace(g.Title) == "" {
		errs = append(errs, fmt.Errorf("%s.title is required", path))
	}
	if g.Deadline == "" {
		errs = append(errs, fmt.Errorf("%s.deadline is required", path))
	} else if _, err := domain.ParseDate(g.Deadline); err != nil {
		errs = append(errs, fmt.Errorf("%s.deadline: invalid date format %q (expected YYYY-MM-DD)", path, g.Deadline))
	}
	if h := g.EstimatedHours; h != nil && (math.IsNaN(*h) || math.IsInf(*h, 0) || *h < 0) {
		errs = append(errs, fmt.Errorf("%s.estimated_hours must be zero or more", path))
	}

	for i, m := range g.Milestones {
		mp := fmt.Sprintf("%s.milestones[%d]", path, i)
		if strings.TrimSpace(m.Title) == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", mp))
		}
		if err := domain.ValidateExternalLink(strings.TrimSpace(m.Link)); err != nil {
			errs = append(errs, fmt.Errorf("%s.link %q must start with http:// or https://", mp, m.Link))
		}
	}

	return errs
}
