package importer

import (
	"fmt"

	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/service"
)

// Convert turns a validated goal entry into service input.
// Call ValidatePlan first; Convert only re-parses the deadline.
func Convert(g GoalImport) (service.NewGoalInput, []service.MilestoneInput, error) {
	deadline, err := domain.ParseDate(g.Deadline)
	if err != nil {
		return service.NewGoalInput{}, nil, fmt.Errorf("parsing deadline: %w", err)
	}

	in := service.NewGoalInput{
		Title:       g.Title,
		Description: g.Description,
		Deadline:    deadline,
		Tags:        g.Tags,
	}
	if g.EstimatedHours != nil {
		in.EstimatedHours = *g.EstimatedHours
	}

	milestones := make([]service.MilestoneInput, 0, len(g.Milestones))
	for _, m := range g.Milestones {
		milestones = append(milestones, service.MilestoneInput{
			Title:       m.Title,
			Description: m.Description,
			Link:        m.Link,
		})
	}
	return in, milestones, nil
}
