package metrics

import "github.com/alexanderramin/journey/internal/domain"

type GoalStats struct {
	Total     int
	Completed int
	Active    int
}

func Stats(goals []*domain.Goal) GoalStats {
	s := GoalStats{Total: len(goals)}
	for _, g := range goals {
		switch g.Status {
		case domain.GoalCompleted:
			s.Completed++
		case domain.GoalActive:
			s.Active++
		}
	}
	return s
}

type RoadmapStats struct {
	Total     int
	Completed int
	// Learning counts milestones that link to an external resource.
	Learning int
	Rate     int
}

type RoadmapItem struct {
	GoalID    string
	GoalTitle string
	Milestone domain.Milestone
	Badge     ResourceBadge
}

type RoadmapView struct {
	Stats RoadmapStats
	Items []RoadmapItem
}

// Roadmap flattens milestones across goals in goal order.
func Roadmap(goals []*domain.Goal) RoadmapView {
	var v RoadmapView
	for _, g := range goals {
		for _, m := range g.Milestones {
			v.Stats.Total++
			if m.IsCompleted {
				v.Stats.Completed++
			}
			badge, linked := ResourceKind(m.ExternalLink)
			if linked {
				v.Stats.Learning++
			}
			v.Items = append(v.Items, RoadmapItem{
				GoalID:    g.ID,
				GoalTitle: g.Title,
				Milestone: m,
				Badge:     badge,
			})
		}
	}
	v.Stats.Rate = RoundPercent(v.Stats.Completed, v.Stats.Total)
	return v
}
