package metrics

import (
	"math"

	"github.com/alexanderramin/journey/internal/domain"
)

type HealthStatus string

const (
	Healthy  HealthStatus = "Healthy"
	AtRisk   HealthStatus = "At Risk"
	OffTrack HealthStatus = "Off Track"
)

type HealthReason string

const (
	ReasonRecentSetback HealthReason = "recent_setback"
	ReasonOverBudget    HealthReason = "over_budget"
	ReasonNearBudget    HealthReason = "near_budget"
	ReasonWithinBudget  HealthReason = "within_budget"
)

const (
	// overBudgetRatio and nearBudgetRatio are strict lower bounds.
	overBudgetRatio = 1.0
	nearBudgetRatio = 0.8
)

type HealthReport struct {
	Status HealthStatus
	Reason HealthReason
	Ratio  float64
}

// Health classifies a goal. The most recent log entry, by insertion order,
// takes precedence over the hours ratio.
func Health(g *domain.Goal) HealthReport {
	ratio := TimeRealityRatio(g)
	if last, ok := g.LastLog(); ok && last.IsFailure() {
		return HealthReport{Status: OffTrack, Reason: ReasonRecentSetback, Ratio: ratio}
	}
	switch {
	case ratio > overBudgetRatio:
		return HealthReport{Status: OffTrack, Reason: ReasonOverBudget, Ratio: ratio}
	case ratio > nearBudgetRatio:
		return HealthReport{Status: AtRisk, Reason: ReasonNearBudget, Ratio: ratio}
	default:
		return HealthReport{Status: Healthy, Reason: ReasonWithinBudget, Ratio: ratio}
	}
}

// TimeRealityRatio is actual over estimated hours. Estimates below one hour,
// including zero, are floored to one.
func TimeRealityRatio(g *domain.Goal) float64 {
	return ratio(g.ActualHours, g.EstimatedHours)
}

func ratio(actual, estimated float64) float64 {
	return actual / math.Max(estimated, 1)
}
