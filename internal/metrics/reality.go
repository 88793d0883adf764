package metrics

import (
	"math"

	"github.com/alexanderramin/journey/internal/domain"
)

type RealityBand string

const (
	BandOnTrack     RealityBand = "on_track"
	BandApproaching RealityBand = "approaching"
	BandExceeded    RealityBand = "exceeded"
)

// Insight returns the user-facing sentence for a band.
func (b RealityBand) Insight() string {
	switch b {
	case BandExceeded:
		return "Time usage exceeds expectations"
	case BandApproaching:
		return "Approaching estimated limit"
	default:
		return "You are on track"
	}
}

type Reality struct {
	Estimated float64
	Actual    float64
	Ratio     float64
	Band      RealityBand
	// Fill is the ratio as a percentage capped at 100, for progress bars.
	Fill float64
}

type GoalRealityRow struct {
	GoalID  string
	Title   string
	Reality Reality
}

// AggregateReality sums hours over active goals only.
func AggregateReality(goals []*domain.Goal) Reality {
	var est, act float64
	for _, g := range goals {
		if !g.IsActive() {
			continue
		}
		est += g.EstimatedHours
		act += g.ActualHours
	}
	return newReality(est, act)
}

func GoalReality(g *domain.Goal) Reality {
	return newReality(g.EstimatedHours, g.ActualHours)
}

// RealityRows returns per-goal reality for active goals in list order.
func RealityRows(goals []*domain.Goal) []GoalRealityRow {
	var rows []GoalRealityRow
	for _, g := range goals {
		if !g.IsActive() {
			continue
		}
		rows = append(rows, GoalRealityRow{GoalID: g.ID, Title: g.Title, Reality: GoalReality(g)})
	}
	return rows
}

func newReality(est, act float64) Reality {
	r := ratio(act, est)
	return Reality{
		Estimated: est,
		Actual:    act,
		Ratio:     r,
		Band:      bandFor(r),
		Fill:      math.Min(100, r*100),
	}
}

func bandFor(r float64) RealityBand {
	switch {
	case r > overBudgetRatio:
		return BandExceeded
	case r > nearBudgetRatio:
		return BandApproaching
	default:
		return BandOnTrack
	}
}
