// Package metrics derives read-only views from goal state. Nothing here is
// stored; every value is recomputed from the goals passed in.
package metrics

import "github.com/alexanderramin/journey/internal/domain"

// Progress returns the share of completed milestones as a whole percentage.
// A goal without milestones is at 0.
func Progress(g *domain.Goal) int {
	done := 0
	for _, m := range g.Milestones {
		if m.IsCompleted {
			done++
		}
	}
	return RoundPercent(done, len(g.Milestones))
}

// RoundPercent computes round(100*k/n) with halves rounded up, using
// integer arithmetic so 1/8 gives 13 rather than a float artifact.
func RoundPercent(k, n int) int {
	if n <= 0 || k <= 0 {
		return 0
	}
	if k >= n {
		return 100
	}
	return (200*k + n) / (2 * n)
}
