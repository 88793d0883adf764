package metrics

import (
	"fmt"

	"github.com/alexanderramin/journey/internal/domain"
)

// MaxSuggestions caps the list returned by Suggestions.
const MaxSuggestions = 2

type SuggestionKind string

const (
	SuggestPlanPath         SuggestionKind = "plan_path"
	SuggestTimeCheck        SuggestionKind = "time_check"
	SuggestReflect          SuggestionKind = "reflect"
	SuggestNextStep         SuggestionKind = "next_step"
	SuggestContinueLearning SuggestionKind = "continue_learning"
	SuggestKeepMomentum     SuggestionKind = "keep_momentum"
)

// Title is the heading shown for a suggestion kind.
func (k SuggestionKind) Title() string {
	switch k {
	case SuggestPlanPath:
		return "Plan Your Path"
	case SuggestTimeCheck:
		return "Time Check"
	case SuggestReflect:
		return "Reflect"
	case SuggestNextStep:
		return "Next Step"
	case SuggestContinueLearning:
		return "Continue Learning"
	default:
		return "Keep Momentum"
	}
}

type Suggestion struct {
	Kind        SuggestionKind
	GoalID      string
	MilestoneID string
	Text        string
}

// Suggestions picks at most one suggestion per active goal, first match
// wins, in goal order. An empty result becomes a single keep-momentum
// suggestion. The list is truncated to MaxSuggestions.
func Suggestions(goals []*domain.Goal) []Suggestion {
	var out []Suggestion
	for _, g := range goals {
		if !g.IsActive() {
			continue
		}
		if s, ok := suggestFor(g); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return []Suggestion{{
			Kind: SuggestKeepMomentum,
			Text: "You are doing great! Update your progress on a current goal.",
		}}
	}
	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}

func suggestFor(g *domain.Goal) (Suggestion, bool) {
	if len(g.Milestones) == 0 {
		return Suggestion{
			Kind:   SuggestPlanPath,
			GoalID: g.ID,
			Text:   fmt.Sprintf("Break down %s into clear milestones.", g.Title),
		}, true
	}
	if h := Health(g); h.Status != Healthy {
		return Suggestion{
			Kind:   SuggestTimeCheck,
			GoalID: g.ID,
			Text:   fmt.Sprintf("%s is %s. Review your time usage.", g.Title, h.Status),
		}, true
	}
	if len(g.Notes) == 0 {
		return Suggestion{
			Kind:   SuggestReflect,
			GoalID: g.ID,
			Text:   fmt.Sprintf("Capture your initial thoughts for %s.", g.Title),
		}, true
	}
	for _, m := range g.Milestones {
		if m.IsCompleted {
			continue
		}
		kind := SuggestNextStep
		if m.HasLink() {
			kind = SuggestContinueLearning
		}
		return Suggestion{
			Kind:        kind,
			GoalID:      g.ID,
			MilestoneID: m.ID,
			Text:        fmt.Sprintf("Advance %s by completing %q.", g.Title, m.Title),
		}, true
	}
	return Suggestion{}, false
}
