package metrics

import (
	"sort"
	"time"

	"github.com/alexanderramin/journey/internal/domain"
)

type EventKind string

const (
	EventGoalCreated        EventKind = "created"
	EventMilestoneCompleted EventKind = "milestone"
	EventNoteAdded          EventKind = "note"
	EventLog                EventKind = "log"
)

type TimelineEvent struct {
	Kind    EventKind
	At      time.Time
	GoalID  string
	Title   string
	Content string
	Setback bool
}

// GoalTimeline lists one goal's dated events, newest first. Incomplete
// milestones have no date and are left out.
func GoalTimeline(g *domain.Goal) []TimelineEvent {
	events := []TimelineEvent{{
		Kind:   EventGoalCreated,
		At:     g.CreatedAt,
		GoalID: g.ID,
		Title:  "Goal Created",
	}}
	for _, m := range g.Milestones {
		if !m.IsCompleted || m.CompletedAt == nil {
			continue
		}
		events = append(events, TimelineEvent{
			Kind:   EventMilestoneCompleted,
			At:     *m.CompletedAt,
			GoalID: g.ID,
			Title:  "Milestone: " + m.Title,
		})
	}
	for _, n := range g.Notes {
		events = append(events, TimelineEvent{
			Kind:    EventNoteAdded,
			At:      n.CreatedAt,
			GoalID:  g.ID,
			Title:   "Note Added",
			Content: n.Content,
		})
	}
	events = append(events, logEvents(g)...)
	return newestFirst(events)
}

// JourneyTimeline merges goal starts, completed milestones and log entries
// across all goals, newest first.
func JourneyTimeline(goals []*domain.Goal) []TimelineEvent {
	var events []TimelineEvent
	for _, g := range goals {
		events = append(events, TimelineEvent{
			Kind:   EventGoalCreated,
			At:     g.CreatedAt,
			GoalID: g.ID,
			Title:  "Started Goal: " + g.Title,
		})
		for _, m := range g.Milestones {
			if !m.IsCompleted || m.CompletedAt == nil {
				continue
			}
			events = append(events, TimelineEvent{
				Kind:   EventMilestoneCompleted,
				At:     *m.CompletedAt,
				GoalID: g.ID,
				Title:  "Completed Milestone: " + m.Title,
			})
		}
		events = append(events, logEvents(g)...)
	}
	return newestFirst(events)
}

func logEvents(g *domain.Goal) []TimelineEvent {
	events := make([]TimelineEvent, 0, len(g.Logs))
	for _, l := range g.Logs {
		title := "Log"
		if l.IsFailure() {
			title = "Setback"
		}
		events = append(events, TimelineEvent{
			Kind:    EventLog,
			At:      l.CreatedAt,
			GoalID:  g.ID,
			Title:   title,
			Content: l.Reason,
			Setback: l.IsFailure(),
		})
	}
	return events
}

// newestFirst drops undated events and sorts the rest by time, descending.
// Ties keep their original relative order.
func newestFirst(events []TimelineEvent) []TimelineEvent {
	out := events[:0]
	for _, e := range events {
		if !e.At.IsZero() {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].At.After(out[j].At)
	})
	return out
}
