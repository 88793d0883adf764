package domain

import (
	"sort"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used for deadlines.
const DateLayout = "2006-01-02"

type Goal struct {
	ID             string
	UserID         string
	Title          string
	Description    string
	Deadline       time.Time
	CreatedAt      time.Time
	EstimatedHours float64
	ActualHours    float64
	Status         GoalStatus
	Reflection     *Reflection
	CompletedAt    *time.Time

	Milestones []Milestone
	Notes      []Note
	Logs       []LogEntry
	Comments   []Comment
	Tags       []string
}

// Reflection is captured when a goal is completed.
type Reflection struct {
	Worked      string
	DidntWork   string
	Differently string
}

func NewGoal(userID, title, description string, deadline time.Time, estimatedHours float64, tags []string, now time.Time) *Goal {
	return &Goal{
		ID:             NewID(),
		UserID:         userID,
		Title:          title,
		Description:    description,
		Deadline:       TruncateToDate(deadline),
		CreatedAt:      now.UTC(),
		EstimatedHours: estimatedHours,
		Status:         GoalActive,
		Tags:           NormalizeTags(tags),
	}
}

func (g *Goal) IsActive() bool {
	return g.Status == GoalActive
}

func (g *Goal) IsCompleted() bool {
	return g.Status == GoalCompleted
}

func (g *Goal) AddMilestone(title, description, link string) Milestone {
	m := NewMilestone(g.ID, title, description, link)
	g.Milestones = append(g.Milestones, m)
	return m
}

// ToggleMilestone flips the milestone with the given id. It returns the
// updated milestone, or false when the goal has no such milestone.
func (g *Goal) ToggleMilestone(milestoneID string, now time.Time) (Milestone, bool) {
	for i := range g.Milestones {
		if g.Milestones[i].ID == milestoneID {
			g.Milestones[i].Toggle(now)
			return g.Milestones[i], true
		}
	}
	return Milestone{}, false
}

func (g *Goal) FindMilestone(milestoneID string) (Milestone, bool) {
	for _, m := range g.Milestones {
		if m.ID == milestoneID {
			return m, true
		}
	}
	return Milestone{}, false
}

func (g *Goal) AddNote(content string, attachments []AttachmentRef, noteType NoteType, impact NoteImpact, now time.Time) Note {
	n := NewNote(g.ID, content, attachments, noteType, impact, now)
	g.Notes = append(g.Notes, n)
	return n
}

func (g *Goal) AppendLog(logType LogType, reason string, now time.Time) LogEntry {
	l := NewLogEntry(g.ID, logType, reason, now)
	g.Logs = append(g.Logs, l)
	return l
}

func (g *Goal) LogFailure(reason string, now time.Time) LogEntry {
	return g.AppendLog(LogFailure, reason, now)
}

// LastLog returns the most recently appended log entry.
func (g *Goal) LastLog() (LogEntry, bool) {
	if len(g.Logs) == 0 {
		return LogEntry{}, false
	}
	return g.Logs[len(g.Logs)-1], true
}

func (g *Goal) AddComment(userName, content string, now time.Time) Comment {
	c := NewComment(g.ID, userName, content, now)
	g.Comments = append(g.Comments, c)
	return c
}

// AddHours accumulates logged time. Non-positive values are ignored so
// ActualHours never decreases.
func (g *Goal) AddHours(hours float64) {
	if hours > 0 {
		g.ActualHours += hours
	}
}

// MarkCompleted moves an active goal to completed. Completion is terminal.
func (g *Goal) MarkCompleted(r Reflection, now time.Time) error {
	if !g.IsActive() {
		return ErrGoalNotActive
	}
	t := now.UTC()
	g.Status = GoalCompleted
	g.Reflection = &r
	g.CompletedAt = &t
	return nil
}

func (g *Goal) SetTags(tags []string) {
	g.Tags = NormalizeTags(tags)
}

func (g *Goal) HasTag(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	i := sort.SearchStrings(g.Tags, tag)
	return i < len(g.Tags) && g.Tags[i] == tag
}

// Clone returns a deep copy. Commands mutate clones so that a failed save
// never leaves a half-applied goal in memory.
func (g *Goal) Clone() *Goal {
	if g == nil {
		return nil
	}
	c := *g
	if g.Reflection != nil {
		r := *g.Reflection
		c.Reflection = &r
	}
	c.CompletedAt = cloneTime(g.CompletedAt)

	if g.Milestones != nil {
		c.Milestones = make([]Milestone, len(g.Milestones))
		for i, m := range g.Milestones {
			m.CompletedAt = cloneTime(m.CompletedAt)
			c.Milestones[i] = m
		}
	}
	if g.Notes != nil {
		c.Notes = make([]Note, len(g.Notes))
		for i, n := range g.Notes {
			if n.Attachments != nil {
				n.Attachments = append([]AttachmentRef(nil), n.Attachments...)
			}
			c.Notes[i] = n
		}
	}
	if g.Logs != nil {
		c.Logs = append([]LogEntry(nil), g.Logs...)
	}
	if g.Comments != nil {
		c.Comments = append([]Comment(nil), g.Comments...)
	}
	if g.Tags != nil {
		c.Tags = append([]string(nil), g.Tags...)
	}
	return &c
}

// DisplayID returns the trailing 8 characters of the id. UUIDv7 ids share
// their leading timestamp bits, so the tail is the distinguishing part.
func (g *Goal) DisplayID() string {
	return ShortID(g.ID)
}

// ShortID returns the trailing 8 characters of id.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[len(id)-8:]
}

// NormalizeTags lowercases, trims, de-duplicates and sorts tags.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	sort.Strings(out)
	return out
}

// TruncateToDate drops the clock part, keeping the calendar date in UTC.
func TruncateToDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD deadline.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, Invalid("deadline", "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
