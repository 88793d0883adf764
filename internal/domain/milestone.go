package domain

import (
	"regexp"
	"time"
)

var externalLinkPattern = regexp.MustCompile(`^https?://`)

type Milestone struct {
	ID           string
	GoalID       string
	Title        string
	Description  string
	ExternalLink string
	IsCompleted  bool
	CompletedAt  *time.Time
}

func NewMilestone(goalID, title, description, link string) Milestone {
	return Milestone{
		ID:           NewID(),
		GoalID:       goalID,
		Title:        title,
		Description:  description,
		ExternalLink: link,
	}
}

// HasLink reports whether the milestone points at a learning resource.
func (m *Milestone) HasLink() bool {
	return m.ExternalLink != ""
}

// Toggle flips completion. completedAt is stamped on false->true and
// cleared on true->false.
func (m *Milestone) Toggle(now time.Time) {
	if m.IsCompleted {
		m.IsCompleted = false
		m.CompletedAt = nil
		return
	}
	t := now.UTC()
	m.IsCompleted = true
	m.CompletedAt = &t
}

// ValidateExternalLink accepts an empty link or one starting with
// http:// or https://.
func ValidateExternalLink(link string) error {
	if link == "" {
		return nil
	}
	if !externalLinkPattern.MatchString(link) {
		return Invalid("link", "must start with http:// or https://")
	}
	return nil
}
