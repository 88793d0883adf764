package metrics

import (
	"sort"
	"strings"

	"github.com/alexanderramin/journey/internal/domain"
)

type FeedNote struct {
	domain.Note
	GoalTitle string
}

type FailureEntry struct {
	domain.LogEntry
	GoalTitle string
}

// NotesFeed flattens notes from every goal, newest first.
func NotesFeed(goals []*domain.Goal) []FeedNote {
	var feed []FeedNote
	for _, g := range goals {
		for _, n := range g.Notes {
			feed = append(feed, FeedNote{Note: n, GoalTitle: g.Title})
		}
	}
	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].CreatedAt.After(feed[j].CreatedAt)
	})
	return feed
}

// FailureLog lists failure entries across goals, newest first.
func FailureLog(goals []*domain.Goal) []FailureEntry {
	var out []FailureEntry
	for _, g := range goals {
		for _, l := range g.Logs {
			if l.IsFailure() {
				out = append(out, FailureEntry{LogEntry: l, GoalTitle: g.Title})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

type ResourceBadge string

const (
	ResourceVideo    ResourceBadge = "Video"
	ResourceCourse   ResourceBadge = "Course"
	ResourceArticle  ResourceBadge = "Article"
	ResourceDocs     ResourceBadge = "Docs"
	ResourceDocument ResourceBadge = "Document"
	ResourceGeneric  ResourceBadge = "Resource"
)

var resourceRules = []struct {
	badge   ResourceBadge
	needles []string
}{
	{ResourceVideo, []string{"youtube.com", "youtu.be", "vimeo"}},
	{ResourceCourse, []string{"udemy", "coursera", "pluralsight"}},
	{ResourceArticle, []string{"medium", "dev.to", "blog"}},
	{ResourceDocs, []string{"docs", "documentation", "guide"}},
	{ResourceDocument, []string{".pdf"}},
}

// ResourceKind classifies a milestone link by substring. An empty link has
// no badge.
func ResourceKind(link string) (ResourceBadge, bool) {
	if link == "" {
		return "", false
	}
	lower := strings.ToLower(link)
	for _, r := range resourceRules {
		for _, n := range r.needles {
			if strings.Contains(lower, n) {
				return r.badge, true
			}
		}
	}
	return ResourceGeneric, true
}
