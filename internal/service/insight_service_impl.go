package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/metrics"
	"github.com/alexanderramin/journey/internal/repository"
)

type insightService struct {
	goals repository.Goals
	users repository.UserStore
}

func NewInsightService(goals repository.Goals, users repository.UserStore) InsightService {
	return &insightService{goals: goals, users: users}
}

func (s *insightService) Dashboard(ctx context.Context) (*Dashboard, error) {
	user, _, err := s.users.LoadUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w: %w", domain.ErrStorage, err)
	}
	goals, err := s.goals.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]GoalSummary, 0, len(goals))
	for _, g := range goals {
		summaries = append(summaries, GoalSummary{
			Goal:     g,
			Progress: metrics.Progress(g),
			Health:   metrics.Health(g),
		})
	}
	return &Dashboard{
		User:        user,
		Stats:       metrics.Stats(goals),
		Goals:       summaries,
		Suggestions: metrics.Suggestions(goals),
	}, nil
}

func (s *insightService) Reality(ctx context.Context) (*RealityView, error) {
	goals, err := s.goals.List(ctx)
	if err != nil {
		return nil, err
	}
	return &RealityView{
		Aggregate: metrics.AggregateReality(goals),
		Rows:      metrics.RealityRows(goals),
	}, nil
}

func (s *insightService) Roadmap(ctx context.Context) (metrics.RoadmapView, error) {
	goals, err := s.goals.List(ctx)
	if err != nil {
		return metrics.RoadmapView{}, err
	}
	return metrics.Roadmap(goals), nil
}

func (s *insightService) Notes(ctx context.Context) ([]metrics.FeedNote, error) {
	goals, err := s.goals.List(ctx)
	if err != nil {
		return nil, err
	}
	return metrics.NotesFeed(goals), nil
}

func (s *insightService) Failures(ctx context.Context) ([]metrics.FailureEntry, error) {
	goals, err := s.goals.List(ctx)
	if err != nil {
		return nil, err
	}
	return metrics.FailureLog(goals), nil
}

func (s *insightService) Timeline(ctx context.Context) ([]metrics.TimelineEvent, error) {
	goals, err := s.goals.List(ctx)
	if err != nil {
		return nil, err
	}
	return metrics.JourneyTimeline(goals), nil
}

func (s *insightService) GoalDetail(ctx context.Context, goalID string, now time.Time) (*GoalDetail, error) {
	g, err := s.goals.GetByID(ctx, goalID)
	if err != nil {
		return nil, err
	}
	return &GoalDetail{
		Goal:      g,
		Progress:  metrics.Progress(g),
		Health:    metrics.Health(g),
		Reality:   metrics.GoalReality(g),
		Countdown: metrics.Countdown(g.Deadline, now),
		Timeline:  metrics.GoalTimeline(g),
	}, nil
}
