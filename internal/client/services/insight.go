package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/wellkeeper/internal/client/models"
	"github.com/dmitrijs2005/wellkeeper/internal/client/repositories/logs"
	"github.com/dmitrijs2005/wellkeeper/internal/client/repositories/session"
	"github.com/dmitrijs2005/wellkeeper/internal/client/repositories/settings"
	"github.com/dmitrijs2005/wellkeeper/internal/logging"
)

// Reflector turns a list of logs into a short text. Implementations must
// not fail; see package reflection.
type Reflector interface {
	Reflect(ctx context.Context, logs []models.LogEntry) string
}

// DaySummary is the dashboard view of one day.
type DaySummary struct {
	Date          string
	Mood          *models.MoodPayload
	RoutinesDone  int
	RoutinesTotal int
}

// TrendPoint is one day of the mood trend. Value is nil when no mood was
// recorded that day.
type TrendPoint struct {
	Date  string
	Value *int
	Label string
	Emoji string
}

type InsightService interface {
	Today(ctx context.Context, date string) (DaySummary, error)
	MoodTrend(ctx context.Context, end time.Time, days int) ([]TrendPoint, error)
	Reflect(ctx context.Context) (string, error)
}

type insightService struct {
	logs      logs.Repository
	settings  settings.Repository
	sessions  session.Repository
	reflector Reflector
	log       logging.Logger
}

func NewInsightService(logRepo logs.Repository, settingsRepo settings.Repository, sessions session.Repository, reflector Reflector, log logging.Logger) InsightService {
	return &insightService{logs: logRepo, settings: settingsRepo, sessions: sessions, reflector: reflector, log: log}
}

// firstMood returns the first mood recorded on date, in insertion order.
func firstMood(entries []models.LogEntry, date string) *models.MoodPayload {
	for _, e := range entries {
		if e.Category != models.CategoryMood || e.Date != date {
			continue
		}
		p, err := e.Payload()
		if err != nil {
			continue
		}
		m := p.(models.MoodPayload)
		return &m
	}
	return nil
}

func (s *insightService) Today(ctx context.Context, date string) (DaySummary, error) {
	active, err := activeAccount(ctx, s.sessions)
	if err != nil {
		return DaySummary{}, err
	}

	entries, err := s.logs.List(ctx, active, "")
	if err != nil {
		return DaySummary{}, err
	}
	done, err := s.logs.DailyRoutineCompletion(ctx, active, date)
	if err != nil {
		return DaySummary{}, err
	}
	cfg, err := s.settings.Get(ctx, active)
	if err != nil {
		return DaySummary{}, err
	}

	return DaySummary{
		Date:          date,
		Mood:          firstMood(entries, date),
		RoutinesDone:  len(done),
		RoutinesTotal: len(cfg.Routines),
	}, nil
}

// MoodTrend returns one point per calendar day for the days ending at end,
// oldest first.
func (s *insightService) MoodTrend(ctx context.Context, end time.Time, days int) ([]TrendPoint, error) {
	active, err := activeAccount(ctx, s.sessions)
	if err != nil {
		return nil, err
	}
	entries, err := s.logs.List(ctx, active, "")
	if err != nil {
		return nil, err
	}

	points := make([]TrendPoint, 0, max(days, 0))
	for i := days - 1; i >= 0; i-- {
		date := models.DateOf(end.AddDate(0, 0, -i))
		pt := TrendPoint{Date: date}
		if m := firstMood(entries, date); m != nil {
			v := m.Value
			pt.Value, pt.Label, pt.Emoji = &v, m.Label, m.Emoji
		}
		points = append(points, pt)
	}
	return points, nil
}

// Reflect asks the reflector about the active account's logs. It only
// fails when the store cannot be read.
func (s *insightService) Reflect(ctx context.Context) (string, error) {
	active, err := activeAccount(ctx, s.sessions)
	if err != nil {
		return "", err
	}
	entries, err := s.logs.List(ctx, active, "")
	if err != nil {
		return "", err
	}
	s.log.Debug(ctx, "requesting reflection", "logs", len(entries))
	return s.reflector.Reflect(ctx, entries), nil
}
