package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/wellkeeper/internal/client/models"
)

const trendDays = 7

func (a *App) Today(ctx context.Context) error {
	s, err := a.insightService.Today(ctx, models.DateOf(timeNow()))
	if err != nil {
		return err
	}

	mood := "not recorded"
	if s.Mood != nil {
		mood = s.Mood.Emoji + " " + s.Mood.Label
	}
	a.printf("%s\n  mood:     %s\n  routines: %d/%d\n", s.Date, mood, s.RoutinesDone, s.RoutinesTotal)
	return nil
}

// Trend prints the last week of moods as a text bar per day.
func (a *App) Trend(ctx context.Context) error {
	points, err := a.insightService.MoodTrend(ctx, timeNow(), trendDays)
	if err != nil {
		return err
	}
	for _, p := range points {
		if p.Value == nil {
			a.printf("%s  %-5s  -\n", p.Date, "")
			continue
		}
		a.printf("%s  %-5s  %s %s\n", p.Date, strings.Repeat("#", *p.Value), p.Emoji, p.Label)
	}
	return nil
}

func (a *App) Reflect(ctx context.Context) error {
	text, err := a.insightService.Reflect(ctx)
	if err != nil {
		return err
	}
	a.printf("%s\n", text)
	return nil
}
