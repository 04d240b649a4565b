package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/wellkeeper/internal/client/models"
	"github.com/stretchr/testify/require"
)

func TestToday(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	s.loginAs(t, "Mira", models.RoleSeeker)

	sum, err := s.insights.Today(ctx, "2024-01-01")
	require.NoError(t, err)
	require.Nil(t, sum.Mood)
	require.Equal(t, 0, sum.RoutinesDone)
	require.Equal(t, 2, sum.RoutinesTotal)

	_, err = s.entries.RecordMood(ctx, "2024-01-01", 2, "rain")
	require.NoError(t, err)
	_, err = s.entries.ToggleRoutine(ctx, "2024-01-01", "1")
	require.NoError(t, err)

	sum, err = s.insights.Today(ctx, "2024-01-01")
	require.NoError(t, err)
	require.NotNil(t, sum.Mood)
	require.Equal(t, "Low", sum.Mood.Label)
	require.Equal(t, 1, sum.RoutinesDone)
}

func TestMoodTrend(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	s.loginAs(t, "Mira", models.RoleSeeker)

	_, err := s.entries.RecordMood(ctx, "2024-03-01", 5, "")
	require.NoError(t, err)
	_, err = s.entries.RecordMood(ctx, "2024-02-27", 1, "")
	require.NoError(t, err)

	end := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	pts, err := s.insights.MoodTrend(ctx, end, 7)
	require.NoError(t, err)
	require.Len(t, pts, 7)

	require.Equal(t, "2024-02-24", pts[0].Date)
	require.Equal(t, "2024-03-01", pts[6].Date)
	require.Nil(t, pts[0].Value)
	require.NotNil(t, pts[3].Value)
	require.Equal(t, 1, *pts[3].Value)
	require.Equal(t, "Difficult", pts[3].Label)
	require.Equal(t, 5, *pts[6].Value)
}

func TestReflect_PassesActiveLogs(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	s.loginAs(t, "Jon", models.RoleSeeker)
	_, err := s.entries.RecordJournal(ctx, "2024-01-01", "jon")
	require.NoError(t, err)

	mira := s.loginAs(t, "Mira", models.RoleSeeker)
	_, err = s.entries.RecordJournal(ctx, "2024-01-01", "mira")
	require.NoError(t, err)

	text, err := s.insights.Reflect(ctx)
	require.NoError(t, err)
	require.Equal(t, "be still", text)
	require.Len(t, s.reflector.got, 1)
	require.Equal(t, mira.ID, s.reflector.got[0].UserID)
}
