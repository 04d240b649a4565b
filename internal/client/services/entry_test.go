package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/dmitrijs2005/wellkeeper/internal/client/models"
	"github.com/dmitrijs2005/wellkeeper/internal/common"
	"github.com/stretchr/testify/require"
)

func TestScenario_MoodLifecycle(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	mira := s.loginAs(t, "Mira", models.RoleSeeker)

	e, err := s.entries.RecordMood(ctx, "2024-01-01", 4, "good sleep")
	require.NoError(t, err)
	require.Equal(t, mira.ID, e.UserID)
	require.Equal(t, "good sleep", e.Notes)

	list, err := s.entries.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "2024-01-01", list[0].Date)
	require.Equal(t, models.CategoryMood, list[0].Category)

	p, err := models.NewMoodPayload(5, "even better")
	require.NoError(t, err)
	require.NoError(t, s.entries.Edit(ctx, e.ID, models.LogPatch{Payload: p}))

	list, err = s.entries.List(ctx, models.CategoryMood)
	require.NoError(t, err)
	require.Len(t, list, 1)
	got, err := list[0].Payload()
	require.NoError(t, err)
	require.Equal(t, 5, got.(models.MoodPayload).Value)
	require.False(t, list[0].Timestamp.Before(e.Timestamp))

	require.NoError(t, s.entries.Delete(ctx, e.ID))
	list, err = s.entries.List(ctx, "")
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestScenario_TwoAccountsJournal(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	s.loginAs(t, "Mira", models.RoleSeeker)
	_, err := s.entries.RecordJournal(ctx, "2024-01-01", "mira's page")
	require.NoError(t, err)

	jon := s.loginAs(t, "Jon", models.RoleSeeker)
	_, err = s.entries.RecordJournal(ctx, "2024-01-01", "jon's page")
	require.NoError(t, err)

	list, err := s.entries.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, jon.ID, list[0].UserID)
}

func TestRecord_RequiresSessionAndRole(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	_, err := s.entries.RecordMood(ctx, "2024-01-01", 3, "")
	require.ErrorIs(t, err, common.ErrNoActiveSession)

	s.loginAs(t, "Visitor", models.RoleGuest)
	_, err = s.entries.RecordMood(ctx, "2024-01-01", 3, "")
	require.ErrorIs(t, err, common.ErrorForbidden)
	_, err = s.entries.ToggleRoutine(ctx, "2024-01-01", "1")
	require.ErrorIs(t, err, common.ErrorForbidden)

	// meditation is open to guests
	m, err := s.entries.RecordMeditation(ctx, "2024-01-01", 120)
	require.NoError(t, err)
	require.True(t, m.IsMeditation())

	notes := models.MeditationNote
	require.NoError(t, s.entries.Edit(ctx, m.ID, models.LogPatch{Notes: &notes}))
}

func TestRecordMood_InvalidValue(t *testing.T) {
	s := newStack(t)
	s.loginAs(t, "Mira", models.RoleSeeker)

	_, err := s.entries.RecordMood(context.Background(), "2024-01-01", 9, "")
	require.ErrorIs(t, err, common.ErrInvalidPayload)
}

func TestRecordGratitude_DropsBlankLines(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	s.loginAs(t, "Mira", models.RoleSeeker)

	e, err := s.entries.RecordGratitude(ctx, "2024-01-01", []string{" sun ", "", "tea", "  "})
	require.NoError(t, err)
	require.JSONEq(t, `{"entries":["sun","tea"]}`, string(e.InputData))

	_, err = s.entries.RecordGratitude(ctx, "2024-01-01", []string{"", " "})
	require.ErrorIs(t, err, common.ErrInvalidPayload)

	_, err = s.entries.RecordGratitude(ctx, "2024-01-01", []string{"a", "b", "c", "d"})
	require.ErrorIs(t, err, common.ErrInvalidPayload)
}

func TestToggleRoutine_CreatesThenUpdatesOneEntry(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	s.loginAs(t, "Mira", models.RoleSeeker)

	done, err := s.entries.ToggleRoutine(ctx, "2024-01-01", "1")
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, done)

	done, err = s.entries.ToggleRoutine(ctx, "2024-01-01", "2")
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2"}, done)

	done, err = s.entries.ToggleRoutine(ctx, "2024-01-01", "1")
	require.NoError(t, err)
	require.Equal(t, []string{"2"}, done)

	list, err := s.entries.List(ctx, models.CategoryRoutine)
	require.NoError(t, err)
	require.Len(t, list, 1)

	// a different day starts fresh
	done, err = s.entries.ToggleRoutine(ctx, "2024-01-02", "2")
	require.NoError(t, err)
	require.Equal(t, []string{"2"}, done)
}

func TestList_NewestDateFirst(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	s.loginAs(t, "Mira", models.RoleSeeker)

	for _, d := range []string{"2024-01-02", "2024-01-03", "2024-01-01"} {
		_, err := s.entries.RecordJournal(ctx, d, "page "+d)
		require.NoError(t, err)
	}
	_, err := s.entries.RecordMood(ctx, "2024-01-05", 3, "")
	require.NoError(t, err)

	list, err := s.entries.List(ctx, models.CategoryJournal)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "2024-01-03", list[0].Date)
	require.Equal(t, "2024-01-02", list[1].Date)
	require.Equal(t, "2024-01-01", list[2].Date)
}

func TestExportJournal(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	s.loginAs(t, "Mira", models.RoleSeeker)

	var buf bytes.Buffer
	_, err := s.entries.ExportJournal(ctx, &buf, "", "")
	require.ErrorIs(t, err, common.ErrNothingToExport)

	_, err = s.entries.RecordJournal(ctx, "2024-01-03", "third")
	require.NoError(t, err)
	_, err = s.entries.RecordJournal(ctx, "2024-01-01", "first")
	require.NoError(t, err)
	_, err = s.entries.RecordJournal(ctx, "2024-02-01", "later")
	require.NoError(t, err)
	_, err = s.entries.RecordMeditation(ctx, "2024-01-02", 60)
	require.NoError(t, err)

	n, err := s.entries.ExportJournal(ctx, &buf, "", "2024-01-31")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	want := "SERENITY WELLNESS SUITE - JOURNAL ARCHIVES\n" +
		"Range: Beginning to 2024-01-31\n\n" +
		"DATE: 2024-01-01\n------------------------------------------\nfirst\n\n" +
		"DATE: 2024-01-03\n------------------------------------------\nthird\n\n"
	require.Equal(t, want, buf.String())

	buf.Reset()
	_, err = s.entries.ExportJournal(ctx, &buf, "2024-03-01", "")
	require.ErrorIs(t, err, common.ErrNothingToExport)
	require.Empty(t, buf.String())
}
