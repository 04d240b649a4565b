package models

import (
	"encoding/json"
	"testing"

	"github.com/dmitrijs2005/wellkeeper/internal/common"
	"github.com/stretchr/testify/require"
)

func TestGoalItem_AdjustProgress(t *testing.T) {
	g := NewGoal("g1", "Read daily")

	g.AdjustProgress(-10)
	require.Equal(t, 0, g.Progress)
	require.False(t, g.Completed)

	g.AdjustProgress(90)
	require.Equal(t, 90, g.Progress)
	require.False(t, g.Completed)

	g.AdjustProgress(10)
	require.Equal(t, 100, g.Progress)
	require.True(t, g.Completed)

	g.AdjustProgress(50)
	require.Equal(t, 100, g.Progress)
	require.True(t, g.Completed)

	g.AdjustProgress(-1)
	require.Equal(t, 99, g.Progress)
	require.False(t, g.Completed)
}

func TestGoalItem_SetTextKeepsProgress(t *testing.T) {
	g := NewGoal("g1", "old")
	g.AdjustProgress(40)
	g.SetText("new")
	require.Equal(t, "new", g.Text)
	require.Equal(t, 40, g.Progress)
}

func TestClockTime(t *testing.T) {
	c, err := ParseClockTime("07:05")
	require.NoError(t, err)
	require.Equal(t, ClockTime{Hour: 7, Minute: 5}, c)
	require.Equal(t, "07:05", c.String())

	b, err := json.Marshal(c)
	require.NoError(t, err)
	require.JSONEq(t, `"07:05"`, string(b))

	_, err = ParseClockTime("25:00")
	require.ErrorIs(t, err, common.ErrInvalidClock)

	var bad ClockTime
	require.Error(t, json.Unmarshal([]byte(`"noon"`), &bad))
}

func TestDefaultSettings(t *testing.T) {
	def := DefaultSettings(nil)
	require.Equal(t, DefaultDisplayName, def.Name)
	require.Len(t, def.Routines, 2)
	require.Equal(t, "Morning Meditation", def.Routines[0].Text)
	require.Equal(t, "08:00", def.Routines[0].ReminderTime.String())
	require.Equal(t, "10:00", def.Routines[1].ReminderTime.String())
	require.NotNil(t, def.Goals)
	require.Empty(t, def.Goals)
	require.Len(t, def.Providers, 2)
	require.Equal(t, "Dr. Evelyn Harper", def.Providers[0].Name)

	acc := &Account{ID: "a1", Name: "Mira"}
	require.Equal(t, "Mira", DefaultSettings(acc).Name)

	// fresh value each call
	a := DefaultSettings(nil)
	a.Routines[0].Text = "changed"
	require.Equal(t, "Morning Meditation", DefaultSettings(nil).Routines[0].Text)
}

func TestSettingsPatch_Apply(t *testing.T) {
	s := DefaultSettings(nil)
	name := "Jon"
	goals := []GoalItem{NewGoal("g1", "Walk")}

	out := SettingsPatch{Name: &name, Goals: &goals}.Apply(s)
	require.Equal(t, "Jon", out.Name)
	require.Equal(t, goals, out.Goals)
	require.Equal(t, s.Routines, out.Routines)
	require.Equal(t, s.Providers, out.Providers)

	empty := []Provider{}
	out = SettingsPatch{Providers: &empty}.Apply(s)
	require.Empty(t, out.Providers)
	require.Equal(t, DefaultDisplayName, out.Name)
}

func TestSettingsPatch_ApplyDerivesGoalCompletion(t *testing.T) {
	goals := []GoalItem{
		{ID: "g1", Text: "Walk", Progress: 100, Completed: false},
		{ID: "g2", Text: "Read", Progress: 40, Completed: true},
		{ID: "g3", Text: "Swim", Progress: 130},
		{ID: "g4", Text: "Sing", Progress: -5, Completed: true},
	}

	out := SettingsPatch{Goals: &goals}.Apply(DefaultSettings(nil))
	require.Len(t, out.Goals, 4)
	require.True(t, out.Goals[0].Completed)
	require.False(t, out.Goals[1].Completed)
	require.Equal(t, 100, out.Goals[2].Progress)
	require.True(t, out.Goals[2].Completed)
	require.Equal(t, 0, out.Goals[3].Progress)
	require.False(t, out.Goals[3].Completed)

	require.False(t, goals[0].Completed)
}
