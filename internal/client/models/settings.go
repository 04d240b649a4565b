package models

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/wellkeeper/internal/common"
)

// DefaultDisplayName is used for the settings of the default bucket.
const DefaultDisplayName = "Seeker"

// ClockTime is an hour:minute reminder, encoded as "HH:MM".
type ClockTime struct {
	Hour   int
	Minute int
}

func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q", common.ErrInvalidClock, s)
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ClockTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// RoutineItem is a recurring daily task. It only exists inside Settings.
type RoutineItem struct {
	ID           string     `json:"id"`
	Text         string     `json:"text"`
	ReminderTime *ClockTime `json:"reminderTime,omitempty"`
}

// GoalItem tracks progress towards a goal. Completed always mirrors
// Progress == 100; use AdjustProgress to change progress.
type GoalItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Progress  int    `json:"progress"`
	Completed bool   `json:"completed"`
}

func NewGoal(id, text string) GoalItem {
	return GoalItem{ID: id, Text: text}
}

// AdjustProgress adds delta to the progress, clamps it to [0, 100] and
// re-derives Completed.
func (g *GoalItem) AdjustProgress(delta int) {
	next := min(100, max(0, g.Progress+delta))
	g.Progress = next
	g.Completed = next == 100
}

// SetText edits the description only.
func (g *GoalItem) SetText(text string) {
	g.Text = text
}

// Provider is a member of the care network. Contact is free text: an
// address, a URL or a phone-like token.
type Provider struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Contact   string `json:"contact"`
}

// Settings is the per-account configuration bundle. Name is an independent
// copy of the account name and is never synced back.
type Settings struct {
	Name      string        `json:"name"`
	Routines  []RoutineItem `json:"routines"`
	Goals     []GoalItem    `json:"goals"`
	Providers []Provider    `json:"providers"`
}

// SettingsPatch replaces whole fields of Settings. A nil field is left as
// is; a non-nil slice pointer replaces the entire sequence.
type SettingsPatch struct {
	Name      *string
	Routines  *[]RoutineItem
	Goals     *[]GoalItem
	Providers *[]Provider
}

// Apply returns s with the non-nil patch fields substituted. Goal progress
// is clamped to [0, 100] and Completed is derived from it.
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Routines != nil {
		s.Routines = *p.Routines
	}
	if p.Goals != nil {
		s.Goals = slices.Clone(*p.Goals)
		for i := range s.Goals {
			s.Goals[i].AdjustProgress(0)
		}
	}
	if p.Providers != nil {
		s.Providers = *p.Providers
	}
	return s
}

// DefaultSettings builds the deterministic first-run settings for active,
// or for the default bucket when active is nil. A fresh value is returned
// on every call so callers may mutate it freely.
func DefaultSettings(active *Account) Settings {
	name := DefaultDisplayName
	if active != nil {
		name = active.Name
	}

	return Settings{
		Name: name,
		Routines: []RoutineItem{
			{ID: "1", Text: "Morning Meditation", ReminderTime: &ClockTime{Hour: 8}},
			{ID: "2", Text: "Drink 2L Water", ReminderTime: &ClockTime{Hour: 10}},
		},
		Goals: []GoalItem{},
		Providers: []Provider{
			{ID: "p1", Name: "Dr. Evelyn Harper", Specialty: "Holistic Psychiatry", Contact: "+1 (555) 0123-456"},
			{ID: "p2", Name: "Marcus Chen", Specialty: "Mindfulness Coach", Contact: "marcus@wellness.site"},
		},
	}
}
