package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/wellkeeper/internal/common"
)

// MaxGratitudeEntries bounds GratitudePayload.Entries.
const MaxGratitudeEntries = 3

// Payload is the category-specific body of a log entry.
type Payload interface {
	Category() Category
	Validate() error
}

type MoodPayload struct {
	Value  int    `json:"value"`
	Label  string `json:"label"`
	Emoji  string `json:"emoji"`
	Reason string `json:"reason"`
}

func (MoodPayload) Category() Category { return CategoryMood }

func (p MoodPayload) Validate() error {
	if p.Value < 1 || p.Value > 5 {
		return fmt.Errorf("%w: mood value %d out of range 1..5", common.ErrInvalidPayload, p.Value)
	}
	return nil
}

type RoutinePayload struct {
	CompletedIDs []string `json:"completedIds"`
}

func (RoutinePayload) Category() Category { return CategoryRoutine }

func (p RoutinePayload) Validate() error {
	for _, id := range p.CompletedIDs {
		if id == "" {
			return fmt.Errorf("%w: empty routine id", common.ErrInvalidPayload)
		}
	}
	return nil
}

type GratitudePayload struct {
	Entries []string `json:"entries"`
}

func (GratitudePayload) Category() Category { return CategoryGratitude }

func (p GratitudePayload) Validate() error {
	if len(p.Entries) > MaxGratitudeEntries {
		return fmt.Errorf("%w: at most %d gratitude entries", common.ErrInvalidPayload, MaxGratitudeEntries)
	}
	for _, e := range p.Entries {
		if strings.TrimSpace(e) == "" {
			return fmt.Errorf("%w: blank gratitude entry", common.ErrInvalidPayload)
		}
	}
	return nil
}

// JournalPayload is a free-text entry. DurationSeconds is only set on
// meditation sessions.
type JournalPayload struct {
	Content         string `json:"content"`
	DurationSeconds *int   `json:"duration,omitempty"`
}

func (JournalPayload) Category() Category { return CategoryJournal }

func (p JournalPayload) Validate() error {
	if p.DurationSeconds != nil && *p.DurationSeconds < 0 {
		return fmt.Errorf("%w: negative duration", common.ErrInvalidPayload)
	}
	return nil
}

// GoalPayload is reserved; goals live in Settings and nothing in the
// application records goal logs yet.
type GoalPayload struct {
	GoalID   string `json:"goalId"`
	Progress int    `json:"progress"`
}

func (GoalPayload) Category() Category { return CategoryGoal }

func (p GoalPayload) Validate() error {
	if p.GoalID == "" {
		return fmt.Errorf("%w: goal id required", common.ErrInvalidPayload)
	}
	if p.Progress < 0 || p.Progress > 100 {
		return fmt.Errorf("%w: goal progress %d out of range 0..100", common.ErrInvalidPayload, p.Progress)
	}
	return nil
}

// EncodePayload validates p and marshals it for storage.
func EncodePayload(p Payload) (json.RawMessage, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil payload", common.ErrInvalidPayload)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	// Keep empty lists as [] so readers never see null.
	switch v := p.(type) {
	case RoutinePayload:
		if v.CompletedIDs == nil {
			v.CompletedIDs = []string{}
		}
		p = v
	case GratitudePayload:
		if v.Entries == nil {
			v.Entries = []string{}
		}
		p = v
	}

	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", p.Category(), err)
	}
	return b, nil
}

// DecodePayload unmarshals raw into the payload type of c and validates it.
func DecodePayload(c Category, raw json.RawMessage) (Payload, error) {
	switch c {
	case CategoryMood:
		return decodeAs[MoodPayload](c, raw)
	case CategoryRoutine:
		return decodeAs[RoutinePayload](c, raw)
	case CategoryGratitude:
		return decodeAs[GratitudePayload](c, raw)
	case CategoryJournal:
		return decodeAs[JournalPayload](c, raw)
	case CategoryGoal:
		return decodeAs[GoalPayload](c, raw)
	default:
		return nil, fmt.Errorf("%w: unknown category %q", common.ErrInvalidPayload, c)
	}
}

func decodeAs[T Payload](c Category, raw json.RawMessage) (Payload, error) {
	var v T
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty %s payload", common.ErrInvalidPayload, c)
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: decode %s payload: %v", common.ErrInvalidPayload, c, err)
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}

// MoodLevel is one step of the fixed five-point mood scale.
type MoodLevel struct {
	Value int
	Label string
	Emoji string
}

var MoodScale = []MoodLevel{
	{Value: 1, Label: "Difficult", Emoji: "☁️"},
	{Value: 2, Label: "Low", Emoji: "🌧️"},
	{Value: 3, Label: "Neutral", Emoji: "🌤️"},
	{Value: 4, Label: "Good", Emoji: "☀️"},
	{Value: 5, Label: "Excellent", Emoji: "✨"},
}

// NewMoodPayload fills label and emoji from the mood scale.
func NewMoodPayload(value int, reason string) (MoodPayload, error) {
	for _, m := range MoodScale {
		if m.Value == value {
			return MoodPayload{Value: m.Value, Label: m.Label, Emoji: m.Emoji, Reason: reason}, nil
		}
	}
	return MoodPayload{}, fmt.Errorf("%w: mood value %d out of range 1..5", common.ErrInvalidPayload, value)
}
