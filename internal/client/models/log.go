package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/wellkeeper/internal/common"
)

// DateLayout is the canonical calendar-day format of LogEntry.Date.
const DateLayout = "2006-01-02"

// MeditationNote marks a Journal entry as a timed meditation session.
const MeditationNote = "Meditation Session"

// Category classifies a log entry and selects its payload shape.
type Category string

const (
	CategoryMood      Category = "Mood"
	CategoryRoutine   Category = "Routine"
	CategoryGratitude Category = "Gratitude"
	CategoryJournal   Category = "Journal"
	CategoryGoal      Category = "Goal"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryMood, CategoryRoutine, CategoryGratitude, CategoryJournal, CategoryGoal:
		return true
	}
	return false
}

// LogEntry is one dated, categorized record owned by exactly one account.
//
// Date is the semantic day the entry belongs to and is compared verbatim;
// Timestamp is refreshed on every mutation.
type LogEntry struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Timestamp time.Time       `json:"timestamp"`
	Date      string          `json:"date"`
	Category  Category        `json:"category"`
	InputData json.RawMessage `json:"inputData"`
	Notes     string          `json:"notes,omitempty"`
}

// Payload decodes InputData according to the entry's category.
func (e LogEntry) Payload() (Payload, error) {
	return DecodePayload(e.Category, e.InputData)
}

// IsMeditation reports whether the entry is a meditation session.
func (e LogEntry) IsMeditation() bool {
	return e.Category == CategoryJournal && e.Notes == MeditationNote
}

// LogDraft is a log entry before the store assigns id, owner and timestamp.
type LogDraft struct {
	Date      string
	Category  Category
	InputData json.RawMessage
	Notes     string
}

// NewDraft validates p and the date and encodes p as the draft's input data.
func NewDraft(date string, p Payload, notes string) (LogDraft, error) {
	if err := ValidateDate(date); err != nil {
		return LogDraft{}, err
	}
	raw, err := EncodePayload(p)
	if err != nil {
		return LogDraft{}, err
	}
	return LogDraft{Date: date, Category: p.Category(), InputData: raw, Notes: notes}, nil
}

// NewMeditationDraft builds the Journal sub-variant used for timed sessions.
func NewMeditationDraft(date string, seconds int) (LogDraft, error) {
	return NewDraft(date, JournalPayload{DurationSeconds: &seconds}, MeditationNote)
}

// Validate re-checks a draft that was not built by NewDraft.
func (d LogDraft) Validate() error {
	if err := ValidateDate(d.Date); err != nil {
		return err
	}
	_, err := DecodePayload(d.Category, d.InputData)
	return err
}

// LogPatch is a shallow update of an entry. Only the payload and the notes
// are mutable; nil fields are left untouched.
type LogPatch struct {
	Payload Payload
	Notes   *string
}

// Apply returns e with the patch merged in. A payload of another category
// is rejected with common.ErrPayloadMismatch. The timestamp is not touched.
func (p LogPatch) Apply(e LogEntry) (LogEntry, error) {
	if p.Payload != nil {
		if p.Payload.Category() != e.Category {
			return e, fmt.Errorf("%w: %s payload for %s entry", common.ErrPayloadMismatch, p.Payload.Category(), e.Category)
		}
		raw, err := EncodePayload(p.Payload)
		if err != nil {
			return e, err
		}
		e.InputData = raw
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	return e, nil
}

// ValidateDate checks that date is a calendar day in DateLayout.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w: %q", common.ErrInvalidDate, date)
	}
	return nil
}

// DateOf formats t as a LogEntry date in t's location.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}
