package services

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dmitrijs2005/wellkeeper/internal/client/models"
	"github.com/dmitrijs2005/wellkeeper/internal/common"
)

const exportRule = "------------------------------------------"

// ExportJournal writes the journal entries dated within [start, end] as a
// plain-text archive, oldest first. Empty bounds are open. Meditation
// sessions are not part of the archive. It returns the number of entries
// written, or common.ErrNothingToExport when none match.
func (s *entryService) ExportJournal(ctx context.Context, w io.Writer, start, end string) (int, error) {
	all, err := s.List(ctx, models.CategoryJournal)
	if err != nil {
		return 0, err
	}

	var picked []models.LogEntry
	for _, e := range all {
		if e.IsMeditation() {
			continue
		}
		if (start == "" || e.Date >= start) && (end == "" || e.Date <= end) {
			picked = append(picked, e)
		}
	}
	if len(picked) == 0 {
		return 0, common.ErrNothingToExport
	}
	slices.SortStableFunc(picked, func(a, b models.LogEntry) int {
		if c := cmp.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return a.Timestamp.Compare(b.Timestamp)
	})

	var b strings.Builder
	fmt.Fprintf(&b, "SERENITY WELLNESS SUITE - JOURNAL ARCHIVES\nRange: %s to %s\n\n", cmp.Or(start, "Beginning"), cmp.Or(end, "Present"))
	for _, e := range picked {
		p, err := e.Payload()
		if err != nil {
			return 0, err
		}
		fmt.Fprintf(&b, "DATE: %s\n%s\n%s\n\n", e.Date, exportRule, p.(models.JournalPayload).Content)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return 0, fmt.Errorf("export error: %w", err)
	}
	return len(picked), nil
}
