package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"reels-chart/models"
	"reels-chart/utils"
)

// DefaultRecordType is the type discriminator of the rows that get charted.
const DefaultRecordType = "reels"

// Loader turns raw table rows into validated, sorted Records.
type Loader struct {
	logger     *utils.Logger
	year       int
	recordType string
}

// NewLoader creates a Loader that assigns year to every date token and keeps
// only rows whose type equals recordType (case-insensitive).
func NewLoader(logger *utils.Logger, year int, recordType string) *Loader {
	if strings.TrimSpace(recordType) == "" {
		recordType = DefaultRecordType
	}
	return &Loader{logger: logger, year: year, recordType: strings.TrimSpace(recordType)}
}

// Load filters and parses rows. Any malformed included row aborts the load.
// ErrEmptyDataset is returned when nothing matched.
func (l *Loader) Load(rows []*models.RawRow) ([]*models.Record, error) {
	records := make([]*models.Record, 0, len(rows))
	skipped := 0

	for _, r := range rows {
		if !strings.EqualFold(strings.TrimSpace(r.Type), l.recordType) {
			skipped++
			continue
		}

		rec, err := l.parseRow(r)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	l.logger.Info("[loader] Read %d rows, kept %d %q records, skipped %d",
		len(rows), len(records), l.recordType, skipped)

	if len(records) == 0 {
		return nil, fmt.Errorf("%w (type %q)", ErrEmptyDataset, l.recordType)
	}

	SortRecords(records)
	return records, nil
}

func (l *Loader) parseRow(r *models.RawRow) (*models.Record, error) {
	label := strings.TrimSpace(r.Label)

	seq, err := parseSequence(r.Sequence)
	if err != nil {
		return nil, fmt.Errorf("row %d (%s): %w", r.Line, label, err)
	}

	date, err := ParseDate(r.Date, l.year)
	if err != nil {
		return nil, fmt.Errorf("row %d (%s): %w", r.Line, label, err)
	}

	views, err := ParseViews(r.Views)
	if err != nil {
		return nil, fmt.Errorf("row %d (%s): %w", r.Line, label, err)
	}

	l.logger.Debug("[loader] row %d → %s #%d %s %d", r.Line, label, seq, date.Format("2006-01-02"), views)

	return &models.Record{Label: label, Sequence: seq, Date: date, Views: views}, nil
}

// parseSequence reads the optional sequence column; blank means 0.
func parseSequence(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &FormatError{Field: "sequence", Input: raw}
	}
	return n, nil
}

// SortRecords orders records by date, label and sequence, ascending. Views
// breaks the remaining ties so the order never depends on input order.
func SortRecords(records []*models.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.Label != b.Label {
			return a.Label < b.Label
		}
		if a.Sequence != b.Sequence {
			return a.Sequence < b.Sequence
		}
		return a.Views < b.Views
	})
}
