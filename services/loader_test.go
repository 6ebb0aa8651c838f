package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reels-chart/models"
)

func sampleRows() []*models.RawRow {
	return []*models.RawRow{
		row(2, "reels", "Guest B", "2", "1 nov", "16.4k"),
		row(3, "Reels", "Guest A", "1", "24 out", "13,4k"),
		row(4, "post", "Guest C", "1", "24 out", "not-a-number"),
		row(5, " REELS ", "Guest A", "", "1 nov", "4800"),
		row(6, "reels", " Guest B ", "1", "1 nov", "152k"),
		row(7, "", "Guest D", "1", "99 xyz", "??"),
	}
}

func TestLoaderFiltersByType(t *testing.T) {
	l := NewLoader(newTestLogger(), 2024, "reels")
	records, err := l.Load(sampleRows())
	require.NoError(t, err)

	require.Len(t, records, 4)
	for _, r := range records {
		assert.NotEqual(t, "Guest C", r.Label)
		assert.NotEqual(t, "Guest D", r.Label)
	}
}

func TestLoaderSortsByDateLabelSequence(t *testing.T) {
	l := NewLoader(newTestLogger(), 2024, "reels")
	records, err := l.Load(sampleRows())
	require.NoError(t, err)

	want := []models.Record{
		{Label: "Guest A", Sequence: 1, Date: day(10, 24), Views: 13400},
		{Label: "Guest A", Sequence: 0, Date: day(11, 1), Views: 4800},
		{Label: "Guest B", Sequence: 1, Date: day(11, 1), Views: 152000},
		{Label: "Guest B", Sequence: 2, Date: day(11, 1), Views: 16400},
	}
	require.Len(t, records, len(want))
	for i, w := range want {
		got := *records[i]
		assert.Equal(t, w.Label, got.Label, "record %d", i)
		assert.Equal(t, w.Sequence, got.Sequence, "record %d", i)
		assert.True(t, w.Date.Equal(got.Date), "record %d date %v", i, got.Date)
		assert.Equal(t, w.Views, got.Views, "record %d", i)
	}
}

func TestLoaderOutputIndependentOfInputOrder(t *testing.T) {
	l := NewLoader(newTestLogger(), 2024, "reels")

	rows := sampleRows()
	reversed := make([]*models.RawRow, len(rows))
	for i, r := range rows {
		reversed[len(rows)-1-i] = r
	}

	a, err := l.Load(rows)
	require.NoError(t, err)
	b, err := l.Load(reversed)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestLoaderDefaultsRecordType(t *testing.T) {
	l := NewLoader(newTestLogger(), 2024, "  ")
	records, err := l.Load([]*models.RawRow{row(2, "reels", "A", "1", "24 out", "1k")})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestLoaderPropagatesParseErrorsWithRowContext(t *testing.T) {
	l := NewLoader(newTestLogger(), 2024, "reels")

	_, err := l.Load([]*models.RawRow{
		row(2, "reels", "A", "1", "24 out", "1k"),
		row(3, "reels", "B", "1", "24 out", "12kk"),
	})
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "12kk", fe.Input)
	assert.Contains(t, err.Error(), "row 3")
	assert.Contains(t, err.Error(), "B")

	_, err = l.Load([]*models.RawRow{row(9, "reels", "A", "1", "31 abr", "1k")})
	var re *DateRangeError
	require.ErrorAs(t, err, &re)
	assert.Contains(t, err.Error(), "row 9")

	_, err = l.Load([]*models.RawRow{row(4, "reels", "A", "one", "1 nov", "1k")})
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "sequence", fe.Field)
}

func TestLoaderEmptyDataset(t *testing.T) {
	l := NewLoader(newTestLogger(), 2024, "reels")

	_, err := l.Load(nil)
	assert.True(t, errors.Is(err, ErrEmptyDataset))

	_, err = l.Load([]*models.RawRow{row(2, "story", "A", "1", "garbage", "garbage")})
	assert.True(t, errors.Is(err, ErrEmptyDataset))

	var fe *FormatError
	assert.False(t, errors.As(err, &fe), "empty dataset must not look like a parse error")
}
