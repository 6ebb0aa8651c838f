package models

import "time"

// RawRow holds one untyped row exactly as read from the input table.
// Line is the physical line in the source file (the header is line 1).
type RawRow struct {
	Line     int
	Type     string
	Label    string
	Sequence string
	Date     string
	Views    string
}

// Record is one validated view-count observation for a published item.
type Record struct {
	Label    string
	Sequence int
	Date     time.Time
	Views    int64
}

// DailyTotal is the sum of views of every record sharing a date.
type DailyTotal struct {
	Date  time.Time
	Views int64
}

// Series is one label's row of the series matrix. Values is aligned to
// Aggregate.Dates and zero-filled where the label has no record.
type Series struct {
	Label  string
	Rank   int
	Total  int64
	Values []int64
}

// Aggregate holds everything derived from a sorted record list.
type Aggregate struct {
	Records    int
	Dates      []time.Time
	Daily      []DailyTotal
	Series     []Series
	PeakDaily  int64
	TotalViews int64

	dateIndex  map[time.Time]int
	labelIndex map[string]int
}

// Index builds the date and label lookups used by DailyTotalOn and LabelViews.
func (a *Aggregate) Index() {
	a.dateIndex = make(map[time.Time]int, len(a.Dates))
	for i, d := range a.Dates {
		a.dateIndex[d] = i
	}
	a.labelIndex = make(map[string]int, len(a.Series))
	for i, s := range a.Series {
		a.labelIndex[s.Label] = i
	}
}

// DailyTotalOn returns the summed views on d, or 0 when d has no records.
func (a *Aggregate) DailyTotalOn(d time.Time) int64 {
	i, ok := a.dateIndex[d]
	if !ok {
		return 0
	}
	return a.Daily[i].Views
}

// LabelViews returns the views label received on d. Missing pairs are 0.
func (a *Aggregate) LabelViews(label string, d time.Time) int64 {
	si, ok := a.labelIndex[label]
	if !ok {
		return 0
	}
	di, ok := a.dateIndex[d]
	if !ok {
		return 0
	}
	return a.Series[si].Values[di]
}

// Labels returns the labels in rank order.
func (a *Aggregate) Labels() []string {
	out := make([]string, len(a.Series))
	for i, s := range a.Series {
		out[i] = s.Label
	}
	return out
}
