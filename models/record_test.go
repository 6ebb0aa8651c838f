package models

import (
	"testing"
	"time"
)

func TestAggregateLookups(t *testing.T) {
	d1 := time.Date(2024, time.October, 24, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, time.October, 25, 0, 0, 0, 0, time.UTC)
	a := &Aggregate{
		Dates: []time.Time{d1, d2},
		Daily: []DailyTotal{{Date: d1, Views: 30}, {Date: d2, Views: 5}},
		Series: []Series{
			{Label: "B", Rank: 0, Total: 20, Values: []int64{20, 0}},
			{Label: "A", Rank: 1, Total: 15, Values: []int64{10, 5}},
		},
	}
	a.Index()

	if got := a.DailyTotalOn(d1); got != 30 {
		t.Errorf("DailyTotalOn(d1): got %d, want 30", got)
	}
	if got := a.DailyTotalOn(d2.AddDate(0, 0, 1)); got != 0 {
		t.Errorf("DailyTotalOn(missing): got %d, want 0", got)
	}
	if got := a.LabelViews("A", d2); got != 5 {
		t.Errorf("LabelViews(A, d2): got %d, want 5", got)
	}
	if got := a.LabelViews("B", d2); got != 0 {
		t.Errorf("LabelViews(B, d2): got %d, want 0", got)
	}
	if got := a.LabelViews("Z", d1); got != 0 {
		t.Errorf("LabelViews(Z, d1): got %d, want 0", got)
	}

	labels := a.Labels()
	if len(labels) != 2 || labels[0] != "B" || labels[1] != "A" {
		t.Errorf("Labels: got %v, want [B A]", labels)
	}
}

func TestAggregateLookupsWithoutIndex(t *testing.T) {
	a := &Aggregate{}
	if got := a.DailyTotalOn(time.Now()); got != 0 {
		t.Errorf("DailyTotalOn on empty aggregate: got %d, want 0", got)
	}
}
