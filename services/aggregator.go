package services

import (
	"sort"
	"time"

	"reels-chart/models"
	"reels-chart/utils"
)

type Aggregator struct {
	logger *utils.Logger
}

func NewAggregator(logger *utils.Logger) *Aggregator {
	return &Aggregator{logger: logger}
}

// Aggregate groups records by date and by (label, date). Records are expected
// in SortRecords order; discovery order of labels follows that order and breaks
// ties between equal totals.
func (a *Aggregator) Aggregate(records []*models.Record) *models.Aggregate {
	agg := &models.Aggregate{Records: len(records)}

	daily := make(map[time.Time]int64)
	byLabel := make(map[string]map[time.Time]int64)
	totals := make(map[string]int64)
	labels := utils.NewOrderedSet()

	for _, r := range records {
		daily[r.Date] += r.Views
		if labels.Add(r.Label) {
			byLabel[r.Label] = make(map[time.Time]int64)
		}
		byLabel[r.Label][r.Date] += r.Views
		totals[r.Label] += r.Views
		agg.TotalViews += r.Views
	}

	agg.Dates = make([]time.Time, 0, len(daily))
	for d := range daily {
		agg.Dates = append(agg.Dates, d)
	}
	sort.Slice(agg.Dates, func(i, j int) bool { return agg.Dates[i].Before(agg.Dates[j]) })

	agg.Daily = make([]models.DailyTotal, len(agg.Dates))
	for i, d := range agg.Dates {
		agg.Daily[i] = models.DailyTotal{Date: d, Views: daily[d]}
		if daily[d] > agg.PeakDaily {
			agg.PeakDaily = daily[d]
		}
	}

	ranked := labels.Items()
	sort.Slice(ranked, func(i, j int) bool {
		ti, tj := totals[ranked[i]], totals[ranked[j]]
		if ti != tj {
			return ti > tj
		}
		return labels.Position(ranked[i]) < labels.Position(ranked[j])
	})

	agg.Series = make([]models.Series, len(ranked))
	for rank, label := range ranked {
		values := make([]int64, len(agg.Dates))
		for i, d := range agg.Dates {
			values[i] = byLabel[label][d]
		}
		agg.Series[rank] = models.Series{
			Label:  label,
			Rank:   rank,
			Total:  totals[label],
			Values: values,
		}
	}

	agg.Index()

	a.logger.Info("[aggregator] %d records → %d dates, %d labels, %d views (peak day %d)",
		len(records), len(agg.Dates), len(agg.Series), agg.TotalViews, agg.PeakDaily)
	return agg
}
