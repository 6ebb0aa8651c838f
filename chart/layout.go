package chart

import (
	"image/color"
	"time"
	"unicode/utf8"

	"reels-chart/models"
)

// Segment is one label's slice of one date's bar.
type Segment struct {
	DateIndex int
	Date      time.Time
	X         float64
	Label     string
	Rank      int
	Bottom    int64
	Top       int64
	Color     color.Color
	Annotate  bool
	Rotate    bool
}

// Value is the segment height in views.
func (s Segment) Value() int64 {
	return s.Top - s.Bottom
}

// Threshold returns the minimum segment value that gets an in-bar label.
func Threshold(peak, floor int64, fraction float64) int64 {
	if peak <= 0 {
		return floor
	}
	return max(floor, int64(float64(peak)*fraction))
}

// Layout stacks every nonzero (label, date) value. Segments come out grouped
// by rank, bottom series first, each group in date order.
func Layout(a *models.Aggregate, o Options) []Segment {
	threshold := Threshold(a.PeakDaily, o.LabelFloor, o.LabelFraction)
	bottoms := make([]int64, len(a.Dates))

	var segs []Segment
	for _, s := range a.Series {
		c := ColorFor(o.Palette, s.Rank)
		rotate := utf8.RuneCountInString(s.Label) > o.RotateAfter

		for j, v := range s.Values {
			if v <= 0 {
				continue
			}
			segs = append(segs, Segment{
				DateIndex: j,
				Date:      a.Dates[j],
				X:         dayNumber(a.Dates[j]),
				Label:     s.Label,
				Rank:      s.Rank,
				Bottom:    bottoms[j],
				Top:       bottoms[j] + v,
				Color:     c,
				Annotate:  v >= threshold,
				Rotate:    rotate,
			})
			bottoms[j] += v
		}
	}
	return segs
}
