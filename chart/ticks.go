package chart

import (
	"math"
	"strconv"
	"time"

	"gonum.org/v1/plot"
)

const secondsPerDay = 24 * 60 * 60

// dayNumber maps a UTC midnight date to days since the Unix epoch.
func dayNumber(t time.Time) float64 {
	return float64(t.Unix() / secondsPerDay)
}

func dateOf(day int64) time.Time {
	return time.Unix(day*secondsPerDay, 0).UTC()
}

// weeklyTicks places one major tick on every given weekday in range. Ranges
// shorter than a week without that weekday get one tick per day instead.
type weeklyTicks struct {
	weekday time.Weekday
	layout  string
}

func (t weeklyTicks) Ticks(min, max float64) []plot.Tick {
	first := int64(math.Ceil(min))
	last := int64(math.Floor(max))

	var ticks []plot.Tick
	d := first
	for d <= last && dateOf(d).Weekday() != t.weekday {
		d++
	}
	for ; d <= last; d += 7 {
		ticks = append(ticks, plot.Tick{Value: float64(d), Label: dateOf(d).Format(t.layout)})
	}

	if len(ticks) == 0 {
		for d := first; d <= last; d++ {
			ticks = append(ticks, plot.Tick{Value: float64(d), Label: dateOf(d).Format(t.layout)})
		}
	}
	return ticks
}

// viewTicks wraps the default ticker and prints "12k" instead of "12000".
type viewTicks struct{}

func (viewTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i, tk := range ticks {
		if tk.Label == "" {
			continue
		}
		ticks[i].Label = formatViews(tk.Value)
	}
	return ticks
}

func formatViews(v float64) string {
	if math.Abs(v) < 1000 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(math.Round(v/100)/10, 'f', -1, 64) + "k"
}
