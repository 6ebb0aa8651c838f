package services

import (
	"fmt"
	"io"
	"strings"

	"reels-chart/models"
)

const (
	dayLayout  = "02/01/2006"
	sparkWidth = 40
)

// Reporter prints a console summary of an Aggregate.
type Reporter struct {
	out io.Writer
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

func (r *Reporter) Print(a *models.Aggregate) {
	w := r.out
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(w, "\033[1;35m  📊 VIEWS BY DATE\033[0m\n")
	fmt.Fprintf(w, "\033[1;35m%s\033[0m\n\n", sep)

	// Overview
	fmt.Fprintf(w, "\033[1;33m  Overview\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Records     : \033[1m%d\033[0m\n", a.Records)
	fmt.Fprintf(w, "  Labels      : \033[1m%d\033[0m\n", len(a.Series))
	fmt.Fprintf(w, "  Total views : \033[1m%d\033[0m\n", a.TotalViews)
	if len(a.Dates) > 0 {
		fmt.Fprintf(w, "  Date range  : %s → %s (%d days with posts)\n",
			a.Dates[0].Format(dayLayout), a.Dates[len(a.Dates)-1].Format(dayLayout), len(a.Dates))
	}
	if peak, ok := peakDay(a); ok {
		fmt.Fprintf(w, "  Peak day    : %s with \033[1;32m%d\033[0m views\n", peak.Date.Format(dayLayout), peak.Views)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "\033[1;33m  Views per Label\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if len(a.Series) == 0 {
		fmt.Fprintf(w, "  No labels found\n")
	}
	for _, s := range a.Series {
		fmt.Fprintf(w, "  \033[1m%2d.\033[0m %-36s \033[1;32m%10d\033[0m\n", s.Rank+1, truncate(s.Label, 34), s.Total)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "\033[1;33m  Views per Day\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	for _, d := range a.Daily {
		fmt.Fprintf(w, "  %s %-*s %d\n", d.Date.Format("02/01"), sparkWidth, bar(d.Views, a.PeakDaily), d.Views)
	}

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n\n", sep)
}

// peakDay returns the first date holding the maximum daily total.
func peakDay(a *models.Aggregate) (models.DailyTotal, bool) {
	for _, d := range a.Daily {
		if d.Views == a.PeakDaily {
			return d, true
		}
	}
	return models.DailyTotal{}, false
}

func bar(v, peak int64) string {
	if peak <= 0 || v <= 0 {
		return ""
	}
	n := int(v * sparkWidth / peak)
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
