package chart

import (
	"image/color"
	"time"

	"gonum.org/v1/plot/vg"
)

// Options holds everything the renderer needs. Nothing is read from the
// process environment.
type Options struct {
	Width  vg.Length
	Height vg.Length
	DPI    int

	Title       string
	XLabel      string
	YLabel      string
	LegendTitle string

	// BarWidth is measured in days.
	BarWidth float64

	// A segment is annotated with its label when its value reaches
	// max(LabelFloor, LabelFraction × peak daily total).
	LabelFloor    int64
	LabelFraction float64
	// Labels longer than RotateAfter runes are drawn vertically.
	RotateAfter int

	TickWeekday time.Weekday
	TickLayout  string

	Palette []color.Color
}

// DefaultOptions returns a 16×8 inch, 160 dpi chart.
func DefaultOptions() Options {
	return Options{
		Width:  16 * vg.Inch,
		Height: 8 * vg.Inch,
		DPI:    160,

		Title:       "Views by date: stacked bars (color = episode / guest)",
		XLabel:      "Date",
		YLabel:      "Views (total/day)",
		LegendTitle: "Episode",

		BarWidth: 0.8,

		LabelFloor:    8000,
		LabelFraction: 0.06,
		RotateAfter:   14,

		TickWeekday: time.Monday,
		TickLayout:  "02/01",

		Palette: Tab10,
	}
}
