package chart

import (
	"fmt"
	"image/color"
	"math"
	"time"
	"unicode/utf8"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"reels-chart/models"
	"reels-chart/storage"
	"reels-chart/utils"
)

const (
	legendMaxRunes = 28
	legendMaxShare = 0.3
	yHeadroom      = 1.05
)

// Renderer draws an Aggregate as a stacked bar chart.
type Renderer struct {
	opts   Options
	out    storage.ImageWriter
	logger *utils.Logger
}

// New creates a Renderer. Zero-valued fields of opts fall back to DefaultOptions.
func New(opts Options, out storage.ImageWriter, logger *utils.Logger) *Renderer {
	return &Renderer{opts: withDefaults(opts), out: out, logger: logger}
}

// Render draws a and writes the image to path. The figure is released before
// returning on every path.
func (r *Renderer) Render(a *models.Aggregate, path string) error {
	fig := newFigure(r.opts)
	defer fig.Close()

	segments := Layout(a, r.opts)
	p := r.newPlot(a, segments)
	leg := r.newLegend(a)

	dc := fig.drawCanvas()
	legendW := r.legendWidth(leg, a, dc)
	plotArea := draw.Crop(dc, 0, -legendW, 0, 0)
	legendArea := draw.Crop(dc, (dc.Max.X-dc.Min.X)-legendW, 0, 0, 0)

	p.Draw(plotArea)
	r.drawLegend(leg, legendArea)

	annotated := 0
	for _, s := range segments {
		if s.Annotate {
			annotated++
		}
	}
	r.logger.Info("[chart] Drew %d bars, %d segments (%d labelled, threshold %d)",
		len(a.Dates), len(segments), annotated,
		Threshold(a.PeakDaily, r.opts.LabelFloor, r.opts.LabelFraction))

	if err := r.out.WriteImage(path, fig.image()); err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	r.logger.Info("[chart] Saved %s", path)
	return nil
}

func (r *Renderer) newPlot(a *models.Aggregate, segments []Segment) *plot.Plot {
	p := plot.New()
	p.Title.Text = r.opts.Title
	p.X.Label.Text = r.opts.XLabel
	p.Y.Label.Text = r.opts.YLabel

	annot := p.X.Tick.Label
	annot.Color = color.White
	annot.Font.Size = vg.Points(8)
	annot.XAlign = text.XCenter
	annot.YAlign = text.YCenter

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = color.Gray{Y: 0xd8}
	p.Add(grid)

	p.Add(&stackedBars{
		segments: segments,
		width:    r.opts.BarWidth,
		edge:     draw.LineStyle{Color: color.White, Width: vg.Points(0.6)},
		label:    annot,
	})

	p.X.Tick.Marker = weeklyTicks{weekday: r.opts.TickWeekday, layout: r.opts.TickLayout}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	p.Y.Tick.Marker = viewTicks{}

	if len(a.Dates) == 0 {
		today := dayNumber(time.Now().UTC().Truncate(24 * time.Hour))
		p.X.Min, p.X.Max = today-1, today+1
	} else {
		pad := r.opts.BarWidth
		p.X.Min = dayNumber(a.Dates[0]) - pad
		p.X.Max = dayNumber(a.Dates[len(a.Dates)-1]) + pad
	}
	p.Y.Min = 0
	p.Y.Max = math.Max(1, float64(a.PeakDaily)*yHeadroom)

	return p
}

func (r *Renderer) newLegend(a *models.Aggregate) plot.Legend {
	leg := plot.NewLegend()
	leg.Top = true
	leg.Left = true
	for _, s := range a.Series {
		leg.Add(legendName(s.Label), swatch{color: ColorFor(r.opts.Palette, s.Rank)})
	}
	return leg
}

func (r *Renderer) legendWidth(leg plot.Legend, a *models.Aggregate, dc draw.Canvas) vg.Length {
	widest := leg.TextStyle.Width(r.opts.LegendTitle)
	for _, s := range a.Series {
		if w := leg.TextStyle.Width(legendName(s.Label)); w > widest {
			widest = w
		}
	}
	w := widest + leg.ThumbnailWidth + 3*leg.TextStyle.Width(" ") + vg.Points(12)
	limit := vg.Length(legendMaxShare) * (dc.Max.X - dc.Min.X)
	if w > limit {
		w = limit
	}
	return w
}

// drawLegend writes the title at the top of area and the entries below it.
func (r *Renderer) drawLegend(leg plot.Legend, area draw.Canvas) {
	area = draw.Crop(area, vg.Points(6), -vg.Points(6), vg.Points(6), -vg.Points(24))

	title := leg.TextStyle
	title.Font.Size = leg.TextStyle.Font.Size * 1.1
	title.XAlign = text.XLeft
	title.YAlign = text.YTop
	area.FillText(title, vg.Point{X: area.Min.X, Y: area.Max.Y}, r.opts.LegendTitle)

	leg.YOffs = -(title.Height(r.opts.LegendTitle) + leg.Padding + vg.Points(4))
	leg.Draw(area)
}

func legendName(label string) string {
	if utf8.RuneCountInString(label) <= legendMaxRunes {
		return label
	}
	return string([]rune(label)[:legendMaxRunes-1]) + "…"
}

func withDefaults(o Options) Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.DPI <= 0 {
		o.DPI = d.DPI
	}
	if o.BarWidth <= 0 {
		o.BarWidth = d.BarWidth
	}
	if o.RotateAfter <= 0 {
		o.RotateAfter = d.RotateAfter
	}
	if o.TickLayout == "" {
		o.TickLayout = d.TickLayout
	}
	if len(o.Palette) == 0 {
		o.Palette = d.Palette
	}
	return o
}
