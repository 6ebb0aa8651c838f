package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// stackedBars draws precomputed segments in data coordinates, so bar width
// is expressed in days rather than in canvas units.
type stackedBars struct {
	segments []Segment
	width    float64
	edge     draw.LineStyle
	label    text.Style
}

func (b *stackedBars) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	half := b.width / 2

	for _, s := range b.segments {
		x0, x1 := trX(s.X-half), trX(s.X+half)
		y0, y1 := trY(float64(s.Bottom)), trY(float64(s.Top))

		pts := []vg.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
		c.FillPolygon(s.Color, c.ClipPolygonXY(pts))
		c.StrokeLines(b.edge, c.ClipLinesXY(append(pts, pts[0]))...)

		if !s.Annotate {
			continue
		}
		sty := b.label
		if s.Rotate {
			sty.Rotation = math.Pi / 2
		}
		center := vg.Point{X: (x0 + x1) / 2, Y: (y0 + y1) / 2}
		if c.Contains(center) {
			c.FillText(sty, center, s.Label)
		}
	}
}

// DataRange implements plot.DataRanger.
func (b *stackedBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	if len(b.segments) == 0 {
		return 0, 1, 0, 1
	}
	xmin, xmax = math.Inf(1), math.Inf(-1)
	for _, s := range b.segments {
		xmin = math.Min(xmin, s.X-b.width/2)
		xmax = math.Max(xmax, s.X+b.width/2)
		ymax = math.Max(ymax, float64(s.Top))
	}
	return xmin, xmax, 0, ymax
}

// swatch is a filled legend thumbnail.
type swatch struct {
	color color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.color, c.ClipPolygonY(pts))
}
