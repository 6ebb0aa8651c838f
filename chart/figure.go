package chart

import (
	"image"

	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// figure owns the raster canvas for a single render call.
type figure struct {
	canvas *vgimg.Canvas
}

func newFigure(o Options) *figure {
	return &figure{
		canvas: vgimg.NewWith(vgimg.UseWH(o.Width, o.Height), vgimg.UseDPI(o.DPI)),
	}
}

func (f *figure) drawCanvas() draw.Canvas {
	return draw.New(f.canvas)
}

func (f *figure) image() image.Image {
	if f.canvas == nil {
		return nil
	}
	return f.canvas.Image()
}

// Close drops the canvas. The figure is unusable afterwards.
func (f *figure) Close() {
	f.canvas = nil
}
