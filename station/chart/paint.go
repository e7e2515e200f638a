package chart

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Paint draws f into c, stretching the frame's width and height over the canvas rectangle.
// Frame coordinates have y growing downward; the canvas has y growing upward.
func Paint(c draw.Canvas, f Frame, th Theme) {
	if th.Background != nil {
		c.SetColor(th.Background)
		c.Fill(c.Rectangle.Path())
	}
	if f.Width <= 0 || f.Height <= 0 {
		return
	}
	size := c.Rectangle.Size()
	sx := float64(size.X) / f.Width
	sy := float64(size.Y) / f.Height
	tr := func(p Point) vg.Point {
		return vg.Point{
			X: c.Min.X + vg.Length(p.X*sx),
			Y: c.Max.Y - vg.Length(p.Y*sy),
		}
	}

	if f.Placeholder != nil {
		paintLabel(c, th, *f.Placeholder, tr)
		return
	}

	plotArea := []vg.Point{
		tr(f.Plot.Min),
		tr(Point{X: f.Plot.Max.X, Y: f.Plot.Min.Y}),
		tr(f.Plot.Max),
		tr(Point{X: f.Plot.Min.X, Y: f.Plot.Max.Y}),
		tr(f.Plot.Min),
	}
	c.StrokeLines(th.Border, plotArea)

	for _, g := range f.Grid {
		c.StrokeLine2(th.Grid, tr(g.From).X, tr(g.From).Y, tr(g.To).X, tr(g.To).Y)
		paintLabel(c, th, g.Label, tr)
	}

	if len(f.Path) > 1 {
		pts := make([]vg.Point, len(f.Path))
		for i, p := range f.Path {
			pts[i] = tr(p)
		}
		c.StrokeLines(th.Line, pts)
	}

	if f.Marker != nil {
		c.DrawGlyph(draw.GlyphStyle{
			Color:  th.Marker,
			Radius: vg.Length(f.Marker.Radius * sx),
			Shape:  draw.CircleGlyph{},
		}, tr(f.Marker.At))
		paintLabel(c, th, f.Marker.Label, tr)
	}
}

func paintLabel(c draw.Canvas, th Theme, l Label, tr func(Point) vg.Point) {
	sty := th.textStyle(draw.XLeft, draw.YBottom)
	if l.Centered {
		sty = th.textStyle(draw.XCenter, draw.YCenter)
	}
	c.FillText(sty, tr(l.At), l.Text)
}
