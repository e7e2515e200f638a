package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Point is a position in pixel space: x grows right, y grows down.
type Point struct {
	X, Y float64
}

type Rect struct {
	Min, Max Point
}

func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Label is a piece of text whose baseline starts at At, unless Centered is set.
type Label struct {
	At       Point
	Text     string
	Centered bool
}

type GridLine struct {
	From, To Point
	Value    float64
	Label    Label
}

type Marker struct {
	At     Point
	Radius float64
	Value  float64
	Label  Label
}

// Frame is everything needed to paint one chart. A frame is either a placeholder (no samples) or a full chart.
type Frame struct {
	Width, Height float64

	Placeholder *Label

	Plot     Rect
	Min, Max float64
	Range    float64
	Grid     []GridLine
	Path     []Point
	Marker   *Marker
}

func (f Frame) Empty() bool {
	return f.Placeholder != nil
}

const (
	GridLines     = 5
	FallbackRange = 10.0
	padding       = 1.0
)

// Layout holds the fixed geometry and text of a chart.
type Layout struct {
	LeftMargin   float64
	BottomMargin float64
	Unit         string
	Loading      string
	MarkerRadius float64
}

var DefaultLayout = Layout{
	LeftMargin:   80,
	BottomMargin: 40,
	Unit:         "°C",
	Loading:      "Loading history...",
	MarkerRadius: 8,
}

type Renderer struct {
	Layout Layout
}

func NewRenderer(l Layout) *Renderer {
	return &Renderer{Layout: l}
}

// Render uses DefaultLayout.
func Render(samples []float64, width, height float64) Frame {
	return (&Renderer{Layout: DefaultLayout}).Render(samples, width, height)
}

func bounds(samples []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		ok = true
	}
	return lo, hi, ok
}

func FormatAxis(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// FormatValue prints the shortest representation of v that keeps at least one decimal, then the unit.
func (r *Renderer) FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s + r.Layout.Unit
}

// Render maps samples (oldest first) onto a width x height region. It does not retain or modify samples.
// Non-finite samples are skipped.
func (r *Renderer) Render(samples []float64, width, height float64) Frame {
	frame := Frame{Width: width, Height: height}

	lo, hi, ok := bounds(samples)
	if !ok {
		frame.Placeholder = &Label{
			At:       Point{X: width / 2, Y: height / 2},
			Text:     r.Layout.Loading,
			Centered: true,
		}
		return frame
	}

	frame.Plot = Rect{
		Min: Point{X: r.Layout.LeftMargin, Y: 0},
		Max: Point{X: width, Y: height - r.Layout.BottomMargin},
	}
	plotW, plotH := frame.Plot.Dx(), frame.Plot.Dy()
	bottom := frame.Plot.Max.Y

	frame.Max = hi + padding
	frame.Min = lo - padding
	frame.Range = frame.Max - frame.Min
	if frame.Range == 0 {
		frame.Range = FallbackRange
	}

	for i := 0; i < GridLines; i++ {
		y := bottom - plotH*float64(i)/(GridLines-1)
		value := frame.Min + frame.Range*float64(i)/(GridLines-1)
		frame.Grid = append(frame.Grid, GridLine{
			From:  Point{X: frame.Plot.Min.X, Y: y},
			To:    Point{X: frame.Plot.Max.X, Y: y},
			Value: value,
			Label: Label{At: Point{X: 10, Y: y + 10}, Text: FormatAxis(value)},
		})
	}

	steps := len(samples) - 1
	if steps < 1 {
		steps = 1
	}
	stepX := plotW / float64(steps)
	var newest float64
	for i, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		pt := Point{
			X: frame.Plot.Min.X + float64(i)*stepX,
			Y: bottom - (v-frame.Min)/frame.Range*plotH,
		}
		frame.Path = append(frame.Path, pt)
		newest = v
	}

	// only the newest sample gets its own label
	last := frame.Path[len(frame.Path)-1]
	frame.Marker = &Marker{
		At:     last,
		Radius: r.Layout.MarkerRadius,
		Value:  newest,
		Label:  Label{At: Point{X: last.X - 60, Y: last.Y - 20}, Text: r.FormatValue(newest)},
	}
	return frame
}
