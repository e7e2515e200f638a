package report

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/celskeggs/weatherdash/station/chart"
	"github.com/celskeggs/weatherdash/station/reading"
)

// A4 portrait, in points.
const (
	PageWidth   = 595
	PageHeight  = 842
	ChartWidth  = 500
	ChartHeight = 250
)

var (
	black    = color.Black
	darkGray = color.Gray{Y: 68}
	rule     = color.Gray{Y: 204}
)

var columns = [4]float64{50, 200, 350, 480}

// page draws with the origin in the top left corner and y growing downward.
type page struct {
	c draw.Canvas
}

func (p page) pt(x, y float64) vg.Point {
	return vg.Point{X: vg.Length(x), Y: vg.Length(PageHeight - y)}
}

func (p page) text(x, y float64, size float64, clr color.Color, s string) {
	p.c.FillText(text.Style{
		Color:   clr,
		Font:    font.From(plotter.DefaultFont, vg.Points(size)),
		XAlign:  draw.XLeft,
		YAlign:  draw.YBottom,
		Handler: plot.DefaultTextHandler,
	}, p.pt(x, y), s)
}

func (p page) line(x0, x1, y float64, width float64, clr color.Color) {
	a, b := p.pt(x0, y), p.pt(x1, y)
	p.c.StrokeLine2(draw.LineStyle{Color: clr, Width: vg.Points(width)}, a.X, a.Y, b.X, b.Y)
}

func qualityLabel(q reading.Quality) (string, color.Color) {
	switch q {
	case reading.Great:
		return "GREAT", color.RGBA{G: 200, A: 255}
	case reading.Good:
		return "GOOD", color.RGBA{B: 255, A: 255}
	default:
		return "BAD", color.RGBA{R: 255, A: 255}
	}
}

type row struct {
	name   string
	format func(float64) string
	value  float64
	rng    reading.Range
}

func (s Summary) rows() []row {
	return []row{
		{"Temperature", reading.FormatTemperature, s.Current.Temperature, s.Temperature},
		{"Humidity", reading.FormatHumidity, s.Current.Humidity, s.Humidity},
		{"Pressure", reading.FormatPressure, s.Current.Pressure, s.Pressure},
	}
}

// Layout paints the report page onto c, which must be PageWidth x PageHeight points.
// frame is the chart to embed and should be rendered at ChartWidth x ChartHeight.
func Layout(c draw.Canvas, s Summary, frame chart.Frame, th chart.Theme) {
	p := page{c: c}
	c.SetColor(color.White)
	c.Fill(c.Rectangle.Path())

	y := 50.0
	p.text(50, y, 24, black, "Daily Report - Weather Station")
	y += 30
	p.text(50, y, 12, black, "Date: "+s.Generated.Format("2006-01-02 15:04"))
	y += 40

	for i, h := range []string{"PARAMETER", "CURRENT", "MIN (24h)", "MAX (24h)"} {
		p.text(columns[i], y, 14, darkGray, h)
	}
	y += 10
	p.line(40, 550, y, 2, black)
	y += 25

	rows := s.rows()
	for i, r := range rows {
		cells := [4]string{r.name, "--", "--", "--"}
		if s.HasCurrent {
			cells[1] = r.format(r.value)
		}
		if !r.rng.Empty() {
			cells[2], cells[3] = r.format(r.rng.Min), r.format(r.rng.Max)
		}
		for j, cell := range cells {
			p.text(columns[j], y, 14, black, cell)
		}
		y += 10
		if i == len(rows)-1 {
			p.line(40, 550, y, 2, black)
			y += 40
		} else {
			p.line(40, 550, y, 1, rule)
			y += 25
		}
	}

	p.text(50, y, 18, black, "Air quality sensor:")
	label, clr := qualityLabel(s.Quality)
	if !s.HasCurrent {
		label, clr = "UNKNOWN", darkGray
	}
	p.text(250, y, 18, clr, label)
	y += 50

	p.text(50, y, 14, darkGray, "Temperature chart (recorded history):")
	y += 20

	area := draw.Canvas{
		Canvas: c.Canvas,
		Rectangle: vg.Rectangle{
			Min: p.pt(50, y+ChartHeight),
			Max: p.pt(50+ChartWidth, y),
		},
	}
	chart.Paint(area, frame, th)
}

// WritePDF lays out the report and writes the PDF document to out.
func WritePDF(out io.Writer, s Summary, frame chart.Frame, th chart.Theme) error {
	c := vgpdf.New(PageWidth, PageHeight)
	Layout(draw.New(c), s, frame, th)
	_, err := c.WriteTo(out)
	return err
}

func FileName(now time.Time) string {
	return fmt.Sprintf("station_report_%d.pdf", now.UnixMilli())
}

// Save writes the report into dir and returns the path of the new file.
func Save(dir string, s Summary, frame chart.Frame, th chart.Theme) (path string, err error) {
	path = filepath.Join(dir, FileName(s.Generated))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if e := f.Close(); e != nil {
			err = multierror.Append(err, e)
		}
	}()
	if err := WritePDF(f, s, frame, th); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
