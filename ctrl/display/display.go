package display

import (
	"image"
	"image/color"
	"os"
	"path"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vggio"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/celskeggs/weatherdash/station/chart"
	"github.com/celskeggs/weatherdash/station/dashboard"
	"github.com/celskeggs/weatherdash/station/liveness"
	"github.com/celskeggs/weatherdash/station/reading"
)

// ChartWidget shows the station's rolling chart under two status strips: feed liveness and air quality.
type ChartWidget struct {
	Station   *dashboard.Station
	Theme     chart.Theme
	DPI       int
	ExportDir string
	// SaveReport is invoked when R is pressed.
	SaveReport func()
	// Vector draws straight into the gio ops instead of through a cached raster image.
	Vector bool

	Dirty     bool
	Frame     chart.Frame
	Image     image.Image
	AdjWidth  vg.Length
	AdjHeight vg.Length
}

func (p *ChartWidget) GenImage(w, h vg.Length) image.Image {
	p.Frame = p.Station.Chart(float64(w), float64(h))
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(p.DPI))
	chart.Paint(draw.New(c), p.Frame, p.Theme)
	return c.Image()
}

func (p *ChartWidget) GetImage(size image.Point) image.Image {
	wAdjusted := vg.Points(float64(size.X) * vg.Inch.Points() / float64(p.DPI))
	hAdjusted := vg.Points(float64(size.Y) * vg.Inch.Points() / float64(p.DPI))
	if p.Image == nil || p.Dirty || p.AdjWidth != wAdjusted || p.AdjHeight != hAdjusted {
		p.Image = p.GenImage(wAdjusted, hAdjusted)
		p.AdjWidth = wAdjusted
		p.AdjHeight = hAdjusted
		p.Dirty = false
	}
	return p.Image
}

func statusColor(s liveness.Status) color.NRGBA {
	switch s {
	case liveness.Online:
		return color.NRGBA{0x43, 0xA0, 0x47, 255}
	case liveness.Offline:
		return color.NRGBA{0xBA, 0x1A, 0x1A, 255}
	default:
		return color.NRGBA{192, 192, 192, 255}
	}
}

func qualityColor(st *dashboard.Station, th reading.Thresholds) color.NRGBA {
	latest, ok := st.Latest()
	if !ok {
		return color.NRGBA{192, 192, 192, 255}
	}
	switch th.Classify(latest.Ratio) {
	case reading.Great:
		return color.NRGBA{0x9E, 0xCA, 0xFF, 255}
	case reading.Good:
		return color.NRGBA{0xF1, 0xDB, 0x8E, 255}
	default:
		return color.NRGBA{0xFF, 0xDA, 0xD6, 255}
	}
}

func fillStrip(gtx layout.Context, y0, y1 int, c color.NRGBA) {
	defer op.Save(gtx.Ops).Load()
	clip.Rect{
		Min: image.Point{X: 0, Y: y0},
		Max: image.Point{X: gtx.Constraints.Max.X, Y: y1},
	}.Add(gtx.Ops)
	paint.ColorOp{Color: c}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}

func (p *ChartWidget) Layout(gtx layout.Context, th reading.Thresholds) layout.Dimensions {
	defer op.Save(gtx.Ops).Load()

	stripY := 12
	if stripY > gtx.Constraints.Max.Y/8 {
		stripY = gtx.Constraints.Max.Y / 8
	}
	fillStrip(gtx, 0, stripY, statusColor(p.Station.Watchdog().Status()))
	fillStrip(gtx, stripY, stripY*2, qualityColor(p.Station, th))

	op.Offset(f32.Point{Y: float32(stripY * 3)}).Add(gtx.Ops)

	size := image.Point{
		X: gtx.Constraints.Max.X,
		Y: gtx.Constraints.Max.Y - stripY*3,
	}
	if size.X <= 0 || size.Y <= 0 {
		return layout.Dimensions{Size: gtx.Constraints.Max}
	}
	clip.Rect{Max: size}.Add(gtx.Ops)
	if p.Vector {
		wAdjusted := vg.Points(float64(size.X) * vg.Inch.Points() / float64(p.DPI))
		hAdjusted := vg.Points(float64(size.Y) * vg.Inch.Points() / float64(p.DPI))
		p.Frame = p.Station.Chart(float64(wAdjusted), float64(hAdjusted))
		p.Dirty = false
		cnv := vggio.New(gtx, wAdjusted, hAdjusted, vggio.UseDPI(p.DPI))
		chart.Paint(draw.New(cnv), p.Frame, p.Theme)
	} else {
		paint.NewImageOp(p.GetImage(size)).Add(gtx.Ops)
		paint.PaintOp{}.Add(gtx.Ops)
	}

	return layout.Dimensions{Size: gtx.Constraints.Max}
}

// Export writes the chart currently on screen as a PNG.
func (p *ChartWidget) Export() {
	if p.ExportDir == "" || p.Frame.Width == 0 {
		return
	}
	filepath := path.Join(p.ExportDir, "chart.png")
	if err := chart.SaveFrame(p.Frame, p.Theme, filepath, "png"); err != nil {
		log.Error().Err(err).Msg("chart export failed")
		return
	}
	log.Info().Str("path", filepath).Msg("chart exported")
}

// Run opens the dashboard window and blocks in the gio main loop. Closing the window exits the process.
func Run(widget *ChartWidget, th reading.Thresholds) {
	go func() {
		win := app.NewWindow(
			app.Title("Weather Station"),
			app.Size(
				unit.Px(1024),
				unit.Px(600),
			),
		)
		defer win.Close()

		for {
			select {
			case <-widget.Station.Changed():
				widget.Dirty = true
				win.Invalidate()
			case e := <-win.Events():
				switch e := e.(type) {
				case system.FrameEvent:
					ops := new(op.Ops)
					gtx := layout.NewContext(ops, e)
					layout.UniformInset(unit.Dp(30)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						return widget.Layout(gtx, th)
					})
					e.Frame(ops)

				case key.Event:
					switch e.Name {
					case "Q", key.NameEscape:
						win.Close()
					case "E":
						if e.State == key.Press {
							widget.Export()
						}
					case "R":
						if e.State == key.Press && widget.SaveReport != nil {
							widget.SaveReport()
						}
					}

				case system.DestroyEvent:
					os.Exit(0)
				}
			}
		}
	}()

	app.Main()
}
