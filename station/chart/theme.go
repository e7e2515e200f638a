package chart

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Theme holds the colors and strokes used to paint a Frame.
type Theme struct {
	Background color.Color
	Border     draw.LineStyle
	Grid       draw.LineStyle
	Line       draw.LineStyle
	Marker     color.Color
	Text       color.Color
	FontSize   vg.Length
}

func rgb(r, g, b uint8) color.Color {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func dashedGrid(c color.Color) draw.LineStyle {
	return draw.LineStyle{
		Color:  c,
		Width:  vg.Points(1),
		Dashes: []vg.Length{vg.Points(10), vg.Points(10)},
	}
}

var Light = Theme{
	Background: color.White,
	Border:     draw.LineStyle{Color: color.Gray{Y: 136}, Width: vg.Points(1)},
	Grid:       dashedGrid(color.Gray{Y: 204}),
	Line:       draw.LineStyle{Color: rgb(0x00, 0x5D, 0xAC), Width: vg.Points(2.5)},
	Marker:     rgb(0xFF, 0x00, 0x00),
	Text:       color.Gray{Y: 68},
	FontSize:   vg.Points(12),
}

var Dark = Theme{
	Background: rgb(0x1A, 0x1C, 0x1E),
	Border:     draw.LineStyle{Color: color.Gray{Y: 136}, Width: vg.Points(1)},
	Grid:       dashedGrid(color.Gray{Y: 80}),
	Line:       draw.LineStyle{Color: rgb(0xA4, 0xC9, 0xFF), Width: vg.Points(2.5)},
	Marker:     rgb(0xFF, 0x59, 0x59),
	Text:       color.Gray{Y: 200},
	FontSize:   vg.Points(12),
}

func ThemeNamed(name string) (Theme, bool) {
	switch name {
	case "", "light":
		return Light, true
	case "dark":
		return Dark, true
	default:
		return Theme{}, false
	}
}

func (th Theme) textStyle(xAlign text.XAlignment, yAlign text.YAlignment) draw.TextStyle {
	return text.Style{
		Color:   th.Text,
		Font:    font.From(plotter.DefaultFont, th.FontSize),
		XAlign:  xAlign,
		YAlign:  yAlign,
		Handler: plot.DefaultTextHandler,
	}
}
