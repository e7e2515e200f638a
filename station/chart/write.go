package chart

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// DPI at which one frame unit becomes one raster pixel.
const DPI = 72

// NewCanvas creates a canvas for one of the supported output formats: png, jpg, jpeg, tif, tiff, svg, pdf, eps.
func NewCanvas(format string, width, height vg.Length) (vg.CanvasWriterTo, error) {
	switch strings.ToLower(format) {
	case "png":
		return vgimg.PngCanvas{Canvas: rasterCanvas(width, height)}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: rasterCanvas(width, height)}, nil
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: rasterCanvas(width, height)}, nil
	case "svg":
		return vgsvg.New(width, height), nil
	case "pdf":
		return vgpdf.New(width, height), nil
	case "eps":
		return vgeps.New(width, height), nil
	default:
		return nil, fmt.Errorf("unsupported chart format %q", format)
	}
}

func rasterCanvas(width, height vg.Length) *vgimg.Canvas {
	return vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(DPI))
}

// WriteFrame paints f at its own size and encodes it to output.
func WriteFrame(f Frame, th Theme, output io.Writer, format string) error {
	c, err := NewCanvas(format, vg.Points(f.Width), vg.Points(f.Height))
	if err != nil {
		return err
	}
	Paint(draw.New(c), f, th)
	_, err = c.WriteTo(output)
	return err
}

func combineErrors(errors ...error) (err error) {
	for _, e := range errors {
		switch {
		case e == nil:
			// ignore
		case err == nil:
			err = e
		default:
			err = multierror.Append(err, e)
		}
	}
	return err
}

func WriteCloseFrame(f Frame, th Theme, output io.WriteCloser, format string) (err error) {
	defer func() {
		e := output.Close()
		err = combineErrors(err, e)
	}()
	return WriteFrame(f, th, output, format)
}

func SaveFrame(f Frame, th Theme, path string, format string) error {
	output, err := os.Create(path)
	if err != nil {
		return err
	}
	return WriteCloseFrame(f, th, output, format)
}

// FormatOf guesses the output format from a file name's extension.
func FormatOf(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return strings.ToLower(path[i+1:])
	}
	return ""
}
