package report

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"

	"github.com/celskeggs/weatherdash/station/chart"
	"github.com/celskeggs/weatherdash/station/reading"
)

func TestSummarizeFromHistory(t *testing.T) {
	var records []reading.Reading
	// the first record falls outside the limit and must not count
	records = append(records, reading.Reading{Temperature: -40, Humidity: 0, Pressure: 900})
	for i := 0; i < 10; i++ {
		records = append(records, reading.Reading{
			Temperature: 15 + float64(i),
			Humidity:    50,
			Pressure:    1000 + float64(i),
		})
	}
	records = append(records, reading.Reading{Temperature: math.NaN()})

	s := Summarize(Input{
		Now:        time.Unix(1700000000, 0),
		Current:    reading.Reading{Temperature: 19, Ratio: 1.3},
		HasCurrent: true,
		Records:    records,
		Thresholds: reading.DefaultThresholds,
		Limit:      11,
	})
	if !s.FromHistory || s.Records != 10 {
		t.Errorf("expected 10 history records, got %d (from history: %v)", s.Records, s.FromHistory)
	}
	if s.Temperature.Min != 15 || s.Temperature.Max != 24 || s.Pressure.Max != 1009 {
		t.Errorf("unexpected extremes %+v %+v", s.Temperature, s.Pressure)
	}
	if s.Quality != reading.Good {
		t.Errorf("unexpected quality %v", s.Quality)
	}
}

func TestSummarizeFallsBackToSession(t *testing.T) {
	var session reading.Stats
	session.Observe(reading.Reading{Temperature: 10, Humidity: 30, Pressure: 990})
	session.Observe(reading.Reading{Temperature: 12, Humidity: 35, Pressure: 995})
	s := Summarize(Input{
		Session:    session,
		Thresholds: reading.DefaultThresholds,
	})
	if s.FromHistory {
		t.Error("expected session fallback")
	}
	if s.Temperature.Min != 10 || s.Temperature.Max != 12 || s.Humidity.Max != 35 {
		t.Errorf("unexpected extremes %+v", s)
	}
}

func TestWritePDF(t *testing.T) {
	s := Summarize(Input{
		Now:        time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC),
		Current:    reading.Reading{Temperature: 20.5, Humidity: 44, Pressure: 1011, Ratio: 1.7},
		HasCurrent: true,
		Records:    []reading.Reading{{Temperature: 18, Humidity: 40, Pressure: 1009}},
		Thresholds: reading.DefaultThresholds,
	})
	var buf bytes.Buffer
	if err := WritePDF(&buf, s, chart.Render([]float64{20.0, 21.5, 19.0, 22.0, 20.5}, ChartWidth, ChartHeight), chart.Light); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Errorf("output does not look like a PDF: %q", buf.String()[:16])
	}

	buf.Reset()
	if err := WritePDF(&buf, Summary{}, chart.Render(nil, ChartWidth, ChartHeight), chart.Dark); err != nil {
		t.Fatalf("empty report failed: %v", err)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	now := time.UnixMilli(1700000000123)
	path, err := Save(dir, Summary{Generated: now}, chart.Render([]float64{1, 2}, ChartWidth, ChartHeight), chart.Light)
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, "station_report_1700000000123.pdf") {
		t.Errorf("unexpected path %q", path)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("report file missing or empty: %v", err)
	}
	if _, err := Save(filepath.Join(dir, "missing"), Summary{Generated: now}, chart.Frame{}, chart.Light); err == nil {
		t.Error("expected an error writing into a missing directory")
	}
}

func pageStrings(t *testing.T, s Summary, frame chart.Frame) []string {
	t.Helper()
	var rec recorder.Canvas
	Layout(draw.NewCanvas(&rec, PageWidth, PageHeight), s, frame, chart.Light)
	var out []string
	for _, a := range rec.Actions {
		if fs, ok := a.(*recorder.FillString); ok {
			out = append(out, fs.String)
		}
	}
	return out
}

func TestLayoutUsesGivenChart(t *testing.T) {
	l := chart.DefaultLayout
	l.Unit = "°F"
	frame := chart.NewRenderer(l).Render([]float64{68}, ChartWidth, ChartHeight)

	texts := pageStrings(t, Summary{}, frame)
	var found bool
	for _, s := range texts {
		if s == "68.0°C" || s == "68°C" {
			t.Errorf("chart drawn with the default unit: %q", s)
		}
		if s == frame.Marker.Label.Text {
			found = true
		}
	}
	if !found {
		t.Errorf("marker label %q not drawn, page text: %v", frame.Marker.Label.Text, texts)
	}
}
