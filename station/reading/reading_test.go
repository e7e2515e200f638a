package reading

import (
	"math"
	"testing"
	"time"
)

func TestFormatting(t *testing.T) {
	cases := []struct {
		got, expected string
	}{
		{FormatTemperature(21.46), "21.5 °C"},
		{FormatHumidity(45.4), "45 %"},
		{FormatPressure(1013.2), "1013 hPa"},
		{FormatRatio(1.234), "Sensor: 1.23 V"},
		{FormatClock(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)), "03:04:05"},
	}
	for _, c := range cases {
		if c.got != c.expected {
			t.Errorf("got %q, expected %q", c.got, c.expected)
		}
	}
}

func TestFinite(t *testing.T) {
	r := Reading{Temperature: 20, Humidity: 40, Pressure: 1000, Ratio: 1}
	if !r.Finite() {
		t.Error("finite reading rejected")
	}
	r.Pressure = math.NaN()
	if r.Finite() {
		t.Error("NaN pressure accepted")
	}
	r.Pressure, r.Ratio = 1000, math.Inf(-1)
	if r.Finite() {
		t.Error("infinite ratio accepted")
	}
}

func TestStats(t *testing.T) {
	var s Stats
	if s.TemperatureLine() != emptyStats {
		t.Errorf("unexpected empty line %q", s.TemperatureLine())
	}
	s.Observe(Reading{Temperature: 20, Humidity: 40, Pressure: 1010})
	s.Observe(Reading{Temperature: 18.5, Humidity: 55, Pressure: 1002})
	s.Observe(Reading{Temperature: math.NaN(), Humidity: 50, Pressure: 1005})
	if s.Temperature.Count != 2 || s.Temperature.Min != 18.5 || s.Temperature.Max != 20 {
		t.Errorf("unexpected temperature range %+v", s.Temperature)
	}
	if got := s.TemperatureLine(); got != "Min: 18.5° • Max: 20.0°" {
		t.Errorf("temperature line %q", got)
	}
	if got := s.HumidityLine(); got != "Min: 40% • Max: 55%" {
		t.Errorf("humidity line %q", got)
	}
	if got := s.PressureLine(); got != "Min: 1002 • Max: 1010" {
		t.Errorf("pressure line %q", got)
	}
}

func TestClassify(t *testing.T) {
	cases := map[float64]Quality{
		0.3:  Great,
		1.19: Great,
		1.2:  Good,
		1.49: Good,
		1.5:  Bad,
		3.3:  Bad,
	}
	for ratio, expected := range cases {
		if q := DefaultThresholds.Classify(ratio); q != expected {
			t.Errorf("ratio %v: got %v, expected %v", ratio, q, expected)
		}
	}
	if Quality(7).String() != "Quality(7)" {
		t.Error("unexpected string for unknown quality")
	}
}
