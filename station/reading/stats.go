package reading

import (
	"fmt"
	"math"
)

// Range is the running minimum and maximum of one quantity.
type Range struct {
	Min, Max float64
	Count    int
}

func (r *Range) Observe(v float64) {
	if !finite(v) {
		return
	}
	if r.Count == 0 {
		r.Min, r.Max = v, v
	} else {
		r.Min = math.Min(r.Min, v)
		r.Max = math.Max(r.Max, v)
	}
	r.Count++
}

func (r Range) Empty() bool {
	return r.Count == 0
}

// Stats tracks session extremes since the station started.
type Stats struct {
	Temperature Range
	Humidity    Range
	Pressure    Range
}

func (s *Stats) Observe(r Reading) {
	s.Temperature.Observe(r.Temperature)
	s.Humidity.Observe(r.Humidity)
	s.Pressure.Observe(r.Pressure)
}

const emptyStats = "Min: -- • Max: --"

func (s Stats) TemperatureLine() string {
	if s.Temperature.Empty() {
		return emptyStats
	}
	return fmtMinMax("Min: %.1f° • Max: %.1f°", s.Temperature)
}

func (s Stats) HumidityLine() string {
	if s.Humidity.Empty() {
		return emptyStats
	}
	return fmtMinMax("Min: %.0f%% • Max: %.0f%%", s.Humidity)
}

func (s Stats) PressureLine() string {
	if s.Pressure.Empty() {
		return emptyStats
	}
	return fmtMinMax("Min: %.0f • Max: %.0f", s.Pressure)
}

func fmtMinMax(format string, r Range) string {
	return fmt.Sprintf(format, r.Min, r.Max)
}
