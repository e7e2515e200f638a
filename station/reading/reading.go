// Package reading describes one live measurement from the weather station and the formatting used to show it.
package reading

import (
	"fmt"
	"math"
	"time"
)

type Reading struct {
	At          time.Time
	Temperature float64 // °C
	Humidity    float64 // %
	Pressure    float64 // hPa
	Ratio       float64 // air quality sensor output, volts
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Finite reports whether every measured quantity is a finite number.
func (r Reading) Finite() bool {
	return finite(r.Temperature) && finite(r.Humidity) && finite(r.Pressure) && finite(r.Ratio)
}

func FormatTemperature(v float64) string {
	return fmt.Sprintf("%.1f °C", v)
}

func FormatHumidity(v float64) string {
	return fmt.Sprintf("%.0f %%", v)
}

func FormatPressure(v float64) string {
	return fmt.Sprintf("%.0f hPa", v)
}

func FormatRatio(v float64) string {
	return fmt.Sprintf("Sensor: %.2f V", v)
}

func FormatClock(t time.Time) string {
	return t.Format("15:04:05")
}
