package dashboard

import (
	"github.com/celskeggs/weatherdash/station/reading"
)

// View is the text shown on the dashboard cards.
type View struct {
	Status      string `json:"status"`
	Temperature string `json:"temperature"`
	TempStats   string `json:"temperature_stats"`
	Humidity    string `json:"humidity"`
	HumStats    string `json:"humidity_stats"`
	Pressure    string `json:"pressure"`
	PressStats  string `json:"pressure_stats"`
	Ratio       string `json:"ratio"`
	Quality     string `json:"quality"`
	LastUpdate  string `json:"last_update"`
}

const noData = "--"

func (s *Station) View() View {
	status := s.watchdog.Status().String()
	s.mu.Lock()
	defer s.mu.Unlock()
	v := View{
		Status:     status,
		TempStats:  s.stats.TemperatureLine(),
		HumStats:   s.stats.HumidityLine(),
		PressStats: s.stats.PressureLine(),
	}
	if !s.hasData {
		v.Temperature, v.Humidity, v.Pressure, v.Ratio, v.Quality, v.LastUpdate = noData, noData, noData, noData, noData, noData
		return v
	}
	v.Temperature = reading.FormatTemperature(s.latest.Temperature)
	v.Humidity = reading.FormatHumidity(s.latest.Humidity)
	v.Pressure = reading.FormatPressure(s.latest.Pressure)
	v.Ratio = reading.FormatRatio(s.latest.Ratio)
	v.Quality = "Air: " + s.quality.String()
	v.LastUpdate = "Updated: " + reading.FormatClock(s.latest.At)
	return v
}
