// Package alert turns air quality readings into one-shot pollution alerts and delivers them.
package alert

import (
	"fmt"
	"time"

	"github.com/celskeggs/weatherdash/station/reading"
)

type Alert struct {
	At      time.Time
	Title   string
	Message string
	Ratio   float64
}

func (a Alert) String() string {
	return a.Title + " " + a.Message
}

type state int

const (
	stateUnknown state = iota
	stateClear
	stateRaised
)

// Monitor raises an alert when the air quality enters the Bad band, and stays quiet until it has left it again.
type Monitor struct {
	Thresholds reading.Thresholds
	state      state
}

func NewMonitor(th reading.Thresholds) *Monitor {
	return &Monitor{Thresholds: th}
}

// Observe classifies the reading. The returned alert is only non-nil on a transition into Bad.
func (m *Monitor) Observe(r reading.Reading) (reading.Quality, *Alert) {
	q := m.Thresholds.Classify(r.Ratio)
	if q != reading.Bad {
		m.state = stateClear
		return q, nil
	}
	if m.state == stateRaised {
		return q, nil
	}
	m.state = stateRaised
	return q, &Alert{
		At:      r.At,
		Title:   "Pollution detected!",
		Message: fmt.Sprintf("Sensor level exceeded %.1fV!", m.Thresholds.Good),
		Ratio:   r.Ratio,
	}
}

func (m *Monitor) Raised() bool {
	return m.state == stateRaised
}
