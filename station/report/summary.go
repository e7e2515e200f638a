// Package report builds the daily summary of the weather station and lays it out as a one page PDF.
package report

import (
	"time"

	"github.com/celskeggs/weatherdash/station/reading"
)

// DefaultLimit is the number of recorded readings covering one day at one reading per minute.
const DefaultLimit = 1440

type Summary struct {
	Generated time.Time

	Current    reading.Reading
	HasCurrent bool
	Quality    reading.Quality

	Temperature reading.Range
	Humidity    reading.Range
	Pressure    reading.Range
	// FromHistory is false when the extremes come from the session instead of the recording.
	FromHistory bool
	Records     int
}

type Input struct {
	Now        time.Time
	Current    reading.Reading
	HasCurrent bool
	Records    []reading.Reading
	Session    reading.Stats
	Thresholds reading.Thresholds
	Limit      int
}

// Summarize computes the extremes over the newest Limit records. When no usable record exists, the session
// statistics are used instead.
func Summarize(in Input) Summary {
	limit := in.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	records := in.Records
	if len(records) > limit {
		records = records[len(records)-limit:]
	}

	s := Summary{
		Generated:  in.Now,
		Current:    in.Current,
		HasCurrent: in.HasCurrent,
		Quality:    in.Thresholds.Classify(in.Current.Ratio),
	}
	var day reading.Stats
	for _, r := range records {
		if !r.Finite() {
			continue
		}
		day.Observe(r)
		s.Records++
	}
	if s.Records > 0 {
		s.Temperature, s.Humidity, s.Pressure = day.Temperature, day.Humidity, day.Pressure
		s.FromHistory = true
	} else {
		s.Temperature, s.Humidity, s.Pressure = in.Session.Temperature, in.Session.Humidity, in.Session.Pressure
	}
	return s
}
