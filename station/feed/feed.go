// Package feed carries readings from recordings or HTTP clients into the station.
package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/celskeggs/weatherdash/station/reading"
)

// Sink receives each live reading as it arrives.
type Sink func(ctx context.Context, r reading.Reading)

// Replay feeds records to sink one per interval, stamped with the time they are delivered.
// It returns early with the context's error if ctx is cancelled.
func Replay(ctx context.Context, records []reading.Reading, interval time.Duration, sink Sink) error {
	if len(records) == 0 {
		return nil
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for i, r := range records {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-t.C:
			}
		}
		r.At = time.Now()
		sink(ctx, r)
	}
	log.Debug().Int("count", len(records)).Msg("replay finished")
	return nil
}

// Payload is the JSON body accepted by Handler. Missing fields read as zero.
type Payload struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Pressure    float64 `json:"pressure"`
	Ratio       float64 `json:"air_ratio"`
}

func (p Payload) Reading(at time.Time) reading.Reading {
	return reading.Reading{
		At:          at,
		Temperature: p.Temperature,
		Humidity:    p.Humidity,
		Pressure:    p.Pressure,
		Ratio:       p.Ratio,
	}
}

const maxPayload = 1 << 16

// Handler accepts POSTed JSON readings and forwards them to sink.
func Handler(sink Sink) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var p Payload
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPayload))
		if err := dec.Decode(&p); err != nil {
			log.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("rejected live reading")
			http.Error(w, "invalid reading: "+err.Error(), http.StatusBadRequest)
			return
		}
		sink(r.Context(), p.Reading(time.Now()))
		w.WriteHeader(http.StatusNoContent)
	})
}
