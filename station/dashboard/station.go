// Package dashboard ties the live feed, the rolling chart history, session statistics, alerts and the liveness
// watchdog into one station.
package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/celskeggs/weatherdash/station/alert"
	"github.com/celskeggs/weatherdash/station/chart"
	"github.com/celskeggs/weatherdash/station/history"
	"github.com/celskeggs/weatherdash/station/liveness"
	"github.com/celskeggs/weatherdash/station/reading"
)

type Options struct {
	Capacity   int
	Thresholds reading.Thresholds
	Layout     chart.Layout
	Interval   time.Duration
	Stale      time.Duration
	Notifier   alert.Notifier
	Recorder   Recorder
}

type Recorder interface {
	Record(r reading.Reading) error
}

func DefaultOptions() Options {
	return Options{
		Capacity:   history.DefaultCapacity,
		Thresholds: reading.DefaultThresholds,
		Layout:     chart.DefaultLayout,
		Interval:   liveness.DefaultInterval,
		Stale:      liveness.DefaultStale,
		Notifier:   alert.LogNotifier{},
	}
}

type Station struct {
	history  *history.Buffer
	renderer *chart.Renderer
	watchdog *liveness.Watchdog
	notifier alert.Notifier
	recorder Recorder

	mu      sync.Mutex
	monitor *alert.Monitor
	stats   reading.Stats
	latest  reading.Reading
	quality reading.Quality
	hasData bool

	changed chan struct{}
}

func New(opts Options) *Station {
	if opts.Notifier == nil {
		opts.Notifier = alert.LogNotifier{}
	}
	return &Station{
		history:  history.New(opts.Capacity),
		renderer: chart.NewRenderer(opts.Layout),
		watchdog: liveness.NewWatchdog(opts.Interval, opts.Stale),
		notifier: opts.Notifier,
		recorder: opts.Recorder,
		monitor:  alert.NewMonitor(opts.Thresholds),
		changed:  make(chan struct{}, 1),
	}
}

// Live ingests one live reading. Readings with non-finite values are dropped before they reach the history.
func (s *Station) Live(ctx context.Context, r reading.Reading) {
	if !r.Finite() {
		log.Warn().Interface("reading", r).Msg("dropping non-finite reading")
		return
	}
	if r.At.IsZero() {
		r.At = time.Now()
	}
	s.watchdog.Seen(s.watchdog.Now())

	s.mu.Lock()
	s.latest = r
	s.hasData = true
	s.stats.Observe(r)
	q, a := s.monitor.Observe(r)
	s.quality = q
	s.mu.Unlock()

	s.history.Append(r.Temperature)

	if s.recorder != nil {
		if err := s.recorder.Record(r); err != nil {
			log.Error().Err(err).Msg("failed to record reading")
		}
	}
	if a != nil {
		if err := s.notifier.Notify(ctx, *a); err != nil {
			log.Error().Err(err).Msg("failed to deliver alert")
		}
	}
	s.signal()
}

// History adds a temperature sample to the chart history without touching the live state.
func (s *Station) History(temperature float64) {
	s.history.Append(temperature)
	s.signal()
}

func (s *Station) signal() {
	select {
	case s.changed <- struct{}{}:
	default:
	}
}

// Changed delivers one value after any number of updates since it was last drained.
func (s *Station) Changed() <-chan struct{} {
	return s.changed
}

func (s *Station) Samples() []float64 {
	return s.history.Snapshot()
}

func (s *Station) Chart(width, height float64) chart.Frame {
	return s.renderer.Render(s.history.Snapshot(), width, height)
}

func (s *Station) Latest() (reading.Reading, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, s.hasData
}

func (s *Station) Stats() reading.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

func (s *Station) Watchdog() *liveness.Watchdog {
	return s.watchdog
}

// RunWatchdog drives the liveness checks until ctx is done, logging status changes.
func (s *Station) RunWatchdog(ctx context.Context) {
	s.watchdog.Run(ctx, func(st liveness.Status) {
		log.Info().Stringer("status", st).Msg("feed status changed")
		s.signal()
	})
}
