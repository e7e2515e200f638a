package dashboard

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/celskeggs/weatherdash/station/alert"
	"github.com/celskeggs/weatherdash/station/reading"
)

type capture struct {
	alerts []alert.Alert
}

func (c *capture) Notify(_ context.Context, a alert.Alert) error {
	c.alerts = append(c.alerts, a)
	return nil
}

type failingRecorder struct {
	calls int
}

func (f *failingRecorder) Record(reading.Reading) error {
	f.calls++
	return errors.New("disk full")
}

func newTestStation() (*Station, *capture) {
	c := &capture{}
	opts := DefaultOptions()
	opts.Notifier = c
	return New(opts), c
}

func TestLiveUpdatesEverything(t *testing.T) {
	s, c := newTestStation()
	ctx := context.Background()
	at := time.Date(2026, 10, 16, 12, 30, 15, 0, time.Local)
	s.Live(ctx, reading.Reading{At: at, Temperature: 20, Humidity: 40, Pressure: 1010, Ratio: 1.0})
	s.Live(ctx, reading.Reading{At: at, Temperature: 22, Humidity: 45, Pressure: 1008, Ratio: 1.7})
	s.Live(ctx, reading.Reading{At: at, Temperature: 21, Humidity: 42, Pressure: 1009, Ratio: 1.8})

	samples := s.Samples()
	if len(samples) != 3 || samples[2] != 21 {
		t.Errorf("unexpected history %v", samples)
	}
	if len(c.alerts) != 1 {
		t.Errorf("expected exactly one alert, got %v", c.alerts)
	}
	st := s.Stats()
	if st.Temperature.Min != 20 || st.Temperature.Max != 22 || st.Pressure.Min != 1008 {
		t.Errorf("unexpected stats %+v", st)
	}
	latest, ok := s.Latest()
	if !ok || latest.Temperature != 21 {
		t.Errorf("unexpected latest %+v", latest)
	}

	v := s.View()
	if v.Temperature != "21.0 °C" || v.Quality != "Air: Bad" || v.LastUpdate != "Updated: 12:30:15" || v.Status != "● Online" {
		t.Errorf("unexpected view %+v", v)
	}

	select {
	case <-s.Changed():
	default:
		t.Error("expected a change notification")
	}
}

func TestLiveDropsNonFinite(t *testing.T) {
	s, _ := newTestStation()
	s.Live(context.Background(), reading.Reading{Temperature: math.NaN()})
	if len(s.Samples()) != 0 {
		t.Error("non-finite reading reached the history")
	}
	if _, ok := s.Latest(); ok {
		t.Error("non-finite reading became the latest reading")
	}
	if v := s.View(); v.Temperature != noData {
		t.Errorf("unexpected view %+v", v)
	}
}

func TestRecorderFailureIsNotFatal(t *testing.T) {
	opts := DefaultOptions()
	rec := &failingRecorder{}
	opts.Recorder = rec
	s := New(opts)
	s.Live(context.Background(), reading.Reading{Temperature: 1})
	if rec.calls != 1 || len(s.Samples()) != 1 {
		t.Errorf("recording failure disturbed ingestion: calls=%d samples=%v", rec.calls, s.Samples())
	}
}

func TestChartFollowsHistory(t *testing.T) {
	s, _ := newTestStation()
	if !s.Chart(500, 250).Empty() {
		t.Error("expected placeholder before any data")
	}
	for _, v := range []float64{20.0, 21.5, 19.0, 22.0, 20.5} {
		s.History(v)
	}
	f := s.Chart(500, 250)
	if f.Marker == nil || f.Marker.Label.Text != "20.5°C" {
		t.Errorf("unexpected marker %+v", f.Marker)
	}
	if _, ok := s.Latest(); ok {
		t.Error("history samples must not count as live readings")
	}
}

func TestChangedCoalesces(t *testing.T) {
	s, _ := newTestStation()
	for i := 0; i < 10; i++ {
		s.History(float64(i))
	}
	<-s.Changed()
	select {
	case <-s.Changed():
		t.Error("expected updates to be coalesced into one signal")
	default:
	}
}

func TestLivenessUsesArrivalTime(t *testing.T) {
	s, _ := newTestStation()
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	s.Watchdog().Now = func() time.Time { return now }

	recorded := now.Add(-time.Hour)
	s.Live(context.Background(), reading.Reading{At: recorded, Temperature: 20, Humidity: 40, Pressure: 1010, Ratio: 1.0})
	if st := s.Watchdog().Check(now.Add(time.Second)); st.String() != "● Online" {
		t.Errorf("an old reading timestamp must not mark the feed offline, got %v", st)
	}
	if v := s.View(); v.LastUpdate != "Updated: "+recorded.Format("15:04:05") {
		t.Errorf("the view should show the reading time, got %q", v.LastUpdate)
	}
}
