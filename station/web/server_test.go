package web

import (
	"context"
	"encoding/json"
	"errors"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/celskeggs/weatherdash/station/chart"
	"github.com/celskeggs/weatherdash/station/dashboard"
	"github.com/celskeggs/weatherdash/station/reading"
)

func newTestServer() *Server {
	return &Server{
		Station:    dashboard.New(dashboard.DefaultOptions()),
		Theme:      chart.Light,
		Thresholds: reading.DefaultThresholds,
		Width:      500,
		Height:     250,
	}
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestIngestThenStatus(t *testing.T) {
	s := newTestServer()
	h := s.Handler()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/live", strings.NewReader(`{"temperature":19.5,"humidity":51,"pressure":1004,"air_ratio":0.9}`)))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("ingest failed: %d", rr.Code)
	}

	rr = get(h, "/status")
	var v dashboard.View
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatal(err)
	}
	if v.Temperature != "19.5 °C" || v.Quality != "Air: Great" {
		t.Errorf("unexpected view %+v", v)
	}
}

func TestChartPNG(t *testing.T) {
	s := newTestServer()
	s.Station.History(20)
	s.Station.History(21)
	rr := get(s.Handler(), "/chart.png?w=320&h=200")
	if rr.Code != http.StatusOK || rr.Header().Get("Content-Type") != "image/png" {
		t.Fatalf("unexpected response %d %q", rr.Code, rr.Header().Get("Content-Type"))
	}
	img, err := png.Decode(rr.Body)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 200 {
		t.Errorf("unexpected size %v", b)
	}
	if rr := get(s.Handler(), "/chart.png?w=-3"); rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a bad size, got %d", rr.Code)
	}
}

func TestChartSVGPlaceholder(t *testing.T) {
	rr := get(newTestServer().Handler(), "/chart.svg")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "Loading history") {
		t.Errorf("expected a placeholder chart, got %d", rr.Code)
	}
}

func TestReport(t *testing.T) {
	s := newTestServer()
	s.Records = func() ([]reading.Reading, error) {
		return []reading.Reading{{Temperature: 18, Humidity: 40, Pressure: 1000}}, nil
	}
	s.Station.Live(context.Background(), reading.Reading{Temperature: 20, Humidity: 45, Pressure: 1002, Ratio: 1.1})
	rr := get(s.Handler(), "/report.pdf")
	if rr.Code != http.StatusOK || !strings.HasPrefix(rr.Body.String(), "%PDF") {
		t.Fatalf("unexpected report response %d", rr.Code)
	}
	if cd := rr.Header().Get("Content-Disposition"); !strings.Contains(cd, "station_report_") {
		t.Errorf("unexpected disposition %q", cd)
	}

	s.Records = func() ([]reading.Reading, error) { return nil, errors.New("unreadable") }
	if rr := get(s.Handler(), "/report.pdf"); rr.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 when history fails, got %d", rr.Code)
	}
}

func TestIndex(t *testing.T) {
	h := newTestServer().Handler()
	if rr := get(h, "/"); rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "/chart.svg") {
		t.Errorf("unexpected index %d", rr.Code)
	}
	if rr := get(h, "/nope"); rr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rr.Code)
	}
}
