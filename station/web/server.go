// Package web serves the station dashboard, its chart images and the daily report over HTTP.
package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/celskeggs/weatherdash/station/chart"
	"github.com/celskeggs/weatherdash/station/dashboard"
	"github.com/celskeggs/weatherdash/station/feed"
	"github.com/celskeggs/weatherdash/station/reading"
	"github.com/celskeggs/weatherdash/station/report"
)

type Server struct {
	Addr       string
	Station    *dashboard.Station
	Theme      chart.Theme
	Thresholds reading.Thresholds
	Limit      int
	Width      float64
	Height     float64
	// Records loads the recorded history used by the daily report. Nil means no history.
	Records func() ([]reading.Reading, error)
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.index)
	mux.HandleFunc("/chart.png", s.chartHandler("png", "image/png"))
	mux.HandleFunc("/chart.svg", s.chartHandler("svg", "image/svg+xml"))
	mux.HandleFunc("/report.pdf", s.reportHandler)
	mux.HandleFunc("/status", s.status)
	mux.Handle("/live", feed.Handler(s.Station.Live))
	return mux
}

// Serve listens on Addr until ctx is done.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("web server shutdown")
		}
	}()
	log.Info().Str("addr", s.Addr).Msg("starting web server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

const indexPage = `<!DOCTYPE html><html lang="en"><head><meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<meta http-equiv="refresh" content="5">
<title>Weather Station</title></head>
<body><img src="/chart.svg" alt="Temperature Chart" />
<p><a href="/report.pdf">Daily report (PDF)</a> · <a href="/status">Status</a></p></body></html>`

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexPage))
}

func dimension(r *http.Request, key string, fallback float64) (float64, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 || v > 10000 {
		return 0, false
	}
	return v, true
}

func (s *Server) chartHandler(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		width, okW := dimension(r, "w", s.Width)
		height, okH := dimension(r, "h", s.Height)
		if !okW || !okH {
			http.Error(w, "invalid chart size", http.StatusBadRequest)
			return
		}
		var buf bytes.Buffer
		if err := chart.WriteFrame(s.Station.Chart(width, height), s.Theme, &buf, format); err != nil {
			log.Error().Err(err).Str("format", format).Msg("chart rendering failed")
			http.Error(w, "chart not available", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		_, _ = w.Write(buf.Bytes())
	}
}

func (s *Server) summary(now time.Time) (report.Summary, error) {
	var records []reading.Reading
	if s.Records != nil {
		var err error
		if records, err = s.Records(); err != nil {
			return report.Summary{}, err
		}
	}
	current, ok := s.Station.Latest()
	return report.Summarize(report.Input{
		Now:        now,
		Current:    current,
		HasCurrent: ok,
		Records:    records,
		Session:    s.Station.Stats(),
		Thresholds: s.Thresholds,
		Limit:      s.Limit,
	}), nil
}

func (s *Server) reportHandler(w http.ResponseWriter, r *http.Request) {
	sum, err := s.summary(time.Now())
	if err != nil {
		log.Error().Err(err).Msg("could not load history for report")
		http.Error(w, "history not available", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := report.WritePDF(&buf, sum, s.Station.Chart(report.ChartWidth, report.ChartHeight), s.Theme); err != nil {
		log.Error().Err(err).Msg("report rendering failed")
		http.Error(w, "report not available", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+report.FileName(sum.Generated)+`"`)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.Station.View())
}
