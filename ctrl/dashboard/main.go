package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/celskeggs/weatherdash/ctrl/display"
	"github.com/celskeggs/weatherdash/ctrl/util"
	"github.com/celskeggs/weatherdash/station/feed"
	"github.com/celskeggs/weatherdash/station/reading"
	"github.com/celskeggs/weatherdash/station/report"
	"github.com/celskeggs/weatherdash/station/web"
)

func main() {
	if util.HasArg("--help") {
		fmt.Printf("Usage: dashboard [--config weatherdash.yaml] [--replay] [--dark] [--vector]\n")
		fmt.Printf("Keys: E export chart, R save daily report, Q quit\n")
		return
	}
	cfg := util.Setup()
	replay := util.HasArg("--replay")
	st, rec := util.NewStation(cfg, !replay)
	defer func() {
		if err := rec.Close(); err != nil {
			log.Error().Err(err).Msg("closing recording")
		}
	}()

	records := util.LoadRecording(cfg)
	ctx := context.Background()
	if replay {
		go func() {
			if err := feed.Replay(ctx, records, time.Second, st.Live); err != nil {
				log.Error().Err(err).Msg("replay stopped")
			}
		}()
	} else {
		util.SeedHistory(st, records, cfg.History.Capacity)
	}
	go st.RunWatchdog(ctx)

	srv := &web.Server{
		Addr:       cfg.Server.Listen,
		Station:    st,
		Theme:      cfg.Theme(),
		Thresholds: cfg.Air.Thresholds,
		Limit:      cfg.Report.Limit,
		Width:      cfg.Chart.Width,
		Height:     cfg.Chart.Height,
		Records: func() ([]reading.Reading, error) {
			return util.LoadRecording(cfg), nil
		},
	}
	go func() {
		if err := srv.Serve(ctx); err != nil {
			log.Error().Err(err).Msg("web server stopped")
		}
	}()

	widget := &display.ChartWidget{
		Station:   st,
		Theme:     cfg.Theme(),
		DPI:       128,
		Vector:    util.HasArg("--vector"),
		ExportDir: cfg.Report.Directory,
		SaveReport: func() {
			current, ok := st.Latest()
			sum := report.Summarize(report.Input{
				Now:        time.Now(),
				Current:    current,
				HasCurrent: ok,
				Records:    util.LoadRecording(cfg),
				Session:    st.Stats(),
				Thresholds: cfg.Air.Thresholds,
				Limit:      cfg.Report.Limit,
			})
			path, err := report.Save(cfg.Report.Directory, sum, st.Chart(report.ChartWidth, report.ChartHeight), cfg.Theme())
			if err != nil {
				log.Error().Err(err).Msg("saving report failed")
				return
			}
			log.Info().Str("path", path).Msg("report saved")
		},
	}
	display.Run(widget, cfg.Air.Thresholds)
}
