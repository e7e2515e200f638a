package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"

	"github.com/celskeggs/weatherdash/ctrl/util"
	"github.com/celskeggs/weatherdash/station/feed"
	"github.com/celskeggs/weatherdash/station/reading"
	"github.com/celskeggs/weatherdash/station/web"
)

func main() {
	if util.HasArg("--help") {
		fmt.Printf("Usage: server [--config weatherdash.yaml] [--dark]\n")
		return
	}
	cfg := util.Setup()
	st, rec := util.NewStation(cfg, true)
	defer func() {
		if err := rec.Close(); err != nil {
			log.Error().Err(err).Msg("closing recording")
		}
	}()
	util.SeedHistory(st, util.LoadRecording(cfg), cfg.History.Capacity)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
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
			if !util.Exists(cfg.History.Recording) {
				return nil, nil
			}
			return feed.DecodeRecording(cfg.History.Recording)
		},
	}
	if err := srv.Serve(ctx); err != nil {
		log.Fatal().Err(err).Msg("web server failed")
	}
}
