package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/celskeggs/weatherdash/ctrl/util"
	"github.com/celskeggs/weatherdash/station/feed"
	"github.com/celskeggs/weatherdash/station/report"
)

// Writes the daily report for a recording, using its newest reading as the current one.
func main() {
	if util.HasArg("--help") {
		fmt.Printf("Usage: report [--config weatherdash.yaml] [--dark] [recording.csv]\n")
		return
	}
	cfg := util.Setup()
	if args := util.Positional(); len(args) == 1 {
		cfg.History.Recording = args[0]
	} else if len(args) > 1 {
		log.Fatal().Msgf("Usage: %s [recording.csv]", os.Args[0])
	}
	records, err := feed.DecodeRecording(cfg.History.Recording)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read recording")
	}

	st, _ := util.NewStation(cfg, false)
	util.SeedHistory(st, records, cfg.History.Capacity)

	in := report.Input{
		Now:        time.Now(),
		Records:    records,
		Thresholds: cfg.Air.Thresholds,
		Limit:      cfg.Report.Limit,
	}
	if len(records) > 0 {
		in.Current, in.HasCurrent = records[len(records)-1], true
	}
	path, err := report.Save(cfg.Report.Directory, report.Summarize(in), st.Chart(report.ChartWidth, report.ChartHeight), cfg.Theme())
	if err != nil {
		log.Fatal().Err(err).Msg("cannot write report")
	}
	log.Info().Str("path", path).Int("records", len(records)).Msg("report written")
}
