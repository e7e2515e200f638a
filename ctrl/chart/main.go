package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/celskeggs/weatherdash/ctrl/util"
	"github.com/celskeggs/weatherdash/station/chart"
	"github.com/celskeggs/weatherdash/station/feed"
	"github.com/celskeggs/weatherdash/station/history"
)

func main() {
	if util.HasArg("--help") {
		fmt.Printf("Usage: chart [--config weatherdash.yaml] [--out chart.png] [--dark] [recording.csv]\n")
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

	buf := history.New(cfg.History.Capacity)
	for _, r := range records {
		buf.Append(r.Temperature)
	}
	frame := chart.NewRenderer(cfg.Layout()).Render(buf.Snapshot(), cfg.Chart.Width, cfg.Chart.Height)

	out := util.ArgValue("--out", "chart.png")
	if err := chart.SaveFrame(frame, cfg.Theme(), out, chart.FormatOf(out)); err != nil {
		log.Fatal().Err(err).Str("path", out).Msg("cannot write chart")
	}
	log.Info().Str("path", out).Int("samples", buf.Len()).Msg("chart written")
}
