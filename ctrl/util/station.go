package util

import (
	"github.com/rs/zerolog/log"

	"github.com/celskeggs/weatherdash/station/alert"
	"github.com/celskeggs/weatherdash/station/config"
	"github.com/celskeggs/weatherdash/station/dashboard"
	"github.com/celskeggs/weatherdash/station/feed"
	"github.com/celskeggs/weatherdash/station/logx"
	"github.com/celskeggs/weatherdash/station/reading"
)

// Setup loads the configuration named by --config and installs the logger. Startup errors are fatal.
func Setup() *config.Config {
	cfg, err := config.NewLoader(ArgValue("--config", "")).Load()
	if err != nil {
		logx.Setup("info", nil)
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logx.Setup(cfg.LogLevel, nil)
	if HasArg("--dark") {
		cfg.Chart.Theme = "dark"
	}
	return cfg
}

func Notifier(cfg *config.Config) alert.Notifier {
	notifiers := alert.Multi{alert.LogNotifier{}}
	if cfg.Telegram.Enabled() {
		tg, err := alert.NewTelegram(cfg.Telegram.Token, cfg.Telegram.Chat)
		if err != nil {
			log.Error().Err(err).Msg("telegram alerts disabled")
		} else {
			notifiers = append(notifiers, tg)
		}
	}
	return notifiers
}

// NewStation builds the station from cfg. When record is set, live readings are appended to the recording.
func NewStation(cfg *config.Config, record bool) (*dashboard.Station, *feed.CSVRecorder) {
	rec := feed.NewNullRecorder()
	if record {
		var err error
		rec, err = feed.NewCSVRecorder(cfg.History.Recording)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.History.Recording).Msg("cannot open recording")
		}
	}
	st := dashboard.New(dashboard.Options{
		Capacity:   cfg.History.Capacity,
		Thresholds: cfg.Air.Thresholds,
		Layout:     cfg.Layout(),
		Interval:   cfg.Liveness.Interval,
		Stale:      cfg.Liveness.Stale,
		Notifier:   Notifier(cfg),
		Recorder:   rec,
	})
	return st, rec
}

// LoadRecording reads the recording, treating a missing file as empty history.
func LoadRecording(cfg *config.Config) []reading.Reading {
	if !Exists(cfg.History.Recording) {
		return nil
	}
	records, err := feed.DecodeRecording(cfg.History.Recording)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.History.Recording).Msg("cannot decode recording")
		return nil
	}
	return records
}

// SeedHistory loads the newest recorded temperatures into the chart history.
func SeedHistory(st *dashboard.Station, records []reading.Reading, capacity int) {
	for _, r := range feed.Last(records, capacity) {
		st.History(r.Temperature)
	}
	log.Info().Int("samples", len(st.Samples())).Msg("chart history loaded")
}
