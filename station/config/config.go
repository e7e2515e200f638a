// Package config holds the station settings, read from YAML and overridden from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/celskeggs/weatherdash/station/chart"
	"github.com/celskeggs/weatherdash/station/history"
	"github.com/celskeggs/weatherdash/station/liveness"
	"github.com/celskeggs/weatherdash/station/reading"
	"github.com/celskeggs/weatherdash/station/report"
)

type Config struct {
	LogLevel string         `yaml:"log_level"`
	History  HistoryConfig  `yaml:"history"`
	Chart    ChartConfig    `yaml:"chart"`
	Air      AirConfig      `yaml:"air"`
	Liveness LivenessConfig `yaml:"liveness"`
	Report   ReportConfig   `yaml:"report"`
	Server   ServerConfig   `yaml:"server"`
	Telegram TelegramConfig `yaml:"telegram"`
}

type HistoryConfig struct {
	Capacity  int    `yaml:"capacity"`
	Recording string `yaml:"recording"`
}

type ChartConfig struct {
	Unit         string  `yaml:"unit"`
	Theme        string  `yaml:"theme"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	LeftMargin   float64 `yaml:"left_margin"`
	BottomMargin float64 `yaml:"bottom_margin"`
}

type AirConfig struct {
	Thresholds reading.Thresholds `yaml:"thresholds"`
}

type LivenessConfig struct {
	Interval time.Duration `yaml:"interval"`
	Stale    time.Duration `yaml:"stale"`
}

type ReportConfig struct {
	Limit     int    `yaml:"limit"`
	Directory string `yaml:"directory"`
}

type ServerConfig struct {
	Listen string `yaml:"listen"`
}

type TelegramConfig struct {
	Token string `yaml:"token"`
	Chat  int64  `yaml:"chat"`
}

func (t TelegramConfig) Enabled() bool {
	return t.Token != ""
}

func NewConfig() *Config {
	return &Config{
		LogLevel: "info",
		History: HistoryConfig{
			Capacity:  history.DefaultCapacity,
			Recording: "history.csv",
		},
		Chart: ChartConfig{
			Unit:         chart.DefaultLayout.Unit,
			Theme:        "light",
			Width:        500,
			Height:       250,
			LeftMargin:   chart.DefaultLayout.LeftMargin,
			BottomMargin: chart.DefaultLayout.BottomMargin,
		},
		Air: AirConfig{Thresholds: reading.DefaultThresholds},
		Liveness: LivenessConfig{
			Interval: liveness.DefaultInterval,
			Stale:    liveness.DefaultStale,
		},
		Report: ReportConfig{
			Limit:     report.DefaultLimit,
			Directory: ".",
		},
		Server: ServerConfig{Listen: "0.0.0.0:8080"},
	}
}

var (
	ErrCapacity   = errors.New("history capacity must be positive")
	ErrChartSize  = errors.New("chart size must be positive")
	ErrMargins    = errors.New("chart margins must fit inside the chart")
	ErrThresholds = errors.New("air thresholds must satisfy 0 < great <= good")
	ErrInterval   = errors.New("liveness interval and stale timeout must be positive")
	ErrLimit      = errors.New("report limit must be positive")
	ErrTelegram   = errors.New("telegram chat is required when a token is set")
)

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var result error
	check := func(ok bool, err error) {
		if !ok {
			result = multierror.Append(result, err)
		}
	}
	check(c.History.Capacity > 0, ErrCapacity)
	check(c.Chart.Width > 0 && c.Chart.Height > 0, ErrChartSize)
	check(c.Chart.LeftMargin >= 0 && c.Chart.BottomMargin >= 0 &&
		c.Chart.LeftMargin < c.Chart.Width && c.Chart.BottomMargin < c.Chart.Height, ErrMargins)
	th := c.Air.Thresholds
	check(th.Great > 0 && th.Great <= th.Good, ErrThresholds)
	check(c.Liveness.Interval > 0 && c.Liveness.Stale > 0, ErrInterval)
	check(c.Report.Limit > 0, ErrLimit)
	check(!c.Telegram.Enabled() || c.Telegram.Chat != 0, ErrTelegram)
	if _, ok := chart.ThemeNamed(c.Chart.Theme); !ok {
		result = multierror.Append(result, fmt.Errorf("unknown chart theme %q", c.Chart.Theme))
	}
	return result
}

func (c *Config) Theme() chart.Theme {
	th, ok := chart.ThemeNamed(c.Chart.Theme)
	if !ok {
		return chart.Light
	}
	return th
}

func (c *Config) Layout() chart.Layout {
	l := chart.DefaultLayout
	l.Unit = c.Chart.Unit
	l.LeftMargin = c.Chart.LeftMargin
	l.BottomMargin = c.Chart.BottomMargin
	return l
}
