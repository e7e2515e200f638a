package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "weatherdash.yaml"
	EnvPrefix         = "WEATHERDASH"
)

type Loader struct {
	configPath string
	env        *viper.Viper
}

func NewLoader(configPath string) *Loader {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return &Loader{configPath: configPath, env: v}
}

// Load reads the YAML file (a missing file leaves the defaults), applies WEATHERDASH_* environment overrides and
// validates the result.
func (l *Loader) Load() (*Config, error) {
	cfg := NewConfig()
	c, err := os.ReadFile(l.configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	case err != nil:
		return nil, NewReadError(l.configPath, err)
	default:
		if err := yaml.Unmarshal(c, cfg); err != nil {
			return nil, NewParseError(l.configPath, err)
		}
	}
	l.applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) applyEnv(cfg *Config) {
	v := l.env
	if v.IsSet("LOG_LEVEL") {
		cfg.LogLevel = v.GetString("LOG_LEVEL")
	}
	if v.IsSet("RECORDING") {
		cfg.History.Recording = v.GetString("RECORDING")
	}
	if v.IsSet("THEME") {
		cfg.Chart.Theme = v.GetString("THEME")
	}
	if v.IsSet("REPORT_DIR") {
		cfg.Report.Directory = v.GetString("REPORT_DIR")
	}
	if v.IsSet("LISTEN") {
		cfg.Server.Listen = v.GetString("LISTEN")
	}
	if v.IsSet("TELEGRAM_TOKEN") {
		cfg.Telegram.Token = v.GetString("TELEGRAM_TOKEN")
	}
	if v.IsSet("TELEGRAM_CHAT") {
		cfg.Telegram.Chat = v.GetInt64("TELEGRAM_CHAT")
	}
}
